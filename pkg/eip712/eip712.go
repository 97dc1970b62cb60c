package eip712

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

var ErrInvalidSignatureLength error = errors.New("signature must be 65 bytes")

const (
	postClaimPrimaryType   = "Claim"
	rewardClaimPrimaryType = "RewardClaim"
)

var domainType = []apitypes.Type{
	{Name: "name", Type: "string"},
	{Name: "version", Type: "string"},
	{Name: "chainId", Type: "uint256"},
	{Name: "verifyingContract", Type: "address"},
}

// PostClaim authorizes claiming reward tokens accrued on a single post.
type PostClaim struct {
	PostID   *big.Int
	To       common.Address
	Amount   *big.Int
	Deadline int64
	Nonce    *big.Int
}

// RewardClaim authorizes claiming a wallet-level reward balance.
type RewardClaim struct {
	To       common.Address
	Amount   *big.Int
	Deadline int64
	Nonce    *big.Int
}

// Signer builds and signs typed-data digests with the server-held key. The
// key never leaves the process; only signatures are handed out.
type Signer struct {
	key    *ecdsa.PrivateKey
	domain apitypes.TypedDataDomain
}

func NewSigner(privateKeyHex, domainName, domainVersion string, chainID int64, verifyingContract string) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse signer key: %w", err)
	}

	return &Signer{
		key:    key,
		domain: newDomain(domainName, domainVersion, chainID, verifyingContract),
	}, nil
}

func newDomain(name, version string, chainID int64, verifyingContract string) apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              name,
		Version:           version,
		ChainId:           math.NewHexOrDecimal256(chainID),
		VerifyingContract: verifyingContract,
	}
}

// Address returns the address corresponding to the signing key.
func (s *Signer) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

// SignPostClaim signs the Claim{postId,to,amount,deadline,nonce} schema.
// The returned signature is 65 bytes with V in {27, 28}.
func (s *Signer) SignPostClaim(claim PostClaim) ([]byte, error) {
	digest, err := postClaimDigest(s.domain, claim)
	if err != nil {
		return nil, err
	}
	return s.sign(digest)
}

// SignRewardClaim signs the RewardClaim{to,amount,deadline,nonce} schema.
func (s *Signer) SignRewardClaim(claim RewardClaim) ([]byte, error) {
	digest, err := rewardClaimDigest(s.domain, claim)
	if err != nil {
		return nil, err
	}
	return s.sign(digest)
}

func (s *Signer) sign(digest []byte) ([]byte, error) {
	sig, err := crypto.Sign(digest, s.key)
	if err != nil {
		return nil, fmt.Errorf("sign digest: %w", err)
	}

	// contracts expect V as 27/28
	sig[64] += 27
	return sig, nil
}

// Verifier recomputes typed-data digests and recovers the signer address.
type Verifier struct {
	domain        apitypes.TypedDataDomain
	trustedSigner common.Address
}

func NewVerifier(domainName, domainVersion string, chainID int64, verifyingContract string, trustedSigner common.Address) *Verifier {
	return &Verifier{
		domain:        newDomain(domainName, domainVersion, chainID, verifyingContract),
		trustedSigner: trustedSigner,
	}
}

// VerifyPostClaim reports whether signature was produced by the trusted
// signer over exactly the given claim tuple.
func (v *Verifier) VerifyPostClaim(claim PostClaim, signature []byte) (bool, error) {
	digest, err := postClaimDigest(v.domain, claim)
	if err != nil {
		return false, err
	}
	return v.recoverAndCompare(digest, signature)
}

func (v *Verifier) VerifyRewardClaim(claim RewardClaim, signature []byte) (bool, error) {
	digest, err := rewardClaimDigest(v.domain, claim)
	if err != nil {
		return false, err
	}
	return v.recoverAndCompare(digest, signature)
}

func (v *Verifier) recoverAndCompare(digest, signature []byte) (bool, error) {
	if len(signature) != crypto.SignatureLength {
		return false, ErrInvalidSignatureLength
	}

	sig := make([]byte, crypto.SignatureLength)
	copy(sig, signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	pubKey, err := crypto.SigToPub(digest, sig)
	if err != nil {
		return false, fmt.Errorf("recover public key: %w", err)
	}

	recovered := crypto.PubkeyToAddress(*pubKey)
	return strings.EqualFold(recovered.Hex(), v.trustedSigner.Hex()), nil
}

func postClaimDigest(domain apitypes.TypedDataDomain, claim PostClaim) ([]byte, error) {
	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": domainType,
			postClaimPrimaryType: {
				{Name: "postId", Type: "uint256"},
				{Name: "to", Type: "address"},
				{Name: "amount", Type: "uint256"},
				{Name: "deadline", Type: "uint256"},
				{Name: "nonce", Type: "uint256"},
			},
		},
		PrimaryType: postClaimPrimaryType,
		Domain:      domain,
		Message: apitypes.TypedDataMessage{
			"postId":   (*math.HexOrDecimal256)(claim.PostID),
			"to":       claim.To.Hex(),
			"amount":   (*math.HexOrDecimal256)(claim.Amount),
			"deadline": math.NewHexOrDecimal256(claim.Deadline),
			"nonce":    (*math.HexOrDecimal256)(claim.Nonce),
		},
	}

	return hashTypedData(typedData)
}

func rewardClaimDigest(domain apitypes.TypedDataDomain, claim RewardClaim) ([]byte, error) {
	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": domainType,
			rewardClaimPrimaryType: {
				{Name: "to", Type: "address"},
				{Name: "amount", Type: "uint256"},
				{Name: "deadline", Type: "uint256"},
				{Name: "nonce", Type: "uint256"},
			},
		},
		PrimaryType: rewardClaimPrimaryType,
		Domain:      domain,
		Message: apitypes.TypedDataMessage{
			"to":       claim.To.Hex(),
			"amount":   (*math.HexOrDecimal256)(claim.Amount),
			"deadline": math.NewHexOrDecimal256(claim.Deadline),
			"nonce":    (*math.HexOrDecimal256)(claim.Nonce),
		},
	}

	return hashTypedData(typedData)
}

func hashTypedData(typedData apitypes.TypedData) ([]byte, error) {
	digest, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return nil, fmt.Errorf("hash typed data: %w", err)
	}
	return digest, nil
}
