package eip712_test

import (
	"math/big"

	"chainledger/pkg/eip712"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	domainName    = "TokenClaim"
	domainVersion = "1"
	chainID       = int64(31337)
	contractAddr  = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
)

var _ = Describe("Signer and Verifier", func() {
	var (
		signer   *eip712.Signer
		verifier *eip712.Verifier
		claim    eip712.PostClaim
	)

	BeforeEach(func() {
		key, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())

		keyHex := hexutil.Encode(crypto.FromECDSA(key))
		signer, err = eip712.NewSigner(keyHex, domainName, domainVersion, chainID, contractAddr)
		Expect(err).NotTo(HaveOccurred())

		verifier = eip712.NewVerifier(domainName, domainVersion, chainID, contractAddr, signer.Address())

		claim = eip712.PostClaim{
			PostID:   big.NewInt(7),
			To:       common.HexToAddress("0x1111111111111111111111111111111111111111"),
			Amount:   big.NewInt(1_000_000),
			Deadline: 1_900_000_000,
			Nonce:    big.NewInt(42),
		}
	})

	It("rejects a signer key that is not valid hex", func() {
		_, err := eip712.NewSigner("not-a-key", domainName, domainVersion, chainID, contractAddr)

		Expect(err).To(HaveOccurred())
	})

	It("produces a 65-byte signature with V in {27, 28}", func() {
		sig, err := signer.SignPostClaim(claim)

		Expect(err).NotTo(HaveOccurred())
		Expect(sig).To(HaveLen(65))
		Expect(sig[64]).To(Or(Equal(byte(27)), Equal(byte(28))))
	})

	It("verifies a signature over the exact claim tuple", func() {
		sig, err := signer.SignPostClaim(claim)
		Expect(err).NotTo(HaveOccurred())

		valid, err := verifier.VerifyPostClaim(claim, sig)

		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeTrue())
	})

	It("rejects a signature once any field of the tuple changes", func() {
		sig, err := signer.SignPostClaim(claim)
		Expect(err).NotTo(HaveOccurred())

		mutations := []eip712.PostClaim{
			{PostID: big.NewInt(8), To: claim.To, Amount: claim.Amount, Deadline: claim.Deadline, Nonce: claim.Nonce},
			{PostID: claim.PostID, To: common.HexToAddress("0x2222222222222222222222222222222222222222"), Amount: claim.Amount, Deadline: claim.Deadline, Nonce: claim.Nonce},
			{PostID: claim.PostID, To: claim.To, Amount: big.NewInt(1_000_001), Deadline: claim.Deadline, Nonce: claim.Nonce},
			{PostID: claim.PostID, To: claim.To, Amount: claim.Amount, Deadline: claim.Deadline + 1, Nonce: claim.Nonce},
			{PostID: claim.PostID, To: claim.To, Amount: claim.Amount, Deadline: claim.Deadline, Nonce: big.NewInt(43)},
		}

		for _, mutated := range mutations {
			valid, err := verifier.VerifyPostClaim(mutated, sig)

			Expect(err).NotTo(HaveOccurred())
			Expect(valid).To(BeFalse())
		}
	})

	It("rejects a signature from a different key", func() {
		otherKey, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())

		otherHex := hexutil.Encode(crypto.FromECDSA(otherKey))
		otherSigner, err := eip712.NewSigner(otherHex, domainName, domainVersion, chainID, contractAddr)
		Expect(err).NotTo(HaveOccurred())

		sig, err := otherSigner.SignPostClaim(claim)
		Expect(err).NotTo(HaveOccurred())

		valid, err := verifier.VerifyPostClaim(claim, sig)

		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeFalse())
	})

	It("rejects a signature bound to a different domain", func() {
		otherDomain := eip712.NewVerifier("OtherApp", domainVersion, chainID, contractAddr, signer.Address())

		sig, err := signer.SignPostClaim(claim)
		Expect(err).NotTo(HaveOccurred())

		valid, err := otherDomain.VerifyPostClaim(claim, sig)

		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeFalse())
	})

	It("returns ErrInvalidSignatureLength for a truncated signature", func() {
		_, err := verifier.VerifyPostClaim(claim, []byte{0x01, 0x02})

		Expect(err).To(MatchError(eip712.ErrInvalidSignatureLength))
	})

	It("signs and verifies the wallet-level reward schema", func() {
		reward := eip712.RewardClaim{
			To:       claim.To,
			Amount:   big.NewInt(555),
			Deadline: claim.Deadline,
			Nonce:    big.NewInt(99),
		}

		sig, err := signer.SignRewardClaim(reward)
		Expect(err).NotTo(HaveOccurred())

		valid, err := verifier.VerifyRewardClaim(reward, sig)
		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeTrue())

		reward.Amount = big.NewInt(556)
		valid, err = verifier.VerifyRewardClaim(reward, sig)
		Expect(err).NotTo(HaveOccurred())
		Expect(valid).To(BeFalse())
	})
})
