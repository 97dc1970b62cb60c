package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"chainledger/internal/repository"
	"chainledger/pkg/eip712"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var ErrNotConfigured error = errors.New("claim service is not configured")
var ErrInvalidAmount error = errors.New("amount must be positive")
var ErrWalletNotFound error = errors.New("wallet not found")
var ErrPostNotFound error = errors.New("post not found")
var ErrNotPostOwner error = errors.New("wallet does not own the post")
var ErrInsufficientBalance error = errors.New("insufficient available balance")

const defaultClaimTTL = 5 * time.Minute

// ClaimService issues and verifies EIP-712 claim tickets. It never moves
// funds; the signed tuple is a bearer authorization the client submits to
// the chain directly. When the chain section of the configuration is
// absent the service constructs disabled and every call returns
// ErrNotConfigured.
type ClaimService struct {
	logs     *zap.SugaredLogger
	repo     Repository
	nonces   *NonceRegistry
	tokens   TokenSource
	signer   *eip712.Signer
	verifier *eip712.Verifier
	decimals int32
	claimTTL time.Duration
	enabled  bool
}

func NewClaimService(
	logger *zap.SugaredLogger,
	repo Repository,
	nonces *NonceRegistry,
	tokens TokenSource,
	signer *eip712.Signer,
	verifier *eip712.Verifier,
	tokenDecimals int32,
) *ClaimService {
	enabled := signer != nil && verifier != nil
	if !enabled {
		logger.Warnw("claim service disabled: signer key or contract address missing")
	}

	return &ClaimService{
		logs:     logger,
		repo:     repo,
		nonces:   nonces,
		tokens:   tokens,
		signer:   signer,
		verifier: verifier,
		decimals: tokenDecimals,
		claimTTL: defaultClaimTTL,
		enabled:  enabled,
	}
}

// IssueClaimSignature validates the request, issues a fresh nonce, signs
// the claim tuple and persists the PENDING claim request before returning
// the ticket.
func (s *ClaimService) IssueClaimSignature(ctx context.Context, req IssueClaimRequest) (ClaimTicket, error) {
	if !s.enabled {
		return ClaimTicket{}, ErrNotConfigured
	}

	if !req.Amount.IsPositive() {
		return ClaimTicket{}, ErrInvalidAmount
	}

	wallet, err := s.repo.GetWalletByAddress(ctx, req.WalletAddress)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return ClaimTicket{}, ErrWalletNotFound
		}
		return ClaimTicket{}, fmt.Errorf("resolve wallet: %w", err)
	}

	if req.PostID != nil {
		post, err := s.repo.GetPost(ctx, *req.PostID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return ClaimTicket{}, ErrPostNotFound
			}
			return ClaimTicket{}, fmt.Errorf("resolve post: %w", err)
		}
		if post.OwnerID != wallet.OwnerID {
			return ClaimTicket{}, ErrNotPostOwner
		}
	}

	// advisory fast check; the binding reservation happens under the
	// wallet row lock when the claim is persisted below
	available, err := s.tokens.AvailableTokens(ctx, wallet.Address)
	if err != nil {
		return ClaimTicket{}, fmt.Errorf("available tokens: %w", err)
	}
	if req.Amount.GreaterThan(available) {
		s.logs.Infow("claim rejected, insufficient available balance",
			"wallet", wallet.Address, "requested", req.Amount, "availableToken", available)
		return ClaimTicket{}, fmt.Errorf("%w: available %s", ErrInsufficientBalance, available)
	}

	nonceValue, nonceHex, err := s.nonces.Issue(ctx, wallet.Address)
	if err != nil {
		return ClaimTicket{}, fmt.Errorf("issue nonce: %w", err)
	}

	deadline := TimeNow().Add(s.claimTTL).Unix()
	amountBase := ToBaseUnits(req.Amount, s.decimals)

	signature, err := s.signClaim(wallet.Address, req.PostID, amountBase, deadline, nonceValue)
	if err != nil {
		return ClaimTicket{}, fmt.Errorf("sign claim: %w", err)
	}
	signatureHex := "0x" + common.Bytes2Hex(signature)

	err = s.repo.ReserveClaimRequest(ctx, repository.ClaimRequest{
		WalletAddress: wallet.Address,
		Nonce:         nonceHex,
		PostID:        req.PostID,
		Amount:        req.Amount,
		Deadline:      deadline,
		Signature:     signatureHex,
		Status:        repository.ClaimPending,
	})
	if err != nil {
		// a concurrent issuance may have reserved the balance between
		// the advisory check and the locked insert
		if errors.Is(err, repository.ErrInsufficientFunds) {
			s.logs.Infow("claim rejected, reservation overtaken",
				"wallet", wallet.Address, "requested", req.Amount)
			return ClaimTicket{}, ErrInsufficientBalance
		}
		return ClaimTicket{}, fmt.Errorf("persist claim request: %w", err)
	}

	s.logs.Infow("claim signature issued",
		"wallet", wallet.Address, "amount", req.Amount, "deadline", deadline, "nonce", nonceHex)

	return ClaimTicket{
		WalletAddress: wallet.Address,
		PostID:        req.PostID,
		Amount:        req.Amount,
		AmountBase:    amountBase.String(),
		Deadline:      deadline,
		Nonce:         nonceHex,
		Signature:     signatureHex,
	}, nil
}

// VerifyClaimSignature recomputes the typed-data digest, recovers the
// signer and compares it against the trusted address. Expired payloads
// never verify.
func (s *ClaimService) VerifyClaimSignature(payload ClaimPayload, signatureHex string) (bool, error) {
	if !s.enabled {
		return false, ErrNotConfigured
	}

	if payload.Deadline <= TimeNow().Unix() {
		return false, nil
	}

	signature := common.FromHex(signatureHex)
	amountBase := ToBaseUnits(payload.Amount, s.decimals)
	nonceValue := common.HexToHash(payload.Nonce).Big()

	if payload.PostID != nil {
		return s.verifier.VerifyPostClaim(eip712.PostClaim{
			PostID:   big.NewInt(*payload.PostID),
			To:       common.HexToAddress(payload.WalletAddress),
			Amount:   amountBase,
			Deadline: payload.Deadline,
			Nonce:    nonceValue,
		}, signature)
	}

	return s.verifier.VerifyRewardClaim(eip712.RewardClaim{
		To:       common.HexToAddress(payload.WalletAddress),
		Amount:   amountBase,
		Deadline: payload.Deadline,
		Nonce:    nonceValue,
	}, signature)
}

func (s *ClaimService) signClaim(walletAddress string, postID *int64, amountBase *big.Int, deadline int64, nonce *big.Int) ([]byte, error) {
	to := common.HexToAddress(walletAddress)

	if postID != nil {
		return s.signer.SignPostClaim(eip712.PostClaim{
			PostID:   big.NewInt(*postID),
			To:       to,
			Amount:   amountBase,
			Deadline: deadline,
			Nonce:    nonce,
		})
	}

	return s.signer.SignRewardClaim(eip712.RewardClaim{
		To:       to,
		Amount:   amountBase,
		Deadline: deadline,
		Nonce:    nonce,
	})
}
