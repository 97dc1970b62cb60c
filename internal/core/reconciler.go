package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chainledger/internal/events"
	"chainledger/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TimeNow is swapped in tests.
var TimeNow = time.Now

const (
	refTypePostLike  = "POST_LIKE"
	refTypePostClaim = "POST_CLAIM"
	refTypeClaim     = "CLAIM"
	refTypeTransfer  = "TRANSFER"

	actionLike = "LIKE"
)

// Reconciler applies decoded chain events to the ledger exactly once. It
// is the at-least-once to at-most-once boundary: duplicate deliveries and
// references to deleted entities resolve as no-ops, domain conflicts are
// dropped with a warning, and only transient failures surface as errors.
type Reconciler struct {
	logs     *zap.SugaredLogger
	repo     Repository
	decimals int32
}

func NewReconciler(logger *zap.SugaredLogger, repo Repository, tokenDecimals int32) *Reconciler {
	return &Reconciler{
		logs:     logger,
		repo:     repo,
		decimals: tokenDecimals,
	}
}

func (r *Reconciler) HandleLiked(ctx context.Context, event events.Liked) (events.Outcome, error) {
	txHash := event.TxHash.Hex()
	postRef := event.PostID.String()

	seen, err := r.repo.HasLedgerEntry(ctx, txHash, refTypePostLike, repository.KindDeductOnAction)
	if err != nil {
		return events.OutcomeSkipped, fmt.Errorf("check idempotency key: %w", err)
	}
	if seen {
		r.logs.Debugw("duplicate Liked delivery", "txHash", txHash, "postId", postRef)
		return events.OutcomeSkipped, nil
	}

	wallet, err := r.repo.GetWalletByAddress(ctx, event.User.Hex())
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			r.logs.Infow("Liked event for unknown wallet", "wallet", event.User.Hex(), "txHash", txHash)
			return events.OutcomeSkipped, nil
		}
		return events.OutcomeSkipped, fmt.Errorf("resolve wallet: %w", err)
	}

	if _, err = r.repo.GetPost(ctx, event.PostID.Int64()); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			// post removed after the event was emitted, expected under
			// eventual consistency
			r.logs.Infow("Liked event for missing post", "postId", postRef, "txHash", txHash)
			return events.OutcomeSkipped, nil
		}
		return events.OutcomeSkipped, fmt.Errorf("resolve post: %w", err)
	}

	liked, err := r.repo.HasWalletAction(ctx, wallet.Address, actionLike, postRef)
	if err != nil {
		return events.OutcomeSkipped, fmt.Errorf("check wallet action: %w", err)
	}
	if liked {
		r.logs.Warnw("wallet already liked post, dropping event",
			"wallet", wallet.Address, "postId", postRef, "txHash", txHash)
		return events.OutcomeSkipped, nil
	}

	amount := FromBaseUnits(event.Amount, r.decimals)
	created, err := r.repo.ApplyLedgerEntry(ctx, repository.LedgerEntry{
		WalletAddress:  wallet.Address,
		Kind:           repository.KindDeductOnAction,
		Amount:         amount.Neg(),
		ExternalTxHash: &txHash,
		ReferenceID:    postRef,
		ReferenceType:  refTypePostLike,
		Action:         actionLike,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAction) {
			r.logs.Warnw("concurrent duplicate like, dropping event",
				"wallet", wallet.Address, "postId", postRef, "txHash", txHash)
			return events.OutcomeSkipped, nil
		}
		return events.OutcomeSkipped, fmt.Errorf("apply ledger entry: %w", err)
	}
	if !created {
		return events.OutcomeSkipped, nil
	}

	r.logs.Infow("like reconciled", "wallet", wallet.Address, "postId", postRef, "amount", amount, "txHash", txHash)
	return events.OutcomeApplied, nil
}

func (r *Reconciler) HandleTokensClaimed(ctx context.Context, event events.TokensClaimed) (events.Outcome, error) {
	txHash := event.TxHash.Hex()
	postRef := event.PostID.String()

	seen, err := r.repo.HasLedgerEntry(ctx, txHash, refTypePostClaim, repository.KindRewardClaim)
	if err != nil {
		return events.OutcomeSkipped, fmt.Errorf("check idempotency key: %w", err)
	}
	if seen {
		r.logs.Debugw("duplicate TokensClaimed delivery", "txHash", txHash)
		return events.OutcomeSkipped, nil
	}

	wallet, err := r.repo.GetWalletByAddress(ctx, event.To.Hex())
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			r.logs.Infow("TokensClaimed event for unknown wallet", "wallet", event.To.Hex(), "txHash", txHash)
			return events.OutcomeSkipped, nil
		}
		return events.OutcomeSkipped, fmt.Errorf("resolve wallet: %w", err)
	}

	if _, err = r.repo.GetPost(ctx, event.PostID.Int64()); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			r.logs.Infow("TokensClaimed event for missing post", "postId", postRef, "txHash", txHash)
			return events.OutcomeSkipped, nil
		}
		return events.OutcomeSkipped, fmt.Errorf("resolve post: %w", err)
	}

	amount := FromBaseUnits(event.Amount, r.decimals)
	created, err := r.repo.ApplyLedgerEntry(ctx, repository.LedgerEntry{
		WalletAddress:  wallet.Address,
		Kind:           repository.KindRewardClaim,
		Amount:         amount,
		ExternalTxHash: &txHash,
		ReferenceID:    postRef,
		ReferenceType:  refTypePostClaim,
	})
	if err != nil {
		return events.OutcomeSkipped, fmt.Errorf("apply ledger entry: %w", err)
	}
	if !created {
		return events.OutcomeSkipped, nil
	}

	r.logs.Infow("post claim reconciled", "wallet", wallet.Address, "postId", postRef, "amount", amount, "txHash", txHash)
	return events.OutcomeApplied, nil
}

func (r *Reconciler) HandleClaimExecuted(ctx context.Context, event events.ClaimExecuted) (events.Outcome, error) {
	txHash := event.TxHash.Hex()
	nonce := common.BigToHash(event.Nonce).Hex()

	seen, err := r.repo.HasLedgerEntry(ctx, txHash, refTypeClaim, repository.KindRewardClaim)
	if err != nil {
		return events.OutcomeSkipped, fmt.Errorf("check idempotency key: %w", err)
	}
	if seen {
		r.logs.Debugw("duplicate ClaimExecuted delivery", "txHash", txHash, "nonce", nonce)
		return events.OutcomeSkipped, nil
	}

	wallet, err := r.repo.GetWalletByAddress(ctx, event.To.Hex())
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			r.logs.Infow("ClaimExecuted event for unknown wallet", "wallet", event.To.Hex(), "txHash", txHash)
			return events.OutcomeSkipped, nil
		}
		return events.OutcomeSkipped, fmt.Errorf("resolve wallet: %w", err)
	}

	// status flip and reward credit commit or roll back together; a
	// transient failure leaves the claim PENDING for the retry
	amount := FromBaseUnits(event.Amount, r.decimals)
	executed, err := r.repo.ExecuteClaimWithCredit(ctx, nonce, TimeNow().Unix(), repository.LedgerEntry{
		WalletAddress:  wallet.Address,
		Kind:           repository.KindRewardClaim,
		Amount:         amount,
		ExternalTxHash: &txHash,
		ReferenceID:    nonce,
		ReferenceType:  refTypeClaim,
	})
	if err != nil {
		return events.OutcomeSkipped, fmt.Errorf("execute claim with credit: %w", err)
	}
	if !executed {
		r.logs.Warnw("no pending claim matched execution event, dropping",
			"wallet", wallet.Address, "nonce", nonce, "txHash", txHash)
		return events.OutcomeSkipped, nil
	}

	// audit counter only, the claim row is already terminal
	if err = r.repo.IncrementNonceUsed(ctx, wallet.Address); err != nil {
		r.logs.Warnw("failed to bump used-nonce counter", "wallet", wallet.Address, "error", err)
	}

	r.logs.Infow("claim execution reconciled", "wallet", wallet.Address, "nonce", nonce, "amount", amount, "txHash", txHash)
	return events.OutcomeApplied, nil
}

func (r *Reconciler) HandleTransfer(ctx context.Context, event events.Transfer) (events.Outcome, error) {
	txHash := event.TxHash.Hex()
	amount := FromBaseUnits(event.Value, r.decimals)

	outcome := events.OutcomeSkipped

	fromCreated, err := r.applyTransferSide(ctx, event.From.Hex(), txHash, amount.Neg(), repository.KindTransferOut)
	if err != nil {
		return events.OutcomeSkipped, err
	}
	toCreated, err := r.applyTransferSide(ctx, event.To.Hex(), txHash, amount, repository.KindTransferIn)
	if err != nil {
		return events.OutcomeSkipped, err
	}

	if fromCreated || toCreated {
		r.logs.Infow("transfer reconciled",
			"from", event.From.Hex(), "to", event.To.Hex(), "amount", amount, "txHash", txHash)
		outcome = events.OutcomeApplied
	}
	return outcome, nil
}

// applyTransferSide credits or debits one side of a Transfer when the
// wallet is tracked. Untracked addresses are ignored, most transfers touch
// wallets outside the application.
func (r *Reconciler) applyTransferSide(ctx context.Context, address, txHash string, amount decimal.Decimal, kind repository.TransactionKind) (bool, error) {
	wallet, err := r.repo.GetWalletByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			r.logs.Debugw("transfer side not tracked", "wallet", address, "txHash", txHash)
			return false, nil
		}
		return false, fmt.Errorf("resolve wallet: %w", err)
	}

	created, err := r.repo.ApplyLedgerEntry(ctx, repository.LedgerEntry{
		WalletAddress:  wallet.Address,
		Kind:           kind,
		Amount:         amount,
		ExternalTxHash: &txHash,
		ReferenceID:    txHash,
		ReferenceType:  refTypeTransfer,
	})
	if err != nil {
		return false, fmt.Errorf("apply ledger entry: %w", err)
	}
	return created, nil
}
