package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Tracker owns the claim request status machine's time-driven edge: the
// periodic sweep that moves overdue PENDING claims to EXPIRED. Execution
// and failure edges are driven by the reconciler and the request path.
type Tracker struct {
	logs *zap.SugaredLogger
	repo Repository
}

func NewTracker(logger *zap.SugaredLogger, repo Repository) *Tracker {
	return &Tracker{
		logs: logger,
		repo: repo,
	}
}

// Sweep expires every PENDING claim whose deadline has passed. The update
// is conditional on the PENDING status so it cannot clobber a concurrent
// execution.
func (t *Tracker) Sweep(ctx context.Context) error {
	expired, err := t.repo.ExpireOverdueClaims(ctx, TimeNow().Unix())
	if err != nil {
		return fmt.Errorf("expire overdue claims: %w", err)
	}

	if expired > 0 {
		t.logs.Infow("expired overdue claim requests", "count", expired)
	}
	return nil
}

// Fail moves a PENDING claim to FAILED with an explicit reason.
func (t *Tracker) Fail(ctx context.Context, walletAddress, nonce, reason string) error {
	failed, err := t.repo.FailClaimRequest(ctx, walletAddress, nonce, reason)
	if err != nil {
		return fmt.Errorf("fail claim request: %w", err)
	}
	if !failed {
		t.logs.Warnw("no pending claim to fail", "wallet", walletAddress, "nonce", nonce)
		return nil
	}

	t.logs.Infow("claim request failed", "wallet", walletAddress, "nonce", nonce, "reason", reason)
	return nil
}
