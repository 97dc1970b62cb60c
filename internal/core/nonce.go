package core

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// NonceRegistry issues unpredictable claim nonces and keeps per-wallet
// issuance counters. The counters are audit bookkeeping; replay protection
// is the (wallet, nonce) unique constraint plus the contract's used-nonce
// set.
type NonceRegistry struct {
	logs *zap.SugaredLogger
	repo Repository
}

func NewNonceRegistry(logger *zap.SugaredLogger, repo Repository) *NonceRegistry {
	return &NonceRegistry{
		logs: logger,
		repo: repo,
	}
}

// Issue generates a fresh 32-byte random nonce for the wallet and bumps
// the generated counter. The value is returned both as an integer (for
// signing) and as its canonical 32-byte hex form (for persistence).
func (n *NonceRegistry) Issue(ctx context.Context, walletAddress string) (*big.Int, string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, "", fmt.Errorf("read random nonce: %w", err)
	}

	value := new(big.Int).SetBytes(buf)
	hex := common.BigToHash(value).Hex()

	if err := n.repo.IncrementNonceGenerated(ctx, walletAddress); err != nil {
		return nil, "", fmt.Errorf("bump generated counter: %w", err)
	}

	n.logs.Debugw("nonce issued", "wallet", walletAddress, "nonce", hex)
	return value, hex, nil
}

// MarkUsed bumps the used counter after on-chain confirmation.
func (n *NonceRegistry) MarkUsed(ctx context.Context, walletAddress string) error {
	if err := n.repo.IncrementNonceUsed(ctx, walletAddress); err != nil {
		return fmt.Errorf("bump used counter: %w", err)
	}
	return nil
}
