package core

import (
	"context"

	"chainledger/internal/repository"
	tokenIssuer "chainledger/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// WalletDirectory resolves wallet owners by address.
type WalletDirectory interface {
	GetWalletByAddress(ctx context.Context, address string) (repository.Wallet, error)
}

// EntityChecker verifies referenced application entities still exist.
type EntityChecker interface {
	GetPost(ctx context.Context, postID int64) (repository.Post, error)
}

// TokenSource reports how many tokens a wallet can still claim against.
//
//counterfeiter:generate -o fake -fake-name TokenSource . TokenSource
type TokenSource interface {
	AvailableTokens(ctx context.Context, walletAddress string) (decimal.Decimal, error)
}

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	WalletDirectory
	EntityChecker
	GetUser(ctx context.Context, username string) (repository.User, error)
	HasLedgerEntry(ctx context.Context, externalTxHash, referenceType string, kind repository.TransactionKind) (bool, error)
	HasWalletAction(ctx context.Context, walletAddress, action, referenceID string) (bool, error)
	ApplyLedgerEntry(ctx context.Context, entry repository.LedgerEntry) (bool, error)
	ReserveClaimRequest(ctx context.Context, request repository.ClaimRequest) error
	ExecuteClaimWithCredit(ctx context.Context, nonce string, now int64, entry repository.LedgerEntry) (bool, error)
	FailClaimRequest(ctx context.Context, walletAddress, nonce, reason string) (bool, error)
	ExpireOverdueClaims(ctx context.Context, now int64) (int64, error)
	IncrementNonceGenerated(ctx context.Context, walletAddress string) error
	IncrementNonceUsed(ctx context.Context, walletAddress string) error
	GetCursor(ctx context.Context, cursorID string) (repository.ChainCursor, error)
	SaveCursor(ctx context.Context, cursor repository.ChainCursor) error
}

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	HeadBlock(ctx context.Context) (uint64, error)
	LogsInRange(ctx context.Context, contract common.Address, topics []common.Hash, fromBlock, toBlock uint64) ([]types.Log, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
