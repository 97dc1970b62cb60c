package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindDeductOnAction   TransactionKind = "DEDUCT_ON_ACTION"
	KindRefund           TransactionKind = "REFUND"
	KindRewardClaim      TransactionKind = "REWARD_CLAIM"
	KindTransferIn       TransactionKind = "TRANSFER_IN"
	KindTransferOut      TransactionKind = "TRANSFER_OUT"
	KindSystemAdjustment TransactionKind = "SYSTEM_ADJUSTMENT"
	KindInitialSync      TransactionKind = "INITIAL_SYNC"
)

type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "PENDING"
	ClaimExecuted ClaimStatus = "EXECUTED"
	ClaimExpired  ClaimStatus = "EXPIRED"
	ClaimFailed   ClaimStatus = "FAILED"
)

// LedgerTransaction is append-only: rows are never updated or deleted once
// written. The composite unique index on (external_tx_hash, reference_type,
// kind) is the idempotency key for chain-delivered events.
type LedgerTransaction struct {
	ID             string          `gorm:"primaryKey;autoIncrement:false"`
	WalletOwnerID  string          `gorm:"not null;index"`
	Kind           TransactionKind `gorm:"size:32;not null;uniqueIndex:idx_ledger_idempotency"`
	Amount         decimal.Decimal `gorm:"type:numeric(38,18);not null"`
	BalanceBefore  decimal.Decimal `gorm:"type:numeric(38,18);not null"`
	BalanceAfter   decimal.Decimal `gorm:"type:numeric(38,18);not null"`
	ExternalTxHash *string         `gorm:"size:66;uniqueIndex:idx_ledger_idempotency"` // 0x + 64 hex chars
	ReferenceID    string          `gorm:"size:128"`
	ReferenceType  string          `gorm:"size:32;not null;uniqueIndex:idx_ledger_idempotency"`
	Status         string          `gorm:"size:16;not null"`
	CreatedAt      time.Time
}

// ClaimNonce keeps per-wallet issuance counters for auditing. Replay
// protection lives in the claim_requests unique index and the contract's
// own used-nonce set, not here.
type ClaimNonce struct {
	WalletAddress  string `gorm:"primaryKey;size:42"`
	GeneratedCount int64  `gorm:"not null;default:0"`
	UsedCount      int64  `gorm:"not null;default:0"`
	UpdatedAt      time.Time
}

type ClaimRequest struct {
	ID             string          `gorm:"primaryKey;autoIncrement:false"`
	WalletAddress  string          `gorm:"size:42;not null;uniqueIndex:idx_claim_wallet_nonce"`
	Nonce          string          `gorm:"size:66;not null;uniqueIndex:idx_claim_wallet_nonce"`
	PostID         *int64          ``
	Amount         decimal.Decimal `gorm:"type:numeric(38,18);not null"`
	Deadline       int64           `gorm:"not null;index"` // unix seconds
	Signature      string          `gorm:"type:text;not null"`
	Status         ClaimStatus     `gorm:"size:16;not null;index"`
	ExternalTxHash *string         `gorm:"size:66"`
	Reason         string          `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ChainCursor tracks the last fully processed block per watcher. ID is the
// watcher key: contract address + topic set + network.
type ChainCursor struct {
	ID                 string `gorm:"primaryKey;autoIncrement:false"`
	ContractAddress    string `gorm:"size:42;not null"`
	ChainID            int64  `gorm:"not null"`
	LastProcessedBlock uint64 `gorm:"not null"`
	UpdatedAt          time.Time
}

// Wallet is the contended balance row; every mutation goes through
// ApplyLedgerEntry under a row lock.
type Wallet struct {
	Address   string          `gorm:"primaryKey;size:42"`
	OwnerID   string          `gorm:"not null;uniqueIndex"`
	Balance   decimal.Decimal `gorm:"type:numeric(38,18);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Post mirrors the application entity just enough for existence checks.
type Post struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	OwnerID   string `gorm:"not null;index"`
	Deleted   bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// WalletAction records one actor acting once on one entity, e.g. a like.
// The unique index is what turns a replayed double-action into a domain
// conflict instead of a second ledger entry.
type WalletAction struct {
	ID            string `gorm:"primaryKey;autoIncrement:false"`
	WalletAddress string `gorm:"size:42;not null;uniqueIndex:idx_wallet_action"`
	Action        string `gorm:"size:32;not null;uniqueIndex:idx_wallet_action"`
	ReferenceID   string `gorm:"size:128;not null;uniqueIndex:idx_wallet_action"`
	CreatedAt     time.Time
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
