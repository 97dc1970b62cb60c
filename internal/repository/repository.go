package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chainledger/internal/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrWalletNotFound error = errors.New("wallet not found")
var ErrPostNotFound error = errors.New("post not found")
var ErrDuplicateAction error = errors.New("duplicate wallet action")
var ErrInsufficientFunds error = errors.New("insufficient available balance")

const ledgerStatusConfirmed = "CONFIRMED"

// LedgerEntry describes one balance mutation to be applied atomically.
// Amount is signed: negative for deductions, positive for credits.
type LedgerEntry struct {
	WalletAddress  string
	Kind           TransactionKind
	Amount         decimal.Decimal
	ExternalTxHash *string
	ReferenceID    string
	ReferenceType  string
	// Action, when set, records a once-per-wallet-per-entity action and
	// turns a repeat into ErrDuplicateAction.
	Action string
}

type LedgerRepository struct {
	db *db.PostgresDB
}

func NewLedgerRepository(database *db.PostgresDB) *LedgerRepository {
	return &LedgerRepository{
		db: database,
	}
}

func (r *LedgerRepository) MigrateAndSeed() error {

	err := r.db.MigrateTable(
		&LedgerTransaction{},
		&ClaimNonce{},
		&ClaimRequest{},
		&ChainCursor{},
		&Wallet{},
		&Post{},
		&WalletAction{},
		&User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:       uuid.NewString(),
			Username: "operator",
			// bcrypt hash of the default dev password, rotated in deployment
			PasswordHash: "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky",
		},
	}
	err = r.db.Seed(context.Background(), &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *LedgerRepository) GetUser(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *LedgerRepository) GetWalletByAddress(ctx context.Context, address string) (Wallet, error) {
	var wallet Wallet

	err := r.db.GetOneBy(ctx, "address", address, &wallet)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Wallet{}, ErrWalletNotFound
		}
		return Wallet{}, fmt.Errorf("get wallet by address: %w", err)
	}

	return wallet, nil
}

func (r *LedgerRepository) GetPost(ctx context.Context, postID int64) (Post, error) {
	var post Post

	err := r.db.GetOneBy(ctx, "id", postID, &post)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Post{}, ErrPostNotFound
		}
		return Post{}, fmt.Errorf("get post by id: %w", err)
	}

	if post.Deleted {
		return Post{}, ErrPostNotFound
	}

	return post, nil
}

// HasLedgerEntry reports whether a transaction already exists for the
// idempotency key (externalTxHash, referenceType, kind).
func (r *LedgerRepository) HasLedgerEntry(ctx context.Context, externalTxHash, referenceType string, kind TransactionKind) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&LedgerTransaction{}).
		Where("external_tx_hash = ? AND reference_type = ? AND kind = ?", externalTxHash, referenceType, kind).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count ledger entries: %w", err)
	}

	return count > 0, nil
}

func (r *LedgerRepository) HasWalletAction(ctx context.Context, walletAddress, action, referenceID string) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&WalletAction{}).
		Where("wallet_address = ? AND action = ? AND reference_id = ?", walletAddress, action, referenceID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count wallet actions: %w", err)
	}

	return count > 0, nil
}

// lockWallet takes the wallet row lock every balance-affecting unit
// serializes on.
func lockWallet(tx *gorm.DB, address string) (Wallet, error) {
	var wallet Wallet
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("address = ?", address).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Wallet{}, ErrWalletNotFound
		}
		return Wallet{}, fmt.Errorf("lock wallet row: %w", err)
	}
	return wallet, nil
}

func pendingClaimTotal(tx *gorm.DB, walletAddress string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := tx.Model(&ClaimRequest{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("wallet_address = ? AND status = ?", walletAddress, ClaimPending).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum pending claims: %w", err)
	}
	return total, nil
}

// insertLedgerEntry writes the ledger row and the moved balance together.
// Callers must hold the wallet row lock.
func insertLedgerEntry(tx *gorm.DB, wallet Wallet, entry LedgerEntry) error {
	balanceBefore := wallet.Balance
	balanceAfter := balanceBefore.Add(entry.Amount)

	err := tx.Create(&LedgerTransaction{
		ID:             uuid.NewString(),
		WalletOwnerID:  wallet.OwnerID,
		Kind:           entry.Kind,
		Amount:         entry.Amount,
		BalanceBefore:  balanceBefore,
		BalanceAfter:   balanceAfter,
		ExternalTxHash: entry.ExternalTxHash,
		ReferenceID:    entry.ReferenceID,
		ReferenceType:  entry.ReferenceType,
		Status:         ledgerStatusConfirmed,
	}).Error
	if err != nil {
		return fmt.Errorf("insert ledger transaction: %w", err)
	}

	err = tx.Model(&Wallet{}).
		Where("address = ?", entry.WalletAddress).
		Update("balance", balanceAfter).Error
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}

	return nil
}

// hasLedgerEntryTx re-runs the idempotency lookup under the wallet lock, a
// racing writer may have inserted the same key since the caller looked.
func hasLedgerEntryTx(tx *gorm.DB, entry LedgerEntry) (bool, error) {
	if entry.ExternalTxHash == nil {
		return false, nil
	}

	var count int64
	err := tx.Model(&LedgerTransaction{}).
		Where("external_tx_hash = ? AND reference_type = ? AND kind = ?",
			*entry.ExternalTxHash, entry.ReferenceType, entry.Kind).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("re-check idempotency key: %w", err)
	}
	return count > 0, nil
}

// ApplyLedgerEntry applies one balance mutation atomically: the wallet row
// is locked for the duration of the transaction, the idempotency key is
// re-checked under the lock, and the ledger row plus the updated balance
// are written together. Returns false when the entry already existed.
func (r *LedgerRepository) ApplyLedgerEntry(ctx context.Context, entry LedgerEntry) (bool, error) {
	created := false

	err := r.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		wallet, err := lockWallet(tx, entry.WalletAddress)
		if err != nil {
			return err
		}

		seen, err := hasLedgerEntryTx(tx, entry)
		if err != nil {
			return err
		}
		if seen {
			return nil
		}

		if entry.Action != "" {
			var count int64
			err = tx.Model(&WalletAction{}).
				Where("wallet_address = ? AND action = ? AND reference_id = ?",
					entry.WalletAddress, entry.Action, entry.ReferenceID).
				Count(&count).Error
			if err != nil {
				return fmt.Errorf("re-check wallet action: %w", err)
			}
			if count > 0 {
				return ErrDuplicateAction
			}

			err = tx.Create(&WalletAction{
				ID:            uuid.NewString(),
				WalletAddress: entry.WalletAddress,
				Action:        entry.Action,
				ReferenceID:   entry.ReferenceID,
			}).Error
			if err != nil {
				return fmt.Errorf("insert wallet action: %w", err)
			}
		}

		if err = insertLedgerEntry(tx, wallet, entry); err != nil {
			return err
		}

		created = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return created, nil
}

// ReserveClaimRequest persists a PENDING claim while holding the wallet
// row lock, re-checking that the balance still covers every outstanding
// PENDING claim plus this one. Concurrent issuances against the same
// wallet serialize on the lock, so the reservations can never add up past
// the balance.
func (r *LedgerRepository) ReserveClaimRequest(ctx context.Context, request ClaimRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	return r.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		wallet, err := lockWallet(tx, request.WalletAddress)
		if err != nil {
			return err
		}

		pending, err := pendingClaimTotal(tx, request.WalletAddress)
		if err != nil {
			return err
		}

		if request.Amount.GreaterThan(wallet.Balance.Sub(pending)) {
			return ErrInsufficientFunds
		}

		if err = tx.Create(&request).Error; err != nil {
			return fmt.Errorf("insert claim request: %w", err)
		}
		return nil
	})
}

// ExecuteClaimWithCredit moves a claim from PENDING to EXECUTED and writes
// the matching reward credit as one transactional unit, so a failure on
// either side rolls both back and the next delivery retries the pair. The
// status update is conditional on the current status and a live deadline
// so it cannot race the expiry sweep. Returns false when the credit
// already exists or no pending row matched.
func (r *LedgerRepository) ExecuteClaimWithCredit(ctx context.Context, nonce string, now int64, entry LedgerEntry) (bool, error) {
	executed := false

	err := r.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		wallet, err := lockWallet(tx, entry.WalletAddress)
		if err != nil {
			return err
		}

		seen, err := hasLedgerEntryTx(tx, entry)
		if err != nil {
			return err
		}
		if seen {
			return nil
		}

		res := tx.Model(&ClaimRequest{}).
			Where("wallet_address = ? AND nonce = ? AND status = ? AND deadline >= ?",
				entry.WalletAddress, nonce, ClaimPending, now).
			Updates(map[string]any{
				"status":           ClaimExecuted,
				"external_tx_hash": entry.ExternalTxHash,
				"updated_at":       time.Now(),
			})
		if res.Error != nil {
			return fmt.Errorf("execute claim request: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}

		if err = insertLedgerEntry(tx, wallet, entry); err != nil {
			return err
		}

		executed = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return executed, nil
}

func (r *LedgerRepository) FailClaimRequest(ctx context.Context, walletAddress, nonce, reason string) (bool, error) {
	tx := r.db.DB.WithContext(ctx).
		Model(&ClaimRequest{}).
		Where("wallet_address = ? AND nonce = ? AND status = ?", walletAddress, nonce, ClaimPending).
		Updates(map[string]any{
			"status":     ClaimFailed,
			"reason":     reason,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return false, fmt.Errorf("fail claim request: %w", tx.Error)
	}

	return tx.RowsAffected > 0, nil
}

// ExpireOverdueClaims sweeps every PENDING claim whose deadline has passed.
// The status predicate makes the check-and-set atomic against a concurrent
// execution event.
func (r *LedgerRepository) ExpireOverdueClaims(ctx context.Context, now int64) (int64, error) {
	tx := r.db.DB.WithContext(ctx).
		Model(&ClaimRequest{}).
		Where("status = ? AND deadline < ?", ClaimPending, now).
		Updates(map[string]any{
			"status":     ClaimExpired,
			"reason":     "deadline passed",
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return 0, fmt.Errorf("expire overdue claims: %w", tx.Error)
	}

	return tx.RowsAffected, nil
}

// AvailableTokens reports what a wallet can still claim against: the
// ledger balance minus the amounts reserved by outstanding PENDING claims.
// The read is advisory; the binding check happens under the wallet lock in
// ReserveClaimRequest.
func (r *LedgerRepository) AvailableTokens(ctx context.Context, walletAddress string) (decimal.Decimal, error) {
	wallet, err := r.GetWalletByAddress(ctx, walletAddress)
	if err != nil {
		return decimal.Zero, err
	}

	pending, err := pendingClaimTotal(r.db.DB.WithContext(ctx), walletAddress)
	if err != nil {
		return decimal.Zero, err
	}

	return wallet.Balance.Sub(pending), nil
}

func (r *LedgerRepository) IncrementNonceGenerated(ctx context.Context, walletAddress string) error {
	err := r.db.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "wallet_address"}},
			DoUpdates: clause.Assignments(map[string]any{
				"generated_count": gorm.Expr("claim_nonces.generated_count + 1"),
				"updated_at":      time.Now(),
			}),
		}).
		Create(&ClaimNonce{WalletAddress: walletAddress, GeneratedCount: 1}).Error
	if err != nil {
		return fmt.Errorf("increment generated counter: %w", err)
	}
	return nil
}

func (r *LedgerRepository) IncrementNonceUsed(ctx context.Context, walletAddress string) error {
	err := r.db.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "wallet_address"}},
			DoUpdates: clause.Assignments(map[string]any{
				"used_count": gorm.Expr("claim_nonces.used_count + 1"),
				"updated_at": time.Now(),
			}),
		}).
		Create(&ClaimNonce{WalletAddress: walletAddress, UsedCount: 1}).Error
	if err != nil {
		return fmt.Errorf("increment used counter: %w", err)
	}
	return nil
}

func (r *LedgerRepository) GetCursor(ctx context.Context, cursorID string) (ChainCursor, error) {
	var cursor ChainCursor

	err := r.db.GetOneBy(ctx, "id", cursorID, &cursor)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ChainCursor{}, db.ErrNotFound
		}
		return ChainCursor{}, fmt.Errorf("get cursor: %w", err)
	}

	return cursor, nil
}

func (r *LedgerRepository) SaveCursor(ctx context.Context, cursor ChainCursor) error {
	cursor.UpdatedAt = time.Now()
	err := r.db.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&cursor).Error
	if err != nil {
		return fmt.Errorf("save cursor: %w", err)
	}
	return nil
}
