package repository_test

import (
	"context"
	"database/sql"

	"chainledger/internal/db"
	"chainledger/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ = Describe("LedgerRepository", func() {
	const walletAddr = "0x1111111111111111111111111111111111111111"

	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		repo   *repository.LedgerRepository
		ctx    context.Context
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		repo = repository.NewLedgerRepository(&db.PostgresDB{DB: gormDB})
		ctx = context.Background()
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("GetWalletByAddress", func() {
		When("the wallet is unknown", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE address = \$1.*`).
					WithArgs(walletAddr, 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrWalletNotFound", func() {
				_, err := repo.GetWalletByAddress(ctx, walletAddr)
				Expect(err).To(MatchError(repository.ErrWalletNotFound))
			})
		})
	})

	Describe("GetPost", func() {
		When("the post is soft-deleted", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1.*`).
					WithArgs(int64(7), 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "deleted"}).
						AddRow(7, "10", true))
			})

			It("should report it as not found", func() {
				_, err := repo.GetPost(ctx, 7)
				Expect(err).To(MatchError(repository.ErrPostNotFound))
			})
		})
	})

	Describe("HasLedgerEntry", func() {
		When("the idempotency key already exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "ledger_transactions" WHERE external_tx_hash = \$1 AND reference_type = \$2 AND kind = \$3`).
					WithArgs("0xbeef", "TRANSFER", string(repository.KindTransferIn)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			})

			It("should return true", func() {
				seen, err := repo.HasLedgerEntry(ctx, "0xbeef", "TRANSFER", repository.KindTransferIn)
				Expect(err).NotTo(HaveOccurred())
				Expect(seen).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("ApplyLedgerEntry", func() {
		txHash := "0xbeef"

		When("the entry is new", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE address = \$1.*FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"address", "owner_id", "balance"}).
						AddRow(walletAddr, "10", "100"))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "ledger_transactions".*`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec(`INSERT INTO "ledger_transactions".*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`UPDATE "wallets" SET.*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("locks the wallet row and writes ledger row plus balance together", func() {
				created, err := repo.ApplyLedgerEntry(ctx, repository.LedgerEntry{
					WalletAddress:  walletAddr,
					Kind:           repository.KindTransferIn,
					Amount:         decimal.RequireFromString("2.5"),
					ExternalTxHash: &txHash,
					ReferenceID:    txHash,
					ReferenceType:  "TRANSFER",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a racing writer inserted the same key first", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE address = \$1.*FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"address", "owner_id", "balance"}).
						AddRow(walletAddr, "10", "100"))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "ledger_transactions".*`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("commits without writing anything", func() {
				created, err := repo.ApplyLedgerEntry(ctx, repository.LedgerEntry{
					WalletAddress:  walletAddr,
					Kind:           repository.KindTransferIn,
					Amount:         decimal.RequireFromString("2.5"),
					ExternalTxHash: &txHash,
					ReferenceID:    txHash,
					ReferenceType:  "TRANSFER",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the wallet already performed the action", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE address = \$1.*FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"address", "owner_id", "balance"}).
						AddRow(walletAddr, "10", "100"))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "ledger_transactions".*`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "wallet_actions".*`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectRollback()
			})

			It("rolls back with ErrDuplicateAction", func() {
				_, err := repo.ApplyLedgerEntry(ctx, repository.LedgerEntry{
					WalletAddress:  walletAddr,
					Kind:           repository.KindDeductOnAction,
					Amount:         decimal.RequireFromString("-1"),
					ExternalTxHash: &txHash,
					ReferenceID:    "7",
					ReferenceType:  "POST_LIKE",
					Action:         "LIKE",
				})

				Expect(err).To(MatchError(repository.ErrDuplicateAction))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the wallet row does not exist", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE address = \$1.*FOR UPDATE`).
					WillReturnError(gorm.ErrRecordNotFound)
				mock.ExpectRollback()
			})

			It("rolls back with ErrWalletNotFound", func() {
				_, err := repo.ApplyLedgerEntry(ctx, repository.LedgerEntry{
					WalletAddress: walletAddr,
					Kind:          repository.KindTransferIn,
					Amount:        decimal.RequireFromString("1"),
				})

				Expect(err).To(MatchError(repository.ErrWalletNotFound))
			})
		})
	})

	Describe("ExecuteClaimWithCredit", func() {
		txHash := "0xbeef"
		entry := func() repository.LedgerEntry {
			return repository.LedgerEntry{
				WalletAddress:  walletAddr,
				Kind:           repository.KindRewardClaim,
				Amount:         decimal.RequireFromString("3"),
				ExternalTxHash: &txHash,
				ReferenceID:    "0xn1",
				ReferenceType:  "CLAIM",
			}
		}

		When("a live pending claim matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE address = \$1.*FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"address", "owner_id", "balance"}).
						AddRow(walletAddr, "10", "100"))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "ledger_transactions".*`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec(`UPDATE "claim_requests" SET.*WHERE wallet_address = \$\d+ AND nonce = \$\d+ AND status = \$\d+ AND deadline >= \$\d+`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO "ledger_transactions".*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`UPDATE "wallets" SET.*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("flips the status and writes the credit in the same transaction", func() {
				executed, err := repo.ExecuteClaimWithCredit(ctx, "0xn1", 1_700_000_000, entry())
				Expect(err).NotTo(HaveOccurred())
				Expect(executed).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the claim is expired or already terminal", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE address = \$1.*FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"address", "owner_id", "balance"}).
						AddRow(walletAddr, "10", "100"))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "ledger_transactions".*`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec(`UPDATE "claim_requests" SET.*`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("commits without a credit and reports no match", func() {
				executed, err := repo.ExecuteClaimWithCredit(ctx, "0xn1", 1_700_000_000, entry())
				Expect(err).NotTo(HaveOccurred())
				Expect(executed).To(BeFalse())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the credit was already written by an earlier delivery", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE address = \$1.*FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"address", "owner_id", "balance"}).
						AddRow(walletAddr, "10", "100"))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "ledger_transactions".*`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("leaves the claim untouched", func() {
				executed, err := repo.ExecuteClaimWithCredit(ctx, "0xn1", 1_700_000_000, entry())
				Expect(err).NotTo(HaveOccurred())
				Expect(executed).To(BeFalse())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the credit insert fails after the status flip", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE address = \$1.*FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"address", "owner_id", "balance"}).
						AddRow(walletAddr, "10", "100"))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "ledger_transactions".*`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec(`UPDATE "claim_requests" SET.*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO "ledger_transactions".*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("rolls the status flip back so the next delivery retries both", func() {
				_, err := repo.ExecuteClaimWithCredit(ctx, "0xn1", 1_700_000_000, entry())
				Expect(err).To(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("ReserveClaimRequest", func() {
		request := func() repository.ClaimRequest {
			return repository.ClaimRequest{
				WalletAddress: walletAddr,
				Nonce:         "0xn1",
				Amount:        decimal.RequireFromString("10"),
				Deadline:      1_700_000_300,
				Signature:     "0xsig",
				Status:        repository.ClaimPending,
			}
		}

		When("the balance covers the outstanding claims plus this one", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE address = \$1.*FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"address", "owner_id", "balance"}).
						AddRow(walletAddr, "10", "100"))
				mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "claim_requests".*`).
					WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))
				mock.ExpectExec(`INSERT INTO "claim_requests".*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("inserts the pending claim under the wallet lock", func() {
				Expect(repo.ReserveClaimRequest(ctx, request())).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("outstanding pending claims already consume the balance", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE address = \$1.*FOR UPDATE`).
					WillReturnRows(sqlmock.NewRows([]string{"address", "owner_id", "balance"}).
						AddRow(walletAddr, "10", "100"))
				mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "claim_requests".*`).
					WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("95"))
				mock.ExpectRollback()
			})

			It("rolls back with ErrInsufficientFunds", func() {
				err := repo.ReserveClaimRequest(ctx, request())
				Expect(err).To(MatchError(repository.ErrInsufficientFunds))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("ExpireOverdueClaims", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE "claim_requests" SET.*WHERE status = \$\d+ AND deadline < \$\d+`).
				WillReturnResult(sqlmock.NewResult(0, 3))
			mock.ExpectCommit()
		})

		It("should return the number of expired claims", func() {
			expired, err := repo.ExpireOverdueClaims(ctx, 1_700_000_000)
			Expect(err).NotTo(HaveOccurred())
			Expect(expired).To(Equal(int64(3)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("AvailableTokens", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE address = \$1.*`).
				WithArgs(walletAddr, 1).
				WillReturnRows(sqlmock.NewRows([]string{"address", "owner_id", "balance"}).
					AddRow(walletAddr, "10", "100"))
			mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "claim_requests" WHERE wallet_address = \$1 AND status = \$2`).
				WithArgs(walletAddr, string(repository.ClaimPending)).
				WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("12.5"))
		})

		It("should net outstanding pending claims out of the balance", func() {
			available, err := repo.AvailableTokens(ctx, walletAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(available.String()).To(Equal("87.5"))
		})
	})

	Describe("nonce counters", func() {
		It("upserts the generated counter", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`INSERT INTO "claim_nonces".*ON CONFLICT \("wallet_address"\) DO UPDATE SET.*`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			Expect(repo.IncrementNonceGenerated(ctx, walletAddr)).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("upserts the used counter", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`INSERT INTO "claim_nonces".*ON CONFLICT \("wallet_address"\) DO UPDATE SET.*`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			Expect(repo.IncrementNonceUsed(ctx, walletAddr)).To(Succeed())
		})
	})

	Describe("chain cursor", func() {
		When("no cursor has been stored yet", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "chain_cursors" WHERE id = \$1.*`).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should surface db.ErrNotFound", func() {
				_, err := repo.GetCursor(ctx, "0xc:31337")
				Expect(err).To(MatchError(db.ErrNotFound))
			})
		})

		It("upserts the cursor row", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`INSERT INTO "chain_cursors".*ON CONFLICT \("id"\) DO UPDATE SET.*`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			err := repo.SaveCursor(ctx, repository.ChainCursor{
				ID:                 "0xc:31337",
				ContractAddress:    "0xc",
				ChainID:            31337,
				LastProcessedBlock: 4200,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
