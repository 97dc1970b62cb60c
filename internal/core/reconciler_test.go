package core_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"chainledger/internal/core"
	"chainledger/internal/core/fake"
	"chainledger/internal/events"
	"chainledger/internal/repository"
	"chainledger/pkg/log"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("Reconciler", func() {
	var (
		reconciler *core.Reconciler
		repo       *fake.Repository
		ctx        context.Context

		userAddr  common.Address
		otherAddr common.Address
		txHash    common.Hash
	)

	BeforeEach(func() {
		logger := log.NewZapLogger("reconciler-test", zapcore.ErrorLevel)
		repo = &fake.Repository{}
		reconciler = core.NewReconciler(logger, repo, 18)
		ctx = context.Background()

		userAddr = common.HexToAddress("0x1111111111111111111111111111111111111111")
		otherAddr = common.HexToAddress("0x2222222222222222222222222222222222222222")
		txHash = common.HexToHash("0xaaaa")

		repo.GetWalletByAddressReturns(repository.Wallet{
			Address: userAddr.Hex(),
			OwnerID: "10",
			Balance: decimal.RequireFromString("100"),
		}, nil)
		repo.GetPostReturns(repository.Post{ID: 7, OwnerID: "10"}, nil)
		repo.ApplyLedgerEntryReturns(true, nil)
	})

	Describe("HandleLiked", func() {
		var event events.Liked

		BeforeEach(func() {
			event = events.Liked{
				LogMeta: events.LogMeta{BlockNumber: 5, TxHash: txHash, LogIndex: 1},
				PostID:  big.NewInt(7),
				User:    userAddr,
				// 1.5 tokens at 18 decimals
				Amount:    big.NewInt(1_500_000_000_000_000_000),
				Timestamp: big.NewInt(1_700_000_000),
			}
		})

		It("debits the liker and records the like action", func() {
			outcome, err := reconciler.HandleLiked(ctx, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeApplied))

			Expect(repo.ApplyLedgerEntryCallCount()).To(Equal(1))
			_, entry := repo.ApplyLedgerEntryArgsForCall(0)
			Expect(entry.WalletAddress).To(Equal(userAddr.Hex()))
			Expect(entry.Kind).To(Equal(repository.KindDeductOnAction))
			Expect(entry.Amount.String()).To(Equal("-1.5"))
			Expect(*entry.ExternalTxHash).To(Equal(txHash.Hex()))
			Expect(entry.ReferenceID).To(Equal("7"))
			Expect(entry.Action).To(Equal("LIKE"))
		})

		It("is a no-op when the same delivery was already applied", func() {
			repo.HasLedgerEntryReturns(true, nil)

			outcome, err := reconciler.HandleLiked(ctx, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeSkipped))
			Expect(repo.ApplyLedgerEntryCallCount()).To(BeZero())
		})

		It("is a no-op when the wallet is not tracked", func() {
			repo.GetWalletByAddressReturns(repository.Wallet{}, repository.ErrWalletNotFound)

			outcome, err := reconciler.HandleLiked(ctx, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeSkipped))
			Expect(repo.ApplyLedgerEntryCallCount()).To(BeZero())
		})

		It("is a no-op when the post was deleted", func() {
			repo.GetPostReturns(repository.Post{}, repository.ErrPostNotFound)

			outcome, err := reconciler.HandleLiked(ctx, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeSkipped))
			Expect(repo.ApplyLedgerEntryCallCount()).To(BeZero())
		})

		It("drops the event when the wallet already liked the post", func() {
			repo.HasWalletActionReturns(true, nil)

			outcome, err := reconciler.HandleLiked(ctx, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeSkipped))
			Expect(repo.ApplyLedgerEntryCallCount()).To(BeZero())
		})

		It("drops the event when a concurrent duplicate like surfaces from the store", func() {
			repo.ApplyLedgerEntryReturns(false, repository.ErrDuplicateAction)

			outcome, err := reconciler.HandleLiked(ctx, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeSkipped))
		})

		It("surfaces transient store failures so the pass can retry", func() {
			repo.HasLedgerEntryReturns(false, errors.New("connection reset"))

			_, err := reconciler.HandleLiked(ctx, event)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("HandleTokensClaimed", func() {
		It("credits the post owner", func() {
			event := events.TokensClaimed{
				LogMeta: events.LogMeta{TxHash: txHash},
				To:      userAddr,
				PostID:  big.NewInt(7),
				Amount:  big.NewInt(2_000_000_000_000_000_000),
			}

			outcome, err := reconciler.HandleTokensClaimed(ctx, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeApplied))

			_, entry := repo.ApplyLedgerEntryArgsForCall(0)
			Expect(entry.Kind).To(Equal(repository.KindRewardClaim))
			Expect(entry.Amount.String()).To(Equal("2"))
			Expect(entry.ReferenceType).To(Equal("POST_CLAIM"))
		})
	})

	Describe("HandleClaimExecuted", func() {
		var event events.ClaimExecuted

		BeforeEach(func() {
			event = events.ClaimExecuted{
				LogMeta: events.LogMeta{TxHash: txHash},
				To:      userAddr,
				Amount:  big.NewInt(3_000_000_000_000_000_000),
				Nonce:   big.NewInt(42),
			}
			repo.ExecuteClaimWithCreditReturns(true, nil)
		})

		It("marks the pending claim executed and credits the ledger in one unit", func() {
			now := time.Unix(1_700_000_123, 0)
			core.TimeNow = func() time.Time { return now }
			defer func() { core.TimeNow = time.Now }()

			outcome, err := reconciler.HandleClaimExecuted(ctx, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeApplied))

			Expect(repo.ExecuteClaimWithCreditCallCount()).To(Equal(1))
			_, nonce, unixNow, entry := repo.ExecuteClaimWithCreditArgsForCall(0)
			Expect(nonce).To(Equal(common.BigToHash(big.NewInt(42)).Hex()))
			Expect(unixNow).To(Equal(now.Unix()))
			Expect(entry.WalletAddress).To(Equal(userAddr.Hex()))
			Expect(entry.Kind).To(Equal(repository.KindRewardClaim))
			Expect(entry.Amount.String()).To(Equal("3"))
			Expect(*entry.ExternalTxHash).To(Equal(txHash.Hex()))
			Expect(entry.ReferenceType).To(Equal("CLAIM"))

			Expect(repo.IncrementNonceUsedCallCount()).To(Equal(1))
		})

		It("drops the event when no pending claim matches", func() {
			repo.ExecuteClaimWithCreditReturns(false, nil)

			outcome, err := reconciler.HandleClaimExecuted(ctx, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeSkipped))
			Expect(repo.IncrementNonceUsedCallCount()).To(BeZero())
		})

		It("credits the reward when the delivery is replayed after a transient failure", func() {
			// the claim must stay PENDING across the failed attempt so the
			// retry can pick it up again
			status := repository.ClaimPending
			repo.ExecuteClaimWithCreditStub = func(_ context.Context, _ string, _ int64, _ repository.LedgerEntry) (bool, error) {
				if repo.ExecuteClaimWithCreditCallCount() == 1 {
					return false, errors.New("connection reset")
				}
				status = repository.ClaimExecuted
				return true, nil
			}

			_, err := reconciler.HandleClaimExecuted(ctx, event)
			Expect(err).To(HaveOccurred())
			Expect(status).To(Equal(repository.ClaimPending))

			outcome, err := reconciler.HandleClaimExecuted(ctx, event)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeApplied))
			Expect(status).To(Equal(repository.ClaimExecuted))
		})

		It("still applies when the used-nonce counter cannot be bumped", func() {
			repo.IncrementNonceUsedReturns(errors.New("deadlock"))

			outcome, err := reconciler.HandleClaimExecuted(ctx, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeApplied))
		})
	})

	Describe("HandleTransfer", func() {
		var event events.Transfer

		BeforeEach(func() {
			event = events.Transfer{
				LogMeta: events.LogMeta{TxHash: txHash},
				From:    userAddr,
				To:      otherAddr,
				Value:   big.NewInt(1_000_000_000_000_000_000),
			}
		})

		It("debits the sender and credits the receiver when both are tracked", func() {
			repo.GetWalletByAddressStub = func(_ context.Context, address string) (repository.Wallet, error) {
				return repository.Wallet{Address: address}, nil
			}

			outcome, err := reconciler.HandleTransfer(ctx, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeApplied))
			Expect(repo.ApplyLedgerEntryCallCount()).To(Equal(2))

			_, debit := repo.ApplyLedgerEntryArgsForCall(0)
			Expect(debit.WalletAddress).To(Equal(userAddr.Hex()))
			Expect(debit.Kind).To(Equal(repository.KindTransferOut))
			Expect(debit.Amount.String()).To(Equal("-1"))

			_, credit := repo.ApplyLedgerEntryArgsForCall(1)
			Expect(credit.WalletAddress).To(Equal(otherAddr.Hex()))
			Expect(credit.Kind).To(Equal(repository.KindTransferIn))
			Expect(credit.Amount.String()).To(Equal("1"))
		})

		It("applies only the tracked side", func() {
			repo.GetWalletByAddressStub = func(_ context.Context, address string) (repository.Wallet, error) {
				if address == otherAddr.Hex() {
					return repository.Wallet{Address: address}, nil
				}
				return repository.Wallet{}, repository.ErrWalletNotFound
			}

			outcome, err := reconciler.HandleTransfer(ctx, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeApplied))
			Expect(repo.ApplyLedgerEntryCallCount()).To(Equal(1))

			_, credit := repo.ApplyLedgerEntryArgsForCall(0)
			Expect(credit.WalletAddress).To(Equal(otherAddr.Hex()))
		})

		It("is a no-op when neither side is tracked", func() {
			repo.GetWalletByAddressReturns(repository.Wallet{}, repository.ErrWalletNotFound)

			outcome, err := reconciler.HandleTransfer(ctx, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(events.OutcomeSkipped))
			Expect(repo.ApplyLedgerEntryCallCount()).To(BeZero())
		})
	})
})
