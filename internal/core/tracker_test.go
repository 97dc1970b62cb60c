package core_test

import (
	"context"
	"errors"
	"time"

	"chainledger/internal/core"
	"chainledger/internal/core/fake"
	"chainledger/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("Tracker", func() {
	const walletAddr = "0x1111111111111111111111111111111111111111"

	var (
		tracker *core.Tracker
		repo    *fake.Repository
		ctx     context.Context
	)

	BeforeEach(func() {
		logger := log.NewZapLogger("tracker-test", zapcore.ErrorLevel)
		repo = &fake.Repository{}
		tracker = core.NewTracker(logger, repo)
		ctx = context.Background()
	})

	Describe("Sweep", func() {
		It("expires claims against the current clock", func() {
			now := time.Unix(1_700_000_500, 0)
			core.TimeNow = func() time.Time { return now }
			defer func() { core.TimeNow = time.Now }()

			repo.ExpireOverdueClaimsReturns(3, nil)

			err := tracker.Sweep(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(repo.ExpireOverdueClaimsCallCount()).To(Equal(1))
			_, unixNow := repo.ExpireOverdueClaimsArgsForCall(0)
			Expect(unixNow).To(Equal(now.Unix()))
		})

		It("wraps store failures", func() {
			repo.ExpireOverdueClaimsReturns(0, errors.New("connection reset"))

			err := tracker.Sweep(ctx)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Fail", func() {
		It("moves a pending claim to failed", func() {
			repo.FailClaimRequestReturns(true, nil)

			err := tracker.Fail(ctx, walletAddr, "0xabc", "user cancelled")

			Expect(err).NotTo(HaveOccurred())
			_, wallet, nonce, reason := repo.FailClaimRequestArgsForCall(0)
			Expect(wallet).To(Equal(walletAddr))
			Expect(nonce).To(Equal("0xabc"))
			Expect(reason).To(Equal("user cancelled"))
		})

		It("tolerates a claim that is no longer pending", func() {
			repo.FailClaimRequestReturns(false, nil)

			err := tracker.Fail(ctx, walletAddr, "0xabc", "user cancelled")

			Expect(err).NotTo(HaveOccurred())
		})
	})
})
