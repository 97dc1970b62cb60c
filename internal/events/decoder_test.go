package events_test

import (
	"context"
	"math/big"

	"chainledger/internal/events"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func uint256Word(v *big.Int) []byte {
	return common.LeftPadBytes(v.Bytes(), 32)
}

func addressTopic(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}

type recordingHandler struct {
	liked    []events.Liked
	claimed  []events.TokensClaimed
	executed []events.ClaimExecuted
	transfer []events.Transfer
}

func (h *recordingHandler) HandleLiked(_ context.Context, event events.Liked) (events.Outcome, error) {
	h.liked = append(h.liked, event)
	return events.OutcomeApplied, nil
}

func (h *recordingHandler) HandleTokensClaimed(_ context.Context, event events.TokensClaimed) (events.Outcome, error) {
	h.claimed = append(h.claimed, event)
	return events.OutcomeApplied, nil
}

func (h *recordingHandler) HandleClaimExecuted(_ context.Context, event events.ClaimExecuted) (events.Outcome, error) {
	h.executed = append(h.executed, event)
	return events.OutcomeApplied, nil
}

func (h *recordingHandler) HandleTransfer(_ context.Context, event events.Transfer) (events.Outcome, error) {
	h.transfer = append(h.transfer, event)
	return events.OutcomeSkipped, nil
}

var _ = Describe("Decoder", func() {
	var (
		decoder *events.Decoder
		user    common.Address
		other   common.Address
	)

	BeforeEach(func() {
		decoder = events.NewDecoder()
		user = common.HexToAddress("0x1111111111111111111111111111111111111111")
		other = common.HexToAddress("0x2222222222222222222222222222222222222222")
	})

	When("a Liked log is decoded", func() {
		It("returns the Liked event with topics and data unpacked", func() {
			log := types.Log{
				BlockNumber: 42,
				TxHash:      common.HexToHash("0xabc1"),
				Index:       3,
				Topics: []common.Hash{
					events.LikedTopic,
					common.BigToHash(big.NewInt(7)),
					addressTopic(user),
				},
				Data: append(
					uint256Word(big.NewInt(1000)),
					uint256Word(big.NewInt(1700000000))...),
			}

			event, err := decoder.Decode(log)

			Expect(err).NotTo(HaveOccurred())
			liked, ok := event.(events.Liked)
			Expect(ok).To(BeTrue())
			Expect(liked.PostID.Int64()).To(Equal(int64(7)))
			Expect(liked.User).To(Equal(user))
			Expect(liked.Amount.Int64()).To(Equal(int64(1000)))
			Expect(liked.Timestamp.Int64()).To(Equal(int64(1700000000)))
			Expect(liked.Meta().BlockNumber).To(Equal(uint64(42)))
			Expect(liked.Meta().LogIndex).To(Equal(uint(3)))
		})

		It("rejects a log with a missing indexed topic", func() {
			log := types.Log{
				Topics: []common.Hash{events.LikedTopic, common.BigToHash(big.NewInt(7))},
				Data:   uint256Word(big.NewInt(1000)),
			}

			_, err := decoder.Decode(log)

			Expect(err).To(MatchError(events.ErrMalformedLog))
		})

		It("rejects a log with truncated data", func() {
			log := types.Log{
				Topics: []common.Hash{
					events.LikedTopic,
					common.BigToHash(big.NewInt(7)),
					addressTopic(user),
				},
				Data: uint256Word(big.NewInt(1000))[:16],
			}

			_, err := decoder.Decode(log)

			Expect(err).To(MatchError(events.ErrMalformedLog))
		})
	})

	When("a TokensClaimed log is decoded", func() {
		It("returns the TokensClaimed event", func() {
			log := types.Log{
				BlockNumber: 99,
				Topics: []common.Hash{
					events.TokensClaimedTopic,
					addressTopic(user),
				},
				Data: append(
					uint256Word(big.NewInt(7)),
					uint256Word(big.NewInt(500))...),
			}

			event, err := decoder.Decode(log)

			Expect(err).NotTo(HaveOccurred())
			claimed, ok := event.(events.TokensClaimed)
			Expect(ok).To(BeTrue())
			Expect(claimed.To).To(Equal(user))
			Expect(claimed.PostID.Int64()).To(Equal(int64(7)))
			Expect(claimed.Amount.Int64()).To(Equal(int64(500)))
		})
	})

	When("a ClaimExecuted log is decoded", func() {
		It("returns the ClaimExecuted event", func() {
			nonce, ok := new(big.Int).SetString("ff00000000000000000000000000000000000000000000000000000000000001", 16)
			Expect(ok).To(BeTrue())

			log := types.Log{
				Topics: []common.Hash{
					events.ClaimExecutedTopic,
					addressTopic(user),
				},
				Data: append(
					uint256Word(big.NewInt(250)),
					uint256Word(nonce)...),
			}

			event, err := decoder.Decode(log)

			Expect(err).NotTo(HaveOccurred())
			executed, ok := event.(events.ClaimExecuted)
			Expect(ok).To(BeTrue())
			Expect(executed.To).To(Equal(user))
			Expect(executed.Amount.Int64()).To(Equal(int64(250)))
			Expect(executed.Nonce.Cmp(nonce)).To(BeZero())
		})
	})

	When("a Transfer log is decoded", func() {
		It("returns the Transfer event with both parties", func() {
			log := types.Log{
				Topics: []common.Hash{
					events.TransferTopic,
					addressTopic(user),
					addressTopic(other),
				},
				Data: uint256Word(big.NewInt(123)),
			}

			event, err := decoder.Decode(log)

			Expect(err).NotTo(HaveOccurred())
			transfer, ok := event.(events.Transfer)
			Expect(ok).To(BeTrue())
			Expect(transfer.From).To(Equal(user))
			Expect(transfer.To).To(Equal(other))
			Expect(transfer.Value.Int64()).To(Equal(int64(123)))
		})
	})

	When("the topic is not part of the watched set", func() {
		It("returns ErrUnknownEvent", func() {
			log := types.Log{
				Topics: []common.Hash{common.HexToHash("0xdead")},
			}

			_, err := decoder.Decode(log)

			Expect(err).To(MatchError(events.ErrUnknownEvent))
		})
	})

	When("the log has no topics at all", func() {
		It("returns ErrMalformedLog", func() {
			_, err := decoder.Decode(types.Log{})

			Expect(err).To(MatchError(events.ErrMalformedLog))
		})
	})
})

var _ = Describe("Dispatch", func() {
	It("routes every variant to its handler method", func() {
		handler := &recordingHandler{}
		ctx := context.Background()

		outcome, err := events.Dispatch(ctx, handler, events.Liked{PostID: big.NewInt(1)})
		Expect(err).NotTo(HaveOccurred())
		Expect(outcome).To(Equal(events.OutcomeApplied))

		_, err = events.Dispatch(ctx, handler, events.TokensClaimed{PostID: big.NewInt(2)})
		Expect(err).NotTo(HaveOccurred())

		_, err = events.Dispatch(ctx, handler, events.ClaimExecuted{Nonce: big.NewInt(3)})
		Expect(err).NotTo(HaveOccurred())

		outcome, err = events.Dispatch(ctx, handler, events.Transfer{Value: big.NewInt(4)})
		Expect(err).NotTo(HaveOccurred())
		Expect(outcome).To(Equal(events.OutcomeSkipped))

		Expect(handler.liked).To(HaveLen(1))
		Expect(handler.claimed).To(HaveLen(1))
		Expect(handler.executed).To(HaveLen(1))
		Expect(handler.transfer).To(HaveLen(1))
	})
})
