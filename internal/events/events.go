package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Event is the closed set of decoded contract events. The marker method
// keeps the set sealed so the dispatcher can match exhaustively.
type Event interface {
	Name() string
	Meta() LogMeta
	isEvent()
}

// LogMeta carries the raw-log coordinates every decoded event keeps for
// idempotency keys and tracing.
type LogMeta struct {
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
}

// Liked is emitted when a user likes a post, burning tokens.
type Liked struct {
	LogMeta
	PostID    *big.Int
	User      common.Address
	Amount    *big.Int
	Timestamp *big.Int
}

func (e Liked) Name() string  { return "Liked" }
func (e Liked) Meta() LogMeta { return e.LogMeta }
func (e Liked) isEvent()      {}

// TokensClaimed is emitted when a post owner claims accrued reward tokens.
type TokensClaimed struct {
	LogMeta
	To     common.Address
	PostID *big.Int
	Amount *big.Int
}

func (e TokensClaimed) Name() string  { return "TokensClaimed" }
func (e TokensClaimed) Meta() LogMeta { return e.LogMeta }
func (e TokensClaimed) isEvent()      {}

// ClaimExecuted is emitted when a signed claim ticket is redeemed on-chain.
type ClaimExecuted struct {
	LogMeta
	To     common.Address
	Amount *big.Int
	Nonce  *big.Int
}

func (e ClaimExecuted) Name() string  { return "ClaimExecuted" }
func (e ClaimExecuted) Meta() LogMeta { return e.LogMeta }
func (e ClaimExecuted) isEvent()      {}

// Transfer is the ERC-20 transfer event between wallets.
type Transfer struct {
	LogMeta
	From  common.Address
	To    common.Address
	Value *big.Int
}

func (e Transfer) Name() string  { return "Transfer" }
func (e Transfer) Meta() LogMeta { return e.LogMeta }
func (e Transfer) isEvent()      {}
