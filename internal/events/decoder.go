package events

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrUnknownEvent error = errors.New("unknown event topic")
var ErrMalformedLog error = errors.New("malformed log")

// Topic hashes are the Keccak-256 of the canonical event signatures.
var (
	LikedTopic         = crypto.Keccak256Hash([]byte("Liked(uint256,address,uint256,uint256)"))
	TokensClaimedTopic = crypto.Keccak256Hash([]byte("TokensClaimed(address,uint256,uint256)"))
	ClaimExecutedTopic = crypto.Keccak256Hash([]byte("ClaimExecuted(address,uint256,uint256)"))
	TransferTopic      = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
)

// Topics returns the full topic0 filter set the watcher subscribes to.
func Topics() []common.Hash {
	return []common.Hash{LikedTopic, TokensClaimedTopic, ClaimExecutedTopic, TransferTopic}
}

var uint256Ty = mustABIType("uint256")

func mustABIType(t string) abi.Type {
	ty, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(fmt.Sprintf("abi type %q: %s", t, err))
	}
	return ty
}

type decodeFunc func(types.Log) (Event, error)

type Decoder struct {
	decoders map[common.Hash]decodeFunc
}

func NewDecoder() *Decoder {
	return &Decoder{
		decoders: map[common.Hash]decodeFunc{
			LikedTopic:         decodeLiked,
			TokensClaimedTopic: decodeTokensClaimed,
			ClaimExecutedTopic: decodeClaimExecuted,
			TransferTopic:      decodeTransfer,
		},
	}
}

// Decode turns a raw log into one of the closed event variants. Unknown
// topics return ErrUnknownEvent so the caller can drop the log without
// aborting the batch.
func (d *Decoder) Decode(log types.Log) (Event, error) {
	if len(log.Topics) == 0 {
		return nil, fmt.Errorf("%w: no topics", ErrMalformedLog)
	}

	decode, ok := d.decoders[log.Topics[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, log.Topics[0].Hex())
	}

	return decode(log)
}

func logMeta(log types.Log) LogMeta {
	return LogMeta{
		BlockNumber: log.BlockNumber,
		TxHash:      log.TxHash,
		LogIndex:    log.Index,
	}
}

// Liked(uint256 indexed postId, address indexed user, uint256 amount, uint256 timestamp)
func decodeLiked(log types.Log) (Event, error) {
	if len(log.Topics) != 3 {
		return nil, fmt.Errorf("%w: Liked expects 3 topics, got %d", ErrMalformedLog, len(log.Topics))
	}

	args := abi.Arguments{
		{Name: "amount", Type: uint256Ty},
		{Name: "timestamp", Type: uint256Ty},
	}
	vals, err := args.UnpackValues(log.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: unpack Liked data: %s", ErrMalformedLog, err)
	}

	return Liked{
		LogMeta:   logMeta(log),
		PostID:    new(big.Int).SetBytes(log.Topics[1].Bytes()),
		User:      common.BytesToAddress(log.Topics[2].Bytes()),
		Amount:    vals[0].(*big.Int),
		Timestamp: vals[1].(*big.Int),
	}, nil
}

// TokensClaimed(address indexed to, uint256 postId, uint256 amount)
func decodeTokensClaimed(log types.Log) (Event, error) {
	if len(log.Topics) != 2 {
		return nil, fmt.Errorf("%w: TokensClaimed expects 2 topics, got %d", ErrMalformedLog, len(log.Topics))
	}

	args := abi.Arguments{
		{Name: "postId", Type: uint256Ty},
		{Name: "amount", Type: uint256Ty},
	}
	vals, err := args.UnpackValues(log.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: unpack TokensClaimed data: %s", ErrMalformedLog, err)
	}

	return TokensClaimed{
		LogMeta: logMeta(log),
		To:      common.BytesToAddress(log.Topics[1].Bytes()),
		PostID:  vals[0].(*big.Int),
		Amount:  vals[1].(*big.Int),
	}, nil
}

// ClaimExecuted(address indexed to, uint256 amount, uint256 nonce)
func decodeClaimExecuted(log types.Log) (Event, error) {
	if len(log.Topics) != 2 {
		return nil, fmt.Errorf("%w: ClaimExecuted expects 2 topics, got %d", ErrMalformedLog, len(log.Topics))
	}

	args := abi.Arguments{
		{Name: "amount", Type: uint256Ty},
		{Name: "nonce", Type: uint256Ty},
	}
	vals, err := args.UnpackValues(log.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: unpack ClaimExecuted data: %s", ErrMalformedLog, err)
	}

	return ClaimExecuted{
		LogMeta: logMeta(log),
		To:      common.BytesToAddress(log.Topics[1].Bytes()),
		Amount:  vals[0].(*big.Int),
		Nonce:   vals[1].(*big.Int),
	}, nil
}

// Transfer(address indexed from, address indexed to, uint256 value)
func decodeTransfer(log types.Log) (Event, error) {
	if len(log.Topics) != 3 {
		return nil, fmt.Errorf("%w: Transfer expects 3 topics, got %d", ErrMalformedLog, len(log.Topics))
	}

	args := abi.Arguments{
		{Name: "value", Type: uint256Ty},
	}
	vals, err := args.UnpackValues(log.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: unpack Transfer data: %s", ErrMalformedLog, err)
	}

	return Transfer{
		LogMeta: logMeta(log),
		From:    common.BytesToAddress(log.Topics[1].Bytes()),
		To:      common.BytesToAddress(log.Topics[2].Bytes()),
		Value:   vals[0].(*big.Int),
	}, nil
}
