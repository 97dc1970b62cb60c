package core

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"chainledger/internal/db"
	"chainledger/internal/events"
	"chainledger/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const (
	// coldStartWindow is how far behind the head a fresh cursor starts,
	// so events emitted during downtime are not missed.
	coldStartWindow = 1000
	// maxRangePerPoll bounds one eth_getLogs query; a lagging cursor
	// catches up over successive polls.
	maxRangePerPoll = 5000
)

// SyncService drives one contract's log ingestion: it owns the chain
// cursor, pulls raw logs, decodes them and hands each event to the
// reconciler. Chain reorgs are not detected; replayed logs are absorbed by
// the ledger's idempotency key and vanished logs are an accepted risk.
type SyncService struct {
	logs    *zap.SugaredLogger
	repo    Repository
	node    ChainReader
	decoder *events.Decoder
	handler events.Handler

	contract common.Address
	topics   []common.Hash
	cursorID string
	chainID  int64
	enabled  bool

	listening atomic.Bool
	connected atomic.Bool
}

func NewSyncService(
	logger *zap.SugaredLogger,
	repo Repository,
	node ChainReader,
	decoder *events.Decoder,
	handler events.Handler,
	contractAddress string,
	chainID int64,
) *SyncService {
	enabled := contractAddress != ""
	if !enabled {
		logger.Warnw("sync service disabled: contract address missing")
	}

	return &SyncService{
		logs:     logger,
		repo:     repo,
		node:     node,
		decoder:  decoder,
		handler:  handler,
		contract: common.HexToAddress(contractAddress),
		topics:   events.Topics(),
		cursorID: fmt.Sprintf("%s:%d", contractAddress, chainID),
		chainID:  chainID,
		enabled:  enabled,
	}
}

// Poll runs one watcher pass: query the head, process [cursor+1, head] and
// advance the cursor only when the whole pass succeeded. Errors are
// transient by construction, the next tick retries the same range.
func (s *SyncService) Poll(ctx context.Context) error {
	if !s.enabled {
		return ErrNotConfigured
	}

	head, err := s.node.HeadBlock(ctx)
	if err != nil {
		s.connected.Store(false)
		return fmt.Errorf("query chain head: %w", err)
	}
	s.connected.Store(true)

	fromBlock, err := s.nextFromBlock(ctx, head)
	if err != nil {
		return err
	}
	if fromBlock > head {
		return nil
	}

	toBlock := head
	if toBlock-fromBlock+1 > maxRangePerPoll {
		toBlock = fromBlock + maxRangePerPoll - 1
	}

	summary, err := s.processRange(ctx, fromBlock, toBlock, true)
	if err != nil {
		return fmt.Errorf("process range [%d, %d]: %w", fromBlock, toBlock, err)
	}

	err = s.repo.SaveCursor(ctx, repository.ChainCursor{
		ID:                 s.cursorID,
		ContractAddress:    s.contract.Hex(),
		ChainID:            s.chainID,
		LastProcessedBlock: toBlock,
	})
	if err != nil {
		return fmt.Errorf("save cursor: %w", err)
	}

	if summary.TotalEvents > 0 {
		s.logs.Infow("poll pass complete",
			"fromBlock", fromBlock, "toBlock", toBlock,
			"totalEvents", summary.TotalEvents, "newEntries", summary.NewEntries)
	}
	return nil
}

// ReconcileRange reprocesses an arbitrary block range for manual resync.
// The cursor is left untouched and per-event failures are tallied instead
// of aborting, overlapping ranges are safe because reconciliation is
// idempotent.
func (s *SyncService) ReconcileRange(ctx context.Context, fromBlock, toBlock uint64) (ReconcileSummary, error) {
	if !s.enabled {
		return ReconcileSummary{}, ErrNotConfigured
	}
	if fromBlock > toBlock {
		return ReconcileSummary{}, fmt.Errorf("invalid range: from %d > to %d", fromBlock, toBlock)
	}

	head, err := s.node.HeadBlock(ctx)
	if err != nil {
		s.connected.Store(false)
		return ReconcileSummary{}, fmt.Errorf("query chain head: %w", err)
	}
	s.connected.Store(true)
	if toBlock > head {
		toBlock = head
	}

	return s.processRange(ctx, fromBlock, toBlock, false)
}

// Status reports the watcher's health for the admin surface.
func (s *SyncService) Status() ServiceStatus {
	contractAddress := ""
	if s.enabled {
		contractAddress = s.contract.Hex()
	}
	return ServiceStatus{
		IsListening:     s.listening.Load(),
		IsConnected:     s.connected.Load(),
		ContractAddress: contractAddress,
	}
}

// MarkListening is flipped by the lifecycle code when the watcher starts
// and stops.
func (s *SyncService) MarkListening(listening bool) {
	s.listening.Store(listening)
}

// Enabled reports whether the service was configured with a contract.
func (s *SyncService) Enabled() bool {
	return s.enabled
}

func (s *SyncService) nextFromBlock(ctx context.Context, head uint64) (uint64, error) {
	cursor, err := s.repo.GetCursor(ctx, s.cursorID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			if head > coldStartWindow {
				return head - coldStartWindow, nil
			}
			return 0, nil
		}
		return 0, fmt.Errorf("load cursor: %w", err)
	}

	return cursor.LastProcessedBlock + 1, nil
}

func (s *SyncService) processRange(ctx context.Context, fromBlock, toBlock uint64, stopOnError bool) (ReconcileSummary, error) {
	summary := ReconcileSummary{}

	rawLogs, err := s.node.LogsInRange(ctx, s.contract, s.topics, fromBlock, toBlock)
	if err != nil {
		s.connected.Store(false)
		return summary, fmt.Errorf("query logs: %w", err)
	}
	s.connected.Store(true)

	for _, rawLog := range rawLogs {
		summary.TotalEvents++

		event, err := s.decoder.Decode(rawLog)
		if err != nil {
			// one bad log never aborts the batch
			s.logs.Warnw("dropping undecodable log",
				"txHash", rawLog.TxHash.Hex(), "block", rawLog.BlockNumber, "error", err)
			summary.Errors++
			continue
		}

		outcome, err := events.Dispatch(ctx, s.handler, event)
		if err != nil {
			summary.Errors++
			if stopOnError {
				// transient failure: leave the cursor alone so the
				// next tick retries the whole range
				return summary, fmt.Errorf("handle %s at %s: %w", event.Name(), rawLog.TxHash.Hex(), err)
			}
			s.logs.Errorw("event handling failed during resync",
				"event", event.Name(), "txHash", rawLog.TxHash.Hex(), "error", err)
			continue
		}

		summary.ProcessedEvents++
		if outcome == events.OutcomeApplied {
			summary.NewEntries++
		}
	}

	return summary, nil
}
