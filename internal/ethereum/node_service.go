package ethereum

import (
	"context"
	"fmt"
	"math/big"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type NodeService struct {
	client EthClient
}

func NewNodeService(ethClient EthClient) *NodeService {
	return &NodeService{
		client: ethClient,
	}
}

// HeadBlock returns the current chain head number.
func (s *NodeService) HeadBlock(ctx context.Context) (uint64, error) {
	head, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("query block number: %w", err)
	}
	return head, nil
}

// LogsInRange queries the node for logs emitted by contract in the block
// range [fromBlock, toBlock], filtered to the given topic0 hashes.
func (s *NodeService) LogsInRange(ctx context.Context, contract common.Address, topics []common.Hash, fromBlock, toBlock uint64) ([]types.Log, error) {
	query := goethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{contract},
		Topics:    [][]common.Hash{topics},
	}

	logs, err := s.client.FilterLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("filter logs [%d, %d]: %w", fromBlock, toBlock, err)
	}

	return logs, nil
}
