package rpcclient

import (
	"context"

	"github.com/kaspanet/ethwallet/infrastructure/logger"
)

// BlockNumber returns the number of the node's latest block
func (c *RPCClient) BlockNumber(ctx context.Context) (uint64, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "RPCClient.BlockNumber")
	defer onEnd()

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	blockNumber, err := c.client.BlockNumber(ctx)
	if err != nil {
		return 0, c.convertRPCError(err, "eth_blockNumber")
	}
	return blockNumber, nil
}
