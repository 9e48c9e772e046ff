package rpcclient

import (
	"context"
	"math/big"
)

// SuggestGasPrice returns the node's gas price suggestion in wei
func (c *RPCClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, c.convertRPCError(err, "eth_gasPrice")
	}
	return gasPrice, nil
}
