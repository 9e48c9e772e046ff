package rpcclient

import (
	"context"
	"math/big"

	"github.com/kaspanet/ethwallet/cmd/ethwallet/libethwallet"
	"github.com/kaspanet/ethwallet/infrastructure/logger"
)

// Balance returns the balance of address in wei as of the latest block
func (c *RPCClient) Balance(ctx context.Context, address libethwallet.Address) (*big.Int, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "RPCClient.Balance")
	defer onEnd()

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	balance, err := c.client.BalanceAt(ctx, address.ToCommon(), nil)
	if err != nil {
		return nil, c.convertRPCError(err, "eth_getBalance")
	}
	log.Debugf("Balance of %s is %s wei", address, balance)
	return balance, nil
}
