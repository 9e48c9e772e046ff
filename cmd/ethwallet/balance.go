package main

import (
	"context"
	"fmt"

	"github.com/kaspanet/ethwallet/cmd/ethwallet/keys"
	"github.com/kaspanet/ethwallet/cmd/ethwallet/utils"
	"github.com/kaspanet/ethwallet/infrastructure/os/signal"
)

func balance(cfg *configFlags, conf *balanceConfig) error {
	record, err := keys.LoadVerified(cfg.WalletFile)
	if err != nil {
		return err
	}
	address, err := record.Address()
	if err != nil {
		return err
	}

	interruptCtx, interruptCancel := signal.WithInterrupt(context.Background())
	defer interruptCancel()
	ctx, cancel := context.WithTimeout(interruptCtx, rpcTimeout)
	defer cancel()

	client, err := connectToRPC(ctx, &conf.NodeFlags)
	if err != nil {
		return err
	}
	defer client.Close()

	blockNumber, err := client.BlockNumber(ctx)
	if err != nil {
		return err
	}
	balanceWei, err := client.Balance(ctx, address)
	if err != nil {
		return err
	}

	fmt.Printf("Latest block:\t%d\n", blockNumber)
	fmt.Printf("Address:\t%s\n", address.Checksummed())
	fmt.Printf("Balance:\tETH %s\n", utils.FormatEther(balanceWei))
	return nil
}
