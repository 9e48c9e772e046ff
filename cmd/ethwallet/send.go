package main

import (
	"context"
	"fmt"
	"math/big"

	"github.com/kaspanet/ethwallet/cmd/ethwallet/keys"
	"github.com/kaspanet/ethwallet/cmd/ethwallet/libethwallet"
	"github.com/kaspanet/ethwallet/cmd/ethwallet/utils"
	"github.com/kaspanet/ethwallet/infrastructure/os/signal"
	"github.com/pkg/errors"
)

func send(cfg *configFlags, conf *sendConfig) error {
	toAddress, err := libethwallet.AddressFromHex(conf.ToAddress)
	if err != nil {
		return errors.Wrapf(err, "invalid --to-address %s", conf.ToAddress)
	}
	sendAmountWei, err := utils.ParseEther(conf.SendAmount)
	if err != nil {
		return err
	}
	if sendAmountWei.Sign() == 0 {
		return errors.Errorf("Send amount must be greater than zero")
	}
	var gasPrice *big.Int
	if conf.GasPriceGwei != "" {
		gasPrice, err = utils.ParseGwei(conf.GasPriceGwei)
		if err != nil {
			return err
		}
	}
	if conf.GasLimit == 0 {
		return errors.Errorf("--gas-limit must be greater than zero")
	}

	record, err := keys.LoadVerified(cfg.WalletFile)
	if err != nil {
		return err
	}
	fromAddress, err := record.Address()
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
	if conf.ChainID != 0 {
		client.SetChainID(new(big.Int).SetUint64(conf.ChainID))
	}

	if gasPrice == nil {
		gasPrice, err = client.SuggestGasPrice(ctx)
		if err != nil {
			return err
		}
	}

	fee := new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(conf.GasLimit))
	total := new(big.Int).Add(sendAmountWei, fee)
	balanceWei, err := client.Balance(ctx, fromAddress)
	if err != nil {
		return err
	}
	if balanceWei.Cmp(total) < 0 {
		return errors.Errorf("Insufficient funds: sending ETH %s plus up to ETH %s in fees requires ETH %s, "+
			"but the balance of %s is ETH %s", utils.FormatEther(sendAmountWei), utils.FormatEther(fee),
			utils.FormatEther(total), fromAddress.Checksummed(), utils.FormatEther(balanceWei))
	}

	if !conf.Yes {
		// The prompt may take unbound time, so the remote calls that follow get a fresh timeout.
		err := confirm(fmt.Sprintf("Send ETH %s to %s, paying up to ETH %s in fees",
			utils.FormatEther(sendAmountWei), toAddress.Checksummed(), utils.FormatEther(fee)))
		if err != nil {
			return err
		}
	}
	sendCtx, sendCancel := context.WithTimeout(interruptCtx, rpcTimeout)
	defer sendCancel()

	secretKey, err := record.SecretKey()
	if err != nil {
		return err
	}
	defer secretKey.Zero()

	transactionHash, err := client.SendTransfer(sendCtx, secretKey, toAddress, sendAmountWei, gasPrice, conf.GasLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Transaction was sent successfully\n")
	fmt.Printf("Transaction ID: \t%s\n", transactionHash.Hex())
	return nil
}
