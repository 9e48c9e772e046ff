package main

import (
	"fmt"

	"github.com/kaspanet/ethwallet/cmd/ethwallet/keys"
)

func showAddress(cfg *configFlags) error {
	record, err := keys.LoadVerified(cfg.WalletFile)
	if err != nil {
		return err
	}

	address, err := record.Address()
	if err != nil {
		return err
	}

	fmt.Printf("The wallet address is:\n%s\n", address)
	fmt.Printf("Checksummed:\n%s\n", address.Checksummed())
	return nil
}
