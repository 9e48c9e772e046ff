package main

import (
	"fmt"

	"github.com/kaspanet/ethwallet/cmd/ethwallet/keys"
	"github.com/kaspanet/ethwallet/cmd/ethwallet/libethwallet"
)

func dumpUnencryptedData(cfg *configFlags, conf *dumpUnencryptedDataConfig) error {
	if !conf.Yes {
		err := confirm("This operation will print your unencrypted secret key on the screen. " +
			"Anyone that sees this information will be able to steal your funds. Are you sure you want to proceed")
		if err != nil {
			return err
		}
	}

	record, err := keys.LoadVerified(cfg.WalletFile)
	if err != nil {
		return err
	}

	secretKey, err := record.SecretKey()
	if err != nil {
		return err
	}
	defer secretKey.Zero()

	address, err := record.Address()
	if err != nil {
		return err
	}

	log.Warnf("Dumped the unencrypted secret key of %s", address)
	fmt.Printf("Secret key:\n%s\n\n", libethwallet.SecretToHex(secretKey))
	fmt.Printf("Public key:\n%s\n\n", record.PublicKeyHex())
	fmt.Printf("Address:\n%s\n", address.Checksummed())
	return nil
}
