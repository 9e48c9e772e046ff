package main

import (
	"fmt"
	"os"

	"github.com/kaspanet/ethwallet/cmd/ethwallet/keys"
	"github.com/kaspanet/ethwallet/cmd/ethwallet/libethwallet"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

func create(cfg *configFlags, conf *createConfig) error {
	err := checkOverwrite(cfg.WalletFile, conf.Force)
	if err != nil {
		return err
	}

	secretKey, publicKey, err := libethwallet.GenerateKeyPairSecure()
	if err != nil {
		return err
	}
	defer secretKey.Zero()

	record := keys.New(secretKey, publicKey)
	err = record.Save(cfg.WalletFile)
	if err != nil {
		return err
	}

	address := libethwallet.DeriveAddress(publicKey)
	fmt.Printf("Wrote the wallet into %s\n\n", cfg.WalletFile)
	fmt.Printf("Public key:\n%s\n\n", libethwallet.PublicToHex(publicKey))
	fmt.Printf("The wallet address is:\n%s\n", address.Checksummed())
	return nil
}

func checkOverwrite(walletFile string, force bool) error {
	_, err := os.Stat(walletFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(keys.ErrIO, "failed to check %s: %s", walletFile, err)
	}

	if force {
		log.Warnf("Overwriting the existing wallet file %s", walletFile)
		return nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.Errorf("The file %s already exists. Use --force to overwrite it", walletFile)
	}

	err = confirm(fmt.Sprintf("The file %s already exists and its secret key will be lost. "+
		"Are you sure you want to override it", walletFile))
	if err != nil {
		return errors.Wrap(err, "aborted wallet file creation")
	}
	log.Warnf("Overwriting the existing wallet file %s after confirmation", walletFile)
	return nil
}
