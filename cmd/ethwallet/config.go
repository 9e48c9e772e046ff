package main

import (
	"os"
	"path/filepath"

	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/ethwallet/cmd/ethwallet/keys"
	"github.com/kaspanet/ethwallet/infrastructure/config"
	"github.com/kaspanet/ethwallet/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	createSubCmd              = "create"
	showAddressSubCmd         = "show-address"
	dumpUnencryptedDataSubCmd = "dump-unencrypted-data"
	balanceSubCmd             = "balance"
	sendSubCmd                = "send"
)

var defaultLogDir = filepath.Join(btcutil.AppDataDir("ethwallet", false), "logs")

type configFlags struct {
	WalletFile string       `long:"wallet-file" short:"f" description:"Wallet file location (default: ~/.ethwallet/wallet.json (*nix), %USERPROFILE%\\AppData\\Local\\Ethwallet\\wallet.json (Windows))"`
	LogLevel   logger.Level `long:"loglevel" short:"d" description:"Level of log messages written to stderr {trace, debug, info, warn, error, critical, off}" default:"off"`
	LogDir     string       `long:"logdir" description:"Directory to log output"`
}

type createConfig struct {
	Force bool `long:"force" description:"Overwrite an existing wallet file without asking"`
}

type showAddressConfig struct{}

type dumpUnencryptedDataConfig struct {
	Yes bool `long:"yes" short:"y" description:"Assume \"yes\" to all questions"`
}

type balanceConfig struct {
	config.NodeFlags
}

type sendConfig struct {
	ToAddress    string `long:"to-address" short:"t" description:"The address to send ETH to" required:"true"`
	SendAmount   string `long:"send-amount" short:"v" description:"An amount to send in ETH (e.g. 1.25)" required:"true"`
	GasPriceGwei string `long:"gas-price-gwei" description:"Gas price in gwei (default: the node's suggestion)"`
	GasLimit     uint64 `long:"gas-limit" description:"Gas limit of the transfer" default:"21000"`
	ChainID      uint64 `long:"chain-id" description:"Chain ID to sign for (default: asked from the node)"`
	Yes          bool   `long:"yes" short:"y" description:"Send without asking for confirmation"`
	config.NodeFlags
}

func parseCommandLine() (subCommand string, cfg *configFlags, config interface{}) {
	cfg = &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	createConf := &createConfig{}
	parser.AddCommand(createSubCmd, "Creates a new wallet",
		"Creates a secret key and writes it, its public key and its address to the wallet file", createConf)

	showAddressConf := &showAddressConfig{}
	parser.AddCommand(showAddressSubCmd, "Shows the address of the wallet",
		"Shows the address of the wallet, plain and checksummed", showAddressConf)

	dumpUnencryptedDataConf := &dumpUnencryptedDataConfig{}
	parser.AddCommand(dumpUnencryptedDataSubCmd, "Prints the unencrypted wallet data",
		"Prints the secret key, public key and address of the wallet. "+
			"Anyone who sees the secret key can spend the wallet's funds", dumpUnencryptedDataConf)

	balanceConf := &balanceConfig{}
	parser.AddCommand(balanceSubCmd, "Shows the balance of the wallet",
		"Shows the balance of the wallet's address in ETH as of the node's latest block", balanceConf)

	sendConf := &sendConfig{}
	parser.AddCommand(sendSubCmd, "Sends ETH to an address",
		"Signs a transfer from the wallet's address and submits it to the node", sendConf)

	_, err := parser.Parse()

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil, nil
	}

	if cfg.WalletFile == "" {
		cfg.WalletFile = keys.DefaultWalletFile()
	}
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}

	switch parser.Command.Active.Name {
	case createSubCmd:
		config = createConf
	case showAddressSubCmd:
		config = showAddressConf
	case dumpUnencryptedDataSubCmd:
		config = dumpUnencryptedDataConf
	case balanceSubCmd:
		err := balanceConf.ResolveNode()
		if err != nil {
			printErrorAndExit(err)
		}
		config = balanceConf
	case sendSubCmd:
		err := sendConf.ResolveNode()
		if err != nil {
			printErrorAndExit(err)
		}
		config = sendConf
	}

	return parser.Command.Active.Name, cfg, config
}
