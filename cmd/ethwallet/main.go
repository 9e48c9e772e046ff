package main

import (
	"github.com/kaspanet/ethwallet/infrastructure/logger"
	"github.com/kaspanet/ethwallet/util/panics"
	"github.com/pkg/errors"
)

func main() {
	defer panics.HandlePanic(log, "MAIN", nil)

	subCmd, cfg, config := parseCommandLine()
	initLog(cfg.LogDir, cfg.LogLevel)
	defer logger.BackendLog.Close()

	log.Infof("Running %s with wallet file %s", subCmd, cfg.WalletFile)

	var err error
	switch subCmd {
	case createSubCmd:
		err = create(cfg, config.(*createConfig))
	case showAddressSubCmd:
		err = showAddress(cfg)
	case dumpUnencryptedDataSubCmd:
		err = dumpUnencryptedData(cfg, config.(*dumpUnencryptedDataConfig))
	case balanceSubCmd:
		err = balance(cfg, config.(*balanceConfig))
	case sendSubCmd:
		err = send(cfg, config.(*sendConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
}
