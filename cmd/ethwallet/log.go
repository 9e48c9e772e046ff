package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kaspanet/ethwallet/infrastructure/logger"
)

var log = logger.RegisterSubSystem("EWLT")

const (
	logFileName    = "ethwallet.log"
	errLogFileName = "ethwallet_err.log"
)

func initLog(logDir string, stderrLevel logger.Level) {
	logFile := filepath.Join(logDir, logFileName)
	errLogFile := filepath.Join(logDir, errLogFileName)
	err := logger.InitLog(logFile, errLogFile, stderrLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	level := logger.LevelDebug
	if stderrLevel < level {
		level = stderrLevel
	}
	logger.SetLogLevels(level)
}
