package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kaspanet/ethwallet/cmd/ethwallet/utils"
	"github.com/kaspanet/ethwallet/infrastructure/config"
	"github.com/kaspanet/ethwallet/infrastructure/logger"
	"github.com/kaspanet/ethwallet/infrastructure/network/rpcclient"
	"github.com/pkg/errors"
)

const rpcTimeout = 30 * time.Second

func printErrorAndExit(err error) {
	log.Errorf("%+v", err)
	logger.BackendLog.Close()
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func connectToRPC(ctx context.Context, nodeFlags *config.NodeFlags) (*rpcclient.RPCClient, error) {
	client, err := rpcclient.NewRPCClient(ctx, nodeFlags)
	if err != nil {
		return nil, err
	}
	client.SetTimeout(rpcTimeout)
	return client, nil
}

// confirm asks a yes/no question on stdin and fails unless the answer is y.
func confirm(question string) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s (y/N)? ", question)
	line, err := utils.ReadLine(reader)
	if err != nil {
		return err
	}

	fmt.Println()

	if line != "y" {
		return errors.Errorf("Aborted by user")
	}

	return nil
}
