package rpcclient

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/kaspanet/ethwallet/cmd/ethwallet/libethwallet"
	"github.com/kaspanet/ethwallet/infrastructure/logger"
	"github.com/pkg/errors"
)

// TransferGasLimit is the gas used by a plain value transfer.
const TransferGasLimit = 21000

// SendTransfer signs a legacy value transfer of wei from the account of
// secretKey to the given address and submits it to the node. A nil gasPrice
// uses the node's suggestion, and a zero gasLimit uses TransferGasLimit.
// It doesn't check that the balance covers the transfer.
func (c *RPCClient) SendTransfer(ctx context.Context, secretKey *libethwallet.SecretKey, to libethwallet.Address,
	wei *big.Int, gasPrice *big.Int, gasLimit uint64) (common.Hash, error) {

	onEnd := logger.LogAndMeasureExecutionTime(log, "RPCClient.SendTransfer")
	defer onEnd()

	if wei == nil || wei.Sign() < 0 {
		return common.Hash{}, errors.Errorf("transfer amount must be non-negative")
	}
	if gasLimit == 0 {
		gasLimit = TransferGasLimit
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	from := libethwallet.DeriveAddress(secretKey.PublicKey())
	nonce, err := c.client.PendingNonceAt(ctx, from.ToCommon())
	if err != nil {
		return common.Hash{}, c.convertRPCError(err, "eth_getTransactionCount")
	}

	chainID := c.chainID
	if chainID == nil {
		chainID, err = c.client.ChainID(ctx)
		if err != nil {
			return common.Hash{}, c.convertRPCError(err, "eth_chainId")
		}
	}

	if gasPrice == nil {
		gasPrice, err = c.client.SuggestGasPrice(ctx)
		if err != nil {
			return common.Hash{}, c.convertRPCError(err, "eth_gasPrice")
		}
	}

	toAddress := to.ToCommon()
	transaction := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       &toAddress,
		Value:    wei,
	})

	privateKey, err := secretKey.ToECDSA()
	if err != nil {
		return common.Hash{}, err
	}
	signedTransaction, err := types.SignTx(transaction, types.LatestSignerForChainID(chainID), privateKey)
	// Clear the signing scalar.
	privateKey.D.SetInt64(0)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to sign the transfer")
	}

	log.Infof("Sending %s wei from %s to %s (nonce %d, chain %s, gas price %s, gas limit %d)",
		wei, from, to, nonce, chainID, gasPrice, gasLimit)
	err = c.client.SendTransaction(ctx, signedTransaction)
	if err != nil {
		return common.Hash{}, c.convertRPCError(err, "eth_sendRawTransaction")
	}
	log.Infof("Transfer %s submitted", signedTransaction.Hash())
	return signedTransaction.Hash(), nil
}
