package rpcclient

import (
	"context"
	"math/big"
	"net/http"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/kaspanet/ethwallet/infrastructure/config"
	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// RPCClient is a client of a node's Ethereum JSON-RPC endpoint
type RPCClient struct {
	client *ethclient.Client

	rpcAddress      string
	redactedAddress string
	chainID         *big.Int

	timeout time.Duration
}

// NewRPCClient connects to the node described by nodeFlags. nodeFlags must
// already be resolved.
func NewRPCClient(ctx context.Context, nodeFlags *config.NodeFlags) (*RPCClient, error) {
	httpClient := &http.Client{
		Transport: &http.Transport{
			DialContext:         nodeFlags.Dialer(),
			TLSHandshakeTimeout: 10 * time.Second,
			MaxIdleConns:        1,
		},
	}
	redactedAddress := nodeFlags.RedactedRPCServer()
	rpcClient, err := rpc.DialOptions(ctx, nodeFlags.RPCServer, rpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, errors.Wrapf(redactURLError(err, redactedAddress), "error connecting to address %s", redactedAddress)
	}

	if nodeFlags.Proxy != "" {
		log.Infof("Connected to server %s via proxy %s", redactedAddress, nodeFlags.Proxy)
	} else {
		log.Infof("Connected to server %s", redactedAddress)
	}

	return &RPCClient{
		client:          ethclient.NewClient(rpcClient),
		rpcAddress:      nodeFlags.RPCServer,
		redactedAddress: redactedAddress,
		timeout:         defaultTimeout,
	}, nil
}

// SetTimeout sets the timeout by which to wait for RPC responses
func (c *RPCClient) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// SetChainID makes transfers use chainID instead of asking the node for it.
func (c *RPCClient) SetChainID(chainID *big.Int) {
	c.chainID = new(big.Int).Set(chainID)
}

// Close closes the RPC client
func (c *RPCClient) Close() {
	c.client.Close()
}

// Address returns the address the RPC client connected to. It may carry
// credentials, so log RedactedAddress instead.
func (c *RPCClient) Address() string {
	return c.rpcAddress
}

// RedactedAddress returns the scheme and host of the address the RPC client
// connected to
func (c *RPCClient) RedactedAddress() string {
	return c.redactedAddress
}

func (c *RPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// ErrRPC is an error returned by the node
var ErrRPC = errors.New("rpc error")

// convertRPCError tells errors the node answered with apart from transport errors.
func (c *RPCClient) convertRPCError(err error, request string) error {
	var rpcError rpc.Error
	if errors.As(err, &rpcError) {
		return errors.Wrapf(ErrRPC, "%s: %s (code %d)", request, rpcError.Error(), rpcError.ErrorCode())
	}
	return errors.Wrapf(redactURLError(err, c.redactedAddress), "%s failed", request)
}

// redactURLError replaces the full request URL that net/http puts in
// transport errors.
func redactURLError(err error, redactedAddress string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return errors.Errorf("%s %s: %s", urlErr.Op, redactedAddress, urlErr.Err)
	}
	return err
}
