package config

import (
	"context"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/btcsuite/go-socks/socks"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// RPCServerEnvVar names the environment variable holding the node URL
	// when --rpcserver isn't given.
	RPCServerEnvVar = "NET_URL"

	defaultEnvFile     = ".env"
	defaultDialTimeout = 30 * time.Second
)

// ErrNoRPCServer is returned when no node URL was configured.
var ErrNoRPCServer = errors.New("no RPC server configured")

// NodeFlags holds the configuration of the connection to a remote node.
type NodeFlags struct {
	RPCServer string `long:"rpcserver" short:"s" description:"URL of the node's JSON-RPC endpoint (default: $NET_URL)"`
	Proxy     string `long:"proxy" description:"Connect to the node via a SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser string `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass string `long:"proxypass" default-mask:"-" description:"Password for proxy server"`
	EnvFile   string `long:"envfile" description:"File of environment variables to read NET_URL from" default:".env"`
}

// ResolveNode fills in the node URL and validates the connection flags.
// An explicit --rpcserver wins over the environment, and the environment
// wins over the env file. The default env file may be absent.
func (nodeFlags *NodeFlags) ResolveNode() error {
	if nodeFlags.RPCServer == "" {
		rpcServer, err := nodeFlags.lookupRPCServer()
		if err != nil {
			return err
		}
		nodeFlags.RPCServer = rpcServer
	}

	rpcURL, err := url.Parse(nodeFlags.RPCServer)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return errors.Errorf("RPC server URL is invalid: %s", err)
	}
	if rpcURL.Scheme != "http" && rpcURL.Scheme != "https" {
		return errors.Errorf("RPC server URL %s must use http or https", RedactURL(nodeFlags.RPCServer))
	}
	if rpcURL.Host == "" {
		return errors.Errorf("RPC server URL %s has no host", RedactURL(nodeFlags.RPCServer))
	}

	if nodeFlags.Proxy != "" {
		_, _, err := net.SplitHostPort(nodeFlags.Proxy)
		if err != nil {
			return errors.Wrapf(err, "proxy address '%s' is invalid", nodeFlags.Proxy)
		}
	} else if nodeFlags.ProxyUser != "" || nodeFlags.ProxyPass != "" {
		return errors.New("--proxyuser and --proxypass require --proxy")
	}
	return nil
}

// RedactedRPCServer returns the node URL reduced to what can be logged.
func (nodeFlags *NodeFlags) RedactedRPCServer() string {
	return RedactURL(nodeFlags.RPCServer)
}

// RedactURL keeps only the scheme and host of rawURL. Hosted node URLs carry
// API keys in the user info, path or query.
func RedactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "<redacted URL>"
	}
	if parsed.Scheme == "" {
		return parsed.Host
	}
	return parsed.Scheme + "://" + parsed.Host
}

func (nodeFlags *NodeFlags) lookupRPCServer() (string, error) {
	if rpcServer, ok := os.LookupEnv(RPCServerEnvVar); ok && rpcServer != "" {
		return rpcServer, nil
	}

	envFile := nodeFlags.EnvFile
	if envFile == "" {
		envFile = defaultEnvFile
	}
	env, err := godotenv.Read(envFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) || envFile != defaultEnvFile {
			return "", errors.Wrapf(err, "failed to read env file %s", envFile)
		}
		env = nil
	}
	if rpcServer := env[RPCServerEnvVar]; rpcServer != "" {
		return rpcServer, nil
	}
	return "", errors.Wrapf(ErrNoRPCServer, "use --rpcserver or set %s", RPCServerEnvVar)
}

// DialFunc matches the DialContext field of http.Transport.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Dialer returns the function used to open connections to the node: through
// the SOCKS5 proxy when one is configured, directly otherwise.
func (nodeFlags *NodeFlags) Dialer() DialFunc {
	if nodeFlags.Proxy == "" {
		dialer := &net.Dialer{Timeout: defaultDialTimeout}
		return dialer.DialContext
	}

	proxy := &socks.Proxy{
		Addr:     nodeFlags.Proxy,
		Username: nodeFlags.ProxyUser,
		Password: nodeFlags.ProxyPass,
	}
	return func(ctx context.Context, network, address string) (net.Conn, error) {
		timeout := defaultDialTimeout
		if deadline, ok := ctx.Deadline(); ok {
			timeout = time.Until(deadline)
			if timeout <= 0 {
				return nil, context.DeadlineExceeded
			}
		}
		return proxy.DialTimeout(network, address, timeout)
	}
}
