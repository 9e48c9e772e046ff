package util

const (
	// WeiPerGwei is the number of wei in one gwei.
	WeiPerGwei = 1_000_000_000

	// WeiPerEther is the number of wei in one ether (1 ETH).
	WeiPerEther = 1_000_000_000_000_000_000

	// EtherDecimals is the number of fractional digits an ether amount can carry.
	EtherDecimals = 18
)
