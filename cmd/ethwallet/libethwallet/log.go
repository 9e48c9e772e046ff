package libethwallet

import "github.com/kaspanet/ethwallet/infrastructure/logger"

var log = logger.RegisterSubSystem("LWLT")
