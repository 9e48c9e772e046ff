package utils

import (
	"math/big"
	"strings"

	"github.com/kaspanet/ethwallet/util"
	"github.com/pkg/errors"
)

// ParseEther converts a decimal ETH amount to wei without rounding.
func ParseEther(amount string) (*big.Int, error) {
	err := ValidateAmountFormat(amount)
	if err != nil {
		return nil, err
	}

	whole, fraction, _ := strings.Cut(amount, ".")
	fraction += strings.Repeat("0", util.EtherDecimals-len(fraction))

	wei, ok := new(big.Int).SetString(whole+fraction, 10)
	if !ok {
		return nil, errors.Errorf("Invalid send amount %q", amount)
	}
	return wei, nil
}

// ParseGwei converts a decimal gwei amount to wei. Fractions below one wei
// are rejected.
func ParseGwei(amount string) (*big.Int, error) {
	wei, err := ParseEther(amount)
	if err != nil {
		return nil, err
	}
	// ParseEther scaled by 10^18; gwei needs 10^9.
	quotient, remainder := new(big.Int).QuoRem(wei, big.NewInt(util.WeiPerGwei), new(big.Int))
	if remainder.Sign() != 0 {
		return nil, errors.Errorf("Gas price %q gwei has more than 9 decimal places", amount)
	}
	return quotient, nil
}

// FormatEther renders an amount of wei as ETH, keeping every significant
// decimal place.
func FormatEther(wei *big.Int) string {
	sign := ""
	abs := new(big.Int).Set(wei)
	if abs.Sign() < 0 {
		sign = "-"
		abs.Neg(abs)
	}

	digits := abs.String()
	if len(digits) <= util.EtherDecimals {
		digits = strings.Repeat("0", util.EtherDecimals-len(digits)+1) + digits
	}
	whole := digits[:len(digits)-util.EtherDecimals]
	fraction := strings.TrimRight(digits[len(digits)-util.EtherDecimals:], "0")
	if fraction == "" {
		return sign + whole
	}
	return sign + whole + "." + fraction
}
