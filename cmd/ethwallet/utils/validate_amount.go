package utils

import (
	"regexp"

	"github.com/kaspanet/ethwallet/util"
	"github.com/pkg/errors"
)

// amountFormat accepts an integer without leading zeros, optionally followed
// by up to 18 decimal places.
var amountFormat = regexp.MustCompile(`^([1-9]\d{0,17}|0)(\.\d{0,18})?$`)

// ValidateAmountFormat checks that amount is a decimal ETH amount that
// converts to wei exactly.
func ValidateAmountFormat(amount string) error {
	if !amountFormat.MatchString(amount) {
		return errors.Errorf("Invalid send amount %q: expected a number with at most %d decimal places",
			amount, util.EtherDecimals)
	}

	return nil
}
