package libethwallet

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kaspanet/ethwallet/util"
	"github.com/kaspanet/ethwallet/util/hexcodec"
	"github.com/pkg/errors"
)

// AddressSize is the size of an account address.
const AddressSize = 20

// AddressHexLength is the length of the text form of an address, prefix included.
const AddressHexLength = len(addressPrefix) + 2*AddressSize

const addressPrefix = "0x"

// Address is an account identifier: the last 20 bytes of the Keccak-256
// digest of the uncompressed public key without its prefix byte.
type Address [AddressSize]byte

// DeriveAddress computes the address of the given public key.
func DeriveAddress(publicKey *PublicKey) Address {
	serialized := publicKey.SerializeUncompressed()
	if len(serialized) != PublicKeySizeUncompressed || serialized[0] != uncompressedPrefix {
		panic(errors.Errorf("uncompressed public key serialization is malformed: length %d, prefix 0x%02x",
			len(serialized), serialized[0]))
	}

	hash := util.HashKeccak256(serialized[1:])

	var address Address
	copy(address[:], hash[len(hash)-AddressSize:])
	return address
}

// AddressFromHex parses an address from 40 hex characters with an optional
// 0x prefix. Case is ignored, so checksummed addresses are accepted as well.
func AddressFromHex(addressHex string) (Address, error) {
	trimmed := addressHex
	if strings.HasPrefix(trimmed, addressPrefix) || strings.HasPrefix(trimmed, "0X") {
		trimmed = trimmed[len(addressPrefix):]
	}
	if len(trimmed) != 2*AddressSize {
		return Address{}, errors.Wrapf(ErrInvalidFormat, "address must be %d hex characters, got %d",
			2*AddressSize, len(trimmed))
	}

	var address Address
	_, err := hexcodec.Decode(address[:], trimmed)
	if err != nil {
		return Address{}, errors.Wrapf(ErrInvalidFormat, "address: %s", err)
	}
	return address, nil
}

// String returns the address as 0x followed by 40 lowercase hex characters.
func (a Address) String() string {
	return addressPrefix + hexcodec.EncodeToString(a[:])
}

// Checksummed returns the mixed-case EIP-55 form of the address.
func (a Address) Checksummed() string {
	return a.ToCommon().Hex()
}

// ToCommon converts the address to go-ethereum's address type.
func (a Address) ToCommon() common.Address {
	return common.Address(a)
}
