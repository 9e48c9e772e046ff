package libethwallet

import (
	"strings"
	"testing"

	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/kaspanet/ethwallet/util/random"
	"github.com/pkg/errors"
)

func TestDeriveAddressKnownVectors(t *testing.T) {
	tests := []struct {
		secretKeyHex        string
		expectedAddress     string
		expectedChecksummed string
	}{
		{
			secretKeyHex:        secretKeyOneHex,
			expectedAddress:     "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf",
			expectedChecksummed: "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf",
		},
		{
			secretKeyHex:    "0000000000000000000000000000000000000000000000000000000000000002",
			expectedAddress: "0x2b5ad5c4795c026514f8317c7a215e218dccd6cf",
		},
		{
			secretKeyHex:    curveOrderMinusOne,
			expectedAddress: "0x80c0dbf239224071c59dd8970ab9d542e3414ab2",
		},
		{
			secretKeyHex:        "4105002485189bd6222032cbd99567dfea135fa7873d87c09513d45409bcda54",
			expectedAddress:     "0xdbf3bb10dc866c19bd5437ce3fa84e3d3c72366c",
			expectedChecksummed: "0xDbf3bB10dc866c19bd5437Ce3fa84e3D3C72366c",
		},
	}

	for _, test := range tests {
		secretKey, err := SecretFromHex(test.secretKeyHex)
		if err != nil {
			t.Fatalf("SecretFromHex(%s): %s", test.secretKeyHex, err)
		}
		address := DeriveAddress(secretKey.PublicKey())
		if address.String() != test.expectedAddress {
			t.Errorf("secret key %s: expected address %s, got %s", test.secretKeyHex, test.expectedAddress, address)
		}
		if test.expectedChecksummed != "" && address.Checksummed() != test.expectedChecksummed {
			t.Errorf("secret key %s: expected checksummed address %s, got %s",
				test.secretKeyHex, test.expectedChecksummed, address.Checksummed())
		}
	}
}

func TestDeriveAddressFromGeneratorPoint(t *testing.T) {
	publicKey, err := PublicFromHex(generatorUncompressedHex)
	if err != nil {
		t.Fatalf("PublicFromHex: %s", err)
	}
	compressed, err := PublicFromHex(generatorCompressedHex)
	if err != nil {
		t.Fatalf("PublicFromHex: %s", err)
	}
	// The serialization the key was parsed from doesn't matter.
	if DeriveAddress(publicKey) != DeriveAddress(compressed) {
		t.Fatalf("compressed and uncompressed forms derived different addresses")
	}
	if DeriveAddress(publicKey).String() != "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf" {
		t.Fatalf("unexpected address of the generator point: %s", DeriveAddress(publicKey))
	}
}

func TestDeriveAddressIsDeterministic(t *testing.T) {
	reader := random.NewInsecureSeededReader(3)
	for i := 0; i < 20; i++ {
		_, publicKey, err := GenerateKeyPair(reader)
		if err != nil {
			t.Fatalf("GenerateKeyPair: %s", err)
		}
		first := DeriveAddress(publicKey)
		second := DeriveAddress(publicKey)
		if first != second {
			t.Fatalf("two derivations of the same key differ: %s, %s", first, second)
		}
		if len(first.String()) != AddressHexLength || !strings.HasPrefix(first.String(), "0x") {
			t.Fatalf("malformed address text %s", first)
		}
		expected := gethcrypto.PubkeyToAddress(*publicKey.ToECDSA())
		if first.ToCommon() != expected {
			t.Fatalf("go-ethereum derived %s but got %s", expected.Hex(), first.Checksummed())
		}
	}
}

func TestAddressFromHex(t *testing.T) {
	expected := "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf"
	valid := []string{
		expected,
		"0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf",
		"0X7e5f4552091a69125d5dfcb7b8c2659029395bdf",
		"7e5f4552091a69125d5dfcb7b8c2659029395bdf",
	}
	for _, addressHex := range valid {
		address, err := AddressFromHex(addressHex)
		if err != nil {
			t.Errorf("AddressFromHex(%s): %s", addressHex, err)
			continue
		}
		if address.String() != expected {
			t.Errorf("AddressFromHex(%s): expected %s, got %s", addressHex, expected, address)
		}
	}

	invalid := []string{
		"",
		"0x",
		"0x7e5f4552091a69125d5dfcb7b8c2659029395bd",
		"0x7e5f4552091a69125d5dfcb7b8c2659029395bdf00",
		"0x7e5f4552091a69125d5dfcb7b8c2659029395bdg",
		"0x0x5f4552091a69125d5dfcb7b8c2659029395bdf",
	}
	for _, addressHex := range invalid {
		_, err := AddressFromHex(addressHex)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("AddressFromHex(%q): expected ErrInvalidFormat, got %v", addressHex, err)
		}
	}
}
