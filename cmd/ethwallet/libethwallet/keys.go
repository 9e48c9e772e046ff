package libethwallet

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/kaspanet/ethwallet/util/hexcodec"
	"github.com/pkg/errors"
)

const (
	// SecretKeySize is the size of a serialized secret key.
	SecretKeySize = 32

	// PublicKeySizeCompressed is the size of a compressed public key.
	PublicKeySizeCompressed = 33

	// PublicKeySizeUncompressed is the size of an uncompressed public key.
	PublicKeySizeUncompressed = 65

	// SecretKeyHexLength is the length of a hex encoded secret key.
	SecretKeyHexLength = 2 * SecretKeySize

	// PublicKeyHexLength is the length of the canonical (uncompressed) hex
	// encoding of a public key.
	PublicKeyHexLength = 2 * PublicKeySizeUncompressed

	publicKeyHexLengthCompressed = 2 * PublicKeySizeCompressed

	uncompressedPrefix = 0x04
)

const redactedSecret = "SecretKey(<redacted>)"

// SecretKey is a secp256k1 scalar in [1, n-1]. Its only textual rendering is
// SecretToHex: fmt verbs print a redaction marker.
type SecretKey struct {
	key *btcec.PrivateKey
}

// SecretFromBytes parses a 32 byte big-endian scalar.
func SecretFromBytes(serialized []byte) (*SecretKey, error) {
	if len(serialized) != SecretKeySize {
		return nil, errors.Wrapf(ErrInvalidFormat, "secret key must be %d bytes, got %d",
			SecretKeySize, len(serialized))
	}

	var scalar btcec.ModNScalar
	overflow := scalar.SetByteSlice(serialized)
	defer scalar.Zero()
	if overflow {
		return nil, errors.Wrap(ErrInvalidSecretKey, "secret key is not below the curve order")
	}
	if scalar.IsZero() {
		return nil, errors.Wrap(ErrInvalidSecretKey, "secret key is zero")
	}

	key, _ := btcec.PrivKeyFromBytes(serialized)
	return &SecretKey{key: key}, nil
}

// SecretFromHex parses a secret key from exactly 64 hex characters.
func SecretFromHex(secretKeyHex string) (*SecretKey, error) {
	if len(secretKeyHex) != SecretKeyHexLength {
		return nil, errors.Wrapf(ErrInvalidFormat, "secret key must be %d hex characters, got %d",
			SecretKeyHexLength, len(secretKeyHex))
	}

	var serialized [SecretKeySize]byte
	defer zeroBytes(serialized[:])
	_, err := hexcodec.Decode(serialized[:], secretKeyHex)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "secret key: %s", err)
	}

	return SecretFromBytes(serialized[:])
}

// SecretToHex returns the 64 character lowercase hex encoding of the secret key.
func SecretToHex(secretKey *SecretKey) string {
	serialized := secretKey.key.Serialize()
	defer zeroBytes(serialized)
	return hexcodec.EncodeToString(serialized)
}

// PublicKey derives the public key of the secret key.
func (s *SecretKey) PublicKey() *PublicKey {
	return &PublicKey{key: s.key.PubKey()}
}

// ToECDSA converts the secret key to the type go-ethereum's transaction
// signer works with.
func (s *SecretKey) ToECDSA() (*ecdsa.PrivateKey, error) {
	serialized := s.key.Serialize()
	defer zeroBytes(serialized)
	ecdsaKey, err := gethcrypto.ToECDSA(serialized)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSecretKey, err.Error())
	}
	return ecdsaKey, nil
}

// IsEqual returns whether both secret keys hold the same scalar.
func (s *SecretKey) IsEqual(other *SecretKey) bool {
	return s.key.Key.Equals(&other.key.Key)
}

// Zero overwrites the scalar. The key is unusable afterwards.
func (s *SecretKey) Zero() {
	s.key.Zero()
}

// String implements fmt.Stringer without revealing the key.
func (s *SecretKey) String() string {
	return redactedSecret
}

// GoString implements fmt.GoStringer without revealing the key.
func (s *SecretKey) GoString() string {
	return redactedSecret
}

// Format implements fmt.Formatter so that no verb, %x included, reveals the key.
func (s *SecretKey) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(redactedSecret))
}

// PublicKey is a point on the secp256k1 curve.
type PublicKey struct {
	key *btcec.PublicKey
}

// PublicFromBytes parses a compressed (33 bytes, 0x02/0x03 prefix) or
// uncompressed (65 bytes, 0x04 prefix) public key and validates it is on the curve.
func PublicFromBytes(serialized []byte) (*PublicKey, error) {
	switch len(serialized) {
	case PublicKeySizeCompressed:
	case PublicKeySizeUncompressed:
		if serialized[0] != uncompressedPrefix {
			return nil, errors.Wrapf(ErrInvalidPublicKey, "uncompressed public key has prefix 0x%02x", serialized[0])
		}
	default:
		return nil, errors.Wrapf(ErrInvalidPublicKey, "public key must be %d or %d bytes, got %d",
			PublicKeySizeCompressed, PublicKeySizeUncompressed, len(serialized))
	}

	key, err := btcec.ParsePubKey(serialized)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPublicKey, err.Error())
	}
	return &PublicKey{key: key}, nil
}

// PublicFromHex parses a public key from 66 (compressed) or 130
// (uncompressed) hex characters.
func PublicFromHex(publicKeyHex string) (*PublicKey, error) {
	if len(publicKeyHex) != publicKeyHexLengthCompressed && len(publicKeyHex) != PublicKeyHexLength {
		return nil, errors.Wrapf(ErrInvalidPublicKey, "public key must be %d or %d hex characters, got %d",
			publicKeyHexLengthCompressed, PublicKeyHexLength, len(publicKeyHex))
	}

	serialized, err := hexcodec.DecodeString(publicKeyHex)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "public key: %s", err)
	}

	return PublicFromBytes(serialized)
}

// PublicToHex returns the canonical text form of the public key: the 130
// character hex encoding of its uncompressed serialization.
func PublicToHex(publicKey *PublicKey) string {
	return hexcodec.EncodeToString(publicKey.SerializeUncompressed())
}

// PublicToHexCompressed returns the 66 character hex encoding of the
// compressed serialization. It is meant for display only.
func PublicToHexCompressed(publicKey *PublicKey) string {
	return hexcodec.EncodeToString(publicKey.SerializeCompressed())
}

// SerializeUncompressed returns 0x04 || X || Y.
func (p *PublicKey) SerializeUncompressed() []byte {
	return p.key.SerializeUncompressed()
}

// SerializeCompressed returns 0x02/0x03 || X.
func (p *PublicKey) SerializeCompressed() []byte {
	return p.key.SerializeCompressed()
}

// IsEqual returns whether both public keys are the same point.
func (p *PublicKey) IsEqual(other *PublicKey) bool {
	return p.key.IsEqual(other.key)
}

// ToECDSA converts the public key to the standard library's type.
func (p *PublicKey) ToECDSA() *ecdsa.PublicKey {
	return p.key.ToECDSA()
}

func zeroBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
