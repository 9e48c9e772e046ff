package libethwallet

import (
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/kaspanet/ethwallet/util/random"
	"github.com/pkg/errors"
)

// maxGenerationAttempts bounds rejection sampling. A uniform source fails a
// single attempt with probability below 2^-127, so hitting the bound means
// the source is broken.
const maxGenerationAttempts = 64

// GenerateKeyPair draws a secret scalar uniformly from [1, n-1] using the
// given entropy source and derives its public key.
func GenerateKeyPair(entropy io.Reader) (*SecretKey, *PublicKey, error) {
	var candidate [SecretKeySize]byte
	defer zeroBytes(candidate[:])

	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		_, err := io.ReadFull(entropy, candidate[:])
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to read from the entropy source")
		}

		var scalar btcec.ModNScalar
		overflow := scalar.SetByteSlice(candidate[:])
		isZero := scalar.IsZero()
		scalar.Zero()
		if overflow || isZero {
			log.Debugf("Rejected a secret key candidate out of the curve order range")
			continue
		}

		secretKey, err := SecretFromBytes(candidate[:])
		if err != nil {
			return nil, nil, err
		}
		return secretKey, secretKey.PublicKey(), nil
	}

	return nil, nil, errors.Errorf("the entropy source produced no valid secret key in %d attempts",
		maxGenerationAttempts)
}

// GenerateKeyPairSecure generates a key pair from the operating system's
// cryptographically secure random source.
func GenerateKeyPairSecure() (*SecretKey, *PublicKey, error) {
	return GenerateKeyPair(random.SecureReader())
}
