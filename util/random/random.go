package random

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/kaspanet/ethwallet/util"
	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20"
)

// SecureReader returns the operating system's cryptographically secure
// random source. It is the only entropy source key generation uses outside
// of tests.
func SecureReader() io.Reader {
	return rand.Reader
}

// Uint64 returns a cryptographically random uint64 value.
func Uint64() (uint64, error) {
	var buf [8]byte
	_, err := io.ReadFull(SecureReader(), buf[:])
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

type seededReader struct {
	cipher *chacha20.Cipher
}

// NewInsecureSeededReader returns a deterministic byte stream for
// reproducible tests: the ChaCha20 keystream keyed with blake2b(seed) and a
// zero nonce. Anyone who knows the seed knows every key generated from it,
// so it must never back a real wallet.
func NewInsecureSeededReader(seed uint64) io.Reader {
	var seedBytes [8]byte
	binary.BigEndian.PutUint64(seedBytes[:], seed)
	key := util.HashBlake2b(seedBytes[:])

	nonce := make([]byte, chacha20.NonceSize)
	cipher, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		// Key and nonce sizes are constant.
		panic(errors.Wrap(err, "failed to initialize the seeded stream"))
	}
	return &seededReader{cipher: cipher}
}

// Read fills p with the next len(p) bytes of the keystream. It never fails.
func (r *seededReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}
