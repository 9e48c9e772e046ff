package util

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// HashKeccak256 calculates the original (pre-NIST) Keccak-256 digest of buf,
// which is what account addresses are derived with. It differs from SHA3-256
// in its padding.
func HashKeccak256(buf []byte) []byte {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// HashBlake2b calculates the hash blake2b(b).
func HashBlake2b(buf []byte) []byte {
	hashedBuf := blake2b.Sum256(buf)
	return hashedBuf[:]
}
