package libethwallet

import "github.com/pkg/errors"

var (
	// ErrInvalidFormat means a textual value has the wrong length or contains
	// characters outside of its alphabet.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidSecretKey means a secret scalar is zero or not below the curve order.
	ErrInvalidSecretKey = errors.New("invalid secret key")

	// ErrInvalidPublicKey means a public key has an unsupported length or
	// prefix, or is not a point on the curve.
	ErrInvalidPublicKey = errors.New("invalid public key")
)
