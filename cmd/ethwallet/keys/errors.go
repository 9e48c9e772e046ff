package keys

import "github.com/pkg/errors"

var (
	// ErrIO is returned when the wallet file can't be read or written.
	ErrIO = errors.New("wallet file I/O error")

	// ErrParse is returned when the wallet file isn't a well formed wallet record.
	ErrParse = errors.New("malformed wallet file")

	// ErrIntegrity is returned when the fields of a wallet record don't
	// belong to the same key pair.
	ErrIntegrity = errors.New("wallet record is inconsistent")
)
