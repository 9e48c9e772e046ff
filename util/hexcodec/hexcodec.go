// Package hexcodec converts between raw bytes and lowercase hex text with
// strict validation and exact sizing. It is the single path secret material
// takes to and from its textual form.
package hexcodec

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

var (
	// ErrOddLength is returned when decoding a string with an odd number of characters.
	ErrOddLength = errors.New("odd length hex string")

	// ErrInvalidCharacter is returned when decoding a string with a character
	// outside of [0-9a-fA-F].
	ErrInvalidCharacter = errors.New("invalid hex character")

	// ErrBufferTooSmall is returned when the destination buffer can't hold the result.
	ErrBufferTooSmall = errors.New("destination buffer too small")
)

// EncodedLen returns the length of the encoding of n source bytes.
func EncodedLen(n int) int {
	return n * 2
}

// DecodedLen returns the length of the decoding of x source characters.
func DecodedLen(x int) int {
	return x / 2
}

// Encode writes the lowercase hex encoding of src into dst and returns the
// number of bytes written, which is always EncodedLen(len(src)).
func Encode(dst, src []byte) (int, error) {
	if len(dst) < EncodedLen(len(src)) {
		return 0, errors.Wrapf(ErrBufferTooSmall, "encoding %d bytes requires %d bytes, got %d",
			len(src), EncodedLen(len(src)), len(dst))
	}
	return hex.Encode(dst, src), nil
}

// EncodeToString returns the lowercase hex encoding of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	hex.Encode(dst, src)
	return string(dst)
}

// Decode decodes the hex string src into dst and returns the number of bytes
// written. Upper and lower case digits are equivalent. src is fully validated
// before anything is written to dst.
func Decode(dst []byte, src string) (int, error) {
	err := validate(src)
	if err != nil {
		return 0, err
	}
	if DecodedLen(len(src)) > len(dst) {
		return 0, errors.Wrapf(ErrBufferTooSmall, "decoding %d characters requires %d bytes, got %d",
			len(src), DecodedLen(len(src)), len(dst))
	}
	return hex.Decode(dst, []byte(src))
}

// DecodeString returns the bytes represented by the hex string src.
func DecodeString(src string) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(src)))
	n, err := Decode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

func validate(src string) error {
	if len(src)%2 != 0 {
		return errors.Wrapf(ErrOddLength, "length %d", len(src))
	}
	for i := 0; i < len(src); i++ {
		if !isHexDigit(src[i]) {
			return errors.Wrapf(ErrInvalidCharacter, "%q at position %d", src[i], i)
		}
	}
	return nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
