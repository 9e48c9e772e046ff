package hexcodec

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		src      []byte
		expected string
	}{
		{[]byte{}, ""},
		{[]byte{0x00}, "00"},
		{[]byte{0x0f, 0xf0}, "0ff0"},
		{[]byte{0xde, 0xad, 0xbe, 0xef}, "deadbeef"},
		{[]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, "0123456789abcdef"},
	}
	for _, test := range tests {
		dst := make([]byte, EncodedLen(len(test.src)))
		n, err := Encode(dst, test.src)
		if err != nil {
			t.Fatalf("Encode(%x): %s", test.src, err)
		}
		if n != 2*len(test.src) {
			t.Errorf("Encode(%x): expected %d bytes written, got %d", test.src, 2*len(test.src), n)
		}
		if string(dst) != test.expected {
			t.Errorf("Encode(%x): expected %s, got %s", test.src, test.expected, dst)
		}
		if EncodeToString(test.src) != test.expected {
			t.Errorf("EncodeToString(%x): expected %s, got %s", test.src, test.expected, EncodeToString(test.src))
		}
	}
}

func TestEncodeBufferTooSmall(t *testing.T) {
	_, err := Encode(make([]byte, 3), []byte{1, 2})
	if !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("expected ErrBufferTooSmall, got %v", err)
	}

	// A larger buffer is fine, only the prefix is written.
	dst := bytes.Repeat([]byte{'x'}, 6)
	n, err := Encode(dst, []byte{0xab, 0xcd})
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	if n != 4 || string(dst) != "abcdxx" {
		t.Errorf("unexpected encoding: n=%d dst=%s", n, dst)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		src      string
		expected []byte
	}{
		{"", []byte{}},
		{"00", []byte{0x00}},
		{"deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"DEADBEEF", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"DeAdBeEf", []byte{0xde, 0xad, 0xbe, 0xef}},
	}
	for _, test := range tests {
		dst := make([]byte, 8)
		n, err := Decode(dst, test.src)
		if err != nil {
			t.Fatalf("Decode(%s): %s", test.src, err)
		}
		if !bytes.Equal(dst[:n], test.expected) {
			t.Errorf("Decode(%s): expected %x, got %x", test.src, test.expected, dst[:n])
		}

		decoded, err := DecodeString(test.src)
		if err != nil {
			t.Fatalf("DecodeString(%s): %s", test.src, err)
		}
		if !bytes.Equal(decoded, test.expected) {
			t.Errorf("DecodeString(%s): expected %x, got %x", test.src, test.expected, decoded)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		src      string
		dstLen   int
		expected error
	}{
		{"abc", 8, ErrOddLength},
		{"0g", 8, ErrInvalidCharacter},
		{"zz", 8, ErrInvalidCharacter},
		{"0x00", 8, ErrInvalidCharacter},
		{" 00", 8, ErrOddLength},
		{"00 ", 8, ErrOddLength},
		{"00\n0", 8, ErrInvalidCharacter},
		{"000000", 2, ErrBufferTooSmall},
	}
	for _, test := range tests {
		dst := bytes.Repeat([]byte{0xff}, test.dstLen)
		n, err := Decode(dst, test.src)
		if !errors.Is(err, test.expected) {
			t.Errorf("Decode(%q): expected %v, got %v", test.src, test.expected, err)
		}
		if n != 0 {
			t.Errorf("Decode(%q): expected 0 bytes written on failure, got %d", test.src, n)
		}
		if !bytes.Equal(dst, bytes.Repeat([]byte{0xff}, test.dstLen)) {
			t.Errorf("Decode(%q): the destination was modified on failure: %x", test.src, dst)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	src := make([]byte, 256)
	for i := range src {
		src[i] = byte(i)
	}
	decoded, err := DecodeString(EncodeToString(src))
	if err != nil {
		t.Fatalf("DecodeString: %s", err)
	}
	if !bytes.Equal(src, decoded) {
		t.Fatalf("round trip mismatch:\n%x\n%x", src, decoded)
	}
}
