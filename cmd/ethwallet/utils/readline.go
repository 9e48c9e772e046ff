package utils

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ReadLine reads one line from the given reader with trimmed white space.
// A last line without a newline is returned as well.
func ReadLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}

	return strings.TrimSpace(line), nil
}
