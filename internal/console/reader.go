// internal/console/reader.go
//
// Single-line console input.
//
// ReadLine blocks until a newline or end of stream. There is no timeout and
// no cancellation; the caller owns the reader.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrNoInput reports a stream that closed before a single byte arrived.
var ErrNoInput = errors.New("console: input stream closed")

// ReadLine returns the first line of r, terminator included.
// A last line without '\n' is returned as-is with a nil error.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", ErrNoInput
		}
		return line, nil
	default:
		return "", fmt.Errorf("console: read line: %w", err)
	}
}
