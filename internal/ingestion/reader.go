// Package ingestion reads the line-oriented corpus format: a stop-word line,
// a document count, one line per document and, for one-shot searches, a
// query line. It also renders ranked results back to text.
package ingestion

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Reader consumes the corpus format line by line.
type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line terminator. At end of input
// it returns "" and io.EOF; a final line without a newline is returned with a
// nil error.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// ReadLineWithNumber skips leading whitespace, including blank lines, reads
// a signed decimal integer and discards the rest of that line. Input that
// does not start with a number, or does not fit in an int, yields 0 and
// ok == false; only I/O failures are returned as errors.
func (r *Reader) ReadLineWithNumber() (n int, ok bool, err error) {
	if err := r.skipSpace(); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
		return 0, false, err
	}

	var digits strings.Builder
	for {
		b, err := r.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, false, err
		}
		isSign := digits.Len() == 0 && (b == '-' || b == '+')
		if !isSign && (b < '0' || b > '9') {
			if err := r.r.UnreadByte(); err != nil {
				return 0, false, err
			}
			break
		}
		digits.WriteByte(b)
	}

	if _, err := r.ReadLine(); err != nil && !errors.Is(err, io.EOF) {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(digits.String())
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

func (r *Reader) skipSpace() error {
	for {
		b, err := r.r.ReadByte()
		if err != nil {
			return err
		}
		switch b {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		return r.r.UnreadByte()
	}
}
