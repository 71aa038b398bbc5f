package bundle

import (
	"bytes"
	"errors"
	"io"
	"os"
	"unicode"
	"unicode/utf8"
)

// sampleSize is the number of bytes inspected when classifying a file.
const sampleSize = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// IsTextFile reports whether the sampled prefix of the file decodes as UTF-8
// text containing no control characters outside whitespace. Any open, read,
// or decode failure counts as "not text", so the classifier fails closed.
// Empty files are considered text.
func IsTextFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	buffer := make([]byte, sampleSize)
	n, err := io.ReadFull(file, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false
	}
	windowFull := n == sampleSize
	buffer = bytes.TrimPrefix(buffer[:n], utf8BOM)

	for len(buffer) > 0 {
		r, size := utf8.DecodeRune(buffer)
		if r == utf8.RuneError && size <= 1 {
			// A multi-byte rune cut off by the sample window is not
			// evidence of binary content.
			if windowFull && len(buffer) < utf8.UTFMax {
				return true
			}
			return false
		}
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return false
		}
		buffer = buffer[size:]
	}
	return true
}
