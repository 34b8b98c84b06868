package pdf

import (
	"bytes"
	"errors"
	"fmt"
)

// headerWindow is how far into the buffer the %PDF- marker may start.
// Some producers put garbage in front of the header and viewers accept it.
const headerWindow = 1024

var (
	// ErrNotPDF is returned when the buffer carries no PDF header
	ErrNotPDF = errors.New("not a PDF file")

	// ErrEncrypted is returned for documents with an /Encrypt dictionary
	ErrEncrypted = errors.New("encrypted PDF documents are not supported")
)

// Sniff checks that data starts like a PDF file and returns the version
// string from the header, e.g. "1.7".
func Sniff(data []byte) (string, error) {
	if len(data) < 8 {
		return "", fmt.Errorf("%w: %d bytes is too short", ErrNotPDF, len(data))
	}

	window := data
	if len(window) > headerWindow {
		window = window[:headerWindow]
	}
	idx := bytes.Index(window, []byte("%PDF-"))
	if idx < 0 {
		return "", ErrNotPDF
	}

	rest := data[idx+5:]
	end := 0
	for end < len(rest) && end < 8 {
		c := rest[end]
		if c == '\r' || c == '\n' || c == ' ' || c == '\t' || c == '%' {
			break
		}
		end++
	}
	if end == 0 {
		return "", fmt.Errorf("%w: missing version in header", ErrNotPDF)
	}
	return string(rest[:end]), nil
}
