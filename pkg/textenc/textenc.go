// Package textenc decodes expression input written in legacy code pages.
package textenc

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const UTF8 = "utf8"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Supported lists the encoding names accepted by ConvertToUTF8.
var Supported = []string{UTF8, "cp437", "cp850", "iso-8859-1"}

func stripUTF8BOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

func decoderFor(name string) (*encoding.Decoder, error) {
	switch name {
	case "cp437":
		return charmap.CodePage437.NewDecoder(), nil
	case "cp850":
		return charmap.CodePage850.NewDecoder(), nil
	case "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
}

// ConvertToUTF8 converts data from sourceEncoding to UTF-8. A leading UTF-8
// BOM is dropped.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == UTF8 || sourceEncoding == "" {
		return stripUTF8BOM(data), nil
	}

	decoder, err := decoderFor(sourceEncoding)
	if err != nil {
		return nil, err
	}

	utf8Data, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), decoder))
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return stripUTF8BOM(utf8Data), nil
}

// NewReader wraps r so that reads yield UTF-8.
func NewReader(r io.Reader, sourceEncoding string) (io.Reader, error) {
	if sourceEncoding == UTF8 || sourceEncoding == "" {
		return r, nil
	}

	decoder, err := decoderFor(sourceEncoding)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, decoder), nil
}
