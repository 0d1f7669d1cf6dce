package extraction

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"io"
	"regexp"
)

// maxInflatedSize caps a single decompressed stream.
const maxInflatedSize = 16 << 20

// streamBlock matches the body of a PDF stream object.
var streamBlock = regexp.MustCompile(`(?s)stream\r?\n(.*?)\r?\nendstream`)

// streamBodies returns every stream body in data. Binary bodies that inflate
// cleanly are returned decompressed, the rest as stored.
func streamBodies(data []byte) [][]byte {
	matches := streamBlock.FindAllSubmatch(data, -1)
	bodies := make([][]byte, 0, len(matches))
	for _, m := range matches {
		body := m[1]
		if !isMostlyText(body) {
			if inflated, err := inflate(body); err == nil {
				body = inflated
			}
		}
		bodies = append(bodies, body)
	}
	return bodies
}

// inflate decodes a FlateDecode stream. PDF writers normally emit a zlib
// wrapper; bare deflate data is tried second and must decode completely.
func inflate(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}

	if zr, err := zlib.NewReader(bytes.NewReader(data)); err == nil {
		decoded, readErr := io.ReadAll(io.LimitReader(zr, maxInflatedSize))
		zr.Close()
		// Truncated streams are common; keep what decoded.
		if readErr == nil || (readErr == io.ErrUnexpectedEOF && len(decoded) > 0) {
			return decoded, nil
		}
	}

	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()

	decoded, err := io.ReadAll(io.LimitReader(fr, maxInflatedSize))
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

// isMostlyText reports whether at least 90% of b is printable ASCII or whitespace.
func isMostlyText(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	printable := 0
	for _, c := range b {
		if (c >= 0x20 && c <= 0x7e) || c == '\n' || c == '\r' || c == '\t' {
			printable++
		}
	}
	return printable*10 >= len(b)*9
}
