package reader

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// DecodingError reports that no candidate encoding could decode a file.
type DecodingError struct {
	Path      string
	Encodings []string
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("cannot decode %s: tried encodings %s", e.Path, strings.Join(e.Encodings, ", "))
}

type candidate struct {
	name   string
	decode func(data []byte) (string, bool)
}

// Read loads the file at path, trying each candidate encoding in order and
// returning the first clean decode. I/O failures are returned as-is; only
// when every encoding fails does Read return a *DecodingError.
func (r *implReader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file %s: %w", path, err)
	}

	for _, c := range r.candidates {
		text, ok := c.decode(data)
		if !ok {
			continue
		}
		r.logger.Debug(context.Background(), "Read %s using %s encoding", path, c.name)
		return text, nil
	}

	names := make([]string, 0, len(r.candidates))
	for _, c := range r.candidates {
		names = append(names, c.name)
	}

	return "", &DecodingError{Path: path, Encodings: names}
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// decodeKorean builds a strict decoder for a legacy code page. The x/text
// decoders substitute U+FFFD instead of failing, so a replacement rune in
// the output marks the input as invalid for that encoding.
func decodeKorean(enc encoding.Encoding) func(data []byte) (string, bool) {
	return func(data []byte) (string, bool) {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", false
		}
		if bytes.ContainsRune(out, utf8.RuneError) {
			return "", false
		}
		return string(out), true
	}
}
