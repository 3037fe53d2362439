// Package reader provides the two external collaborators spec.md section 1
// names only at their interface: a decompressing line reader and a JSON
// parser. Translated directly from original_source/src/io.rs's GzipFile
// (flate2::read::GzDecoder + BufReader + Lines) into Go's standard
// compress/gzip and bufio.Scanner.
package reader

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
)

const maxLineSize = 64 * 1024 * 1024

// LineSource yields successive newline-delimited text records from a
// gzip-compressed stream, the "finite lazy sequence of decoded text lines"
// of spec.md section 6.
type LineSource struct {
	scanner *bufio.Scanner
	gz      *gzip.Reader
}

// NewGzipLineSource wraps r, a gzip-compressed byte stream, as a LineSource.
func NewGzipLineSource(r io.Reader) (*LineSource, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("reader: open gzip stream: %w", err)
	}

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &LineSource{scanner: scanner, gz: gz}, nil
}

// Next returns the next line, or ok=false at end of stream. An I/O failure
// on the underlying storage surfaces here unchanged (spec.md section 6).
func (l *LineSource) Next() (line string, ok bool, err error) {
	if l.scanner.Scan() {
		return l.scanner.Text(), true, nil
	}
	if err := l.scanner.Err(); err != nil {
		return "", false, fmt.Errorf("reader: read line: %w", err)
	}
	return "", false, nil
}

// Close releases the underlying gzip reader.
func (l *LineSource) Close() error {
	return l.gz.Close()
}
