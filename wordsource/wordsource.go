// Package wordsource reads dictionary words from files or readers and
// normalizes them for the word graph: one word per line, trimmed,
// uppercased, empty lines dropped, input order preserved.
//
// Failures of the underlying resource are reported as ErrUnavailable
// (wrapped with the cause) and never retried; they stay on this side of
// the boundary and are never surfaced through the graph API.
package wordsource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUnavailable indicates the word source could not be read.
var ErrUnavailable = errors.New("wordsource: word source unavailable")

// FromReader scans r line by line and returns the normalized words in
// input order. Lines that are empty after trimming are dropped.
//
// Errors: ErrUnavailable (wrapped) if reading fails.
func FromReader(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrUnavailable)
	}

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, strings.ToUpper(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return words, nil
}

// FromFile opens path and delegates to FromReader.
//
// Errors: ErrUnavailable (wrapped) if the file cannot be opened or read.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()

	return FromReader(f)
}
