package vsop87

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedCache is returned when a precomputed table cannot be parsed.
// Unlike a series failure it is recoverable: the table is dropped and the
// planet is served by the live series evaluation instead.
var ErrMalformedCache = errors.New("malformed precomputed data")

// Precomputed table format: line 1 is an integer sample count N, followed by
// N lines of "x y z", one per consecutive integer JDE starting at JDE 0.
// Day 0 of every table is JDE 0.0 and the fields are stored in x, y, z
// order. cmd/precompute writes this format.

// parsePrecomputed reads a planet's precomputed daily table. The returned
// slice holds one sample per integer day; its length is the coverage
// boundary of the table.
func parsePrecomputed(p Planet, r io.Reader) ([]Position, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%s: reading precomputed data: %w", p, err)
		}
		return nil, fmt.Errorf("%s line 1: %w: empty file", p, ErrMalformedCache)
	}
	header := strings.TrimSpace(scanner.Text())
	n, err := strconv.Atoi(header)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%s line 1: %w: sample count %q", p, ErrMalformedCache, header)
	}
	samples := make([]Position, 0, n)
	for len(samples) < n && scanner.Scan() {
		lineNo := len(samples) + 2
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s line %d: %w: %d fields, need 3", p, lineNo, ErrMalformedCache, len(fields))
		}
		var s Position
		if s.X, err = strconv.ParseFloat(fields[0], 64); err == nil {
			if s.Y, err = strconv.ParseFloat(fields[1], 64); err == nil {
				s.Z, err = strconv.ParseFloat(fields[2], 64)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w: %v", p, lineNo, ErrMalformedCache, err)
		}
		samples = append(samples, s)
	}
	if len(samples) < n {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%s: reading precomputed data: %w", p, err)
		}
		return nil, fmt.Errorf("%s: %w: %d samples, header announced %d", p, ErrMalformedCache, len(samples), n)
	}
	return samples, nil
}
