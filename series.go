package vsop87

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedSeries is returned when a VSOP87 series file cannot be parsed.
// It is fatal for the planet it concerns: no position can ever be computed
// from a partially read series.
var ErrMalformedSeries = errors.New("malformed VSOP87 series data")

// seriesTerm is one periodic term of a VSOP87 series, contributing
// A·cos(B + C·T) to its bucket.
type seriesTerm struct {
	A, B, C float64
}

// planetSeries holds every series of one planet, bucketed by coordinate axis
// (x, y, z) and power of T. The theory truncates at T**4; slot 5 stays
// allocated to mirror the layout of the distribution files.
type planetSeries [3][6][]seriesTerm

// numTerms returns the total number of periodic terms across all buckets.
func (s *planetSeries) numTerms() (n int) {
	for axis := range s {
		for power := range s[axis] {
			n += len(s[axis][power])
		}
	}
	return
}

// headerBanner is the leading token of every block header line in a VSOP87
// distribution file, e.g.
//
//	VSOP87 VERSION C4  VENUS  VARIABLE 1 (X)  *T**0  718 TERMS  ...
//
// Token 5 carries the 1-based variable number and the fifth character of
// token 7 the power of T.
const headerBanner = "VSOP87"

const (
	headerVariableToken = 5
	headerPowerToken    = 7
	headerPowerChar     = 4
	headerMinTokens     = 8
)

// parseSeries reads one planet's VSOP87C series file. A header line opens a
// new (axis, power) bucket; every following data line contributes one term,
// taken from its last three whitespace-delimited fields (amplitude, phase,
// frequency). Blank lines are skipped. Terms are kept in file order so that
// summation is reproducible bit for bit.
func parseSeries(p Planet, r io.Reader) (planetSeries, error) {
	var series planetSeries
	axis, power := 0, 0
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == headerBanner {
			var err error
			if axis, power, err = parseSeriesHeader(fields); err != nil {
				return series, fmt.Errorf("%s line %d: %w", p, lineNo, err)
			}
			continue
		}
		if len(fields) < 3 {
			return series, fmt.Errorf("%s line %d: %w: %d fields, need at least 3", p, lineNo, ErrMalformedSeries, len(fields))
		}
		term, err := parseSeriesTerm(fields[len(fields)-3:])
		if err != nil {
			return series, fmt.Errorf("%s line %d: %w", p, lineNo, err)
		}
		series[axis][power] = append(series[axis][power], term)
	}
	if err := scanner.Err(); err != nil {
		return series, fmt.Errorf("%s: reading series: %w", p, err)
	}
	return series, nil
}

func parseSeriesHeader(fields []string) (axis, power int, err error) {
	if len(fields) < headerMinTokens {
		return 0, 0, fmt.Errorf("%w: header has %d tokens, need at least %d", ErrMalformedSeries, len(fields), headerMinTokens)
	}
	v := fields[headerVariableToken][0]
	if v < '1' || v > '3' {
		return 0, 0, fmt.Errorf("%w: variable token %q", ErrMalformedSeries, fields[headerVariableToken])
	}
	pt := fields[headerPowerToken]
	if len(pt) <= headerPowerChar || pt[headerPowerChar] < '0' || pt[headerPowerChar] > '5' {
		return 0, 0, fmt.Errorf("%w: power token %q", ErrMalformedSeries, pt)
	}
	return int(v - '1'), int(pt[headerPowerChar] - '0'), nil
}

func parseSeriesTerm(coeffs []string) (t seriesTerm, err error) {
	if t.A, err = strconv.ParseFloat(coeffs[0], 64); err != nil {
		return t, fmt.Errorf("%w: amplitude %q", ErrMalformedSeries, coeffs[0])
	}
	if t.B, err = strconv.ParseFloat(coeffs[1], 64); err != nil {
		return t, fmt.Errorf("%w: phase %q", ErrMalformedSeries, coeffs[1])
	}
	if t.C, err = strconv.ParseFloat(coeffs[2], 64); err != nil {
		return t, fmt.Errorf("%w: frequency %q", ErrMalformedSeries, coeffs[2])
	}
	return t, nil
}
