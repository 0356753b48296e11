package diff

import (
	"math"
	"strconv"
	"strings"
)

// normalize trims surrounding whitespace and, unless case-sensitive mode is
// on, lowercases the value.
func normalize(s string, caseSensitive bool) string {
	s = strings.TrimSpace(s)
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

// tryFloat parses a value as a number. The second return value is false when
// the value is not numeric; a non-numeric value is never coerced.
func tryFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// valuesEqual applies the equality relation, strictest rule first:
//
//  1. Both blank after normalization: equal.
//  2. (BlankEqualsZero only) exactly one side blank, the other within
//     Tolerance of zero: equal.
//  3. Identical normalized strings: equal.
//  4. Both numeric: equal iff |a-b| <= Tolerance.
//  5. Otherwise not equal.
func valuesEqual(v1, v2 string, opts Options) bool {
	n1 := normalize(v1, opts.CaseSensitive)
	n2 := normalize(v2, opts.CaseSensitive)

	if n1 == "" && n2 == "" {
		return true
	}

	f1, ok1 := tryFloat(n1)
	f2, ok2 := tryFloat(n2)

	if opts.BlankEqualsZero {
		if n1 == "" && ok2 && math.Abs(f2) <= opts.Tolerance {
			return true
		}
		if n2 == "" && ok1 && math.Abs(f1) <= opts.Tolerance {
			return true
		}
	}

	if n1 == n2 {
		return true
	}

	if ok1 && ok2 {
		return math.Abs(f1-f2) <= opts.Tolerance
	}

	return false
}
