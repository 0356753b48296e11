package precinct

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// NameUnknown is used in auto-generated file names when a scope value
	// cannot be determined from the data.
	NameUnknown = "UNKNOWN"
	// NameMulti is used when the data spans more than one scope value.
	NameMulti = "MULTI"
)

var (
	// Underscore is a word character, so \b would miss years in names like
	// PA_Erie_2020_eday.csv; guard with explicit non-digit boundaries instead.
	yearPattern       = regexp.MustCompile(`(?:^|[^0-9])((?:19|20)\d{2})(?:[^0-9]|$)`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	unsafePattern     = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

// SanitizeFilename turns an arbitrary scope value (state, county, election
// name) into a safe file name component: whitespace becomes underscores,
// anything outside [A-Za-z0-9_.-] is stripped, and the result is capped.
func SanitizeFilename(s string) string {
	s = whitespacePattern.ReplaceAllString(strings.TrimSpace(s), "_")
	s = unsafePattern.ReplaceAllString(s, "")
	if len(s) > 120 {
		s = s[:120]
	}
	return s
}

// InferYearFromPaths scans the base names of the given paths for a four-digit
// year. It returns the year when exactly one is found, NameMulti when the
// paths disagree, and NameUnknown when no year appears.
func InferYearFromPaths(paths []string) string {
	years := map[string]struct{}{}
	var found string
	for _, p := range paths {
		if m := yearPattern.FindStringSubmatch(filepath.Base(p)); m != nil {
			years[m[1]] = struct{}{}
			found = m[1]
		}
	}
	switch len(years) {
	case 0:
		return NameUnknown
	case 1:
		return found
	default:
		return NameMulti
	}
}

// UniqueOrMulti collapses a column's values to a single scope label: the one
// distinct non-empty value if there is exactly one, NameUnknown if the column
// is entirely empty, NameMulti otherwise.
func UniqueOrMulti(values []string) string {
	distinct := map[string]struct{}{}
	var found string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		distinct[v] = struct{}{}
		found = v
	}
	switch len(distinct) {
	case 0:
		return NameUnknown
	case 1:
		return found
	default:
		return NameMulti
	}
}
