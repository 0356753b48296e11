package precinct

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Erie", "Erie"},
		{"spaces", "New  York", "New_York"},
		{"trims", "  Erie  ", "Erie"},
		{"unsafe chars", "St. Mary's / Parish", "St._Marys__Parish"},
		{"keeps safe punctuation", "2020_general.v2-final", "2020_general.v2-final"},
		{"caps length", strings.Repeat("a", 200), strings.Repeat("a", 120)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestInferYearFromPaths(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{"single year", []string{"/tmp/PA_Erie_2020_eday.csv", "PA_Erie_2020_early.csv"}, "2020"},
		{"double underscore name", []string{"Pennsylvania__Erie__2020__COMBINED.csv"}, "2020"},
		{"year at start", []string{"2020_general_eday.csv"}, "2020"},
		{"bare year", []string{"1996"}, "1996"},
		{"year only in some paths", []string{"eday.csv", "PA_2020_early.csv"}, "2020"},
		{"disagreeing years", []string{"PA_2020_eday.csv", "PA_2016_early.csv"}, NameMulti},
		{"no year", []string{"eday.csv", "early.csv"}, NameUnknown},
		{"digits not a year", []string{"precinct_0042.csv"}, NameUnknown},
		{"year in directory only", []string{"/exports/2020/eday.csv"}, NameUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferYearFromPaths(tt.paths))
		})
	}
}

func TestUniqueOrMulti(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"single value", []string{"PA", "PA", " PA "}, "PA"},
		{"blanks ignored", []string{"", "PA", ""}, "PA"},
		{"all blank", []string{"", "  "}, NameUnknown},
		{"empty input", nil, NameUnknown},
		{"multiple values", []string{"PA", "AZ"}, NameMulti},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UniqueOrMulti(tt.values))
		})
	}
}
