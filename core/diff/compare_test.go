package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuesEqual(t *testing.T) {
	tests := []struct {
		name  string
		v1    string
		v2    string
		opts  Options
		equal bool
	}{
		{"identical strings", "Erie", "Erie", Options{}, true},
		{"trimmed", "  Erie ", "Erie", Options{}, true},
		{"case folded by default", "Smith", "smith", Options{}, true},
		{"case sensitive", "Smith", "smith", Options{CaseSensitive: true}, false},
		{"both blank", "", "   ", Options{}, true},
		{"blank vs string", "", "Erie", Options{}, false},
		{"numeric exact", "100", "100.0", Options{}, true},
		{"numeric within tolerance", "10.001", "10.0", Options{Tolerance: 0.01}, true},
		{"numeric outside tolerance", "10.1", "10.0", Options{Tolerance: 0.01}, false},
		{"numeric zero tolerance", "100", "101", Options{}, false},
		{"numeric vs string", "100", "one hundred", Options{Tolerance: 1000}, false},
		{"blank vs zero without flag", "", "0", Options{}, false},
		{"blank vs zero with flag", "", "0", Options{BlankEqualsZero: true}, true},
		{"zero vs blank with flag", "0.0", " ", Options{BlankEqualsZero: true}, true},
		{"blank vs near zero with flag", "", "0.005", Options{BlankEqualsZero: true, Tolerance: 0.01}, true},
		{"blank vs nonzero with flag", "", "0.5", Options{BlankEqualsZero: true, Tolerance: 0.01}, false},
		{"blank vs string with flag", "", "Erie", Options{BlankEqualsZero: true}, false},
		{"negative within tolerance", "-0.005", "0", Options{Tolerance: 0.01}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, valuesEqual(tt.v1, tt.v2, tt.opts))
			// The relation is symmetric.
			assert.Equal(t, tt.equal, valuesEqual(tt.v2, tt.v1, tt.opts))
		})
	}
}

func TestTryFloat(t *testing.T) {
	f, ok := tryFloat(" 12.5 ")
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)

	_, ok = tryFloat("P-01")
	assert.False(t, ok)

	_, ok = tryFloat("")
	assert.False(t, ok)
}
