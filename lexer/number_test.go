package lexer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadNumber(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantInt   *int64
		wantFloat *float64
		wantRest  string
	}{
		{
			name:     "integer",
			input:    "2345 rest",
			wantInt:  int64Ptr(2345),
			wantRest: " rest",
		},
		{
			name:      "float",
			input:     "3.14",
			wantFloat: float64Ptr(3.14),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.input)
			start := c.position()
			first, _ := c.advance()
			leaf, err := readNumber(c, start, first)
			require.Nil(t, err)

			if tt.wantInt != nil {
				n, ok := leaf.AsInteger()
				require.True(t, ok)
				assert.Equal(t, *tt.wantInt, n)
			}
			if tt.wantFloat != nil {
				f, ok := leaf.AsFloat()
				require.True(t, ok)
				assert.InDelta(t, *tt.wantFloat, f, 1e-9)
			}
			if tt.wantRest != "" {
				assert.Equal(t, tt.wantRest, c.remaining())
			}
		})
	}
}

func TestReadNumberErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ErrorKind
	}{
		{"trailing decimal is error", "3.", TrailingDecimal},
		{"overflow", "99999999999999999999", IntegerOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.input)
			start := c.position()
			first, _ := c.advance()
			_, err := readNumber(c, start, first)
			require.NotNil(t, err)
			assert.Equal(t, tt.want, err.Kind)
		})
	}
}

func TestReadNumberOverflowSpanAnchoredAtLiteralStart(t *testing.T) {
	c := newCursor("99999999999999999999")
	start := c.position()
	first, _ := c.advance()
	_, err := readNumber(c, start, first)
	require.NotNil(t, err)
	assert.Equal(t, start, err.Span.Start)
}

func TestCheckedMulAdd10(t *testing.T) {
	tests := []struct {
		name         string
		num, digit   int64
		want         int64
		wantOverflow bool
	}{
		{"no overflow at the boundary", math.MaxInt64 / 10, 7, math.MaxInt64, false},
		{"overflow one past the boundary", math.MaxInt64 / 10, 8, 0, true},
		{"overflow on an already-maxed accumulator", math.MaxInt64, 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, overflow := checkedMulAdd10(tt.num, tt.digit)
			assert.Equal(t, tt.wantOverflow, overflow)
			if !overflow {
				assert.Equal(t, tt.want, n)
			}
		})
	}
}

func int64Ptr(n int64) *int64       { return &n }
func float64Ptr(f float64) *float64 { return &f }
