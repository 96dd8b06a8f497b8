package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddDecimal(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected string
	}{
		{
			name:     "simple addition",
			a:        "1",
			b:        "2",
			expected: "3",
		},
		{
			name:     "wei scale values",
			a:        "1000000000000000000",
			b:        "2500000000000000000",
			expected: "3500000000000000000",
		},
		{
			name:     "beyond uint64",
			a:        "99999999999999999999999999",
			b:        "1",
			expected: "100000000000000000000000000",
		},
		{
			name:     "empty left operand",
			a:        "",
			b:        "5",
			expected: "5",
		},
		{
			name:     "garbage treated as zero",
			a:        "not-a-number",
			b:        "7",
			expected: "7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddDecimal(tt.a, tt.b))
		})
	}
}

func TestIncrementDecimal(t *testing.T) {
	assert.Equal(t, "1", IncrementDecimal(""))
	assert.Equal(t, "1", IncrementDecimal("0"))
	assert.Equal(t, "10", IncrementDecimal("9"))
	assert.Equal(t, "100000000000000000000", IncrementDecimal("99999999999999999999"))
}
