package nexus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.7.8", "1.7.8", 0},
		{"1.7.7", "1.7.8", -1},
		{"1.8", "1.7.9", 1},
		{"1.7", "1.7.0", 0},
		{"v1.7.8", "1.7.8", 0},
		{"2.0", "1.99.99", 1},
		{"1.10", "1.9", 1},
		{"1.7.8 beta", "1.7.8", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			got, ok := Compare(tt.a, tt.b)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareUnparseable(t *testing.T) {
	_, ok := Compare("unknown", "1.7.8")
	assert.False(t, ok)
	_, ok = Compare("1.7.8", "")
	assert.False(t, ok)
}

func TestHasUpdate(t *testing.T) {
	assert.True(t, HasUpdate("1.7.7", "1.7.8"))
	assert.False(t, HasUpdate("1.7.8", "1.7.8"))
	assert.False(t, HasUpdate("1.8.0", "1.7.8"))
	// Unknown installed version prompts an update.
	assert.True(t, HasUpdate("", "1.7.8"))
	assert.True(t, HasUpdate("unknown", "1.7.8"))
	// Unknown latest version never does.
	assert.False(t, HasUpdate("1.7.8", ""))
}
