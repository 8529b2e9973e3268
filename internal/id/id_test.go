package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatItemID(t *testing.T) {
	assert.Equal(t, "2025-01-001", FormatItemID(2025, 1, 1))
	assert.Equal(t, "2025-12-042", FormatItemID(2025, 12, 42))
}

func TestParseItemID(t *testing.T) {
	year, month, seq, err := ParseItemID("2025-01-007")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, month)
	assert.Equal(t, 7, seq)
}

func TestParseItemID_Invalid(t *testing.T) {
	for _, bad := range []string{"", "2025", "2025-01", "x-y-z", "2025-aa-001"} {
		_, _, _, err := ParseItemID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestRandom(t *testing.T) {
	a := Random()
	b := Random()
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
}
