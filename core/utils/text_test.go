package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatFields(t *testing.T) {
	assert.Equal(t, "12 Main Rd\r\nCape Town\r\n8001", ConcatFields("12 Main Rd", "nan", "", "Cape Town", 8001))
	assert.Equal(t, "", ConcatFields("nan", nil, "  "))
}

func TestGetIDString(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		id := GetIDString()
		require.Len(t, id, IDLength)
		for _, c := range id {
			assert.True(t, strings.ContainsRune(IDAlphabet, c), "unexpected %q in %s", c, id)
		}
		seen[id] = struct{}{}
	}
	assert.Greater(t, len(seen), 45)
}

func TestLastDayOfMonth(t *testing.T) {
	tests := []struct {
		input any
		want  time.Time
	}{
		{"2024-02-10", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"2023-02-10", time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 12, 31, 8, 0, 0, 0, time.UTC), time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"2024-04-01", time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := LastDayOfMonth(tt.input)
		require.NoError(t, err)
		assert.True(t, tt.want.Equal(got), "got %s for %v", got, tt.input)
	}

	_, err := LastDayOfMonth(nil)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
