package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339 utc", "2024-03-01T00:00:00Z", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"rfc3339 offset is normalized", "2024-03-01T05:30:00+05:30", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"date only", "2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseInstant_Invalid(t *testing.T) {
	_, err := ParseInstant("01/03/2024")
	assert.ErrorContains(t, err, "expected RFC3339 or YYYY-MM-DD")
}
