package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  string
		expectErr bool
	}{
		{
			name:     "Plain day string",
			raw:      "2024-03-01",
			expected: "2024-03-01",
		},
		{
			name:     "Surrounding whitespace",
			raw:      "  2024-03-01 ",
			expected: "2024-03-01",
		},
		{
			name:     "RFC3339 timestamp takes the date part",
			raw:      "2024-03-01T14:22:05Z",
			expected: "2024-03-01",
		},
		{
			name:      "Empty",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "Garbage",
			raw:       "never",
			expectErr: true,
		},
		{
			name:      "Wrong separator",
			raw:       "2024/03/01",
			expectErr: true,
		},
		{
			name:      "Trailing junk after the day",
			raw:       "2024-03-01junk",
			expectErr: true,
		},
		{
			name:      "Padded to timestamp length",
			raw:       "2024-03-01 14:22:05",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := Parse(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, Format(parsed))
			assert.Equal(t, 0, parsed.Hour())
		})
	}
}

func TestDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Prague")
	require.NoError(t, err)

	in := time.Date(2024, 3, 1, 23, 59, 58, 0, loc)
	out := Day(in)
	assert.Equal(t, "2024-03-01", Format(out))
	assert.Equal(t, time.UTC, out.Location())

	// A local wall day and a parsed day string are the same instant.
	parsed, err := Parse("2024-03-01")
	require.NoError(t, err)
	assert.True(t, out.Equal(parsed))
}

func TestAddMonthsNormalizes(t *testing.T) {
	jan31 := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-03", Format(AddMonths(jan31, 1)))

	mar01 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-01", Format(AddMonths(mar01, 12)))
}

func TestMonthAfter(t *testing.T) {
	y, m := MonthAfter(time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.January, m)

	y, m = MonthAfter(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.February, m)
}
