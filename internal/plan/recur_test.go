package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerretW/BatteryGuard-sub000/internal/dates"
	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

func day(s string) time.Time {
	t, err := dates.Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestIsRecurring(t *testing.T) {
	assert.False(t, IsRecurring(model.IntervalOnce))
	assert.True(t, IsRecurring(model.IntervalMonthly))
	assert.True(t, IsRecurring(model.IntervalQuadrennially))
}

func TestAddInterval(t *testing.T) {
	anchor := day("2024-03-01")

	testCases := []struct {
		interval model.RecurrenceInterval
		expected string
	}{
		{model.IntervalOnce, "2024-03-01"},
		{model.IntervalMonthly, "2024-04-01"},
		{model.IntervalQuarterly, "2024-06-01"},
		{model.IntervalSemiAnnually, "2024-09-01"},
		{model.IntervalAnnually, "2025-03-01"},
		{model.IntervalBiAnnually, "2026-03-01"},
		{model.IntervalQuadrennially, "2028-03-01"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.interval), func(t *testing.T) {
			next, err := AddInterval(anchor, tc.interval)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, dates.Format(next))
		})
	}

	_, err := AddInterval(anchor, model.RecurrenceInterval("WEEKLY"))
	var unknown UnknownIntervalError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, model.RecurrenceInterval("WEEKLY"), unknown.Interval)
}

func TestOccurrencesInRange(t *testing.T) {
	testCases := []struct {
		name     string
		anchor   string
		interval model.RecurrenceInterval
		start    string
		end      string
		expected []string
	}{
		{
			name:     "Annually across three years",
			anchor:   "2024-03-01",
			interval: model.IntervalAnnually,
			start:    "2024-01-01",
			end:      "2026-12-31",
			expected: []string{"2024-03-01", "2025-03-01", "2026-03-01"},
		},
		{
			name:     "Monthly over one year yields twelve dates",
			anchor:   "2024-01-01",
			interval: model.IntervalMonthly,
			start:    "2024-01-01",
			end:      "2024-12-31",
			expected: []string{
				"2024-01-01", "2024-02-01", "2024-03-01", "2024-04-01",
				"2024-05-01", "2024-06-01", "2024-07-01", "2024-08-01",
				"2024-09-01", "2024-10-01", "2024-11-01", "2024-12-01",
			},
		},
		{
			name:     "Anchor before range advances into it",
			anchor:   "2023-05-10",
			interval: model.IntervalQuarterly,
			start:    "2024-01-01",
			end:      "2024-06-30",
			expected: []string{"2024-02-10", "2024-05-10"},
		},
		{
			name:     "Once inside range",
			anchor:   "2024-06-15",
			interval: model.IntervalOnce,
			start:    "2024-06-01",
			end:      "2024-06-30",
			expected: []string{"2024-06-15"},
		},
		{
			name:     "Once outside range",
			anchor:   "2024-07-01",
			interval: model.IntervalOnce,
			start:    "2024-06-01",
			end:      "2024-06-30",
			expected: nil,
		},
		{
			name:     "Anchor after range",
			anchor:   "2025-01-01",
			interval: model.IntervalMonthly,
			start:    "2024-01-01",
			end:      "2024-12-31",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			occs, err := OccurrencesInRange(day(tc.anchor), tc.interval, day(tc.start), day(tc.end))
			require.NoError(t, err)

			var got []string
			for _, o := range occs {
				got = append(got, dates.Format(o))
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestOccurrencesInRangeIsRestartable(t *testing.T) {
	a, err := OccurrencesInRange(day("2024-03-01"), model.IntervalMonthly, day("2024-01-01"), day("2024-12-31"))
	require.NoError(t, err)
	b, err := OccurrencesInRange(day("2024-03-01"), model.IntervalMonthly, day("2024-01-01"), day("2024-12-31"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestOccurrencesInRangeUnknownInterval(t *testing.T) {
	_, err := OccurrencesInRange(day("2024-01-01"), "DAILY", day("2024-01-01"), day("2024-12-31"))
	var unknown UnknownIntervalError
	assert.ErrorAs(t, err, &unknown)
}
