package plan

import (
	"time"

	"github.com/BerretW/BatteryGuard-sub000/internal/dates"
	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

// IsRecurring reports whether the interval repeats. Only ONCE does not.
func IsRecurring(iv model.RecurrenceInterval) bool {
	return iv != model.IntervalOnce
}

// PeriodMonths returns the length of one recurrence period in months.
// ONCE has no period and yields 0.
func PeriodMonths(iv model.RecurrenceInterval) (int, error) {
	switch iv {
	case model.IntervalOnce:
		return 0, nil
	case model.IntervalMonthly:
		return 1, nil
	case model.IntervalQuarterly:
		return 3, nil
	case model.IntervalSemiAnnually:
		return 6, nil
	case model.IntervalAnnually:
		return 12, nil
	case model.IntervalBiAnnually:
		return 24, nil
	case model.IntervalQuadrennially:
		return 48, nil
	default:
		return 0, UnknownIntervalError{Interval: iv}
	}
}

// AddInterval advances a date by one recurrence period. ONCE returns the
// date unchanged.
func AddInterval(t time.Time, iv model.RecurrenceInterval) (time.Time, error) {
	months, err := PeriodMonths(iv)
	if err != nil {
		return time.Time{}, err
	}
	return dates.AddMonths(t, months), nil
}

// OccurrencesInRange enumerates the occurrence dates of a recurrence rule
// that fall inside [start, end], advancing from the anchor date until the
// running date passes end. ONCE yields at most its single anchor. The
// computation is stateless and safe to rerun per render.
func OccurrencesInRange(anchor time.Time, iv model.RecurrenceInterval, start, end time.Time) ([]time.Time, error) {
	months, err := PeriodMonths(iv)
	if err != nil {
		return nil, err
	}

	if !IsRecurring(iv) {
		if !anchor.Before(start) && !anchor.After(end) {
			return []time.Time{anchor}, nil
		}
		return nil, nil
	}

	var out []time.Time
	for d := anchor; !d.After(end); d = dates.AddMonths(d, months) {
		if !d.Before(start) {
			out = append(out, d)
		}
	}
	return out, nil
}
