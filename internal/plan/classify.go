package plan

import (
	"time"

	"github.com/BerretW/BatteryGuard-sub000/internal/dates"
)

// Classify assigns an item its temporal state against an explicit "now".
// Forced-actionable items and past due dates are OVERDUE; due dates within
// the lead-time window are UPCOMING; everything further out is SCHEDULED.
// Pure: identical inputs always yield the identical state.
func Classify(it Item, now time.Time, leadTimeWeeks int) State {
	today := dates.Day(now)
	due := dates.Day(it.DueDate)

	if it.ForcedActionable || due.Before(today) {
		return StateOverdue
	}
	windowStart := due.AddDate(0, 0, -7*leadTimeWeeks)
	if !today.Before(windowStart) {
		return StateUpcoming
	}
	return StateScheduled
}
