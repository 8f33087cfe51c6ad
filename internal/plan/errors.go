package plan

import (
	"fmt"

	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

// MalformedRecordError reports a source record whose required field is
// missing or unparsable. The record is skipped, never silently coerced:
// treating a broken due date as "not due" would hide real maintenance risk.
type MalformedRecordError struct {
	Record string // record type, e.g. "battery"
	ID     string
	SiteID string
	Field  string
	Err    error
}

func (e MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s %s (site %s): field %s: %v", e.Record, e.ID, e.SiteID, e.Field, e.Err)
}

func (e MalformedRecordError) Unwrap() error { return e.Err }

// UnknownIntervalError reports a recurrence interval outside the closed enum.
type UnknownIntervalError struct {
	Interval model.RecurrenceInterval
}

func (e UnknownIntervalError) Error() string {
	return fmt.Sprintf("unknown recurrence interval %q", string(e.Interval))
}
