package plan

import (
	"time"

	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

// ItemKind identifies which source collection a maintenance item came from.
type ItemKind string

const (
	KindBattery   ItemKind = "BATTERY"
	KindScheduled ItemKind = "SCHEDULED"
	KindIssue     ItemKind = "ISSUE"
)

// State is the temporal classification of a maintenance item.
type State string

const (
	StateOverdue   State = "OVERDUE"
	StateUpcoming  State = "UPCOMING"
	StateScheduled State = "SCHEDULED"
	// StateResolved marks records excluded from every temporal view
	// (REPLACED batteries, RESOLVED issues, DONE tasks). Normalization
	// drops these before classification, so Classify never emits it.
	StateResolved State = "RESOLVED"
)

// Item is the canonical maintenance item the engine classifies. It is
// synthesized from raw records on every computation and never persisted.
type Item struct {
	ID       string    `json:"id"`
	Kind     ItemKind  `json:"kind"`
	SiteID   string    `json:"siteId"`
	SiteName string    `json:"siteName"`
	Label    string    `json:"label"`
	DueDate  time.Time `json:"dueDate"`
	// ForcedActionable pins the item to the overdue bucket regardless
	// of its date (non-healthy battery, open issue).
	ForcedActionable bool   `json:"isForcedActionable"`
	Note             string `json:"note,omitempty"`

	// Interval is set for scheduled-event items so calendar views can
	// expand occurrences past the stored next date.
	Interval model.RecurrenceInterval `json:"interval,omitempty"`
}

// ClassifiedItem pairs an item with its computed state.
type ClassifiedItem struct {
	Item
	State State `json:"state"`
}
