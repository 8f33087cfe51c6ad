package model

import "time"

// RecurrenceInterval is the repeat period of a scheduled compliance event.
type RecurrenceInterval string

const (
	IntervalOnce          RecurrenceInterval = "ONCE"
	IntervalMonthly       RecurrenceInterval = "MONTHLY"
	IntervalQuarterly     RecurrenceInterval = "QUARTERLY"
	IntervalSemiAnnually  RecurrenceInterval = "SEMI_ANNUALLY"
	IntervalAnnually      RecurrenceInterval = "ANNUALLY"
	IntervalBiAnnually    RecurrenceInterval = "BI_ANNUALLY"
	IntervalQuadrennially RecurrenceInterval = "QUADRENNIALLY"
)

// ScheduledEvent is a recurring compliance task tied to a site (annual
// inspection, revision, ...). NextDate is the next pending occurrence;
// the write path advances it after the event is acknowledged.
type ScheduledEvent struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	SiteID      string `gorm:"size:36;index;not null" json:"-"`
	Title       string `gorm:"size:256;not null" json:"title"`
	Description string `json:"description,omitempty"`
	FutureNotes string `json:"futureNotes,omitempty"`

	StartDate string             `gorm:"size:32" json:"startDate"`
	NextDate  string             `gorm:"size:32;not null" json:"nextDate"`
	Interval  RecurrenceInterval `gorm:"size:32;not null" json:"interval"`
	IsActive  bool               `gorm:"not null" json:"isActive"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
