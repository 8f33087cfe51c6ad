package model

import "time"

// IssueStatus is the lifecycle state of a deferred issue.
type IssueStatus string

const (
	IssueOpen     IssueStatus = "OPEN"
	IssueResolved IssueStatus = "RESOLVED"
)

// PendingIssue is a defect noted during a visit and deferred for later.
// While OPEN it is treated as immediately actionable.
type PendingIssue struct {
	ID        string      `gorm:"primaryKey;size:36" json:"id"`
	SiteID    string      `gorm:"size:36;index;not null" json:"-"`
	Text      string      `gorm:"not null" json:"text"`
	CreatedOn string      `gorm:"size:32;not null" json:"createdAt"`
	CreatedBy string      `gorm:"size:128" json:"createdBy"`
	Status    IssueStatus `gorm:"size:16;not null" json:"status"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TaskPriority is the operator-assigned urgency of a manual task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// TaskStatus is the lifecycle state of a manual task.
type TaskStatus string

const (
	TaskOpen       TaskStatus = "OPEN"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
)

// ManualTask is an ad-hoc operator-created task with a hard deadline.
// DONE tasks drop out of every temporal view.
type ManualTask struct {
	ID          string       `gorm:"primaryKey;size:36" json:"id"`
	SiteID      string       `gorm:"size:36;index;not null" json:"-"`
	Description string       `gorm:"not null" json:"description"`
	Deadline    string       `gorm:"size:32;not null" json:"deadline"`
	Priority    TaskPriority `gorm:"size:16;not null" json:"priority"`
	Status      TaskStatus   `gorm:"size:16;not null" json:"status"`
	Note        string       `json:"note,omitempty"`
	CreatedBy   string       `gorm:"size:128" json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
