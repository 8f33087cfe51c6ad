package model

import "time"

// Site represents a managed building/location with all of its nested
// maintenance-relevant records. The scheduling engine only ever reads
// a preloaded snapshot of these.
type Site struct {
	ID            string   `gorm:"primaryKey;size:36" json:"id"`
	Name          string   `gorm:"size:256;not null" json:"name"`
	Address       string   `gorm:"size:512" json:"address"`
	Description   string   `json:"description"`
	InternalNotes string   `json:"internalNotes,omitempty"`
	GroupID       *string  `gorm:"size:36;index" json:"groupId,omitempty"`
	Lat           *float64 `json:"lat,omitempty"`
	Lng           *float64 `json:"lng,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Associations
	Technologies    []Technology     `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"technologies"`
	ScheduledEvents []ScheduledEvent `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"scheduledEvents"`
	PendingIssues   []PendingIssue   `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"pendingIssues"`
	Tasks           []ManualTask     `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"tasks"`
	Contacts        []Contact        `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"contacts"`
	LogEntries      []LogEntry       `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"logEntries"`
}

// Contact is a person responsible for a site.
type Contact struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	SiteID string `gorm:"size:36;index;not null" json:"-"`
	Name   string `gorm:"size:128;not null" json:"name"`
	Role   string `gorm:"size:128" json:"role"`
	Phone  string `gorm:"size:32" json:"phone"`
	Email  string `gorm:"size:256" json:"email"`
}

// LogEntry is a filled-in service protocol recorded during a visit.
// Data holds the template answers as a JSON object.
type LogEntry struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	SiteID       string    `gorm:"size:36;index;not null" json:"-"`
	TemplateName string    `gorm:"size:128" json:"templateName"`
	Date         string    `gorm:"size:32;not null" json:"date"`
	Author       string    `gorm:"size:128" json:"author"`
	Data         string    `json:"data"`
	CreatedAt    time.Time `json:"-"`
}
