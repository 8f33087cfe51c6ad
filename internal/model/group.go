package model

import "time"

// Default policy values applied when a site has no group or the group
// leaves a field unset.
const (
	DefaultBatteryLifeMonths     = 24
	DefaultNotificationLeadWeeks = 4
)

// Group is a customer tier sites can be assigned to. It carries the
// maintenance policy knobs resolved per site.
type Group struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"size:128;not null" json:"name"`
	Color string `gorm:"size:16" json:"color,omitempty"`

	DefaultBatteryLifeMonths  int `json:"defaultBatteryLifeMonths"`
	NotificationLeadTimeWeeks int `json:"notificationLeadTimeWeeks"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
