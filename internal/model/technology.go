package model

import "time"

// BatteryStatus is the literal health state recorded on a battery.
type BatteryStatus string

const (
	BatteryHealthy  BatteryStatus = "HEALTHY"
	BatteryWarning  BatteryStatus = "WARNING"
	BatteryCritical BatteryStatus = "CRITICAL"
	BatteryReplaced BatteryStatus = "REPLACED"
)

// Technology is a powered sub-system installed at a site (fire alarm
// panel, intrusion system, ...), holding its standby batteries.
type Technology struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	SiteID   string `gorm:"size:36;index;not null" json:"-"`
	Name     string `gorm:"size:256;not null" json:"name"`
	Category string `gorm:"size:128" json:"category"`
	Location string `gorm:"size:256" json:"location"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Associations
	Batteries []Battery `gorm:"foreignKey:TechnologyID;constraint:OnDelete:CASCADE" json:"batteries"`
}

// Battery is a single standby accumulator. Date fields are stored as
// plain day strings; NextReplacementDate drives scheduling.
type Battery struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	TechnologyID string  `gorm:"size:36;index;not null" json:"-"`
	CapacityAh   float64 `json:"capacityAh"`
	VoltageV     float64 `json:"voltageV"`

	InstallDate         string        `gorm:"size:32" json:"installDate"`
	LastCheckDate       string        `gorm:"size:32" json:"lastCheckDate,omitempty"`
	NextReplacementDate string        `gorm:"size:32;not null" json:"nextReplacementDate"`
	Status              BatteryStatus `gorm:"size:16;not null" json:"status"`

	SerialNumber string `gorm:"size:128" json:"serialNumber,omitempty"`
	Notes        string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
