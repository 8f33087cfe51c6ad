package model

import "time"

// UserRole distinguishes administrators from field technicians.
type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleTechnician UserRole = "TECHNICIAN"
)

// User is an operator account. New registrations start unauthorized
// until an admin flips IsAuthorized.
type User struct {
	ID           string   `gorm:"primaryKey;size:36" json:"id"`
	Name         string   `gorm:"size:128;not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;size:256;not null" json:"email"`
	Role         UserRole `gorm:"size:16;not null" json:"role"`
	IsAuthorized bool     `gorm:"not null" json:"isAuthorized"`
	PasswordHash string   `gorm:"size:128;not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
