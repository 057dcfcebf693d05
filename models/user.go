package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendant roles. Admins may manage other attendants; attendants only work
// their own queue.
const (
	RoleAdmin     = "admin"
	RoleAttendant = "attendant"
)

// User is the profile row backing an attendant. The matching credential lives
// in the identities table owned by the auth service; the two share an ID.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Email string `gorm:"uniqueIndex;not null" json:"email"` // immutable after creation
	Name  string `gorm:"not null" json:"name"`
	Phone string `json:"phone"`
	Role  string `gorm:"type:varchar(20);not null;default:'attendant'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleAttendant
}
