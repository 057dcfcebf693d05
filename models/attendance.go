package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Canonical attendance statuses. Legacy clients still send "resolved" and
// "closed"; CanonicalStatus folds those into "completed".
const (
	StatusOpen       = "open"
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Statuses lists the canonical statuses in dashboard display order.
var Statuses = []string{StatusOpen, StatusPending, StatusInProgress, StatusCompleted}

// CanonicalStatus maps any accepted status spelling onto the canonical enum.
// Returns false for unknown values.
func CanonicalStatus(s string) (string, bool) {
	switch s {
	case StatusOpen, StatusPending, StatusInProgress, StatusCompleted:
		return s, true
	case "resolved", "closed":
		return StatusCompleted, true
	default:
		return "", false
	}
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// NextPriority returns the priority one step closer to urgent.
func NextPriority(p string) string {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	case PriorityHigh:
		return PriorityUrgent
	default:
		return p
	}
}

type Attendance struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	AttendantID uuid.UUID `gorm:"type:uuid;index;not null" json:"attendant_id"`

	Title              string     `gorm:"not null" json:"title"`
	ProblemDescription string     `gorm:"type:text" json:"problem_description"`
	Solution           string     `gorm:"type:text" json:"solution"`
	Status             string     `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	Priority           string     `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	DueDate            *time.Time `json:"due_date"`

	Customer  *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Attendant *User     `gorm:"foreignKey:AttendantID" json:"attendant,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
