package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a threaded note on an attendance. Comments are immutable; there
// is no update or delete path.
type Comment struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AttendanceID uuid.UUID `gorm:"type:uuid;index;not null" json:"attendance_id"`
	AuthorID     uuid.UUID `gorm:"type:uuid;index;not null" json:"author_id"`

	Comment string `gorm:"type:text;not null" json:"comment"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "attendance_comments"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
