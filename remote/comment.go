package remote

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"supportdesk-backend/models"
)

type Comments struct {
	db *gorm.DB
}

func NewComments(db *gorm.DB) *Comments {
	return &Comments{db: db}
}

// ListByAttendance returns comments oldest first with authors expanded.
func (r *Comments) ListByAttendance(ctx context.Context, attendanceID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).Preload("Author").
		Where("attendance_id = ?", attendanceID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, translate(err, "failed to load comments")
	}
	return comments, nil
}

func (r *Comments) Insert(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if err := r.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return models.Comment{}, translate(err, "failed to create comment")
	}
	return comment, nil
}
