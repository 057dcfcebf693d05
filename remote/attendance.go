package remote

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"supportdesk-backend/models"
)

type Attendances struct {
	db *gorm.DB
}

func NewAttendances(db *gorm.DB) *Attendances {
	return &Attendances{db: db}
}

func (r *Attendances) expanded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Customer").Preload("Attendant")
}

// List returns all attendances, newest first, with customer and attendant
// expanded.
func (r *Attendances) List(ctx context.Context) ([]models.Attendance, error) {
	var attendances []models.Attendance
	if err := r.expanded(ctx).Order("created_at DESC").Find(&attendances).Error; err != nil {
		return nil, translate(err, "failed to load attendances")
	}
	return attendances, nil
}

func (r *Attendances) Get(ctx context.Context, id uuid.UUID) (models.Attendance, error) {
	var attendance models.Attendance
	if err := r.expanded(ctx).First(&attendance, "attendances.id = ?", id).Error; err != nil {
		return models.Attendance{}, translate(err, "attendance not found")
	}
	return attendance, nil
}

func (r *Attendances) Insert(ctx context.Context, attendance models.Attendance) (models.Attendance, error) {
	if err := r.db.WithContext(ctx).Create(&attendance).Error; err != nil {
		return models.Attendance{}, translate(err, "failed to create attendance")
	}
	// Re-read so the caller gets the expanded relations.
	return r.Get(ctx, attendance.ID)
}

func (r *Attendances) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Attendance, error) {
	result := r.db.WithContext(ctx).Model(&models.Attendance{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return models.Attendance{}, translate(result.Error, "attendance not found")
	}
	if result.RowsAffected == 0 {
		return models.Attendance{}, translate(gorm.ErrRecordNotFound, "attendance not found")
	}
	return r.Get(ctx, id)
}

func (r *Attendances) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Attendance{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error, "attendance not found")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "attendance not found")
	}
	return nil
}

// CountByStatus returns row counts grouped by status in a single query.
func (r *Attendances) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Attendance{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "failed to load dashboard counts")
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountByPriority returns row counts grouped by priority in a single query.
func (r *Attendances) CountByPriority(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Priority string
		Count    int64
	}
	err := r.db.WithContext(ctx).Model(&models.Attendance{}).
		Select("priority, COUNT(*) as count").
		Group("priority").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "failed to load dashboard counts")
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Priority] = row.Count
	}
	return counts, nil
}

// Recent returns the most recently created attendances with relations
// expanded.
func (r *Attendances) Recent(ctx context.Context, limit int) ([]models.Attendance, error) {
	var attendances []models.Attendance
	if err := r.expanded(ctx).Order("created_at DESC").Limit(limit).Find(&attendances).Error; err != nil {
		return nil, translate(err, "failed to load recent attendances")
	}
	return attendances, nil
}

// ListOverdue returns unfinished attendances whose due date has passed.
func (r *Attendances) ListOverdue(ctx context.Context, now time.Time) ([]models.Attendance, error) {
	var attendances []models.Attendance
	err := r.expanded(ctx).
		Where("due_date IS NOT NULL AND due_date < ? AND status <> ?", now, models.StatusCompleted).
		Find(&attendances).Error
	if err != nil {
		return nil, translate(err, "failed to load overdue attendances")
	}
	return attendances, nil
}
