package remote

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"supportdesk-backend/models"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (r *Users) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("name").Find(&users).Error; err != nil {
		return nil, translate(err, "failed to load attendants")
	}
	return users, nil
}

func (r *Users) Get(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return models.User{}, translate(err, "attendant not found")
	}
	return user, nil
}

func (r *Users) Insert(ctx context.Context, user models.User) (models.User, error) {
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, translate(err, "attendant not found")
	}
	return user, nil
}

// Update applies a partial update. Email is immutable and must not appear in
// fields; callers enforce that before reaching the gateway.
func (r *Users) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.User, error) {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return models.User{}, translate(result.Error, "attendant not found")
	}
	if result.RowsAffected == 0 {
		return models.User{}, translate(gorm.ErrRecordNotFound, "attendant not found")
	}
	return r.Get(ctx, id)
}

func (r *Users) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error, "attendant not found")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "attendant not found")
	}
	return nil
}
