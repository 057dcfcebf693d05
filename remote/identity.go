package remote

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"supportdesk-backend/models"
)

type Identities struct {
	db *gorm.DB
}

func NewIdentities(db *gorm.DB) *Identities {
	return &Identities{db: db}
}

func (r *Identities) GetByEmail(ctx context.Context, email string) (models.Identity, error) {
	var identity models.Identity
	if err := r.db.WithContext(ctx).First(&identity, "email = ?", email).Error; err != nil {
		return models.Identity{}, translate(err, "identity not found")
	}
	return identity, nil
}

func (r *Identities) Get(ctx context.Context, id uuid.UUID) (models.Identity, error) {
	var identity models.Identity
	if err := r.db.WithContext(ctx).First(&identity, "id = ?", id).Error; err != nil {
		return models.Identity{}, translate(err, "identity not found")
	}
	return identity, nil
}

func (r *Identities) Insert(ctx context.Context, identity models.Identity) (models.Identity, error) {
	if err := r.db.WithContext(ctx).Create(&identity).Error; err != nil {
		return models.Identity{}, translate(err, "failed to create identity")
	}
	return identity, nil
}

func (r *Identities) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	result := r.db.WithContext(ctx).Model(&models.Identity{}).Where("id = ?", id).
		Update("password_hash", hash)
	if result.Error != nil {
		return translate(result.Error, "identity not found")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "identity not found")
	}
	return nil
}

func (r *Identities) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Identity{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error, "identity not found")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "identity not found")
	}
	return nil
}
