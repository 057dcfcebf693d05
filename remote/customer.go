package remote

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"supportdesk-backend/models"
)

type Customers struct {
	db *gorm.DB
}

func NewCustomers(db *gorm.DB) *Customers {
	return &Customers{db: db}
}

// List returns all customers ordered by name.
func (r *Customers) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Order("name").Find(&customers).Error; err != nil {
		return nil, translate(err, "failed to load customers")
	}
	return customers, nil
}

func (r *Customers) Get(ctx context.Context, id uuid.UUID) (models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return models.Customer{}, translate(err, "customer not found")
	}
	return customer, nil
}

func (r *Customers) Insert(ctx context.Context, customer models.Customer) (models.Customer, error) {
	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return models.Customer{}, translate(err, "failed to create customer")
	}
	return customer, nil
}

// Update applies a partial update and returns the canonical row.
func (r *Customers) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Customer, error) {
	result := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return models.Customer{}, translate(result.Error, "customer not found")
	}
	if result.RowsAffected == 0 {
		return models.Customer{}, translate(gorm.ErrRecordNotFound, "customer not found")
	}
	return r.Get(ctx, id)
}

func (r *Customers) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error, "customer not found")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "customer not found")
	}
	return nil
}
