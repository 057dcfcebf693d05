package store

import (
	"context"

	"github.com/google/uuid"

	"supportdesk-backend/apperr"
	"supportdesk-backend/models"
	"supportdesk-backend/utils"
)

// CustomerGateway is the slice of the remote data source the customer store
// needs. Production wiring injects remote.Customers.
type CustomerGateway interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (models.Customer, error)
	Insert(ctx context.Context, customer models.Customer) (models.Customer, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateCustomerInput defines the expected JSON structure for creating a customer.
type CreateCustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer.
// Nil fields are left untouched.
type UpdateCustomerInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (in UpdateCustomerInput) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Address != nil {
		fields["address"] = *in.Address
	}
	return fields
}

type CustomerStore struct {
	status
	gateway CustomerGateway

	items    []models.Customer
	selected *models.Customer
}

func NewCustomerStore(gateway CustomerGateway) *CustomerStore {
	return &CustomerStore{gateway: gateway}
}

// Items returns the snapshot from the last successful fetch.
func (s *CustomerStore) Items() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Customer, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CustomerStore) Selected() *models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	c := *s.selected
	return &c
}

// FetchAll replaces the snapshot wholesale. On failure the previous snapshot
// stays visible underneath the error.
func (s *CustomerStore) FetchAll(ctx context.Context) (err error) {
	s.begin()
	defer func() { s.end(err) }()

	items, err := s.gateway.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *CustomerStore) FetchByID(ctx context.Context, id uuid.UUID) (err error) {
	s.begin()
	defer func() { s.end(err) }()

	customer, err := s.gateway.Get(ctx, id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.selected = &customer
	s.mu.Unlock()
	return nil
}

// Create inserts a customer and appends the canonical row to the snapshot.
// The new row lands at the end regardless of the display sort; the next
// FetchAll restores ordering.
func (s *CustomerStore) Create(ctx context.Context, input CreateCustomerInput) (customer models.Customer, err error) {
	s.begin()
	defer func() { s.end(err) }()

	if input.Name == "" {
		err = apperr.New(apperr.Validation, "name is required")
		return models.Customer{}, err
	}
	if input.Email != "" && !utils.ValidateEmail(input.Email) {
		err = apperr.New(apperr.Validation, "invalid email format")
		return models.Customer{}, err
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		err = apperr.New(apperr.Validation, "invalid phone format")
		return models.Customer{}, err
	}

	customer, err = s.gateway.Insert(ctx, models.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	})
	if err != nil {
		return models.Customer{}, err
	}

	s.mu.Lock()
	s.items = append(s.items, customer)
	s.mu.Unlock()
	return customer, nil
}

// Update applies a partial update and replaces the matching snapshot entry
// with the canonical row. Selected is refreshed when it was the edited row.
func (s *CustomerStore) Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (customer models.Customer, err error) {
	s.begin()
	defer func() { s.end(err) }()

	fields := input.fields()
	if len(fields) == 0 {
		err = apperr.New(apperr.Validation, "no fields to update")
		return models.Customer{}, err
	}
	if input.Email != nil && *input.Email != "" && !utils.ValidateEmail(*input.Email) {
		err = apperr.New(apperr.Validation, "invalid email format")
		return models.Customer{}, err
	}
	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		err = apperr.New(apperr.Validation, "invalid phone format")
		return models.Customer{}, err
	}

	customer, err = s.gateway.Update(ctx, id, fields)
	if err != nil {
		return models.Customer{}, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = customer
			break
		}
	}
	if s.selected != nil && s.selected.ID == id {
		s.selected = &customer
	}
	s.mu.Unlock()
	return customer, nil
}

// Delete removes the row remotely, then locally by id match. A remote
// not-found resolves as a no-op: the row is already gone, which is what the
// caller asked for.
func (s *CustomerStore) Delete(ctx context.Context, id uuid.UUID) (err error) {
	s.begin()
	defer func() { s.end(err) }()

	if derr := s.gateway.Delete(ctx, id); derr != nil && !apperr.IsNotFound(derr) {
		err = derr
		return err
	}

	s.mu.Lock()
	items := s.items[:0]
	for _, c := range s.items {
		if c.ID != id {
			items = append(items, c)
		}
	}
	s.items = items
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
	s.mu.Unlock()
	return nil
}
