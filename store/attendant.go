package store

import (
	"context"
	"log"

	"github.com/google/uuid"

	"supportdesk-backend/apperr"
	"supportdesk-backend/models"
	"supportdesk-backend/utils"
)

// UserGateway is the slice of the remote data source holding attendant
// profile rows. Production wiring injects remote.Users.
type UserGateway interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uuid.UUID) (models.User, error)
	Insert(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// IdentityProvider is the identity half of attendant management. Creating an
// attendant spans both systems; see Create for the compensation rules.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (models.Identity, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// CompensationOutcome records what happened to the identity record after a
// failed profile insert.
type CompensationOutcome int

const (
	// CompensationNone: the last create either succeeded or never reached
	// the profile step.
	CompensationNone CompensationOutcome = iota
	// CompensationSucceeded: profile insert failed and the identity was
	// cleaned up.
	CompensationSucceeded
	// CompensationFailed: profile insert failed AND the cleanup failed,
	// leaving an orphaned identity on the remote. Unrecoverable without
	// operator intervention.
	CompensationFailed
)

// CreateAttendantInput defines the expected JSON structure for registering an
// attendant. The password is forwarded to the identity provider and never
// retained.
type CreateAttendantInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,oneof=admin attendant"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateAttendantInput defines the expected JSON structure for updating an
// attendant. Email is immutable after creation and deliberately absent.
type UpdateAttendantInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Role  *string `json:"role" binding:"omitempty,oneof=admin attendant"`
}

func (in UpdateAttendantInput) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Role != nil {
		fields["role"] = *in.Role
	}
	return fields
}

type AttendantStore struct {
	status
	gateway  UserGateway
	identity IdentityProvider

	items        []models.User
	selected     *models.User
	compensation CompensationOutcome
}

func NewAttendantStore(gateway UserGateway, identity IdentityProvider) *AttendantStore {
	return &AttendantStore{gateway: gateway, identity: identity}
}

func (s *AttendantStore) Items() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.items))
	copy(out, s.items)
	return out
}

func (s *AttendantStore) Selected() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	u := *s.selected
	return &u
}

// LastCompensation reports the outcome of the compensating action of the most
// recent Create, CompensationNone when no compensation ran.
func (s *AttendantStore) LastCompensation() CompensationOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compensation
}

func (s *AttendantStore) FetchAll(ctx context.Context) (err error) {
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

func (s *AttendantStore) FetchByID(ctx context.Context, id uuid.UUID) (err error) {
	s.begin()
	defer func() { s.end(err) }()

	user, err := s.gateway.Get(ctx, id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.selected = &user
	s.mu.Unlock()
	return nil
}

// Create registers an attendant: identity sign-up first, then the profile
// row sharing the identity's ID. If the profile insert fails the identity is
// deleted so no orphaned login remains; the outcome of that cleanup is
// recorded and a failed cleanup is logged loudly, since it leaves the two
// systems permanently inconsistent.
func (s *AttendantStore) Create(ctx context.Context, input CreateAttendantInput) (user models.User, err error) {
	s.begin()
	defer func() { s.end(err) }()

	s.mu.Lock()
	s.compensation = CompensationNone
	s.mu.Unlock()

	if !utils.ValidateEmail(input.Email) {
		err = apperr.New(apperr.Validation, "invalid email format")
		return models.User{}, err
	}
	if !models.ValidRole(input.Role) {
		err = apperr.New(apperr.Validation, "invalid role")
		return models.User{}, err
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		err = apperr.New(apperr.Validation, "invalid phone format")
		return models.User{}, err
	}

	identity, err := s.identity.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return models.User{}, err
	}

	user, perr := s.gateway.Insert(ctx, models.User{
		ID:    identity.ID,
		Email: input.Email,
		Name:  input.Name,
		Phone: input.Phone,
		Role:  input.Role,
	})
	if perr != nil {
		outcome := CompensationSucceeded
		if cerr := s.identity.DeleteUser(ctx, identity.ID); cerr != nil {
			outcome = CompensationFailed
			log.Printf("ORPHANED IDENTITY %s (%s): profile insert failed (%v) and identity cleanup failed (%v); manual removal required",
				identity.ID, input.Email, perr, cerr)
		}
		s.mu.Lock()
		s.compensation = outcome
		s.mu.Unlock()
		err = perr
		return models.User{}, err
	}

	s.mu.Lock()
	s.items = append(s.items, user)
	s.mu.Unlock()
	return user, nil
}

func (s *AttendantStore) Update(ctx context.Context, id uuid.UUID, input UpdateAttendantInput) (user models.User, err error) {
	s.begin()
	defer func() { s.end(err) }()

	fields := input.fields()
	if len(fields) == 0 {
		err = apperr.New(apperr.Validation, "no fields to update")
		return models.User{}, err
	}
	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		err = apperr.New(apperr.Validation, "invalid phone format")
		return models.User{}, err
	}

	user, err = s.gateway.Update(ctx, id, fields)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = user
			break
		}
	}
	if s.selected != nil && s.selected.ID == id {
		s.selected = &user
	}
	s.mu.Unlock()
	return user, nil
}

// Delete removes the profile row, then the identity. The identity step runs
// after the profile is gone; a failure there is surfaced rather than
// swallowed, because it strands a live login with no profile.
func (s *AttendantStore) Delete(ctx context.Context, id uuid.UUID) (err error) {
	s.begin()
	defer func() { s.end(err) }()

	if derr := s.gateway.Delete(ctx, id); derr != nil && !apperr.IsNotFound(derr) {
		err = derr
		return err
	}

	s.mu.Lock()
	items := s.items[:0]
	for _, u := range s.items {
		if u.ID != id {
			items = append(items, u)
		}
	}
	s.items = items
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
	s.mu.Unlock()

	if ierr := s.identity.DeleteUser(ctx, id); ierr != nil && !apperr.IsNotFound(ierr) {
		log.Printf("STRANDED IDENTITY %s: profile removed but identity delete failed: %v", id, ierr)
		err = ierr
		return err
	}
	return nil
}
