// services/auth_service.go
package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"supportdesk-backend/apperr"
	"supportdesk-backend/models"
	"supportdesk-backend/utils"
)

// IdentityGateway is the credential table owned by the auth service.
// Production wiring injects remote.Identities.
type IdentityGateway interface {
	GetByEmail(ctx context.Context, email string) (models.Identity, error)
	Get(ctx context.Context, id uuid.UUID) (models.Identity, error)
	Insert(ctx context.Context, identity models.Identity) (models.Identity, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileGateway resolves the profile row joined onto a session.
type ProfileGateway interface {
	Get(ctx context.Context, id uuid.UUID) (models.User, error)
}

// Session is the current authenticated user as seen by the rest of the
// process. A nil *Session in a subscription callback means signed out.
type Session struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService owns credentials and sessions. It implements
// store.IdentityProvider, which is how the attendant saga reaches it.
type AuthService struct {
	identities IdentityGateway
	users      ProfileGateway

	mu      sync.Mutex
	subs    map[int]func(*Session)
	nextSub int
}

func NewAuthService(identities IdentityGateway, users ProfileGateway) *AuthService {
	return &AuthService{
		identities: identities,
		users:      users,
		subs:       make(map[int]func(*Session)),
	}
}

// Subscribe registers fn for session-change notifications. fn runs
// synchronously on sign-in and sign-out before the triggering call returns.
// The returned function unsubscribes.
func (s *AuthService) Subscribe(fn func(*Session)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *AuthService) notify(session *Session) {
	s.mu.Lock()
	fns := make([]func(*Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(session)
	}
}

// SignUp registers a credential record. Duplicate emails are a conflict; the
// caller (the attendant saga) is expected to branch on that kind for its
// "email already registered" prompt.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (models.Identity, error) {
	if _, err := s.identities.GetByEmail(ctx, email); err == nil {
		return models.Identity{}, apperr.New(apperr.Conflict, "email already registered")
	} else if !apperr.IsNotFound(err) {
		return models.Identity{}, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.Identity{}, apperr.Wrap(apperr.Transport, "failed to hash password", err)
	}
	return s.identities.Insert(ctx, models.Identity{Email: email, PasswordHash: hash})
}

// SignIn verifies credentials and issues a session token. Notifies
// subscribers before returning.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (Session, error) {
	identity, err := s.identities.GetByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return Session{}, apperr.New(apperr.Authorization, "invalid credentials")
		}
		return Session{}, err
	}
	if !utils.CheckPasswordHash(password, identity.PasswordHash) {
		return Session{}, apperr.New(apperr.Authorization, "invalid credentials")
	}

	user, err := s.users.Get(ctx, identity.ID)
	if err != nil {
		return Session{}, err
	}

	token, expiresAt, err := utils.GenerateToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return Session{}, apperr.Wrap(apperr.Transport, "failed to generate token", err)
	}

	session := Session{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	s.notify(&session)
	return session, nil
}

// SignOut notifies subscribers that the session ended. Tokens are stateless,
// so there is nothing to revoke remotely.
func (s *AuthService) SignOut() {
	s.notify(nil)
}

// CurrentSession rebuilds the session from a bearer token.
func (s *AuthService) CurrentSession(token string) (Session, error) {
	claims, err := utils.ParseToken(token)
	if err != nil {
		return Session{}, apperr.Wrap(apperr.Authorization, "invalid or expired session", err)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Session{}, apperr.Wrap(apperr.Authorization, "invalid session subject", err)
	}
	return Session{
		UserID:    userID,
		Email:     claims.Email,
		Role:      claims.Role,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// UpdatePassword changes the caller's credential after verifying the current
// one.
func (s *AuthService) UpdatePassword(ctx context.Context, userID uuid.UUID, current, updated string) error {
	identity, err := s.identities.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(current, identity.PasswordHash) {
		return apperr.New(apperr.Authorization, "current password is incorrect")
	}
	hash, err := utils.HashPassword(updated)
	if err != nil {
		return apperr.Wrap(apperr.Transport, "failed to hash password", err)
	}
	return s.identities.UpdatePassword(ctx, userID, hash)
}

// DeleteUser removes a credential record. Privilege is enforced at the route
// layer (admin-only); the service itself trusts its caller.
func (s *AuthService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.identities.Delete(ctx, id)
}
