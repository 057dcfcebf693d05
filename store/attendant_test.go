package store_test

import (
	"context"
	"testing"

	"supportdesk-backend/apperr"
	"supportdesk-backend/store"
)

func TestAttendantCreateSharesIdentityID(t *testing.T) {
	users := newFakeUsers()
	identity := newFakeIdentity()
	s := store.NewAttendantStore(users, identity)

	user, err := s.Create(context.Background(), store.CreateAttendantInput{
		Name:     "Bob",
		Email:    "bob@x.com",
		Role:     "attendant",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	identity.mu.Lock()
	_, ok := identity.rows[user.ID]
	identity.mu.Unlock()
	if !ok {
		t.Error("profile ID must match the identity record's ID")
	}
	if s.LastCompensation() != store.CompensationNone {
		t.Errorf("compensation outcome = %v, want none", s.LastCompensation())
	}
	if len(s.Items()) != 1 {
		t.Error("created attendant missing from snapshot")
	}
}

func TestAttendantCreateRejectsBadPhone(t *testing.T) {
	users := newFakeUsers()
	identity := newFakeIdentity()
	s := store.NewAttendantStore(users, identity)

	_, err := s.Create(context.Background(), store.CreateAttendantInput{
		Name: "Bob", Email: "bob@x.com", Phone: "not-a-phone", Role: "attendant", Password: "secret1",
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(identity.rows) != 0 {
		t.Error("invalid phone must not reach the identity provider")
	}
}

func TestAttendantCreateDuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	identity := newFakeIdentity()
	s := store.NewAttendantStore(users, identity)

	input := store.CreateAttendantInput{
		Name: "Bob", Email: "bob@x.com", Role: "attendant", Password: "secret1",
	}
	if _, err := s.Create(context.Background(), input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := s.Create(context.Background(), input)
	if !apperr.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(users.rows) != 1 {
		t.Error("duplicate registration must not add a profile row")
	}
	if s.Loading() {
		t.Error("loading stuck after conflict")
	}
}

func TestAttendantCreateCompensatesFailedProfileInsert(t *testing.T) {
	users := newFakeUsers()
	users.insertErr = apperr.New(apperr.Transport, "database error")
	identity := newFakeIdentity()
	s := store.NewAttendantStore(users, identity)

	_, err := s.Create(context.Background(), store.CreateAttendantInput{
		Name: "Bob", Email: "bob@x.com", Role: "attendant", Password: "secret1",
	})
	if err == nil {
		t.Fatal("expected create to fail")
	}
	if s.LastCompensation() != store.CompensationSucceeded {
		t.Errorf("compensation outcome = %v, want succeeded", s.LastCompensation())
	}
	if len(identity.deleted) != 1 {
		t.Error("identity record must be cleaned up after profile insert failure")
	}
	if len(s.Items()) != 0 {
		t.Error("failed create must not touch the snapshot")
	}
}

func TestAttendantCreateRecordsFailedCompensation(t *testing.T) {
	users := newFakeUsers()
	users.insertErr = apperr.New(apperr.Transport, "database error")
	identity := newFakeIdentity()
	identity.deleteErr = apperr.New(apperr.Transport, "identity service unreachable")
	s := store.NewAttendantStore(users, identity)

	_, err := s.Create(context.Background(), store.CreateAttendantInput{
		Name: "Bob", Email: "bob@x.com", Role: "attendant", Password: "secret1",
	})
	if err == nil {
		t.Fatal("expected create to fail")
	}
	if s.LastCompensation() != store.CompensationFailed {
		t.Errorf("compensation outcome = %v, want failed", s.LastCompensation())
	}
}

func TestAttendantDeleteRemovesBothRecords(t *testing.T) {
	users := newFakeUsers()
	identity := newFakeIdentity()
	s := store.NewAttendantStore(users, identity)

	user, err := s.Create(context.Background(), store.CreateAttendantInput{
		Name: "Bob", Email: "bob@x.com", Role: "attendant", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(users.rows) != 0 {
		t.Error("profile row not removed")
	}
	identity.mu.Lock()
	remaining := len(identity.rows)
	identity.mu.Unlock()
	if remaining != 0 {
		t.Error("identity record not removed")
	}
	if len(s.Items()) != 0 {
		t.Error("snapshot still holds the deleted attendant")
	}
}

func TestAttendantDeleteSurfacesIdentityFailure(t *testing.T) {
	users := newFakeUsers()
	identity := newFakeIdentity()
	s := store.NewAttendantStore(users, identity)

	user, err := s.Create(context.Background(), store.CreateAttendantInput{
		Name: "Bob", Email: "bob@x.com", Role: "attendant", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	identity.deleteErr = apperr.New(apperr.Transport, "identity service unreachable")
	if err := s.Delete(context.Background(), user.ID); err == nil {
		t.Fatal("identity delete failure must be surfaced")
	}
	if s.Loading() {
		t.Error("loading stuck after failed delete")
	}
}

func TestAttendantUpdateCannotTouchEmail(t *testing.T) {
	users := newFakeUsers()
	identity := newFakeIdentity()
	s := store.NewAttendantStore(users, identity)

	user, err := s.Create(context.Background(), store.CreateAttendantInput{
		Name: "Bob", Email: "bob@x.com", Role: "attendant", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	role := "admin"
	updated, err := s.Update(context.Background(), user.ID, store.UpdateAttendantInput{Role: &role})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != "admin" {
		t.Errorf("role = %q, want admin", updated.Role)
	}
	if updated.Email != "bob@x.com" {
		t.Error("email changed through update")
	}
}
