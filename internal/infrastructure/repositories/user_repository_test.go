package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

func TestUserRepositoryImpl_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &domain.User{
		FirstName: "Alice",
		LastName:  "Ames",
		Email:     "alice@example.com",
		Status:    domain.StatusActive,
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned id")
	}

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byEmail.ID != user.ID || byEmail.FirstName != "Alice" || byEmail.LastName != "Ames" {
		t.Errorf("unexpected user: %+v", byEmail)
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byID.Email != "alice@example.com" {
		t.Errorf("expected alice@example.com, got %s", byID.Email)
	}
}

func TestUserRepositoryImpl_FindByEmail_IsExactMatch(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	mustCreateUser(t, repo, "alice@example.com")

	if _, err := repo.FindByEmail(ctx, "missing@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_Create_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	mustCreateUser(t, repo, "alice@example.com")

	dup := &domain.User{
		FirstName: "Other",
		LastName:  "Alice",
		Email:     "alice@example.com",
		Status:    domain.StatusActive,
	}
	if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepositoryImpl_UpdateName(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	user := mustCreateUser(t, repo, "alice@example.com")

	if err := repo.UpdateName(ctx, user.ID, "Alicia", "Arden"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.FirstName != "Alicia" || updated.LastName != "Arden" {
		t.Errorf("expected updated name, got %s %s", updated.FirstName, updated.LastName)
	}
	if updated.Email != "alice@example.com" {
		t.Errorf("email must not change, got %s", updated.Email)
	}
	if updated.Status != domain.StatusActive {
		t.Errorf("status must not change, got %s", updated.Status)
	}
}

func TestUserRepositoryImpl_List(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	mustCreateUser(t, repo, "first@example.com")
	mustCreateUser(t, repo, "second@example.com")
	mustCreateUser(t, repo, "third@example.com")

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	// newest first
	if users[0].Email != "third@example.com" || users[2].Email != "first@example.com" {
		t.Errorf("unexpected order: %s, %s, %s", users[0].Email, users[1].Email, users[2].Email)
	}
}
