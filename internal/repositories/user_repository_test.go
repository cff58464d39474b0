package repositories

import (
	"testing"

	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/testhelpers"
)

func TestCreateAndFetchUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &UserRepository{DB: db}

	user := &models.User{
		Username:       "alice",
		Email:          "alice@example.com",
		PasswordHash:   "hash",
		TargetJobTitle: "software engineer",
	}
	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	byID, err := repo.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("GetUserByID returned error: %v", err)
	}
	if byID.Username != "alice" {
		t.Fatalf("unexpected user %+v", byID)
	}

	byUsername, err := repo.GetUserByUsername("alice")
	if err != nil || byUsername.ID != user.ID {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}

	byEmail, err := repo.GetUserByEmail("alice@example.com")
	if err != nil || byEmail.ID != user.ID {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &UserRepository{DB: db}

	if _, err := repo.GetUserByUsername("ghost"); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.GetUserByID(999); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
