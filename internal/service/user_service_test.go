package service

import (
	"context"
	"testing"

	"github.com/spec-kit/blog-service/internal/domain"
)

func newTestUserService(t *testing.T) (*UserService, *fakeUserRepo) {
	t.Helper()
	repo := &fakeUserRepo{byUsername: map[string]*domain.User{}}
	return NewUserService(repo), repo
}

func TestGetProfile(t *testing.T) {
	svc, repo := newTestUserService(t)
	seeded := seedUser(t, repo, "john", "s3cret")

	user, err := svc.Get(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if user.Username != "john" || user.Email != "john@example.com" {
		t.Fatalf("unexpected profile: %+v", user)
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Get(context.Background(), 99)
	assertDomainError(t, err, "NOT_FOUND", "")
}

func TestUpdateProfile(t *testing.T) {
	svc, repo := newTestUserService(t)
	seeded := seedUser(t, repo, "john", "s3cret")

	updated, err := svc.UpdateProfile(context.Background(), seeded, "Johnny Doe", "johnny@example.com")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Johnny Doe" || updated.Email != "johnny@example.com" {
		t.Fatalf("profile not updated: %+v", updated)
	}

	stored, err := repo.GetByUsername(context.Background(), "john")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if stored.Name != "Johnny Doe" || stored.Email != "johnny@example.com" {
		t.Fatalf("stored profile not updated: %+v", stored)
	}
	if stored.Username != "john" || stored.Role != domain.RoleUser {
		t.Fatal("profile update touched username or role")
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	svc, repo := newTestUserService(t)
	seeded := seedUser(t, repo, "john", "s3cret")

	tests := []struct {
		name    string
		reqName string
		email   string
		message string
	}{
		{"missing name", "", "john@example.com", "Name is required"},
		{"blank name", "   ", "john@example.com", "Name is required"},
		{"missing email", "John", "", "Email is required"},
		{"blank email", "John", "  ", "Email is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateProfile(context.Background(), seeded, tt.reqName, tt.email)
			assertDomainError(t, err, "BAD_REQUEST", tt.message)
		})
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc, _ := newTestUserService(t)

	ghost := &domain.User{ID: 99, Username: "ghost"}
	_, err := svc.UpdateProfile(context.Background(), ghost, "Ghost", "ghost@example.com")
	assertDomainError(t, err, "NOT_FOUND", "")
}
