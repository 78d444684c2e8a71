package service

import (
	"context"
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/blog-service/internal/auth"
	"github.com/spec-kit/blog-service/internal/config"
	"github.com/spec-kit/blog-service/internal/domain"
	apperrors "github.com/spec-kit/blog-service/pkg/util"
)

const testSecret = "test-secret"

type fakeUserRepo struct {
	byUsername map[string]*domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = int64(len(r.byUsername) + 1)
	r.byUsername[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range r.byUsername {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.byUsername[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.byUsername[username]
	return ok, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.byUsername {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id int64, role domain.Role) error {
	for _, user := range r.byUsername {
		if user.ID == id {
			user.Role = role
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id int64, name, email string) error {
	for _, user := range r.byUsername {
		if user.ID == id {
			user.Name = name
			user.Email = email
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeUserRepo) List(context.Context) ([]*domain.User, error) { return nil, nil }
func (r *fakeUserRepo) Count(context.Context) (int64, error)         { return 0, nil }

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:            testSecret,
		AccessTokenTTLHours:  24,
		RefreshTokenTTLHours: 168,
		BcryptCost:           bcrypt.MinCost,
	}}
	repo := &fakeUserRepo{byUsername: map[string]*domain.User{}}
	return NewAuthService(cfg, repo), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &domain.User{
		ID:           int64(len(repo.byUsername) + 1),
		Username:     username,
		PasswordHash: hash,
		Name:         "Test " + username,
		Email:        username + "@example.com",
		Role:         domain.RoleUser,
	}
	repo.byUsername[username] = user
	return user
}

func assertDomainError(t *testing.T, err error, code, message string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T: %v", err, err)
	}
	if domainErr.Code != code {
		t.Fatalf("unexpected code: got %s, want %s", domainErr.Code, code)
	}
	if message != "" && domainErr.Message != message {
		t.Fatalf("unexpected message: got %q, want %q", domainErr.Message, message)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "john", "s3cret")

	result, err := svc.Login(context.Background(), "john", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Username != "john" {
		t.Fatalf("unexpected username: %s", result.Username)
	}

	subject, err := svc.TokenManager().ExtractSubject(result.AccessToken)
	if err != nil {
		t.Fatalf("ExtractSubject(access): %v", err)
	}
	if subject != "john" {
		t.Fatalf("access token subject: got %s, want john", subject)
	}

	subject, err = svc.TokenManager().ExtractSubject(result.RefreshToken)
	if err != nil {
		t.Fatalf("ExtractSubject(refresh): %v", err)
	}
	if subject != "john" {
		t.Fatalf("refresh token subject: got %s, want john", subject)
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	assertDomainError(t, err, "UNAUTHORIZED", "Invalid Credentials")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "john", "s3cret")

	_, err := svc.Login(context.Background(), "john", "wrong")
	assertDomainError(t, err, "UNAUTHORIZED", "Invalid Credentials!")
}

func TestRefreshMissingToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Refresh(context.Background(), "")
	assertDomainError(t, err, "BAD_REQUEST", "Refresh token is null")
}

func TestRefreshReturnsSameRefreshToken(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "john", "s3cret")

	login, err := svc.Login(context.Background(), "john", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.RefreshToken != login.RefreshToken {
		t.Fatal("refresh token was rotated; expected it returned unchanged")
	}
	if refreshed.Username != "john" {
		t.Fatalf("unexpected username: %s", refreshed.Username)
	}

	subject, err := svc.TokenManager().ExtractSubject(refreshed.AccessToken)
	if err != nil {
		t.Fatalf("ExtractSubject: %v", err)
	}
	if subject != "john" {
		t.Fatalf("new access token subject: got %s, want john", subject)
	}
}

func TestRefreshExpiredToken(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "john", "s3cret")

	expired := signRefreshToken(t, "john", time.Now().Add(-time.Minute))
	_, err := svc.Refresh(context.Background(), expired)
	assertDomainError(t, err, "UNAUTHORIZED", "Invalid refresh token")
}

func TestRefreshUnknownSubject(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token := signRefreshToken(t, "ghost", time.Now().Add(time.Hour))
	_, err := svc.Refresh(context.Background(), token)
	assertDomainError(t, err, "NOT_FOUND", "")
}

func TestRefreshMalformedToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assertDomainError(t, err, "UNAUTHORIZED", "Invalid refresh token")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "john", "s3cret")

	_, err := svc.Register(context.Background(), "John", "new@example.com", "john", "pw")
	assertDomainError(t, err, "CONFLICT", "Username is already taken")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "john", "s3cret")

	_, err := svc.Register(context.Background(), "Johnny", "john@example.com", "johnny", "pw")
	assertDomainError(t, err, "CONFLICT", "Email is already taken")
}

func TestRegisterAssignsUserRole(t *testing.T) {
	svc, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), "Jane", "jane@example.com", "jane", "pw")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("new account role: got %s, want %s", user.Role, domain.RoleUser)
	}
	if user.PasswordHash == "pw" || user.PasswordHash == "" {
		t.Fatal("password was not hashed")
	}
}

func signRefreshToken(t *testing.T, subject string, exp time.Time) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(exp.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}
