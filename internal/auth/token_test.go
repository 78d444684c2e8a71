package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/blog-service/internal/domain"
)

const testSecret = "test-secret"

func testUser() *domain.User {
	return &domain.User{
		ID:       1,
		Username: "john",
		Name:     "John Doe",
		Email:    "john@example.com",
		Role:     domain.RoleUser,
	}
}

func newTestManager() *TokenManager {
	return NewTokenManager(testSecret, 24*time.Hour, 7*24*time.Hour)
}

// signToken builds a token outside the manager so tests can control expiry
// and the signing secret.
func signToken(t *testing.T, secret, subject string, exp time.Time) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(exp.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := newTestManager()
	user := testUser()

	token, err := tm.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "john" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Name != "John Doe" || claims.Email != "john@example.com" {
		t.Fatalf("profile claims not preserved: %q %q", claims.Name, claims.Email)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", claims.Role)
	}

	subject, err := tm.ExtractSubject(token)
	if err != nil {
		t.Fatalf("ExtractSubject: %v", err)
	}
	if subject != "john" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestFreshTokenIsNotExpired(t *testing.T) {
	tm := newTestManager()
	user := testUser()

	for _, issue := range []func(*domain.User) (string, error){tm.GenerateAccessToken, tm.GenerateRefreshToken} {
		token, err := issue(user)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		expired, err := tm.IsExpired(token)
		if err != nil {
			t.Fatalf("IsExpired: %v", err)
		}
		if expired {
			t.Fatal("fresh token reported expired")
		}
		if !tm.IsValid(token, user) {
			t.Fatal("fresh token reported invalid")
		}
	}
}

func TestExpiredToken(t *testing.T) {
	tm := newTestManager()
	user := testUser()
	token := signToken(t, testSecret, "john", time.Now().Add(-time.Minute))

	expired, err := tm.IsExpired(token)
	if err != nil {
		t.Fatalf("IsExpired: %v", err)
	}
	if !expired {
		t.Fatal("expected token to be expired")
	}

	if tm.IsValid(token, user) {
		t.Fatal("expired token reported valid")
	}

	// Expiry does not block subject extraction; refresh needs the identity
	// before judging validity.
	subject, err := tm.ExtractSubject(token)
	if err != nil {
		t.Fatalf("ExtractSubject on expired token: %v", err)
	}
	if subject != "john" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestSubjectMismatchIsNotValid(t *testing.T) {
	tm := newTestManager()
	token := signToken(t, testSecret, "someone-else", time.Now().Add(time.Hour))

	if tm.IsValid(token, testUser()) {
		t.Fatal("token for another subject reported valid")
	}
}

func TestMisSignedToken(t *testing.T) {
	tm := newTestManager()
	user := testUser()
	token := signToken(t, "other-secret", "john", time.Now().Add(time.Hour))

	if _, err := tm.ExtractSubject(token); err == nil {
		t.Fatal("expected ExtractSubject to fail on mis-signed token")
	}
	if tm.IsValid(token, user) {
		t.Fatal("mis-signed token reported valid")
	}
	if _, err := tm.IsExpired(token); err == nil {
		t.Fatal("expected IsExpired to propagate signature failure")
	}
	if _, err := tm.ParseToken(token); err == nil {
		t.Fatal("expected ParseToken to fail on mis-signed token")
	}
}

func TestMalformedToken(t *testing.T) {
	tm := newTestManager()

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := tm.ExtractSubject(token); err == nil {
			t.Fatalf("expected ExtractSubject to fail on %q", token)
		}
		if tm.IsValid(token, testUser()) {
			t.Fatalf("malformed token %q reported valid", token)
		}
		if _, err := tm.IsExpired(token); err == nil {
			t.Fatalf("expected IsExpired to error on %q", token)
		}
	}
}
