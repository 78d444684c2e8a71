package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/blog-service/internal/domain"
)

// ErrInvalidToken indicates a token that failed parsing or signature
// verification. Expiry is reported separately so refresh flows can tell
// "stale" apart from "forged".
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and validates the two JWT kinds: short-lived access
// tokens carrying profile claims and long-lived refresh tokens carrying
// only the subject.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager builds a new manager around the shared signing secret.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// AccessClaims describes the access token payload.
type AccessClaims struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an access token for the user with the full
// claim set: subject, display name, email and role.
func (tm *TokenManager) GenerateAccessToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := &AccessClaims{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// GenerateRefreshToken signs a refresh token carrying only the subject.
func (tm *TokenManager) GenerateRefreshToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tm.refreshTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// ParseToken verifies the signature and all registered claims, returning
// the access claims. Used on every authenticated request.
func (tm *TokenManager) ParseToken(tokenStr string) (*AccessClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &AccessClaims{}, tm.keyFunc)
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractSubject verifies the signature and returns the subject claim
// without enforcing expiry. An expired but well-signed token still yields
// its subject; the caller must check validity separately before trusting it.
func (tm *TokenManager) ExtractSubject(tokenStr string) (string, error) {
	claims, err := tm.parseUnvalidated(tokenStr)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// IsValid reports whether the token's subject matches the user's username
// and the token has not expired. Any parse or signature failure counts as
// not valid; IsValid never returns an error.
func (tm *TokenManager) IsValid(tokenStr string, user *domain.User) bool {
	claims, err := tm.parseUnvalidated(tokenStr)
	if err != nil {
		return false
	}
	if user == nil || claims.Subject != user.Username {
		return false
	}
	return !expired(claims)
}

// IsExpired reports whether the token's expiration is in the past.
// Parse failures other than expiry are returned as errors, not swallowed.
func (tm *TokenManager) IsExpired(tokenStr string) (bool, error) {
	claims, err := tm.parseUnvalidated(tokenStr)
	if err != nil {
		return false, err
	}
	return expired(claims), nil
}

// parseUnvalidated checks the signature but skips registered claim
// validation, so expired tokens still parse.
func (tm *TokenManager) parseUnvalidated(tokenStr string) (*jwt.RegisteredClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, tm.keyFunc, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (tm *TokenManager) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method != jwt.SigningMethodHS256 {
		return nil, errors.New("unexpected signing method")
	}
	return tm.secret, nil
}

func expired(claims *jwt.RegisteredClaims) bool {
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Before(time.Now())
}
