package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewUnauthorized("Invalid Credentials")
	mapped := ToDomainError(original)
	if mapped.Code != "UNAUTHORIZED" || mapped.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
	if mapped.Message != "Invalid Credentials" {
		t.Fatalf("unexpected message: %s", mapped.Message)
	}
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
}

func TestToDomainErrorGeneric(t *testing.T) {
	cause := errors.New("connection reset")
	mapped := ToDomainError(cause)
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
	if !errors.Is(mapped, cause) {
		t.Fatal("cause not preserved through Unwrap")
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if mapped := ToDomainError(nil); mapped != nil {
		t.Fatalf("expected nil, got %+v", mapped)
	}
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		err    error
		code   string
		status int
	}{
		{NewBadRequest("bad"), "BAD_REQUEST", http.StatusBadRequest},
		{NewUnauthorized("no"), "UNAUTHORIZED", http.StatusUnauthorized},
		{NewForbidden("no"), "FORBIDDEN", http.StatusForbidden},
		{NewNotFound("user", nil), "NOT_FOUND", http.StatusNotFound},
		{NewConflict("dup", nil), "CONFLICT", http.StatusConflict},
	}
	for _, tt := range tests {
		var domainErr *DomainError
		if !errors.As(tt.err, &domainErr) {
			t.Fatalf("expected DomainError, got %T", tt.err)
		}
		if domainErr.Code != tt.code || domainErr.HTTPStatus != tt.status {
			t.Fatalf("unexpected error shape: %+v", domainErr)
		}
	}
}
