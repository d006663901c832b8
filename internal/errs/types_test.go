package errs

import (
	"errors"
	"net/http"
	"testing"
)

func TestSentinelMatchingByCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel *HTTPError
	}{
		{"not found", NewNotFoundError("User not found", false, nil), ErrNotFound},
		{"invalid input", NewInvalidInputError("no fields provided"), ErrInvalidInput},
		{"conversion", NewConversionError("bad enum"), ErrConversionError},
		{"create failed", NewCreateFailedError("duplicate"), ErrCreateFailed},
		{"access denied", NewAccessDeniedError("not yours"), ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelsDoNotCrossMatch(t *testing.T) {
	if errors.Is(NewNotFoundError("x", false, nil), ErrInvalidInput) {
		t.Error("NOT_FOUND matched ErrInvalidInput")
	}
	if errors.Is(NewInvalidInputError("x"), ErrCreateFailed) {
		t.Error("INVALID_INPUT matched ErrCreateFailed")
	}
}

func TestConstructorsSetStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"unauthorized", NewUnauthorizedError("x", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("x", false), http.StatusForbidden, "FORBIDDEN"},
		{"access denied", NewAccessDeniedError("x"), http.StatusForbidden, CodeAccessDenied},
		{"bad request", NewBadRequestError("x", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"invalid input", NewInvalidInputError("x"), http.StatusBadRequest, CodeInvalidInput},
		{"conversion", NewConversionError("x"), http.StatusBadRequest, CodeConversionError},
		{"create failed", NewCreateFailedError("x"), http.StatusBadRequest, CodeCreateFailed},
		{"not found", NewNotFoundError("x", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"too many requests", NewTooManyRequestsError("x", false), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.status {
				t.Errorf("Status = %d, want %d", tt.err.Status, tt.status)
			}
			if tt.err.Code != tt.code {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.code)
			}
		})
	}
}

func TestNotFoundCodeOverride(t *testing.T) {
	code := "CLIENT_NOT_FOUND"
	err := NewNotFoundError("Client not found", false, &code)

	if err.Code != code {
		t.Errorf("Code = %q, want %q", err.Code, code)
	}
	// Still matches the generic sentinel? It must not: matching is by code.
	if errors.Is(err, ErrNotFound) {
		t.Error("custom-coded not found matched the generic NOT_FOUND sentinel")
	}
}

func TestWithMessage(t *testing.T) {
	original := NewInvalidInputError("original")
	copy := original.WithMessage("replacement")

	if copy.Message != "replacement" {
		t.Errorf("Message = %q, want %q", copy.Message, "replacement")
	}
	if copy.Code != original.Code || copy.Status != original.Status {
		t.Error("WithMessage changed more than the message")
	}
	if original.Message != "original" {
		t.Error("WithMessage mutated the original")
	}
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Bad Request", "BAD_REQUEST"},
		{"Not Found", "NOT_FOUND"},
		{"Internal Server Error", "INTERNAL_SERVER_ERROR"},
		{"OK", "OK"},
	}

	for _, tt := range tests {
		if got := MakeUpperCaseWithUnderscores(tt.in); got != tt.want {
			t.Errorf("MakeUpperCaseWithUnderscores(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
