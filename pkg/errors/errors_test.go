package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidInput, "bad input", http.StatusBadRequest)

	if err.Code != CodeInvalidInput {
		t.Errorf("expected code %s, got %s", CodeInvalidInput, err.Code)
	}
	if err.Message != "bad input" {
		t.Errorf("expected message 'bad input', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("ledger unavailable")
	wrapped := Wrap(originalErr, CodeInternal, "internal error", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if !errors.Is(wrapped, originalErr) {
		t.Errorf("errors.Is should see through AppError")
	}
}

func TestInternal_KeepsCause(t *testing.T) {
	cause := fmt.Errorf("reserve: %w", errors.New("catalog locked"))
	err := Internal("Failed to reserve slot", cause)

	if err.Code != CodeInternal || err.StatusCode() != http.StatusInternalServerError {
		t.Errorf("expected INTERNAL_ERROR/500, got %s/%d", err.Code, err.StatusCode())
	}
	if !errors.Is(err, cause) {
		t.Error("cause lost")
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			appErr:   NoSlotsAvailable(),
			expected: "NO_SLOTS_AVAILABLE: No slots available",
		},
		{
			name:     "with underlying error",
			appErr:   Internal("internal error", errors.New("boom")),
			expected: "INTERNAL_ERROR: internal error (caused by: boom)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
		wantMsg    string
	}{
		{"missing field", MissingField("Missing required fields"), CodeMissingField, http.StatusBadRequest, "Missing required fields"},
		{"invalid email", InvalidEmail("Invalid email address"), CodeInvalidEmail, http.StatusBadRequest, "Invalid email address"},
		{"invalid timezone", InvalidTimeZone(), CodeInvalidTimeZone, http.StatusBadRequest, "Invalid timezone"},
		{"class not found", ClassNotFound("abc"), CodeClassNotFound, http.StatusNotFound, "Class not found"},
		{"no slots", NoSlotsAvailable(), CodeNoSlotsAvailable, http.StatusBadRequest, "No slots available"},
		{"not found", NotFound("Booking"), CodeNotFound, http.StatusNotFound, "Booking not found"},
		{"invalid input", InvalidInput("Invalid request body"), CodeInvalidInput, http.StatusBadRequest, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.err.StatusCode())
			}
			if tt.err.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, tt.err.Message)
			}
		})
	}
}

func TestClassNotFound_Details(t *testing.T) {
	err := ClassNotFound("12345")
	if err.Details["class_id"] != "12345" {
		t.Errorf("expected class_id '12345', got %v", err.Details["class_id"])
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := MissingField("Missing required fields").WithDetails(map[string]any{
		"client_email": "client_email is a required field",
	})

	if err.Details["client_email"] != "client_email is a required field" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestAppError_Is(t *testing.T) {
	wrapped := fmt.Errorf("booking failed: %w", NoSlotsAvailable())

	if !errors.Is(wrapped, NoSlotsAvailable()) {
		t.Error("expected errors.Is to match on code")
	}
	if errors.Is(wrapped, ClassNotFound("x")) {
		t.Error("expected errors.Is to reject a different code")
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(NotFound("Booking")) {
		t.Errorf("IsAppError() should return true for AppError")
	}
	if !IsAppError(fmt.Errorf("wrapped: %w", NotFound("Booking"))) {
		t.Errorf("IsAppError() should return true for wrapped AppError")
	}
	if IsAppError(errors.New("regular error")) {
		t.Errorf("IsAppError() should return false for regular error")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := ClassNotFound("c-1")
	regularErr := errors.New("regular error")

	if AsAppError(appErr) != appErr {
		t.Errorf("AsAppError() should return same AppError")
	}

	result := AsAppError(regularErr)
	if result.Code != CodeInternal {
		t.Errorf("AsAppError() should wrap regular error as internal error")
	}
	if result.Err != regularErr {
		t.Errorf("AsAppError() should wrap the original error")
	}
}

func TestHasCode(t *testing.T) {
	if !HasCode(InvalidTimeZone(), CodeInvalidTimeZone) {
		t.Error("expected HasCode to match")
	}
	if HasCode(errors.New("plain"), CodeInvalidTimeZone) {
		t.Error("expected HasCode to reject plain errors")
	}
}
