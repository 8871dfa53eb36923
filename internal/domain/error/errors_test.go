package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"MissingFields", ErrMissingFields, 4001},
		{"InvalidStatus", ErrInvalidStatus, 4002},
		{"PendingTransaction", ErrPendingTransaction, 4003},
		{"NotLatest", ErrNotLatestTransaction, 4004},
		{"InvalidCredentials", ErrInvalidCredentials, 4010},
		{"Unauthorized", ErrUnauthorized, 4030},
		{"TransactionNotFound", ErrTransactionNotFound, 4040},
		{"OrderNotFound", ErrOrderNotFound, 4041},
		{"UserNotFound", ErrUserNotFound, 4042},
		{"DuplicateEvent", ErrDuplicateEvent, 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrUnauthorized), 4030},
		{"PendingEventError", NewPendingEventError("farmer1", "t1"), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"MissingFields", ErrMissingFields, http.StatusBadRequest},
		{"InvalidStatus", ErrInvalidStatus, http.StatusBadRequest},
		{"PendingTransaction", ErrPendingTransaction, http.StatusBadRequest},
		{"NotLatest", ErrNotLatestTransaction, http.StatusBadRequest},
		{"InvalidCredentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"Unauthorized", ErrUnauthorized, http.StatusForbidden},
		{"TransactionNotFound", ErrTransactionNotFound, http.StatusNotFound},
		{"OrderNotFound", ErrOrderNotFound, http.StatusNotFound},
		{"UserNotFound", ErrUserNotFound, http.StatusNotFound},
		{"DuplicateEvent", ErrDuplicateEvent, http.StatusInternalServerError},
		{"DatabaseConnection", ErrDatabaseConnection, http.StatusInternalServerError},
		{"UnknownError", errors.New("unknown"), http.StatusInternalServerError},
		{"GuardViolation", NewPendingEventError("farmer1", "t1"), http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status := HTTPStatus(tc.err)
			if status != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, status, tc.expected)
			}
		})
	}
}

func TestErrorClassification(t *testing.T) {
	if !IsValidationError(ErrMissingFields) || !IsValidationError(ErrInvalidStatus) {
		t.Error("validation sentinels not classified as validation errors")
	}
	if IsValidationError(ErrPendingTransaction) {
		t.Error("conflict sentinel classified as validation error")
	}

	if !IsConflictError(ErrPendingTransaction) || !IsConflictError(ErrNotLatestTransaction) {
		t.Error("conflict sentinels not classified as conflict errors")
	}

	if !IsNotFoundError(ErrTransactionNotFound) || !IsNotFoundError(ErrOrderNotFound) || !IsNotFoundError(ErrUserNotFound) {
		t.Error("not-found sentinels not classified as not-found errors")
	}

	if !IsStoreError(ErrDatabaseConnection) || !IsStoreError(ErrDuplicateEvent) {
		t.Error("store sentinels not classified as store errors")
	}
	if IsStoreError(ErrUnauthorized) {
		t.Error("authorization sentinel classified as store error")
	}
}

func TestPendingEventError(t *testing.T) {
	err := NewPendingEventError("farmer1", "t42")

	if !errors.Is(err, ErrPendingTransaction) {
		t.Error("errors.Is(pendingEventError, ErrPendingTransaction) = false, want true")
	}

	expected := "already a pending transaction for farmer1 (event t42)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}

	var pending *PendingEventError
	if !errors.As(err, &pending) {
		t.Fatal("errors.As failed to extract PendingEventError")
	}
	fields := pending.LogFields()
	if fields["beneficiary"] != "farmer1" || fields["pending_id"] != "t42" {
		t.Errorf("LogFields() = %v, missing beneficiary or pending_id", fields)
	}
}
