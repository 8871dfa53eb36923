package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeMissingFields       = 4001
	CodeInvalidStatus       = 4002
	CodePendingTransaction  = 4003
	CodeNotLatest           = 4004
	CodeInvalidCredentials  = 4010
	CodeUnauthorized        = 4030
	CodeTransactionNotFound = 4040
	CodeOrderNotFound       = 4041
	CodeUserNotFound        = 4042

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeDuplicateEvent = 5001
)

// Base error types
var (
	// ErrMissingFields is returned when a required field is absent or empty
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidStatus is returned when a modify call carries a status other than VERIFIED
	ErrInvalidStatus = errors.New("missing required fields or invalid status")

	// ErrUnauthorized is returned when the caller role is not permitted for the operation
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPendingTransaction is returned when the beneficiary already has an
	// initiated-but-unverified active event
	ErrPendingTransaction = errors.New("already a pending transaction")

	// ErrNotLatestTransaction is returned when deactivation targets anything
	// but the beneficiary's newest event
	ErrNotLatestTransaction = errors.New("this transaction can't be modified")

	// ErrTransactionNotFound is returned when the referenced transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrOrderNotFound is returned when the referenced order doesn't exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrUserNotFound is returned when the referenced user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEvent is returned when an event with the same id already exists
	ErrDuplicateEvent = errors.New("event with this id already exists")

	// ErrDatabaseConnection is returned when the store fails during an operation
	ErrDatabaseConnection = errors.New("database error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields):
		return CodeMissingFields
	case errors.Is(err, ErrInvalidStatus):
		return CodeInvalidStatus
	case errors.Is(err, ErrPendingTransaction):
		return CodePendingTransaction
	case errors.Is(err, ErrNotLatestTransaction):
		return CodeNotLatest
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrOrderNotFound):
		return CodeOrderNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrDuplicateEvent):
		return CodeDuplicateEvent
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps domain errors onto the per-operation HTTP status contract.
// Guard and latest-event conflicts surface as 400 to keep the original API
// contract intact.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrPendingTransaction),
		errors.Is(err, ErrNotLatestTransaction):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	case IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsValidationError checks if the error is a pre-store validation rejection
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) || errors.Is(err, ErrInvalidStatus)
}

// IsConflictError checks if the error is a guard or latest-event conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrPendingTransaction) || errors.Is(err, ErrNotLatestTransaction)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsStoreError checks if the error is a persistence failure
func IsStoreError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection) || errors.Is(err, ErrDuplicateEvent)
}

// PendingEventError carries the beneficiary whose chain blocked initiation
type PendingEventError struct {
	Beneficiary string
	PendingID   string
}

// Error implements the error interface
func (e *PendingEventError) Error() string {
	return fmt.Sprintf("already a pending transaction for %s (event %s)", e.Beneficiary, e.PendingID)
}

// Is checks if the target error is an ErrPendingTransaction
func (e *PendingEventError) Is(target error) bool {
	return target == ErrPendingTransaction
}

// LogFields returns a map of fields for structured logging
func (e *PendingEventError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "pending_event",
		"beneficiary": e.Beneficiary,
		"pending_id":  e.PendingID,
		"error_code":  CodePendingTransaction,
	}
}

// NewPendingEventError creates a detailed guard violation error
func NewPendingEventError(beneficiary, pendingID string) error {
	return &PendingEventError{Beneficiary: beneficiary, PendingID: pendingID}
}
