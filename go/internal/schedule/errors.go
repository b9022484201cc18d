package schedule

import "fmt"

// ValidationError reports malformed input detected before any write
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Msg)
}

// AuthorizationError reports a caller lacking the rights for an operation
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not authorized: %s", e.Msg)
}

// NotFoundError reports a referenced entity that does not exist or does not
// belong to the claimed organization
type NotFoundError struct {
	Kind string
	Msg  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Msg)
}

// ConflictError reports an operation that contradicts a structural invariant
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Msg)
}

// Sentinel errors callers can match with errors.Is. All of them are detected
// before any write happens.
var (
	ErrInvalidRange              = &ValidationError{Msg: "end date is before start date"}
	ErrNoTargetGroups            = &ValidationError{Msg: "at least one target group is required"}
	ErrArchivedGroup             = &ConflictError{Msg: "the archive group cannot be scheduled or targeted"}
	ErrCrossOrganizationTarget   = &ConflictError{Msg: "target group belongs to a different organization"}
	ErrHeadCoachRemovalForbidden = &ConflictError{Msg: "the head coach cannot be removed from their own group"}
)
