package grantkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for GrantKit operations.
var (
	// ErrLoadArtifact is returned when an input document cannot be read
	// or decoded. Load failures are fatal: flattening never runs with a
	// missing input.
	ErrLoadArtifact = errors.New("grantkit: load artifact")

	// ErrWriteArtifact is returned when the flattened document cannot be
	// written to the store.
	ErrWriteArtifact = errors.New("grantkit: write artifact")

	// ErrMissingRole is returned when an operation names a role that is
	// neither declared nor referenced by any grant.
	ErrMissingRole = errors.New("grantkit: missing role")

	// ErrInvalidGrant is returned when a grant record lacks a role name
	// or privilege.
	ErrInvalidGrant = errors.New("grantkit: invalid grant")

	// ErrCycleDetected reports a cycle in the role hierarchy. Cycles
	// never abort a run; this sentinel only surfaces through diagnostics.
	ErrCycleDetected = errors.New("grantkit: cycle in role hierarchy")

	// ErrDatabaseError is returned when persisting or querying flattened
	// grants fails.
	ErrDatabaseError = errors.New("grantkit: database error")
)

// Error wraps a sentinel error with additional context.
type Error struct {
	Err       error  // Underlying sentinel error
	Message   string // Additional context
	Role      string // Role involved (if applicable)
	Privilege string // Privilege involved (if applicable)
	Object    string // Object name involved (if applicable)
	Artifact  string // Artifact file or table involved (if applicable)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a target error.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new Error with context.
func NewError(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
	}
}

// WithRole adds role information to the error.
func (e *Error) WithRole(role string) *Error {
	e.Role = role
	return e
}

// WithPrivilege adds privilege and object information to the error.
func (e *Error) WithPrivilege(privilege, object string) *Error {
	e.Privilege = privilege
	e.Object = object
	return e
}

// WithArtifact adds the artifact name to the error.
func (e *Error) WithArtifact(artifact string) *Error {
	e.Artifact = artifact
	return e
}

// IsLoadFailure checks if an error came from loading an input artifact.
func IsLoadFailure(err error) bool {
	return errors.Is(err, ErrLoadArtifact)
}

// IsWriteFailure checks if an error came from writing the output artifact.
func IsWriteFailure(err error) bool {
	return errors.Is(err, ErrWriteArtifact)
}

// IsMissingRole checks if an error is due to an unknown role.
func IsMissingRole(err error) bool {
	return errors.Is(err, ErrMissingRole)
}
