package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the order lifecycle and settlement domain.
var (
	ErrInvalidTransition        = errors.New("invalid transition")
	ErrInvalidSettlementContext = errors.New("invalid settlement context")
	ErrConcurrentModification   = errors.New("concurrent modification")
	ErrDependencyUnavailable    = errors.New("dependency unavailable")
)

// InvalidTransitionError indicates a lifecycle move that is not reachable
// from the order's current status.
type InvalidTransitionError struct {
	From string
	To   string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrInvalidTransition, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidSettlementContextError indicates a settlement toggle requested
// outside its money-track precondition.
type InvalidSettlementContextError struct {
	Track string
	Cause error
}

// NewInvalidSettlementContextError creates an InvalidSettlementContextError for the given track.
func NewInvalidSettlementContextError(track string) *InvalidSettlementContextError {
	return &InvalidSettlementContextError{Track: track}
}

// NewInvalidSettlementContextErrorWithCause creates an InvalidSettlementContextError wrapping an underlying cause.
func NewInvalidSettlementContextErrorWithCause(track string, cause error) *InvalidSettlementContextError {
	return &InvalidSettlementContextError{Track: track, Cause: cause}
}

func (e *InvalidSettlementContextError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidSettlementContext, e.Track, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidSettlementContext, e.Track)
}

func (e *InvalidSettlementContextError) Unwrap() error {
	return ErrInvalidSettlementContext
}

// ConcurrentModificationError indicates that the persisted record changed
// between read and conditional write. The operation is retryable: reload the
// aggregate and reapply the intent.
type ConcurrentModificationError struct {
	ParamName string
	ID        any
}

// NewConcurrentModificationError creates a ConcurrentModificationError for the given record.
func NewConcurrentModificationError(paramName string, id any) *ConcurrentModificationError {
	return &ConcurrentModificationError{ParamName: paramName, ID: id}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrConcurrentModification, e.ParamName, sanitize(e.ID))
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

// DependencyUnavailableError indicates an external collaborator failure.
// Callers recover locally where the contract allows a fallback.
type DependencyUnavailableError struct {
	Name  string
	Cause error
}

// NewDependencyUnavailableError creates a DependencyUnavailableError wrapping an underlying cause.
func NewDependencyUnavailableError(name string, cause error) *DependencyUnavailableError {
	return &DependencyUnavailableError{Name: name, Cause: cause}
}

func (e *DependencyUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDependencyUnavailable, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDependencyUnavailable, e.Name)
}

func (e *DependencyUnavailableError) Unwrap() error {
	return ErrDependencyUnavailable
}
