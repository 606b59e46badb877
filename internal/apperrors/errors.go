package apperrors

import "errors"

// ErrNotFound indicates that a referenced resource could not be found.
// It is deliberately distinct from ErrValidation so callers can tell
// "your data is malformed" apart from "you referenced something that
// does not exist yet".
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// It always fires before any side effect.
var ErrValidation = errors.New("validation error")

// ErrDomain indicates a business invariant violation, e.g. a ledger
// that does not balance after base conversion. The whole operation is
// rejected atomically when it fires.
var ErrDomain = errors.New("domain invariant violation")

// ErrDuplicate indicates an attempt to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the resource is in a state that forbids the operation.
var ErrConflict = errors.New("resource state conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
