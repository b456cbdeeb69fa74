package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks, including
// referential violations such as a transfer naming a nonexistent destination
// account.
var ErrValidation = errors.New("validation error")

// ErrMalformedData indicates that persisted state failed to parse. The ledger
// recovers from it by resetting to seed defaults; it never reaches callers of
// the facade.
var ErrMalformedData = errors.New("malformed persisted data")
