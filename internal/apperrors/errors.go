package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates that the caller may not access the resource.
var ErrForbidden = errors.New("forbidden")

// ErrDataFetch indicates that the journal or chart-of-accounts store could not serve a query.
var ErrDataFetch = errors.New("data fetch failed")

// FetchError wraps a failed read against an external data source.
// It matches ErrDataFetch with errors.Is.
type FetchError struct {
	Source string // e.g. "journal entries", "chart of accounts"
	Err    error
}

// NewFetchError wraps err as a failed fetch from source.
func NewFetchError(source string, err error) *FetchError {
	return &FetchError{Source: source, Err: err}
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDataFetch) true for any FetchError.
func (e *FetchError) Is(target error) bool {
	return target == ErrDataFetch
}
