package trivia

import "errors"

// Failure kinds every engine operation may return. Callers branch with
// errors.Is; nothing else escapes the engine.
var (
	// ErrInvalidInput marks a required field that is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks an absent entity or an empty result set.
	ErrNotFound = errors.New("not found")
)

// StoreError wraps an unexpected failure from the persistence layer. It is
// kept distinct from ErrInvalidInput and ErrNotFound so callers can log the
// underlying cause while still treating it as a processing failure.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return "store failure: " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// wrapStore classifies a store error: ErrNotFound passes through untouched,
// everything else becomes a StoreError.
func wrapStore(err error) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return &StoreError{Err: err}
}
