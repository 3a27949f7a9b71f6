package varimport

import (
	"errors"
	"fmt"
)

// Sentinel errors for importer construction and input handling.
var (
	// ErrNilStore is returned when an importer is created without a store.
	ErrNilStore = errors.New("varimport: store is required")

	// ErrInvalidPolicy is returned for an unknown conflict policy.
	ErrInvalidPolicy = errors.New("varimport: invalid conflict policy")

	// ErrStoreFailure wraps errors returned by the underlying store.
	ErrStoreFailure = errors.New("varimport: store operation failed")
)

// ValidationError aborts a batch under PolicyFail when one or more entries
// are malformed. It carries every failure so the caller can report them all
// at once.
type ValidationError struct {
	Failures []Failure
}

func (e *ValidationError) Error() string {
	if len(e.Failures) == 1 {
		return fmt.Sprintf("varimport: invalid entry %q: %s", e.Failures[0].Key, e.Failures[0].Reason)
	}
	return fmt.Sprintf("varimport: %d invalid entries, first %q: %s",
		len(e.Failures), e.Failures[0].Key, e.Failures[0].Reason)
}

// ConflictError aborts a batch under PolicyFail when one or more keys
// already exist in the store. Key names the first colliding key in batch
// input order; Count is the total number of conflicts found by the pre-scan.
type ConflictError struct {
	Key   string
	Count int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("varimport: %d conflicting keys starting with %q", e.Count, e.Key)
}
