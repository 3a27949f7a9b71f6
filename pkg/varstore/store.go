package varstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
)

// Variable is a single configuration variable held by a Store.
type Variable struct {
	// CreatedAt and UpdatedAt are maintained by the store.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Key   string `json:"key"`
	Value string `json:"value"`

	// Encrypted marks the value as sensitive. The store does not encrypt
	// anything itself; the flag travels with the variable so consumers can
	// mask it in logs and UIs.
	Encrypted bool `json:"encrypted"`
}

// Store is a key/value variable store.
//
// Implementations guarantee per-key atomicity for individual reads and
// writes but do not provide cross-key transactions.
type Store interface {
	// Get retrieves a variable by key.
	// Returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) (Variable, error)

	// Set creates or replaces the variable under v.Key.
	Set(ctx context.Context, v Variable) error

	// Has checks whether a key exists.
	Has(ctx context.Context, key string) (bool, error)

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all stored keys in lexicographic order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases resources held by the store.
	Close() error
}

// Marshaler serializes and deserializes variables for backends that
// store byte payloads (e.g., Redis).
type Marshaler interface {
	Marshal(v Variable) ([]byte, error)
	Unmarshal(data []byte) (Variable, error)
}

type jsonMarshaler struct{}

func (jsonMarshaler) Marshal(v Variable) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func (jsonMarshaler) Unmarshal(data []byte) (Variable, error) {
	var v Variable
	if err := json.Unmarshal(data, &v); err != nil {
		return Variable{}, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}

// stampVariable fills CreatedAt/UpdatedAt on a variable about to be written,
// preserving the original creation time when lookup finds an existing one.
func stampVariable(v *Variable, lookup func() (Variable, bool)) {
	now := time.Now()
	if existing, ok := lookup(); ok {
		v.CreatedAt = existing.CreatedAt
	} else {
		v.CreatedAt = now
	}
	v.UpdatedAt = now
}

var sfGroup singleflight.Group

// GetOrSet retrieves a variable, or calls fn to produce and store it on a miss.
// Uses singleflight so that concurrent misses for the same key run fn only once;
// all callers receive the same seeded variable.
func GetOrSet(ctx context.Context, s Store, key string, fn func(ctx context.Context) (Variable, error)) (Variable, error) {
	// Fast path: the variable already exists.
	if v, err := s.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err, _ := sfGroup.Do(key, func() (any, error) {
		val, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		val.Key = key
		if err := s.Set(ctx, val); err != nil {
			return nil, err
		}
		return val, nil
	})
	if err != nil {
		return Variable{}, err
	}

	return v.(Variable), nil
}
