package varstore

import "errors"

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a key does not exist in the store.
	ErrNotFound = errors.New("varstore: variable not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("varstore: closed")

	// ErrEmptyKey is returned when a variable with an empty key is written.
	ErrEmptyKey = errors.New("varstore: empty key")

	// ErrMarshal is returned when variable serialization fails.
	ErrMarshal = errors.New("varstore: failed to marshal variable")

	// ErrUnmarshal is returned when variable deserialization fails.
	ErrUnmarshal = errors.New("varstore: failed to unmarshal variable")

	// ErrFailedToParseConfig is returned when the Postgres connection string is invalid.
	ErrFailedToParseConfig = errors.New("varstore: failed to parse postgres config")

	// ErrFailedToConnect is returned when the Postgres connection cannot be established.
	ErrFailedToConnect = errors.New("varstore: failed to open postgres connection")

	// ErrSetDialect is returned when the migration dialect cannot be configured.
	ErrSetDialect = errors.New("varstore: failed to set migration dialect")

	// ErrApplyMigrations is returned when schema migrations fail to apply.
	ErrApplyMigrations = errors.New("varstore: failed to apply migrations")
)
