package varimport

import "unicode/utf8"

// MaxKeyLength is the maximum allowed length of a variable key, in characters.
const MaxKeyLength = 250

// Entry is a single proposed key/value pair submitted for import.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`

	// Encrypted marks the value as sensitive. It is carried into the store
	// unchanged; the importer never logs values of encrypted entries.
	Encrypted bool `json:"encrypted"`
}

// Validation failure reasons attached to per-key failures in a Report.
const (
	ReasonKeyConstraint    = "key constraint"
	ReasonValueRequired    = "value required"
	ReasonDuplicateInBatch = "duplicate in batch"
)

// validate checks the entry against batch-independent constraints.
// Returns an empty string when the entry is valid.
func (e Entry) validate() string {
	if e.Key == "" || utf8.RuneCountInString(e.Key) > MaxKeyLength {
		return ReasonKeyConstraint
	}
	if e.Value == "" {
		return ReasonValueRequired
	}
	return ""
}
