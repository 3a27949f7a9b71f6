package varimport

import "fmt"

// Policy governs how the importer treats keys that already exist in the store.
// It is chosen once per import call and applies uniformly to the whole batch.
type Policy int

const (
	// PolicyFail aborts the entire batch on any conflict or validation
	// failure; nothing is written.
	PolicyFail Policy = iota

	// PolicyOverwrite replaces existing values; conflicts are per-key and
	// the rest of the batch still commits.
	PolicyOverwrite

	// PolicySkip leaves existing values untouched; conflicts are per-key
	// and the rest of the batch still commits.
	PolicySkip
)

// String returns the wire name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyFail:
		return "fail"
	case PolicyOverwrite:
		return "overwrite"
	case PolicySkip:
		return "skip"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// valid reports whether p is one of the defined policies.
func (p Policy) valid() bool {
	switch p {
	case PolicyFail, PolicyOverwrite, PolicySkip:
		return true
	default:
		return false
	}
}

// ParsePolicy converts a policy name ("fail", "overwrite", "skip") to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "fail":
		return PolicyFail, nil
	case "overwrite":
		return PolicyOverwrite, nil
	case "skip":
		return PolicySkip, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}
