package messages

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyLanguage      = errors.New("messages: language cannot be empty")
	ErrEmptyNamespace     = errors.New("messages: namespace cannot be empty")
	ErrNilPluralRule      = errors.New("messages: plural rule cannot be nil")
	ErrInvalidFile        = errors.New("messages: invalid message file")
	ErrIncompleteTemplate = errors.New("messages: plural template requires one and other forms")
)

// MissingMessageError signals a catalog/key mismatch: the requested message
// does not exist in any language of the fallback chain. In lenient mode the
// resolver degrades to the raw key instead of surfacing this error.
type MissingMessageError struct {
	Lang      string
	Namespace string
	Key       string
}

func (e *MissingMessageError) Error() string {
	return fmt.Sprintf("messages: no message for %s:%s:%s", e.Lang, e.Namespace, e.Key)
}

// MissingParameterError signals that a template placeholder has no matching
// parameter. It is always surfaced, never silently defaulted: rendering text
// with a literal {{name}} left in it is strictly worse than failing loudly.
type MissingParameterError struct {
	Names []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("messages: missing parameters: %s", strings.Join(e.Names, ", "))
}
