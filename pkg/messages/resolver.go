package messages

import "maps"

// Mode controls how the resolver treats missing messages.
type Mode int

const (
	// ModeLenient degrades a missing message to the raw key. Intended for
	// production, where a content gap should not break rendering.
	ModeLenient Mode = iota

	// ModeStrict surfaces a missing message as a MissingMessageError.
	// Intended for development and tests.
	ModeStrict
)

// Resolver renders localized messages from a catalog with a fixed language
// and strictness mode. It is a pure view over the immutable catalog and is
// safe for unlimited concurrent use.
type Resolver struct {
	catalog *Catalog
	lang    string
	mode    Mode
}

// NewResolver creates a Resolver bound to the given catalog and language.
// If language is empty, the catalog's default language is used.
func NewResolver(catalog *Catalog, lang string, mode Mode) *Resolver {
	if catalog == nil {
		panic("messages: catalog is not provided")
	}
	if lang == "" {
		lang = catalog.DefaultLanguage()
	}
	return &Resolver{
		catalog: catalog,
		lang:    lang,
		mode:    mode,
	}
}

// Resolve renders a count-insensitive message. For count-sensitive templates
// it renders the other form; use ResolveCount to select by count.
//
// A missing key returns MissingMessageError in strict mode and the raw key
// in lenient mode. A missing placeholder parameter is always a
// MissingParameterError, regardless of mode.
func (r *Resolver) Resolve(namespace, key string, params M) (string, error) {
	t, ok := r.catalog.lookup(r.lang, namespace, key)
	if !ok {
		return r.missing(namespace, key)
	}

	return replacePlaceholders(t.Default(), params)
}

// ResolveCount renders a count-sensitive message, selecting the plural form
// for n: zero when n is 0 and a zero form exists, one when n is ±1, other
// otherwise. Form selection never fails; absent forms fall back to other.
//
// The count is injected as the count parameter unless the caller provides
// its own.
func (r *Resolver) ResolveCount(namespace, key string, n int, params M) (string, error) {
	t, ok := r.catalog.lookup(r.lang, namespace, key)
	if !ok {
		return r.missing(namespace, key)
	}

	merged := M{"count": n}
	maps.Copy(merged, params)

	return replacePlaceholders(t.selectForm(r.catalog.ruleFor(r.lang)(n)), merged)
}

// Language returns the language the resolver is bound to.
func (r *Resolver) Language() string {
	return r.lang
}

func (r *Resolver) missing(namespace, key string) (string, error) {
	r.catalog.reportMissing(r.lang, namespace, key)
	if r.mode == ModeStrict {
		return "", &MissingMessageError{Lang: r.lang, Namespace: namespace, Key: key}
	}
	return key, nil
}
