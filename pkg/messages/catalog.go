package messages

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// DefaultLang is the default language code used when none is specified.
const DefaultLang = "en"

// Catalog is an immutable, namespaced mapping from message keys to templates.
// All configuration happens during construction, making the catalog safe for
// concurrent use without locking. There is no partial update after New returns.
type Catalog struct {
	// Parsed templates for O(1) lookups. Key format: "lang:namespace:key.path"
	templates map[string]Template

	// Plural rules per language.
	pluralRules map[string]PluralRule

	// Optional handler called when a message key is not found in any
	// language of the fallback chain. Useful for monitoring content gaps.
	missingHandler func(lang, namespace, key string)

	// Languages seen during construction.
	langSet map[string]struct{}

	defaultLang string
}

// Option configures the Catalog during construction.
type Option func(*Catalog) error

// New creates a new Catalog with the given options.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		templates:   make(map[string]Template),
		pluralRules: make(map[string]PluralRule),
		langSet:     make(map[string]struct{}),
		defaultLang: DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if c.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	return c, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		c.defaultLang = lang
		return nil
	}
}

// WithMessages loads messages for a specific language and namespace.
// The map can be nested; it is flattened into dot-separated keys. Leaves
// suffixed with _zero/_one/_other (or nested under zero/one/other keys) are
// folded into a single count-sensitive template.
func WithMessages(lang, namespace string, messages map[string]any) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		if len(messages) == 0 {
			return nil
		}

		return c.ingest(lang, namespace, messages)
	}
}

// WithPluralRule registers a custom plural rule for a language.
func WithPluralRule(lang string, rule PluralRule) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		c.pluralRules[lang] = rule
		return nil
	}
}

// WithMissingHandler sets a handler called when a message key is not found
// in any language, including the default fallback.
func WithMissingHandler(handler func(lang, namespace, key string)) Option {
	return func(c *Catalog) error {
		c.missingHandler = handler
		return nil
	}
}

// DefaultLanguage returns the default/fallback language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Languages returns the loaded languages with the default language first
// and the rest sorted alphabetically.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.langSet)+1)
	langs = append(langs, c.defaultLang)

	others := make([]string, 0, len(c.langSet))
	for lang := range c.langSet {
		if lang != c.defaultLang {
			others = append(others, lang)
		}
	}
	sort.Strings(others)

	return append(langs, others...)
}

// Template returns the template for the given language, namespace, and key
// without language fallback. Intended for catalog introspection; resolution
// goes through Resolver.
func (c *Catalog) Template(lang, namespace, key string) (Template, bool) {
	t, ok := c.templates[buildKey(lang, namespace, key)]
	return t, ok
}

// ingest flattens the message map, folds plural-suffixed leaves into
// count-sensitive templates, and stores the result.
func (c *Catalog) ingest(lang, namespace string, messages map[string]any) error {
	flattened := flattenMessages(messages, "")

	singles := make(map[string]string)
	plurals := make(map[string]map[Form]string)

	for key, text := range flattened {
		base, form, ok := splitPluralKey(key)
		if !ok {
			singles[key] = text
			continue
		}
		if plurals[base] == nil {
			plurals[base] = make(map[Form]string)
		}
		plurals[base][form] = text
	}

	for key, text := range singles {
		c.templates[buildKey(lang, namespace, key)] = NewTemplate(text)
	}
	for key, forms := range plurals {
		t, err := NewPluralTemplate(forms)
		if err != nil {
			return fmt.Errorf("%w: %s:%s:%s", err, lang, namespace, key)
		}
		c.templates[buildKey(lang, namespace, key)] = t
	}

	c.langSet[lang] = struct{}{}
	if _, exists := c.pluralRules[lang]; !exists {
		c.pluralRules[lang] = PluralRuleForLanguage(lang)
	}

	return nil
}

// lookup finds a template for the key, falling back from the exact language
// to its base tag ("en-US" to "en") and then to the default language.
func (c *Catalog) lookup(lang, namespace, key string) (Template, bool) {
	if t, ok := c.templates[buildKey(lang, namespace, key)]; ok {
		return t, true
	}

	if base := baseLanguage(lang); base != lang {
		if t, ok := c.templates[buildKey(base, namespace, key)]; ok {
			return t, true
		}
	}

	if lang != c.defaultLang && baseLanguage(lang) != c.defaultLang {
		if t, ok := c.templates[buildKey(c.defaultLang, namespace, key)]; ok {
			return t, true
		}
	}

	return Template{}, false
}

// ruleFor returns the plural rule for a language with the same fallback
// chain as lookup.
func (c *Catalog) ruleFor(lang string) PluralRule {
	if rule, ok := c.pluralRules[lang]; ok {
		return rule
	}
	if base := baseLanguage(lang); base != lang {
		if rule, ok := c.pluralRules[base]; ok {
			return rule
		}
	}
	if rule, ok := c.pluralRules[c.defaultLang]; ok {
		return rule
	}
	return DefaultPluralRule
}

func (c *Catalog) reportMissing(lang, namespace, key string) {
	if c.missingHandler != nil {
		c.missingHandler(lang, namespace, key)
	}
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

// baseLanguage strips the region from a language tag ("en-US" to "en").
// Returns the input unchanged if there is no region.
func baseLanguage(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}

// splitPluralKey detects plural-variant keys: a _zero/_one/_other suffix on
// the final segment, or a final dotted segment of zero/one/other produced by
// nesting forms under one parent key.
func splitPluralKey(key string) (base string, form Form, ok bool) {
	for _, f := range []Form{FormZero, FormOne, FormOther} {
		if base, found := strings.CutSuffix(key, "_"+string(f)); found && base != "" {
			return base, f, true
		}
		if base, found := strings.CutSuffix(key, "."+string(f)); found && base != "" {
			return base, f, true
		}
	}
	return "", "", false
}

func flattenMessages(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenMessages(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
