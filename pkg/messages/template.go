package messages

// Form is a plural category selected by a PluralRule. The catalog supports
// the zero/one/other categories used by English-style pluralization; it does
// not implement the full CLDR category set.
type Form string

const (
	FormZero  Form = "zero"
	FormOne   Form = "one"
	FormOther Form = "other"
)

// Template is a localized message template: either a single default form or
// a count-sensitive set of plural forms. Count-sensitive templates require
// the one and other forms; zero is optional.
type Template struct {
	forms  map[Form]string
	single string
	plural bool
}

// NewTemplate creates a count-insensitive template with a single form.
func NewTemplate(text string) Template {
	return Template{single: text}
}

// NewPluralTemplate creates a count-sensitive template.
// Returns ErrIncompleteTemplate unless both one and other forms are present.
func NewPluralTemplate(forms map[Form]string) (Template, error) {
	if forms[FormOne] == "" || forms[FormOther] == "" {
		return Template{}, ErrIncompleteTemplate
	}

	cloned := make(map[Form]string, len(forms))
	for f, text := range forms {
		if text != "" {
			cloned[f] = text
		}
	}

	return Template{forms: cloned, plural: true}, nil
}

// Plural reports whether the template is count-sensitive.
func (t Template) Plural() bool {
	return t.plural
}

// Form returns the text of the given plural form, without fallback.
func (t Template) Form(f Form) (string, bool) {
	text, ok := t.forms[f]
	return text, ok
}

// Default returns the single form for count-insensitive templates, or the
// other form for count-sensitive ones.
func (t Template) Default() string {
	if t.plural {
		return t.forms[FormOther]
	}
	return t.single
}

// Placeholders returns the distinct placeholder names used across all forms.
func (t Template) Placeholders() []string {
	if !t.plural {
		return placeholderNames(t.single)
	}

	seen := make(map[string]struct{})
	var names []string
	for _, text := range t.forms {
		for _, name := range placeholderNames(text) {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// selectForm resolves the text for a plural form, falling back to other when
// the exact form is missing. Count-insensitive templates always return the
// single form.
func (t Template) selectForm(f Form) string {
	if !t.plural {
		return t.single
	}
	if text, ok := t.forms[f]; ok {
		return text
	}
	return t.forms[FormOther]
}
