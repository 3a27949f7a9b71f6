package messages

import "strings"

// PluralRule determines which plural form to use for a given count.
type PluralRule func(n int) Form

// EnglishPluralRule covers English and similar languages.
// Categories: zero (0), one (±1), other (everything else).
// The resolver falls back to other when a template has no zero form.
var EnglishPluralRule PluralRule = func(n int) Form {
	if n == 0 {
		return FormZero
	}
	if n == 1 || n == -1 {
		return FormOne
	}
	return FormOther
}

// GermanicPluralRule covers German, Dutch, and the Scandinavian languages.
// Categories: one (±1), other (everything else including 0).
var GermanicPluralRule PluralRule = func(n int) Form {
	if n == 1 || n == -1 {
		return FormOne
	}
	return FormOther
}

// NoPluralRule covers languages without grammatical number
// (Japanese, Chinese, Korean, Thai, Vietnamese).
var NoPluralRule PluralRule = func(_ int) Form {
	return FormOther
}

// DefaultPluralRule is used for languages without a registered rule.
var DefaultPluralRule = EnglishPluralRule

// PluralRuleForLanguage returns the rule for a two-letter ISO 639-1 language
// code, falling back to DefaultPluralRule for unknown languages.
func PluralRuleForLanguage(lang string) PluralRule {
	if len(lang) >= 2 {
		lang = strings.ToLower(lang[:2])
	}

	switch lang {
	case "en":
		return EnglishPluralRule
	case "de", "nl", "sv", "no", "da", "is":
		return GermanicPluralRule
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return NoPluralRule
	default:
		return DefaultPluralRule
	}
}
