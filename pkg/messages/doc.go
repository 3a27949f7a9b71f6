// Package messages provides an immutable catalog of localized message
// templates and a resolver that renders count-sensitive, parameterized text.
//
// The catalog is loaded once at process start and is read-only afterwards,
// making both catalog and resolver safe for concurrent use without locking.
//
// # Catalog
//
// Messages are keyed by language, namespace, and a dot-separated key path.
// Plural variants are expressed with _one/_other suffixes (or nested
// one/other keys) and folded into a single count-sensitive template at load
// time:
//
//	catalog, err := messages.New(
//		messages.WithDefaultLanguage("en"),
//		messages.WithMessages("en", "variables", map[string]any{
//			"import": map[string]any{
//				"created_one":   "Imported 1 Variable",
//				"created_other": "Imported {{count}} Variables",
//				"title":         "Import Variables",
//			},
//		}),
//	)
//
// Files can be loaded from an fs.FS with [WithJSONDir] and [WithYAMLDir]
// using the {lang}/{namespace}.json convention.
//
// # Resolver
//
// A Resolver binds the catalog to a language and a strictness mode:
//
//	resolver := messages.NewResolver(catalog, "en", messages.ModeLenient)
//
//	title, err := resolver.Resolve("variables", "import.title", nil)
//	// "Import Variables"
//
//	summary, err := resolver.ResolveCount("variables", "import.created", 3, nil)
//	// "Imported 3 Variables"
//
// Plural form selection uses zero/one/other categories: zero when the count
// is 0 and a zero form exists, one for ±1, other for everything else. Absent
// forms fall back to other; form selection never fails. The full CLDR plural
// category set is not implemented.
//
// # Missing Content
//
// A missing message key is a content defect, not a runtime failure: in
// [ModeLenient] the resolver returns the raw key, in [ModeStrict] it returns
// a [MissingMessageError]. A placeholder without a matching parameter is
// always a [MissingParameterError], in either mode.
//
// # Language Fallback
//
// Lookup falls back from the exact tag to the base tag ("en-US" to "en")
// and then to the catalog's default language.
package messages
