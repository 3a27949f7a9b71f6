package messages_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/varkit/pkg/messages"
)

func newTestCatalog(t *testing.T, opts ...messages.Option) *messages.Catalog {
	t.Helper()

	base := []messages.Option{
		messages.WithDefaultLanguage("en"),
		messages.WithMessages("en", "variables", map[string]any{
			"title":        "Variables",
			"greeting":     "Hello, {{name}}!",
			"delete_one":   "Delete 1 Variable",
			"delete_other": "Delete {{count}} Variables",
			"purge_zero":   "Nothing to purge",
			"purge_one":    "Purge 1 Variable",
			"purge_other":  "Purge {{count}} Variables",
		}),
		messages.WithMessages("de", "variables", map[string]any{
			"title": "Variablen",
		}),
	}

	c, err := messages.New(append(base, opts...)...)
	require.NoError(t, err)
	return c
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("renders plain message", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "en", messages.ModeStrict)
		got, err := r.Resolve("variables", "title", nil)
		require.NoError(t, err)
		require.Equal(t, "Variables", got)
	})

	t.Run("substitutes parameters", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "en", messages.ModeStrict)
		got, err := r.Resolve("variables", "greeting", messages.M{"name": "admin"})
		require.NoError(t, err)
		require.Equal(t, "Hello, admin!", got)
	})

	t.Run("missing parameter is always an error", func(t *testing.T) {
		t.Parallel()

		for _, mode := range []messages.Mode{messages.ModeStrict, messages.ModeLenient} {
			r := messages.NewResolver(newTestCatalog(t), "en", mode)
			got, err := r.Resolve("variables", "greeting", nil)

			var missing *messages.MissingParameterError
			require.ErrorAs(t, err, &missing)
			require.Equal(t, []string{"name"}, missing.Names)
			require.NotContains(t, got, "{{name}}")
		}
	})

	t.Run("missing key in strict mode", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "en", messages.ModeStrict)
		_, err := r.Resolve("variables", "nonexistent", nil)

		var missing *messages.MissingMessageError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, "nonexistent", missing.Key)
	})

	t.Run("missing key in lenient mode returns the key", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "en", messages.ModeLenient)
		got, err := r.Resolve("variables", "nonexistent", nil)
		require.NoError(t, err)
		require.Equal(t, "nonexistent", got)
	})

	t.Run("missing handler observes the gap", func(t *testing.T) {
		t.Parallel()

		var gaps []string
		c := newTestCatalog(t, messages.WithMissingHandler(func(lang, namespace, key string) {
			gaps = append(gaps, fmt.Sprintf("%s:%s:%s", lang, namespace, key))
		}))

		r := messages.NewResolver(c, "en", messages.ModeLenient)
		_, err := r.Resolve("variables", "gap", nil)
		require.NoError(t, err)
		require.Equal(t, []string{"en:variables:gap"}, gaps)
	})
}

func TestResolver_ResolveCount(t *testing.T) {
	t.Parallel()

	t.Run("selects one form", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "en", messages.ModeStrict)
		got, err := r.ResolveCount("variables", "delete", 1, nil)
		require.NoError(t, err)
		require.Equal(t, "Delete 1 Variable", got)
	})

	t.Run("selects other form and injects count", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "en", messages.ModeStrict)
		got, err := r.ResolveCount("variables", "delete", 3, nil)
		require.NoError(t, err)
		require.Equal(t, "Delete 3 Variables", got)
	})

	t.Run("zero count without zero form falls back to other", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "en", messages.ModeStrict)
		got, err := r.ResolveCount("variables", "delete", 0, nil)
		require.NoError(t, err)
		require.Equal(t, "Delete 0 Variables", got)
	})

	t.Run("zero count uses zero form when present", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "en", messages.ModeStrict)
		got, err := r.ResolveCount("variables", "purge", 0, nil)
		require.NoError(t, err)
		require.Equal(t, "Nothing to purge", got)
	})

	t.Run("caller-provided count wins over injection", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "en", messages.ModeStrict)
		got, err := r.ResolveCount("variables", "delete", 3, messages.M{"count": "three"})
		require.NoError(t, err)
		require.Equal(t, "Delete three Variables", got)
	})

	t.Run("count works on count-insensitive templates", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "en", messages.ModeStrict)
		got, err := r.ResolveCount("variables", "title", 5, nil)
		require.NoError(t, err)
		require.Equal(t, "Variables", got)
	})
}

func TestResolver_LanguageFallback(t *testing.T) {
	t.Parallel()

	t.Run("uses exact language", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "de", messages.ModeStrict)
		got, err := r.Resolve("variables", "title", nil)
		require.NoError(t, err)
		require.Equal(t, "Variablen", got)
	})

	t.Run("falls back from region tag to base language", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "de-AT", messages.ModeStrict)
		got, err := r.Resolve("variables", "title", nil)
		require.NoError(t, err)
		require.Equal(t, "Variablen", got)
	})

	t.Run("falls back to default language", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "de", messages.ModeStrict)
		got, err := r.ResolveCount("variables", "delete", 2, nil)
		require.NoError(t, err)
		require.Equal(t, "Delete 2 Variables", got)
	})

	t.Run("empty language binds to the default", func(t *testing.T) {
		t.Parallel()

		r := messages.NewResolver(newTestCatalog(t), "", messages.ModeStrict)
		require.Equal(t, "en", r.Language())
	})
}

func TestResolver_ImportSummary(t *testing.T) {
	t.Parallel()

	// Report counts feed directly into plural resolution.
	c, err := messages.New(
		messages.WithMessages("en", "variables", map[string]any{
			"import": map[string]any{
				"created_one":   "Created 1 Variable",
				"created_other": "Created {{count}} Variables",
				"skipped_one":   "Skipped 1 existing Variable",
				"skipped_other": "Skipped {{count}} existing Variables",
			},
		}),
	)
	require.NoError(t, err)

	r := messages.NewResolver(c, "en", messages.ModeStrict)

	created, err := r.ResolveCount("variables", "import.created", 2, nil)
	require.NoError(t, err)
	require.Equal(t, "Created 2 Variables", created)

	skipped, err := r.ResolveCount("variables", "import.skipped", 1, nil)
	require.NoError(t, err)
	require.Equal(t, "Skipped 1 existing Variable", skipped)
}

func TestResolver_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := messages.NewResolver(newTestCatalog(t), "en", messages.ModeStrict)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = r.ResolveCount("variables", "delete", n, nil)
			_, _ = r.Resolve("variables", "title", nil)
		}(i)
	}
	wg.Wait()
}

func TestNewResolver_NilCatalog(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		messages.NewResolver(nil, "en", messages.ModeStrict)
	})
}
