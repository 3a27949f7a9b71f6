package messages_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/varkit/pkg/messages"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates catalog with defaults", func(t *testing.T) {
		t.Parallel()

		c, err := messages.New()
		require.NoError(t, err)
		require.NotNil(t, c)
		require.Equal(t, "en", c.DefaultLanguage())
	})

	t.Run("sets custom default language", func(t *testing.T) {
		t.Parallel()

		c, err := messages.New(messages.WithDefaultLanguage("de"))
		require.NoError(t, err)
		require.Equal(t, "de", c.DefaultLanguage())
	})

	t.Run("returns error for empty default language", func(t *testing.T) {
		t.Parallel()

		_, err := messages.New(messages.WithDefaultLanguage(""))
		require.ErrorIs(t, err, messages.ErrEmptyLanguage)
	})

	t.Run("returns error for empty language in messages", func(t *testing.T) {
		t.Parallel()

		_, err := messages.New(
			messages.WithMessages("", "variables", map[string]any{"title": "Variables"}),
		)
		require.ErrorIs(t, err, messages.ErrEmptyLanguage)
	})

	t.Run("returns error for empty namespace", func(t *testing.T) {
		t.Parallel()

		_, err := messages.New(
			messages.WithMessages("en", "", map[string]any{"title": "Variables"}),
		)
		require.ErrorIs(t, err, messages.ErrEmptyNamespace)
	})

	t.Run("returns error for nil plural rule", func(t *testing.T) {
		t.Parallel()

		_, err := messages.New(messages.WithPluralRule("en", nil))
		require.ErrorIs(t, err, messages.ErrNilPluralRule)
	})

	t.Run("rejects plural group without other form", func(t *testing.T) {
		t.Parallel()

		_, err := messages.New(
			messages.WithMessages("en", "variables", map[string]any{
				"delete_one": "Delete 1 Variable",
			}),
		)
		require.ErrorIs(t, err, messages.ErrIncompleteTemplate)
	})
}

func TestCatalog_Template(t *testing.T) {
	t.Parallel()

	t.Run("folds suffixed leaves into plural template", func(t *testing.T) {
		t.Parallel()

		c, err := messages.New(
			messages.WithMessages("en", "variables", map[string]any{
				"delete_one":   "Delete 1 Variable",
				"delete_other": "Delete {{count}} Variables",
				"delete_zero":  "Nothing to delete",
			}),
		)
		require.NoError(t, err)

		tmpl, ok := c.Template("en", "variables", "delete")
		require.True(t, ok)
		require.True(t, tmpl.Plural())

		one, ok := tmpl.Form(messages.FormOne)
		require.True(t, ok)
		require.Equal(t, "Delete 1 Variable", one)

		zero, ok := tmpl.Form(messages.FormZero)
		require.True(t, ok)
		require.Equal(t, "Nothing to delete", zero)
	})

	t.Run("folds nested plural forms", func(t *testing.T) {
		t.Parallel()

		c, err := messages.New(
			messages.WithMessages("en", "variables", map[string]any{
				"imported": map[string]any{
					"one":   "Imported 1 Variable",
					"other": "Imported {{count}} Variables",
				},
			}),
		)
		require.NoError(t, err)

		tmpl, ok := c.Template("en", "variables", "imported")
		require.True(t, ok)
		require.True(t, tmpl.Plural())
	})

	t.Run("flattens nested namespaces with dot notation", func(t *testing.T) {
		t.Parallel()

		c, err := messages.New(
			messages.WithMessages("en", "variables", map[string]any{
				"import": map[string]any{
					"title": "Import Variables",
				},
			}),
		)
		require.NoError(t, err)

		tmpl, ok := c.Template("en", "variables", "import.title")
		require.True(t, ok)
		require.False(t, tmpl.Plural())
		require.Equal(t, "Import Variables", tmpl.Default())
	})
}

func TestCatalog_Languages(t *testing.T) {
	t.Parallel()

	c, err := messages.New(
		messages.WithMessages("de", "variables", map[string]any{"title": "Variablen"}),
		messages.WithMessages("en", "variables", map[string]any{"title": "Variables"}),
		messages.WithMessages("ja", "variables", map[string]any{"title": "変数"}),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"en", "de", "ja"}, c.Languages())
}

func TestTemplate_Placeholders(t *testing.T) {
	t.Parallel()

	c, err := messages.New(
		messages.WithMessages("en", "variables", map[string]any{
			"conflict_one":   "{{key}} already exists",
			"conflict_other": "{{count}} keys already exist, starting with {{key}}",
		}),
	)
	require.NoError(t, err)

	tmpl, ok := c.Template("en", "variables", "conflict")
	require.True(t, ok)
	require.ElementsMatch(t, []string{"count", "key"}, tmpl.Placeholders())
}
