package messages_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/varkit/pkg/messages"
)

func TestEnglishPluralRule(t *testing.T) {
	t.Parallel()

	cases := map[int]messages.Form{
		0:   messages.FormZero,
		1:   messages.FormOne,
		-1:  messages.FormOne,
		2:   messages.FormOther,
		-5:  messages.FormOther,
		100: messages.FormOther,
	}
	for n, want := range cases {
		require.Equal(t, want, messages.EnglishPluralRule(n), "n=%d", n)
	}
}

func TestGermanicPluralRule(t *testing.T) {
	t.Parallel()

	require.Equal(t, messages.FormOther, messages.GermanicPluralRule(0))
	require.Equal(t, messages.FormOne, messages.GermanicPluralRule(1))
	require.Equal(t, messages.FormOne, messages.GermanicPluralRule(-1))
	require.Equal(t, messages.FormOther, messages.GermanicPluralRule(7))
}

func TestNoPluralRule(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 100} {
		require.Equal(t, messages.FormOther, messages.NoPluralRule(n))
	}
}

func TestPluralRuleForLanguage(t *testing.T) {
	t.Parallel()

	require.Equal(t, messages.FormZero, messages.PluralRuleForLanguage("en")(0))
	require.Equal(t, messages.FormOther, messages.PluralRuleForLanguage("de")(0))
	require.Equal(t, messages.FormOther, messages.PluralRuleForLanguage("ja")(1))

	// Region tags and unknown languages.
	require.Equal(t, messages.FormOne, messages.PluralRuleForLanguage("en-US")(1))
	require.Equal(t, messages.FormOne, messages.PluralRuleForLanguage("xx")(1))
}

func TestCustomPluralRule(t *testing.T) {
	t.Parallel()

	// A language where every count renders the other form.
	c, err := messages.New(
		messages.WithPluralRule("en", func(_ int) messages.Form { return messages.FormOther }),
		messages.WithMessages("en", "variables", map[string]any{
			"delete_one":   "Delete 1 Variable",
			"delete_other": "Delete {{count}} Variables",
		}),
	)
	require.NoError(t, err)

	r := messages.NewResolver(c, "en", messages.ModeStrict)
	got, err := r.ResolveCount("variables", "delete", 1, nil)
	require.NoError(t, err)
	require.Equal(t, "Delete 1 Variables", got)
}
