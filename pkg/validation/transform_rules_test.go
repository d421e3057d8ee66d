package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lareferencia/harvester/pkg/domain"
	"github.com/lareferencia/harvester/pkg/metadata"
	"github.com/lareferencia/harvester/pkg/validation"
)

func occurrences(t *testing.T, doc *metadata.Document, field string) []string {
	t.Helper()
	var out []string
	for _, v := range doc.FieldOccurrences(field) {
		if v != nil {
			out = append(out, *v)
		} else {
			out = append(out, "<nil>")
		}
	}
	return out
}

func TestFieldContentTranslateRule(t *testing.T) {
	t.Parallel()

	translations := []validation.Translation{
		{Search: "spanish", Replace: "es"},
		{Search: "english", Replace: "en"},
	}

	t.Run("in place rewrite", func(t *testing.T) {
		doc := docWithFields(t, nil, []string{"Spanish", "german"})
		rule := validation.NewFieldContentTranslateRule("dc.language", "dc.language", true, translations)

		mutated, err := rule.Transform(nil, &domain.Record{}, doc)
		require.NoError(t, err)
		assert.True(t, mutated)
		assert.Equal(t, []string{"es", "german"}, occurrences(t, doc, "dc.language"))
	})

	t.Run("write to another field keeps source", func(t *testing.T) {
		doc := docWithFields(t, nil, []string{"english"})
		rule := validation.NewFieldContentTranslateRule("dc.language", "dc.lang_iso", false, translations)

		mutated, err := rule.Transform(nil, &domain.Record{}, doc)
		require.NoError(t, err)
		assert.True(t, mutated)
		assert.Equal(t, []string{"english"}, occurrences(t, doc, "dc.language"))
		assert.Equal(t, []string{"en"}, occurrences(t, doc, "dc.lang_iso"))
	})

	t.Run("no match no mutation", func(t *testing.T) {
		doc := docWithFields(t, nil, []string{"german"})
		rule := validation.NewFieldContentTranslateRule("dc.language", "dc.language", true, translations)

		mutated, err := rule.Transform(nil, &domain.Record{}, doc)
		require.NoError(t, err)
		assert.False(t, mutated)
	})
}

func TestFieldNameTranslateRule(t *testing.T) {
	t.Parallel()

	doc := docWithFields(t, []string{"One", "Two"}, nil)
	rule := validation.NewFieldNameTranslateRule("dc.title", "dcterms.title")

	mutated, err := rule.Transform(nil, &domain.Record{}, doc)
	require.NoError(t, err)
	assert.True(t, mutated)
	assert.Empty(t, doc.FieldOccurrences("dc.title"))
	assert.Equal(t, []string{"One", "Two"}, occurrences(t, doc, "dcterms.title"))
}

func TestRemoveWhitespaceRule(t *testing.T) {
	t.Parallel()

	doc := docWithFields(t, []string{" 10.123/ abc \n"}, nil)
	rule := validation.NewRemoveWhitespaceRule("dc.title")

	mutated, err := rule.Transform(nil, &domain.Record{}, doc)
	require.NoError(t, err)
	assert.True(t, mutated)
	assert.Equal(t, []string{"10.123/abc"}, occurrences(t, doc, "dc.title"))

	mutated, err = rule.Transform(nil, &domain.Record{}, doc)
	require.NoError(t, err)
	assert.False(t, mutated, "second pass has nothing to strip")
}

func TestAddRepoNameRule(t *testing.T) {
	t.Parallel()

	network := &domain.Network{
		Name:               "Repositorio Nacional",
		InstitutionName:    "Universidad X",
		InstitutionAcronym: "UX",
	}

	t.Run("appends prefixed names", func(t *testing.T) {
		doc := docWithFields(t, nil, nil)
		rule := validation.NewAddRepoNameRule("dc.source")
		rule.DoInstNameAppend = true

		mutated, err := rule.Transform(network, &domain.Record{}, doc)
		require.NoError(t, err)
		assert.True(t, mutated)
		assert.Equal(t, []string{
			"reponame:Repositorio Nacional",
			"instname:Universidad X",
			"instacron:UX",
		}, occurrences(t, doc, "dc.source"))
	})

	t.Run("replace removes stale occurrences", func(t *testing.T) {
		doc := docWithFields(t, nil, nil)
		doc.AddFieldOccurrence("dc.source", "reponame:Old Name")

		rule := validation.NewAddRepoNameRule("dc.source")
		rule.DoRepoNameReplace = true

		_, err := rule.Transform(network, &domain.Record{}, doc)
		require.NoError(t, err)
		assert.Equal(t, []string{"reponame:Repositorio Nacional"}, occurrences(t, doc, "dc.source"))
	})
}

func TestIdentifierRegexRule(t *testing.T) {
	t.Parallel()

	rule, err := validation.NewIdentifierRegexRule(`^oai:old:`, "oai:new:")
	require.NoError(t, err)

	record := &domain.Record{Identifier: "oai:old:1234"}
	doc := docWithFields(t, nil, nil)

	mutated, err := rule.Transform(nil, record, doc)
	require.NoError(t, err)
	assert.True(t, mutated)
	assert.Equal(t, "oai:new:1234", record.Identifier)
}

func TestFieldAddRule(t *testing.T) {
	t.Parallel()

	doc := docWithFields(t, nil, nil)
	rule := validation.NewFieldAddRule("dc.rights", "openAccess")

	mutated, err := rule.Transform(nil, &domain.Record{}, doc)
	require.NoError(t, err)
	assert.True(t, mutated)
	assert.Equal(t, []string{"openAccess"}, occurrences(t, doc, "dc.rights"))
}

func TestRemoveOccurrenceRules(t *testing.T) {
	t.Parallel()

	t.Run("empty occurrences", func(t *testing.T) {
		doc := docWithFields(t, []string{"keep", ""}, nil)
		rule := validation.NewRemoveEmptyOccurrencesRule("dc.title")

		mutated, err := rule.Transform(nil, &domain.Record{}, doc)
		require.NoError(t, err)
		assert.True(t, mutated)
		assert.Equal(t, []string{"keep"}, occurrences(t, doc, "dc.title"))
	})

	t.Run("duplicate occurrences keep first", func(t *testing.T) {
		doc := docWithFields(t, []string{"a", "b", "a"}, nil)
		rule := validation.NewRemoveDuplicateOccurrencesRule("dc.title")

		mutated, err := rule.Transform(nil, &domain.Record{}, doc)
		require.NoError(t, err)
		assert.True(t, mutated)
		assert.Equal(t, []string{"a", "b"}, occurrences(t, doc, "dc.title"))
	})
}
