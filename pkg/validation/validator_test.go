package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lareferencia/harvester/pkg/validation"
)

func TestValidator(t *testing.T) {
	t.Parallel()

	t.Run("record valid is AND over mandatory rules", func(t *testing.T) {
		doc := docWithFields(t, []string{"A real title"}, []string{"fr"})

		titleRule := validation.NewContentLengthRule("dc.title", 1, 100)
		titleRule.SetIdentity(1, true, validation.QuantifierOneOrMore)

		langRule := validation.NewControlledValueRule("dc.language", []string{"es", "en", "pt"})
		langRule.SetIdentity(2, true, validation.QuantifierOneOrMore)

		v := validation.NewValidator()
		require.NoError(t, v.AddRule(titleRule))
		require.NoError(t, v.AddRule(langRule))

		var result validation.ValidatorResult
		require.NoError(t, v.Validate(doc, &result))

		assert.False(t, result.Valid, "failing mandatory rule invalidates the record")
		require.Len(t, result.RulesResults, 2)
		assert.True(t, result.RulesResults[0].Valid)
		assert.False(t, result.RulesResults[1].Valid)
	})

	t.Run("non-mandatory failures do not affect the verdict", func(t *testing.T) {
		doc := docWithFields(t, []string{"A real title"}, []string{"fr"})

		titleRule := validation.NewContentLengthRule("dc.title", 1, 100)
		titleRule.SetIdentity(1, true, validation.QuantifierOneOrMore)

		langRule := validation.NewControlledValueRule("dc.language", []string{"es", "en", "pt"})
		langRule.SetIdentity(2, false, validation.QuantifierOneOrMore)

		v := validation.NewValidator()
		require.NoError(t, v.AddRule(titleRule))
		require.NoError(t, v.AddRule(langRule))

		var result validation.ValidatorResult
		require.NoError(t, v.Validate(doc, &result))

		assert.True(t, result.Valid)
		assert.False(t, result.RulesResults[1].Valid, "failure is still recorded for statistics")
	})

	t.Run("duplicate rule ids are rejected", func(t *testing.T) {
		a := validation.NewContentLengthRule("dc.title", 1, 100)
		a.SetIdentity(1, true, validation.QuantifierOneOrMore)
		b := validation.NewControlledValueRule("dc.language", []string{"es"})
		b.SetIdentity(1, true, validation.QuantifierOneOrMore)

		v := validation.NewValidator()
		require.NoError(t, v.AddRule(a))
		require.ErrorIs(t, v.AddRule(b), validation.ErrDuplicateRuleID)
	})

	t.Run("result is reset between records", func(t *testing.T) {
		rule := validation.NewContentLengthRule("dc.title", 1, 100)
		rule.SetIdentity(1, true, validation.QuantifierOneOrMore)

		v := validation.NewValidator()
		require.NoError(t, v.AddRule(rule))

		var result validation.ValidatorResult
		require.NoError(t, v.Validate(docWithFields(t, []string{"ok"}, nil), &result))
		assert.True(t, result.Valid)
		require.Len(t, result.RulesResults, 1)

		require.NoError(t, v.Validate(docWithFields(t, nil, nil), &result))
		assert.False(t, result.Valid)
		require.Len(t, result.RulesResults, 1, "previous record's results were cleared")
	})

	t.Run("content details", func(t *testing.T) {
		rule := validation.NewControlledValueRule("dc.language", []string{"es"})
		rule.SetIdentity(42, true, validation.QuantifierOneOrMore)

		v := validation.NewValidator()
		require.NoError(t, v.AddRule(rule))

		var result validation.ValidatorResult
		require.NoError(t, v.Validate(docWithFields(t, nil, []string{"es", "fr"}), &result))

		assert.Equal(t, "42:es;42:fr", result.ContentDetails())
	})
}
