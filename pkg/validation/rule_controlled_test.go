package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lareferencia/harvester/pkg/validation"
)

func TestControlledValueRule(t *testing.T) {
	t.Parallel()

	rule := validation.NewControlledValueRule("dc.language", []string{"es", "en", "pt"})

	t.Run("member value passes", func(t *testing.T) {
		res := rule.ValidateContent(ptr("en"))
		assert.True(t, res.Valid)
		assert.Equal(t, "en", res.ReceivedValue)
	})

	t.Run("non-member value fails", func(t *testing.T) {
		res := rule.ValidateContent(ptr("fr"))
		assert.False(t, res.Valid)
		assert.Equal(t, "fr", res.ReceivedValue)
	})

	t.Run("nil content reports NULL", func(t *testing.T) {
		res := rule.ValidateContent(nil)
		assert.False(t, res.Valid)
		assert.Equal(t, "NULL", res.ReceivedValue)
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		res := rule.ValidateContent(ptr("EN"))
		assert.False(t, res.Valid)
	})
}
