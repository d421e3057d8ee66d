package validation_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lareferencia/harvester/pkg/validation"
)

func TestDynamicYearRangeRule(t *testing.T) {
	t.Parallel()

	currentYear := time.Now().Year()

	rule, err := validation.NewDynamicYearRangeRule("dc.date", "", 10, 2)
	require.NoError(t, err)

	t.Run("year inside window passes", func(t *testing.T) {
		year := strconv.Itoa(currentYear - 5)
		res := rule.ValidateContent(&year)
		assert.True(t, res.Valid)
		assert.Equal(t, year, res.ReceivedValue)
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		lower := strconv.Itoa(currentYear - 10)
		assert.True(t, rule.ValidateContent(&lower).Valid)

		upper := strconv.Itoa(currentYear + 2)
		assert.True(t, rule.ValidateContent(&upper).Valid)
	})

	t.Run("year outside window fails", func(t *testing.T) {
		old := strconv.Itoa(currentYear - 11)
		assert.False(t, rule.ValidateContent(&old).Valid)

		future := strconv.Itoa(currentYear + 3)
		assert.False(t, rule.ValidateContent(&future).Valid)
	})

	t.Run("default pattern extracts leading year", func(t *testing.T) {
		dated := strconv.Itoa(currentYear) + "-03-15"
		res := rule.ValidateContent(&dated)
		assert.True(t, res.Valid)
		assert.Equal(t, strconv.Itoa(currentYear), res.ReceivedValue)
	})

	t.Run("nil and empty content", func(t *testing.T) {
		res := rule.ValidateContent(nil)
		assert.False(t, res.Valid)
		assert.Equal(t, "NULL or Empty", res.ReceivedValue)

		empty := ""
		res = rule.ValidateContent(&empty)
		assert.False(t, res.Valid)
		assert.Equal(t, "NULL or Empty", res.ReceivedValue)
	})

	t.Run("non-year content", func(t *testing.T) {
		res := rule.ValidateContent(ptr("sometime in the past"))
		assert.False(t, res.Valid)
		assert.Equal(t, "Regex not parsing a valid year value", res.ReceivedValue)
	})
}
