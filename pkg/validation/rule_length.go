package validation

import (
	"math"

	"github.com/lareferencia/harvester/pkg/metadata"
)

// ContentLengthRule validates that field content length falls within
// configured bounds (inclusive).
type ContentLengthRule struct {
	FieldRule
	MinLength int `json:"minLength"`
	MaxLength int `json:"maxLength"`
}

// NewContentLengthRule builds a length-bounds rule.
func NewContentLengthRule(fieldname string, min, max int) *ContentLengthRule {
	r := &ContentLengthRule{MinLength: min, MaxLength: max}
	r.Fieldname = fieldname
	return r
}

func (r *ContentLengthRule) Validate(doc *metadata.Document) ValidatorRuleResult {
	return r.evaluate(r, r, doc)
}

func (r *ContentLengthRule) ValidateContent(content *string) ContentValidatorResult {
	if content == nil {
		return ContentValidatorResult{Valid: false, ReceivedValue: receivedNull}
	}
	max := r.MaxLength
	if max == 0 {
		// Unset upper bound means unbounded.
		max = math.MaxInt
	}
	n := len(*content)
	return ContentValidatorResult{
		Valid:         n >= r.MinLength && n <= max,
		ReceivedValue: truncateReceived(*content),
	}
}
