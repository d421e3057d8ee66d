package validation

import "github.com/lareferencia/harvester/pkg/metadata"

// ControlledValueRule validates that field content belongs to a controlled
// vocabulary.
type ControlledValueRule struct {
	FieldRule
	ControlledValues []string `json:"controlledValues"`

	set map[string]struct{}
}

// NewControlledValueRule builds a controlled vocabulary rule.
func NewControlledValueRule(fieldname string, values []string) *ControlledValueRule {
	r := &ControlledValueRule{ControlledValues: values}
	r.Fieldname = fieldname
	_ = r.compile()
	return r
}

func (r *ControlledValueRule) compile() error {
	r.set = make(map[string]struct{}, len(r.ControlledValues))
	for _, v := range r.ControlledValues {
		r.set[v] = struct{}{}
	}
	return nil
}

func (r *ControlledValueRule) Validate(doc *metadata.Document) ValidatorRuleResult {
	return r.evaluate(r, r, doc)
}

func (r *ControlledValueRule) ValidateContent(content *string) ContentValidatorResult {
	if content == nil {
		return ContentValidatorResult{Valid: false, ReceivedValue: receivedNull}
	}
	_, ok := r.set[*content]
	return ContentValidatorResult{
		Valid:         ok,
		ReceivedValue: truncateReceived(*content),
	}
}
