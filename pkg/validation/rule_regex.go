package validation

import (
	"fmt"
	"regexp"

	"github.com/lareferencia/harvester/pkg/metadata"
)

// RegexRule validates that field content fully matches a regular expression.
type RegexRule struct {
	FieldRule
	RegexString string `json:"regexString"`

	re *regexp.Regexp
}

// NewRegexRule builds a compiled regex rule.
func NewRegexRule(fieldname, pattern string) (*RegexRule, error) {
	r := &RegexRule{RegexString: pattern}
	r.Fieldname = fieldname
	if err := r.compile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RegexRule) compile() error {
	// Full-match semantics: the whole value must match, not a substring.
	re, err := regexp.Compile(`\A(?:` + r.RegexString + `)\z`)
	if err != nil {
		return fmt.Errorf("regex rule pattern %q: %w", r.RegexString, err)
	}
	r.re = re
	return nil
}

func (r *RegexRule) Validate(doc *metadata.Document) ValidatorRuleResult {
	return r.evaluate(r, r, doc)
}

func (r *RegexRule) ValidateContent(content *string) ContentValidatorResult {
	if content == nil {
		return ContentValidatorResult{Valid: false, ReceivedValue: receivedNull}
	}
	return ContentValidatorResult{
		Valid:         r.re.MatchString(*content),
		ReceivedValue: truncateReceived(*content),
	}
}
