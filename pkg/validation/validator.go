package validation

import (
	"fmt"
	"log/slog"

	"github.com/lareferencia/harvester/pkg/metadata"
)

// Validator evaluates a set of rules against a record's metadata. Rule order
// within the set is irrelevant; rule ids must be unique.
type Validator struct {
	rules  []ValidatorRule
	ids    map[int64]struct{}
	logger *slog.Logger
}

// NewValidator builds an empty validator.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		ids:    make(map[int64]struct{}),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithValidatorLogger overrides the logger.
func WithValidatorLogger(l *slog.Logger) ValidatorOption {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// AddRule adds a rule, enforcing id uniqueness within the set.
func (v *Validator) AddRule(rule ValidatorRule) error {
	if _, exists := v.ids[rule.RuleID()]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateRuleID, rule.RuleID())
	}
	v.ids[rule.RuleID()] = struct{}{}
	v.rules = append(v.rules, rule)
	return nil
}

// Rules returns the contained rules.
func (v *Validator) Rules() []ValidatorRule { return v.rules }

// Validate runs every rule against the document and fills result. The
// record-level verdict is the AND over mandatory rule verdicts;
// non-mandatory rule results are retained for statistics only.
//
// The decision that non-mandatory failures never flip record validity is
// deliberately isolated here, in the single `ruleResult.Valid || !mandatory`
// expression, so a policy change touches one line.
func (v *Validator) Validate(doc *metadata.Document, result *ValidatorResult) error {
	result.Reset()

	recordValid := true
	for _, rule := range v.rules {
		ruleResult, err := safeValidate(rule, doc)
		if err != nil {
			return fmt.Errorf("%w: record %s rule %d: %w",
				ErrRuleApply, doc.Identifier(), rule.RuleID(), err)
		}
		result.RulesResults = append(result.RulesResults, ruleResult)
		recordValid = recordValid && (ruleResult.Valid || !rule.Mandatory())
	}

	result.Valid = recordValid
	return nil
}

// safeValidate converts a panicking rule into a rule-apply error instead of
// taking down the worker goroutine.
func safeValidate(rule ValidatorRule, doc *metadata.Document) (result ValidatorRuleResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in rule: %v", r)
		}
	}()
	return rule.Validate(doc), nil
}
