package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Rule type discriminators embedded in persisted JSON configs. The catalog
// is closed: unknown discriminators abort rule loading.
const (
	TypeRegexField           = "regex-field-content"
	TypeControlledValueField = "controlled-value-field-content"
	TypeContentLengthField   = "content-length-field-content"
	TypeURLExistField        = "url-exist-field"
	TypeDynamicYearRange     = "dynamic-year-range-field-content"
	TypeNodeOccurs           = "node-occurs"
	TypeNodeOccursCond       = "node-occurs-conditional"

	TypeIdentifierRegex  = "identifier-regex"
	TypeFieldContentXlat = "field-content-translate"
	TypeFieldNameXlat    = "field-name-translate"
	TypeRemoveWhitespace = "remove-whitespace"
	TypeAddRepoName      = "add-repo-name"
	TypeFieldAdd         = "field-add"
	TypeRemoveEmpty      = "remove-empty-occurrences"
	TypeRemoveDuplicates = "remove-duplicate-occurrences"
)

// typeProperty is the JSON property carrying the discriminator.
const typeProperty = "@type"

var validatorFactories = map[string]func() ValidatorRule{
	TypeRegexField:           func() ValidatorRule { return &RegexRule{} },
	TypeControlledValueField: func() ValidatorRule { return &ControlledValueRule{} },
	TypeContentLengthField:   func() ValidatorRule { return &ContentLengthRule{} },
	TypeURLExistField:        func() ValidatorRule { return &URLExistRule{} },
	TypeDynamicYearRange:     func() ValidatorRule { return &DynamicYearRangeRule{} },
	TypeNodeOccurs:           func() ValidatorRule { return &NodeOccursRule{} },
	TypeNodeOccursCond:       func() ValidatorRule { return &NodeOccursConditionalRule{} },
}

var transformerFactories = map[string]func() TransformerRule{
	TypeIdentifierRegex:  func() TransformerRule { return &IdentifierRegexRule{} },
	TypeFieldContentXlat: func() TransformerRule { return &FieldContentTranslateRule{} },
	TypeFieldNameXlat:    func() TransformerRule { return &FieldNameTranslateRule{} },
	TypeRemoveWhitespace: func() TransformerRule { return &RemoveWhitespaceRule{} },
	TypeAddRepoName:      func() TransformerRule { return &AddRepoNameRule{} },
	TypeFieldAdd:         func() TransformerRule { return &FieldAddRule{} },
	TypeRemoveEmpty:      func() TransformerRule { return &RemoveEmptyOccurrencesRule{} },
	TypeRemoveDuplicates: func() TransformerRule { return &RemoveDuplicateOccurrencesRule{} },
}

// discriminators maps concrete rule types back to their discriminator for
// serialization. Built once from the factory tables.
var discriminators = func() map[reflect.Type]string {
	m := make(map[reflect.Type]string)
	for name, f := range validatorFactories {
		m[reflect.TypeOf(f())] = name
	}
	for name, f := range transformerFactories {
		m[reflect.TypeOf(f())] = name
	}
	return m
}()

// compilable is implemented by rule variants that derive internal state
// (compiled regexes, lookup sets) from their JSON config.
type compilable interface {
	compile() error
}

// SerializeRule renders a rule variant's config as JSON with the embedded
// type discriminator. Identity fields (id, mandatory, quantifier, run
// order) are owned by the persistence row and are never part of the blob.
func SerializeRule(rule any) ([]byte, error) {
	name, ok := discriminators[reflect.TypeOf(rule)]
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnknownRuleType, rule)
	}

	raw, err := json.Marshal(rule)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields[typeProperty] = json.RawMessage(fmt.Sprintf("%q", name))

	return json.Marshal(fields)
}

// DeserializeValidatorRule reconstructs a validator rule variant from its
// JSON config. Identity must be overlaid by the caller afterwards.
func DeserializeValidatorRule(config []byte) (ValidatorRule, error) {
	name, err := discriminator(config)
	if err != nil {
		return nil, err
	}
	factory, ok := validatorFactories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleType, name)
	}
	rule := factory()
	if err := decodeInto(rule, config); err != nil {
		return nil, err
	}
	return rule, nil
}

// DeserializeTransformerRule reconstructs a transformer rule variant from
// its JSON config.
func DeserializeTransformerRule(config []byte) (TransformerRule, error) {
	name, err := discriminator(config)
	if err != nil {
		return nil, err
	}
	factory, ok := transformerFactories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleType, name)
	}
	rule := factory()
	if err := decodeInto(rule, config); err != nil {
		return nil, err
	}
	return rule, nil
}

func discriminator(config []byte) (string, error) {
	var probe struct {
		Type string `json:"@type"`
	}
	if err := json.Unmarshal(config, &probe); err != nil {
		return "", fmt.Errorf("rule config: %w", err)
	}
	if probe.Type == "" {
		return "", fmt.Errorf("%w: missing %s property", ErrUnknownRuleType, typeProperty)
	}
	return probe.Type, nil
}

func decodeInto(rule any, config []byte) error {
	if err := json.Unmarshal(config, rule); err != nil {
		return fmt.Errorf("rule config: %w", err)
	}
	if c, ok := rule.(compilable); ok {
		if err := c.compile(); err != nil {
			return err
		}
	}
	return nil
}
