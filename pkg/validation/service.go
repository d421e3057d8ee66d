package validation

import (
	"fmt"
	"log/slog"
)

// ValidatorRuleRow is a persisted validator rule definition. Identity lives
// in the row columns; variant configuration lives in the JSON blob.
type ValidatorRuleRow struct {
	ID          int64
	Name        string
	Description string
	Mandatory   bool
	Quantifier  Quantifier
	JSONConfig  []byte
}

// TransformerRuleRow is a persisted transformer rule definition.
type TransformerRuleRow struct {
	ID          int64
	Name        string
	Description string
	RunOrder    int
	JSONConfig  []byte
}

// BuildValidator assembles a validator from persisted rule rows, overlaying
// each row's identity onto the decoded variant. Any row that fails to decode
// aborts the whole build: a validator running a partial rule set would
// silently mark invalid records valid.
func BuildValidator(rows []ValidatorRuleRow, opts ...ValidatorOption) (*Validator, error) {
	validator := NewValidator(opts...)

	for _, row := range rows {
		rule, err := DeserializeValidatorRule(row.JSONConfig)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d (%s): %w", ErrRuleLoad, row.ID, row.Name, err)
		}
		rule.SetIdentity(row.ID, row.Mandatory, row.Quantifier)

		if err := validator.AddRule(rule); err != nil {
			return nil, fmt.Errorf("%w: rule %d (%s): %w", ErrRuleLoad, row.ID, row.Name, err)
		}

		validator.logger.Debug("loaded validator rule",
			slog.Int64("rule_id", row.ID),
			slog.String("name", row.Name),
			slog.Bool("mandatory", row.Mandatory),
			slog.String("quantifier", string(row.Quantifier)))
	}

	return validator, nil
}

// BuildTransformer assembles a transformer from persisted rule rows. Rules
// are applied in ascending run order regardless of row order.
func BuildTransformer(rows []TransformerRuleRow, opts ...TransformerOption) (*Transformer, error) {
	transformer := NewTransformer(opts...)

	for _, row := range rows {
		rule, err := DeserializeTransformerRule(row.JSONConfig)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d (%s): %w", ErrRuleLoad, row.ID, row.Name, err)
		}
		rule.SetIdentity(row.ID, row.RunOrder)
		transformer.AddRule(rule)

		transformer.logger.Debug("loaded transformer rule",
			slog.Int64("rule_id", row.ID),
			slog.String("name", row.Name),
			slog.Int("run_order", row.RunOrder))
	}

	return transformer, nil
}
