package store

import (
	"context"
	"fmt"

	"github.com/lareferencia/harvester/pkg/validation"
)

// ValidatorRules returns the rule rows of a validator in id order.
func (s *Store) ValidatorRules(ctx context.Context, validatorID int64) ([]validation.ValidatorRuleRow, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, mandatory, quantifier, json_config
		FROM validator_rules
		WHERE validator_id = $1
		ORDER BY id`, validatorID)
	if err != nil {
		return nil, fmt.Errorf("querying validator %d rules: %w", validatorID, err)
	}
	defer rows.Close()

	var result []validation.ValidatorRuleRow
	for rows.Next() {
		var row validation.ValidatorRuleRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Description,
			&row.Mandatory, &row.Quantifier, &row.JSONConfig); err != nil {
			return nil, fmt.Errorf("scanning validator rule: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// TransformerRules returns the rule rows of a transformer in run order.
func (s *Store) TransformerRules(ctx context.Context, transformerID int64) ([]validation.TransformerRuleRow, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, run_order, json_config
		FROM transformer_rules
		WHERE transformer_id = $1
		ORDER BY run_order, id`, transformerID)
	if err != nil {
		return nil, fmt.Errorf("querying transformer %d rules: %w", transformerID, err)
	}
	defer rows.Close()

	var result []validation.TransformerRuleRow
	for rows.Next() {
		var row validation.TransformerRuleRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Description,
			&row.RunOrder, &row.JSONConfig); err != nil {
			return nil, fmt.Errorf("scanning transformer rule: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
