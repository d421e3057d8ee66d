package validation

import (
	"github.com/lareferencia/harvester/pkg/domain"
	"github.com/lareferencia/harvester/pkg/metadata"
)

// FieldAddRule appends a constant occurrence of a field to every record.
type FieldAddRule struct {
	baseTransformerRule
	FieldName string `json:"fieldName"`
	Value     string `json:"value"`
}

// NewFieldAddRule builds a constant field injection rule.
func NewFieldAddRule(fieldName, value string) *FieldAddRule {
	return &FieldAddRule{FieldName: fieldName, Value: value}
}

func (r *FieldAddRule) Transform(_ *domain.Network, _ *domain.Record, doc *metadata.Document) (bool, error) {
	doc.AddFieldOccurrence(r.FieldName, r.Value)
	return true, nil
}
