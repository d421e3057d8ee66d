package validation

import (
	"github.com/lareferencia/harvester/pkg/domain"
	"github.com/lareferencia/harvester/pkg/metadata"
)

// RemoveEmptyOccurrencesRule drops occurrences of a field whose value is
// missing or empty.
type RemoveEmptyOccurrencesRule struct {
	baseTransformerRule
	FieldName string `json:"fieldName"`
}

// NewRemoveEmptyOccurrencesRule builds an empty-occurrence cleanup rule.
func NewRemoveEmptyOccurrencesRule(fieldName string) *RemoveEmptyOccurrencesRule {
	return &RemoveEmptyOccurrencesRule{FieldName: fieldName}
}

func (r *RemoveEmptyOccurrencesRule) Transform(_ *domain.Network, _ *domain.Record, doc *metadata.Document) (bool, error) {
	transformed := false

	for _, node := range doc.FieldNodes(r.FieldName) {
		content := metadata.NodeText(node)
		if content == nil || *content == "" {
			doc.RemoveNode(node)
			transformed = true
		}
	}

	return transformed, nil
}

// RemoveDuplicateOccurrencesRule drops repeated occurrences of a field,
// keeping the first of each distinct value.
type RemoveDuplicateOccurrencesRule struct {
	baseTransformerRule
	FieldName string `json:"fieldName"`
}

// NewRemoveDuplicateOccurrencesRule builds a duplicate cleanup rule.
func NewRemoveDuplicateOccurrencesRule(fieldName string) *RemoveDuplicateOccurrencesRule {
	return &RemoveDuplicateOccurrencesRule{FieldName: fieldName}
}

func (r *RemoveDuplicateOccurrencesRule) Transform(_ *domain.Network, _ *domain.Record, doc *metadata.Document) (bool, error) {
	transformed := false
	seen := make(map[string]struct{})

	for _, node := range doc.FieldNodes(r.FieldName) {
		content := metadata.NodeText(node)
		if content == nil {
			continue
		}
		if _, dup := seen[*content]; dup {
			doc.RemoveNode(node)
			transformed = true
			continue
		}
		seen[*content] = struct{}{}
	}

	return transformed, nil
}
