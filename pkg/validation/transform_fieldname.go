package validation

import (
	"github.com/lareferencia/harvester/pkg/domain"
	"github.com/lareferencia/harvester/pkg/metadata"
)

// maxRenamedOccurrences caps the rename loop; runaway records with thousands
// of occurrences of one field are left partially renamed rather than
// dominating the run.
const maxRenamedOccurrences = 100

// FieldNameTranslateRule renames every occurrence of the source field to the
// target field, preserving content.
type FieldNameTranslateRule struct {
	baseTransformerRule
	SourceFieldName string `json:"sourceFieldName"`
	TargetFieldName string `json:"targetFieldName"`
}

// NewFieldNameTranslateRule builds a field rename rule.
func NewFieldNameTranslateRule(source, target string) *FieldNameTranslateRule {
	return &FieldNameTranslateRule{SourceFieldName: source, TargetFieldName: target}
}

func (r *FieldNameTranslateRule) Transform(_ *domain.Network, _ *domain.Record, doc *metadata.Document) (bool, error) {
	transformed := false

	for i, node := range doc.FieldNodes(r.SourceFieldName) {
		if i >= maxRenamedOccurrences {
			break
		}
		var content string
		if text := metadata.NodeText(node); text != nil {
			content = *text
		}
		doc.AddFieldOccurrence(r.TargetFieldName, content)
		doc.RemoveNode(node)
		transformed = true
	}

	return transformed, nil
}
