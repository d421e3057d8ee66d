package validation

import (
	"regexp"

	"github.com/lareferencia/harvester/pkg/domain"
	"github.com/lareferencia/harvester/pkg/metadata"
)

var whitespaceRegex = regexp.MustCompile(`\s`)

// RemoveWhitespaceRule strips every whitespace character from the values of
// a field. Used for identifier-like fields where embedded whitespace is
// always an upstream data defect.
type RemoveWhitespaceRule struct {
	baseTransformerRule
	FieldName string `json:"fieldName"`
}

// NewRemoveWhitespaceRule builds a whitespace stripping rule.
func NewRemoveWhitespaceRule(fieldName string) *RemoveWhitespaceRule {
	return &RemoveWhitespaceRule{FieldName: fieldName}
}

func (r *RemoveWhitespaceRule) Transform(_ *domain.Network, _ *domain.Record, doc *metadata.Document) (bool, error) {
	transformed := false

	for _, node := range doc.FieldNodes(r.FieldName) {
		content := metadata.NodeText(node)
		if content == nil {
			continue
		}
		stripped := whitespaceRegex.ReplaceAllString(*content, "")
		if stripped != *content {
			doc.SetNodeValue(node, stripped)
			transformed = true
		}
	}

	return transformed, nil
}
