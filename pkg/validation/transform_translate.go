package validation

import (
	"strings"

	"github.com/lareferencia/harvester/pkg/domain"
	"github.com/lareferencia/harvester/pkg/metadata"
)

// Translation is one search/replace pair of a content translation table.
type Translation struct {
	Search  string `json:"search"`
	Replace string `json:"replace"`
}

// FieldContentTranslateRule rewrites field values through a lookup table.
// Values are read from the test field; translated values are written to the
// write field (which may be the same). Matching is case-insensitive.
type FieldContentTranslateRule struct {
	baseTransformerRule
	TestFieldName     string        `json:"testFieldName"`
	WriteFieldName    string        `json:"writeFieldName"`
	ReplaceOccurrence bool          `json:"replaceOccurrence"`
	Translations      []Translation `json:"translationArray"`

	table map[string]string
}

// NewFieldContentTranslateRule builds a translation rule. When replace is
// true the matched occurrence is rewritten in place; otherwise the
// translated value is added as a new occurrence of the write field.
func NewFieldContentTranslateRule(testField, writeField string, replace bool, translations []Translation) *FieldContentTranslateRule {
	r := &FieldContentTranslateRule{
		TestFieldName:     testField,
		WriteFieldName:    writeField,
		ReplaceOccurrence: replace,
		Translations:      translations,
	}
	_ = r.compile()
	return r
}

func (r *FieldContentTranslateRule) compile() error {
	r.table = make(map[string]string, len(r.Translations))
	for _, t := range r.Translations {
		r.table[strings.ToLower(t.Search)] = t.Replace
	}
	return nil
}

func (r *FieldContentTranslateRule) Transform(_ *domain.Network, _ *domain.Record, doc *metadata.Document) (bool, error) {
	transformed := false

	for _, node := range doc.FieldNodes(r.TestFieldName) {
		content := metadata.NodeText(node)
		if content == nil {
			continue
		}
		replacement, ok := r.table[strings.ToLower(*content)]
		if !ok {
			continue
		}

		if r.ReplaceOccurrence && r.WriteFieldName == r.TestFieldName {
			if *content != replacement {
				doc.SetNodeValue(node, replacement)
				transformed = true
			}
			continue
		}

		doc.AddFieldOccurrence(r.WriteFieldName, replacement)
		if r.ReplaceOccurrence {
			doc.RemoveNode(node)
		}
		transformed = true
	}

	return transformed, nil
}
