package validation

import (
	"strings"

	"github.com/lareferencia/harvester/pkg/domain"
	"github.com/lareferencia/harvester/pkg/metadata"
)

// AddRepoNameRule injects repository and institution names into the
// metadata, each as a prefixed occurrence of a configured field
// ("reponame:...", "instname:...", "instacron:..."). Existing prefixed
// occurrences are replaced when the replace switches are set, otherwise the
// new occurrence is appended.
type AddRepoNameRule struct {
	baseTransformerRule

	DoRepoNameAppend  bool   `json:"doRepoNameAppend"`
	DoRepoNameReplace bool   `json:"doRepoNameReplace"`
	RepoNameField     string `json:"repoNameField"`
	RepoNamePrefix    string `json:"repoNamePrefix"`

	DoInstNameAppend  bool   `json:"doInstNameAppend"`
	DoInstNameReplace bool   `json:"doInstNameReplace"`
	InstNameField     string `json:"instNameField"`
	InstNamePrefix    string `json:"instNamePrefix"`
	InstAcronField    string `json:"instAcronField"`
	InstAcronPrefix   string `json:"instAcronPrefix"`
}

// NewAddRepoNameRule builds a name injection rule with the conventional
// prefixes.
func NewAddRepoNameRule(field string) *AddRepoNameRule {
	return &AddRepoNameRule{
		DoRepoNameAppend: true,
		RepoNameField:    field,
		RepoNamePrefix:   "reponame:",
		InstNameField:    field,
		InstNamePrefix:   "instname:",
		InstAcronField:   field,
		InstAcronPrefix:  "instacron:",
	}
}

func (r *AddRepoNameRule) Transform(network *domain.Network, _ *domain.Record, doc *metadata.Document) (bool, error) {
	if network == nil {
		return false, nil
	}

	if r.DoRepoNameAppend {
		appendPrefixedName(doc, r.RepoNameField, r.RepoNamePrefix, network.Name, r.DoRepoNameReplace)
	}
	if r.DoInstNameAppend {
		appendPrefixedName(doc, r.InstNameField, r.InstNamePrefix, network.InstitutionName, r.DoInstNameReplace)
		appendPrefixedName(doc, r.InstAcronField, r.InstAcronPrefix, network.InstitutionAcronym, r.DoInstNameReplace)
	}

	return r.DoRepoNameAppend || r.DoInstNameAppend, nil
}

// appendPrefixedName adds "<prefix><name>" as an occurrence of the field.
// When replace is set, existing occurrences carrying the prefix are removed
// first.
func appendPrefixedName(doc *metadata.Document, field, prefix, name string, replace bool) {
	if replace {
		for _, node := range doc.FieldNodes(field) {
			if text := metadata.NodeText(node); text != nil && strings.HasPrefix(*text, prefix) {
				doc.RemoveNode(node)
			}
		}
	}
	doc.AddFieldOccurrence(field, prefix+name)
}
