package validation

import (
	"fmt"
	"regexp"

	"github.com/lareferencia/harvester/pkg/domain"
	"github.com/lareferencia/harvester/pkg/metadata"
)

// IdentifierRegexRule rewrites the record identifier through a regex
// search/replace. It always reports a mutation, mirroring the historical
// behavior, since the record identity (not the metadata tree) changed.
type IdentifierRegexRule struct {
	baseTransformerRule
	RegexSearch  string `json:"regexSearch"`
	RegexReplace string `json:"regexReplace"`

	re *regexp.Regexp
}

// NewIdentifierRegexRule builds a compiled identifier rewrite rule.
func NewIdentifierRegexRule(search, replace string) (*IdentifierRegexRule, error) {
	r := &IdentifierRegexRule{RegexSearch: search, RegexReplace: replace}
	if err := r.compile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *IdentifierRegexRule) compile() error {
	re, err := regexp.Compile(r.RegexSearch)
	if err != nil {
		return fmt.Errorf("identifier regex rule pattern %q: %w", r.RegexSearch, err)
	}
	r.re = re
	return nil
}

func (r *IdentifierRegexRule) Transform(_ *domain.Network, record *domain.Record, _ *metadata.Document) (bool, error) {
	record.Identifier = r.re.ReplaceAllString(record.Identifier, r.RegexReplace)
	return true, nil
}
