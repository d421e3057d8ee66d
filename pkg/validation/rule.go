package validation

import (
	"strconv"

	"github.com/lareferencia/harvester/pkg/domain"
	"github.com/lareferencia/harvester/pkg/metadata"
)

// ValidatorRule is one configurable validation check over a record's
// metadata. Implementations never mutate their input.
//
// Identity (id, mandatory, quantifier) is owned by the persistence layer and
// overlaid after deserialization via SetIdentity; the variant's JSON config
// never carries it.
type ValidatorRule interface {
	RuleID() int64
	Mandatory() bool
	Quantifier() Quantifier
	SetIdentity(id int64, mandatory bool, quantifier Quantifier)

	Validate(doc *metadata.Document) ValidatorRuleResult
}

// TransformerRule is one configurable mutation over a record's metadata. It
// reports whether it changed anything. RunOrder is overlaid from the
// persistence row, like validator identity.
type TransformerRule interface {
	RuleID() int64
	RunOrder() int
	SetIdentity(id int64, runOrder int)

	Transform(network *domain.Network, record *domain.Record, doc *metadata.Document) (bool, error)
}

// ContentValidator is the per-occurrence predicate a field-content rule
// evaluates. A nil content means the occurrence had no value.
type ContentValidator interface {
	ValidateContent(content *string) ContentValidatorResult
}

// baseRule carries validator rule identity.
type baseRule struct {
	id         int64
	mandatory  bool
	quantifier Quantifier
}

func (b *baseRule) RuleID() int64          { return b.id }
func (b *baseRule) Mandatory() bool        { return b.mandatory }
func (b *baseRule) Quantifier() Quantifier { return b.quantifier }

func (b *baseRule) SetIdentity(id int64, mandatory bool, quantifier Quantifier) {
	b.id = id
	b.mandatory = mandatory
	b.quantifier = quantifier
}

// baseTransformerRule carries transformer rule identity.
type baseTransformerRule struct {
	id       int64
	runOrder int
}

func (b *baseTransformerRule) RuleID() int64 { return b.id }
func (b *baseTransformerRule) RunOrder() int { return b.runOrder }

func (b *baseTransformerRule) SetIdentity(id int64, runOrder int) {
	b.id = id
	b.runOrder = runOrder
}

// FieldRule is the shared selector config of field-content validator rules.
type FieldRule struct {
	baseRule
	Fieldname string `json:"fieldname"`
}

// evaluate runs the per-occurrence predicate over every occurrence of the
// selected field and reduces the valid-occurrence count through the rule's
// quantifier. All occurrence results are surfaced regardless of the
// rule-level verdict; zero occurrences still record a synthetic diagnostic.
func (f *FieldRule) evaluate(rule ValidatorRule, cv ContentValidator, doc *metadata.Document) ValidatorRuleResult {
	occurrences := doc.FieldOccurrences(f.Fieldname)

	results := make([]ContentValidatorResult, 0, len(occurrences))
	validCount := 0
	for _, occ := range occurrences {
		r := cv.ValidateContent(occ)
		results = append(results, r)
		if r.Valid {
			validCount++
		}
	}

	if len(occurrences) == 0 {
		results = append(results, ContentValidatorResult{
			Valid:         false,
			ReceivedValue: receivedNoOccurrences,
		})
	}

	return ValidatorRuleResult{
		Rule:    rule,
		Valid:   f.quantifier.Reduce(validCount),
		Results: results,
	}
}

func ruleIDString(r ValidatorRule) string {
	if r == nil {
		return "?"
	}
	return strconv.FormatInt(r.RuleID(), 10)
}
