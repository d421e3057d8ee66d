package validation

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/lareferencia/harvester/pkg/domain"
	"github.com/lareferencia/harvester/pkg/metadata"
)

// Transformer applies mutation rules to a record's metadata in ascending run
// order; ties keep insertion order.
type Transformer struct {
	rules  []TransformerRule
	logger *slog.Logger

	now func() time.Time
}

// NewTransformer builds an empty transformer.
func NewTransformer(opts ...TransformerOption) *Transformer {
	t := &Transformer{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TransformerOption configures a Transformer.
type TransformerOption func(*Transformer)

// WithTransformerLogger overrides the logger.
func WithTransformerLogger(l *slog.Logger) TransformerOption {
	return func(t *Transformer) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithClock overrides the datestamp source, primarily for tests.
func WithClock(now func() time.Time) TransformerOption {
	return func(t *Transformer) {
		if now != nil {
			t.now = now
		}
	}
}

// AddRule adds a rule and re-establishes ascending run order. The sort is
// stable: rules sharing a run order keep their insertion order.
func (t *Transformer) AddRule(rule TransformerRule) {
	t.rules = append(t.rules, rule)
	sort.SliceStable(t.rules, func(i, j int) bool {
		return t.rules[i].RunOrder() < t.rules[j].RunOrder()
	})
}

// Rules returns the contained rules in application order.
func (t *Transformer) Rules() []TransformerRule { return t.rules }

// Transform applies every rule in run order and reports whether any rule
// mutated the metadata. When something mutated, the document datestamp is
// set exactly once, after the full pass. Any rule error aborts the whole
// pass wrapped with rule and record identity.
func (t *Transformer) Transform(network *domain.Network, record *domain.Record, doc *metadata.Document) (bool, error) {
	anyTransformation := false

	for _, rule := range t.rules {
		t.logger.Debug("applying transformer rule",
			slog.Int64("rule_id", rule.RuleID()),
			slog.String("record", record.Identifier))

		mutated, err := safeTransform(rule, network, record, doc)
		if err != nil {
			return false, fmt.Errorf("%w: record %d (%s) rule %d: %w",
				ErrRuleApply, record.ID, record.Identifier, rule.RuleID(), err)
		}
		anyTransformation = anyTransformation || mutated
	}

	if anyTransformation {
		doc.SetDatestamp(t.now())
	}

	return anyTransformation, nil
}

func safeTransform(rule TransformerRule, network *domain.Network, record *domain.Record, doc *metadata.Document) (mutated bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in rule: %v", r)
		}
	}()
	return rule.Transform(network, record, doc)
}
