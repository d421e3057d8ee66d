package validation

import (
	"github.com/lareferencia/harvester/pkg/metadata"
)

// NodeOccursRule validates how many nodes an XPath expression locates in the
// record's metadata. Unlike field-content rules there is no per-occurrence
// predicate: the quantifier reduces the raw node count.
type NodeOccursRule struct {
	baseRule
	XPathExpression string `json:"xpathExpression"`
}

// NewNodeOccursRule builds a node-occurrence rule.
func NewNodeOccursRule(expr string) *NodeOccursRule {
	return &NodeOccursRule{XPathExpression: expr}
}

func (r *NodeOccursRule) Validate(doc *metadata.Document) ValidatorRuleResult {
	return nodeOccursResult(r, r.quantifier, doc, r.XPathExpression)
}

// NodeOccursConditionalRule applies a node-occurrence check only to records
// matched by a condition expression; records the condition does not match
// are valid by definition.
type NodeOccursConditionalRule struct {
	baseRule
	ConditionXPathExpression string `json:"conditionXpathExpression"`
	XPathExpression          string `json:"xpathExpression"`
}

// NewNodeOccursConditionalRule builds a conditional node-occurrence rule.
func NewNodeOccursConditionalRule(condition, expr string) *NodeOccursConditionalRule {
	return &NodeOccursConditionalRule{ConditionXPathExpression: condition, XPathExpression: expr}
}

func (r *NodeOccursConditionalRule) Validate(doc *metadata.Document) ValidatorRuleResult {
	condition, err := doc.NodesByXPath(r.ConditionXPathExpression)
	if err != nil {
		return ValidatorRuleResult{
			Rule:  r,
			Valid: false,
			Results: []ContentValidatorResult{
				{Valid: false, ReceivedValue: "invalid_condition_expression"},
			},
		}
	}

	if len(condition) == 0 {
		return ValidatorRuleResult{
			Rule:  r,
			Valid: true,
			Results: []ContentValidatorResult{
				{Valid: true, ReceivedValue: "condition_not_matched"},
			},
		}
	}

	return nodeOccursResult(r, r.quantifier, doc, r.XPathExpression)
}

// nodeOccursResult counts located nodes, records one result per node (node
// name as received value) and reduces the count through the quantifier.
func nodeOccursResult(rule ValidatorRule, q Quantifier, doc *metadata.Document, expr string) ValidatorRuleResult {
	nodes, err := doc.NodesByXPath(expr)
	if err != nil {
		return ValidatorRuleResult{
			Rule:  rule,
			Valid: false,
			Results: []ContentValidatorResult{
				{Valid: false, ReceivedValue: "invalid_xpath_expression"},
			},
		}
	}

	results := make([]ContentValidatorResult, 0, len(nodes))
	for _, n := range nodes {
		results = append(results, ContentValidatorResult{Valid: true, ReceivedValue: n.Data})
	}
	if len(nodes) == 0 {
		results = append(results, ContentValidatorResult{Valid: false, ReceivedValue: receivedNoOccurrences})
	}

	return ValidatorRuleResult{
		Rule:    rule,
		Valid:   q.Reduce(len(nodes)),
		Results: results,
	}
}
