package validation

import "strings"

// maxReceivedLength bounds the stored copy of a validated value; the full
// value is still used for the actual check.
const maxReceivedLength = 100

// receivedNull is reported when a field occurrence has no value at all.
const receivedNull = "NULL"

// receivedNoOccurrences is the synthetic diagnostic recorded when a rule's
// selector located no occurrences.
const receivedNoOccurrences = "no_occurrences_found"

// ContentValidatorResult is the outcome of checking one field occurrence.
type ContentValidatorResult struct {
	Valid         bool   `json:"valid"`
	ReceivedValue string `json:"receivedValue"`
}

// truncateReceived shortens a value for display without affecting what was
// validated. The limit counts characters, not bytes, so multi-byte values
// are never cut mid-rune.
func truncateReceived(content string) string {
	if len(content) <= maxReceivedLength {
		return content
	}
	runes := []rune(content)
	if len(runes) <= maxReceivedLength {
		return content
	}
	return string(runes[:maxReceivedLength]) + "..."
}

// ValidatorRuleResult is the outcome of one rule applied to one record.
type ValidatorRuleResult struct {
	Rule    ValidatorRule
	Valid   bool
	Results []ContentValidatorResult
}

// ValidatorResult is the outcome of a full validation pass over one record.
// It is resettable so hot loops can reuse one value across records.
type ValidatorResult struct {
	Valid        bool
	Transformed  bool
	MetadataHash string
	RulesResults []ValidatorRuleResult
}

// Reset clears the result for reuse on the next record.
func (r *ValidatorResult) Reset() {
	r.Valid = false
	r.Transformed = false
	r.MetadataHash = ""
	r.RulesResults = r.RulesResults[:0]
}

// ContentDetails renders every examined occurrence as
// "ruleID:receivedValue" entries joined by ";", used by detailed diagnose.
func (r *ValidatorResult) ContentDetails() string {
	var sb strings.Builder
	for _, rr := range r.RulesResults {
		for _, cr := range rr.Results {
			if sb.Len() > 0 {
				sb.WriteByte(';')
			}
			sb.WriteString(ruleIDString(rr.Rule))
			sb.WriteByte(':')
			sb.WriteString(cr.ReceivedValue)
		}
	}
	return sb.String()
}
