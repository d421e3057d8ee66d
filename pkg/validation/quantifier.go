package validation

import "fmt"

// Quantifier maps an occurrence count to a rule-level pass/fail verdict.
//
// For field-content rules the count is the number of valid occurrences; for
// node-occurrence rules it is the number of nodes the selector located.
type Quantifier string

const (
	QuantifierOneOnly    Quantifier = "ONE_ONLY"
	QuantifierOneOrMore  Quantifier = "ONE_OR_MORE"
	QuantifierZeroOrMore Quantifier = "ZERO_OR_MORE"
	QuantifierZeroOnly   Quantifier = "ZERO_ONLY"
	QuantifierAll        Quantifier = "ALL"
)

// ParseQuantifier validates a persisted quantifier value.
func ParseQuantifier(s string) (Quantifier, error) {
	q := Quantifier(s)
	switch q {
	case QuantifierOneOnly, QuantifierOneOrMore, QuantifierZeroOrMore, QuantifierZeroOnly, QuantifierAll:
		return q, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuantifier, s)
}

// Reduce computes the rule-level verdict for n counted occurrences.
//
// ALL is deliberately "at least one": the historical implementation shipped
// that behavior and downstream rule sets depend on it, so it is preserved
// as-is rather than reinterpreted as "every occurrence".
func (q Quantifier) Reduce(n int) bool {
	switch q {
	case QuantifierOneOnly:
		return n == 1
	case QuantifierOneOrMore:
		return n >= 1
	case QuantifierZeroOrMore:
		return true
	case QuantifierZeroOnly:
		return n == 0
	case QuantifierAll:
		return n > 0
	default:
		return false
	}
}
