package validation

import "errors"

var (
	// ErrRuleLoad indicates a persisted rule row could not be deserialized
	// into a concrete rule variant. Aggregate construction aborts; partial
	// rule sets are never used.
	ErrRuleLoad = errors.New("validation: rule load failed")

	// ErrUnknownRuleType indicates the JSON config carried a type
	// discriminator outside the closed variant catalog.
	ErrUnknownRuleType = errors.New("validation: unknown rule type")

	// ErrUnknownQuantifier indicates a persisted quantifier value outside
	// the known set.
	ErrUnknownQuantifier = errors.New("validation: unknown quantifier")

	// ErrRuleApply indicates a rule raised during a run. Fatal to the whole
	// run, not just the current record.
	ErrRuleApply = errors.New("validation: rule application failed")

	// ErrDuplicateRuleID indicates two rules with the same id were added to
	// one validator.
	ErrDuplicateRuleID = errors.New("validation: duplicate rule id")

	// ErrNoSnapshot indicates no eligible snapshot exists for the network a
	// validation run was requested for.
	ErrNoSnapshot = errors.New("validation: no eligible snapshot")
)
