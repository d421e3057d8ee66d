package domain

import "strconv"

// Property names consumed by the validation pass. They are free-form
// per-network switches configured out-of-band; absence means false.
const (
	PropValidate         = "VALIDATE"
	PropTransform        = "TRANSFORM"
	PropDiagnose         = "DIAGNOSE"
	PropDetailedDiagnose = "DETAILED_DIAGNOSE"
)

// Network is a configured source repository to harvest from.
type Network struct {
	ID                 int64
	Name               string
	Acronym            string
	InstitutionName    string
	InstitutionAcronym string

	// Rule set references; nil means the network has no validator or
	// transformer configured and the corresponding pass is skipped.
	ValidatorID            *int64
	TransformerID          *int64
	SecondaryTransformerID *int64

	// Properties holds named configuration switches such as VALIDATE or
	// DETAILED_DIAGNOSE.
	Properties map[string]string
}

// BooleanProperty reports whether the named property is set to a truthy
// value. Missing and unparsable values are false.
func (n *Network) BooleanProperty(name string) bool {
	if n == nil || n.Properties == nil {
		return false
	}
	v, ok := n.Properties[name]
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}
