package metadata

import "errors"

var (
	// ErrParse indicates the raw metadata could not be parsed as XML.
	// Treated as fatal by the validation worker.
	ErrParse = errors.New("metadata: parse failed")

	// ErrInvalidXPath indicates a rule-supplied XPath expression does not
	// compile.
	ErrInvalidXPath = errors.New("metadata: invalid xpath expression")
)
