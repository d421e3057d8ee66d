package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/lareferencia/harvester/pkg/metadata"
)

// DefaultYearRegex extracts a leading 3-4 digit year from field content.
const DefaultYearRegex = "^([0-9]{3,4})"

// DynamicYearRangeRule validates that a year extracted from field content
// falls within [currentYear-lowerLimit, currentYear+upperLimit]. The window
// is dynamic: it moves with the wall clock, so rule sets do not need yearly
// edits.
type DynamicYearRangeRule struct {
	FieldRule
	RegexString string `json:"regexString"`
	LowerLimit  int    `json:"lowerLimit"`
	UpperLimit  int    `json:"upperLimit"`

	re *regexp.Regexp
}

// NewDynamicYearRangeRule builds a year-range rule; an empty pattern falls
// back to DefaultYearRegex.
func NewDynamicYearRangeRule(fieldname, pattern string, lowerLimit, upperLimit int) (*DynamicYearRangeRule, error) {
	r := &DynamicYearRangeRule{RegexString: pattern, LowerLimit: lowerLimit, UpperLimit: upperLimit}
	r.Fieldname = fieldname
	if err := r.compile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *DynamicYearRangeRule) compile() error {
	if r.RegexString == "" {
		r.RegexString = DefaultYearRegex
	}
	re, err := regexp.Compile(r.RegexString)
	if err != nil {
		return fmt.Errorf("year range rule pattern %q: %w", r.RegexString, err)
	}
	r.re = re
	return nil
}

func (r *DynamicYearRangeRule) Validate(doc *metadata.Document) ValidatorRuleResult {
	return r.evaluate(r, r, doc)
}

func (r *DynamicYearRangeRule) ValidateContent(content *string) ContentValidatorResult {
	if content == nil || *content == "" {
		return ContentValidatorResult{Valid: false, ReceivedValue: "NULL or Empty"}
	}

	match := r.re.FindString(*content)
	year, err := strconv.Atoi(match)
	if match == "" || err != nil {
		return ContentValidatorResult{Valid: false, ReceivedValue: "Regex not parsing a valid year value"}
	}

	currentYear := time.Now().Year()
	startYear := currentYear - r.LowerLimit
	endYear := currentYear + r.UpperLimit

	return ContentValidatorResult{
		Valid:         year >= startYear && year <= endYear,
		ReceivedValue: strconv.Itoa(year),
	}
}
