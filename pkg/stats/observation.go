package stats

import (
	"time"

	"github.com/google/uuid"
)

// Observation is the validation outcome of one record within a snapshot,
// as stored in the statistics index.
type Observation struct {
	ID             string    `json:"id"`
	SnapshotID     int64     `json:"snapshot_id"`
	NetworkAcronym string    `json:"network_acronym"`
	RecordID       int64     `json:"record_id"`
	Identifier     string    `json:"identifier"`
	Datestamp      time.Time `json:"record_datestamp"`
	HarvestedAt    time.Time `json:"harvest_datestamp"`

	IsValid       bool `json:"is_valid"`
	IsTransformed bool `json:"is_transformed"`

	ValidRuleIDs   []int64 `json:"valid_rules"`
	InvalidRuleIDs []int64 `json:"invalid_rules"`

	// InvalidOccurrences maps a failing rule id to the occurrence values
	// that failed it. Populated only under detailed diagnose mode.
	InvalidOccurrences map[string][]string `json:"invalid_occurrences,omitempty"`
}

// NewObservation allocates an observation with a fresh unique id.
func NewObservation() Observation {
	return Observation{ID: uuid.NewString()}
}
