package domain

import "time"

// RecordStatus is the validation status of a harvested record.
type RecordStatus string

const (
	RecordStatusUntested RecordStatus = "untested"
	RecordStatusValid    RecordStatus = "valid"
	RecordStatusInvalid  RecordStatus = "invalid"
	RecordStatusDeleted  RecordStatus = "deleted"
)

// Record is one harvested metadata item. OriginalMetadataHash addresses the
// metadata as harvested; PublishedMetadataHash addresses the (possibly
// transformed) metadata that validation decided to publish.
type Record struct {
	ID         int64
	SnapshotID int64
	Identifier string
	Datestamp  time.Time
	Status     RecordStatus

	OriginalMetadataHash  string
	PublishedMetadataHash string

	Transformed bool
}
