package domain

import "time"

// SnapshotStatus is the lifecycle status of one harvesting run.
type SnapshotStatus string

const (
	SnapshotStatusInitialized      SnapshotStatus = "initialized"
	SnapshotStatusHarvesting       SnapshotStatus = "harvesting"
	SnapshotStatusHarvested        SnapshotStatus = "harvesting_finished_valid"
	SnapshotStatusHarvestingFailed SnapshotStatus = "harvesting_finished_error"
	SnapshotStatusValidating       SnapshotStatus = "processing"
	SnapshotStatusValid            SnapshotStatus = "valid"
	SnapshotStatusValidationFailed SnapshotStatus = "processing_finished_error"
	SnapshotStatusDeleted          SnapshotStatus = "deleted"
)

// Snapshot is one harvesting run's record set for a network, carrying its
// own lifecycle status and aggregate counts.
type Snapshot struct {
	ID        int64
	NetworkID int64
	Status    SnapshotStatus

	StartTime time.Time
	EndTime   time.Time

	// Size is the number of harvested records; ValidSize and
	// TransformedSize are maintained by the validation pass.
	Size            int
	ValidSize       int
	TransformedSize int
}
