// Package domain defines the harvesting entities shared across the module:
// networks (configured source repositories), snapshots (one harvesting run's
// record set) and records (individual metadata items with a lifecycle status).
//
// These types carry no behavior beyond small accessors; persistence lives in
// pkg/store and processing logic in pkg/validation and pkg/worker.
package domain
