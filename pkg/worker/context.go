package worker

import (
	"fmt"

	"github.com/lareferencia/harvester/pkg/domain"
)

// RunningContext bundles the parameters of one worker invocation. It is
// immutable for the duration of the run.
type RunningContext struct {
	Network     *domain.Network
	Incremental bool
}

// NewRunningContext builds a context for a full or incremental run over the
// given network.
func NewRunningContext(network *domain.Network, incremental bool) *RunningContext {
	return &RunningContext{Network: network, Incremental: incremental}
}

// ID returns the scheduling identity of the run, unique per network.
func (rc *RunningContext) ID() string {
	return fmt.Sprintf("NETWORK::%d", rc.Network.ID)
}

// String renders the context for logs.
func (rc *RunningContext) String() string {
	return fmt.Sprintf("%s(id:%d)", rc.Network.Acronym, rc.Network.ID)
}
