package scheduler

import (
	"time"

	"github.com/corebridge/featuregate/timewindow"
)

// GateStatus is the outcome of reconciling one named feature gate's
// settings on the most recent run of a ReconcileJob.
type GateStatus struct {
	Name         string
	Window       *timewindow.TimeWindowSettings
	Err          error
	RunNonce     string
	ReconciledAt time.Time
}

// IsHealthy reports whether the gate's settings parsed and validated
// cleanly on the last reconcile.
func (gs *GateStatus) IsHealthy() bool {
	return gs != nil && gs.Err == nil
}
