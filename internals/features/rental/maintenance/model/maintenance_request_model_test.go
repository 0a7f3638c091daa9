// file: internals/features/rental/maintenance/model/maintenance_request_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaintenanceStatusTransitions(t *testing.T) {
	cases := []struct {
		from MaintenanceStatus
		to   MaintenanceStatus
		ok   bool
	}{
		{MaintenanceStatusOpen, MaintenanceStatusInProgress, true},
		{MaintenanceStatusOpen, MaintenanceStatusResolved, true},
		{MaintenanceStatusOpen, MaintenanceStatusCancelled, true},
		{MaintenanceStatusInProgress, MaintenanceStatusResolved, true},
		{MaintenanceStatusInProgress, MaintenanceStatusCancelled, true},
		{MaintenanceStatusInProgress, MaintenanceStatusOpen, false},
		{MaintenanceStatusResolved, MaintenanceStatusOpen, false},
		{MaintenanceStatusResolved, MaintenanceStatusInProgress, false},
		{MaintenanceStatusCancelled, MaintenanceStatusInProgress, false},
	}
	for _, tc := range cases {
		m := MaintenanceRequest{MaintenanceRequestStatus: tc.from}
		assert.Equal(t, tc.ok, m.CanTransitionTo(tc.to), "%s → %s", tc.from, tc.to)
	}
}
