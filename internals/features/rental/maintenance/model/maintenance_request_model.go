// file: internals/features/rental/maintenance/model/maintenance_request_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --- ENUM maintenance_request_priority ----------------------------------------
type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "low"
	MaintenancePriorityMedium MaintenancePriority = "medium"
	MaintenancePriorityHigh   MaintenancePriority = "high"
	MaintenancePriorityUrgent MaintenancePriority = "urgent"
)

// --- ENUM maintenance_request_status ------------------------------------------
// open → in_progress → resolved; open|in_progress → cancelled
type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "open"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusResolved   MaintenanceStatus = "resolved"
	MaintenanceStatusCancelled  MaintenanceStatus = "cancelled"
)

// --- MODEL maintenance_requests ------------------------------------------------
type MaintenanceRequest struct {
	MaintenanceRequestID       uuid.UUID `json:"maintenance_request_id" gorm:"column:maintenance_request_id;type:uuid;primaryKey"`
	MaintenanceRequestLeaseID  uuid.UUID `json:"maintenance_request_lease_id" gorm:"column:maintenance_request_lease_id;type:uuid;not null;index:idx_maintenance_requests_lease"`
	MaintenanceRequestUnitID   uuid.UUID `json:"maintenance_request_unit_id" gorm:"column:maintenance_request_unit_id;type:uuid;not null;index:idx_maintenance_requests_unit"`
	MaintenanceRequestTenantID uuid.UUID `json:"maintenance_request_tenant_id" gorm:"column:maintenance_request_tenant_id;type:uuid;not null;index:idx_maintenance_requests_tenant"`

	MaintenanceRequestTitle       string `json:"maintenance_request_title" gorm:"column:maintenance_request_title;type:text;not null"`
	MaintenanceRequestDescription string `json:"maintenance_request_description" gorm:"column:maintenance_request_description;type:text;not null"`

	MaintenanceRequestPriority MaintenancePriority `json:"maintenance_request_priority" gorm:"column:maintenance_request_priority;type:text;not null;default:medium"`
	MaintenanceRequestStatus   MaintenanceStatus   `json:"maintenance_request_status" gorm:"column:maintenance_request_status;type:text;not null;default:open;index:idx_maintenance_requests_status"`

	// array URL foto (JSONB), diisi layer upload eksternal
	MaintenanceRequestPhotoURLs datatypes.JSON `json:"maintenance_request_photo_urls,omitempty" gorm:"column:maintenance_request_photo_urls;type:jsonb"`

	MaintenanceRequestResolvedAt *time.Time `json:"maintenance_request_resolved_at,omitempty" gorm:"column:maintenance_request_resolved_at"`

	MaintenanceRequestCreatedAt time.Time      `json:"maintenance_request_created_at" gorm:"column:maintenance_request_created_at;not null;autoCreateTime"`
	MaintenanceRequestUpdatedAt time.Time      `json:"maintenance_request_updated_at" gorm:"column:maintenance_request_updated_at;not null;autoUpdateTime"`
	MaintenanceRequestDeletedAt gorm.DeletedAt `json:"-" gorm:"column:maintenance_request_deleted_at;index"`
}

func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}

func (m *MaintenanceRequest) BeforeCreate(tx *gorm.DB) error {
	if m.MaintenanceRequestID == uuid.Nil {
		m.MaintenanceRequestID = uuid.New()
	}
	if m.MaintenanceRequestLeaseID == uuid.Nil || m.MaintenanceRequestUnitID == uuid.Nil {
		return fmt.Errorf("maintenance_request_lease_id and unit_id are required")
	}
	if m.MaintenanceRequestStatus == "" {
		m.MaintenanceRequestStatus = MaintenanceStatusOpen
	}
	if m.MaintenanceRequestPriority == "" {
		m.MaintenanceRequestPriority = MaintenancePriorityMedium
	}
	return nil
}

// CanTransitionTo: state machine status maintenance
func (m *MaintenanceRequest) CanTransitionTo(next MaintenanceStatus) bool {
	switch m.MaintenanceRequestStatus {
	case MaintenanceStatusOpen:
		return next == MaintenanceStatusInProgress || next == MaintenanceStatusResolved || next == MaintenanceStatusCancelled
	case MaintenanceStatusInProgress:
		return next == MaintenanceStatusResolved || next == MaintenanceStatusCancelled
	default:
		return false
	}
}
