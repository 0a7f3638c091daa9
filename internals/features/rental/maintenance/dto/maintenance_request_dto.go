// file: internals/features/rental/maintenance/dto/maintenance_request_dto.go
package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	maintenanceModel "propertiku_backend/internals/features/rental/maintenance/model"
)

////////////////////////////////////////////////////////////////////////////////
// REQUEST DTO
////////////////////////////////////////////////////////////////////////////////

type MaintenanceRequestCreateDTO struct {
	MaintenanceRequestLeaseID uuid.UUID `json:"maintenance_request_lease_id" validate:"required"`

	MaintenanceRequestTitle       string `json:"maintenance_request_title" validate:"required,min=3,max=120"`
	MaintenanceRequestDescription string `json:"maintenance_request_description" validate:"required,min=10"`

	MaintenanceRequestPriority  string   `json:"maintenance_request_priority" validate:"omitempty,oneof=low medium high urgent"`
	MaintenanceRequestPhotoURLs []string `json:"maintenance_request_photo_urls,omitempty" validate:"omitempty,max=5,dive,url"`
}

type MaintenanceStatusDTO struct {
	MaintenanceRequestStatus string `json:"maintenance_request_status" validate:"required,oneof=in_progress resolved cancelled"`
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSE DTO
////////////////////////////////////////////////////////////////////////////////

type MaintenanceRequestResponse struct {
	MaintenanceRequestID       uuid.UUID `json:"maintenance_request_id"`
	MaintenanceRequestLeaseID  uuid.UUID `json:"maintenance_request_lease_id"`
	MaintenanceRequestUnitID   uuid.UUID `json:"maintenance_request_unit_id"`
	MaintenanceRequestTenantID uuid.UUID `json:"maintenance_request_tenant_id"`

	MaintenanceRequestTitle       string `json:"maintenance_request_title"`
	MaintenanceRequestDescription string `json:"maintenance_request_description"`

	MaintenanceRequestPriority string `json:"maintenance_request_priority"`
	MaintenanceRequestStatus   string `json:"maintenance_request_status"`

	MaintenanceRequestPhotoURLs []string `json:"maintenance_request_photo_urls,omitempty"`

	MaintenanceRequestResolvedAt *time.Time `json:"maintenance_request_resolved_at,omitempty"`
	MaintenanceRequestCreatedAt  time.Time  `json:"maintenance_request_created_at"`
	MaintenanceRequestUpdatedAt  time.Time  `json:"maintenance_request_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func (d MaintenanceRequestCreateDTO) ToModel(unitID, tenantID uuid.UUID) maintenanceModel.MaintenanceRequest {
	m := maintenanceModel.MaintenanceRequest{
		MaintenanceRequestLeaseID:     d.MaintenanceRequestLeaseID,
		MaintenanceRequestUnitID:      unitID,
		MaintenanceRequestTenantID:    tenantID,
		MaintenanceRequestTitle:       d.MaintenanceRequestTitle,
		MaintenanceRequestDescription: d.MaintenanceRequestDescription,
		MaintenanceRequestPriority:    maintenanceModel.MaintenancePriorityMedium,
		MaintenanceRequestStatus:      maintenanceModel.MaintenanceStatusOpen,
	}
	if d.MaintenanceRequestPriority != "" {
		m.MaintenanceRequestPriority = maintenanceModel.MaintenancePriority(d.MaintenanceRequestPriority)
	}
	if len(d.MaintenanceRequestPhotoURLs) > 0 {
		if raw, err := sonic.Marshal(d.MaintenanceRequestPhotoURLs); err == nil {
			m.MaintenanceRequestPhotoURLs = datatypes.JSON(raw)
		}
	}
	return m
}

func ToMaintenanceRequestResponse(m maintenanceModel.MaintenanceRequest) MaintenanceRequestResponse {
	resp := MaintenanceRequestResponse{
		MaintenanceRequestID:          m.MaintenanceRequestID,
		MaintenanceRequestLeaseID:     m.MaintenanceRequestLeaseID,
		MaintenanceRequestUnitID:      m.MaintenanceRequestUnitID,
		MaintenanceRequestTenantID:    m.MaintenanceRequestTenantID,
		MaintenanceRequestTitle:       m.MaintenanceRequestTitle,
		MaintenanceRequestDescription: m.MaintenanceRequestDescription,
		MaintenanceRequestPriority:    string(m.MaintenanceRequestPriority),
		MaintenanceRequestStatus:      string(m.MaintenanceRequestStatus),
		MaintenanceRequestResolvedAt:  m.MaintenanceRequestResolvedAt,
		MaintenanceRequestCreatedAt:   m.MaintenanceRequestCreatedAt,
		MaintenanceRequestUpdatedAt:   m.MaintenanceRequestUpdatedAt,
	}
	if len(m.MaintenanceRequestPhotoURLs) > 0 {
		var urls []string
		if err := sonic.Unmarshal(m.MaintenanceRequestPhotoURLs, &urls); err == nil {
			resp.MaintenanceRequestPhotoURLs = urls
		}
	}
	return resp
}

func ToMaintenanceRequestResponses(list []maintenanceModel.MaintenanceRequest) []MaintenanceRequestResponse {
	out := make([]MaintenanceRequestResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMaintenanceRequestResponse(m))
	}
	return out
}
