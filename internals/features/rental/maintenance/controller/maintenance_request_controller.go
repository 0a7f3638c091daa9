// file: internals/features/rental/maintenance/controller/maintenance_request_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "propertiku_backend/internals/features/rental/maintenance/dto"
	maintenanceModel "propertiku_backend/internals/features/rental/maintenance/model"
	leaseModel "propertiku_backend/internals/features/rental/leases/model"
	helper "propertiku_backend/internals/helpers"
	"propertiku_backend/internals/middlewares/auth"
)

type MaintenanceRequestController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMaintenanceRequestController(db *gorm.DB) *MaintenanceRequestController {
	return &MaintenanceRequestController{
		DB:        db,
		Validator: validator.New(),
	}
}

var maintenanceSortColumns = map[string]string{
	"created_at": "maintenance_request_created_at",
	"priority":   "maintenance_request_priority",
	"status":     "maintenance_request_status",
}

// ========== Create (tenant, di kontrak aktifnya) ==========
func (ctl *MaintenanceRequestController) Create(c *fiber.Ctx) error {
	tenantID, err := auth.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var req dto.MaintenanceRequestCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	var lease leaseModel.LeaseContract
	if err := ctl.DB.WithContext(c.Context()).
		First(&lease, "lease_contract_id = ? AND lease_contract_tenant_id = ?",
			req.MaintenanceRequestLeaseID, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kontrak sewa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !lease.IsActive() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Laporan hanya untuk kontrak aktif")
	}

	m := req.ToModel(lease.LeaseContractUnitID, tenantID)
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Laporan perbaikan dibuat", dto.ToMaintenanceRequestResponse(m))
}

// ========== List (landlord: semua di kontraknya; tenant: miliknya) ==========
func (ctl *MaintenanceRequestController) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(c.Context()).
		Model(&maintenanceModel.MaintenanceRequest{}).
		Joins("JOIN lease_contracts ON lease_contracts.lease_contract_id = maintenance_requests.maintenance_request_lease_id")

	if role, _ := c.Locals("role").(string); role == auth.RoleTenant {
		q = q.Where("maintenance_request_tenant_id = ?", userID)
	} else {
		q = q.Where("lease_contracts.lease_contract_landlord_id = ?", userID)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("maintenance_request_status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		q = q.Where("maintenance_request_priority = ?", priority)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var reqs []maintenanceModel.MaintenanceRequest
	if err := q.
		Order(p.OrderClause(maintenanceSortColumns, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&reqs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Daftar laporan perbaikan", dto.ToMaintenanceRequestResponses(reqs), helper.BuildMeta(total, p))
}

// ========== Update status (landlord) ==========
func (ctl *MaintenanceRequestController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "maintenance_request_id tidak valid")
	}

	landlordID, err := auth.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var req dto.MaintenanceStatusDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	var m maintenanceModel.MaintenanceRequest
	if err := ctl.DB.WithContext(c.Context()).
		Joins("JOIN lease_contracts ON lease_contracts.lease_contract_id = maintenance_requests.maintenance_request_lease_id").
		Where("maintenance_requests.maintenance_request_id = ? AND lease_contracts.lease_contract_landlord_id = ?", id, landlordID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	next := maintenanceModel.MaintenanceStatus(req.MaintenanceRequestStatus)
	if !m.CanTransitionTo(next) {
		return helper.JsonError(c, fiber.StatusConflict, "Transisi status tidak diizinkan")
	}

	m.MaintenanceRequestStatus = next
	if next == maintenanceModel.MaintenanceStatusResolved {
		now := time.Now().UTC()
		m.MaintenanceRequestResolvedAt = &now
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Status laporan diperbarui", dto.ToMaintenanceRequestResponse(m))
}
