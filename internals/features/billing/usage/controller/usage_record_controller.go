// file: internals/features/billing/usage/controller/usage_record_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/billing/billingerr"
	dto "propertiku_backend/internals/features/billing/usage/dto"
	usageModel "propertiku_backend/internals/features/billing/usage/model"
	usageService "propertiku_backend/internals/features/billing/usage/service"
	leaseModel "propertiku_backend/internals/features/rental/leases/model"
	helper "propertiku_backend/internals/helpers"
	"propertiku_backend/internals/middlewares/auth"
)

type UsageRecordController struct {
	DB        *gorm.DB
	Service   *usageService.UsageService
	Validator *validator.Validate
}

func NewUsageRecordController(db *gorm.DB) *UsageRecordController {
	return &UsageRecordController{
		DB:        db,
		Service:   usageService.NewUsageService(db),
		Validator: validator.New(),
	}
}

var usageSortColumns = map[string]string{
	"created_at":   "usage_record_created_at",
	"period_month": "usage_record_period_month",
}

func respondErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, billingerr.HTTPStatus(err), err.Error())
}

// ========== Record (single) ==========
func (ctl *UsageRecordController) Record(c *fiber.Ctx) error {
	var req dto.RecordUsageDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	rec, err := ctl.Service.RecordUsage(c.Context(), req.ToInput())
	if err != nil {
		return respondErr(c, err)
	}

	return helper.JsonCreated(c, "Catatan pemakaian tersimpan", dto.ToUsageRecordResponse(*rec))
}

// ========== Record (bulk, per-entri) ==========
// Satu entri gagal tidak membatalkan entri lain; hasil dilaporkan per indeks.
func (ctl *UsageRecordController) BulkRecord(c *fiber.Ctx) error {
	var req dto.BulkRecordUsageDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	inputs := make([]usageService.RecordUsageInput, 0, len(req.Entries))
	for _, e := range req.Entries {
		inputs = append(inputs, e.ToInput())
	}

	results := ctl.Service.BulkRecordUsage(c.Context(), inputs)
	return helper.JsonOK(c, "Bulk pemakaian diproses", dto.ToBulkEntryResults(results))
}

// ========== List by lease ==========
func (ctl *UsageRecordController) ListByLease(c *fiber.Ctx) error {
	leaseID, err := helper.ParseUUIDParam(c, "lease_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_contract_id tidak valid")
	}

	landlordID, err := auth.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var lease leaseModel.LeaseContract
	if err := ctl.DB.WithContext(c.Context()).
		First(&lease, "lease_contract_id = ? AND lease_contract_landlord_id = ?", leaseID, landlordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kontrak sewa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.ParseFiber(c, "period_month", "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(c.Context()).
		Model(&usageModel.UsageRecord{}).
		Where("usage_record_lease_id = ?", leaseID)

	if month := c.Query("period_month"); month != "" {
		if !helper.ValidPeriodMonth(month) {
			return helper.JsonError(c, fiber.StatusBadRequest, "period_month harus format YYYY-MM")
		}
		q = q.Where("usage_record_period_month = ?", month)
	}
	if feeID := c.Query("fee_id"); feeID != "" {
		q = q.Where("usage_record_fee_id = ?", feeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var records []usageModel.UsageRecord
	if err := q.
		Order(p.OrderClause(usageSortColumns, "period_month")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Daftar catatan pemakaian", dto.ToUsageRecordResponses(records), helper.BuildMeta(total, p))
}
