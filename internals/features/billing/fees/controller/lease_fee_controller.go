// file: internals/features/billing/fees/controller/lease_fee_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "propertiku_backend/internals/features/billing/fees/dto"
	feeModel "propertiku_backend/internals/features/billing/fees/model"
	leaseModel "propertiku_backend/internals/features/rental/leases/model"
	helper "propertiku_backend/internals/helpers"
	"propertiku_backend/internals/middlewares/auth"
)

type LeaseFeeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLeaseFeeController(db *gorm.DB) *LeaseFeeController {
	return &LeaseFeeController{
		DB:        db,
		Validator: validator.New(),
	}
}

// whitelist kolom sort
var leaseFeeSortColumns = map[string]string{
	"created_at": "lease_fee_created_at",
	"name":       "lease_fee_name",
	"type":       "lease_fee_type",
}

// guard: lease harus milik landlord yang login
func (ctl *LeaseFeeController) leaseOwnedBy(c *fiber.Ctx, leaseID uuid.UUID) (*leaseModel.LeaseContract, error) {
	landlordID, err := auth.UserID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	var lease leaseModel.LeaseContract
	if err := ctl.DB.WithContext(c.Context()).
		First(&lease, "lease_contract_id = ? AND lease_contract_landlord_id = ?", leaseID, landlordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kontrak sewa tidak ditemukan")
		}
		return nil, err
	}
	return &lease, nil
}

// ========== Create ==========
func (ctl *LeaseFeeController) Create(c *fiber.Ctx) error {
	var req dto.LeaseFeeCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	if _, err := ctl.leaseOwnedBy(c, req.LeaseFeeLeaseID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	fee := dto.LeaseFeeCreateDTOToModel(req)
	if err := ctl.DB.WithContext(c.Context()).Create(&fee).Error; err != nil {
		// pelanggaran varian fixed/variable ditolak di BeforeSave
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	return helper.JsonCreated(c, "Biaya sewa berhasil dibuat", dto.ToLeaseFeeResponse(fee))
}

// ========== Patch ==========
func (ctl *LeaseFeeController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_fee_id tidak valid")
	}

	var fee feeModel.LeaseFee
	if err := ctl.DB.WithContext(c.Context()).
		First(&fee, "lease_fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Biaya sewa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if _, err := ctl.leaseOwnedBy(c, fee.LeaseFeeLeaseID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.LeaseFeeUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	dto.ApplyLeaseFeeUpdate(&fee, req)
	if err := ctl.DB.WithContext(c.Context()).Save(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	return helper.JsonUpdated(c, "Biaya sewa berhasil diperbarui", dto.ToLeaseFeeResponse(fee))
}

// ========== Delete (soft) ==========
func (ctl *LeaseFeeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_fee_id tidak valid")
	}

	var fee feeModel.LeaseFee
	if err := ctl.DB.WithContext(c.Context()).
		First(&fee, "lease_fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Biaya sewa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if _, err := ctl.leaseOwnedBy(c, fee.LeaseFeeLeaseID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Biaya sewa berhasil dihapus", fiber.Map{"lease_fee_id": id})
}

// ========== List by lease ==========
func (ctl *LeaseFeeController) ListByLease(c *fiber.Ctx) error {
	leaseID, err := helper.ParseUUIDParam(c, "lease_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_contract_id tidak valid")
	}

	if _, err := ctl.leaseOwnedBy(c, leaseID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.ParseFiber(c, "created_at", "asc", helper.AdminOpts)

	q := ctl.DB.WithContext(c.Context()).
		Model(&feeModel.LeaseFee{}).
		Where("lease_fee_lease_id = ?", leaseID)

	// ?type=fixed|variable, ?active=true|false
	if t := c.Query("type"); t == string(feeModel.LeaseFeeTypeFixed) || t == string(feeModel.LeaseFeeTypeVariable) {
		q = q.Where("lease_fee_type = ?", t)
	}
	if a := c.Query("active"); a == "true" || a == "false" {
		q = q.Where("lease_fee_is_active = ?", a == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var fees []feeModel.LeaseFee
	if err := q.
		Order(p.OrderClause(leaseFeeSortColumns, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&fees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Daftar biaya sewa", dto.ToLeaseFeeResponses(fees), helper.BuildMeta(total, p))
}
