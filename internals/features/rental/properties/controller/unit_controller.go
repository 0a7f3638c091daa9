// file: internals/features/rental/properties/controller/unit_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "propertiku_backend/internals/features/rental/properties/dto"
	propertyModel "propertiku_backend/internals/features/rental/properties/model"
	helper "propertiku_backend/internals/helpers"
)

type UnitController struct {
	DB         *gorm.DB
	Properties *PropertyController
	Validator  *validator.Validate
}

func NewUnitController(db *gorm.DB) *UnitController {
	return &UnitController{
		DB:         db,
		Properties: NewPropertyController(db),
		Validator:  validator.New(),
	}
}

var unitSortColumns = map[string]string{
	"created_at":  "unit_created_at",
	"unit_number": "unit_number",
	"rent":        "unit_base_rent_amount",
	"status":      "unit_status",
}

// ========== Create (nested di property) ==========
func (ctl *UnitController) Create(c *fiber.Ctx) error {
	propertyID, err := helper.ParseUUIDParam(c, "property_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "property_id tidak valid")
	}
	if _, err := ctl.Properties.ownedProperty(c, propertyID); err != nil {
		return propertyErr(c, err)
	}

	var req dto.UnitCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}
	if !req.UnitBaseRentAmount.IsPositive() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "unit_base_rent_amount harus lebih dari 0")
	}

	unit := req.ToModel(propertyID)
	if err := ctl.DB.WithContext(c.Context()).Create(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor unit sudah dipakai di properti ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Unit berhasil dibuat", dto.ToUnitResponse(unit))
}

// ========== Patch ==========
func (ctl *UnitController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "unit_id tidak valid")
	}

	var unit propertyModel.Unit
	if err := ctl.DB.WithContext(c.Context()).
		First(&unit, "unit_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Unit tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if _, err := ctl.Properties.ownedProperty(c, unit.UnitPropertyID); err != nil {
		return propertyErr(c, err)
	}

	var req dto.UnitUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	dto.ApplyUnitUpdate(&unit, req)
	if err := ctl.DB.WithContext(c.Context()).Save(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor unit sudah dipakai di properti ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Unit berhasil diperbarui", dto.ToUnitResponse(unit))
}

// ========== Delete (soft) ==========
func (ctl *UnitController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "unit_id tidak valid")
	}

	var unit propertyModel.Unit
	if err := ctl.DB.WithContext(c.Context()).
		First(&unit, "unit_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Unit tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if _, err := ctl.Properties.ownedProperty(c, unit.UnitPropertyID); err != nil {
		return propertyErr(c, err)
	}
	if unit.UnitStatus == propertyModel.UnitStatusOccupied {
		return helper.JsonError(c, fiber.StatusConflict, "Unit masih terisi, akhiri kontrak dulu")
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&unit).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Unit berhasil dihapus", fiber.Map{"unit_id": id})
}

// ========== List by property ==========
func (ctl *UnitController) ListByProperty(c *fiber.Ctx) error {
	propertyID, err := helper.ParseUUIDParam(c, "property_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "property_id tidak valid")
	}
	if _, err := ctl.Properties.ownedProperty(c, propertyID); err != nil {
		return propertyErr(c, err)
	}

	p := helper.ParseFiber(c, "unit_number", "asc", helper.AdminOpts)

	q := ctl.DB.WithContext(c.Context()).
		Model(&propertyModel.Unit{}).
		Where("unit_property_id = ?", propertyID)

	if status := c.Query("status"); status != "" {
		q = q.Where("unit_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var units []propertyModel.Unit
	if err := q.
		Order(p.OrderClause(unitSortColumns, "unit_number")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&units).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Daftar unit", dto.ToUnitResponses(units), helper.BuildMeta(total, p))
}
