// file: internals/features/rental/properties/controller/property_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "propertiku_backend/internals/features/rental/properties/dto"
	propertyModel "propertiku_backend/internals/features/rental/properties/model"
	helper "propertiku_backend/internals/helpers"
	"propertiku_backend/internals/middlewares/auth"
)

type PropertyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPropertyController(db *gorm.DB) *PropertyController {
	return &PropertyController{
		DB:        db,
		Validator: validator.New(),
	}
}

var propertySortColumns = map[string]string{
	"created_at": "property_created_at",
	"name":       "property_name",
	"city":       "property_city",
}

// ambil property milik landlord yang login, 404 kalau bukan miliknya
func (ctl *PropertyController) ownedProperty(c *fiber.Ctx, id uuid.UUID) (*propertyModel.Property, error) {
	landlordID, err := auth.UserID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	var prop propertyModel.Property
	if err := ctl.DB.WithContext(c.Context()).
		First(&prop, "property_id = ? AND property_landlord_id = ?", id, landlordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Properti tidak ditemukan")
		}
		return nil, err
	}
	return &prop, nil
}

func propertyErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// ========== Create ==========
func (ctl *PropertyController) Create(c *fiber.Ctx) error {
	landlordID, err := auth.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var req dto.PropertyCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	prop := req.ToModel(landlordID)
	if err := ctl.DB.WithContext(c.Context()).Create(&prop).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Properti berhasil dibuat", dto.ToPropertyResponse(prop))
}

// ========== Patch ==========
func (ctl *PropertyController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "property_id tidak valid")
	}

	prop, err := ctl.ownedProperty(c, id)
	if err != nil {
		return propertyErr(c, err)
	}

	var req dto.PropertyUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	dto.ApplyPropertyUpdate(prop, req)
	if err := ctl.DB.WithContext(c.Context()).Save(prop).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Properti berhasil diperbarui", dto.ToPropertyResponse(*prop))
}

// ========== Delete (soft) ==========
func (ctl *PropertyController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "property_id tidak valid")
	}

	prop, err := ctl.ownedProperty(c, id)
	if err != nil {
		return propertyErr(c, err)
	}

	// tolak kalau masih ada unit terisi
	var occupied int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&propertyModel.Unit{}).
		Where("unit_property_id = ? AND unit_status = ?", id, propertyModel.UnitStatusOccupied).
		Count(&occupied).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if occupied > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Properti masih memiliki unit terisi")
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(prop).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Properti berhasil dihapus", fiber.Map{"property_id": id})
}

// ========== Get by ID ==========
func (ctl *PropertyController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "property_id tidak valid")
	}

	prop, err := ctl.ownedProperty(c, id)
	if err != nil {
		return propertyErr(c, err)
	}

	return helper.JsonOK(c, "Detail properti", dto.ToPropertyResponse(*prop))
}

// ========== List ==========
func (ctl *PropertyController) List(c *fiber.Ctx) error {
	landlordID, err := auth.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(c.Context()).
		Model(&propertyModel.Property{}).
		Where("property_landlord_id = ?", landlordID)

	if city := c.Query("city"); city != "" {
		q = q.Where("LOWER(property_city) = LOWER(?)", city)
	}
	if a := c.Query("active"); a == "true" || a == "false" {
		q = q.Where("property_is_active = ?", a == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var props []propertyModel.Property
	if err := q.
		Order(p.OrderClause(propertySortColumns, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&props).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Daftar properti", dto.ToPropertyResponses(props), helper.BuildMeta(total, p))
}
