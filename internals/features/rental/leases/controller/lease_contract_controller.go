// file: internals/features/rental/leases/controller/lease_contract_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "propertiku_backend/internals/features/rental/leases/dto"
	leaseModel "propertiku_backend/internals/features/rental/leases/model"
	propertyModel "propertiku_backend/internals/features/rental/properties/model"
	helper "propertiku_backend/internals/helpers"
	"propertiku_backend/internals/middlewares/auth"
)

type LeaseContractController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLeaseContractController(db *gorm.DB) *LeaseContractController {
	return &LeaseContractController{
		DB:        db,
		Validator: validator.New(),
	}
}

var leaseSortColumns = map[string]string{
	"created_at": "lease_contract_created_at",
	"start_date": "lease_contract_start_date",
	"end_date":   "lease_contract_end_date",
	"status":     "lease_contract_status",
}

func (ctl *LeaseContractController) ownedLease(c *fiber.Ctx, id uuid.UUID) (*leaseModel.LeaseContract, error) {
	landlordID, err := auth.UserID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	var lease leaseModel.LeaseContract
	if err := ctl.DB.WithContext(c.Context()).
		First(&lease, "lease_contract_id = ? AND lease_contract_landlord_id = ?", id, landlordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kontrak sewa tidak ditemukan")
		}
		return nil, err
	}
	return &lease, nil
}

func leaseErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// ========== Create (status awal: draft) ==========
func (ctl *LeaseContractController) Create(c *fiber.Ctx) error {
	landlordID, err := auth.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var req dto.LeaseContractCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	// unit harus ada, milik property milik landlord, dan belum terisi
	var unit propertyModel.Unit
	if err := ctl.DB.WithContext(c.Context()).
		Joins("JOIN properties ON properties.property_id = units.unit_property_id").
		Where("units.unit_id = ? AND properties.property_landlord_id = ?", req.LeaseContractUnitID, landlordID).
		First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Unit tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if unit.UnitPropertyID != req.LeaseContractPropertyID {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Unit bukan bagian dari properti tersebut")
	}
	if unit.UnitStatus == propertyModel.UnitStatusOccupied {
		return helper.JsonError(c, fiber.StatusConflict, "Unit sudah terisi")
	}

	lease := req.ToModel(landlordID)
	if err := ctl.DB.WithContext(c.Context()).Create(&lease).Error; err != nil {
		// invariant billing_day / cycle / discount dijaga di BeforeSave
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	return helper.JsonCreated(c, "Kontrak sewa berhasil dibuat", dto.ToLeaseContractResponse(lease))
}

// ========== Patch (hanya draft & active) ==========
func (ctl *LeaseContractController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_contract_id tidak valid")
	}

	lease, err := ctl.ownedLease(c, id)
	if err != nil {
		return leaseErr(c, err)
	}
	if lease.LeaseContractStatus != leaseModel.LeaseStatusDraft &&
		lease.LeaseContractStatus != leaseModel.LeaseStatusActive {
		return helper.JsonError(c, fiber.StatusConflict, "Kontrak pada status ini tidak bisa diubah")
	}

	var req dto.LeaseContractUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	dto.ApplyLeaseContractUpdate(lease, req)
	if err := ctl.DB.WithContext(c.Context()).Save(lease).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	return helper.JsonUpdated(c, "Kontrak sewa berhasil diperbarui", dto.ToLeaseContractResponse(*lease))
}

// ========== Get by ID ==========
func (ctl *LeaseContractController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_contract_id tidak valid")
	}

	lease, err := ctl.ownedLease(c, id)
	if err != nil {
		return leaseErr(c, err)
	}

	return helper.JsonOK(c, "Detail kontrak sewa", dto.ToLeaseContractResponse(*lease))
}

// ========== List ==========
func (ctl *LeaseContractController) List(c *fiber.Ctx) error {
	landlordID, err := auth.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(c.Context()).
		Model(&leaseModel.LeaseContract{}).
		Where("lease_contract_landlord_id = ?", landlordID)

	if status := c.Query("status"); status != "" {
		q = q.Where("lease_contract_status = ?", status)
	}
	if propertyID := c.Query("property_id"); propertyID != "" {
		q = q.Where("lease_contract_property_id = ?", propertyID)
	}
	if unitID := c.Query("unit_id"); unitID != "" {
		q = q.Where("lease_contract_unit_id = ?", unitID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var leases []leaseModel.LeaseContract
	if err := q.
		Order(p.OrderClause(leaseSortColumns, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&leases).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Daftar kontrak sewa", dto.ToLeaseContractResponses(leases), helper.BuildMeta(total, p))
}

// ========== MyLeases (sisi tenant) ==========
func (ctl *LeaseContractController) MyLeases(c *fiber.Ctx) error {
	tenantID, err := auth.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctl.DB.WithContext(c.Context()).
		Model(&leaseModel.LeaseContract{}).
		Where("lease_contract_tenant_id = ?", tenantID)

	if status := c.Query("status"); status != "" {
		q = q.Where("lease_contract_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var leases []leaseModel.LeaseContract
	if err := q.
		Order(p.OrderClause(leaseSortColumns, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&leases).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Daftar kontrak sewa saya", dto.ToLeaseContractResponses(leases), helper.BuildMeta(total, p))
}

// ========== Activate (draft → active, unit jadi occupied) ==========
func (ctl *LeaseContractController) Activate(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_contract_id tidak valid")
	}

	lease, err := ctl.ownedLease(c, id)
	if err != nil {
		return leaseErr(c, err)
	}
	if lease.LeaseContractStatus != leaseModel.LeaseStatusDraft {
		return helper.JsonError(c, fiber.StatusConflict, "Hanya kontrak draft yang bisa diaktifkan")
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// unit tidak boleh direbut kontrak aktif lain
		var activeOthers int64
		if err := tx.Model(&leaseModel.LeaseContract{}).
			Where("lease_contract_unit_id = ? AND lease_contract_status = ? AND lease_contract_id <> ?",
				lease.LeaseContractUnitID, leaseModel.LeaseStatusActive, lease.LeaseContractID).
			Count(&activeOthers).Error; err != nil {
			return err
		}
		if activeOthers > 0 {
			return fiber.NewError(fiber.StatusConflict, "Unit sudah punya kontrak aktif")
		}

		lease.LeaseContractStatus = leaseModel.LeaseStatusActive
		if err := tx.Save(lease).Error; err != nil {
			return err
		}
		return tx.Model(&propertyModel.Unit{}).
			Where("unit_id = ?", lease.LeaseContractUnitID).
			Update("unit_status", propertyModel.UnitStatusOccupied).Error
	})
	if err != nil {
		return leaseErr(c, err)
	}

	log.Printf("[LEASE] ✅ kontrak %s aktif", lease.LeaseContractID)
	return helper.JsonUpdated(c, "Kontrak sewa diaktifkan", dto.ToLeaseContractResponse(*lease))
}

// ========== Terminate (active → terminated, unit kembali vacant) ==========
func (ctl *LeaseContractController) Terminate(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_contract_id tidak valid")
	}

	lease, err := ctl.ownedLease(c, id)
	if err != nil {
		return leaseErr(c, err)
	}
	if lease.LeaseContractStatus != leaseModel.LeaseStatusActive {
		return helper.JsonError(c, fiber.StatusConflict, "Hanya kontrak aktif yang bisa diakhiri")
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		lease.LeaseContractStatus = leaseModel.LeaseStatusTerminated
		if err := tx.Save(lease).Error; err != nil {
			return err
		}
		return tx.Model(&propertyModel.Unit{}).
			Where("unit_id = ?", lease.LeaseContractUnitID).
			Update("unit_status", propertyModel.UnitStatusVacant).Error
	})
	if err != nil {
		return leaseErr(c, err)
	}

	log.Printf("[LEASE] 🛑 kontrak %s diakhiri", lease.LeaseContractID)
	return helper.JsonUpdated(c, "Kontrak sewa diakhiri", dto.ToLeaseContractResponse(*lease))
}

// ========== Renew (active → renewed, kontrak baru menyambung) ==========
func (ctl *LeaseContractController) Renew(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_contract_id tidak valid")
	}

	lease, err := ctl.ownedLease(c, id)
	if err != nil {
		return leaseErr(c, err)
	}
	if lease.LeaseContractStatus != leaseModel.LeaseStatusActive {
		return helper.JsonError(c, fiber.StatusConflict, "Hanya kontrak aktif yang bisa diperpanjang")
	}

	var req dto.RenewLeaseDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}
	if !req.LeaseContractEndDate.After(lease.LeaseContractEndDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Tanggal akhir baru harus setelah akhir kontrak lama")
	}

	next := *lease
	next.LeaseContractID = uuid.Nil
	next.LeaseContractStartDate = lease.LeaseContractEndDate.AddDate(0, 0, 1)
	next.LeaseContractEndDate = req.LeaseContractEndDate
	next.LeaseContractStatus = leaseModel.LeaseStatusActive
	next.LeaseContractCreatedAt = time.Time{}
	next.LeaseContractUpdatedAt = time.Time{}
	if req.LeaseContractRentAmount != nil {
		next.LeaseContractRentAmount = *req.LeaseContractRentAmount
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		lease.LeaseContractStatus = leaseModel.LeaseStatusRenewed
		if err := tx.Save(lease).Error; err != nil {
			return err
		}
		return tx.Create(&next).Error
	})
	if err != nil {
		return leaseErr(c, err)
	}

	log.Printf("[LEASE] 🔁 kontrak %s diperpanjang → %s", lease.LeaseContractID, next.LeaseContractID)
	return helper.JsonCreated(c, "Kontrak sewa diperpanjang", dto.ToLeaseContractResponse(next))
}
