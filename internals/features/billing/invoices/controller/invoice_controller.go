// file: internals/features/billing/invoices/controller/invoice_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/billing/billingerr"
	dto "propertiku_backend/internals/features/billing/invoices/dto"
	invoiceModel "propertiku_backend/internals/features/billing/invoices/model"
	invoiceService "propertiku_backend/internals/features/billing/invoices/service"
	paymentService "propertiku_backend/internals/features/billing/payments/service"
	leaseModel "propertiku_backend/internals/features/rental/leases/model"
	helper "propertiku_backend/internals/helpers"
	"propertiku_backend/internals/middlewares/auth"
)

type InvoiceController struct {
	DB        *gorm.DB
	Builder   *invoiceService.InvoiceBuilder
	Payments  *paymentService.PaymentService
	Validator *validator.Validate
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{
		DB:        db,
		Builder:   invoiceService.NewInvoiceBuilder(db),
		Payments:  paymentService.NewPaymentService(db),
		Validator: validator.New(),
	}
}

var invoiceSortColumns = map[string]string{
	"created_at":   "invoice_created_at",
	"issue_date":   "invoice_issue_date",
	"due_date":     "invoice_due_date",
	"total_amount": "invoice_total_amount",
	"status":       "invoice_status",
}

func respondErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, billingerr.HTTPStatus(err), err.Error())
}

// ========== Generate ==========
func (ctl *InvoiceController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateInvoiceDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	landlordID, err := auth.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	var lease leaseModel.LeaseContract
	if err := ctl.DB.WithContext(c.Context()).
		First(&lease, "lease_contract_id = ? AND lease_contract_landlord_id = ?", req.InvoiceLeaseID, landlordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kontrak sewa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	inv, err := ctl.Builder.GenerateInvoice(c.Context(), req.InvoiceLeaseID, req.ToOptions())
	if err != nil {
		return respondErr(c, err)
	}

	return helper.JsonCreated(c, "Tagihan berhasil dibuat", dto.ToInvoiceResponse(*inv))
}

// ========== Get by ID ==========
func (ctl *InvoiceController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invoice_id tidak valid")
	}

	var inv invoiceModel.Invoice
	if err := ctl.DB.WithContext(c.Context()).
		Preload("InvoiceItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_item_sort_order ASC")
		}).
		First(&inv, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Detail tagihan", dto.ToInvoiceResponse(inv))
}

// ========== List ==========
// Landlord melihat semua tagihan kontraknya; filter: lease_id, status, periode due date.
func (ctl *InvoiceController) List(c *fiber.Ctx) error {
	landlordID, err := auth.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	p := helper.ParseFiber(c, "issue_date", "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(c.Context()).
		Model(&invoiceModel.Invoice{}).
		Joins("JOIN lease_contracts ON lease_contracts.lease_contract_id = invoices.invoice_lease_id").
		Where("lease_contracts.lease_contract_landlord_id = ?", landlordID)

	if leaseID := c.Query("lease_id"); leaseID != "" {
		q = q.Where("invoice_lease_id = ?", leaseID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("invoice_status = ?", status)
	}
	if from, ok := helper.ParseDateQuery(c.Query("due_from")); ok {
		q = q.Where("invoice_due_date >= ?", from)
	}
	if to, ok := helper.ParseDateQuery(c.Query("due_to")); ok {
		q = q.Where("invoice_due_date <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var invoices []invoiceModel.Invoice
	if err := q.
		Order(p.OrderClause(invoiceSortColumns, "issue_date")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&invoices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Daftar tagihan", dto.ToInvoiceResponses(invoices), helper.BuildMeta(total, p))
}

// ========== My invoices (tenant) ==========
func (ctl *InvoiceController) MyInvoices(c *fiber.Ctx) error {
	tenantID, err := auth.UserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	p := helper.ParseFiber(c, "issue_date", "desc", helper.DefaultOpts)

	q := ctl.DB.WithContext(c.Context()).
		Model(&invoiceModel.Invoice{}).
		Joins("JOIN lease_contracts ON lease_contracts.lease_contract_id = invoices.invoice_lease_id").
		Where("lease_contracts.lease_contract_tenant_id = ?", tenantID)

	if status := c.Query("status"); status != "" {
		q = q.Where("invoice_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var invoices []invoiceModel.Invoice
	if err := q.
		Preload("InvoiceItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_item_sort_order ASC")
		}).
		Order(p.OrderClause(invoiceSortColumns, "issue_date")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&invoices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Tagihan saya", dto.ToInvoiceResponses(invoices), helper.BuildMeta(total, p))
}

// ========== Cancel ==========
func (ctl *InvoiceController) Cancel(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invoice_id tidak valid")
	}

	inv, err := ctl.Payments.CancelInvoice(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}

	return helper.JsonUpdated(c, "Tagihan dibatalkan", dto.ToInvoiceResponse(*inv))
}
