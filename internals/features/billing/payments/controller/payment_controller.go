// file: internals/features/billing/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/billing/billingerr"
	invoiceDTO "propertiku_backend/internals/features/billing/invoices/dto"
	invoiceModel "propertiku_backend/internals/features/billing/invoices/model"
	dto "propertiku_backend/internals/features/billing/payments/dto"
	paymentService "propertiku_backend/internals/features/billing/payments/service"
	helper "propertiku_backend/internals/helpers"
)

type PaymentController struct {
	DB        *gorm.DB
	Service   *paymentService.PaymentService
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:        db,
		Service:   paymentService.NewPaymentService(db),
		Validator: validator.New(),
	}
}

func respondErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, billingerr.HTTPStatus(err), err.Error())
}

// ========== Pay (manual: cash / transfer) ==========
func (ctl *PaymentController) Pay(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invoice_id tidak valid")
	}

	var req dto.PayInvoiceDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	inv, err := ctl.Service.PayInvoice(c.Context(), req.ToInput(id))
	if err != nil {
		return respondErr(c, err)
	}

	return helper.JsonUpdated(c, "Pembayaran tercatat", invoiceDTO.ToInvoiceResponse(*inv))
}

// ========== Snap checkout (tenant, via Midtrans) ==========
func (ctl *PaymentController) SnapCheckout(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invoice_id tidak valid")
	}

	var req dto.SnapCheckoutDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsMap(err))
	}

	var inv invoiceModel.Invoice
	if err := ctl.DB.WithContext(c.Context()).
		First(&inv, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !inv.Payable() {
		return helper.JsonError(c, fiber.StatusConflict, "Tagihan tidak bisa dibayar pada status ini")
	}

	token, redirectURL, err := paymentService.GenerateSnapToken(&inv, req.CustomerName, req.CustomerEmail)
	if err != nil {
		log.Printf("[PAYMENT] ❌ gagal membuat snap token %s: %v", inv.InvoiceNumber, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat sesi pembayaran")
	}

	return helper.JsonOK(c, "Sesi pembayaran dibuat", dto.SnapCheckoutResponse{
		InvoiceNumber: inv.InvoiceNumber,
		SnapToken:     token,
		RedirectURL:   redirectURL,
	})
}

// ========== Webhook Midtrans ==========
// Notifikasi status transaksi; idempotent — notifikasi duplikat tidak menggandakan pembayaran.
func (ctl *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := ctl.Service.HandlePaymentWebhook(c.Context(), body); err != nil {
		log.Printf("[PAYMENT] ❌ webhook gagal diproses: %v", err)
		return respondErr(c, err)
	}

	return helper.JsonOK(c, "Notifikasi diproses", fiber.Map{"status": "ok"})
}
