// file: internals/features/billing/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	paymentService "propertiku_backend/internals/features/billing/payments/service"
)

////////////////////////////////////////////////////////////////////////////////
// PAY INVOICE — DTO
////////////////////////////////////////////////////////////////////////////////

type PayInvoiceDTO struct {
	// nol valid untuk invoice bertotal nol (diskon penuh); negatif ditolak service
	InvoicePaidAmount    decimal.Decimal `json:"invoice_paid_amount"`
	InvoicePaymentMethod string          `json:"invoice_payment_method" validate:"required,oneof=cash transfer midtrans"`

	// kosong = waktu server
	InvoicePaidAt *time.Time `json:"invoice_paid_at,omitempty"`
}

func (d PayInvoiceDTO) ToInput(invoiceID uuid.UUID) paymentService.PayInvoiceInput {
	method := d.InvoicePaymentMethod
	return paymentService.PayInvoiceInput{
		InvoiceID:     invoiceID,
		PaidAmount:    d.InvoicePaidAmount,
		PaymentMethod: &method,
		PaidAt:        d.InvoicePaidAt,
	}
}

////////////////////////////////////////////////////////////////////////////////
// MIDTRANS SNAP CHECKOUT — DTO
////////////////////////////////////////////////////////////////////////////////

type SnapCheckoutDTO struct {
	CustomerName  string `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
}

type SnapCheckoutResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	SnapToken     string `json:"snap_token"`
	RedirectURL   string `json:"redirect_url"`
}
