// file: internals/features/billing/invoices/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	invoiceModel "propertiku_backend/internals/features/billing/invoices/model"
	invoiceService "propertiku_backend/internals/features/billing/invoices/service"
)

////////////////////////////////////////////////////////////////////////////////
// GENERATE INVOICE — DTO
////////////////////////////////////////////////////////////////////////////////

type GenerateInvoiceDTO struct {
	InvoiceLeaseID uuid.UUID `json:"invoice_lease_id" validate:"required"`

	// periode eksplisit (berpasangan); kosong = diturunkan dari lease
	InvoicePeriodStart *time.Time `json:"invoice_period_start,omitempty"`
	InvoicePeriodEnd   *time.Time `json:"invoice_period_end,omitempty"`

	// fixed fee opsional yang dipilih ikut ditagih
	IncludeOptionalFeeIDs []uuid.UUID `json:"include_optional_fee_ids,omitempty"`

	// pass-through dari tax policy eksternal
	InvoiceTaxAmount *decimal.Decimal `json:"invoice_tax_amount,omitempty"`

	// due-date policy eksternal (default: period start)
	InvoiceDueDate *time.Time `json:"invoice_due_date,omitempty"`
}

func (d GenerateInvoiceDTO) ToOptions() invoiceService.GenerateOptions {
	return invoiceService.GenerateOptions{
		PeriodStart:           d.InvoicePeriodStart,
		PeriodEnd:             d.InvoicePeriodEnd,
		IncludeOptionalFeeIDs: d.IncludeOptionalFeeIDs,
		TaxAmount:             d.InvoiceTaxAmount,
		DueDate:               d.InvoiceDueDate,
	}
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSES
////////////////////////////////////////////////////////////////////////////////

type InvoiceItemResponse struct {
	InvoiceItemID          uuid.UUID       `json:"invoice_item_id"`
	InvoiceItemType        string          `json:"invoice_item_type"`
	InvoiceItemDescription string          `json:"invoice_item_description"`
	InvoiceItemFeeID       *uuid.UUID      `json:"invoice_item_fee_id,omitempty"`
	InvoiceItemPeriodStart *time.Time      `json:"invoice_item_period_start,omitempty"`
	InvoiceItemPeriodEnd   *time.Time      `json:"invoice_item_period_end,omitempty"`
	InvoiceItemQuantity    decimal.Decimal `json:"invoice_item_quantity"`
	InvoiceItemUnitPrice   decimal.Decimal `json:"invoice_item_unit_price"`
	InvoiceItemAmount      decimal.Decimal `json:"invoice_item_amount"`
	InvoiceItemSortOrder   int16           `json:"invoice_item_sort_order"`
}

type InvoiceResponse struct {
	InvoiceID      uuid.UUID `json:"invoice_id"`
	InvoiceLeaseID uuid.UUID `json:"invoice_lease_id"`
	InvoiceNumber  string    `json:"invoice_number"`

	InvoicePeriodStart time.Time `json:"invoice_period_start"`
	InvoicePeriodEnd   time.Time `json:"invoice_period_end"`
	InvoiceIssueDate   time.Time `json:"invoice_issue_date"`
	InvoiceDueDate     time.Time `json:"invoice_due_date"`

	InvoiceSubtotal       decimal.Decimal `json:"invoice_subtotal"`
	InvoiceDiscountAmount decimal.Decimal `json:"invoice_discount_amount"`
	InvoiceTaxAmount      decimal.Decimal `json:"invoice_tax_amount"`
	InvoiceTotalAmount    decimal.Decimal `json:"invoice_total_amount"`

	InvoiceStatus string `json:"invoice_status"`

	InvoicePaidAmount    decimal.Decimal `json:"invoice_paid_amount"`
	InvoicePaidAt        *time.Time      `json:"invoice_paid_at,omitempty"`
	InvoicePaymentMethod *string         `json:"invoice_payment_method,omitempty"`

	InvoiceItems []InvoiceItemResponse `json:"invoice_items,omitempty"`

	InvoiceCreatedAt time.Time `json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time `json:"invoice_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToInvoiceItemResponse(m invoiceModel.InvoiceItem) InvoiceItemResponse {
	return InvoiceItemResponse{
		InvoiceItemID:          m.InvoiceItemID,
		InvoiceItemType:        string(m.InvoiceItemType),
		InvoiceItemDescription: m.InvoiceItemDescription,
		InvoiceItemFeeID:       m.InvoiceItemFeeID,
		InvoiceItemPeriodStart: m.InvoiceItemPeriodStart,
		InvoiceItemPeriodEnd:   m.InvoiceItemPeriodEnd,
		InvoiceItemQuantity:    m.InvoiceItemQuantity,
		InvoiceItemUnitPrice:   m.InvoiceItemUnitPrice,
		InvoiceItemAmount:      m.InvoiceItemAmount,
		InvoiceItemSortOrder:   m.InvoiceItemSortOrder,
	}
}

func ToInvoiceResponse(m invoiceModel.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(m.InvoiceItems))
	for _, it := range m.InvoiceItems {
		items = append(items, ToInvoiceItemResponse(it))
	}
	return InvoiceResponse{
		InvoiceID:             m.InvoiceID,
		InvoiceLeaseID:        m.InvoiceLeaseID,
		InvoiceNumber:         m.InvoiceNumber,
		InvoicePeriodStart:    m.InvoicePeriodStart,
		InvoicePeriodEnd:      m.InvoicePeriodEnd,
		InvoiceIssueDate:      m.InvoiceIssueDate,
		InvoiceDueDate:        m.InvoiceDueDate,
		InvoiceSubtotal:       m.InvoiceSubtotal,
		InvoiceDiscountAmount: m.InvoiceDiscountAmount,
		InvoiceTaxAmount:      m.InvoiceTaxAmount,
		InvoiceTotalAmount:    m.InvoiceTotalAmount,
		InvoiceStatus:         string(m.InvoiceStatus),
		InvoicePaidAmount:     m.InvoicePaidAmount,
		InvoicePaidAt:         m.InvoicePaidAt,
		InvoicePaymentMethod:  m.InvoicePaymentMethod,
		InvoiceItems:          items,
		InvoiceCreatedAt:      m.InvoiceCreatedAt,
		InvoiceUpdatedAt:      m.InvoiceUpdatedAt,
	}
}

func ToInvoiceResponses(list []invoiceModel.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToInvoiceResponse(m))
	}
	return out
}
