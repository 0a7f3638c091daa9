// file: internals/features/billing/invoices/model/invoice_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- ENUM invoice_status -----------------------------------------------------
// unpaid →(full payment) paid; unpaid →(due lewat) overdue;
// overdue →(full payment) paid; unpaid|overdue →(cancel) cancelled.
// paid & cancelled terminal.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid    InvoiceStatus = "unpaid"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// --- ENUM invoice_item_type --------------------------------------------------
type InvoiceItemType string

const (
	InvoiceItemTypeRent        InvoiceItemType = "rent"
	InvoiceItemTypeFixedFee    InvoiceItemType = "fixed_fee"
	InvoiceItemTypeVariableFee InvoiceItemType = "variable_fee"
	InvoiceItemTypeDiscount    InvoiceItemType = "discount"
)

// --- MODEL invoices ----------------------------------------------------------
// Dibuat atomik bersama item-itemnya oleh invoice builder; setelah itu immutable
// kecuali field pembayaran (paid_*, status) dan cancel.
type Invoice struct {
	InvoiceID      uuid.UUID `json:"invoice_id" gorm:"column:invoice_id;type:uuid;primaryKey"`
	InvoiceLeaseID uuid.UUID `json:"invoice_lease_id" gorm:"column:invoice_lease_id;type:uuid;not null;index:idx_invoices_lease"`

	InvoiceNumber string `json:"invoice_number" gorm:"column:invoice_number;type:varchar(32);not null;uniqueIndex:uq_invoices_number"`

	InvoicePeriodStart time.Time `json:"invoice_period_start" gorm:"column:invoice_period_start;type:date;not null"`
	InvoicePeriodEnd   time.Time `json:"invoice_period_end" gorm:"column:invoice_period_end;type:date;not null"`

	InvoiceIssueDate time.Time `json:"invoice_issue_date" gorm:"column:invoice_issue_date;type:date;not null"`
	InvoiceDueDate   time.Time `json:"invoice_due_date" gorm:"column:invoice_due_date;type:date;not null"`

	InvoiceSubtotal       decimal.Decimal `json:"invoice_subtotal" gorm:"column:invoice_subtotal;type:numeric(12,2);not null"`
	InvoiceDiscountAmount decimal.Decimal `json:"invoice_discount_amount" gorm:"column:invoice_discount_amount;type:numeric(12,2);not null"`
	InvoiceTaxAmount      decimal.Decimal `json:"invoice_tax_amount" gorm:"column:invoice_tax_amount;type:numeric(12,2);not null"`
	InvoiceTotalAmount    decimal.Decimal `json:"invoice_total_amount" gorm:"column:invoice_total_amount;type:numeric(12,2);not null"`

	InvoiceStatus InvoiceStatus `json:"invoice_status" gorm:"column:invoice_status;type:text;not null;default:unpaid;index:idx_invoices_status"`

	// akumulatif lintas partial payment
	InvoicePaidAmount    decimal.Decimal `json:"invoice_paid_amount" gorm:"column:invoice_paid_amount;type:numeric(12,2);not null"`
	InvoicePaidAt        *time.Time      `json:"invoice_paid_at,omitempty" gorm:"column:invoice_paid_at"`
	InvoicePaymentMethod *string         `json:"invoice_payment_method,omitempty" gorm:"column:invoice_payment_method;type:text"`

	InvoiceItems []InvoiceItem `json:"invoice_items,omitempty" gorm:"foreignKey:InvoiceItemInvoiceID;references:InvoiceID"`

	InvoiceCreatedAt time.Time      `json:"invoice_created_at" gorm:"column:invoice_created_at;not null;autoCreateTime"`
	InvoiceUpdatedAt time.Time      `json:"invoice_updated_at" gorm:"column:invoice_updated_at;not null;autoUpdateTime"`
	InvoiceDeletedAt gorm.DeletedAt `json:"-" gorm:"column:invoice_deleted_at;index"`
}

func (Invoice) TableName() string {
	return "invoices"
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.InvoiceID == uuid.Nil {
		i.InvoiceID = uuid.New()
	}
	if i.InvoiceLeaseID == uuid.Nil {
		return fmt.Errorf("invoice_lease_id is required")
	}
	if i.InvoiceStatus == "" {
		i.InvoiceStatus = InvoiceStatusUnpaid
	}
	return nil
}

// Payable: state yang masih boleh menerima pembayaran
func (i *Invoice) Payable() bool {
	return i.InvoiceStatus == InvoiceStatusUnpaid || i.InvoiceStatus == InvoiceStatusOverdue
}

// Cancellable: state yang masih boleh dibatalkan
func (i *Invoice) Cancellable() bool {
	return i.InvoiceStatus == InvoiceStatusUnpaid || i.InvoiceStatus == InvoiceStatusOverdue
}

// --- MODEL invoice_items -----------------------------------------------------
// amount == quantity * unit_price untuk non-discount; item discount bernilai
// negatif.
type InvoiceItem struct {
	InvoiceItemID        uuid.UUID `json:"invoice_item_id" gorm:"column:invoice_item_id;type:uuid;primaryKey"`
	InvoiceItemInvoiceID uuid.UUID `json:"invoice_item_invoice_id" gorm:"column:invoice_item_invoice_id;type:uuid;not null;index:idx_invoice_items_invoice"`

	InvoiceItemType        InvoiceItemType `json:"invoice_item_type" gorm:"column:invoice_item_type;type:text;not null"`
	InvoiceItemDescription string          `json:"invoice_item_description" gorm:"column:invoice_item_description;type:text;not null"`

	// back-reference informasional ke lease_fees (bukan ownership)
	InvoiceItemFeeID *uuid.UUID `json:"invoice_item_fee_id,omitempty" gorm:"column:invoice_item_fee_id;type:uuid"`

	InvoiceItemPeriodStart *time.Time `json:"invoice_item_period_start,omitempty" gorm:"column:invoice_item_period_start;type:date"`
	InvoiceItemPeriodEnd   *time.Time `json:"invoice_item_period_end,omitempty" gorm:"column:invoice_item_period_end;type:date"`

	InvoiceItemQuantity  decimal.Decimal `json:"invoice_item_quantity" gorm:"column:invoice_item_quantity;type:numeric(12,3);not null"`
	InvoiceItemUnitPrice decimal.Decimal `json:"invoice_item_unit_price" gorm:"column:invoice_item_unit_price;type:numeric(12,2);not null"`
	InvoiceItemAmount    decimal.Decimal `json:"invoice_item_amount" gorm:"column:invoice_item_amount;type:numeric(12,2);not null"`

	InvoiceItemSortOrder int16 `json:"invoice_item_sort_order" gorm:"column:invoice_item_sort_order;type:smallint;not null"`

	InvoiceItemCreatedAt time.Time `json:"invoice_item_created_at" gorm:"column:invoice_item_created_at;not null;autoCreateTime"`
}

func (InvoiceItem) TableName() string {
	return "invoice_items"
}

func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.InvoiceItemID == uuid.Nil {
		it.InvoiceItemID = uuid.New()
	}
	// amount harus konsisten quantity*unit_price kecuali discount
	if it.InvoiceItemType != InvoiceItemTypeDiscount {
		want := it.InvoiceItemQuantity.Mul(it.InvoiceItemUnitPrice).Round(2)
		if !it.InvoiceItemAmount.Equal(want) {
			return fmt.Errorf("invoice_item_amount %s != quantity*unit_price %s", it.InvoiceItemAmount, want)
		}
	}
	return nil
}

// --- MODEL invoice_sequences -------------------------------------------------
// Counter nomor invoice per bulan, di-increment di dalam transaksi generate
// dengan row lock supaya aman saat concurrent generation.
type InvoiceSequence struct {
	InvoiceSequenceYearMonth string    `json:"invoice_sequence_year_month" gorm:"column:invoice_sequence_year_month;type:varchar(6);primaryKey"`
	InvoiceSequenceLastValue int64     `json:"invoice_sequence_last_value" gorm:"column:invoice_sequence_last_value;not null"`
	InvoiceSequenceUpdatedAt time.Time `json:"invoice_sequence_updated_at" gorm:"column:invoice_sequence_updated_at;not null;autoUpdateTime"`
}

func (InvoiceSequence) TableName() string {
	return "invoice_sequences"
}
