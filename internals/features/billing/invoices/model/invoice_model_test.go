// file: internals/features/billing/invoices/model/invoice_model_test.go
package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceItemAmountGuard(t *testing.T) {
	it := InvoiceItem{
		InvoiceItemType:      InvoiceItemTypeVariableFee,
		InvoiceItemQuantity:  decimal.RequireFromString("100.5"),
		InvoiceItemUnitPrice: decimal.RequireFromString("1.50"),
		InvoiceItemAmount:    decimal.RequireFromString("150.75"),
	}
	assert.NoError(t, it.BeforeCreate(nil))

	it.InvoiceItemAmount = decimal.RequireFromString("150.80")
	assert.Error(t, it.BeforeCreate(nil))

	// item diskon bebas dari cek qty*unit_price
	disc := InvoiceItem{
		InvoiceItemType:      InvoiceItemTypeDiscount,
		InvoiceItemQuantity:  decimal.NewFromInt(1),
		InvoiceItemUnitPrice: decimal.RequireFromString("-255"),
		InvoiceItemAmount:    decimal.RequireFromString("-255"),
	}
	assert.NoError(t, disc.BeforeCreate(nil))
}

func TestInvoiceStateHelpers(t *testing.T) {
	inv := Invoice{InvoiceStatus: InvoiceStatusUnpaid}
	assert.True(t, inv.Payable())
	assert.True(t, inv.Cancellable())

	inv.InvoiceStatus = InvoiceStatusOverdue
	assert.True(t, inv.Payable())
	assert.True(t, inv.Cancellable())

	inv.InvoiceStatus = InvoiceStatusPaid
	assert.False(t, inv.Payable())
	assert.False(t, inv.Cancellable())

	inv.InvoiceStatus = InvoiceStatusCancelled
	assert.False(t, inv.Payable())
	assert.False(t, inv.Cancellable())
}
