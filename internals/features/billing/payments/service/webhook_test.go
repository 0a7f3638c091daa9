// file: internals/features/billing/payments/service/webhook_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoiceModel "propertiku_backend/internals/features/billing/invoices/model"
)

func TestWebhookSettlementPaysOutstanding(t *testing.T) {
	db := newTestDB(t)
	inv := makeInvoice(t, db, "2295", invoiceModel.InvoiceStatusUnpaid, date(2026, time.March, 1))
	svc := testService(db)

	err := svc.HandlePaymentWebhook(context.Background(), map[string]interface{}{
		"order_id":           inv.InvoiceNumber,
		"transaction_status": "settlement",
	})
	require.NoError(t, err)

	var got invoiceModel.Invoice
	require.NoError(t, db.First(&got, "invoice_id = ?", inv.InvoiceID).Error)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, got.InvoiceStatus)
	assert.True(t, got.InvoicePaidAmount.Equal(dec("2295")))
	require.NotNil(t, got.InvoicePaymentMethod)
	assert.Equal(t, "midtrans", *got.InvoicePaymentMethod)
}

func TestWebhookDuplicateNotificationIdempotent(t *testing.T) {
	db := newTestDB(t)
	inv := makeInvoice(t, db, "500", invoiceModel.InvoiceStatusUnpaid, date(2026, time.March, 1))
	svc := testService(db)

	body := map[string]interface{}{
		"order_id":           inv.InvoiceNumber,
		"transaction_status": "settlement",
	}
	require.NoError(t, svc.HandlePaymentWebhook(context.Background(), body))
	// notifikasi dobel dari gateway tidak menggandakan pembayaran
	require.NoError(t, svc.HandlePaymentWebhook(context.Background(), body))

	var got invoiceModel.Invoice
	require.NoError(t, db.First(&got, "invoice_id = ?", inv.InvoiceID).Error)
	assert.True(t, got.InvoicePaidAmount.Equal(dec("500")))
}

func TestWebhookNonSettlementStatusesNoOp(t *testing.T) {
	db := newTestDB(t)
	inv := makeInvoice(t, db, "500", invoiceModel.InvoiceStatusUnpaid, date(2026, time.March, 1))
	svc := testService(db)

	for _, status := range []string{"pending", "expire", "cancel", "deny"} {
		err := svc.HandlePaymentWebhook(context.Background(), map[string]interface{}{
			"order_id":           inv.InvoiceNumber,
			"transaction_status": status,
		})
		require.NoError(t, err, "status %s", status)
	}

	var got invoiceModel.Invoice
	require.NoError(t, db.First(&got, "invoice_id = ?", inv.InvoiceID).Error)
	assert.Equal(t, invoiceModel.InvoiceStatusUnpaid, got.InvoiceStatus)
	assert.True(t, got.InvoicePaidAmount.IsZero())
}

func TestWebhookInvalidPayload(t *testing.T) {
	db := newTestDB(t)
	svc := testService(db)

	err := svc.HandlePaymentWebhook(context.Background(), map[string]interface{}{"foo": "bar"})
	assert.Error(t, err)

	err = svc.HandlePaymentWebhook(context.Background(), map[string]interface{}{
		"order_id":           "INV-UNKNOWN-000001",
		"transaction_status": "settlement",
	})
	assert.Error(t, err)
}
