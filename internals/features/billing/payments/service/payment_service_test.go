// file: internals/features/billing/payments/service/payment_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"propertiku_backend/internals/features/billing/billingerr"
	invoiceModel "propertiku_backend/internals/features/billing/invoices/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&invoiceModel.Invoice{}, &invoiceModel.InvoiceItem{}))
	return db
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var invoiceSeq int

func makeInvoice(t *testing.T, db *gorm.DB, total string, status invoiceModel.InvoiceStatus, dueDate time.Time) *invoiceModel.Invoice {
	t.Helper()
	invoiceSeq++
	inv := &invoiceModel.Invoice{
		InvoiceLeaseID:        uuid.New(),
		InvoiceNumber:         fmt.Sprintf("INV-TEST-%06d", invoiceSeq),
		InvoicePeriodStart:    date(2026, time.March, 1),
		InvoicePeriodEnd:      date(2026, time.April, 1),
		InvoiceIssueDate:      date(2026, time.March, 1),
		InvoiceDueDate:        dueDate,
		InvoiceSubtotal:       dec(total),
		InvoiceDiscountAmount: decimal.Zero,
		InvoiceTaxAmount:      decimal.Zero,
		InvoiceTotalAmount:    dec(total),
		InvoiceStatus:         status,
		InvoicePaidAmount:     decimal.Zero,
	}
	require.NoError(t, db.Create(inv).Error)
	return inv
}

func testService(db *gorm.DB) *PaymentService {
	s := NewPaymentService(db)
	s.Now = func() time.Time { return date(2026, time.March, 15) }
	return s
}

func TestPayInvoicePartialThenFull(t *testing.T) {
	db := newTestDB(t)
	inv := makeInvoice(t, db, "2295", invoiceModel.InvoiceStatusUnpaid, date(2026, time.March, 1))
	svc := testService(db)
	method := "transfer"

	// partial pertama: status belum berubah
	got, err := svc.PayInvoice(context.Background(), PayInvoiceInput{
		InvoiceID: inv.InvoiceID, PaidAmount: dec("1000"), PaymentMethod: &method,
	})
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoiceStatusUnpaid, got.InvoiceStatus)
	assert.True(t, got.InvoicePaidAmount.Equal(dec("1000")))

	// sisa: akumulasi, bukan overwrite → lunas
	got, err = svc.PayInvoice(context.Background(), PayInvoiceInput{
		InvoiceID: inv.InvoiceID, PaidAmount: dec("1295"), PaymentMethod: &method,
	})
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, got.InvoiceStatus)
	assert.True(t, got.InvoicePaidAmount.Equal(dec("2295")))
	require.NotNil(t, got.InvoicePaidAt)
	require.NotNil(t, got.InvoicePaymentMethod)
	assert.Equal(t, "transfer", *got.InvoicePaymentMethod)

	// persist di DB, bukan cuma struct
	var fromDB invoiceModel.Invoice
	require.NoError(t, db.First(&fromDB, "invoice_id = ?", inv.InvoiceID).Error)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, fromDB.InvoiceStatus)
}

func TestPayInvoiceOverpayMarksPaid(t *testing.T) {
	db := newTestDB(t)
	inv := makeInvoice(t, db, "2500", invoiceModel.InvoiceStatusUnpaid, date(2026, time.March, 1))

	got, err := testService(db).PayInvoice(context.Background(), PayInvoiceInput{
		InvoiceID: inv.InvoiceID, PaidAmount: dec("3000"),
	})
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, got.InvoiceStatus)
	assert.True(t, got.InvoicePaidAmount.Equal(dec("3000")))
}

func TestPayInvoiceOverdueStillPayable(t *testing.T) {
	db := newTestDB(t)
	inv := makeInvoice(t, db, "500", invoiceModel.InvoiceStatusOverdue, date(2026, time.February, 1))

	got, err := testService(db).PayInvoice(context.Background(), PayInvoiceInput{
		InvoiceID: inv.InvoiceID, PaidAmount: dec("500"),
	})
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, got.InvoiceStatus)
}

func TestPayInvoiceGuards(t *testing.T) {
	db := newTestDB(t)
	svc := testService(db)

	// nominal negatif ditolak (nol valid, lihat TestPayInvoiceZeroTotal)
	inv := makeInvoice(t, db, "100", invoiceModel.InvoiceStatusUnpaid, date(2026, time.March, 1))
	_, err := svc.PayInvoice(context.Background(), PayInvoiceInput{InvoiceID: inv.InvoiceID, PaidAmount: dec("-1")})
	assert.True(t, errors.Is(err, billingerr.ErrValidation))

	// invoice tidak ada
	_, err = svc.PayInvoice(context.Background(), PayInvoiceInput{InvoiceID: uuid.New(), PaidAmount: dec("10")})
	assert.True(t, errors.Is(err, billingerr.ErrNotFound))

	// status terminal tidak bisa dibayar
	cancelled := makeInvoice(t, db, "100", invoiceModel.InvoiceStatusCancelled, date(2026, time.March, 1))
	_, err = svc.PayInvoice(context.Background(), PayInvoiceInput{InvoiceID: cancelled.InvoiceID, PaidAmount: dec("10")})
	assert.True(t, errors.Is(err, billingerr.ErrInvalidInvoiceState))

	paid := makeInvoice(t, db, "100", invoiceModel.InvoiceStatusPaid, date(2026, time.March, 1))
	_, err = svc.PayInvoice(context.Background(), PayInvoiceInput{InvoiceID: paid.InvoiceID, PaidAmount: dec("10")})
	assert.True(t, errors.Is(err, billingerr.ErrInvalidInvoiceState))
}

func TestPayInvoiceZeroTotal(t *testing.T) {
	db := newTestDB(t)
	svc := testService(db)

	// invoice dengan diskon penuh: total 0, pembayaran 0 harus bisa melunasi
	inv := makeInvoice(t, db, "0", invoiceModel.InvoiceStatusUnpaid, date(2026, time.March, 1))
	method := "cash"
	got, err := svc.PayInvoice(context.Background(), PayInvoiceInput{
		InvoiceID: inv.InvoiceID, PaidAmount: dec("0"), PaymentMethod: &method,
	})
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, got.InvoiceStatus)
	assert.True(t, got.InvoicePaidAmount.IsZero())

	var fromDB invoiceModel.Invoice
	require.NoError(t, db.First(&fromDB, "invoice_id = ?", inv.InvoiceID).Error)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, fromDB.InvoiceStatus)

	// nominal nol pada invoice bertotal positif: no-op, status tetap
	open := makeInvoice(t, db, "500", invoiceModel.InvoiceStatusUnpaid, date(2026, time.March, 1))
	got, err = svc.PayInvoice(context.Background(), PayInvoiceInput{
		InvoiceID: open.InvoiceID, PaidAmount: dec("0"), PaymentMethod: &method,
	})
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoiceStatusUnpaid, got.InvoiceStatus)
	assert.True(t, got.InvoicePaidAmount.IsZero())
}

func TestPayRemainderAppliesOnce(t *testing.T) {
	db := newTestDB(t)
	svc := testService(db)

	// sudah ada partial payment; sisa dilunasi sekali
	inv := makeInvoice(t, db, "2000", invoiceModel.InvoiceStatusUnpaid, date(2026, time.March, 1))
	method := "transfer"
	_, err := svc.PayInvoice(context.Background(), PayInvoiceInput{
		InvoiceID: inv.InvoiceID, PaidAmount: dec("500"), PaymentMethod: &method,
	})
	require.NoError(t, err)

	got, err := svc.PayRemainder(context.Background(), inv.InvoiceID, "midtrans")
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, got.InvoiceStatus)
	assert.True(t, got.InvoicePaidAmount.Equal(dec("2000")))

	// pelunasan ulang (notifikasi dobel): no-op, nominal tidak naik
	got, err = svc.PayRemainder(context.Background(), inv.InvoiceID, "midtrans")
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, got.InvoiceStatus)
	assert.True(t, got.InvoicePaidAmount.Equal(dec("2000")))

	var fromDB invoiceModel.Invoice
	require.NoError(t, db.First(&fromDB, "invoice_id = ?", inv.InvoiceID).Error)
	assert.True(t, fromDB.InvoicePaidAmount.Equal(dec("2000")))

	// invoice cancelled tidak bisa dilunasi
	cancelled := makeInvoice(t, db, "100", invoiceModel.InvoiceStatusCancelled, date(2026, time.March, 1))
	_, err = svc.PayRemainder(context.Background(), cancelled.InvoiceID, "midtrans")
	assert.True(t, errors.Is(err, billingerr.ErrInvalidInvoiceState))
}

func TestCancelInvoice(t *testing.T) {
	db := newTestDB(t)
	svc := testService(db)

	inv := makeInvoice(t, db, "100", invoiceModel.InvoiceStatusUnpaid, date(2026, time.March, 1))
	got, err := svc.CancelInvoice(context.Background(), inv.InvoiceID)
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoiceStatusCancelled, got.InvoiceStatus)

	// paid bersifat terminal
	paid := makeInvoice(t, db, "100", invoiceModel.InvoiceStatusPaid, date(2026, time.March, 1))
	_, err = svc.CancelInvoice(context.Background(), paid.InvoiceID)
	assert.True(t, errors.Is(err, billingerr.ErrInvalidInvoiceState))
}

func TestMarkOverdueInvoices(t *testing.T) {
	db := newTestDB(t)
	svc := testService(db)

	late := makeInvoice(t, db, "100", invoiceModel.InvoiceStatusUnpaid, date(2026, time.March, 1))
	notYet := makeInvoice(t, db, "100", invoiceModel.InvoiceStatusUnpaid, date(2026, time.April, 1))
	paid := makeInvoice(t, db, "100", invoiceModel.InvoiceStatusPaid, date(2026, time.January, 1))

	n, err := svc.MarkOverdueInvoices(context.Background(), date(2026, time.March, 15))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	var check invoiceModel.Invoice
	require.NoError(t, db.First(&check, "invoice_id = ?", late.InvoiceID).Error)
	assert.Equal(t, invoiceModel.InvoiceStatusOverdue, check.InvoiceStatus)

	require.NoError(t, db.First(&check, "invoice_id = ?", notYet.InvoiceID).Error)
	assert.Equal(t, invoiceModel.InvoiceStatusUnpaid, check.InvoiceStatus)

	require.NoError(t, db.First(&check, "invoice_id = ?", paid.InvoiceID).Error)
	assert.Equal(t, invoiceModel.InvoiceStatusPaid, check.InvoiceStatus)
}
