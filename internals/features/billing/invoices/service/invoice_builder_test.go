// file: internals/features/billing/invoices/service/invoice_builder_test.go
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
	feeModel "propertiku_backend/internals/features/billing/fees/model"
	invoiceModel "propertiku_backend/internals/features/billing/invoices/model"
	usageModel "propertiku_backend/internals/features/billing/usage/model"
	leaseModel "propertiku_backend/internals/features/rental/leases/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&leaseModel.LeaseContract{},
		&feeModel.LeaseFee{},
		&usageModel.UsageRecord{},
		&invoiceModel.Invoice{},
		&invoiceModel.InvoiceItem{},
		&invoiceModel.InvoiceSequence{},
	))
	return db
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

type leaseOpt func(*leaseModel.LeaseContract)

func makeLease(t *testing.T, db *gorm.DB, opts ...leaseOpt) *leaseModel.LeaseContract {
	t.Helper()
	lease := &leaseModel.LeaseContract{
		LeaseContractPropertyID:         uuid.New(),
		LeaseContractUnitID:             uuid.New(),
		LeaseContractLandlordID:         uuid.New(),
		LeaseContractTenantID:           uuid.New(),
		LeaseContractStartDate:          date(2026, time.January, 1),
		LeaseContractEndDate:            date(2026, time.December, 31),
		LeaseContractRentAmount:         dec("2500"),
		LeaseContractDepositAmount:      dec("2500"),
		LeaseContractBillingDay:         1,
		LeaseContractBillingCycleMonths: 1,
		LeaseContractStatus:             leaseModel.LeaseStatusActive,
	}
	for _, o := range opts {
		o(lease)
	}
	require.NoError(t, db.Create(lease).Error)
	return lease
}

func makeFixedFee(t *testing.T, db *gorm.DB, leaseID uuid.UUID, name, amount string, mandatory bool) *feeModel.LeaseFee {
	t.Helper()
	a := dec(amount)
	fee := &feeModel.LeaseFee{
		LeaseFeeLeaseID:     leaseID,
		LeaseFeeName:        name,
		LeaseFeeType:        feeModel.LeaseFeeTypeFixed,
		LeaseFeeAmount:      &a,
		LeaseFeeIsMandatory: mandatory,
		LeaseFeeIsActive:    true,
	}
	require.NoError(t, db.Create(fee).Error)
	return fee
}

func makeVariableFee(t *testing.T, db *gorm.DB, leaseID uuid.UUID, name, unitPrice, unit string, mandatory bool) *feeModel.LeaseFee {
	t.Helper()
	up := dec(unitPrice)
	fee := &feeModel.LeaseFee{
		LeaseFeeLeaseID:     leaseID,
		LeaseFeeName:        name,
		LeaseFeeType:        feeModel.LeaseFeeTypeVariable,
		LeaseFeeUnitPrice:   &up,
		LeaseFeeBillingUnit: &unit,
		LeaseFeeIsMandatory: mandatory,
		LeaseFeeIsActive:    true,
	}
	require.NoError(t, db.Create(fee).Error)
	return fee
}

func recordUsage(t *testing.T, db *gorm.DB, fee *feeModel.LeaseFee, month, value string) {
	t.Helper()
	v := dec(value)
	rec := &usageModel.UsageRecord{
		UsageRecordLeaseID:     fee.LeaseFeeLeaseID,
		UsageRecordFeeID:       fee.LeaseFeeID,
		UsageRecordPeriodMonth: month,
		UsageRecordUsageValue:  v,
		UsageRecordTotalAmount: v.Mul(*fee.LeaseFeeUnitPrice).Round(2),
	}
	require.NoError(t, db.Create(rec).Error)
}

func testBuilder(db *gorm.DB) *InvoiceBuilder {
	b := NewInvoiceBuilder(db)
	// anchor tetap: periode derived = 2026-03-01 .. +cycle
	b.Now = func() time.Time { return date(2026, time.March, 10) }
	return b
}

// ========== Skenario dasar ==========

func TestGenerateInvoiceRentOnly(t *testing.T) {
	db := newTestDB(t)
	lease := makeLease(t, db)
	b := testBuilder(db)

	inv, err := b.GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, "INV-202603-000001", inv.InvoiceNumber)
	assert.Equal(t, invoiceModel.InvoiceStatusUnpaid, inv.InvoiceStatus)
	assert.True(t, inv.InvoicePeriodStart.Equal(date(2026, time.March, 1)))
	assert.True(t, inv.InvoicePeriodEnd.Equal(date(2026, time.April, 1)))
	assert.True(t, inv.InvoiceSubtotal.Equal(dec("2500")), "subtotal %s", inv.InvoiceSubtotal)
	assert.True(t, inv.InvoiceTotalAmount.Equal(dec("2500")))
	require.Len(t, inv.InvoiceItems, 1)
	assert.Equal(t, invoiceModel.InvoiceItemTypeRent, inv.InvoiceItems[0].InvoiceItemType)
	assert.True(t, inv.InvoiceItems[0].InvoiceItemAmount.Equal(dec("2500")))
}

func TestGenerateInvoiceWithMandatoryFixedFee(t *testing.T) {
	db := newTestDB(t)
	lease := makeLease(t, db)
	makeFixedFee(t, db, lease.LeaseContractID, "Parkir", "50", true)

	inv, err := testBuilder(db).GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
	require.NoError(t, err)

	assert.True(t, inv.InvoiceSubtotal.Equal(dec("2550")), "subtotal %s", inv.InvoiceSubtotal)
	assert.True(t, inv.InvoiceTotalAmount.Equal(dec("2550")))
	require.Len(t, inv.InvoiceItems, 2)
	assert.Equal(t, invoiceModel.InvoiceItemTypeFixedFee, inv.InvoiceItems[1].InvoiceItemType)
	assert.Equal(t, "Parkir", inv.InvoiceItems[1].InvoiceItemDescription)
}

func TestGenerateInvoiceOptionalFixedFeeSelection(t *testing.T) {
	db := newTestDB(t)
	lease := makeLease(t, db)
	optional := makeFixedFee(t, db, lease.LeaseContractID, "Gym", "75", false)

	// tanpa seleksi: tidak ikut
	inv, err := testBuilder(db).GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
	require.NoError(t, err)
	assert.Len(t, inv.InvoiceItems, 1)

	// regenerasi periode sama harus lewat cancel dulu — pakai periode eksplisit lain
	ps := date(2026, time.April, 1)
	pe := date(2026, time.May, 1)
	inv2, err := testBuilder(db).GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{
		PeriodStart:           &ps,
		PeriodEnd:             &pe,
		IncludeOptionalFeeIDs: []uuid.UUID{optional.LeaseFeeID},
	})
	require.NoError(t, err)
	require.Len(t, inv2.InvoiceItems, 2)
	assert.True(t, inv2.InvoiceSubtotal.Equal(dec("2575")))
}

// ========== Variable fee & usage ledger ==========

func TestGenerateInvoiceVariableFeeUsesUsage(t *testing.T) {
	db := newTestDB(t)
	lease := makeLease(t, db)
	water := makeVariableFee(t, db, lease.LeaseContractID, "Air", "1.50", "m3", true)
	recordUsage(t, db, water, "2026-03", "100.5")

	inv, err := testBuilder(db).GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
	require.NoError(t, err)

	require.Len(t, inv.InvoiceItems, 2)
	item := inv.InvoiceItems[1]
	assert.Equal(t, invoiceModel.InvoiceItemTypeVariableFee, item.InvoiceItemType)
	assert.True(t, item.InvoiceItemQuantity.Equal(dec("100.5")))
	assert.True(t, item.InvoiceItemAmount.Equal(dec("150.75")), "amount %s", item.InvoiceItemAmount)
	assert.True(t, inv.InvoiceSubtotal.Equal(dec("2650.75")))
}

func TestGenerateInvoiceMandatoryVariableMissingUsage(t *testing.T) {
	db := newTestDB(t)
	lease := makeLease(t, db)
	makeVariableFee(t, db, lease.LeaseContractID, "Listrik", "2.00", "kWh", true)

	_, err := testBuilder(db).GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
	assert.True(t, errors.Is(err, billingerr.ErrMissingUsageData), "got %v", err)

	// gagal total: tidak ada invoice setengah jadi yang tertinggal
	var count int64
	db.Model(&invoiceModel.Invoice{}).Count(&count)
	assert.Zero(t, count)
}

func TestGenerateInvoiceOptionalVariableMissingUsageSkipped(t *testing.T) {
	db := newTestDB(t)
	lease := makeLease(t, db)
	makeVariableFee(t, db, lease.LeaseContractID, "Gas", "3.25", "m3", false)

	inv, err := testBuilder(db).GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
	require.NoError(t, err)
	assert.Len(t, inv.InvoiceItems, 1)
	assert.True(t, inv.InvoiceSubtotal.Equal(dec("2500")))
}

func TestGenerateInvoiceQuarterlyVariablePerMonth(t *testing.T) {
	db := newTestDB(t)
	lease := makeLease(t, db, func(l *leaseModel.LeaseContract) {
		l.LeaseContractBillingCycleMonths = 3
	})
	water := makeVariableFee(t, db, lease.LeaseContractID, "Air", "1.00", "m3", true)
	recordUsage(t, db, water, "2026-03", "10")
	recordUsage(t, db, water, "2026-04", "20")
	recordUsage(t, db, water, "2026-05", "30")

	inv, err := testBuilder(db).GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
	require.NoError(t, err)

	// rent qty 3 + tiga item air (satu per bulan tercakup)
	require.Len(t, inv.InvoiceItems, 4)
	assert.True(t, inv.InvoiceItems[0].InvoiceItemQuantity.Equal(dec("3")))
	assert.True(t, inv.InvoiceItems[0].InvoiceItemAmount.Equal(dec("7500")))
	assert.True(t, inv.InvoiceSubtotal.Equal(dec("7560")), "subtotal %s", inv.InvoiceSubtotal)
}

// ========== Diskon & pajak ==========

func TestGenerateInvoicePercentDiscount(t *testing.T) {
	db := newTestDB(t)
	dt := leaseModel.DiscountTypePercent
	dv := dec("10")
	lease := makeLease(t, db, func(l *leaseModel.LeaseContract) {
		l.LeaseContractDiscountType = &dt
		l.LeaseContractDiscountValue = &dv
	})
	makeFixedFee(t, db, lease.LeaseContractID, "Parkir", "50", true)

	inv, err := testBuilder(db).GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
	require.NoError(t, err)

	assert.True(t, inv.InvoiceSubtotal.Equal(dec("2550")))
	assert.True(t, inv.InvoiceDiscountAmount.Equal(dec("255")), "discount %s", inv.InvoiceDiscountAmount)
	assert.True(t, inv.InvoiceTotalAmount.Equal(dec("2295")), "total %s", inv.InvoiceTotalAmount)

	last := inv.InvoiceItems[len(inv.InvoiceItems)-1]
	assert.Equal(t, invoiceModel.InvoiceItemTypeDiscount, last.InvoiceItemType)
	assert.True(t, last.InvoiceItemAmount.Equal(dec("-255")))
}

func TestGenerateInvoiceFixedDiscountCappedAtSubtotal(t *testing.T) {
	db := newTestDB(t)
	dt := leaseModel.DiscountTypeFixed
	dv := dec("99999")
	lease := makeLease(t, db, func(l *leaseModel.LeaseContract) {
		l.LeaseContractDiscountType = &dt
		l.LeaseContractDiscountValue = &dv
	})

	inv, err := testBuilder(db).GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
	require.NoError(t, err)

	assert.True(t, inv.InvoiceDiscountAmount.Equal(dec("2500")))
	assert.True(t, inv.InvoiceTotalAmount.IsZero(), "total %s", inv.InvoiceTotalAmount)
}

func TestGenerateInvoiceTaxPassThrough(t *testing.T) {
	db := newTestDB(t)
	lease := makeLease(t, db)

	tax := dec("275")
	inv, err := testBuilder(db).GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{TaxAmount: &tax})
	require.NoError(t, err)
	assert.True(t, inv.InvoiceTotalAmount.Equal(dec("2775")))

	neg := dec("-1")
	lease2 := makeLease(t, db)
	_, err = testBuilder(db).GenerateInvoice(context.Background(), lease2.LeaseContractID, GenerateOptions{TaxAmount: &neg})
	assert.True(t, errors.Is(err, billingerr.ErrValidation))
}

// ========== Idempotensi & state ==========

func TestGenerateInvoiceIdempotentPerPeriod(t *testing.T) {
	db := newTestDB(t)
	lease := makeLease(t, db)
	b := testBuilder(db)

	_, err := b.GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
	require.NoError(t, err)

	_, err = b.GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
	assert.True(t, errors.Is(err, billingerr.ErrInvoiceAlreadyExists), "got %v", err)
}

func TestGenerateInvoiceCancelledDoesNotBlock(t *testing.T) {
	db := newTestDB(t)
	lease := makeLease(t, db)
	b := testBuilder(db)

	inv, err := b.GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
	require.NoError(t, err)

	require.NoError(t, db.Model(&invoiceModel.Invoice{}).
		Where("invoice_id = ?", inv.InvoiceID).
		Update("invoice_status", invoiceModel.InvoiceStatusCancelled).Error)

	inv2, err := b.GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "INV-202603-000002", inv2.InvoiceNumber)
}

func TestGenerateInvoiceLeaseGuards(t *testing.T) {
	db := newTestDB(t)
	b := testBuilder(db)

	_, err := b.GenerateInvoice(context.Background(), uuid.New(), GenerateOptions{})
	assert.True(t, errors.Is(err, billingerr.ErrNotFound))

	draft := makeLease(t, db, func(l *leaseModel.LeaseContract) {
		l.LeaseContractStatus = leaseModel.LeaseStatusDraft
	})
	_, err = b.GenerateInvoice(context.Background(), draft.LeaseContractID, GenerateOptions{})
	assert.True(t, errors.Is(err, billingerr.ErrLeaseNotActive))
}

func TestGenerateInvoiceExplicitPeriodValidation(t *testing.T) {
	db := newTestDB(t)
	lease := makeLease(t, db)
	b := testBuilder(db)

	// hanya satu ujung periode
	ps := date(2026, time.March, 1)
	_, err := b.GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{PeriodStart: &ps})
	assert.True(t, errors.Is(err, billingerr.ErrInvalidPeriod))

	// tidak selaras cycle bulanan
	pe := date(2026, time.March, 20)
	_, err = b.GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{PeriodStart: &ps, PeriodEnd: &pe})
	assert.True(t, errors.Is(err, billingerr.ErrInvalidPeriod))
}

func TestInvoiceNumbersSequentialPerMonth(t *testing.T) {
	db := newTestDB(t)
	b := testBuilder(db)

	for i := 1; i <= 3; i++ {
		lease := makeLease(t, db)
		inv, err := b.GenerateInvoice(context.Background(), lease.LeaseContractID, GenerateOptions{})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("INV-202603-%06d", i), inv.InvoiceNumber)
	}
}
