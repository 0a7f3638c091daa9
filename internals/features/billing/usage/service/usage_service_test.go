// file: internals/features/billing/usage/service/usage_service_test.go
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
	))
	return db
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func makeVariableFee(t *testing.T, db *gorm.DB, unitPrice string) *feeModel.LeaseFee {
	t.Helper()
	up := dec(unitPrice)
	unit := "kWh"
	fee := &feeModel.LeaseFee{
		LeaseFeeLeaseID:     uuid.New(),
		LeaseFeeName:        "Listrik",
		LeaseFeeType:        feeModel.LeaseFeeTypeVariable,
		LeaseFeeUnitPrice:   &up,
		LeaseFeeBillingUnit: &unit,
		LeaseFeeIsMandatory: true,
		LeaseFeeIsActive:    true,
	}
	require.NoError(t, db.Create(fee).Error)
	return fee
}

func TestRecordUsage(t *testing.T) {
	db := newTestDB(t)
	fee := makeVariableFee(t, db, "1.50")
	svc := NewUsageService(db)

	rec, err := svc.RecordUsage(context.Background(), RecordUsageInput{
		FeeID:       fee.LeaseFeeID,
		PeriodMonth: "2026-03",
		UsageValue:  dec("100.5"),
	})
	require.NoError(t, err)

	assert.Equal(t, fee.LeaseFeeLeaseID, rec.UsageRecordLeaseID)
	assert.True(t, rec.UsageRecordTotalAmount.Equal(dec("150.75")), "total %s", rec.UsageRecordTotalAmount)
	assert.WithinDuration(t, time.Now(), rec.UsageRecordCreatedAt, 5*time.Second)
}

func TestRecordUsageDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	fee := makeVariableFee(t, db, "1.50")
	svc := NewUsageService(db)

	in := RecordUsageInput{FeeID: fee.LeaseFeeID, PeriodMonth: "2026-03", UsageValue: dec("10")}
	_, err := svc.RecordUsage(context.Background(), in)
	require.NoError(t, err)

	// duplikat ditolak, bukan overwrite
	in.UsageValue = dec("999")
	_, err = svc.RecordUsage(context.Background(), in)
	assert.True(t, errors.Is(err, billingerr.ErrDuplicateUsage), "got %v", err)

	rec, err := svc.FindUsage(context.Background(), fee.LeaseFeeID, "2026-03")
	require.NoError(t, err)
	assert.True(t, rec.UsageRecordUsageValue.Equal(dec("10")))
}

func TestRecordUsageValidation(t *testing.T) {
	db := newTestDB(t)
	fee := makeVariableFee(t, db, "1.50")
	svc := NewUsageService(db)

	// bulan salah format
	_, err := svc.RecordUsage(context.Background(), RecordUsageInput{
		FeeID: fee.LeaseFeeID, PeriodMonth: "2026-3", UsageValue: dec("1"),
	})
	assert.True(t, errors.Is(err, billingerr.ErrValidation))

	// nilai negatif
	_, err = svc.RecordUsage(context.Background(), RecordUsageInput{
		FeeID: fee.LeaseFeeID, PeriodMonth: "2026-03", UsageValue: dec("-1"),
	})
	assert.True(t, errors.Is(err, billingerr.ErrValidation))

	// fee tidak ada
	_, err = svc.RecordUsage(context.Background(), RecordUsageInput{
		FeeID: uuid.New(), PeriodMonth: "2026-03", UsageValue: dec("1"),
	})
	assert.True(t, errors.Is(err, billingerr.ErrNotFound))
}

func TestRecordUsageFixedFeeRejected(t *testing.T) {
	db := newTestDB(t)
	amount := dec("50")
	fee := &feeModel.LeaseFee{
		LeaseFeeLeaseID:  uuid.New(),
		LeaseFeeName:     "Parkir",
		LeaseFeeType:     feeModel.LeaseFeeTypeFixed,
		LeaseFeeAmount:   &amount,
		LeaseFeeIsActive: true,
	}
	require.NoError(t, db.Create(fee).Error)

	_, err := NewUsageService(db).RecordUsage(context.Background(), RecordUsageInput{
		FeeID: fee.LeaseFeeID, PeriodMonth: "2026-03", UsageValue: dec("1"),
	})
	assert.True(t, errors.Is(err, billingerr.ErrValidation))
}

func TestBulkRecordUsagePerEntry(t *testing.T) {
	db := newTestDB(t)
	fee := makeVariableFee(t, db, "2.00")
	svc := NewUsageService(db)

	results := svc.BulkRecordUsage(context.Background(), []RecordUsageInput{
		{FeeID: fee.LeaseFeeID, PeriodMonth: "2026-01", UsageValue: dec("10")},
		{FeeID: fee.LeaseFeeID, PeriodMonth: "2026-01", UsageValue: dec("20")}, // duplikat
		{FeeID: uuid.New(), PeriodMonth: "2026-02", UsageValue: dec("5")},     // fee tidak ada
		{FeeID: fee.LeaseFeeID, PeriodMonth: "2026-02", UsageValue: dec("30")},
	})

	require.Len(t, results, 4)
	assert.Equal(t, 201, results[0].Status)
	assert.Equal(t, 409, results[1].Status)
	assert.Equal(t, 404, results[2].Status)
	assert.Equal(t, 201, results[3].Status)

	// entri gagal tidak membatalkan entri lain
	var count int64
	db.Model(&usageModel.UsageRecord{}).Count(&count)
	assert.EqualValues(t, 2, count)
}
