// file: internals/features/billing/usage/model/usage_record_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- MODEL usage_records -----------------------------------------------------
// Ledger pemakaian per variable fee per bulan. Immutable: tidak ada soft delete,
// maksimal satu record per (fee, period_month) supaya regenerasi invoice
// reproducible (double record = double bill).
type UsageRecord struct {
	UsageRecordID      uuid.UUID `json:"usage_record_id" gorm:"column:usage_record_id;type:uuid;primaryKey"`
	UsageRecordLeaseID uuid.UUID `json:"usage_record_lease_id" gorm:"column:usage_record_lease_id;type:uuid;not null;index:idx_usage_records_lease"`
	UsageRecordFeeID   uuid.UUID `json:"usage_record_fee_id" gorm:"column:usage_record_fee_id;type:uuid;not null;uniqueIndex:uq_usage_records_fee_period,priority:1"`

	// format "YYYY-MM"
	UsageRecordPeriodMonth string `json:"usage_record_period_month" gorm:"column:usage_record_period_month;type:varchar(7);not null;uniqueIndex:uq_usage_records_fee_period,priority:2"`

	UsageRecordUsageValue  decimal.Decimal `json:"usage_record_usage_value" gorm:"column:usage_record_usage_value;type:numeric(12,3);not null"`
	UsageRecordTotalAmount decimal.Decimal `json:"usage_record_total_amount" gorm:"column:usage_record_total_amount;type:numeric(12,2);not null"`

	UsageRecordNotes *string `json:"usage_record_notes,omitempty" gorm:"column:usage_record_notes;type:text"`

	UsageRecordCreatedAt time.Time `json:"usage_record_created_at" gorm:"column:usage_record_created_at;not null;autoCreateTime"`
}

func (UsageRecord) TableName() string {
	return "usage_records"
}

func (u *UsageRecord) BeforeCreate(tx *gorm.DB) error {
	if u.UsageRecordID == uuid.Nil {
		u.UsageRecordID = uuid.New()
	}
	if u.UsageRecordLeaseID == uuid.Nil || u.UsageRecordFeeID == uuid.Nil {
		return fmt.Errorf("usage_record_lease_id and usage_record_fee_id are required")
	}
	if u.UsageRecordUsageValue.IsNegative() {
		return fmt.Errorf("usage_record_usage_value must be >= 0")
	}
	return nil
}
