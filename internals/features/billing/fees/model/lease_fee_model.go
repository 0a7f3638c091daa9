// file: internals/features/billing/fees/model/lease_fee_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- ENUM lease_fee_type -----------------------------------------------------
type LeaseFeeType string

const (
	LeaseFeeTypeFixed    LeaseFeeType = "fixed"
	LeaseFeeTypeVariable LeaseFeeType = "variable"
)

// --- MODEL lease_fees --------------------------------------------------------
// Fee katalog per lease. Varian di-enforce saat tulis, bukan divalidasi ad hoc:
// fixed  → wajib amount, unit_price/billing_unit harus kosong
// variable → wajib unit_price + billing_unit, amount harus kosong
type LeaseFee struct {
	LeaseFeeID      uuid.UUID    `json:"lease_fee_id" gorm:"column:lease_fee_id;type:uuid;primaryKey"`
	LeaseFeeLeaseID uuid.UUID    `json:"lease_fee_lease_id" gorm:"column:lease_fee_lease_id;type:uuid;not null;index:idx_lease_fees_lease"`
	LeaseFeeName    string       `json:"lease_fee_name" gorm:"column:lease_fee_name;type:text;not null"`
	LeaseFeeType    LeaseFeeType `json:"lease_fee_type" gorm:"column:lease_fee_type;type:text;not null"`

	// varian fixed
	LeaseFeeAmount *decimal.Decimal `json:"lease_fee_amount,omitempty" gorm:"column:lease_fee_amount;type:numeric(12,2)"`

	// varian variable
	LeaseFeeUnitPrice   *decimal.Decimal `json:"lease_fee_unit_price,omitempty" gorm:"column:lease_fee_unit_price;type:numeric(12,2)"`
	LeaseFeeBillingUnit *string          `json:"lease_fee_billing_unit,omitempty" gorm:"column:lease_fee_billing_unit;type:text"` // kWh / m3 / dll

	LeaseFeeIsMandatory bool `json:"lease_fee_is_mandatory" gorm:"column:lease_fee_is_mandatory;not null;default:false"`
	LeaseFeeIsActive    bool `json:"lease_fee_is_active" gorm:"column:lease_fee_is_active;not null;default:true"`

	LeaseFeeCreatedAt time.Time      `json:"lease_fee_created_at" gorm:"column:lease_fee_created_at;not null;autoCreateTime"`
	LeaseFeeUpdatedAt time.Time      `json:"lease_fee_updated_at" gorm:"column:lease_fee_updated_at;not null;autoUpdateTime"`
	LeaseFeeDeletedAt gorm.DeletedAt `json:"-" gorm:"column:lease_fee_deleted_at;index"`
}

func (LeaseFee) TableName() string {
	return "lease_fees"
}

func (f *LeaseFee) BeforeCreate(tx *gorm.DB) error {
	if f.LeaseFeeID == uuid.Nil {
		f.LeaseFeeID = uuid.New()
	}
	if f.LeaseFeeLeaseID == uuid.Nil {
		return fmt.Errorf("lease_fee_lease_id is required")
	}
	return nil
}

// BeforeSave: guard varian fixed/variable berlaku saat create maupun update
func (f *LeaseFee) BeforeSave(tx *gorm.DB) error {
	switch f.LeaseFeeType {
	case LeaseFeeTypeFixed:
		if f.LeaseFeeAmount == nil || f.LeaseFeeAmount.IsNegative() {
			return fmt.Errorf("fixed fee requires non-negative lease_fee_amount")
		}
		if f.LeaseFeeUnitPrice != nil || f.LeaseFeeBillingUnit != nil {
			return fmt.Errorf("fixed fee must not carry unit_price/billing_unit")
		}
	case LeaseFeeTypeVariable:
		if f.LeaseFeeUnitPrice == nil || f.LeaseFeeUnitPrice.IsNegative() {
			return fmt.Errorf("variable fee requires non-negative lease_fee_unit_price")
		}
		if f.LeaseFeeBillingUnit == nil || *f.LeaseFeeBillingUnit == "" {
			return fmt.Errorf("variable fee requires lease_fee_billing_unit")
		}
		if f.LeaseFeeAmount != nil {
			return fmt.Errorf("variable fee must not carry lease_fee_amount")
		}
	default:
		return fmt.Errorf("invalid lease_fee_type %q", f.LeaseFeeType)
	}
	return nil
}
