// file: internals/features/rental/leases/model/lease_contract_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- ENUM lease_contract_status ----------------------------------------------
type LeaseStatus string

const (
	LeaseStatusDraft      LeaseStatus = "draft"
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusExpired    LeaseStatus = "expired"
	LeaseStatusTerminated LeaseStatus = "terminated"
	LeaseStatusRenewed    LeaseStatus = "renewed"
)

// --- ENUM discount_type ------------------------------------------------------
type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeFixed   DiscountType = "fixed"
)

// --- MODEL lease_contracts ---------------------------------------------------
// Kontrak sewa. Lifecycle soft via status (tidak pernah hard delete):
// draft → active → expired | terminated | renewed
type LeaseContract struct {
	LeaseContractID         uuid.UUID `json:"lease_contract_id" gorm:"column:lease_contract_id;type:uuid;primaryKey"`
	LeaseContractPropertyID uuid.UUID `json:"lease_contract_property_id" gorm:"column:lease_contract_property_id;type:uuid;not null;index:idx_lease_contracts_property"`
	LeaseContractUnitID     uuid.UUID `json:"lease_contract_unit_id" gorm:"column:lease_contract_unit_id;type:uuid;not null;index:idx_lease_contracts_unit"`
	LeaseContractLandlordID uuid.UUID `json:"lease_contract_landlord_id" gorm:"column:lease_contract_landlord_id;type:uuid;not null;index:idx_lease_contracts_landlord"`
	LeaseContractTenantID   uuid.UUID `json:"lease_contract_tenant_id" gorm:"column:lease_contract_tenant_id;type:uuid;not null;index:idx_lease_contracts_tenant"`

	LeaseContractStartDate time.Time `json:"lease_contract_start_date" gorm:"column:lease_contract_start_date;type:date;not null"`
	LeaseContractEndDate   time.Time `json:"lease_contract_end_date" gorm:"column:lease_contract_end_date;type:date;not null"`

	LeaseContractRentAmount    decimal.Decimal `json:"lease_contract_rent_amount" gorm:"column:lease_contract_rent_amount;type:numeric(12,2);not null"`
	LeaseContractDepositAmount decimal.Decimal `json:"lease_contract_deposit_amount" gorm:"column:lease_contract_deposit_amount;type:numeric(12,2);not null"`

	// anchor penagihan: tanggal 1–31 (di-clamp ke akhir bulan pendek), siklus 1/3/6/12 bulan
	LeaseContractBillingDay         int16 `json:"lease_contract_billing_day" gorm:"column:lease_contract_billing_day;type:smallint;not null"`
	LeaseContractBillingCycleMonths int16 `json:"lease_contract_billing_cycle_months" gorm:"column:lease_contract_billing_cycle_months;type:smallint;not null"`

	// diskon opsional: type + value harus di-set berpasangan
	LeaseContractDiscountType  *DiscountType    `json:"lease_contract_discount_type,omitempty" gorm:"column:lease_contract_discount_type;type:text"`
	LeaseContractDiscountValue *decimal.Decimal `json:"lease_contract_discount_value,omitempty" gorm:"column:lease_contract_discount_value;type:numeric(12,2)"`

	LeaseContractLateFeeAmount *decimal.Decimal `json:"lease_contract_late_fee_amount,omitempty" gorm:"column:lease_contract_late_fee_amount;type:numeric(12,2)"`

	LeaseContractStatus LeaseStatus `json:"lease_contract_status" gorm:"column:lease_contract_status;type:text;not null;default:draft;index:idx_lease_contracts_status"`

	LeaseContractCreatedAt time.Time      `json:"lease_contract_created_at" gorm:"column:lease_contract_created_at;not null;autoCreateTime"`
	LeaseContractUpdatedAt time.Time      `json:"lease_contract_updated_at" gorm:"column:lease_contract_updated_at;not null;autoUpdateTime"`
	LeaseContractDeletedAt gorm.DeletedAt `json:"-" gorm:"column:lease_contract_deleted_at;index"`
}

func (LeaseContract) TableName() string {
	return "lease_contracts"
}

func (l *LeaseContract) BeforeCreate(tx *gorm.DB) error {
	if l.LeaseContractID == uuid.Nil {
		l.LeaseContractID = uuid.New()
	}
	if l.LeaseContractStatus == "" {
		l.LeaseContractStatus = LeaseStatusDraft
	}
	return nil
}

// BeforeSave: jaga invariant kontrak saat create maupun update
func (l *LeaseContract) BeforeSave(tx *gorm.DB) error {
	if l.LeaseContractBillingDay < 1 || l.LeaseContractBillingDay > 31 {
		return fmt.Errorf("lease_contract_billing_day must be 1..31")
	}
	switch l.LeaseContractBillingCycleMonths {
	case 1, 3, 6, 12:
	default:
		return fmt.Errorf("lease_contract_billing_cycle_months must be one of 1,3,6,12")
	}
	if !l.LeaseContractEndDate.After(l.LeaseContractStartDate) {
		return fmt.Errorf("lease_contract_end_date must be after start_date")
	}
	// diskon: pasangan type+value
	if (l.LeaseContractDiscountType == nil) != (l.LeaseContractDiscountValue == nil) {
		return fmt.Errorf("discount_type and discount_value must be set together")
	}
	if l.LeaseContractDiscountType != nil {
		switch *l.LeaseContractDiscountType {
		case DiscountTypePercent, DiscountTypeFixed:
		default:
			return fmt.Errorf("invalid lease_contract_discount_type %q", *l.LeaseContractDiscountType)
		}
		if l.LeaseContractDiscountValue.IsNegative() {
			return fmt.Errorf("lease_contract_discount_value must be >= 0")
		}
	}
	if l.LeaseContractRentAmount.IsNegative() || l.LeaseContractDepositAmount.IsNegative() {
		return fmt.Errorf("rent/deposit amount must be >= 0")
	}
	return nil
}

// IsActive: hanya lease active yang boleh di-generate invoice
func (l *LeaseContract) IsActive() bool {
	return l.LeaseContractStatus == LeaseStatusActive
}
