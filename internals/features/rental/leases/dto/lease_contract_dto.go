// file: internals/features/rental/leases/dto/lease_contract_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	leaseModel "propertiku_backend/internals/features/rental/leases/model"
)

////////////////////////////////////////////////////////////////////////////////
// REQUEST DTO
////////////////////////////////////////////////////////////////////////////////

type LeaseContractCreateDTO struct {
	LeaseContractPropertyID uuid.UUID `json:"lease_contract_property_id" validate:"required"`
	LeaseContractUnitID     uuid.UUID `json:"lease_contract_unit_id" validate:"required"`
	LeaseContractTenantID   uuid.UUID `json:"lease_contract_tenant_id" validate:"required"`

	LeaseContractStartDate time.Time `json:"lease_contract_start_date" validate:"required"`
	LeaseContractEndDate   time.Time `json:"lease_contract_end_date" validate:"required"`

	LeaseContractRentAmount    decimal.Decimal `json:"lease_contract_rent_amount" validate:"required"`
	LeaseContractDepositAmount decimal.Decimal `json:"lease_contract_deposit_amount"`

	LeaseContractBillingDay         int16 `json:"lease_contract_billing_day" validate:"required,gte=1,lte=31"`
	LeaseContractBillingCycleMonths int16 `json:"lease_contract_billing_cycle_months" validate:"required,oneof=1 3 6 12"`

	LeaseContractDiscountType  *string          `json:"lease_contract_discount_type,omitempty" validate:"omitempty,oneof=percent fixed"`
	LeaseContractDiscountValue *decimal.Decimal `json:"lease_contract_discount_value,omitempty"`

	LeaseContractLateFeeAmount *decimal.Decimal `json:"lease_contract_late_fee_amount,omitempty"`
}

type LeaseContractUpdateDTO struct {
	LeaseContractEndDate *time.Time `json:"lease_contract_end_date,omitempty"`

	LeaseContractRentAmount    *decimal.Decimal `json:"lease_contract_rent_amount,omitempty"`
	LeaseContractDepositAmount *decimal.Decimal `json:"lease_contract_deposit_amount,omitempty"`

	LeaseContractBillingDay         *int16 `json:"lease_contract_billing_day,omitempty" validate:"omitempty,gte=1,lte=31"`
	LeaseContractBillingCycleMonths *int16 `json:"lease_contract_billing_cycle_months,omitempty" validate:"omitempty,oneof=1 3 6 12"`

	LeaseContractDiscountType  *string          `json:"lease_contract_discount_type,omitempty" validate:"omitempty,oneof=percent fixed"`
	LeaseContractDiscountValue *decimal.Decimal `json:"lease_contract_discount_value,omitempty"`

	LeaseContractLateFeeAmount *decimal.Decimal `json:"lease_contract_late_fee_amount,omitempty"`
}

// RenewLeaseDTO: lease lama → renewed, kontrak baru dibuat menyambung.
type RenewLeaseDTO struct {
	LeaseContractEndDate    time.Time        `json:"lease_contract_end_date" validate:"required"`
	LeaseContractRentAmount *decimal.Decimal `json:"lease_contract_rent_amount,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSE DTO
////////////////////////////////////////////////////////////////////////////////

type LeaseContractResponse struct {
	LeaseContractID         uuid.UUID `json:"lease_contract_id"`
	LeaseContractPropertyID uuid.UUID `json:"lease_contract_property_id"`
	LeaseContractUnitID     uuid.UUID `json:"lease_contract_unit_id"`
	LeaseContractLandlordID uuid.UUID `json:"lease_contract_landlord_id"`
	LeaseContractTenantID   uuid.UUID `json:"lease_contract_tenant_id"`

	LeaseContractStartDate time.Time `json:"lease_contract_start_date"`
	LeaseContractEndDate   time.Time `json:"lease_contract_end_date"`

	LeaseContractRentAmount    decimal.Decimal `json:"lease_contract_rent_amount"`
	LeaseContractDepositAmount decimal.Decimal `json:"lease_contract_deposit_amount"`

	LeaseContractBillingDay         int16 `json:"lease_contract_billing_day"`
	LeaseContractBillingCycleMonths int16 `json:"lease_contract_billing_cycle_months"`

	LeaseContractDiscountType  *string          `json:"lease_contract_discount_type,omitempty"`
	LeaseContractDiscountValue *decimal.Decimal `json:"lease_contract_discount_value,omitempty"`

	LeaseContractLateFeeAmount *decimal.Decimal `json:"lease_contract_late_fee_amount,omitempty"`

	LeaseContractStatus string `json:"lease_contract_status"`

	LeaseContractCreatedAt time.Time `json:"lease_contract_created_at"`
	LeaseContractUpdatedAt time.Time `json:"lease_contract_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func (d LeaseContractCreateDTO) ToModel(landlordID uuid.UUID) leaseModel.LeaseContract {
	m := leaseModel.LeaseContract{
		LeaseContractPropertyID:         d.LeaseContractPropertyID,
		LeaseContractUnitID:             d.LeaseContractUnitID,
		LeaseContractLandlordID:         landlordID,
		LeaseContractTenantID:           d.LeaseContractTenantID,
		LeaseContractStartDate:          d.LeaseContractStartDate,
		LeaseContractEndDate:            d.LeaseContractEndDate,
		LeaseContractRentAmount:         d.LeaseContractRentAmount,
		LeaseContractDepositAmount:      d.LeaseContractDepositAmount,
		LeaseContractBillingDay:         d.LeaseContractBillingDay,
		LeaseContractBillingCycleMonths: d.LeaseContractBillingCycleMonths,
		LeaseContractDiscountValue:      d.LeaseContractDiscountValue,
		LeaseContractLateFeeAmount:      d.LeaseContractLateFeeAmount,
		LeaseContractStatus:             leaseModel.LeaseStatusDraft,
	}
	if d.LeaseContractDiscountType != nil {
		dt := leaseModel.DiscountType(*d.LeaseContractDiscountType)
		m.LeaseContractDiscountType = &dt
	}
	return m
}

func ApplyLeaseContractUpdate(m *leaseModel.LeaseContract, d LeaseContractUpdateDTO) {
	if d.LeaseContractEndDate != nil {
		m.LeaseContractEndDate = *d.LeaseContractEndDate
	}
	if d.LeaseContractRentAmount != nil {
		m.LeaseContractRentAmount = *d.LeaseContractRentAmount
	}
	if d.LeaseContractDepositAmount != nil {
		m.LeaseContractDepositAmount = *d.LeaseContractDepositAmount
	}
	if d.LeaseContractBillingDay != nil {
		m.LeaseContractBillingDay = *d.LeaseContractBillingDay
	}
	if d.LeaseContractBillingCycleMonths != nil {
		m.LeaseContractBillingCycleMonths = *d.LeaseContractBillingCycleMonths
	}
	if d.LeaseContractDiscountType != nil {
		dt := leaseModel.DiscountType(*d.LeaseContractDiscountType)
		m.LeaseContractDiscountType = &dt
	}
	if d.LeaseContractDiscountValue != nil {
		m.LeaseContractDiscountValue = d.LeaseContractDiscountValue
	}
	if d.LeaseContractLateFeeAmount != nil {
		m.LeaseContractLateFeeAmount = d.LeaseContractLateFeeAmount
	}
}

func ToLeaseContractResponse(m leaseModel.LeaseContract) LeaseContractResponse {
	resp := LeaseContractResponse{
		LeaseContractID:                 m.LeaseContractID,
		LeaseContractPropertyID:         m.LeaseContractPropertyID,
		LeaseContractUnitID:             m.LeaseContractUnitID,
		LeaseContractLandlordID:         m.LeaseContractLandlordID,
		LeaseContractTenantID:           m.LeaseContractTenantID,
		LeaseContractStartDate:          m.LeaseContractStartDate,
		LeaseContractEndDate:            m.LeaseContractEndDate,
		LeaseContractRentAmount:         m.LeaseContractRentAmount,
		LeaseContractDepositAmount:      m.LeaseContractDepositAmount,
		LeaseContractBillingDay:         m.LeaseContractBillingDay,
		LeaseContractBillingCycleMonths: m.LeaseContractBillingCycleMonths,
		LeaseContractDiscountValue:      m.LeaseContractDiscountValue,
		LeaseContractLateFeeAmount:      m.LeaseContractLateFeeAmount,
		LeaseContractStatus:             string(m.LeaseContractStatus),
		LeaseContractCreatedAt:          m.LeaseContractCreatedAt,
		LeaseContractUpdatedAt:          m.LeaseContractUpdatedAt,
	}
	if m.LeaseContractDiscountType != nil {
		dt := string(*m.LeaseContractDiscountType)
		resp.LeaseContractDiscountType = &dt
	}
	return resp
}

func ToLeaseContractResponses(list []leaseModel.LeaseContract) []LeaseContractResponse {
	out := make([]LeaseContractResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToLeaseContractResponse(m))
	}
	return out
}
