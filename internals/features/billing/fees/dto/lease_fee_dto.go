// file: internals/features/billing/fees/dto/lease_fee_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	feeModel "propertiku_backend/internals/features/billing/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// LEASE FEES — DTO
////////////////////////////////////////////////////////////////////////////////

// Create
type LeaseFeeCreateDTO struct {
	LeaseFeeLeaseID uuid.UUID `json:"lease_fee_lease_id" validate:"required"`
	LeaseFeeName    string    `json:"lease_fee_name" validate:"required,max=120"`
	LeaseFeeType    string    `json:"lease_fee_type" validate:"required,oneof=fixed variable"`

	LeaseFeeAmount      *decimal.Decimal `json:"lease_fee_amount,omitempty"`
	LeaseFeeUnitPrice   *decimal.Decimal `json:"lease_fee_unit_price,omitempty"`
	LeaseFeeBillingUnit *string          `json:"lease_fee_billing_unit,omitempty" validate:"omitempty,max=20"`

	LeaseFeeIsMandatory bool `json:"lease_fee_is_mandatory"`
	LeaseFeeIsActive    *bool `json:"lease_fee_is_active,omitempty"`
}

// Update (partial) — tipe fee tidak bisa diganti setelah dibuat
type LeaseFeeUpdateDTO struct {
	LeaseFeeName        *string          `json:"lease_fee_name,omitempty" validate:"omitempty,max=120"`
	LeaseFeeAmount      *decimal.Decimal `json:"lease_fee_amount,omitempty"`
	LeaseFeeUnitPrice   *decimal.Decimal `json:"lease_fee_unit_price,omitempty"`
	LeaseFeeBillingUnit *string          `json:"lease_fee_billing_unit,omitempty" validate:"omitempty,max=20"`
	LeaseFeeIsMandatory *bool            `json:"lease_fee_is_mandatory,omitempty"`
	LeaseFeeIsActive    *bool            `json:"lease_fee_is_active,omitempty"`
}

// Response
type LeaseFeeResponse struct {
	LeaseFeeID      uuid.UUID `json:"lease_fee_id"`
	LeaseFeeLeaseID uuid.UUID `json:"lease_fee_lease_id"`
	LeaseFeeName    string    `json:"lease_fee_name"`
	LeaseFeeType    string    `json:"lease_fee_type"`

	LeaseFeeAmount      *decimal.Decimal `json:"lease_fee_amount,omitempty"`
	LeaseFeeUnitPrice   *decimal.Decimal `json:"lease_fee_unit_price,omitempty"`
	LeaseFeeBillingUnit *string          `json:"lease_fee_billing_unit,omitempty"`

	LeaseFeeIsMandatory bool `json:"lease_fee_is_mandatory"`
	LeaseFeeIsActive    bool `json:"lease_fee_is_active"`

	LeaseFeeCreatedAt time.Time `json:"lease_fee_created_at"`
	LeaseFeeUpdatedAt time.Time `json:"lease_fee_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func LeaseFeeCreateDTOToModel(in LeaseFeeCreateDTO) feeModel.LeaseFee {
	m := feeModel.LeaseFee{
		LeaseFeeLeaseID:     in.LeaseFeeLeaseID,
		LeaseFeeName:        in.LeaseFeeName,
		LeaseFeeType:        feeModel.LeaseFeeType(in.LeaseFeeType),
		LeaseFeeAmount:      in.LeaseFeeAmount,
		LeaseFeeUnitPrice:   in.LeaseFeeUnitPrice,
		LeaseFeeBillingUnit: in.LeaseFeeBillingUnit,
		LeaseFeeIsMandatory: in.LeaseFeeIsMandatory,
		LeaseFeeIsActive:    true,
	}
	if in.LeaseFeeIsActive != nil {
		m.LeaseFeeIsActive = *in.LeaseFeeIsActive
	}
	return m
}

func ApplyLeaseFeeUpdate(m *feeModel.LeaseFee, in LeaseFeeUpdateDTO) {
	if in.LeaseFeeName != nil {
		m.LeaseFeeName = *in.LeaseFeeName
	}
	if in.LeaseFeeAmount != nil {
		m.LeaseFeeAmount = in.LeaseFeeAmount
	}
	if in.LeaseFeeUnitPrice != nil {
		m.LeaseFeeUnitPrice = in.LeaseFeeUnitPrice
	}
	if in.LeaseFeeBillingUnit != nil {
		m.LeaseFeeBillingUnit = in.LeaseFeeBillingUnit
	}
	if in.LeaseFeeIsMandatory != nil {
		m.LeaseFeeIsMandatory = *in.LeaseFeeIsMandatory
	}
	if in.LeaseFeeIsActive != nil {
		m.LeaseFeeIsActive = *in.LeaseFeeIsActive
	}
}

func ToLeaseFeeResponse(m feeModel.LeaseFee) LeaseFeeResponse {
	return LeaseFeeResponse{
		LeaseFeeID:          m.LeaseFeeID,
		LeaseFeeLeaseID:     m.LeaseFeeLeaseID,
		LeaseFeeName:        m.LeaseFeeName,
		LeaseFeeType:        string(m.LeaseFeeType),
		LeaseFeeAmount:      m.LeaseFeeAmount,
		LeaseFeeUnitPrice:   m.LeaseFeeUnitPrice,
		LeaseFeeBillingUnit: m.LeaseFeeBillingUnit,
		LeaseFeeIsMandatory: m.LeaseFeeIsMandatory,
		LeaseFeeIsActive:    m.LeaseFeeIsActive,
		LeaseFeeCreatedAt:   m.LeaseFeeCreatedAt,
		LeaseFeeUpdatedAt:   m.LeaseFeeUpdatedAt,
	}
}

func ToLeaseFeeResponses(list []feeModel.LeaseFee) []LeaseFeeResponse {
	out := make([]LeaseFeeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToLeaseFeeResponse(m))
	}
	return out
}
