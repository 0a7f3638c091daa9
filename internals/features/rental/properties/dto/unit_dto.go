// file: internals/features/rental/properties/dto/unit_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	propertyModel "propertiku_backend/internals/features/rental/properties/model"
)

////////////////////////////////////////////////////////////////////////////////
// REQUEST DTO
////////////////////////////////////////////////////////////////////////////////

type UnitCreateDTO struct {
	UnitNumber         string           `json:"unit_number" validate:"required,min=1,max=20"`
	UnitFloor          *int16           `json:"unit_floor,omitempty"`
	UnitBedrooms       int16            `json:"unit_bedrooms" validate:"gte=0,lte=20"`
	UnitBathrooms      int16            `json:"unit_bathrooms" validate:"gte=0,lte=20"`
	UnitSizeM2         *decimal.Decimal `json:"unit_size_m2,omitempty"`
	UnitBaseRentAmount decimal.Decimal  `json:"unit_base_rent_amount" validate:"required"`
}

type UnitUpdateDTO struct {
	UnitNumber         *string          `json:"unit_number,omitempty" validate:"omitempty,min=1,max=20"`
	UnitFloor          *int16           `json:"unit_floor,omitempty"`
	UnitBedrooms       *int16           `json:"unit_bedrooms,omitempty" validate:"omitempty,gte=0,lte=20"`
	UnitBathrooms      *int16           `json:"unit_bathrooms,omitempty" validate:"omitempty,gte=0,lte=20"`
	UnitSizeM2         *decimal.Decimal `json:"unit_size_m2,omitempty"`
	UnitBaseRentAmount *decimal.Decimal `json:"unit_base_rent_amount,omitempty"`
	UnitStatus         *string          `json:"unit_status,omitempty" validate:"omitempty,oneof=vacant occupied maintenance"`
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSE DTO
////////////////////////////////////////////////////////////////////////////////

type UnitResponse struct {
	UnitID             uuid.UUID        `json:"unit_id"`
	UnitPropertyID     uuid.UUID        `json:"unit_property_id"`
	UnitNumber         string           `json:"unit_number"`
	UnitFloor          *int16           `json:"unit_floor,omitempty"`
	UnitBedrooms       int16            `json:"unit_bedrooms"`
	UnitBathrooms      int16            `json:"unit_bathrooms"`
	UnitSizeM2         *decimal.Decimal `json:"unit_size_m2,omitempty"`
	UnitBaseRentAmount decimal.Decimal  `json:"unit_base_rent_amount"`
	UnitStatus         string           `json:"unit_status"`
	UnitCreatedAt      time.Time        `json:"unit_created_at"`
	UnitUpdatedAt      time.Time        `json:"unit_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func (d UnitCreateDTO) ToModel(propertyID uuid.UUID) propertyModel.Unit {
	return propertyModel.Unit{
		UnitPropertyID:     propertyID,
		UnitNumber:         d.UnitNumber,
		UnitFloor:          d.UnitFloor,
		UnitBedrooms:       d.UnitBedrooms,
		UnitBathrooms:      d.UnitBathrooms,
		UnitSizeM2:         d.UnitSizeM2,
		UnitBaseRentAmount: d.UnitBaseRentAmount,
		UnitStatus:         propertyModel.UnitStatusVacant,
	}
}

func ApplyUnitUpdate(m *propertyModel.Unit, d UnitUpdateDTO) {
	if d.UnitNumber != nil {
		m.UnitNumber = *d.UnitNumber
	}
	if d.UnitFloor != nil {
		m.UnitFloor = d.UnitFloor
	}
	if d.UnitBedrooms != nil {
		m.UnitBedrooms = *d.UnitBedrooms
	}
	if d.UnitBathrooms != nil {
		m.UnitBathrooms = *d.UnitBathrooms
	}
	if d.UnitSizeM2 != nil {
		m.UnitSizeM2 = d.UnitSizeM2
	}
	if d.UnitBaseRentAmount != nil {
		m.UnitBaseRentAmount = *d.UnitBaseRentAmount
	}
	if d.UnitStatus != nil {
		m.UnitStatus = propertyModel.UnitStatus(*d.UnitStatus)
	}
}

func ToUnitResponse(m propertyModel.Unit) UnitResponse {
	return UnitResponse{
		UnitID:             m.UnitID,
		UnitPropertyID:     m.UnitPropertyID,
		UnitNumber:         m.UnitNumber,
		UnitFloor:          m.UnitFloor,
		UnitBedrooms:       m.UnitBedrooms,
		UnitBathrooms:      m.UnitBathrooms,
		UnitSizeM2:         m.UnitSizeM2,
		UnitBaseRentAmount: m.UnitBaseRentAmount,
		UnitStatus:         string(m.UnitStatus),
		UnitCreatedAt:      m.UnitCreatedAt,
		UnitUpdatedAt:      m.UnitUpdatedAt,
	}
}

func ToUnitResponses(list []propertyModel.Unit) []UnitResponse {
	out := make([]UnitResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToUnitResponse(m))
	}
	return out
}
