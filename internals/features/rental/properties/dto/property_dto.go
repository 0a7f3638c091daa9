// file: internals/features/rental/properties/dto/property_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	propertyModel "propertiku_backend/internals/features/rental/properties/model"
)

////////////////////////////////////////////////////////////////////////////////
// REQUEST DTO
////////////////////////////////////////////////////////////////////////////////

type PropertyCreateDTO struct {
	PropertyName        string   `json:"property_name" validate:"required,min=2,max=120"`
	PropertyAddress     string   `json:"property_address" validate:"required,min=5"`
	PropertyCity        string   `json:"property_city" validate:"required,min=2,max=80"`
	PropertyDescription *string  `json:"property_description,omitempty"`
	PropertyImageURLs   []string `json:"property_image_urls,omitempty" validate:"omitempty,max=10,dive,url"`
}

type PropertyUpdateDTO struct {
	PropertyName        *string  `json:"property_name,omitempty" validate:"omitempty,min=2,max=120"`
	PropertyAddress     *string  `json:"property_address,omitempty" validate:"omitempty,min=5"`
	PropertyCity        *string  `json:"property_city,omitempty" validate:"omitempty,min=2,max=80"`
	PropertyDescription *string  `json:"property_description,omitempty"`
	PropertyImageURLs   []string `json:"property_image_urls,omitempty" validate:"omitempty,max=10,dive,url"`
	PropertyIsActive    *bool    `json:"property_is_active,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSE DTO
////////////////////////////////////////////////////////////////////////////////

type PropertyResponse struct {
	PropertyID          uuid.UUID `json:"property_id"`
	PropertyLandlordID  uuid.UUID `json:"property_landlord_id"`
	PropertyName        string    `json:"property_name"`
	PropertyAddress     string    `json:"property_address"`
	PropertyCity        string    `json:"property_city"`
	PropertyDescription *string   `json:"property_description,omitempty"`
	PropertyImageURLs   []string  `json:"property_image_urls"`
	PropertyIsActive    bool      `json:"property_is_active"`
	PropertyCreatedAt   time.Time `json:"property_created_at"`
	PropertyUpdatedAt   time.Time `json:"property_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func (d PropertyCreateDTO) ToModel(landlordID uuid.UUID) propertyModel.Property {
	return propertyModel.Property{
		PropertyLandlordID:  landlordID,
		PropertyName:        d.PropertyName,
		PropertyAddress:     d.PropertyAddress,
		PropertyCity:        d.PropertyCity,
		PropertyDescription: d.PropertyDescription,
		PropertyImageURLs:   pq.StringArray(d.PropertyImageURLs),
		PropertyIsActive:    true,
	}
}

func ApplyPropertyUpdate(m *propertyModel.Property, d PropertyUpdateDTO) {
	if d.PropertyName != nil {
		m.PropertyName = *d.PropertyName
	}
	if d.PropertyAddress != nil {
		m.PropertyAddress = *d.PropertyAddress
	}
	if d.PropertyCity != nil {
		m.PropertyCity = *d.PropertyCity
	}
	if d.PropertyDescription != nil {
		m.PropertyDescription = d.PropertyDescription
	}
	if d.PropertyImageURLs != nil {
		m.PropertyImageURLs = pq.StringArray(d.PropertyImageURLs)
	}
	if d.PropertyIsActive != nil {
		m.PropertyIsActive = *d.PropertyIsActive
	}
}

func ToPropertyResponse(m propertyModel.Property) PropertyResponse {
	return PropertyResponse{
		PropertyID:          m.PropertyID,
		PropertyLandlordID:  m.PropertyLandlordID,
		PropertyName:        m.PropertyName,
		PropertyAddress:     m.PropertyAddress,
		PropertyCity:        m.PropertyCity,
		PropertyDescription: m.PropertyDescription,
		PropertyImageURLs:   []string(m.PropertyImageURLs),
		PropertyIsActive:    m.PropertyIsActive,
		PropertyCreatedAt:   m.PropertyCreatedAt,
		PropertyUpdatedAt:   m.PropertyUpdatedAt,
	}
}

func ToPropertyResponses(list []propertyModel.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPropertyResponse(m))
	}
	return out
}
