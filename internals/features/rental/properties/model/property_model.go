// file: internals/features/rental/properties/model/property_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// --- MODEL properties --------------------------------------------------------
type Property struct {
	PropertyID         uuid.UUID `json:"property_id" gorm:"column:property_id;type:uuid;primaryKey"`
	PropertyLandlordID uuid.UUID `json:"property_landlord_id" gorm:"column:property_landlord_id;type:uuid;not null;index:idx_properties_landlord"`

	PropertyName        string  `json:"property_name" gorm:"column:property_name;type:text;not null"`
	PropertyAddress     string  `json:"property_address" gorm:"column:property_address;type:text;not null"`
	PropertyCity        string  `json:"property_city" gorm:"column:property_city;type:text;not null"`
	PropertyDescription *string `json:"property_description,omitempty" gorm:"column:property_description;type:text"`

	// URL foto hasil upload (storage eksternal)
	PropertyImageURLs pq.StringArray `json:"property_image_urls" gorm:"column:property_image_urls;type:text[]"`

	PropertyIsActive bool `json:"property_is_active" gorm:"column:property_is_active;not null;default:true"`

	PropertyCreatedAt time.Time      `json:"property_created_at" gorm:"column:property_created_at;not null;autoCreateTime"`
	PropertyUpdatedAt time.Time      `json:"property_updated_at" gorm:"column:property_updated_at;not null;autoUpdateTime"`
	PropertyDeletedAt gorm.DeletedAt `json:"-" gorm:"column:property_deleted_at;index"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.PropertyID == uuid.Nil {
		p.PropertyID = uuid.New()
	}
	if p.PropertyLandlordID == uuid.Nil {
		return fmt.Errorf("property_landlord_id is required")
	}
	return nil
}
