// file: internals/features/rental/properties/model/unit_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- ENUM unit_status --------------------------------------------------------
type UnitStatus string

const (
	UnitStatusVacant      UnitStatus = "vacant"
	UnitStatusOccupied    UnitStatus = "occupied"
	UnitStatusMaintenance UnitStatus = "maintenance"
)

// --- MODEL units -------------------------------------------------------------
type Unit struct {
	UnitID         uuid.UUID `json:"unit_id" gorm:"column:unit_id;type:uuid;primaryKey"`
	UnitPropertyID uuid.UUID `json:"unit_property_id" gorm:"column:unit_property_id;type:uuid;not null;uniqueIndex:uq_units_property_number,priority:1"`

	UnitNumber string `json:"unit_number" gorm:"column:unit_number;type:varchar(20);not null;uniqueIndex:uq_units_property_number,priority:2"`

	UnitFloor     *int16           `json:"unit_floor,omitempty" gorm:"column:unit_floor;type:smallint"`
	UnitBedrooms  int16            `json:"unit_bedrooms" gorm:"column:unit_bedrooms;type:smallint;not null;default:0"`
	UnitBathrooms int16            `json:"unit_bathrooms" gorm:"column:unit_bathrooms;type:smallint;not null;default:0"`
	UnitSizeM2    *decimal.Decimal `json:"unit_size_m2,omitempty" gorm:"column:unit_size_m2;type:numeric(8,2)"`

	// rent dasar, jadi default rent_amount saat bikin lease
	UnitBaseRentAmount decimal.Decimal `json:"unit_base_rent_amount" gorm:"column:unit_base_rent_amount;type:numeric(12,2);not null"`

	UnitStatus UnitStatus `json:"unit_status" gorm:"column:unit_status;type:text;not null;default:vacant"`

	UnitCreatedAt time.Time      `json:"unit_created_at" gorm:"column:unit_created_at;not null;autoCreateTime"`
	UnitUpdatedAt time.Time      `json:"unit_updated_at" gorm:"column:unit_updated_at;not null;autoUpdateTime"`
	UnitDeletedAt gorm.DeletedAt `json:"-" gorm:"column:unit_deleted_at;index"`
}

func (Unit) TableName() string {
	return "units"
}

func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	if u.UnitID == uuid.Nil {
		u.UnitID = uuid.New()
	}
	if u.UnitPropertyID == uuid.Nil {
		return fmt.Errorf("unit_property_id is required")
	}
	if u.UnitStatus == "" {
		u.UnitStatus = UnitStatusVacant
	}
	return nil
}
