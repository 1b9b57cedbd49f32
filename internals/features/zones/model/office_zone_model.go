// internals/features/zones/model/office_zone_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfficeZoneModel: area kantor berbentuk lingkaran untuk validasi geofence.
// radius_meters dibatasi 10..1000 (divalidasi di DTO).
type OfficeZoneModel struct {
	OfficeZoneID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	Name         string  `gorm:"type:varchar(255);not null;column:name" json:"name"`
	Latitude     float64 `gorm:"type:numeric(10,8);not null;column:latitude" json:"latitude"`
	Longitude    float64 `gorm:"type:numeric(11,8);not null;column:longitude" json:"longitude"`
	RadiusMeters int     `gorm:"not null;column:radius_meters" json:"radius_meters"`
	Address      *string `gorm:"type:varchar(500);column:address" json:"address,omitempty"`
	IsActive     bool    `gorm:"not null;default:true;column:is_active;index:idx_office_zones_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (OfficeZoneModel) TableName() string {
	return "office_zones"
}
