// internals/features/attendance/repository/zone_repository.go
package repository

import (
	"context"

	"gorm.io/gorm"

	zoneModel "trackmate_backend/internals/features/zones/model"
)

// ZoneRepository: sumber zona aktif untuk geofence.
type ZoneRepository struct {
	DB *gorm.DB
}

func NewZoneRepository(db *gorm.DB) *ZoneRepository {
	return &ZoneRepository{DB: db}
}

// ListActiveZones: hanya zona aktif, id ASC supaya first-match-wins deterministik.
func (r *ZoneRepository) ListActiveZones(ctx context.Context) ([]zoneModel.OfficeZoneModel, error) {
	var zones []zoneModel.OfficeZoneModel
	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&zones).Error
	return zones, err
}
