// internals/features/zones/dto/office_zone_dto.go
package dto

import (
	"strings"

	model "trackmate_backend/internals/features/zones/model"
)

type CreateOfficeZoneRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Latitude     *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	RadiusMeters *int     `json:"radius_meters" validate:"required,min=10,max=1000"`
	Address      *string  `json:"address" validate:"omitempty,max=500"`
}

func (in *CreateOfficeZoneRequest) ToModel() *model.OfficeZoneModel {
	return &model.OfficeZoneModel{
		Name:         strings.TrimSpace(in.Name),
		Latitude:     *in.Latitude,
		Longitude:    *in.Longitude,
		RadiusMeters: *in.RadiusMeters,
		Address:      trimPtr(in.Address),
		IsActive:     true, // default
	}
}

type UpdateOfficeZoneRequest struct {
	Name         *string  `json:"name" validate:"omitempty,max=255"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	RadiusMeters *int     `json:"radius_meters" validate:"omitempty,min=10,max=1000"`
	Address      *string  `json:"address" validate:"omitempty,max=500"`
	IsActive     *bool    `json:"is_active"`
}

// ApplyPatch: terapkan field yang dikirim saja (in-place).
func (p *UpdateOfficeZoneRequest) ApplyPatch(m *model.OfficeZoneModel) {
	if p.Name != nil {
		m.Name = strings.TrimSpace(*p.Name)
	}
	if p.Latitude != nil {
		m.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		m.Longitude = *p.Longitude
	}
	if p.RadiusMeters != nil {
		m.RadiusMeters = *p.RadiusMeters
	}
	if p.Address != nil {
		m.Address = trimPtr(p.Address)
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
