// internals/features/attendance/service/geofence_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zoneModel "trackmate_backend/internals/features/zones/model"
)

func zone(name string, lat, lng float64, radius int) zoneModel.OfficeZoneModel {
	return zoneModel.OfficeZoneModel{
		Name:         name,
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: radius,
		IsActive:     true,
	}
}

func TestHaversineMeters_ZeroDistance(t *testing.T) {
	assert.Equal(t, 0.0, HaversineMeters(40.7128, -74.0060, 40.7128, -74.0060))
}

func TestHaversineMeters_KnownDistance(t *testing.T) {
	// 0.0009° lintang ≈ 100 m di permukaan bumi
	d := HaversineMeters(40.7128, -74.0060, 40.7137, -74.0060)
	assert.InDelta(t, 100.0, d, 1.0)
}

func TestHaversineMeters_Symmetric(t *testing.T) {
	a := HaversineMeters(40.7128, -74.0060, 40.7580, -73.9855)
	b := HaversineMeters(40.7580, -73.9855, 40.7128, -74.0060)
	assert.InDelta(t, a, b, 1e-9)
}

func TestWithinZone_BoundaryInclusive(t *testing.T) {
	z := zone("HQ", 40.7128, -74.0060, 0)
	// jarak 0, radius 0 → tepat di batas, tetap dianggap di dalam
	assert.True(t, WithinZone(40.7128, -74.0060, z))
}

func TestWithinZone_InsideAndOutside(t *testing.T) {
	z := zone("Main Office", 40.7128, -74.0060, 100)

	// ±11 m dari pusat
	assert.True(t, WithinZone(40.7127, -74.0060, z))

	// Times Square, jauh di luar radius 100 m
	assert.False(t, WithinZone(40.7580, -73.9855, z))
}

func TestLocate_FirstMatchWins(t *testing.T) {
	zones := []zoneModel.OfficeZoneModel{
		zone("Zone A", 40.7128, -74.0060, 500),
		zone("Zone B", 40.7128, -74.0060, 1000),
	}

	within, matched := Locate(40.7128, -74.0060, zones)
	require.True(t, within)
	require.NotNil(t, matched)
	assert.Equal(t, "Zone A", matched.Name)
}

func TestLocate_NoMatch(t *testing.T) {
	zones := []zoneModel.OfficeZoneModel{
		zone("Main Office", 40.7128, -74.0060, 100),
	}

	within, matched := Locate(40.7580, -73.9855, zones)
	assert.False(t, within)
	assert.Nil(t, matched)
}

func TestLocate_EmptyZones(t *testing.T) {
	within, matched := Locate(40.7128, -74.0060, nil)
	assert.False(t, within)
	assert.Nil(t, matched)
}

func TestLocate_Pure(t *testing.T) {
	zones := []zoneModel.OfficeZoneModel{
		zone("Main Office", 40.7128, -74.0060, 100),
	}
	before := zones[0]

	Locate(40.7127, -74.0060, zones)
	Locate(40.7580, -73.9855, zones)

	assert.Equal(t, before, zones[0])
}
