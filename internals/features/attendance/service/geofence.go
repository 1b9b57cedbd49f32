// internals/features/attendance/service/geofence.go
package service

import (
	"math"

	zoneModel "trackmate_backend/internals/features/zones/model"
)

// Radius bumi dalam meter (haversine).
const earthRadiusMeters = 6371000

// HaversineMeters menghitung jarak great-circle antara dua koordinat (meter).
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}

// WithinZone: true jika titik berada di dalam (atau tepat di batas) radius zona.
func WithinZone(lat, lng float64, z zoneModel.OfficeZoneModel) bool {
	return HaversineMeters(lat, lng, z.Latitude, z.Longitude) <= float64(z.RadiusMeters)
}

// Locate mengecek titik terhadap daftar zona aktif. Urutan zones harus stabil
// (repository mengurutkan id ASC); zona pertama yang cocok dikembalikan dan
// iterasi berhenti. Fungsi murni, tanpa side effect.
func Locate(lat, lng float64, zones []zoneModel.OfficeZoneModel) (bool, *zoneModel.OfficeZoneModel) {
	for i := range zones {
		if WithinZone(lat, lng, zones[i]) {
			return true, &zones[i]
		}
	}
	return false, nil
}
