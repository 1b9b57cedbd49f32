// internals/features/attendance/service/time_accounting.go
package service

import "time"

// ElapsedMinutes: floor dari (b - a) dalam menit, tidak pernah negatif.
// Clamp ke 0 menutup kasus clock-skew (check-out tercatat sebelum check-in).
func ElapsedMinutes(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	return int(b.Sub(a) / time.Minute)
}

// DateOf memotong timestamp ke tanggal kalender (00:00 pada lokasi yang sama).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
