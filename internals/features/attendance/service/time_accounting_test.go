// internals/features/attendance/service/time_accounting_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElapsedMinutes_Floor(t *testing.T) {
	a := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, ElapsedMinutes(a, a))
	assert.Equal(t, 0, ElapsedMinutes(a, a.Add(59*time.Second)))
	assert.Equal(t, 1, ElapsedMinutes(a, a.Add(60*time.Second)))
	// 9 jam 30 menit 59 detik → floor ke 570
	assert.Equal(t, 570, ElapsedMinutes(a, a.Add(9*time.Hour+30*time.Minute+59*time.Second)))
}

func TestElapsedMinutes_ClampNegative(t *testing.T) {
	a := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	// clock skew: b sebelum a
	assert.Equal(t, 0, ElapsedMinutes(a, a.Add(-10*time.Minute)))
}

func TestDateOf(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Jakarta")
	ts := time.Date(2026, 3, 9, 17, 45, 30, 123, loc)

	d := DateOf(ts)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, loc), d)
	assert.Equal(t, loc, d.Location())
}
