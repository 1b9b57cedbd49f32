// internals/features/attendance/service/errors.go
package service

import "errors"

// Error domain absensi. Semuanya penolakan request (4xx), bukan kegagalan sistem.
var (
	ErrNoActiveZones     = errors.New("no active office zones found")
	ErrOutsideZone       = errors.New("location is outside all office zones")
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNoCheckIn         = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrNotCheckedIn      = errors.New("attendance has no check-in")
	ErrNoAttendance      = errors.New("no attendance record found for today")
	ErrBreakAlreadyOpen  = errors.New("a break is already open")
	ErrNoActiveBreak     = errors.New("no active break found")
)
