// internals/features/attendance/service/ports.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"trackmate_backend/internals/features/attendance/model"
	zoneModel "trackmate_backend/internals/features/zones/model"
)

// HistoryRow: ringkasan satu hari absensi untuk endpoint history.
type HistoryRow struct {
	Attendance  model.AttendanceModel
	BreaksCount int
}

// AttendanceRepository: port persistence untuk ledger & break tracker.
// Setiap transisi state harus satu statement atomik — implementasi tidak boleh
// read-modify-write terpisah untuk ClaimCheckIn/OpenBreak/FinalizeCheckOut/CloseBreak.
type AttendanceRepository interface {
	// FindByUserAndDate mengembalikan (nil, nil) jika belum ada record.
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*model.AttendanceModel, error)

	// ClaimCheckIn: upsert kondisional pada (user_id, date). Gagal dengan
	// ErrAlreadyCheckedIn jika check_in sudah terisi (termasuk kalah race).
	ClaimCheckIn(ctx context.Context, rec *model.AttendanceModel) error

	// FinalizeCheckOut: update kondisional WHERE check_out IS NULL. Gagal dengan
	// ErrAlreadyCheckedOut jika sudah terisi.
	FinalizeCheckOut(ctx context.Context, rec *model.AttendanceModel) error

	// OpenBreak: insert yang gagal dengan ErrBreakAlreadyOpen jika masih ada
	// sesi dengan break_end NULL untuk attendance yang sama.
	OpenBreak(ctx context.Context, b *model.BreakLogModel) error

	// FindOpenBreak mengembalikan (nil, nil) jika tidak ada sesi terbuka.
	FindOpenBreak(ctx context.Context, attendanceID uuid.UUID) (*model.BreakLogModel, error)

	// CloseBreak: update kondisional WHERE break_end IS NULL. Gagal dengan
	// ErrNoActiveBreak jika sesi sudah tertutup oleh request lain.
	CloseBreak(ctx context.Context, breakID uuid.UUID, end time.Time, minutes int) error

	// SumClosedBreakMinutes menjumlahkan break_minutes sesi yang SUDAH ditutup.
	// Sesi yang masih terbuka tidak dihitung.
	SumClosedBreakMinutes(ctx context.Context, attendanceID uuid.UUID) (int, error)

	ListBreaks(ctx context.Context, attendanceID uuid.UUID) ([]model.BreakLogModel, error)

	// History: record user terurut tanggal menurun, maksimal limit baris.
	History(ctx context.Context, userID uuid.UUID, from, to *time.Time, limit int) ([]HistoryRow, error)
}

// ZoneReader: sumber zona aktif untuk geofence, terurut stabil (id ASC).
type ZoneReader interface {
	ListActiveZones(ctx context.Context) ([]zoneModel.OfficeZoneModel, error)
}
