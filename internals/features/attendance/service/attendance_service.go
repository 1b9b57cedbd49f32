// internals/features/attendance/service/attendance_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"trackmate_backend/internals/features/attendance/model"
	zoneModel "trackmate_backend/internals/features/zones/model"
)

// AttendanceService: state machine absensi per (user, tanggal) + break tracker.
// Storage-agnostic lewat port; Now bisa di-inject untuk test.
type AttendanceService struct {
	Repo  AttendanceRepository
	Zones ZoneReader
	Now   func() time.Time
}

func NewAttendanceService(repo AttendanceRepository, zones ZoneReader) *AttendanceService {
	return &AttendanceService{
		Repo:  repo,
		Zones: zones,
		Now:   time.Now,
	}
}

// TodayStatus: tampilan gabungan record hari ini + daftar break.
// Attendance nil berarti belum check-in (bukan error).
type TodayStatus struct {
	Date        time.Time
	Attendance  *model.AttendanceModel
	Breaks      []model.BreakLogModel
	ActiveBreak *model.BreakLogModel
}

// CheckZone memvalidasi koordinat terhadap semua zona aktif.
func (s *AttendanceService) CheckZone(ctx context.Context, lat, lng float64) (bool, *zoneModel.OfficeZoneModel, error) {
	zones, err := s.Zones.ListActiveZones(ctx)
	if err != nil {
		return false, nil, err
	}
	if len(zones) == 0 {
		return false, nil, ErrNoActiveZones
	}
	within, matched := Locate(lat, lng, zones)
	return within, matched, nil
}

// CheckIn membuat (atau melengkapi) record hari ini.
// Urutan penolakan: AlreadyCheckedIn → NoActiveZones → OutsideZone.
// ClaimCheckIn tetap menjadi penentu akhir supaya double-tap tidak lolos dua-duanya.
func (s *AttendanceService) CheckIn(ctx context.Context, userID uuid.UUID, lat, lng float64, checkType model.CheckType) (*model.AttendanceModel, error) {
	now := s.Now()
	today := DateOf(now)

	existing, err := s.Repo.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.CheckIn != nil {
		return existing, ErrAlreadyCheckedIn
	}

	zones, err := s.Zones.ListActiveZones(ctx)
	if err != nil {
		return nil, err
	}
	if len(zones) == 0 {
		return nil, ErrNoActiveZones
	}
	within, _ := Locate(lat, lng, zones)
	if !within {
		return nil, ErrOutsideZone
	}

	rec := &model.AttendanceModel{
		UserID:       userID,
		Date:         datatypes.Date(today),
		CheckIn:      &now,
		CheckInLat:   &lat,
		CheckInLng:   &lng,
		CheckInType:  checkType,
		Status:       model.AttendancePresent,
	}
	if err := s.Repo.ClaimCheckIn(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// CheckOut memfinalisasi record hari ini: total_work_minutes =
// elapsed(check_in, check_out) - total_break_minutes, clamp ke 0.
// Hanya sesi break yang sudah ditutup yang dihitung; break yang masih
// terbuka saat checkout menyumbang 0 menit (perilaku yang dipertahankan
// dari sistem lama, bukan diperbaiki diam-diam).
func (s *AttendanceService) CheckOut(ctx context.Context, userID uuid.UUID, lat, lng float64, checkType model.CheckType) (*model.AttendanceModel, error) {
	now := s.Now()
	today := DateOf(now)

	rec, err := s.Repo.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.CheckIn == nil {
		return nil, ErrNoCheckIn
	}
	if rec.CheckOut != nil {
		return rec, ErrAlreadyCheckedOut
	}

	breakMinutes, err := s.Repo.SumClosedBreakMinutes(ctx, rec.AttendanceID)
	if err != nil {
		return nil, err
	}

	workMinutes := ElapsedMinutes(*rec.CheckIn, now) - breakMinutes
	if workMinutes < 0 {
		workMinutes = 0
	}

	rec.CheckOut = &now
	rec.CheckOutLat = &lat
	rec.CheckOutLng = &lng
	rec.CheckOutType = checkType
	rec.TotalWorkMinutes = workMinutes
	rec.TotalBreakMinutes = breakMinutes

	if err := s.Repo.FinalizeCheckOut(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// BreakStart membuka sesi break baru untuk record hari ini.
func (s *AttendanceService) BreakStart(ctx context.Context, userID uuid.UUID, breakType model.BreakType, reason *string) (*model.BreakLogModel, error) {
	now := s.Now()
	today := DateOf(now)

	rec, err := s.Repo.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.CheckIn == nil {
		return nil, ErrNotCheckedIn
	}

	b := &model.BreakLogModel{
		UserID:       userID,
		AttendanceID: rec.AttendanceID,
		BreakStart:   now,
		BreakType:    breakType,
		Reason:       reason,
	}
	if err := s.Repo.OpenBreak(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// BreakEnd menutup sesi break yang sedang terbuka.
func (s *AttendanceService) BreakEnd(ctx context.Context, userID uuid.UUID) (*model.BreakLogModel, error) {
	now := s.Now()
	today := DateOf(now)

	rec, err := s.Repo.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNoAttendance
	}

	open, err := s.Repo.FindOpenBreak(ctx, rec.AttendanceID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, ErrNoActiveBreak
	}

	minutes := ElapsedMinutes(open.BreakStart, now)
	if err := s.Repo.CloseBreak(ctx, open.BreakLogID, now, minutes); err != nil {
		return nil, err
	}

	open.BreakEnd = &now
	open.BreakMinutes = minutes
	return open, nil
}

// TodayStatus: read murni; tidak pernah error hanya karena belum ada record.
func (s *AttendanceService) TodayStatus(ctx context.Context, userID uuid.UUID) (*TodayStatus, error) {
	now := s.Now()
	today := DateOf(now)

	st := &TodayStatus{Date: today}

	rec, err := s.Repo.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return st, nil
	}
	st.Attendance = rec

	breaks, err := s.Repo.ListBreaks(ctx, rec.AttendanceID)
	if err != nil {
		return nil, err
	}
	st.Breaks = breaks
	for i := range breaks {
		if breaks[i].BreakEnd == nil {
			st.ActiveBreak = &breaks[i]
			break
		}
	}
	return st, nil
}

const (
	HistoryDefaultLimit = 30
	HistoryMaxLimit     = 100
)

// History: ringkasan absensi user, tanggal terbaru dulu.
func (s *AttendanceService) History(ctx context.Context, userID uuid.UUID, from, to *time.Time, limit int) ([]HistoryRow, error) {
	if limit <= 0 {
		limit = HistoryDefaultLimit
	}
	if limit > HistoryMaxLimit {
		limit = HistoryMaxLimit
	}
	return s.Repo.History(ctx, userID, from, to, limit)
}
