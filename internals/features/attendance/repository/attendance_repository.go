// internals/features/attendance/repository/attendance_repository.go
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trackmate_backend/internals/features/attendance/model"
	"trackmate_backend/internals/features/attendance/service"
)

// AttendanceRepository: implementasi GORM dari service.AttendanceRepository.
// Semua transisi state satu statement atomik — tidak ada read-modify-write.
type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := strings.ToLower(err.Error())
	// umumnya driver menuliskan salah satu dari ini
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "violates unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}

func (r *AttendanceRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*model.AttendanceModel, error) {
	var rec model.AttendanceModel
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, datatypes.Date(date)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ClaimCheckIn: INSERT ... ON CONFLICT (user_id, date) DO UPDATE ...
// WHERE attendances.check_in IS NULL. Kalau baris sudah punya check_in,
// DO UPDATE tidak mengenai baris apa pun → RowsAffected 0 → AlreadyCheckedIn.
// Ini satu-satunya jalur tulis check-in, jadi double-tap tidak bisa dua-duanya sukses.
func (r *AttendanceRepository) ClaimCheckIn(ctx context.Context, rec *model.AttendanceModel) error {
	res := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"check_in":      rec.CheckIn,
			"check_in_lat":  rec.CheckInLat,
			"check_in_lng":  rec.CheckInLng,
			"check_in_type": rec.CheckInType,
			"status":        rec.Status,
			"updated_at":    time.Now(),
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "attendances.check_in IS NULL"},
		}},
	}).Create(rec)

	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return service.ErrAlreadyCheckedIn
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrAlreadyCheckedIn
	}

	// upsert lewat DO UPDATE tidak mengembalikan id; pastikan terisi
	if rec.AttendanceID == uuid.Nil {
		var persisted model.AttendanceModel
		if err := r.DB.WithContext(ctx).
			Where("user_id = ? AND date = ?", rec.UserID, rec.Date).
			First(&persisted).Error; err != nil {
			return err
		}
		rec.AttendanceID = persisted.AttendanceID
	}
	return nil
}

// FinalizeCheckOut: UPDATE kondisional; hanya baris dengan check_out IS NULL
// yang kena. RowsAffected 0 → kalah race → AlreadyCheckedOut.
func (r *AttendanceRepository) FinalizeCheckOut(ctx context.Context, rec *model.AttendanceModel) error {
	res := r.DB.WithContext(ctx).Model(&model.AttendanceModel{}).
		Where("id = ? AND check_in IS NOT NULL AND check_out IS NULL", rec.AttendanceID).
		Updates(map[string]interface{}{
			"check_out":           rec.CheckOut,
			"check_out_lat":       rec.CheckOutLat,
			"check_out_lng":       rec.CheckOutLng,
			"check_out_type":      rec.CheckOutType,
			"total_work_minutes":  rec.TotalWorkMinutes,
			"total_break_minutes": rec.TotalBreakMinutes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrAlreadyCheckedOut
	}
	return nil
}

// OpenBreak: INSERT ... SELECT yang batal jika masih ada sesi terbuka untuk
// attendance yang sama. RowsAffected 0 → BreakAlreadyOpen.
func (r *AttendanceRepository) OpenBreak(ctx context.Context, b *model.BreakLogModel) error {
	if b.BreakLogID == uuid.Nil {
		b.BreakLogID = uuid.New()
	}
	now := time.Now()
	res := r.DB.WithContext(ctx).Exec(`
		INSERT INTO break_logs (id, user_id, attendance_id, break_start, break_minutes, break_type, reason, created_at, updated_at)
		SELECT ?, ?, ?, ?, 0, ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM break_logs
			WHERE attendance_id = ? AND break_end IS NULL
		)`,
		b.BreakLogID, b.UserID, b.AttendanceID, b.BreakStart, b.BreakType, b.Reason, now, now,
		b.AttendanceID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrBreakAlreadyOpen
	}
	return nil
}

func (r *AttendanceRepository) FindOpenBreak(ctx context.Context, attendanceID uuid.UUID) (*model.BreakLogModel, error) {
	var b model.BreakLogModel
	err := r.DB.WithContext(ctx).
		Where("attendance_id = ? AND break_end IS NULL", attendanceID).
		Order("break_start ASC").
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CloseBreak: UPDATE kondisional WHERE break_end IS NULL.
func (r *AttendanceRepository) CloseBreak(ctx context.Context, breakID uuid.UUID, end time.Time, minutes int) error {
	res := r.DB.WithContext(ctx).Model(&model.BreakLogModel{}).
		Where("id = ? AND break_end IS NULL", breakID).
		Updates(map[string]interface{}{
			"break_end":     end,
			"break_minutes": minutes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrNoActiveBreak
	}
	return nil
}

// SumClosedBreakMinutes: hanya sesi yang sudah ditutup. Sesi terbuka tidak dihitung.
func (r *AttendanceRepository) SumClosedBreakMinutes(ctx context.Context, attendanceID uuid.UUID) (int, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&model.BreakLogModel{}).
		Where("attendance_id = ? AND break_end IS NOT NULL", attendanceID).
		Select("COALESCE(SUM(break_minutes), 0)").
		Scan(&total).Error
	return int(total), err
}

func (r *AttendanceRepository) ListBreaks(ctx context.Context, attendanceID uuid.UUID) ([]model.BreakLogModel, error) {
	var breaks []model.BreakLogModel
	err := r.DB.WithContext(ctx).
		Where("attendance_id = ?", attendanceID).
		Order("break_start ASC").
		Find(&breaks).Error
	return breaks, err
}

func (r *AttendanceRepository) History(ctx context.Context, userID uuid.UUID, from, to *time.Time, limit int) ([]service.HistoryRow, error) {
	tx := r.DB.WithContext(ctx).Model(&model.AttendanceModel{}).
		Where("user_id = ?", userID)
	if from != nil {
		tx = tx.Where("date >= ?", datatypes.Date(*from))
	}
	if to != nil {
		tx = tx.Where("date <= ?", datatypes.Date(*to))
	}

	var records []model.AttendanceModel
	if err := tx.Order("date DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []service.HistoryRow{}, nil
	}

	ids := make([]uuid.UUID, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.AttendanceID)
	}

	type breakCount struct {
		AttendanceID uuid.UUID
		Count        int
	}
	var counts []breakCount
	if err := r.DB.WithContext(ctx).Model(&model.BreakLogModel{}).
		Select("attendance_id, COUNT(*) AS count").
		Where("attendance_id IN ?", ids).
		Group("attendance_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	countByID := make(map[uuid.UUID]int, len(counts))
	for _, bc := range counts {
		countByID[bc.AttendanceID] = bc.Count
	}

	rows := make([]service.HistoryRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, service.HistoryRow{
			Attendance:  rec,
			BreaksCount: countByID[rec.AttendanceID],
		})
	}
	return rows, nil
}
