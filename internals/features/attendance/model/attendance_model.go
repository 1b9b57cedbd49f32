// internals/features/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceHalfDay AttendanceStatus = "half_day"
)

type CheckType string

const (
	CheckTypeAuto   CheckType = "auto"
	CheckTypeManual CheckType = "manual"
)

// AttendanceModel: satu baris per (user, tanggal). DB: UNIQUE (user_id, date).
type AttendanceModel struct {
	// PK
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	// FK + tanggal (kunci unik bersama)
	UserID uuid.UUID      `gorm:"type:uuid;not null;column:user_id;uniqueIndex:uq_attendances_user_date" json:"user_id"`
	Date   datatypes.Date `gorm:"not null;column:date;uniqueIndex:uq_attendances_user_date" json:"date"`

	// Check-in / check-out (nullable sebelum terjadi)
	CheckIn  *time.Time `gorm:"column:check_in" json:"check_in,omitempty"`
	CheckOut *time.Time `gorm:"column:check_out" json:"check_out,omitempty"`

	CheckInLat  *float64 `gorm:"type:numeric(10,8);column:check_in_lat" json:"check_in_lat,omitempty"`
	CheckInLng  *float64 `gorm:"type:numeric(11,8);column:check_in_lng" json:"check_in_lng,omitempty"`
	CheckOutLat *float64 `gorm:"type:numeric(10,8);column:check_out_lat" json:"check_out_lat,omitempty"`
	CheckOutLng *float64 `gorm:"type:numeric(11,8);column:check_out_lng" json:"check_out_lng,omitempty"`

	CheckInType  CheckType `gorm:"type:varchar(8);not null;default:manual;column:check_in_type" json:"check_in_type"`
	CheckOutType CheckType `gorm:"type:varchar(8);not null;default:manual;column:check_out_type" json:"check_out_type"`

	// Akumulasi menit. Final saat check-out.
	TotalWorkMinutes  int `gorm:"not null;default:0;column:total_work_minutes" json:"total_work_minutes"`
	TotalBreakMinutes int `gorm:"not null;default:0;column:total_break_minutes" json:"total_break_minutes"`

	Status AttendanceStatus `gorm:"type:varchar(16);not null;default:present;column:status;index:idx_attendances_status" json:"status"`
	Notes  *string          `gorm:"type:text;column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
