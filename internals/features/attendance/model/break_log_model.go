// internals/features/attendance/model/break_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type BreakType string

const (
	BreakTypeLunch BreakType = "lunch"
	BreakTypeTea   BreakType = "tea"
	BreakTypeOther BreakType = "other"
)

// BreakLogModel: sesi istirahat di dalam satu AttendanceModel.
// BreakEnd NULL berarti sesi masih terbuka; maksimal satu sesi terbuka
// per attendance (dijaga lewat guarded insert di repository).
type BreakLogModel struct {
	BreakLogID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;column:user_id;index:idx_break_logs_user" json:"user_id"`
	AttendanceID uuid.UUID `gorm:"type:uuid;not null;column:attendance_id;index:idx_break_logs_attendance" json:"attendance_id"`

	BreakStart   time.Time  `gorm:"not null;column:break_start" json:"break_start"`
	BreakEnd     *time.Time `gorm:"column:break_end" json:"break_end,omitempty"`
	BreakMinutes int        `gorm:"not null;default:0;column:break_minutes" json:"break_minutes"`

	BreakType BreakType `gorm:"type:varchar(8);not null;default:other;column:break_type" json:"break_type"`
	Reason    *string   `gorm:"type:varchar(255);column:reason" json:"reason,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BreakLogModel) TableName() string {
	return "break_logs"
}
