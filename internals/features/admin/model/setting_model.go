// internals/features/admin/model/setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingModel: pengaturan global key-value (work_start_time, late_threshold_minutes, dst).
type SettingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Key         string    `gorm:"type:varchar(100);not null;uniqueIndex;column:key" json:"key"`
	Value       string    `gorm:"type:varchar(255);not null;column:value" json:"value"`
	Type        string    `gorm:"type:varchar(16);not null;default:string;column:type" json:"type"`
	Description *string   `gorm:"type:varchar(255);column:description" json:"description,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SettingModel) TableName() string {
	return "settings"
}
