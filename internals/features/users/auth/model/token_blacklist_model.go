// internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklistModel: token yang sudah di-logout, ditolak di AuthMiddleware.
type TokenBlacklistModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Token     string         `gorm:"type:text;not null;index;column:token" json:"token"`
	ExpiresAt time.Time      `gorm:"not null;column:expires_at" json:"expires_at"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklists"
}
