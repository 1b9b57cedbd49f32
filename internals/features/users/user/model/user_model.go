// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Name     string    `gorm:"type:varchar(255);not null;column:name" json:"name"`
	Email    string    `gorm:"type:varchar(255);not null;uniqueIndex;column:email" json:"email"`
	Password string    `gorm:"type:varchar(255);not null;column:password" json:"-"`
	Role     string    `gorm:"type:varchar(16);not null;default:employee;column:role;index:idx_users_role" json:"role"`
	Phone    *string   `gorm:"type:varchar(15);column:phone" json:"phone,omitempty"`
	IsActive bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`

	Employee *EmployeeModel `gorm:"foreignKey:UserID" json:"employee,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
