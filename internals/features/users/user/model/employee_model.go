// internals/features/users/user/model/employee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EmployeeModel: data kepegawaian, 1:1 dengan UserModel ber-role employee.
type EmployeeModel struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`

	EmployeeID  string         `gorm:"type:varchar(50);not null;uniqueIndex;column:employee_id" json:"employee_id"`
	Department  *string        `gorm:"type:varchar(255);column:department" json:"department,omitempty"`
	Designation *string        `gorm:"type:varchar(255);column:designation" json:"designation,omitempty"`
	JoiningDate datatypes.Date `gorm:"not null;column:joining_date" json:"joining_date"`
	Salary      *float64       `gorm:"type:numeric(12,2);column:salary" json:"salary,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
