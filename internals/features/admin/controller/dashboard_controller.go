// internals/features/admin/controller/dashboard_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trackmate_backend/internals/constants"
	attendanceModel "trackmate_backend/internals/features/attendance/model"
	userModel "trackmate_backend/internals/features/users/user/model"
	helper "trackmate_backend/internals/helpers"
)

type AdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Validate: validator.New()}
}

const (
	dateLayout = "2006-01-02"
	recentRows = 10
)

type recentAttendanceRow struct {
	attendanceModel.AttendanceModel
	UserName  string `gorm:"column:user_name" json:"user_name"`
	UserEmail string `gorm:"column:user_email" json:"user_email"`
}

// GET /api/admin/dashboard — ringkasan hari ini.
func (ac *AdminController) Dashboard(c *fiber.Ctx) error {
	db := ac.DB.WithContext(c.UserContext())
	today := time.Now().Format(dateLayout)

	var totalEmployees int64
	if err := db.Model(&userModel.UserModel{}).
		Where("role = ? AND is_active = ?", constants.RoleEmployee, true).
		Count(&totalEmployees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var presentToday int64
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("date = ? AND check_in IS NOT NULL", today).
		Count(&presentToday).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var lateToday int64
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("date = ? AND status = ?", today, attendanceModel.AttendanceLate).
		Count(&lateToday).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	absentToday := totalEmployees - presentToday
	if absentToday < 0 {
		absentToday = 0
	}

	var recent []recentAttendanceRow
	if err := db.Table("attendances").
		Select("attendances.*, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = attendances.user_id").
		Where("attendances.date = ?", today).
		Order("attendances.check_in DESC NULLS LAST").
		Limit(recentRows).
		Scan(&recent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"date":               today,
		"total_employees":    totalEmployees,
		"present_today":      presentToday,
		"absent_today":       absentToday,
		"late_today":         lateToday,
		"recent_attendances": recent,
	})
}
