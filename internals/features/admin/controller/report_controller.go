// internals/features/admin/controller/report_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"trackmate_backend/internals/features/admin/dto"
	attendanceModel "trackmate_backend/internals/features/attendance/model"
	helper "trackmate_backend/internals/helpers"
)

type reportRow struct {
	attendanceModel.AttendanceModel
	UserName   string `gorm:"column:user_name" json:"user_name"`
	UserEmail  string `gorm:"column:user_email" json:"user_email"`
	EmployeeID string `gorm:"column:employee_code" json:"employee_id"`
}

// GET /api/admin/attendance-reports?from=&to=&employee_id=&status=&page=&per_page=
func (ac *AdminController) AttendanceReports(c *fiber.Ctx) error {
	var query dto.ReportQuery
	if err := c.QueryParser(&query); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	from, to, badField := query.ParseRange()
	if badField != "" {
		return helper.JsonValidationError(c, map[string][]string{
			badField: {"invalid format, expected YYYY-MM-DD"},
		})
	}

	db := ac.DB.WithContext(c.UserContext())
	p := helper.ResolvePaging(c, 20, 100)

	q := db.Table("attendances").
		Select("attendances.*, users.name AS user_name, users.email AS user_email, employees.employee_id AS employee_code").
		Joins("JOIN users ON users.id = attendances.user_id").
		Joins("LEFT JOIN employees ON employees.user_id = users.id AND employees.deleted_at IS NULL")

	if from != nil {
		q = q.Where("attendances.date >= ?", from.Format(dateLayout))
	}
	if to != nil {
		q = q.Where("attendances.date <= ?", to.Format(dateLayout))
	}
	if raw := strings.TrimSpace(query.EmployeeID); raw != "" {
		// terima users.id (uuid) ataupun kode employee_id
		if id, err := uuid.Parse(raw); err == nil {
			q = q.Where("attendances.user_id = ?", id)
		} else {
			q = q.Where("employees.employee_id = ?", raw)
		}
	}
	if status := strings.TrimSpace(query.Status); status != "" {
		q = q.Where("attendances.status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var rows []reportRow
	if err := q.Order("attendances.date DESC, user_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", rows, pagination)
}
