// internals/features/admin/dto/admin_dto.go
package dto

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

/* =========================
   Employees
========================= */

type UpdateEmployeeRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Phone       *string  `json:"phone" validate:"omitempty,max=15"`
	IsActive    *bool    `json:"is_active"`
	Department  *string  `json:"department" validate:"omitempty,max=255"`
	Designation *string  `json:"designation" validate:"omitempty,max=255"`
	Salary      *float64 `json:"salary" validate:"omitempty,min=0"`
}

// UserUpdates: kolom tabel users yang ikut berubah.
func (r *UpdateEmployeeRequest) UserUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Phone != nil {
		updates["phone"] = strings.TrimSpace(*r.Phone)
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates
}

// EmployeeUpdates: kolom tabel employees yang ikut berubah.
func (r *UpdateEmployeeRequest) EmployeeUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Department != nil {
		updates["department"] = strings.TrimSpace(*r.Department)
	}
	if r.Designation != nil {
		updates["designation"] = strings.TrimSpace(*r.Designation)
	}
	if r.Salary != nil {
		updates["salary"] = *r.Salary
	}
	return updates
}

/* =========================
   Attendance reports
========================= */

type ReportQuery struct {
	From       string `query:"from"`
	To         string `query:"to"`
	EmployeeID string `query:"employee_id"`
	Status     string `query:"status"`
}

// ParseRange: tanggal opsional, format YYYY-MM-DD. badField = nama field yang invalid.
func (q *ReportQuery) ParseRange() (from, to *time.Time, badField string) {
	if s := strings.TrimSpace(q.From); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, nil, "from"
		}
		from = &t
	}
	if s := strings.TrimSpace(q.To); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, nil, "to"
		}
		to = &t
	}
	return from, to, ""
}

/* =========================
   Settings
========================= */

// UpdateSettingsRequest: semua field opsional, hanya yang dikirim yang diubah.
type UpdateSettingsRequest struct {
	WorkStartTime        *string `json:"work_start_time" validate:"omitempty,datetime=15:04"`
	WorkEndTime          *string `json:"work_end_time" validate:"omitempty,datetime=15:04"`
	BreakDurationMinutes *int    `json:"break_duration_minutes" validate:"omitempty,min=0,max=480"`
	LateThresholdMinutes *int    `json:"late_threshold_minutes" validate:"omitempty,min=0,max=60"`
	WeekendDays          *string `json:"weekend_days" validate:"omitempty,max=50"`
	CompanyName          *string `json:"company_name" validate:"omitempty,max=255"`
}
