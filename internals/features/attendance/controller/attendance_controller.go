// internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trackmate_backend/internals/features/attendance/dto"
	"trackmate_backend/internals/features/attendance/repository"
	"trackmate_backend/internals/features/attendance/service"
	helper "trackmate_backend/internals/helpers"
)

type AttendanceController struct {
	Service   *service.AttendanceService
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		Service: service.NewAttendanceService(
			repository.NewAttendanceRepository(db),
			repository.NewZoneRepository(db),
		),
		Validator: validator.New(),
	}
}

const (
	timeLayout = "15:04:05"
	dateLayout = "2006-01-02"
)

func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}

func timePtrStr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timeLayout)
	return &s
}

// mapServiceError menerjemahkan sentinel error domain ke status + pesan
// yang dipakai klien lama (kompatibel dengan API sebelumnya).
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNoActiveZones):
		return helper.JsonError(c, fiber.StatusNotFound, "No active office zones found")
	case errors.Is(err, service.ErrOutsideZone):
		return helper.JsonError(c, fiber.StatusBadRequest, "You are not within the office zone")
	case errors.Is(err, service.ErrAlreadyCheckedIn):
		return helper.JsonError(c, fiber.StatusBadRequest, "Already checked in today")
	case errors.Is(err, service.ErrNoCheckIn):
		return helper.JsonError(c, fiber.StatusBadRequest, "No check-in found for today")
	case errors.Is(err, service.ErrAlreadyCheckedOut):
		return helper.JsonError(c, fiber.StatusBadRequest, "Already checked out today")
	case errors.Is(err, service.ErrNotCheckedIn):
		return helper.JsonError(c, fiber.StatusBadRequest, "Please check in first")
	case errors.Is(err, service.ErrBreakAlreadyOpen):
		return helper.JsonError(c, fiber.StatusBadRequest, "Already on break")
	case errors.Is(err, service.ErrNoActiveBreak):
		return helper.JsonError(c, fiber.StatusBadRequest, "No active break found")
	case errors.Is(err, service.ErrNoAttendance):
		return helper.JsonError(c, fiber.StatusBadRequest, "No attendance record found for today")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// POST /api/attendance/check-zone
func (ctl *AttendanceController) CheckZone(c *fiber.Ctx) error {
	var req dto.CheckZoneRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	within, zone, err := ctl.Service.CheckZone(c.UserContext(), *req.Latitude, *req.Longitude)
	if err != nil {
		return mapServiceError(c, err)
	}

	var zoneView fiber.Map
	if zone != nil {
		zoneView = fiber.Map{
			"id":      zone.OfficeZoneID,
			"name":    zone.Name,
			"address": zone.Address,
		}
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"within_zone": within,
		"zone":        zoneView,
		"user_location": fiber.Map{
			"latitude":  *req.Latitude,
			"longitude": *req.Longitude,
		},
	})
}

// POST /api/attendance/check-in
func (ctl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	rec, err := ctl.Service.CheckIn(c.UserContext(), userID, *req.Latitude, *req.Longitude, req.CheckType())
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonOK(c, "Checked in successfully", fiber.Map{
		"attendance_id": rec.AttendanceID,
		"check_in_time": rec.CheckIn.Format(timeLayout),
		"date":          time.Time(rec.Date).Format(dateLayout),
		"type":          rec.CheckInType,
	})
}

// POST /api/attendance/check-out
func (ctl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	rec, err := ctl.Service.CheckOut(c.UserContext(), userID, *req.Latitude, *req.Longitude, req.CheckType())
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonOK(c, "Checked out successfully", fiber.Map{
		"attendance_id":       rec.AttendanceID,
		"check_out_time":      rec.CheckOut.Format(timeLayout),
		"total_work_hours":    roundHours(rec.TotalWorkMinutes),
		"total_break_minutes": rec.TotalBreakMinutes,
	})
}

// POST /api/attendance/break-start
func (ctl *AttendanceController) BreakStart(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.BreakStartRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	b, err := ctl.Service.BreakStart(c.UserContext(), userID, req.Type(), req.Reason)
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonOK(c, "Break started successfully", fiber.Map{
		"break_id":         b.BreakLogID,
		"break_start_time": b.BreakStart.Format(timeLayout),
		"break_type":       b.BreakType,
	})
}

// POST /api/attendance/break-end
func (ctl *AttendanceController) BreakEnd(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	b, err := ctl.Service.BreakEnd(c.UserContext(), userID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonOK(c, "Break ended successfully", fiber.Map{
		"break_id":               b.BreakLogID,
		"break_end_time":         b.BreakEnd.Format(timeLayout),
		"break_duration_minutes": b.BreakMinutes,
	})
}

// GET /api/attendance/today
func (ctl *AttendanceController) TodayStatus(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	st, err := ctl.Service.TodayStatus(c.UserContext(), userID)
	if err != nil {
		return mapServiceError(c, err)
	}

	// belum check-in: view sintetis, bukan error
	if st.Attendance == nil {
		return helper.JsonOK(c, "ok", fiber.Map{
			"date":                st.Date.Format(dateLayout),
			"status":              "not_checked_in",
			"check_in":            nil,
			"check_out":           nil,
			"total_work_hours":    0,
			"total_break_minutes": 0,
			"is_on_break":         false,
			"breaks":              []fiber.Map{},
		})
	}

	rec := st.Attendance
	breaks := make([]fiber.Map, 0, len(st.Breaks))
	for _, b := range st.Breaks {
		breaks = append(breaks, fiber.Map{
			"id":               b.BreakLogID,
			"start_time":       b.BreakStart.Format(timeLayout),
			"end_time":         timePtrStr(b.BreakEnd),
			"duration_minutes": b.BreakMinutes,
			"type":             b.BreakType,
			"reason":           b.Reason,
		})
	}

	var activeBreak fiber.Map
	if st.ActiveBreak != nil {
		activeBreak = fiber.Map{
			"id":         st.ActiveBreak.BreakLogID,
			"start_time": st.ActiveBreak.BreakStart.Format(timeLayout),
			"type":       st.ActiveBreak.BreakType,
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"date":                time.Time(rec.Date).Format(dateLayout),
		"status":              rec.Status,
		"check_in":            timePtrStr(rec.CheckIn),
		"check_out":           timePtrStr(rec.CheckOut),
		"total_work_hours":    roundHours(rec.TotalWorkMinutes),
		"total_break_minutes": rec.TotalBreakMinutes,
		"is_on_break":         st.ActiveBreak != nil,
		"active_break":        activeBreak,
		"breaks":              breaks,
	})
}

// GET /api/attendance/history
func (ctl *AttendanceController) History(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var q dto.HistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	from, to, badField := q.ParseRange()
	if badField != "" {
		return helper.JsonValidationError(c, map[string][]string{
			badField: {"invalid format or range, expected YYYY-MM-DD and to_date >= from_date"},
		})
	}

	rows, err := ctl.Service.History(c.UserContext(), userID, from, to, q.Limit)
	if err != nil {
		return mapServiceError(c, err)
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		rec := row.Attendance
		out = append(out, fiber.Map{
			"id":                  rec.AttendanceID,
			"date":                time.Time(rec.Date).Format(dateLayout),
			"check_in":            timePtrStr(rec.CheckIn),
			"check_out":           timePtrStr(rec.CheckOut),
			"status":              rec.Status,
			"total_work_hours":    roundHours(rec.TotalWorkMinutes),
			"total_break_minutes": rec.TotalBreakMinutes,
			"breaks_count":        row.BreaksCount,
		})
	}
	return helper.JsonOK(c, "ok", out)
}
