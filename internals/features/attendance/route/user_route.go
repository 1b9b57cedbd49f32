// internals/features/attendance/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "trackmate_backend/internals/features/attendance/controller"
)

// AttendanceUserRoutes: endpoint absensi untuk user login.
// Base: /api/attendance
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	attendance := r.Group("/attendance")
	attendance.Post("/check-zone", ctl.CheckZone)
	attendance.Post("/check-in", ctl.CheckIn)
	attendance.Post("/check-out", ctl.CheckOut)
	attendance.Post("/break-start", ctl.BreakStart)
	attendance.Post("/break-end", ctl.BreakEnd)
	attendance.Get("/today", ctl.TodayStatus)
	attendance.Get("/history", ctl.History)
}
