// internals/features/admin/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trackmate_backend/internals/features/admin/controller"
	authController "trackmate_backend/internals/features/users/auth/controller"
	"trackmate_backend/internals/middlewares"
)

// AdminRoutes: semua endpoint di bawah /api/admin (role admin saja).
func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminController(db)
	auth := authController.NewAuthController(db)

	admin.Get("/dashboard", ctrl.Dashboard)

	admin.Get("/employees", ctrl.ListEmployees)
	admin.Post("/employees", middlewares.RegisterRateLimiter(), auth.RegisterEmployee)
	admin.Put("/employees/:id", ctrl.UpdateEmployee)
	admin.Delete("/employees/:id", ctrl.DeleteEmployee)

	admin.Post("/register-employee", middlewares.RegisterRateLimiter(), auth.RegisterEmployee)
	admin.Post("/create-admin", middlewares.RegisterRateLimiter(), auth.CreateAdmin)

	admin.Get("/attendance-reports", ctrl.AttendanceReports)

	admin.Get("/settings", ctrl.GetSettings)
	admin.Put("/settings", ctrl.UpdateSettings)
}
