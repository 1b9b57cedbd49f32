// internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "trackmate_backend/internals/features/admin/route"
	attendanceRoute "trackmate_backend/internals/features/attendance/route"
	authRoute "trackmate_backend/internals/features/users/auth/route"
	userRoute "trackmate_backend/internals/features/users/user/route"
	zoneRoute "trackmate_backend/internals/features/zones/route"
	"trackmate_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh route aplikasi.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up routes...")

	BaseRoutes(app, db)

	api := app.Group("/api")

	// Public: login saja.
	authRoute.AuthPublicRoutes(api, db)

	// Semua di bawah ini wajib token valid & belum di-blacklist.
	api.Use(auth.AuthMiddleware(db))

	authRoute.AuthProtectedRoutes(api, db)
	userRoute.UserProfileRoutes(api, db)
	attendanceRoute.AttendanceUserRoutes(api, db)
	zoneRoute.ZoneUserRoutes(api, db)

	// Area admin.
	admin := api.Group("/admin", auth.IsAdmin())
	adminRoute.AdminRoutes(admin, db)
	zoneRoute.ZoneAdminRoutes(admin, db)

	log.Println("[INFO] Routes ready")
}
