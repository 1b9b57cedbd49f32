// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trackmate_backend/internals/features/users/auth/controller"
	"trackmate_backend/internals/middlewares"
)

// AuthPublicRoutes: endpoint tanpa token (login).
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// AuthProtectedRoutes: endpoint yang butuh token aktif.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/logout", ctrl.Logout)
}
