// internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trackmate_backend/internals/features/users/user/controller"
)

// UserProfileRoutes: profil milik user yang sedang login.
func UserProfileRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	auth := api.Group("/auth")
	auth.Get("/profile", ctrl.GetProfile)
	auth.Put("/profile", ctrl.UpdateProfile)
}
