// internals/features/zones/route/zone_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "trackmate_backend/internals/features/zones/controller"
)

// ZoneUserRoutes: daftar zona untuk semua user login.
// Base: /api/office-zones
func ZoneUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewOfficeZoneController(db)
	r.Get("/office-zones", ctl.List)
}

// ZoneAdminRoutes: CRUD zona kantor.
// Base: /api/admin/office-zones
func ZoneAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewOfficeZoneController(db)

	zones := r.Group("/office-zones")
	zones.Get("/", ctl.List)
	zones.Post("/", ctl.Create)
	zones.Put("/:id", ctl.Update)
	zones.Delete("/:id", ctl.Delete)
}
