package auth

import (
	"github.com/gofiber/fiber/v2"

	"trackmate_backend/internals/constants"
)

// OnlyRoles membatasi akses ke role tertentu. Dipakai setelah AuthMiddleware.
func OnlyRoles(feature string, allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowedSet[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

// IsAdmin guard khusus grup /api/admin
func IsAdmin() fiber.Handler {
	return OnlyRoles("admin", constants.RoleAdmin)
}
