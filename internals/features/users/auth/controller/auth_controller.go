// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trackmate_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) RegisterEmployee(c *fiber.Ctx) error {
	return service.RegisterEmployee(ac.DB, c)
}

func (ac *AuthController) CreateAdmin(c *fiber.Ctx) error {
	return service.CreateAdmin(ac.DB, c)
}
