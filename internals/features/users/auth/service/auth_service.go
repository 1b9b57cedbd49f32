// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"trackmate_backend/internals/constants"
	authModel "trackmate_backend/internals/features/users/auth/model"
	userModel "trackmate_backend/internals/features/users/user/model"
	helper "trackmate_backend/internals/helpers"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	var user userModel.UserModel
	err := db.WithContext(c.UserContext()).
		Preload("Employee").
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !CheckPassword(user.Password, req.Password)) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	token, err := CreateAccessToken(&user, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	userData := fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"phone": user.Phone,
	}
	if user.Role == constants.RoleEmployee && user.Employee != nil {
		userData["employee"] = fiber.Map{
			"employee_id":  user.Employee.EmployeeID,
			"department":   user.Employee.Department,
			"designation":  user.Employee.Designation,
			"joining_date": time.Time(user.Employee.JoiningDate).Format(dateLayout),
		}
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user":       userData,
		"token":      token,
		"token_type": "Bearer",
	})
}

// POST /api/auth/logout — token masuk blacklist sampai kedaluwarsa.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token").(string)
	if strings.TrimSpace(tokenString) == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}

	entry := authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiresAt: TokenExpiry(tokenString, time.Now().Add(24*time.Hour)),
	}
	if err := db.WithContext(c.UserContext()).Create(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}

	return helper.JsonOK(c, "Logged out successfully", nil)
}

type registerEmployeeRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Email       string   `json:"email" validate:"required,email,max=255"`
	Password    string   `json:"password" validate:"required,min=6"`
	Phone       *string  `json:"phone" validate:"omitempty,max=15"`
	EmployeeID  string   `json:"employee_id" validate:"required,max=50"`
	Department  *string  `json:"department" validate:"omitempty,max=255"`
	Designation *string  `json:"designation" validate:"omitempty,max=255"`
	JoiningDate string   `json:"joining_date" validate:"required"`
	Salary      *float64 `json:"salary" validate:"omitempty,min=0"`
}

// POST /api/admin/register-employee (dan POST /api/admin/employees)
func RegisterEmployee(db *gorm.DB, c *fiber.Ctx) error {
	var req registerEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}
	joining, err := time.Parse(dateLayout, strings.TrimSpace(req.JoiningDate))
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"joining_date": {"invalid format, expected YYYY-MM-DD"},
		})
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	user := userModel.UserModel{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     constants.RoleEmployee,
		Phone:    req.Phone,
		IsActive: true,
	}

	txErr := db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		emp := userModel.EmployeeModel{
			UserID:      user.ID,
			EmployeeID:  strings.TrimSpace(req.EmployeeID),
			Department:  req.Department,
			Designation: req.Designation,
			JoiningDate: datatypes.Date(joining),
			Salary:      req.Salary,
		}
		return tx.Create(&emp).Error
	})
	if txErr != nil {
		if isDuplicateKey(txErr) {
			return helper.JsonError(c, fiber.StatusConflict, "Email atau employee_id sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.JsonCreated(c, "Employee registered successfully", fiber.Map{
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
			"phone": user.Phone,
		},
	})
}

type createAdminRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    *string `json:"phone" validate:"omitempty,max=15"`
}

// POST /api/admin/create-admin
func CreateAdmin(db *gorm.DB, c *fiber.Ctx) error {
	var req createAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Admin creation failed")
	}

	admin := userModel.UserModel{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     constants.RoleAdmin,
		Phone:    req.Phone,
		IsActive: true,
	}
	if err := db.WithContext(c.UserContext()).Create(&admin).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Admin creation failed")
	}

	return helper.JsonCreated(c, "Admin created successfully", fiber.Map{
		"id":    admin.ID,
		"name":  admin.Name,
		"email": admin.Email,
		"role":  admin.Role,
	})
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "violates unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}
