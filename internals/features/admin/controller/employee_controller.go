// internals/features/admin/controller/employee_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"trackmate_backend/internals/constants"
	"trackmate_backend/internals/features/admin/dto"
	userModel "trackmate_backend/internals/features/users/user/model"
	helper "trackmate_backend/internals/helpers"
)

// GET /api/admin/employees?search=&page=&per_page=
func (ac *AdminController) ListEmployees(c *fiber.Ctx) error {
	db := ac.DB.WithContext(c.UserContext())
	p := helper.ResolvePaging(c, 20, 100)

	q := db.Model(&userModel.UserModel{}).
		Joins("JOIN employees ON employees.user_id = users.id AND employees.deleted_at IS NULL").
		Where("users.role = ?", constants.RoleEmployee)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(users.name) LIKE ? OR LOWER(users.email) LIKE ? OR LOWER(employees.employee_id) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var users []userModel.UserModel
	if err := q.Preload("Employee").
		Order("users.name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", users, pagination)
}

// PUT /api/admin/employees/:id — :id = users.id
func (ac *AdminController) UpdateEmployee(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employee id")
	}

	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	db := ac.DB.WithContext(c.UserContext())

	var user userModel.UserModel
	if err := db.Where("id = ? AND role = ?", userID, constants.RoleEmployee).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	userUpdates := req.UserUpdates()
	empUpdates := req.EmployeeUpdates()
	if len(userUpdates) == 0 && len(empUpdates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if len(userUpdates) > 0 {
			if err := tx.Model(&userModel.UserModel{}).
				Where("id = ?", userID).
				Updates(userUpdates).Error; err != nil {
				return err
			}
		}
		if len(empUpdates) > 0 {
			if err := tx.Model(&userModel.EmployeeModel{}).
				Where("user_id = ?", userID).
				Updates(empUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}

	if err := db.Preload("Employee").First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonUpdated(c, "Employee updated successfully", user)
}

// DELETE /api/admin/employees/:id — soft delete user & data kepegawaiannya.
func (ac *AdminController) DeleteEmployee(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employee id")
	}

	db := ac.DB.WithContext(c.UserContext())

	txErr := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND role = ?", userID, constants.RoleEmployee).
			Delete(&userModel.UserModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("user_id = ?", userID).
			Delete(&userModel.EmployeeModel{}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed")
	}

	return helper.JsonDeleted(c, "Employee deleted successfully", nil)
}
