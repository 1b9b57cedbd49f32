// internals/features/zones/controller/office_zone_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"trackmate_backend/internals/features/zones/dto"
	"trackmate_backend/internals/features/zones/model"
	helper "trackmate_backend/internals/helpers"
)

type OfficeZoneController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewOfficeZoneController(db *gorm.DB) *OfficeZoneController {
	return &OfficeZoneController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /api/office-zones (semua user login) & GET /api/admin/office-zones
func (ctl *OfficeZoneController) List(c *fiber.Ctx) error {
	var zones []model.OfficeZoneModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("created_at ASC").
		Find(&zones).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", zones)
}

// POST /api/admin/office-zones
func (ctl *OfficeZoneController) Create(c *fiber.Ctx) error {
	var req dto.CreateOfficeZoneRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	zone := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(zone).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Office zone creation failed")
	}

	return helper.JsonCreated(c, "Office zone created successfully", fiber.Map{
		"id":   zone.OfficeZoneID,
		"name": zone.Name,
	})
}

// PUT /api/admin/office-zones/:id
func (ctl *OfficeZoneController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid zone id")
	}

	var req dto.UpdateOfficeZoneRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	var zone model.OfficeZoneModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&zone, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Office zone not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyPatch(&zone)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&zone).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Office zone update failed")
	}

	return helper.JsonUpdated(c, "Office zone updated successfully", zone)
}

// DELETE /api/admin/office-zones/:id (soft delete)
func (ctl *OfficeZoneController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid zone id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.OfficeZoneModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Office zone deletion failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Office zone not found")
	}

	return helper.JsonDeleted(c, "Office zone deleted successfully", nil)
}
