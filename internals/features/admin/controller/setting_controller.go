// internals/features/admin/controller/setting_controller.go
package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trackmate_backend/internals/features/admin/dto"
	"trackmate_backend/internals/features/admin/model"
	helper "trackmate_backend/internals/helpers"
)

// GET /api/admin/settings — semua setting sebagai map key → value.
func (ac *AdminController) GetSettings(c *fiber.Ctx) error {
	var settings []model.SettingModel
	if err := ac.DB.WithContext(c.UserContext()).
		Order("key ASC").
		Find(&settings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	out := fiber.Map{}
	for _, s := range settings {
		out[s.Key] = s.Value
	}

	return helper.JsonOK(c, "OK", out)
}

// PUT /api/admin/settings — upsert per key, hanya field yang dikirim.
func (ac *AdminController) UpdateSettings(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorMessages(err))
	}

	type settingWrite struct {
		key, value, typ string
	}
	var writes []settingWrite
	if req.WorkStartTime != nil {
		writes = append(writes, settingWrite{"work_start_time", *req.WorkStartTime, "time"})
	}
	if req.WorkEndTime != nil {
		writes = append(writes, settingWrite{"work_end_time", *req.WorkEndTime, "time"})
	}
	if req.BreakDurationMinutes != nil {
		writes = append(writes, settingWrite{"break_duration_minutes", strconv.Itoa(*req.BreakDurationMinutes), "int"})
	}
	if req.LateThresholdMinutes != nil {
		writes = append(writes, settingWrite{"late_threshold_minutes", strconv.Itoa(*req.LateThresholdMinutes), "int"})
	}
	if req.WeekendDays != nil {
		writes = append(writes, settingWrite{"weekend_days", *req.WeekendDays, "string"})
	}
	if req.CompanyName != nil {
		writes = append(writes, settingWrite{"company_name", *req.CompanyName, "string"})
	}
	if len(writes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	db := ac.DB.WithContext(c.UserContext())
	txErr := db.Transaction(func(tx *gorm.DB) error {
		for _, w := range writes {
			row := model.SettingModel{Key: w.key, Value: w.value, Type: w.typ}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "type", "updated_at"}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}

	var settings []model.SettingModel
	if err := db.Order("key ASC").Find(&settings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	out := fiber.Map{}
	for _, s := range settings {
		out[s.Key] = s.Value
	}

	return helper.JsonUpdated(c, "Settings updated successfully", out)
}
