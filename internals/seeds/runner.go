// internals/seeds/runner.go
package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"trackmate_backend/internals/constants"
	settingModel "trackmate_backend/internals/features/admin/model"
	authService "trackmate_backend/internals/features/users/auth/service"
	userModel "trackmate_backend/internals/features/users/user/model"
	zoneModel "trackmate_backend/internals/features/zones/model"
)

// Run menjalankan semua seed. Idempotent: aman dipanggil tiap startup.
func Run(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedSettings(db); err != nil {
		return err
	}
	if err := seedMainOffice(db); err != nil {
		return err
	}
	log.Println("🌱 Seeding selesai")
	return nil
}

func seedAdmin(db *gorm.DB) error {
	var existing userModel.UserModel
	err := db.Where("email = ?", "admin@trackmate.com").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := authService.HashPassword("password123")
	if err != nil {
		return err
	}
	admin := userModel.UserModel{
		Name:     "Admin",
		Email:    "admin@trackmate.com",
		Password: hashed,
		Role:     constants.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("🌱 Seed admin: admin@trackmate.com")
	return nil
}

func strPtr(s string) *string { return &s }

func seedSettings(db *gorm.DB) error {
	defaults := []settingModel.SettingModel{
		{Key: "work_start_time", Value: "09:00", Type: "time", Description: strPtr("Jam mulai kerja")},
		{Key: "work_end_time", Value: "18:00", Type: "time", Description: strPtr("Jam selesai kerja")},
		{Key: "break_duration_minutes", Value: "60", Type: "int", Description: strPtr("Durasi istirahat standar (menit)")},
		{Key: "late_threshold_minutes", Value: "15", Type: "int", Description: strPtr("Toleransi keterlambatan (menit)")},
		{Key: "weekend_days", Value: "saturday,sunday", Type: "string", Description: strPtr("Hari libur mingguan")},
		{Key: "timezone", Value: "UTC", Type: "string", Description: strPtr("Zona waktu perusahaan")},
		{Key: "company_name", Value: "TrackMate", Type: "string", Description: strPtr("Nama perusahaan")},
	}

	for _, s := range defaults {
		var count int64
		if err := db.Model(&settingModel.SettingModel{}).
			Where("key = ?", s.Key).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedMainOffice(db *gorm.DB) error {
	var count int64
	if err := db.Model(&zoneModel.OfficeZoneModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	zone := zoneModel.OfficeZoneModel{
		Name:         "Main Office",
		Latitude:     40.7128,
		Longitude:    -74.0060,
		RadiusMeters: 100,
		Address:      strPtr("123 Business Street, City"),
		IsActive:     true,
	}
	if err := db.Create(&zone).Error; err != nil {
		return err
	}
	log.Println("🌱 Seed zona: Main Office")
	return nil
}
