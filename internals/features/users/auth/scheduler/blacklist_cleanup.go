// internals/features/users/auth/scheduler/blacklist_cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"trackmate_backend/internals/features/users/auth/model"
)

const cleanupInterval = 1 * time.Hour

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah
// kedaluwarsa secara berkala, supaya tabel tidak membengkak.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for range ticker.C {
			res := db.Unscoped().
				Where("expires_at < ?", time.Now()).
				Delete(&model.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[WARN] blacklist cleanup gagal: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("🧹 Blacklist cleanup: %d token kedaluwarsa dihapus", res.RowsAffected)
			}
		}
	}()
	log.Println("⏱ Blacklist cleanup scheduler aktif (interval 1 jam)")
}
