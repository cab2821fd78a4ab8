package logging

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/bookverse/bookverse-backend/internal/models"
)

const (
	logRetention  = 30 * 24 * time.Hour
	sweepInterval = 24 * time.Hour
)

// StartRetention runs a daily sweep dropping system_logs entries older than
// the retention window. Close done to stop the sweeper.
func StartRetention(db *gorm.DB, done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweepExpired(db)
			case <-done:
				return
			}
		}
	}()
}

func sweepExpired(db *gorm.DB) {
	cutoff := time.Now().Add(-logRetention)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log retention sweep failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("expired log entries removed", "count", result.RowsAffected)
	}
}
