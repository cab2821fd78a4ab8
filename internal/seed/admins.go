package seed

import (
	"log/slog"
	"strings"

	"github.com/bookverse/bookverse-backend/internal/models"
	"gorm.io/gorm"
)

// PromoteAdmins grants the admin flag to the accounts named in the
// comma-separated allow-list. Promotion happens once at boot so the
// authorization gate at request time is the stored admin flag alone.
func PromoteAdmins(db *gorm.DB, emails string) error {
	list := splitEmails(emails)
	if len(list) == 0 {
		return nil
	}

	result := db.Model(&models.User{}).
		Where("email IN ?", list).
		Where("is_admin = ?", false).
		Update("is_admin", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		slog.Info("admin accounts promoted", "count", result.RowsAffected)
	}
	return nil
}

func splitEmails(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	return emails
}
