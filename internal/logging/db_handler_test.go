package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/bookverse/bookverse-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. The DSN must be named and
// cache-shared so every connection in GORM's pool sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.SystemLog{}))
	return db
}

func errorRecord(msg string, attrs ...slog.Attr) slog.Record {
	record := slog.NewRecord(time.Now(), slog.LevelError, msg, 0)
	record.AddAttrs(attrs...)
	return record
}

func countLogs(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.SystemLog{}).Count(&count).Error)
	return count
}

func TestDBHandlerLevelGate(t *testing.T) {
	handler := NewDBHandler(newTestDB(t))
	defer handler.Stop()

	ctx := context.Background()
	assert.False(t, handler.Enabled(ctx, slog.LevelDebug))
	assert.False(t, handler.Enabled(ctx, slog.LevelInfo))
	assert.False(t, handler.Enabled(ctx, slog.LevelWarn))
	assert.True(t, handler.Enabled(ctx, slog.LevelError))
	assert.True(t, handler.Enabled(ctx, slog.LevelError+4))
}

func TestDBHandlerThresholdFlush(t *testing.T) {
	db := newTestDB(t)
	handler := NewDBHandler(db)
	defer handler.Stop()

	ctx := context.Background()
	for i := 0; i < flushThreshold-1; i++ {
		require.NoError(t, handler.Handle(ctx, errorRecord("db write failed")))
	}
	assert.EqualValues(t, 0, countLogs(t, db), "buffer should hold entries below the threshold")

	require.NoError(t, handler.Handle(ctx, errorRecord("db write failed")))
	assert.EqualValues(t, flushThreshold, countLogs(t, db))
}

func TestDBHandlerStopFlushes(t *testing.T) {
	db := newTestDB(t)
	handler := NewDBHandler(db)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, handler.Handle(ctx, errorRecord("otp delivery failed")))
	}
	assert.EqualValues(t, 0, countLogs(t, db))

	handler.Stop()
	assert.EqualValues(t, 3, countLogs(t, db))
}

func TestDBHandlerColumnMapping(t *testing.T) {
	db := newTestDB(t)
	handler := NewDBHandler(db)

	record := errorRecord("review rejected",
		slog.String("action", "submit_review"),
		slog.String("error", "book not found"),
		slog.String("user_id", "42a0c340-4f51-4c36-9a3c-2f6f7f2a1234"),
		slog.String("book", "The Hobbit"),
	)
	require.NoError(t, handler.Handle(context.Background(), record))
	handler.Stop()

	var entry models.SystemLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "review rejected", entry.Message)
	assert.Equal(t, "submit_review", entry.Action)
	assert.Equal(t, "book not found", entry.Error)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "42a0c340-4f51-4c36-9a3c-2f6f7f2a1234", *entry.UserID)
	assert.Contains(t, string(entry.Extra), "The Hobbit")
}

func TestRetentionSweep(t *testing.T) {
	db := newTestDB(t)

	stale := newLogEntry(errorRecord("stale entry"))
	stale.Timestamp = time.Now().Add(-31 * 24 * time.Hour)
	fresh := newLogEntry(errorRecord("fresh entry"))
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Create(&fresh).Error)

	sweepExpired(db)

	var remaining []models.SystemLog
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh entry", remaining[0].Message)
}
