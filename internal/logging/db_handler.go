package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bookverse/bookverse-backend/internal/models"
)

const (
	flushInterval  = 5 * time.Second
	flushThreshold = 50
)

// DBHandler batches ERROR+ slog records into the system_logs table. Buffered
// entries are written out every flushInterval, or immediately once
// flushThreshold of them accumulate.
type DBHandler struct {
	db      *gorm.DB
	ticker  *time.Ticker
	done    chan struct{}
	stopped chan struct{}

	mu      sync.Mutex
	pending []models.SystemLog
}

func NewDBHandler(db *gorm.DB) *DBHandler {
	h := &DBHandler{
		db:      db,
		ticker:  time.NewTicker(flushInterval),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		pending: make([]models.SystemLog, 0, flushThreshold),
	}
	go h.run()
	return h
}

func (h *DBHandler) run() {
	defer close(h.stopped)
	for {
		select {
		case <-h.ticker.C:
			h.drain()
		case <-h.done:
			h.drain()
			return
		}
	}
}

// drain writes the buffered entries in a single batch.
func (h *DBHandler) drain() {
	h.mu.Lock()
	batch := h.pending
	h.pending = make([]models.SystemLog, 0, flushThreshold)
	h.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	if err := h.db.CreateInBatches(batch, flushThreshold).Error; err != nil {
		slog.Warn("failed to persist log batch", "error", err, "entries", len(batch))
	}
}

// Stop flushes the remaining buffer and halts the background writer. It
// returns once the final batch has been written.
func (h *DBHandler) Stop() {
	h.ticker.Stop()
	close(h.done)
	<-h.stopped
}

// Enabled accepts ERROR and above; everything below stays console-only.
func (h *DBHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *DBHandler) Handle(_ context.Context, record slog.Record) error {
	entry := newLogEntry(record)

	h.mu.Lock()
	h.pending = append(h.pending, entry)
	full := len(h.pending) >= flushThreshold
	h.mu.Unlock()

	if full {
		h.drain()
	}
	return nil
}

// newLogEntry maps a record onto a system_logs row, lifting the well-known
// attribute keys into their own columns and folding everything else into
// the extra payload.
func newLogEntry(record slog.Record) models.SystemLog {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "trace_id":
			entry.TraceID = a.Value.String()
		case "user_id":
			id := a.Value.String()
			entry.UserID = &id
		case "action":
			entry.Action = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	})

	if len(extra) > 0 {
		if payload, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(payload)
		}
	}
	return entry
}

func (h *DBHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *DBHandler) WithGroup(string) slog.Handler { return h }
