package logger

import (
	"fmt"

	logModel "hair-salon/models/log"
	"hair-salon/types"

	"gorm.io/gorm"
)

// AsyncLogger persists HTTP request logs to the database off the
// request path. With a nil db (in-memory mode) entries are consumed
// and dropped so request handling never blocks.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100),
	}
}

// ProcessLog drains the channel. Run it in its own goroutine.
func (l *AsyncLogger) ProcessLog() {
	for entry := range l.channel {
		if l.db == nil {
			continue
		}

		dbLog := logModel.Log{
			Method:          entry.Method,
			URL:             entry.URL,
			RequestBody:     entry.RequestBody,
			ResponseBody:    entry.ResponseBody,
			RequestHeaders:  entry.RequestHeaders,
			ResponseHeaders: entry.ResponseHeaders,
			StatusCode:      entry.StatusCode,
			CreatedAt:       entry.CreatedAt,
		}

		if err := l.db.Create(&dbLog).Error; err != nil {
			Error(fmt.Sprintf("Failed to insert log entry for %s %s", entry.Method, entry.URL), err)
		}
	}
}

// Log queues an entry for persistence. Entries are dropped when the
// buffer is full rather than stalling the caller.
func (l *AsyncLogger) Log(entry types.LogEntry) {
	select {
	case l.channel <- entry:
	default:
	}
}
