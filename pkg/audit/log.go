package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultCapacity is the number of entries retained for transparency review.
const DefaultCapacity = 100

// inputTruncateLen bounds how much of the user's message is retained. The log
// never stores the full conversation.
const inputTruncateLen = 100

// Entry is the redacted projection of one moderation outcome.
type Entry struct {
	ID                uuid.UUID `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	UserInput         string    `json:"user_input"`
	SourceType        string    `json:"source_type"`
	CrisisLevel       string    `json:"crisis_level"`
	AIGenerated       bool      `json:"ai_generated"`
	ValidationPassed  bool      `json:"validation_passed"`
	Confidence        int       `json:"confidence"`
	RegenerationCount int       `json:"regeneration_count"`
}

// Log is a bounded FIFO of moderation outcomes. It is the only shared mutable
// state across turns; a single mutex serializes appends so eviction order
// holds under concurrent writers.
type Log struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	logger   *logrus.Logger
}

func NewLog(capacity int, logger *logrus.Logger) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
		logger:   logger,
	}
}

// Append records an entry, evicting the oldest when the log is full. The user
// input is truncated before storage.
func (l *Log) Append(entry Entry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	entry.UserInput = truncate(entry.UserInput, inputTruncateLen)

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) >= l.capacity {
		evicted := len(l.entries) - l.capacity + 1
		l.entries = append(l.entries[:0], l.entries[evicted:]...)
		l.logger.WithField("evicted", evicted).Debug("audit log at capacity, evicting oldest entries")
	}
	l.entries = append(l.entries, entry)
}

// Recent returns a copy of the retained entries, oldest first.
func (l *Log) Recent() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = l.entries[:0]
}

func (l *Log) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
