package audit

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(capacity int) *Log {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewLog(capacity, logger)
}

func TestLog_AppendAndRecent(t *testing.T) {
	log := newTestLog(10)

	log.Append(Entry{UserInput: "hello", SourceType: "ai_generated", Confidence: 85})

	entries := log.Recent()
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].UserInput)
	assert.NotZero(t, entries[0].ID)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestLog_EvictsOldestBeyondCapacity(t *testing.T) {
	log := newTestLog(100)

	for i := 1; i <= 150; i++ {
		log.Append(Entry{UserInput: fmt.Sprintf("message %d", i)})
	}

	entries := log.Recent()
	require.Len(t, entries, 100)
	assert.Equal(t, "message 51", entries[0].UserInput)
	assert.Equal(t, "message 150", entries[99].UserInput)
}

func TestLog_TruncatesUserInput(t *testing.T) {
	log := newTestLog(10)

	log.Append(Entry{UserInput: strings.Repeat("a", 400)})

	entries := log.Recent()
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].UserInput, 100)
}

func TestLog_Clear(t *testing.T) {
	log := newTestLog(10)
	log.Append(Entry{UserInput: "one"})
	log.Append(Entry{UserInput: "two"})

	log.Clear()

	assert.Empty(t, log.Recent())
	assert.Equal(t, 0, log.Size())
}

func TestLog_RecentReturnsCopy(t *testing.T) {
	log := newTestLog(10)
	log.Append(Entry{UserInput: "original"})

	entries := log.Recent()
	entries[0].UserInput = "mutated"

	assert.Equal(t, "original", log.Recent()[0].UserInput)
}

func TestLog_ConcurrentAppends(t *testing.T) {
	log := newTestLog(100)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				log.Append(Entry{UserInput: fmt.Sprintf("writer %d message %d", n, j)})
			}
		}(i)
	}
	wg.Wait()

	// 500 appends against capacity 100: the log must hold exactly its
	// capacity, no more and no fewer.
	assert.Equal(t, 100, log.Size())
}

func TestLog_DefaultCapacity(t *testing.T) {
	log := newTestLog(0)

	for i := 0; i < DefaultCapacity+5; i++ {
		log.Append(Entry{UserInput: "x"})
	}

	assert.Equal(t, DefaultCapacity, log.Size())
}
