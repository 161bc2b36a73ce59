// Package logging provides a single-consumer asynchronous log queue that
// drains formatted entries onto a zerolog sink, mirroring the producer/
// consumer split of the original C++ renderer's AsyncQueue + Logger pair.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Level identifies the severity of a queued entry.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// entry is a single formatted log line plus the level it was logged at.
type entry struct {
	level Level
	msg   string
}

// Queue is an unbounded, single-consumer async log queue. Producers call
// Info/Warn/Error from any goroutine; a single background goroutine drains
// the queue and writes to the underlying zerolog.Logger.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	buf    []entry
	closed bool
	done   chan struct{}
	logger zerolog.Logger
}

// NewQueue creates a queue writing to w (os.Stderr if w is nil) and starts
// its consumer goroutine.
func NewQueue(w io.Writer) *Queue {
	if w == nil {
		w = os.Stderr
	}
	q := &Queue{
		done:   make(chan struct{}),
		logger: zerolog.New(w).With().Timestamp().Logger(),
	}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

// Default is the process-wide queue used by the package-level helpers.
var Default = NewQueue(nil)

// Info enqueues an informational message.
func Info(format string, args ...interface{}) { Default.Infof(format, args...) }

// Warn enqueues a warning message.
func Warn(format string, args ...interface{}) { Default.Warnf(format, args...) }

// Error enqueues an error message.
func Error(format string, args ...interface{}) { Default.Errorf(format, args...) }

func (q *Queue) push(level Level, msg string) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.buf = append(q.buf, entry{level: level, msg: msg})
	q.mu.Unlock()
	q.cond.Signal()
}

// Infof formats and enqueues an informational message.
func (q *Queue) Infof(format string, args ...interface{}) { q.push(LevelInfo, sprintf(format, args...)) }

// Warnf formats and enqueues a warning message.
func (q *Queue) Warnf(format string, args ...interface{}) { q.push(LevelWarn, sprintf(format, args...)) }

// Errorf formats and enqueues an error message.
func (q *Queue) Errorf(format string, args ...interface{}) {
	q.push(LevelError, sprintf(format, args...))
}

// run is the single consumer loop; it drains the buffer to the zerolog
// sink whenever producers signal new entries, and exits once Close has
// been called and the buffer has been fully drained.
func (q *Queue) run() {
	defer close(q.done)
	for {
		q.mu.Lock()
		for len(q.buf) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.buf) == 0 && q.closed {
			q.mu.Unlock()
			return
		}
		pending := q.buf
		q.buf = nil
		q.mu.Unlock()

		for _, e := range pending {
			q.write(e)
		}
	}
}

func (q *Queue) write(e entry) {
	switch e.level {
	case LevelWarn:
		q.logger.Warn().Msg(e.msg)
	case LevelError:
		q.logger.Error().Msg(e.msg)
	default:
		q.logger.Info().Msg(e.msg)
	}
}

// Close stops accepting new entries and blocks until the queue has fully
// drained the entries already enqueued.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()
	q.cond.Signal()
	<-q.done
}

func sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
