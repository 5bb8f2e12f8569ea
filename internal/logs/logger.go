package logs

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Level string

const (
	INFO  Level = "INFO"
	WARN  Level = "WARN"
	ERROR Level = "ERROR"
	DEBUG Level = "DEBUG"
)

// levelPriority defines the priority of each log level
// higher value = more severe
var levelPriority = map[Level]int{
	DEBUG: 1,
	INFO:  2,
	WARN:  3,
	ERROR: 4,
}

var zerologLevel = map[Level]zerolog.Level{
	DEBUG: zerolog.DebugLevel,
	INFO:  zerolog.InfoLevel,
	WARN:  zerolog.WarnLevel,
	ERROR: zerolog.ErrorLevel,
}

// ParseLevel maps a case-insensitive level name ("info", "WARN", ...) to a Level.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := levelPriority[level]; !ok {
		return "", fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

type Entry struct {
	TimeStamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// ring keeps the most recent entries. It is shared by a logger and
// every child created with With.
type ring struct {
	mu      sync.Mutex
	entries []Entry
	maxSize int
}

type Logger struct {
	ring   *ring
	level  Level
	sink   zerolog.Logger
	fields map[string]any
}

// level: minimum log level to record (e.g., INFO, WARN, ERROR, DEBUG)
//
// maxSize: maximum number of log entries kept in memory
//
// w: every recorded entry is also written there through zerolog; nil discards
func NewLogger(maxSize int, level Level, w io.Writer) *Logger {
	sink := zerolog.Nop()
	if w != nil {
		sink = zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}
	return &Logger{
		ring: &ring{
			entries: make([]Entry, 0, maxSize),
			maxSize: maxSize,
		},
		level: level,
		sink:  sink,
	}
}

// NewConsoleLogger writes human-readable lines to w.
func NewConsoleLogger(maxSize int, level Level, w io.Writer) *Logger {
	return NewLogger(maxSize, level, zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	})
}

// With returns a child logger that attaches key=value to every entry.
// The child shares the parent's in-memory history.
func (l *Logger) With(key string, value any) *Logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value

	return &Logger{
		ring:   l.ring,
		level:  l.level,
		sink:   l.sink.With().Interface(key, value).Logger(),
		fields: fields,
	}
}

// log is the internal logging function
// it applies level filtering, ring buffer behavior and forwards to the sink
func (l *Logger) log(level Level, msg string) {
	// filter logs below the current level
	if levelPriority[level] < levelPriority[l.level] {
		return
	}

	l.ring.mu.Lock()
	if l.ring.maxSize > 0 {
		if len(l.ring.entries) >= l.ring.maxSize {
			// remove oldest entry (ring behavior)
			l.ring.entries = l.ring.entries[1:]
		}
		l.ring.entries = append(l.ring.entries, Entry{
			TimeStamp: time.Now(),
			Level:     level,
			Message:   msg,
			Fields:    l.fields,
		})
	}
	l.ring.mu.Unlock()

	l.sink.WithLevel(zerologLevel[level]).Msg(msg)
}

func (l *Logger) Debug(msg string) {
	l.log(DEBUG, msg)
}

func (l *Logger) Info(msg string) {
	l.log(INFO, msg)
}

func (l *Logger) Warn(msg string) {
	l.log(WARN, msg)
}

func (l *Logger) Error(msg string) {
	l.log(ERROR, msg)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.log(DEBUG, fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...any) {
	l.log(INFO, fmt.Sprintf(format, args...))
}

func (l *Logger) GetLast(n int) []Entry {
	l.ring.mu.Lock()
	defer l.ring.mu.Unlock()

	if n > len(l.ring.entries) {
		out := make([]Entry, len(l.ring.entries))
		copy(out, l.ring.entries)
		return out
	}

	start := len(l.ring.entries) - n
	out := make([]Entry, n)
	copy(out, l.ring.entries[start:])
	return out
}
