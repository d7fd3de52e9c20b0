// Package logger wraps the process-wide structured logger and run metrics.
//
// All log output goes to stderr so stdout stays clean for summaries and
// piped CSV. The default threshold is warning; verbose runs drop it to
// debug. Metrics accumulate counters and phase timings during a run and are
// dumped once at debug level when a pipeline finishes.
//
// Example usage:
//
//	logger.Warn("ocrmypdf failed; proceeding without OCR", logger.Fields{
//	    "path": src,
//	})
//
//	logger.Count("extract.candidates", int64(len(cands)))
//	logger.Timing("phase.parse", time.Since(start))
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Fields represents structured log fields.
type Fields = logrus.Fields

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// SetVerbose drops the logging threshold to debug. Passing false restores
// the default warning threshold.
func SetVerbose(verbose bool) {
	if verbose {
		std.SetLevel(logrus.DebugLevel)
	} else {
		std.SetLevel(logrus.WarnLevel)
	}
}

// SetOutput redirects log output. Tests use this to capture log lines.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Debug logs a debug message with optional structured fields.
func Debug(message string, fields Fields) {
	std.WithFields(fields).Debug(message)
}

// Info logs an informational message with optional structured fields.
func Info(message string, fields Fields) {
	std.WithFields(fields).Info(message)
}

// Warn logs a warning message with optional structured fields.
func Warn(message string, fields Fields) {
	std.WithFields(fields).Warn(message)
}

// Error logs an error message with optional structured fields and an error.
func Error(message string, fields Fields, err error) {
	entry := std.WithFields(fields)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(message)
}

// Metrics tracks run counters and cumulative phase timings.
// All operations are thread-safe.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	timings  map[string]time.Duration
}

var defaultMetrics = NewMetrics()

// NewMetrics creates a new metrics tracker with empty counters and timings.
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		timings:  make(map[string]time.Duration),
	}
}

// Add increments a counter by delta. Thread-safe.
func (m *Metrics) Add(name string, delta int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += delta
}

// Timing adds a duration to a named cumulative timing. Thread-safe.
func (m *Metrics) Timing(name string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] += d
}

// Snapshot returns the current counters and timings as a flat field map,
// with timings rendered as duration strings. The snapshot is a copy, safe
// to use concurrently with metric updates.
func (m *Metrics) Snapshot() Fields {
	m.mu.Lock()
	defer m.mu.Unlock()

	fields := make(Fields, len(m.counters)+len(m.timings))
	for name, n := range m.counters {
		fields[name] = n
	}
	for name, d := range m.timings {
		fields[name] = d.String()
	}
	return fields
}

// Package-level metrics functions using the default tracker.

// Count increments a counter on the default metrics tracker.
func Count(name string, delta int64) {
	defaultMetrics.Add(name, delta)
}

// Timing adds a duration to the default metrics tracker.
func Timing(name string, d time.Duration) {
	defaultMetrics.Timing(name, d)
}

// MetricsSnapshot returns the default tracker's current state.
func MetricsSnapshot() Fields {
	return defaultMetrics.Snapshot()
}
