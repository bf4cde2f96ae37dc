package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/javiermolinar/calpick/internal/calendar"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "calpick-debug.log"

// NewDebugLogger returns a JSON logger writing to DebugLogPath when enabled,
// and a no-op logger otherwise. Callers should Sync the logger on exit.
func NewDebugLogger(enabled bool) (*zap.Logger, error) {
	if !enabled {
		return zap.NewNop(), nil
	}
	return newFileLogger(DebugLogPath)
}

func newFileLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}
	log.Debug("debug start", zap.String("log_file", path))
	return log, nil
}

// logKeyPress logs a key press event.
func (m Model) logKeyPress(msg tea.KeyMsg) {
	m.log.Debug("key press",
		zap.String("key", msg.String()),
		zap.Stringer("focus", m.focus),
	)
}

// logMouse logs mouse events that reach the picker.
func (m Model) logMouse(msg tea.MouseMsg, kind string) {
	m.log.Debug("mouse",
		zap.String("hit", kind),
		zap.Int("x", msg.X),
		zap.Int("y", msg.Y),
		zap.Bool("shift", msg.Shift),
		zap.String("event", msg.String()),
	)
}

// logFocusMove logs cursor movement.
func (m Model) logFocusMove(from, to calendar.Date, reason string) {
	m.log.Debug("focus move",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.String("reason", reason),
	)
}
