package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"react-agent/internal/application/port/output"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ output.LoggerPort = (*LoggerAdapter)(nil)

const defaultDir = "log"

type Config struct {
	Dir      string
	TaskName string
	Level    string
}

type LoggerAdapter struct {
	sugar *zap.SugaredLogger
	path  string
	// file is set only on the logger that opened it; derived loggers share
	// the sink but never close it.
	file *os.File
}

// NewLoggerAdapter writes JSON lines to <Dir>/<timestamp>_<TaskName>.log.
func NewLoggerAdapter(cfg Config) (*LoggerAdapter, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.log", time.Now().Format("2006-01-02_15-04-05"), sanitize(cfg.TaskName))
	path := filepath.Join(dir, filename)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.MessageKey = "message"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(file), zap.NewAtomicLevelAt(level))
	z := zap.New(core, zap.ErrorOutput(zapcore.Lock(os.Stderr)))

	return &LoggerAdapter{
		sugar: z.Sugar(),
		path:  path,
		file:  file,
	}, nil
}

func NewNopLogger() *LoggerAdapter {
	return NewFromZap(zap.NewNop())
}

// NewFromZap wraps an existing zap logger, e.g. one built on
// zaptest/observer.
func NewFromZap(z *zap.Logger) *LoggerAdapter {
	return &LoggerAdapter{sugar: z.Sugar()}
}

// Path is the log file location, empty for the nop logger.
func (l *LoggerAdapter) Path() string {
	return l.path
}

func (l *LoggerAdapter) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *LoggerAdapter) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *LoggerAdapter) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *LoggerAdapter) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

func (l *LoggerAdapter) WithField(key string, value any) output.LoggerPort {
	return &LoggerAdapter{
		sugar: l.sugar.With(key, value),
		path:  l.path,
	}
}

func (l *LoggerAdapter) WithFields(fields map[string]any) output.LoggerPort {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}

	return &LoggerAdapter{
		sugar: l.sugar.With(args...),
		path:  l.path,
	}
}

// Close flushes and releases the log file. It is safe to call more than once.
func (l *LoggerAdapter) Close() error {
	if l.file == nil {
		return nil
	}

	syncErr := l.sugar.Sync()
	closeErr := l.file.Close()
	l.file = nil

	if syncErr != nil {
		return fmt.Errorf("sync log file: %w", syncErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close log file: %w", closeErr)
	}
	return nil
}

func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, s)
	s = strings.Trim(s, "_")
	if s == "" {
		return "task"
	}
	if len(s) > 60 {
		s = s[:60]
	}
	return s
}
