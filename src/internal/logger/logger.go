package logger

import (
	"encoding/json"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Fields map[string]any

var sensitiveKeys = map[string]struct{}{
	"password":        {},
	"passwordhash":    {},
	"password_hash":   {},
	"clientsecret":    {},
	"client_secret":   {},
	"expopushtoken":   {},
	"expo_push_token": {},
	"signature":       {},
	"stripesignature": {},
	"authorization":   {},
	"channelkey":      {},
	"channel_key":     {},
}

var (
	mu   sync.RWMutex
	base = zap.NewNop()
)

// Config selects level and encoding of the process-wide logger.
type Config struct {
	Level  string
	Format string
}

// Init replaces the process-wide logger. Until it is called all output is discarded.
func Init(cfg Config) error {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format != "console" {
		format = "json"
	}

	zapConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          format,
		EncoderConfig:     encoderConfig,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	built, err := zapConfig.Build()
	if err != nil {
		return err
	}

	mu.Lock()
	base = built
	mu.Unlock()
	return nil
}

func Sync() {
	_ = current().Sync()
}

func Info(message string, fields Fields) {
	current().Info(message, zapFields(fields)...)
}

func Warn(message string, fields Fields) {
	current().Warn(message, zapFields(fields)...)
}

func Error(message string, err error, fields Fields) {
	out := zapFields(fields)
	if err != nil {
		out = append(out, zap.String("error", err.Error()))
	}

	current().Error(message, out...)
}

func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// zapFields masks sensitive keys; other values reach zap with their original
// types. Nested maps are masked recursively.
func zapFields(fields Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		if isSensitiveKey(k) {
			out = append(out, zap.String(k, "******"))
			continue
		}
		out = append(out, zap.Any(k, sanitizeValue(v)))
	}
	return out
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case Fields:
		return sanitizeValue(map[string]any(typed))
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			if isSensitiveKey(key) {
				out[key] = "******"
				continue
			}
			out[key] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
