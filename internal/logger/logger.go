package logger

import (
	"go.uber.org/zap"
)

var log = zap.NewNop()

func Init() {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		// zap's production config building is deterministic; this
		// only fires on bad manual config edits.
		panic(err)
	}

	log = l
	log.Info("logger initialized")
}

func zapFields(fields map[string]any) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

func Info(msg string, fields map[string]any) {
	log.Info(msg, zapFields(fields)...)
}

func Warn(msg string, fields map[string]any) {
	log.Warn(msg, zapFields(fields)...)
}

func Error(msg string, fields map[string]any) {
	log.Error(msg, zapFields(fields)...)
}

// Fatal logs and exits with a non-zero status (zap handles the exit).
func Fatal(msg string, fields map[string]any) {
	log.Fatal(msg, zapFields(fields)...)
}
