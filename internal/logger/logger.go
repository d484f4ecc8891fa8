package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "resume-analyzer"

// Options selects the logger preset. Env "production" yields sampled JSON logs at info
// level; any other value yields human readable console logs.
type Options struct {
	Env   string
	JSON  bool
	Debug bool
}

func (o Options) production() bool {
	return strings.EqualFold(o.Env, "production")
}

func New(opts Options) (*zap.Logger, error) {
	return buildConfig(opts).Build()
}

func buildConfig(opts Options) zap.Config {
	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	if opts.production() {
		return zap.Config{
			Encoding:         "json",
			Level:            zap.NewAtomicLevelAt(level),
			Sampling:         &zap.SamplingConfig{Initial: 100, Thereafter: 100},
			OutputPaths:      []string{"stdout"},
			ErrorOutputPaths: []string{"stderr"},
			InitialFields:    map[string]interface{}{"service": serviceName},
			EncoderConfig: zapcore.EncoderConfig{
				MessageKey:    "msg",
				LevelKey:      "level",
				EncodeLevel:   zapcore.LowercaseLevelEncoder,
				TimeKey:       "time",
				EncodeTime:    zapcore.RFC3339TimeEncoder,
				CallerKey:     "caller",
				EncodeCaller:  zapcore.ShortCallerEncoder,
				StacktraceKey: "stacktrace",
			},
		}
	}

	encoding := "console"
	encodeLevel := zapcore.CapitalColorLevelEncoder
	if opts.JSON {
		encoding = "json"
		encodeLevel = zapcore.LowercaseLevelEncoder
	}

	return zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		Development:      true,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "level",
			EncodeLevel:    encodeLevel,
			TimeKey:        "time",
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			CallerKey:      "caller",
			EncodeCaller:   zapcore.ShortCallerEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
	}
}

// Preview shortens text for log fields, appending an ellipsis when truncated.
func Preview(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
