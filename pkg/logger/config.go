package logger

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects a zap preset and the overrides applied on top of it.
// Empty fields keep the preset value.
type Options struct {
	Level       string // debug, info, warn, error
	Format      string // json or console
	Development bool
	OutputPath  string

	// Fields are attached to every entry
	Fields map[string]interface{}
}

func (o Options) zapConfig() (zap.Config, error) {
	var zc zap.Config
	if o.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.EncoderConfig.MessageKey = "message"
	}

	if o.Level != "" {
		level, err := zapcore.ParseLevel(o.Level)
		if err != nil {
			return zc, fmt.Errorf("invalid log level %q: %w", o.Level, err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	if o.Format != "" {
		zc.Encoding = o.Format
	}
	if o.OutputPath != "" {
		zc.OutputPaths = []string{o.OutputPath}
	}
	return zc, nil
}

// Build creates a ZapLogger from the options
func Build(o Options) (*ZapLogger, error) {
	zc, err := o.zapConfig()
	if err != nil {
		return nil, err
	}
	zl, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	if len(o.Fields) > 0 {
		keys := make([]string, 0, len(o.Fields))
		for k := range o.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]zap.Field, len(keys))
		for i, k := range keys {
			fields[i] = zap.Any(k, o.Fields[k])
		}
		zl = zl.With(fields...)
	}

	return NewFromZap(zl), nil
}
