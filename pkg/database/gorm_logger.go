package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM output through the service logger
type gormLogger struct {
	logger interfaces.Logger
	debug  bool
}

// NewGormLogger adapts logger for GORM. With debug set every statement is traced.
func NewGormLogger(logger interfaces.Logger, debug bool) gormlogger.Interface {
	return &gormLogger{
		logger: logger.WithFields(interfaces.String("component", "gorm")),
		debug:  debug,
	}
}

func (l *gormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *gormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	l.logger.Info(fmt.Sprintf(msg, data...))
}

func (l *gormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	l.logger.Warn(fmt.Sprintf(msg, data...))
}

func (l *gormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	l.logger.Error(fmt.Sprintf(msg, data...))
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []interfaces.Field{
		interfaces.String("sql", sql),
		interfaces.Any("rows", rows),
		interfaces.Duration("elapsed", elapsed),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.Error("sql error", append(fields, interfaces.Error(err))...)
	case l.debug:
		l.logger.Debug("sql trace", fields...)
	case elapsed > slowQueryThreshold:
		l.logger.Warn("slow sql query", fields...)
	}
}
