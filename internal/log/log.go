// Package log provides a global interface to logging functionality
package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type fieldsKey struct{}

// WithFields returns a context whose log lines carry the given fields.
func WithFields(ctx context.Context, fields logrus.Fields) context.Context {
	return context.WithValue(ctx, fieldsKey{}, fields)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Errorf(format, args...)
}

func entry(ctx context.Context) *logrus.Entry {
	logger := logrus.StandardLogger()
	if ctx == nil {
		return logrus.NewEntry(logger)
	}

	if fields, ok := ctx.Value(fieldsKey{}).(logrus.Fields); ok {
		return logger.WithFields(fields)
	}

	return logrus.NewEntry(logger)
}
