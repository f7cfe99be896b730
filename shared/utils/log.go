package utils

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type logKey struct{}

func LogToCtx(ctx context.Context, logger log.FieldLogger) context.Context {
	return context.WithValue(ctx, logKey{}, logger)
}

// LogFromCtx falls back to the standard logrus logger when ctx carries none.
func LogFromCtx(ctx context.Context) log.FieldLogger {
	return LogFromCtxOr(ctx, log.StandardLogger())
}

func LogFromCtxOr(ctx context.Context, def log.FieldLogger) log.FieldLogger {
	if l, ok := ctx.Value(logKey{}).(log.FieldLogger); ok {
		return l
	}
	return def
}

func LogTagsToCtx(ctx context.Context, tags log.Fields) (context.Context, log.FieldLogger) {
	logger := LogFromCtx(ctx).WithFields(tags)

	return LogToCtx(ctx, logger), logger
}
