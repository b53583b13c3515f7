// Package logger provides slog attribute helpers with consistent keys for
// the serving pipeline. Helpers return an empty Attr for zero values, so
// call sites never need nil checks:
//
//	log.LogAttrs(ctx, slog.LevelError, "storage fault",
//		logger.Component("static"),
//		logger.Resource(name),
//		logger.Error(err),
//	)
package logger
