// Package logger provides the structured logging conventions shared by the
// outcome packages: a small factory around log/slog configured with
// functional options, and attribute helpers that keep key names consistent.
//
// Library packages never create loggers on their own. They fall back to
// slog.Default and accept a *slog.Logger through their own WithLogger options,
// so the application decides format, level and destination:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("billing-client")),
//	)
//
//	res, err := httpresult.ToResult(ctx, resp, httpresult.WithLogger(log))
//
// Helper constructors such as Error, FailureType and StatusCode return an
// empty slog.Attr for zero inputs, which slog drops, so call sites do not need
// nil checks.
package logger
