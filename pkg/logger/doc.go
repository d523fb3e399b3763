// Package logger provides a context-aware wrapper around Go's slog package
// with functional options for configuration and helper attribute
// constructors used across conform.
//
// New returns a *slog.Logger configured by Option functions:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel / WithLevelName set the minimum level (see ParseLevel).
//   - WithOutput redirects records (stderr by default).
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes pulled from
//     a context.Context every time a record is handled.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler and wraps it with
// LogHandlerDecorator, which runs the registered ContextExtractor callbacks
// before delegating. Attribute helpers in attr.go (Path, Paths, ReasonCount,
// Component, Error...) keep key names consistent between the processor run
// loop, the message catalog and the engine.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevelName("debug"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	res := processor.Run(schema, input, processor.WithLogger(log))
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("validated", logger.Error(err))
//
// needs no nil check.
package logger
