package conform

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/conform/pkg/document"
	"github.com/dmitrymomot/conform/pkg/logger"
	"github.com/dmitrymomot/conform/pkg/message"
	"github.com/dmitrymomot/conform/pkg/processor"
)

// Engine runs processors with shared limits, logging and message catalog.
// It is safe for concurrent use.
type Engine struct {
	cfg     Config
	log     *slog.Logger
	catalog *message.Catalog
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger replaces the logger built from Config. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithCatalog replaces the built-in message catalog. Nil is ignored.
func WithCatalog(c *message.Catalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

// New validates cfg and builds an engine. Unless overridden, it logs with
// pkg/logger at cfg.LogLevel in cfg.LogFormat, tagging records with the
// language from the context, and localizes with message.Default.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}

	if e.log == nil {
		e.log = logger.New(
			logger.WithLevelName(cfg.LogLevel),
			logger.WithFormat(logger.Format(cfg.LogFormat)),
			logger.WithAttr(logger.Component("conform")),
			logger.WithContextValue("lang", languageContextKey{}),
		)
	}
	if e.catalog == nil {
		catalog, err := message.Default(
			message.WithLogger(e.log),
			message.WithMissingTranslationsLogging(true),
		)
		if err != nil {
			return nil, fmt.Errorf("loading default messages: %w", err)
		}
		e.catalog = catalog
	}

	return e, nil
}

// Config returns the engine settings.
func (e *Engine) Config() Config {
	return e.cfg
}

// Catalog returns the catalog used to render messages.
func (e *Engine) Catalog() *message.Catalog {
	return e.catalog
}

// Validate runs p against value. On failure it returns the zero value and
// a *ValidationError whose messages are rendered in the language carried by
// ctx (see WithLanguage), falling back to Config.Language.
func Validate[A any](ctx context.Context, e *Engine, p processor.Processor[A], value any) (A, error) {
	var zero A
	if e == nil {
		return zero, ErrNilEngine
	}

	start := time.Now()
	res := processor.Run(p, value, processor.WithMaxDepth(e.cfg.MaxDepth))
	if v, ok := res.Get(); ok {
		e.log.DebugContext(ctx, "validation passed", logger.Duration(time.Since(start)))
		return v, nil
	}

	verr := e.validationError(ctx, res.Errors())
	e.log.DebugContext(ctx, "validation failed",
		logger.ReasonCount(len(verr.reasons)),
		logger.Paths(verr.Paths()),
		logger.Duration(time.Since(start)),
	)
	return zero, verr
}

// ValidateDocument decodes data in format f and validates the result with
// p. Decoding failures are returned as document errors, not as a
// *ValidationError.
func ValidateDocument[A any](ctx context.Context, e *Engine, p processor.Processor[A], data []byte, f document.Format) (A, error) {
	var zero A
	if e == nil {
		return zero, ErrNilEngine
	}

	v, err := document.Decode(data, f)
	if err != nil {
		e.log.DebugContext(ctx, "document decoding failed", logger.Error(err))
		return zero, err
	}
	return Validate(ctx, e, p, v)
}

// Localize renders reasons as a *ValidationError in the language carried by
// ctx.
func (e *Engine) Localize(ctx context.Context, reasons []processor.Reason) *ValidationError {
	return e.validationError(ctx, reasons)
}

func (e *Engine) validationError(ctx context.Context, reasons []processor.Reason) *ValidationError {
	lang := LanguageFromContext(ctx)
	if lang == "" {
		lang = e.cfg.Language
	}

	verr := NewValidationError()
	verr.reasons = processor.Reasons(reasons)
	for _, r := range reasons {
		verr.Add(r.Path(), e.catalog.Translate(lang, r))
	}
	return verr
}
