package processor

import (
	"log/slog"

	"github.com/dmitrymomot/conform/pkg/logger"
	"github.com/dmitrymomot/conform/pkg/maybe"
)

// RunOption configures a single run.
type RunOption func(*runConfig)

type runConfig struct {
	maxDepth int
	log      *slog.Logger
}

// WithMaxDepth limits how deep processors may derive. Zero disables the
// limit; negative values are ignored.
func WithMaxDepth(n int) RunOption {
	return func(c *runConfig) {
		if n >= 0 {
			c.maxDepth = n
		}
	}
}

// WithLogger logs failed runs at debug level. Nil is ignored.
func WithLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// Run wraps value in a root context and invokes p.
func Run[A any](p Processor[A], value any, opts ...RunOption) Result[A] {
	return RunMaybe(p, maybe.Some(value), opts...)
}

// RunMaybe is Run for a root value that may be absent.
func RunMaybe[A any](p Processor[A], value maybe.Option[any], opts ...RunOption) Result[A] {
	cfg := runConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	root := &Root{value: value, maxDepth: cfg.maxDepth}
	res := p(root)

	if cfg.log != nil && res.IsFailure() {
		reasons := Reasons(res.Errors())
		cfg.log.Debug("processor run failed",
			logger.Component("processor"),
			logger.ReasonCount(len(reasons)),
			logger.Paths(reasons.Paths()),
		)
	}
	return res
}

// RunCont runs p and reports the outcome through cont: cont(reasons, zero)
// on failure, where reasons is a Reasons value, or cont(nil, value).
func RunCont[A any](p Processor[A], value any, cont func(err error, value A), opts ...RunOption) {
	res := Run(p, value, opts...)
	if v, ok := res.Get(); ok {
		cont(nil, v)
		return
	}
	var zero A
	cont(Reasons(res.Errors()), zero)
}
