package processor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/conform/pkg/maybe"
)

// Reason records one failure: where it happened and why.
type Reason struct {
	Context Context
	Code    Code
	Message string
	// Key and Params let a message catalog render Message in another
	// language. An empty Key means Message is final.
	Key    string
	Params map[string]any
}

// NewReason creates a reason without a translation key.
func NewReason(ctx Context, code Code, message string) Reason {
	return Reason{Context: ctx, Code: code, Message: message}
}

// WithKey returns a copy of r carrying a translation key and its parameters.
func (r Reason) WithKey(key string, params map[string]any) Reason {
	r.Key = key
	r.Params = params
	return r
}

// Path renders the location of the failure in bracket notation.
func (r Reason) Path() string {
	if r.Context == nil {
		return ""
	}
	return FormatPath(r.Context.PathList())
}

// Value is the offending value, None when it was missing.
func (r Reason) Value() maybe.Option[any] {
	if r.Context == nil {
		return maybe.None[any]()
	}
	return r.Context.Value()
}

// String renders "<path>: <value> - <message>", with "$" as the root path.
func (r Reason) String() string {
	path := r.Path()
	if path == "" {
		path = "$"
	}
	return path + ": " + formatValue(r.Value()) + " - " + r.Message
}

func formatValue(v maybe.Option[any]) string {
	x, ok := v.Get()
	if !ok {
		return "<undefined>"
	}
	if x == nil {
		return "null"
	}
	return fmt.Sprintf("%v", x)
}

// Reasons is an ordered list of failures. It implements error so a failed
// run can travel through ordinary error returns.
type Reasons []Reason

func (rs Reasons) Error() string {
	if len(rs) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(rs))
	for _, r := range rs {
		parts = append(parts, r.String())
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) true for any Reasons.
func (rs Reasons) Is(target error) bool {
	return target == ErrValidationFailed
}

// Has reports whether any reason points at path.
func (rs Reasons) Has(path string) bool {
	for _, r := range rs {
		if r.Path() == path {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for path, in order.
func (rs Reasons) Get(path string) []string {
	var messages []string
	for _, r := range rs {
		if r.Path() == path {
			messages = append(messages, r.Message)
		}
	}
	return messages
}

// Paths returns each failing location once, in first-seen order.
func (rs Reasons) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, r := range rs {
		p := r.Path()
		if !seen[p] {
			paths = append(paths, p)
			seen[p] = true
		}
	}
	return paths
}

// WithCode filters reasons by code.
func (rs Reasons) WithCode(code Code) Reasons {
	var out Reasons
	for _, r := range rs {
		if r.Code == code {
			out = append(out, r)
		}
	}
	return out
}

func (rs Reasons) IsEmpty() bool {
	return len(rs) == 0
}

// ExtractReasons pulls Reasons out of an error chain.
func ExtractReasons(err error) Reasons {
	if err == nil {
		return nil
	}
	var rs Reasons
	if errors.As(err, &rs) {
		return rs
	}
	return nil
}

// IsReasons reports whether err carries Reasons.
func IsReasons(err error) bool {
	if err == nil {
		return false
	}
	var rs Reasons
	return errors.As(err, &rs)
}
