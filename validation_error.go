package conform

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrymomot/conform/pkg/processor"
)

// ValidationError maps input locations to localized failure messages.
// Messages are keyed by bracket-notation path (`["user"]["age"]`); failures
// at the root use the empty path. It wraps the underlying reasons, so
// errors.Is(err, processor.ErrValidationFailed) holds.
type ValidationError struct {
	fields  url.Values
	paths   []string
	reasons processor.Reasons
}

// NewValidationError creates an empty validation error.
func NewValidationError() *ValidationError {
	return &ValidationError{fields: make(url.Values)}
}

// Error summarizes the first message of every path in failure order.
func (e *ValidationError) Error() string {
	if e.IsEmpty() {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.paths))
	for _, path := range e.paths {
		label := path
		if label == "" {
			label = "(root)"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", label, e.fields.Get(path)))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Unwrap exposes the processor reasons behind the error.
func (e *ValidationError) Unwrap() error {
	if len(e.reasons) == 0 {
		return nil
	}
	return e.reasons
}

// Add appends a message for path.
func (e *ValidationError) Add(path, message string) {
	if !e.fields.Has(path) {
		e.paths = append(e.paths, path)
	}
	e.fields.Add(path, message)
}

// Get returns the first message for path.
func (e *ValidationError) Get(path string) string {
	return e.fields.Get(path)
}

// All returns every message for path.
func (e *ValidationError) All(path string) []string {
	return e.fields[path]
}

// Has reports whether path has any message.
func (e *ValidationError) Has(path string) bool {
	return len(e.fields[path]) > 0
}

// Paths lists the failing paths in first-seen order.
func (e *ValidationError) Paths() []string {
	return append([]string(nil), e.paths...)
}

// Reasons returns the reasons the error was built from.
func (e *ValidationError) Reasons() processor.Reasons {
	return e.reasons
}

// IsEmpty reports whether no message was recorded.
func (e *ValidationError) IsEmpty() bool {
	return len(e.paths) == 0
}
