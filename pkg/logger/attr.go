package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path records a location inside the validated input under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Paths records failing locations under the key "paths".
// An empty list yields an empty Attr.
func Paths(ps []string) slog.Attr {
	if len(ps) == 0 {
		return slog.Attr{}
	}
	return slog.Any("paths", ps)
}

// ReasonCount records the number of failures under the key "reason_count".
func ReasonCount(n int) slog.Attr {
	return slog.Int("reason_count", n)
}

// Language records a message language under the key "lang".
func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Key records a translation key under the key "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
