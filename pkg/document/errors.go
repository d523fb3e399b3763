package document

import "errors"

var (
	// ErrEmptyData is returned when the input holds no document.
	ErrEmptyData = errors.New("empty data")
	// ErrPathNotFound is returned when a YAML path selects nothing.
	ErrPathNotFound      = errors.New("path not found")
	ErrInvalidPath       = errors.New("invalid path")
	ErrDecode            = errors.New("failed to decode document")
	ErrUnsupportedFormat = errors.New("unsupported document format")
)
