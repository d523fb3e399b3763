package conform

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid engine configuration")
	ErrNilEngine     = errors.New("nil engine")
)
