package message

import "errors"

var (
	ErrNoTranslations    = errors.New("no translations provided")
	ErrEmptyLanguage     = errors.New("empty language code")
	ErrInvalidLanguage   = errors.New("invalid language code")
	ErrInvalidStructure  = errors.New("invalid translation structure")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
)
