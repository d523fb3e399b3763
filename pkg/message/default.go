package message

import (
	"embed"
	"io/fs"
)

//go:embed locales/*.yaml
var locales embed.FS

// Default returns a catalog with the built-in English and Spanish messages
// for every reason the constraint and coercion packages produce.
func Default(opts ...Option) (*Catalog, error) {
	names, err := fs.Glob(locales, "locales/*.yaml")
	if err != nil {
		return nil, err
	}
	translations, err := LoadFS(locales, names...)
	if err != nil {
		return nil, err
	}
	return New(translations, opts...)
}
