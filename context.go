package conform

import "context"

type languageContextKey struct{}

// WithLanguage stores the language failure messages should be rendered in.
// It accepts a tag ("pt-BR") or an Accept-Language value.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// LanguageFromContext returns the language stored by WithLanguage, or "".
func LanguageFromContext(ctx context.Context) string {
	lang, _ := ctx.Value(languageContextKey{}).(string)
	return lang
}
