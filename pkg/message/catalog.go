package message

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/conform/pkg/logger"
	"github.com/dmitrymomot/conform/pkg/processor"
)

// DefaultLanguage is used when no option overrides it.
const DefaultLanguage = "en"

// Catalog renders reasons in a requested language. It is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	translations map[string]map[string]any
	defaultLang  string
	languages    []string
	matcher      language.Matcher
	logger       *slog.Logger
	logMissing   bool
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a request matches nothing.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger sets the logger used for missing translations.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs every key that has no translation.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(c *Catalog) {
		c.logMissing = enabled
	}
}

// New builds a catalog from translations keyed by language code, each
// holding nested maps addressed by dot-separated keys.
func New(translations map[string]map[string]any, opts ...Option) (*Catalog, error) {
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}

	c := &Catalog{
		translations: translations,
		defaultLang:  DefaultLanguage,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	others := make([]string, 0, len(translations))
	for lang, entries := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if entries == nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStructure, lang)
		}
		if lang != c.defaultLang {
			others = append(others, lang)
		}
	}
	slices.Sort(others)

	// The default language goes first so the matcher falls back to it.
	c.languages = append([]string{c.defaultLang}, others...)
	tags := make([]language.Tag, len(c.languages))
	for i, lang := range c.languages {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidLanguage, lang, err)
		}
		tags[i] = tag
	}
	c.matcher = language.NewMatcher(tags)

	return c, nil
}

// Languages returns the catalog's languages, the default first.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.languages)
}

// Match picks the supported language closest to lang. lang may be a single
// tag ("pt-BR") or an Accept-Language value ("de-CH,de;q=0.9,en;q=0.5").
// Anything unmatched resolves to the default language.
func (c *Catalog) Match(lang string) string {
	if lang == "" {
		return c.defaultLang
	}
	_, idx := language.MatchStrings(c.matcher, lang)
	return c.languages[idx]
}

// T looks up key for lang and substitutes %{name} placeholders from params.
// The boolean reports whether a translation was found.
func (c *Catalog) T(lang, key string, params map[string]any) (string, bool) {
	lang = c.Match(lang)
	entries, ok := c.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := lookup(entries, key)
	if !ok {
		return "", false
	}
	tmpl, ok := val.(string)
	if !ok {
		return "", false
	}
	return substitute(tmpl, params), true
}

// Translate renders r in lang. Reasons without a key, and keys the catalog
// does not know, keep their original message.
func (c *Catalog) Translate(lang string, r processor.Reason) string {
	if r.Key == "" {
		return r.Message
	}
	if s, ok := c.T(lang, r.Key, r.Params); ok {
		return s
	}
	if c.logMissing {
		c.logger.Warn("translation not found",
			logger.Component("message"),
			logger.Language(c.Match(lang)),
			logger.Key(r.Key),
		)
	}
	return r.Message
}

// lookup walks nested maps along a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with params[name]; unknown names stay as is.
func substitute(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
