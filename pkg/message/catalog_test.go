package message_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conform/pkg/constraint"
	"github.com/dmitrymomot/conform/pkg/logger"
	"github.com/dmitrymomot/conform/pkg/message"
	"github.com/dmitrymomot/conform/pkg/processor"
)

const catalogYAML = `
en:
  greeting: "Hello, %{name}!"
  nested:
    deep:
      key: "deep value"
fr:
  greeting: "Bonjour, %{name} !"
`

func newCatalog(t *testing.T, opts ...message.Option) *message.Catalog {
	t.Helper()
	translations, err := message.ParseYAML([]byte(catalogYAML))
	require.NoError(t, err)
	c, err := message.New(translations, opts...)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("fails without translations", func(t *testing.T) {
		_, err := message.New(nil)
		assert.ErrorIs(t, err, message.ErrNoTranslations)
	})

	t.Run("fails on empty language code", func(t *testing.T) {
		_, err := message.New(map[string]map[string]any{"": {"a": "b"}})
		assert.ErrorIs(t, err, message.ErrEmptyLanguage)
	})

	t.Run("fails on invalid language code", func(t *testing.T) {
		_, err := message.New(map[string]map[string]any{"en": {}, "not a tag!": {}})
		assert.ErrorIs(t, err, message.ErrInvalidLanguage)
	})

	t.Run("lists the default language first", func(t *testing.T) {
		c := newCatalog(t, message.WithDefaultLanguage("fr"))
		assert.Equal(t, []string{"fr", "en"}, c.Languages())
	})
}

func TestMatch(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)

	assert.Equal(t, "en", c.Match(""))
	assert.Equal(t, "fr", c.Match("fr"))
	assert.Equal(t, "fr", c.Match("fr-CA"))
	assert.Equal(t, "fr", c.Match("de-CH,fr;q=0.8,en;q=0.5"))
	assert.Equal(t, "en", c.Match("ja"))
}

func TestT(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)

	t.Run("substitutes parameters", func(t *testing.T) {
		s, ok := c.T("fr", "greeting", map[string]any{"name": "Ann"})
		assert.True(t, ok)
		assert.Equal(t, "Bonjour, Ann !", s)
	})

	t.Run("keeps unknown placeholders", func(t *testing.T) {
		s, ok := c.T("en", "greeting", map[string]any{"other": 1})
		assert.True(t, ok)
		assert.Equal(t, "Hello, %{name}!", s)
	})

	t.Run("resolves nested keys", func(t *testing.T) {
		s, ok := c.T("en", "nested.deep.key", nil)
		assert.True(t, ok)
		assert.Equal(t, "deep value", s)
	})

	t.Run("misses non-string values and unknown keys", func(t *testing.T) {
		_, ok := c.T("en", "nested.deep", nil)
		assert.False(t, ok)
		_, ok = c.T("en", "nested.deep.key.more", nil)
		assert.False(t, ok)
		_, ok = c.T("fr", "nested.deep.key", nil)
		assert.False(t, ok)
	})
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	c, err := message.Default()
	require.NoError(t, err)

	t.Run("translates built-in reasons", func(t *testing.T) {
		errs := processor.Run(constraint.IsGt(5), 2).Errors()
		require.Len(t, errs, 1)
		assert.Equal(t, "no es mayor que 5", c.Translate("es", errs[0]))
		assert.Equal(t, "is not greater than 5", c.Translate("en-US", errs[0]))
	})

	t.Run("keeps messages without a key", func(t *testing.T) {
		r := processor.NewReason(processor.NewRoot(1), processor.CodePredicateFailed, "is not even")
		assert.Equal(t, "is not even", c.Translate("es", r))
	})

	t.Run("falls back to the message for unknown keys", func(t *testing.T) {
		r := processor.NewReason(processor.NewRoot(1), processor.CodeCustom, "custom").WithKey("app.unknown", nil)
		assert.Equal(t, "custom", c.Translate("es", r))
	})
}

func TestTranslateLogsMissing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := newCatalog(t,
		message.WithLogger(logger.New(logger.WithOutput(&buf), logger.WithJSONFormatter())),
		message.WithMissingTranslationsLogging(true),
	)

	r := processor.NewReason(processor.NewRoot(1), processor.CodeCustom, "fallback").WithKey("missing.key", nil)
	assert.Equal(t, "fallback", c.Translate("fr", r))
	assert.Contains(t, buf.String(), `"key":"missing.key"`)
	assert.Contains(t, buf.String(), `"lang":"fr"`)
}

func TestDefaultCoversBuiltinKeys(t *testing.T) {
	t.Parallel()

	c, err := message.Default()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en", "es"}, c.Languages())

	keys := []string{
		"validation.not_defined", "validation.type", "validation.eq", "validation.gt",
		"validation.gte", "validation.lt", "validation.lte", "validation.disallowed",
		"validation.duplicate", "validation.array_length", "validation.max_depth",
		"coercion.undefined", "coercion.type_mismatch", "coercion.no_candidate",
		"coercion.integer", "coercion.float", "coercion.boolean", "coercion.text",
		"coercion.uuid", "coercion.decimal", "coercion.time",
	}
	for _, lang := range c.Languages() {
		for _, key := range keys {
			_, ok := c.T(lang, key, nil)
			assert.True(t, ok, "%s: %s", lang, key)
		}
	}
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := message.ParseYAML([]byte("en: [unclosed"))
		assert.ErrorIs(t, err, message.ErrFailedToParseYAML)
	})

	t.Run("rejects non-map languages", func(t *testing.T) {
		_, err := message.ParseYAML([]byte("en: hello"))
		assert.ErrorIs(t, err, message.ErrInvalidStructure)
	})

	t.Run("rejects empty documents", func(t *testing.T) {
		_, err := message.ParseYAML([]byte(""))
		assert.ErrorIs(t, err, message.ErrNoTranslations)
	})
}

func TestLoadFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("en:\n  a: one\n")},
		"b.yaml": {Data: []byte("de:\n  a: eins\n")},
	}

	translations, err := message.LoadFS(fsys, "a.yaml", "b.yaml")
	require.NoError(t, err)
	assert.Len(t, translations, 2)

	_, err = message.LoadFS(fsys, "missing.yaml")
	assert.ErrorIs(t, err, message.ErrFailedToReadFile)
}
