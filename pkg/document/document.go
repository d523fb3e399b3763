package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format names an input encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatForm is an application/x-www-form-urlencoded body or query string.
	FormatForm Format = "form"
)

// Decode parses data in the given format into a processor input value.
func Decode(data []byte, f Format) (any, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	case FormatForm:
		return DecodeForm(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// DecodeJSON parses a single JSON value. Numbers stay json.Number so no
// precision is lost before a processor sees them.
func DecodeJSON(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrDecode)
	}
	return normalize(v), nil
}

// DecodeYAML parses a YAML document. Mapping keys are rendered as strings.
func DecodeYAML(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return normalize(v), nil
}

// DecodeYAMLAt parses the node of a YAML (or JSON) document addressed by a
// colon-separated path, e.g. "forms:signup". An empty path decodes the
// whole document.
func DecodeYAMLAt(data []byte, path string) (any, error) {
	if path == "" {
		return DecodeYAML(data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	p, err := yaml.PathString(toYAMLPath(path))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPath, path, err)
	}

	var v any
	if err := p.Read(bytes.NewReader(data), &v); err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return nil, fmt.Errorf("reading path %q: %w", path, errors.Join(ErrDecode, err))
	}
	return normalize(v), nil
}

// DecodeForm parses a URL-encoded body or query string. See FromValues.
func DecodeForm(data []byte) (any, error) {
	values, err := url.ParseQuery(string(data))
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return FromValues(values), nil
}

// FromValues turns form values into an object. A field sent once becomes a
// string; a repeated field becomes an array of strings. Values stay text so
// coercions decide how to read them.
func FromValues(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for name, vs := range values {
		switch len(vs) {
		case 0:
		case 1:
			out[name] = vs[0]
		default:
			items := make([]any, len(vs))
			for i, v := range vs {
				items[i] = v
			}
			out[name] = items
		}
	}
	return out
}

// toYAMLPath converts "a:b" to "$.a.b".
func toYAMLPath(path string) string {
	return "$." + strings.Join(strings.Split(path, ":"), ".")
}

// normalize rewrites decoded containers into []any and map[string]any.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		for i, e := range x {
			x[i] = normalize(e)
		}
		return x
	}
	return v
}
