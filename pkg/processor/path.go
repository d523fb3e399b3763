package processor

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/conform/pkg/maybe"
)

// LengthField is the pseudo-field that projects the length of an array.
const LengthField = "length"

// Path is one navigation step: an Index into an array or a Field of an
// object. The set of implementations is closed.
type Path interface {
	String() string
	isPath()
}

// Index selects an array element.
type Index int

func (Index) isPath() {}

func (i Index) String() string {
	return "[" + strconv.Itoa(int(i)) + "]"
}

// Field selects an object member.
type Field string

func (Field) isPath() {}

func (f Field) String() string {
	return "[" + strconv.Quote(string(f)) + "]"
}

// FormatPath renders a path list in bracket notation, e.g. ["a"]["b"][1].
func FormatPath(paths []Path) string {
	var b strings.Builder
	for _, p := range paths {
		b.WriteString(p.String())
	}
	return b.String()
}

// project looks up path in value. Absence propagates.
func project(value maybe.Option[any], path Path) maybe.Option[any] {
	v, ok := value.Get()
	if !ok {
		return maybe.None[any]()
	}
	switch p := path.(type) {
	case Index:
		return elementAt(v, int(p))
	case Field:
		return fieldOf(v, string(p))
	}
	return maybe.None[any]()
}

func elementAt(v any, i int) maybe.Option[any] {
	if i < 0 {
		return maybe.None[any]()
	}
	if s, ok := v.([]any); ok {
		if i < len(s) {
			return maybe.Some(s[i])
		}
		return maybe.None[any]()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if i < rv.Len() {
			return maybe.Some(rv.Index(i).Interface())
		}
	}
	return maybe.None[any]()
}

func fieldOf(v any, name string) maybe.Option[any] {
	if m, ok := v.(map[string]any); ok {
		if x, found := m[name]; found {
			return maybe.Some(x)
		}
		return maybe.None[any]()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			break
		}
		if mv := rv.MapIndex(reflect.ValueOf(name).Convert(kt)); mv.IsValid() {
			return maybe.Some(mv.Interface())
		}
	case reflect.Slice, reflect.Array:
		if name == LengthField {
			return maybe.Some[any](rv.Len())
		}
	}
	return maybe.None[any]()
}
