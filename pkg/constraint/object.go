package constraint

import (
	"fmt"

	"github.com/dmitrymomot/conform/pkg/maybe"
	"github.com/dmitrymomot/conform/pkg/processor"
)

// Entry is one validated object member.
type Entry struct {
	Name  string
	Value any
}

// FieldProcessor produces zero or one entry for Assoc.
type FieldProcessor = processor.Processor[maybe.Option[Entry]]

// Options configures OptionalProperty.
type Options struct {
	// Default is used when the property is absent.
	Default maybe.Option[any]
}

// WithDefault is shorthand for Options{Default: maybe.Some(v)}.
func WithDefault(v any) Options {
	return Options{Default: maybe.Some(v)}
}

// Property requires the field name to exist and then applies c to it. The
// existence check gates c.
func Property[A any](c processor.Processor[A], name string) FieldProcessor {
	path := processor.Field(name)
	gated := processor.Chain(Exists.Asks(path), func(any) processor.Processor[A] {
		return c.Asks(path)
	})
	return processor.Map(gated, func(v A) maybe.Option[Entry] {
		return maybe.Some(Entry{Name: name, Value: v})
	})
}

// OptionalProperty behaves like Property when the field is present. When it
// is absent the result is the configured default, or no entry at all.
func OptionalProperty[A any](c processor.Processor[A], opts Options, name string) FieldProcessor {
	required := Property(c, name)
	return func(ctx processor.Context) processor.Result[maybe.Option[Entry]] {
		if ctx.Derive(processor.Field(name)).Value().IsSome() {
			return required(ctx)
		}
		if def, ok := opts.Default.Get(); ok {
			return processor.Succeed(maybe.Some(Entry{Name: name, Value: def}))
		}
		return processor.Succeed(maybe.None[Entry]())
	}
}

// RejectProperty fails when the field name is present. It yields no entry.
func RejectProperty(name string) FieldProcessor {
	path := processor.Field(name)
	return func(ctx processor.Context) processor.Result[maybe.Option[Entry]] {
		child := ctx.Derive(path)
		if child.Value().IsNone() {
			return processor.Succeed(maybe.None[Entry]())
		}
		return processor.Fail[maybe.Option[Entry]](
			processor.NewReason(child, processor.CodeDisallowed, fmt.Sprintf("property %s is disallowed", name)).
				WithKey("validation.disallowed", map[string]any{"property": name}),
		)
	}
}

// Assoc runs every field processor, folds the produced entries into an
// object and reports all failures in declaration order. Two fields
// producing the same name is a failure.
func Assoc(fields ...FieldProcessor) processor.Processor[map[string]any] {
	all := processor.Sequence(fields...)
	return func(ctx processor.Context) processor.Result[map[string]any] {
		res := all(ctx)
		entries, ok := res.Get()
		if !ok {
			return processor.Fail[map[string]any](res.Errors()...)
		}

		out := make(map[string]any, len(entries))
		var dups []processor.Reason
		for _, e := range entries {
			entry, present := e.Get()
			if !present {
				continue
			}
			if _, exists := out[entry.Name]; exists {
				dups = append(dups, processor.NewReason(ctx.Derive(processor.Field(entry.Name)), processor.CodeDuplicate,
					fmt.Sprintf("property %s is declared more than once", entry.Name),
				).WithKey("validation.duplicate", map[string]any{"property": entry.Name}))
				continue
			}
			out[entry.Name] = entry.Value
		}
		if len(dups) > 0 {
			return processor.Fail[map[string]any](dups...)
		}
		return processor.Succeed(out)
	}
}

// Object requires an object value and then assembles it with Assoc.
func Object(fields ...FieldProcessor) processor.Processor[map[string]any] {
	assoc := Assoc(fields...)
	return processor.Chain(IsObject, func(any) processor.Processor[map[string]any] {
		return assoc
	})
}
