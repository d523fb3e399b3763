package coercion

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/conform/pkg/maybe"
	"github.com/dmitrymomot/conform/pkg/processor"
)

// Boolean parses strings accepted by strconv.ParseBool ("true", "0", "F"...).
var Boolean = coerce([]processor.Kind{processor.KindString}, func(v any) maybe.Option[any] {
	b, err := strconv.ParseBool(strings.TrimSpace(stringOf(v)))
	if err != nil {
		return maybe.None[any]()
	}
	return maybe.Some[any](b)
}, keyed("coercion.boolean", "could not parse boolean", nil))

// Text renders numbers and booleans as strings.
var Text = coerce([]processor.Kind{processor.KindNumber, processor.KindBool}, func(v any) maybe.Option[any] {
	return maybe.Some[any](fmt.Sprint(v))
}, keyed("coercion.text", "could not convert to text", nil))

// UUID parses a string into a uuid.UUID.
var UUID = coerce([]processor.Kind{processor.KindString}, func(v any) maybe.Option[any] {
	id, err := uuid.Parse(strings.TrimSpace(stringOf(v)))
	if err != nil {
		return maybe.None[any]()
	}
	return maybe.Some[any](id)
}, keyed("coercion.uuid", "could not parse UUID", nil))

// Decimal converts strings and numbers into an exact decimal.Decimal.
// Floats convert through their shortest decimal representation; NaN and
// infinities fail.
var Decimal = coerce([]processor.Kind{processor.KindString, processor.KindNumber}, func(v any) maybe.Option[any] {
	d, err := toDecimal(v)
	if err != nil {
		return maybe.None[any]()
	}
	return maybe.Some[any](d)
}, keyed("coercion.decimal", "could not parse decimal", nil))

var errNotFinite = errors.New("decimal: value is not finite")

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Decimal{}, errNotFinite
		}
		return decimal.NewFromFloat(n), nil
	case float32:
		if f := float64(n); math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Decimal{}, errNotFinite
		}
		return decimal.NewFromFloat32(n), nil
	}
	if processor.KindOf(v) == processor.KindString {
		return decimal.NewFromString(strings.TrimSpace(stringOf(v)))
	}
	if i, ok := processor.AsInt(v); ok {
		return decimal.NewFromInt(int64(i)), nil
	}
	// Remaining numbers are unsigned values above MaxInt.
	return decimal.NewFromString(fmt.Sprint(v))
}

// Time parses a string with the given time.Parse layout.
func Time(layout string) processor.Processor[any] {
	return coerce([]processor.Kind{processor.KindString}, func(v any) maybe.Option[any] {
		t, err := time.Parse(layout, strings.TrimSpace(stringOf(v)))
		if err != nil {
			return maybe.None[any]()
		}
		return maybe.Some[any](t)
	}, keyed("coercion.time", "could not parse time with layout "+layout, map[string]any{"layout": layout}))
}
