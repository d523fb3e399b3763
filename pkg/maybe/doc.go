// Package maybe provides Option, a generic container for a value that may be
// absent.
//
// Option is a thin layer over github.com/samber/mo's mo.Option that keeps
// "no value" apart from "a nil value": Some(nil) is present, None is not.
// FromMo and Mo convert between the two. Type-changing operations (Map,
// FlatMap, Fold) are package functions because Go methods cannot declare
// their own type parameters.
//
//	name := maybe.Some("alice")
//	upper := maybe.Map(name, strings.ToUpper)
//	fmt.Println(upper.GetOrElse("anonymous"))
package maybe
