// Package constraint provides processors that check input without changing
// it: existence, predicates, kinds, relational comparisons, object fields
// and arrays.
//
// Combinators decide deliberately between stopping at the first failure and
// reporting every failure. Property gates its constraint on the field
// existing; Array gates item checks on the value being an array. Assoc,
// Last, All and the per-item checks of Array run every branch and keep every
// reason in declaration (or index) order.
//
// # Usage
//
//	isEven := constraint.Check(func(v any) bool {
//	    n, ok := processor.AsInt(v)
//	    return ok && n%2 == 0
//	}, "is not even")
//
//	user := constraint.Object(
//	    constraint.Property(constraint.IsString, "name"),
//	    constraint.Property(constraint.Last(constraint.IsNumber, constraint.IsGte(18)), "age"),
//	    constraint.OptionalProperty(constraint.AnyLenArray(isEven), constraint.WithDefault([]any{}), "lucky"),
//	    constraint.RejectProperty("password"),
//	)
//	res := processor.Run(user, input)
//
// Failures carry translation keys (validation.not_defined, validation.gt,
// validation.type...) so a message catalog can localize them.
package constraint
