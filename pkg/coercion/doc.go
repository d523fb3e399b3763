// Package coercion converts loosely typed input into a target kind.
//
// Every coercion declares the input kinds it accepts. An absent value fails
// with "input is undefined", a value of another kind with "input type
// mismatch", and a value the conversion rejects with the coercion's own
// message. Coercer chains them: the value passes through unchanged when it
// already has the target kind, otherwise each candidate is tried in order.
//
//	toNumber := coercion.Coercer(processor.KindNumber, coercion.Integer(10), coercion.Float)
//
//	processor.Run(toNumber, 7)     // Success(7)
//	processor.Run(toNumber, "42")  // Success(int64(42))
//	processor.Run(toNumber, "4.5") // Success(4.5)
//	processor.Run(toNumber, "abc") // Failure: No provided coercions succeeded
//
// A Coercer hides the per-candidate reasons once all of them fail. Use the
// candidates directly when the detailed reasons matter.
//
// Built-in candidates: Integer, Float, Boolean, Text, UUID (google/uuid),
// Decimal (shopspring/decimal) and Time.
package coercion
