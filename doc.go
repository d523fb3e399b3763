// Package conform validates and coerces loosely typed input (decoded JSON,
// YAML, form values) while tracking where in the structure every failure
// happened.
//
// Schemas are built from the combinator packages:
//
//   - pkg/processor: the Processor abstraction, its context and reasons.
//   - pkg/constraint: checks that keep the input as is.
//   - pkg/coercion: conversions between kinds with fallback candidates.
//   - pkg/message: localized failure messages.
//   - pkg/document: JSON and YAML decoding into processor input.
//
// The Engine in this package ties them to configuration, logging and a
// message catalog:
//
//	cfg, err := conform.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	engine, err := conform.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	signup := constraint.Object(
//	    constraint.Property(constraint.IsString, "email"),
//	    constraint.Property(coercion.Coercer(processor.KindNumber, coercion.Integer(10)), "age"),
//	)
//
//	ctx = conform.WithLanguage(ctx, r.Header.Get("Accept-Language"))
//	user, err := conform.ValidateDocument(ctx, engine, signup, body, document.FormatJSON)
//	var verr *conform.ValidationError
//	if errors.As(err, &verr) {
//	    // verr.Get(`["age"]`) holds the localized message
//	}
//
// # Configuration
//
// Config is read from CONFORM_MAX_DEPTH, CONFORM_LOG_LEVEL,
// CONFORM_LOG_FORMAT and CONFORM_LANGUAGE, optionally through a .env file.
package conform
