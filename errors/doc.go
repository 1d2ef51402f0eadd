// Package errors provides structured error types for the jsbundle library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the file, the variant being transformed,
// and a cause chain, so a failing build can be traced back to one call site.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseTransform, errors.KindTransformer).
//		File("src/app.js").
//		Variant("prod").
//		Cause(cause).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Transformer("src/app.js", "prod", cause)
//	err := errors.MalformedData("pkg/config.json", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
