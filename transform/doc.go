// Package transform is the high-level API for turning one source file into
// a bundler-ready module record.
//
// Transform classifies the file by extension and routes it down exactly one
// of three paths:
//
//   - image and other binary assets are base64-encoded and carried as data,
//   - JSON documents become modules exporting their (verbatim) text,
//   - everything else is compiled once per build variant, scanned for
//     dependency references, and wrapped for the module-loader runtime.
//
// Whatever the path, the result is one File with a uniform shape: the
// Variants map always holds exactly the configured variant names (or is
// empty for assets), and kind-specific fields never leak across paths.
//
// # Variants
//
// Each Variant pairs a name with an opaque configuration value understood by
// the configured Transformer. Variant compilations are independent and run
// concurrently; if any one fails, the whole file fails and no partial record
// is observable. When no variants are configured a single "default" variant
// with a nil configuration is assumed.
//
// Transform owns no file-system access and no caching: content arrives as
// bytes, and every call is self-contained given its inputs.
package transform
