// Package engine provides the default code-transformer and serializer
// capabilities, backed by esbuild.
//
// The transform pipeline treats both capabilities as opaque: any
// implementation of jsbundle.Transformer and jsbundle.Serializer can be
// plugged into transform.Options. This package supplies the stock pair:
//
//	Transformer  - compiles one variant of a source file (loader chosen by
//	               file extension, target/defines/minification from the
//	               variant's Config) and parses the output into a syntax tree
//	Serializer   - prints a wrapped tree and re-runs it through esbuild to
//	               produce final code plus an external source map
//
// # Variant Configuration
//
// A variant's opaque configuration value must be a Config or *Config (or
// nil for defaults):
//
//	transform.Variant{
//	    Name:   "dev",
//	    Config: engine.Config{Defines: map[string]string{"__DEV__": "true"}},
//	}
//
// # Thread Safety
//
// Transformer and Serializer hold no mutable state and are safe for
// concurrent use; esbuild's Transform API is itself parallel internally.
package engine
