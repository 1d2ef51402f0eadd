// Package jsbundle provides the per-file transform stage of a JavaScript
// module bundler.
//
// Given one source file's raw bytes and a set of build configurations
// ("variants"), it produces a self-describing, bundler-ready module record
// containing generated executable code, extracted dependency references, and
// metadata, once per requested variant. It sits between a file-discovery
// layer (which walks a project tree and resolves import specifiers to paths)
// and a bundle assembler (which links many such records into a final
// artifact). Neither neighbor is part of this library.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	jsbundle/            Root package with the Transformer and Serializer capabilities
//	├── transform/       High-level API: file classification, variant fan-out, assembly
//	├── engine/          esbuild-backed Transformer and source-map Serializer
//	├── collect/         Syntax-tree dependency extraction and call-site rewriting
//	├── wrap/            Module-factory and polyfill wrappers, code generation
//	├── docblock/        Leading comment-block directive parsing
//	├── manifest/        JSON module handling and package manifest summaries
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Transform a single file for two build variants:
//
//	result, err := transform.Transform(ctx, src, transform.Options{
//	    File:        "/project/index.js",
//	    Transformer: engine.NewTransformer(),
//	    Serializer:  engine.NewSerializer(),
//	    Variants: []transform.Variant{
//	        {Name: "dev", Config: engine.Config{Defines: map[string]string{"__DEV__": "true"}}},
//	        {Name: "prod", Config: engine.Config{Defines: map[string]string{"__DEV__": "false"}, Minify: true}},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for name, v := range result.Variants {
//	    fmt.Println(name, v.Code)
//	}
//
// # Module Records
//
// Every input produces one transform.File, regardless of which path it took:
//
//   - Source files are transformed once per variant, scanned for require()
//     calls, and wrapped in a module-factory registration statement.
//   - JSON files become a module whose factory assigns the original text to
//     module.exports; package.json additionally yields a manifest summary.
//   - Image and other binary assets are carried as base64 content with no
//     variant output.
//
// The emitted registration call (wrap.RegisterName, conventionally "__d") is
// a wire contract with the module-loader runtime that later executes the
// bundle. Dependency order is equally contractual: the i-th require() call
// in source order occupies index i of the variant's dependency list, and the
// rewritten call sites index into the runtime dependency map at exactly that
// position.
//
// # Concurrency
//
// A single Transform call fans out one goroutine per variant. Variants share
// no mutable state; aggregation is all-or-nothing, and the first failing
// variant fails the whole file. Transformer and Serializer implementations
// must be safe for concurrent use.
package jsbundle
