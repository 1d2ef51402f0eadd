// Package collect extracts statically-declared dependency references from a
// transformed syntax tree.
//
// A dependency reference is a call to the well-known require function with a
// single string-literal argument. References are recorded in source order,
// one entry per call site; a specifier required twice occupies two slots.
// That ordering is a runtime contract: the i-th reference is rewritten in
// place to index slot i of the dependency map, and the module loader later
// resolves slot i to the module the i-th specifier named. Extraction and
// call-site rewriting live in this one package so the ordering assumption
// cannot drift between them.
//
// The synthesized dependency-map identifier is guaranteed fresh: it never
// collides with any identifier text occurring in the program, nor with the
// four fixed factory parameters (global, require, module, exports).
package collect
