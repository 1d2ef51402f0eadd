// Package wrap rewrites a transformed syntax tree into its final, loadable
// form.
//
// A normal module becomes a single registration statement handing a factory
// function to the module-loader runtime:
//
//	__d(function(global, require, module, exports, _dependencyMap) {
//	    ...original program body...
//	});
//
// A polyfill instead becomes an immediately-invoked function so it runs in,
// and mutates, global scope at load time:
//
//	(function(global) {
//	    ...original program body...
//	})(<global reference>);
//
// Either way exactly one top-level statement is produced and the original
// program body is carried over whole, directives and statements in their
// original order.
//
// The registration symbol is a wire contract with the module-loader runtime;
// it is exposed as the RegisterName constant and can be substituted through
// Options for runtimes that register under a different name.
package wrap
