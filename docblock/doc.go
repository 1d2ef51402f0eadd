// Package docblock parses the leading structured comment block of a source
// file into @key value directives.
//
// A docblock is the first contiguous /** ... */ comment at the top of a
// file:
//
//	/**
//	 * @providesModule Banana
//	 * @flow
//	 */
//
// Directive values run to the end of the line; lines that do not start a new
// directive continue the previous one. A directive with no value parses to
// the empty string. The block is extracted once per file, never per variant,
// since it is identical across build configurations.
package docblock
