// Package manifest handles structured-data modules and package manifests.
//
// JSON files become modules whose generated factory assigns the parsed value
// to module.exports. The original text is embedded verbatim rather than
// re-serialized so formatting and numeric precision survive bundling.
//
// Files named package.json are additionally recognized as package manifests
// and yield a Summary of the declared name, the primary entry point, and any
// per-platform entry points. Fields absent from the document stay absent in
// the summary; nothing is defaulted.
package manifest
