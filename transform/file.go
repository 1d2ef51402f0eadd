package transform

import (
	"github.com/NilaySheth/jsbundle/collect"
	"github.com/NilaySheth/jsbundle/manifest"
)

// Kind classifies how a file participates in the bundle.
type Kind string

const (
	// KindModule is a normal importable unit.
	KindModule Kind = "module"
	// KindScript is a polyfill loaded into global scope.
	KindScript Kind = "script"
	// KindAsset is non-code binary content.
	KindAsset Kind = "asset"
)

// File is the bundler-ready record produced for one input file. Records are
// immutable once returned; nothing aliases the caller's input.
type File struct {
	// File is the identifying path of the input.
	File string `json:"file"`

	// Source is the original source text. Empty for assets.
	Source string `json:"source,omitempty"`

	// AssetContent is the base64 encoding of the raw bytes. Present only
	// when Kind is KindAsset.
	AssetContent string `json:"assetContent,omitempty"`

	// ModuleID is the legacy module identifier declared by a docblock
	// directive or a JSON document's name field. Empty when undeclared.
	ModuleID string `json:"moduleId,omitempty"`

	Kind Kind `json:"kind"`

	// Variants holds one result per configured variant name. Empty for
	// assets; otherwise its keys are exactly the configured names.
	Variants map[string]*VariantResult `json:"variants"`

	// Manifest is present only when the input is a package manifest.
	Manifest *manifest.Summary `json:"manifest,omitempty"`
}

// VariantResult is one variant's generated output.
type VariantResult struct {
	// Code is the generated, wrapped module text.
	Code string `json:"code"`

	// SourceMap is positional mapping data, when the configured
	// Serializer produces one.
	SourceMap []byte `json:"sourceMap,omitempty"`

	// Dependencies are the statically detected references, in source
	// order. Index i corresponds to dependency-map slot i.
	Dependencies []collect.Dependency `json:"dependencies,omitempty"`

	// DependencyMapName is the synthesized dependency-map parameter.
	// Empty for polyfills and structured data.
	DependencyMapName string `json:"dependencyMapName,omitempty"`
}
