package transform

import (
	jsbundle "github.com/NilaySheth/jsbundle"
	"github.com/NilaySheth/jsbundle/errors"
	"github.com/NilaySheth/jsbundle/wrap"
)

// DefaultVariant names the build variant assumed when none are configured.
const DefaultVariant = "default"

// Variant is one named build configuration. Config is opaque to this
// package; it is handed to the Transformer unmodified.
type Variant struct {
	Name   string
	Config any
}

// Options configures a single file transform.
type Options struct {
	// File is the absolute or identifying path of the input. Required.
	File string

	// Polyfill marks the file as a global-scope polyfill: it is wrapped
	// as an immediately-invoked function instead of a registered module,
	// and no dependency extraction is performed.
	Polyfill bool

	// Transformer compiles each variant's source into a syntax tree.
	// Required for source-code files; asset and JSON paths ignore it.
	Transformer jsbundle.Transformer

	// Serializer renders wrapped trees to code and source-map data.
	// When nil, trees are printed directly and no map is produced.
	Serializer jsbundle.Serializer

	// RegisterName overrides the module-loader registration symbol
	// (wrap.RegisterName) when non-empty.
	RegisterName string

	// Variants are the build configurations to produce, in order.
	// Defaults to a single DefaultVariant with a nil configuration.
	Variants []Variant
}

func (o Options) withDefaults() (Options, error) {
	if o.File == "" {
		return o, errors.InvalidInput(errors.PhaseClassify, "missing filename")
	}

	if len(o.Variants) == 0 {
		o.Variants = []Variant{{Name: DefaultVariant}}
	}

	seen := make(map[string]bool, len(o.Variants))
	for _, v := range o.Variants {
		if seen[v.Name] {
			return o, errors.New(errors.PhaseClassify, errors.KindInvalidInput).
				File(o.File).
				Detail("duplicate variant name %q", v.Name).
				Build()
		}
		seen[v.Name] = true
	}

	return o, nil
}

func (o Options) wrapOptions() *wrap.Options {
	if o.RegisterName == "" {
		return nil
	}
	return &wrap.Options{RegisterName: o.RegisterName}
}
