package transform

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/NilaySheth/jsbundle/docblock"
	"github.com/NilaySheth/jsbundle/errors"
	"github.com/NilaySheth/jsbundle/manifest"
	"github.com/NilaySheth/jsbundle/wrap"
)

// Transform produces the bundler-ready module record for one file. The
// classification by filename is deterministic and picks exactly one path;
// on any failure no record is returned.
func Transform(ctx context.Context, content []byte, opts Options) (*File, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	Logger().Debug("transforming file",
		zap.String("file", o.File),
		zap.Int("variants", len(o.Variants)))

	switch {
	case isAsset(o.File):
		return assetFile(o.File, content), nil
	case isStructuredData(o.File):
		return dataFile(o.File, string(content), o)
	default:
		return sourceFile(ctx, string(content), o)
	}
}

func isStructuredData(file string) bool {
	return strings.EqualFold(filepath.Ext(file), ".json")
}

// dataFile handles the structured-data path. The generated code is shared
// verbatim by every variant and carries no source map.
func dataFile(file, text string, o Options) (*File, error) {
	doc, err := manifest.Parse(text)
	if err != nil {
		return nil, errors.MalformedData(file, err)
	}

	code := wrap.DataModule(doc.Raw(), o.wrapOptions())
	variants := make(map[string]*VariantResult, len(o.Variants))
	for _, v := range o.Variants {
		variants[v.Name] = &VariantResult{Code: code}
	}

	f := &File{
		File:     file,
		Source:   text,
		ModuleID: doc.Name(),
		Kind:     KindModule,
		Variants: variants,
	}
	if manifest.IsManifest(file) {
		f.Manifest = doc.Summary()
	}

	return f, nil
}

// sourceFile handles the source-code path: docblock metadata once per file,
// then the per-variant fan-out.
func sourceFile(ctx context.Context, text string, o Options) (*File, error) {
	if o.Transformer == nil {
		return nil, errors.New(errors.PhaseTransform, errors.KindInvalidInput).
			File(o.File).
			Detail("missing transformer").
			Build()
	}

	kind := KindModule
	if o.Polyfill {
		kind = KindScript
	}

	variants, err := transformVariants(ctx, text, o)
	if err != nil {
		return nil, err
	}

	return &File{
		File:     o.File,
		Source:   text,
		ModuleID: docblock.ProvidesModule(text),
		Kind:     kind,
		Variants: variants,
	}, nil
}
