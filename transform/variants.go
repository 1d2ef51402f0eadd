package transform

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"vimagination.zapto.org/javascript"

	"github.com/NilaySheth/jsbundle/collect"
	"github.com/NilaySheth/jsbundle/errors"
	"github.com/NilaySheth/jsbundle/wrap"
)

// transformVariants fans out one goroutine per variant and aggregates
// all-or-nothing. On the first failure the shared context is cancelled so
// in-flight siblings may stop early; siblings are otherwise left to finish,
// and any results they produce are discarded. The returned map's keys are
// exactly the configured variant names, whatever order the work finished in.
func transformVariants(ctx context.Context, source string, o Options) (map[string]*VariantResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*VariantResult, len(o.Variants))
	errs := make(chan error, len(o.Variants))

	var wg sync.WaitGroup
	for i, v := range o.Variants {
		wg.Add(1)
		go func(i int, v Variant) {
			defer wg.Done()

			r, err := transformVariant(ctx, source, v, o)
			if err != nil {
				errs <- err
				cancel()
				return
			}
			results[i] = r
		}(i, v)
	}
	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}

	out := make(map[string]*VariantResult, len(o.Variants))
	for i, v := range o.Variants {
		out[v.Name] = results[i]
	}

	return out, nil
}

// transformVariant runs one variant's compile, collect, wrap, serialize
// sequence on its own tree. Trees are never shared between variants.
func transformVariant(ctx context.Context, source string, v Variant, o Options) (*VariantResult, error) {
	tree, err := o.Transformer.Transform(ctx, source, o.File, v.Config)
	if err != nil {
		return nil, errors.Transformer(o.File, v.Name, err)
	}

	r := &VariantResult{}

	var wrapped *javascript.Script
	if o.Polyfill {
		wrapped, err = wrap.Polyfill(tree)
	} else {
		var deps *collect.Result
		if deps, err = collect.Collect(tree); err == nil {
			r.Dependencies = deps.Dependencies
			r.DependencyMapName = deps.MapName
			wrapped, err = wrap.Module(tree, deps.MapName, o.wrapOptions())
		}
	}
	if err != nil {
		return nil, err
	}

	if r.Code, r.SourceMap, err = serialize(wrapped, source, o); err != nil {
		return nil, errors.Serialize(o.File, err)
	}

	Logger().Debug("transformed variant",
		zap.String("file", o.File),
		zap.String("variant", v.Name),
		zap.Int("dependencies", len(r.Dependencies)))

	return r, nil
}

func serialize(tree *javascript.Script, source string, o Options) (string, []byte, error) {
	if o.Serializer == nil {
		return wrap.Print(tree), nil, nil
	}

	return o.Serializer.Serialize(tree, o.File, source)
}
