package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.uber.org/zap"
	"vimagination.zapto.org/javascript"

	"github.com/NilaySheth/jsbundle/errors"
	"github.com/NilaySheth/jsbundle/internal/jstree"
)

// Config is the per-variant configuration understood by Transformer.
type Config struct {
	// Target selects the output language level: "es5", "es2015" ...
	// "es2022", or "esnext". Empty means es2015.
	Target string

	// Defines maps identifiers to constant-expression replacements,
	// e.g. {"__DEV__": "true"}.
	Defines map[string]string

	// Minify compresses syntax and whitespace. Identifiers are never
	// renamed so dependency references stay recognizable.
	Minify bool
}

var targets = map[string]api.Target{
	"":       api.ES2015,
	"es5":    api.ES5,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"esnext": api.ESNext,
}

// Transformer compiles source files with esbuild and parses the output into
// a syntax tree. It implements jsbundle.Transformer.
type Transformer struct{}

// NewTransformer creates the stock esbuild transformer.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform compiles one variant of the file. ES module syntax is lowered
// to CommonJS so dependency references surface as require calls.
func (t *Transformer) Transform(ctx context.Context, source, filename string, config any) (*javascript.Script, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := asConfig(config)
	if err != nil {
		return nil, err
	}

	target, ok := targets[strings.ToLower(cfg.Target)]
	if !ok {
		return nil, errors.InvalidInput(errors.PhaseTransform, fmt.Sprintf("unknown target %q", cfg.Target))
	}

	result := api.Transform(source, api.TransformOptions{
		Loader:           loaderForFile(filename),
		Format:           api.FormatCommonJS,
		Target:           target,
		Define:           cfg.Defines,
		MinifySyntax:     cfg.Minify,
		MinifyWhitespace: cfg.Minify,
		Sourcefile:       filename,
		LogLevel:         api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return nil, messagesError(filename, result.Errors)
	}

	Logger().Debug("compiled variant source",
		zap.String("file", filename),
		zap.Int("bytes", len(result.Code)))

	tree, err := jstree.ParseScript(string(result.Code))
	if err != nil {
		return nil, fmt.Errorf("parsing compiled output of %s: %w", filename, err)
	}

	return tree, nil
}

// Serializer renders wrapped trees through esbuild, producing final code
// and an external source map. It implements jsbundle.Serializer.
type Serializer struct{}

// NewSerializer creates the stock source-map-producing serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Serialize prints tree and passes it through esbuild once more for the
// source map. The source argument names the pre-transform text in the map's
// sources content.
func (s *Serializer) Serialize(tree *javascript.Script, filename, source string) (string, []byte, error) {
	result := api.Transform(jstree.Print(tree), api.TransformOptions{
		Loader:     api.LoaderJS,
		Sourcemap:  api.SourceMapExternal,
		Sourcefile: filename,
		LogLevel:   api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return "", nil, messagesError(filename, result.Errors)
	}

	return string(result.Code), result.Map, nil
}

func asConfig(config any) (Config, error) {
	switch c := config.(type) {
	case nil:
		return Config{}, nil
	case Config:
		return c, nil
	case *Config:
		if c == nil {
			return Config{}, nil
		}
		return *c, nil
	default:
		return Config{}, errors.New(errors.PhaseTransform, errors.KindInvalidInput).
			Detail("variant config must be an engine.Config, got %T", config).
			Value(config).
			Build()
	}
}

func loaderForFile(filename string) api.Loader {
	switch filepath.Ext(filename) {
	case ".ts":
		return api.LoaderTS
	case ".tsx":
		return api.LoaderTSX
	case ".jsx":
		return api.LoaderJSX
	default:
		return api.LoaderJS
	}
}

// messagesError flattens esbuild diagnostics into one error, keeping each
// message's location.
func messagesError(filename string, msgs []api.Message) error {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.Location != nil {
			lines = append(lines, fmt.Sprintf("%s:%d:%d: %s", filename, m.Location.Line, m.Location.Column, m.Text))
		} else {
			lines = append(lines, fmt.Sprintf("%s: %s", filename, m.Text))
		}
	}

	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}
