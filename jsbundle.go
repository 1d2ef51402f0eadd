package jsbundle

import (
	"context"

	"vimagination.zapto.org/javascript"
)

// Transformer compiles one variant of a source file into a syntax tree.
// The config value is the variant's opaque configuration, passed through
// from transform.Options unmodified; implementations define its type.
//
// Implementations must be safe for concurrent use: a single file transform
// may invoke Transform once per variant from separate goroutines.
type Transformer interface {
	Transform(ctx context.Context, source, filename string, config any) (*javascript.Script, error)
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(ctx context.Context, source, filename string, config any) (*javascript.Script, error)

func (f TransformerFunc) Transform(ctx context.Context, source, filename string, config any) (*javascript.Script, error) {
	return f(ctx, source, filename, config)
}

// Serializer renders a wrapped syntax tree to code text and positional
// source-map data. The source argument is the original, pre-transform text
// of the file; implementations that cannot produce a map return nil for it.
type Serializer interface {
	Serialize(tree *javascript.Script, filename, source string) (code string, sourceMap []byte, err error)
}

// SerializerFunc adapts a function to the Serializer interface.
type SerializerFunc func(tree *javascript.Script, filename, source string) (string, []byte, error)

func (f SerializerFunc) Serialize(tree *javascript.Script, filename, source string) (string, []byte, error) {
	return f(tree, filename, source)
}
