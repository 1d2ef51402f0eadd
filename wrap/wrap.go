package wrap

import (
	"fmt"

	"vimagination.zapto.org/javascript"

	"github.com/NilaySheth/jsbundle/errors"
	"github.com/NilaySheth/jsbundle/internal/jstree"
)

// RegisterName is the module-loader runtime's registration call. Generated
// module code is only loadable by a runtime that defines this function, so
// treat it as part of the wire format.
const RegisterName = "__d"

// GlobalRef locates the enclosing global object for polyfill wrappers,
// whichever host flavor is executing the bundle.
const GlobalRef = "typeof globalThis !== 'undefined' ? globalThis : typeof global !== 'undefined' ? global : this"

// Options adjusts code generation. The zero value emits RegisterName.
type Options struct {
	// RegisterName overrides the registration symbol when non-empty.
	RegisterName string
}

func (o *Options) registerName() string {
	if o != nil && o.RegisterName != "" {
		return o.RegisterName
	}
	return RegisterName
}

// Module rewrites tree into a single module-factory registration statement.
// The factory takes the four fixed parameters plus depMapName, and its body
// is the original program body.
func Module(tree *javascript.Script, depMapName string, opts *Options) (*javascript.Script, error) {
	skeleton := fmt.Sprintf("%s(function(global, require, module, exports, %s) {\n});", opts.registerName(), depMapName)

	return splice(tree, skeleton)
}

// Polyfill rewrites tree into a single immediately-invoked function
// statement. The function takes one parameter, global, and is called with
// the enclosing global-scope reference so the body executes in global scope
// instead of registering as an importable unit.
func Polyfill(tree *javascript.Script) (*javascript.Script, error) {
	skeleton := fmt.Sprintf("(function(global) {\n})(%s);", GlobalRef)

	return splice(tree, skeleton)
}

// DataModule generates the registration statement for a structured-data
// module. The document text is embedded verbatim after the export
// assignment; it is never re-serialized.
func DataModule(raw string, opts *Options) string {
	return fmt.Sprintf("%s(function(global, require, module, exports) {\n  module.exports = %s;\n});", opts.registerName(), raw)
}

// splice parses the one-statement wrapper skeleton and moves the original
// program body into its function.
func splice(tree *javascript.Script, skeleton string) (*javascript.Script, error) {
	if tree == nil {
		return nil, errors.WrapFailed("", "missing program body")
	}

	wrapper, err := jstree.ParseScript(skeleton)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseWrap, errors.KindWrap, err, "parsing wrapper skeleton")
	}

	fn := jstree.FirstFunction(wrapper)
	if fn == nil {
		return nil, errors.WrapFailed("", "wrapper skeleton has no function")
	}
	fn.FunctionBody.StatementList = tree.StatementList

	return wrapper, nil
}

// Print renders a wrapped tree to code text without source-map data. It is
// the fallback used when no Serializer capability is configured.
func Print(tree *javascript.Script) string {
	return jstree.Print(tree)
}
