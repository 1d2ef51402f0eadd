package collect

import (
	"strconv"
	"strings"

	"vimagination.zapto.org/javascript"
	"vimagination.zapto.org/javascript/walk"

	"github.com/NilaySheth/jsbundle/errors"
	"github.com/NilaySheth/jsbundle/internal/jstree"
)

// requireName is the well-known dependency-reference function recognized in
// transformed source.
const requireName = "require"

// mapNameBase seeds the synthesized dependency-map identifier.
const mapNameBase = "_dependencyMap"

// wrapperParams are the fixed factory parameter names the synthesized map
// identifier must stay distinct from.
var wrapperParams = map[string]bool{
	"global":  true,
	"require": true,
	"module":  true,
	"exports": true,
}

// Dependency is one statically detected module reference. Name is the raw
// specifier text as written in source. Meta carries transformer-attached
// data, passed through unmodified; it is nil unless a caller populates it.
type Dependency struct {
	Name string `json:"name"`
	Meta any    `json:"meta,omitempty"`
}

// Result holds the ordered dependency references of one variant's tree and
// the identifier of the injected dependency map.
type Result struct {
	Dependencies []Dependency
	MapName      string
}

// Collect scans tree for require calls with a single string-literal
// argument, in source order, and rewrites each call site's argument to an
// indexed lookup into the dependency map. The tree is modified in place.
func Collect(tree *javascript.Script) (*Result, error) {
	if tree == nil {
		return nil, errors.New(errors.PhaseCollect, errors.KindWrap).Detail("missing syntax tree").Build()
	}

	r := &Result{MapName: FreshMapName(jstree.Print(tree))}
	c := &collector{res: r}
	if err := walk.Walk(tree, c); err != nil {
		return nil, errors.Wrap(errors.PhaseCollect, errors.KindWrap, err, "rewriting dependency call sites")
	}

	return r, nil
}

// FreshMapName synthesizes a dependency-map identifier that does not occur
// anywhere in source.
func FreshMapName(source string) string {
	name := mapNameBase
	for i := 2; strings.Contains(source, name) || wrapperParams[name]; i++ {
		name = mapNameBase + strconv.Itoa(i)
	}

	return name
}

type collector struct {
	res *Result
}

func (c *collector) Handle(t javascript.Type) error {
	if ce, ok := t.(*javascript.CallExpression); ok {
		if name, ok := requireArg(ce); ok {
			index := len(c.res.Dependencies)
			c.res.Dependencies = append(c.res.Dependencies, Dependency{Name: name})

			return rewrite(ce, c.res.MapName, index)
		}
	}

	return walk.Walk(t, c)
}

// requireArg returns the unquoted specifier when ce is a recognizable
// dependency reference.
func requireArg(ce *javascript.CallExpression) (string, bool) {
	if ce.Arguments == nil || len(ce.Arguments.ArgumentList) != 1 {
		return "", false
	}

	me := ce.MemberExpression
	if me == nil || me.PrimaryExpression == nil {
		return "", false
	}
	ref := me.PrimaryExpression.IdentifierReference
	if ref == nil || ref.Data != requireName {
		return "", false
	}

	arg := &ce.Arguments.ArgumentList[0]
	if arg.Spread || arg.AssignmentExpression.ConditionalExpression == nil {
		return "", false
	}

	pe, ok := javascript.UnwrapConditional(arg.AssignmentExpression.ConditionalExpression).(*javascript.PrimaryExpression)
	if !ok || pe.Literal == nil || pe.Literal.Type != javascript.TokenStringLiteral {
		return "", false
	}

	name, err := javascript.Unquote(pe.Literal.Data)
	if err != nil {
		return "", false
	}

	return name, true
}

// rewrite replaces the call's specifier argument with mapName[index].
func rewrite(ce *javascript.CallExpression, mapName string, index int) error {
	expr, err := jstree.ParseExpression(mapName + "[" + strconv.Itoa(index) + "]")
	if err != nil {
		return err
	}

	ce.Arguments.ArgumentList[0] = javascript.Argument{AssignmentExpression: *expr}

	return nil
}
