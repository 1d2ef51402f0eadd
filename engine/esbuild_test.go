package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/NilaySheth/jsbundle/internal/jstree"
	"github.com/NilaySheth/jsbundle/wrap"
)

func TestTransformer_Defines(t *testing.T) {
	ctx := context.Background()
	tr := NewTransformer()

	tree, err := tr.Transform(ctx, "if (__DEV__) { setup(); }", "app.js",
		Config{Defines: map[string]string{"__DEV__": "false"}})
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}

	code := jstree.Print(tree)
	if strings.Contains(code, "__DEV__") {
		t.Errorf("define not substituted:\n%s", code)
	}
}

func TestTransformer_LowersImportsToRequire(t *testing.T) {
	ctx := context.Background()
	tr := NewTransformer()

	tree, err := tr.Transform(ctx, "import x from './x';\nconsole.log(x);", "app.js", nil)
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}

	code := jstree.Print(tree)
	if !strings.Contains(code, "require(") {
		t.Errorf("import not lowered to require:\n%s", code)
	}
}

func TestTransformer_TypeScript(t *testing.T) {
	ctx := context.Background()
	tr := NewTransformer()

	tree, err := tr.Transform(ctx, "const n: number = 1;\nexport default n;", "app.ts", nil)
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}

	code := jstree.Print(tree)
	if strings.Contains(code, ": number") {
		t.Errorf("type annotation survived compilation:\n%s", code)
	}
}

func TestTransformer_SyntaxErrorKeepsLocation(t *testing.T) {
	ctx := context.Background()
	tr := NewTransformer()

	_, err := tr.Transform(ctx, "var = ;", "broken.js", nil)
	if err == nil {
		t.Fatal("expected error for broken source")
	}
	if !strings.Contains(err.Error(), "broken.js:") {
		t.Errorf("diagnostic lost its location: %v", err)
	}
}

func TestTransformer_BadConfig(t *testing.T) {
	ctx := context.Background()
	tr := NewTransformer()

	if _, err := tr.Transform(ctx, "var a = 1;", "app.js", 42); err == nil {
		t.Fatal("expected error for non-Config variant configuration")
	}
	if _, err := tr.Transform(ctx, "var a = 1;", "app.js", Config{Target: "es1999"}); err == nil {
		t.Fatal("expected error for unknown target")
	}
}

func TestTransformer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewTransformer().Transform(ctx, "var a = 1;", "app.js", nil); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestSerializer(t *testing.T) {
	tree, err := jstree.ParseScript("var a = require('./a');")
	if err != nil {
		t.Fatalf("ParseScript error: %v", err)
	}
	wrapped, err := wrap.Module(tree, "_dependencyMap", nil)
	if err != nil {
		t.Fatalf("Module error: %v", err)
	}

	code, srcMap, err := NewSerializer().Serialize(wrapped, "app.js", "var a = require('./a');")
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	if !strings.Contains(code, "__d(") {
		t.Errorf("registration call missing from serialized code:\n%s", code)
	}
	if len(srcMap) == 0 {
		t.Error("expected source-map data")
	}
	if !strings.Contains(string(srcMap), `"mappings"`) {
		t.Errorf("source map has no mappings field: %s", srcMap)
	}
}
