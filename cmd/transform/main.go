package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/NilaySheth/jsbundle/engine"
	"github.com/NilaySheth/jsbundle/transform"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to source file")
		polyfill    = flag.Bool("polyfill", false, "Wrap as a global-scope polyfill")
		variants    = flag.String("variants", "", "Variants as name=target pairs (dev=es2015,prod=es5)")
		defines     = flag.String("define", "", "Constant replacements (KEY=VAL,KEY2=VAL2)")
		minify      = flag.Bool("minify", false, "Minify generated code")
		register    = flag.String("register", "", "Override the module registration symbol")
		jsonOut     = flag.Bool("json", false, "Print the module record as JSON")
		depsOnly    = flag.Bool("deps", false, "Print only dependency specifiers")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: transform -file <source.js> [-variants dev=es2015,prod=es5] [-define K=V,...]")
		fmt.Fprintln(os.Stderr, "       transform -file <source.js> -json")
		fmt.Fprintln(os.Stderr, "       transform -file <source.js> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			transform.SetLogger(logger)
			engine.SetLogger(logger)
		}
	}

	opts := buildOptions(*file, *polyfill, *variants, *defines, *minify, *register)

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(opts, *jsonOut, *depsOnly); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildOptions(file string, polyfill bool, variants, defines string, minify bool, register string) transform.Options {
	base := engine.Config{
		Defines: parseDefines(defines),
		Minify:  minify,
	}

	var vs []transform.Variant
	if variants != "" {
		for _, pair := range strings.Split(variants, ",") {
			name, target, _ := strings.Cut(strings.TrimSpace(pair), "=")
			cfg := base
			cfg.Target = target
			vs = append(vs, transform.Variant{Name: name, Config: cfg})
		}
	} else {
		vs = []transform.Variant{{Name: transform.DefaultVariant, Config: base}}
	}

	return transform.Options{
		File:         file,
		Polyfill:     polyfill,
		Transformer:  engine.NewTransformer(),
		Serializer:   engine.NewSerializer(),
		RegisterName: register,
		Variants:     vs,
	}
}

func parseDefines(s string) map[string]string {
	if s == "" {
		return nil
	}

	defines := make(map[string]string)
	for _, kv := range strings.Split(s, ",") {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			defines[parts[0]] = parts[1]
		}
	}
	return defines
}

func run(opts transform.Options, jsonOut, depsOnly bool) error {
	ctx := context.Background()

	content, err := os.ReadFile(opts.File)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	result, err := transform.Transform(ctx, content, opts)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("File: %s\n", result.File)
	fmt.Printf("Kind: %s\n", result.Kind)
	if result.ModuleID != "" {
		fmt.Printf("Module ID: %s\n", result.ModuleID)
	}
	if result.Manifest != nil {
		fmt.Printf("Manifest: name=%s main=%s\n", result.Manifest.Name, result.Manifest.Main)
		for platform, entry := range result.Manifest.Platforms {
			fmt.Printf("  %s: %s\n", platform, entry)
		}
	}

	if result.Kind == transform.KindAsset {
		fmt.Printf("Asset content: %d bytes (base64)\n", len(result.AssetContent))
		return nil
	}

	names := make([]string, 0, len(result.Variants))
	for name := range result.Variants {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := result.Variants[name]
		fmt.Printf("\n--- variant %s ---\n", name)

		if depsOnly {
			for i, d := range v.Dependencies {
				fmt.Printf("  [%d] %s\n", i, d.Name)
			}
			continue
		}

		fmt.Println(v.Code)
		if len(v.Dependencies) > 0 {
			fmt.Printf("\nDependencies (%s):\n", v.DependencyMapName)
			for i, d := range v.Dependencies {
				fmt.Printf("  [%d] %s\n", i, d.Name)
			}
		}
		if len(v.SourceMap) > 0 {
			fmt.Printf("\nSource map: %d bytes\n", len(v.SourceMap))
		}
	}

	return nil
}
