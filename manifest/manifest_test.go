package manifest

import "testing"

func TestParse(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		doc, err := Parse(`{"name":"pkg","main":"index.js"}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if doc.Name() != "pkg" {
			t.Errorf("Name = %q, want %q", doc.Name(), "pkg")
		}
		if doc.Raw() != `{"name":"pkg","main":"index.js"}` {
			t.Errorf("Raw not preserved verbatim: %q", doc.Raw())
		}
	})

	t.Run("non_object", func(t *testing.T) {
		doc, err := Parse(`[1, 2.500, 3]`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if doc.Name() != "" {
			t.Errorf("Name = %q, want empty", doc.Name())
		}
		// Verbatim retention matters for precision: 2.500 must not
		// become 2.5.
		if doc.Raw() != `[1, 2.500, 3]` {
			t.Errorf("Raw not preserved verbatim: %q", doc.Raw())
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := Parse(`{"name":`); err == nil {
			t.Fatal("expected error for malformed document")
		}
	})

	t.Run("name_not_a_string", func(t *testing.T) {
		doc, err := Parse(`{"name": 42}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if doc.Name() != "" {
			t.Errorf("Name = %q, want empty", doc.Name())
		}
	})
}

func TestSummary(t *testing.T) {
	t.Run("all_fields", func(t *testing.T) {
		doc, err := Parse(`{
			"name": "pkg",
			"main": "index.js",
			"browser": "index.web.js",
			"react-native": "index.native.js"
		}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}

		s := doc.Summary()
		if s.Name != "pkg" || s.Main != "index.js" {
			t.Errorf("Summary = %+v", s)
		}
		if s.Platforms["browser"] != "index.web.js" {
			t.Errorf("browser entry = %q", s.Platforms["browser"])
		}
		if s.Platforms["react-native"] != "index.native.js" {
			t.Errorf("react-native entry = %q", s.Platforms["react-native"])
		}
	})

	t.Run("absent_fields_stay_absent", func(t *testing.T) {
		doc, err := Parse(`{"name":"pkg"}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}

		s := doc.Summary()
		if s.Main != "" {
			t.Errorf("Main = %q, want empty", s.Main)
		}
		if s.Platforms != nil {
			t.Errorf("Platforms = %v, want nil", s.Platforms)
		}
	})

	t.Run("object_browser_field_ignored", func(t *testing.T) {
		doc, err := Parse(`{"browser": {"./fs": false}}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if p := doc.Summary().Platforms; p != nil {
			t.Errorf("Platforms = %v, want nil", p)
		}
	})
}

func TestIsManifest(t *testing.T) {
	tests := []struct {
		file string
		want bool
	}{
		{"package.json", true},
		{"/project/node_modules/pkg/package.json", true},
		{"/project/data.json", false},
		{"package.json.bak", false},
	}

	for _, tt := range tests {
		if got := IsManifest(tt.file); got != tt.want {
			t.Errorf("IsManifest(%q) = %v, want %v", tt.file, got, tt.want)
		}
	}
}
