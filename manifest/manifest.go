package manifest

import (
	"encoding/json"
	"path/filepath"
)

// Name is the conventional filename of a package manifest.
const Name = "package.json"

// platformFields are the recognized per-platform entry-point fields. Only
// string values count; object-form "browser" redirect maps are not entry
// points and are ignored.
var platformFields = []string{"browser", "react-native"}

// Summary is the recognized subset of a package manifest.
type Summary struct {
	Name      string            `json:"name,omitempty"`
	Main      string            `json:"main,omitempty"`
	Platforms map[string]string `json:"platforms,omitempty"`
}

// Document is a parsed structured-data file. The original text is retained
// verbatim for code generation.
type Document struct {
	raw    string
	value  any
	fields map[string]any
}

// Parse parses text as a JSON document. The error is the decoder's own;
// callers wrap it into a structured malformed-data error.
func Parse(text string) (*Document, error) {
	d := &Document{raw: text}
	if err := json.Unmarshal([]byte(text), &d.value); err != nil {
		return nil, err
	}

	// Non-object documents (arrays, numbers...) are valid modules; they
	// just declare no fields.
	d.fields, _ = d.value.(map[string]any)

	return d, nil
}

// Raw returns the original document text.
func (d *Document) Raw() string {
	return d.raw
}

// Name returns the document's declared name field, or "" when the document
// is not an object or declares none.
func (d *Document) Name() string {
	return d.stringField("name")
}

// Summary builds the manifest summary from the recognized fields.
func (d *Document) Summary() *Summary {
	s := &Summary{
		Name: d.stringField("name"),
		Main: d.stringField("main"),
	}

	for _, field := range platformFields {
		if v := d.stringField(field); v != "" {
			if s.Platforms == nil {
				s.Platforms = make(map[string]string, len(platformFields))
			}
			s.Platforms[field] = v
		}
	}

	return s
}

func (d *Document) stringField(key string) string {
	v, _ := d.fields[key].(string)
	return v
}

// IsManifest reports whether filename names a package manifest.
func IsManifest(filename string) bool {
	return filepath.Base(filename) == Name
}
