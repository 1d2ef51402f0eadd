package docblock

import "testing"

func TestExtract(t *testing.T) {
	t.Run("leading_block", func(t *testing.T) {
		src := "/**\n * @providesModule Banana\n */\nmodule.exports = 1;"
		got := Extract(src)
		want := "/**\n * @providesModule Banana\n */"
		if got != want {
			t.Errorf("Extract = %q, want %q", got, want)
		}
	})

	t.Run("leading_whitespace", func(t *testing.T) {
		src := "\n\n  /** @flow */\ncode();"
		if got := Extract(src); got != "/** @flow */" {
			t.Errorf("Extract = %q", got)
		}
	})

	t.Run("no_block", func(t *testing.T) {
		if got := Extract("module.exports = 1;"); got != "" {
			t.Errorf("Extract = %q, want empty", got)
		}
	})

	t.Run("plain_comment_is_not_a_docblock", func(t *testing.T) {
		if got := Extract("/* not structured */\ncode();"); got != "" {
			t.Errorf("Extract = %q, want empty", got)
		}
	})
}

func TestParse(t *testing.T) {
	src := "/**\n" +
		" * @providesModule Banana\n" +
		" * @flow\n" +
		" * @format some value\n" +
		" *   spread over two lines\n" +
		" */\n" +
		"code();"

	got := Parse(src)
	want := []Directive{
		{Key: "providesModule", Value: "Banana"},
		{Key: "flow", Value: ""},
		{Key: "format", Value: "some value spread over two lines"},
	}

	if len(got) != len(want) {
		t.Fatalf("Parse returned %d directives, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("directive %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDirectives(t *testing.T) {
	t.Run("last_key_wins", func(t *testing.T) {
		src := "/**\n * @env dev\n * @env prod\n */"
		got := Directives(src)
		if got["env"] != "prod" {
			t.Errorf(`Directives["env"] = %q, want "prod"`, got["env"])
		}
	})

	t.Run("no_block", func(t *testing.T) {
		if got := Directives("code();"); got != nil {
			t.Errorf("Directives = %v, want nil", got)
		}
	})
}

func TestProvidesModule(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"declared", "/** @providesModule Banana */\ncode();", "Banana"},
		{"first_occurrence_wins", "/**\n * @providesModule A\n * @providesModule B\n */", "A"},
		{"extra_words_ignored", "/** @providesModule Banana ripe */", "Banana"},
		{"absent", "/** @flow */\ncode();", ""},
		{"no_docblock", "code();", ""},
		{"empty_value", "/** @providesModule */", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProvidesModule(tt.src); got != tt.want {
				t.Errorf("ProvidesModule = %q, want %q", got, tt.want)
			}
		})
	}
}
