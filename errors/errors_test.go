package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseTransform,
				Kind:    KindTransformer,
				File:    "src/app.js",
				Variant: "prod",
				Detail:  "unexpected token",
			},
			contains: []string{"[transform]", "transformer", "src/app.js", "variant prod", "unexpected token"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseData,
				Kind:  KindMalformedData,
			},
			contains: []string{"[data]", "malformed_data"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseWrap,
				Kind:   KindWrap,
				Detail: "missing program body",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[wrap]", "wrap", "missing program body", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseTransform,
		Kind:  KindTransformer,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:   PhaseTransform,
		Kind:    KindTransformer,
		File:    "a.js",
		Variant: "dev",
	}

	if !errors.Is(err, &Error{Phase: PhaseTransform, Kind: KindTransformer}) {
		t.Error("Is did not match on phase and kind")
	}

	if errors.Is(err, &Error{Phase: PhaseData, Kind: KindTransformer}) {
		t.Error("Is matched on different phase")
	}

	if errors.Is(err, &Error{Phase: PhaseTransform, Kind: KindWrap}) {
		t.Error("Is matched on different kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("parse failed at 1:3")
	err := New(PhaseTransform, KindTransformer).
		File("src/index.js").
		Variant("dev").
		Detail("variant %q did not compile", "dev").
		Cause(cause).
		Build()

	if err.Phase != PhaseTransform || err.Kind != KindTransformer {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.File != "src/index.js" {
		t.Errorf("unexpected file %q", err.File)
	}
	if err.Variant != "dev" {
		t.Errorf("unexpected variant %q", err.Variant)
	}
	if err.Detail != `variant "dev" did not compile` {
		t.Errorf("unexpected detail %q", err.Detail)
	}
	if !errors.Is(err, err) || err.Unwrap() != cause {
		t.Error("cause not preserved")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"malformed data", MalformedData("pkg.json", cause), PhaseData, KindMalformedData},
		{"transformer", Transformer("a.js", "prod", cause), PhaseTransform, KindTransformer},
		{"wrap failed", WrapFailed("a.js", "no body"), PhaseWrap, KindWrap},
		{"serialize", Serialize("a.js", cause), PhaseSerialize, KindSerialize},
		{"invalid input", InvalidInput(PhaseClassify, "missing filename"), PhaseClassify, KindInvalidInput},
		{"unsupported", Unsupported(PhaseData, "non-object document"), PhaseData, KindUnsupported},
		{"wrap generic", Wrap(PhaseCollect, KindWrap, cause, "bad call site"), PhaseCollect, KindWrap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase = %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
		})
	}
}
