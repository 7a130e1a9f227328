package tw

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArbitraryValues(t *testing.T) {
	gen, err := NewGenerator(Config{})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		input string
		want  CSSObject
	}{
		{
			name:  "arbitrary width percentage",
			input: "w-[33%]",
			want:  CSSObject{Decl("width", "33%")},
		},
		{
			name:  "arbitrary height pixels",
			input: "h-[250px]",
			want:  CSSObject{Decl("height", "250px")},
		},
		{
			name:  "arbitrary rem padding",
			input: "p-[2.5rem]",
			want:  CSSObject{Decl("padding", "2.5rem")},
		},
		{
			name:  "arbitrary offset",
			input: "top-[3px]",
			want:  CSSObject{Decl("top", "3px")},
		},
		{
			name:  "arbitrary hex background keeps opacity variable",
			input: "bg-[#ff0000]",
			want: CSSObject{
				Decl("--un-bg-opacity", "1"),
				Decl("background-color", "rgb(255 0 0 / var(--un-bg-opacity))"),
			},
		},
		{
			name:  "arbitrary short hex text color",
			input: "text-[#ddd]",
			want: CSSObject{
				Decl("--un-text-opacity", "1"),
				Decl("color", "rgb(221 221 221 / var(--un-text-opacity))"),
			},
		},
		{
			name:  "arbitrary length text is a font size",
			input: "text-[22px]",
			want:  CSSObject{Decl("font-size", "22px")},
		},
		{
			name:  "rgba border color passes through",
			input: "border-[rgba(139,140,215,0.28)]",
			want:  CSSObject{Decl("border-color", "rgba(139,140,215,0.28)")},
		},
		{
			name:  "underscores become spaces in shadows",
			input: "shadow-[0_0_25px_rgba(109,118,255,0.35)]",
			want:  CSSObject{Decl("box-shadow", "0 0 25px rgba(109,118,255,0.35)")},
		},
		{
			name:  "arbitrary radius",
			input: "rounded-[10px]",
			want:  CSSObject{Decl("border-radius", "10px")},
		},
		{
			name:  "arbitrary letter spacing",
			input: "tracking-[0.2em]",
			want:  CSSObject{Decl("letter-spacing", "0.2em")},
		},
		{
			name:  "arbitrary blur",
			input: "blur-[2px]",
			want:  CSSObject{Decl("filter", "blur(2px)")},
		},
		{
			name:  "arbitrary gradient start",
			input: "from-[rgba(54,56,85,0.82)]",
			want: CSSObject{
				Decl("--un-gradient-from-position", "0%"),
				Decl("--un-gradient-from", "rgba(54,56,85,0.82) var(--un-gradient-from-position)"),
				Decl("--un-gradient-to-position", "100%"),
				Decl("--un-gradient-to", "transparent var(--un-gradient-to-position)"),
				Decl("--un-gradient-stops", "var(--un-gradient-from), var(--un-gradient-to)"),
			},
		},
		{
			name:  "palette color with alpha",
			input: "bg-purple-500/30",
			want:  CSSObject{Decl("background-color", "rgb(168 85 247 / 0.3)")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			utils, err := gen.Resolve(tt.input)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.input, err)
			}
			if len(utils) != 1 {
				t.Fatalf("expected 1 utility, got %d", len(utils))
			}
			if diff := cmp.Diff(tt.want, utils[0].Declarations); diff != "" {
				t.Errorf("declarations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArbitraryValuesRejected(t *testing.T) {
	gen, err := NewGenerator(Config{})
	if err != nil {
		t.Fatal(err)
	}
	for _, class := range []string{"text-[nope]x", "bg-purple-500/abc", "opacity-150", "w-[]"} {
		if _, err := gen.Resolve(class); err == nil {
			t.Errorf("expected %q to produce no CSS", class)
		}
	}
}
