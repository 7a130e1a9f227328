package tw

import (
	"errors"
	"slices"
	"testing"
)

func TestParseClass(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		validate func(*testing.T, ParsedClass)
	}{
		{
			name:  "plain utility",
			input: "bg-blue-500",
			validate: func(t *testing.T, pc ParsedClass) {
				if pc.BaseClass != "bg-blue-500" {
					t.Errorf("expected base bg-blue-500, got %q", pc.BaseClass)
				}
				if pc.Variants != (Variants{}) {
					t.Errorf("expected no variants, got %+v", pc.Variants)
				}
			},
		},
		{
			name:  "hover and dark",
			input: "hover:dark:bg-blue-500",
			validate: func(t *testing.T, pc ParsedClass) {
				if pc.State != StateHover {
					t.Errorf("expected hover state, got %v", pc.State)
				}
				if !pc.Dark {
					t.Error("expected dark variant")
				}
			},
		},
		{
			name:  "breakpoint and state",
			input: "md:focus:p-4",
			validate: func(t *testing.T, pc ParsedClass) {
				if pc.Breakpoint != BreakpointMD {
					t.Errorf("expected md breakpoint, got %v", pc.Breakpoint)
				}
				if pc.State != StateFocus {
					t.Errorf("expected focus state, got %v", pc.State)
				}
			},
		},
		{
			name:  "2xl breakpoint",
			input: "2xl:text-xl",
			validate: func(t *testing.T, pc ParsedClass) {
				if pc.Breakpoint != Breakpoint2XL {
					t.Errorf("expected 2xl breakpoint, got %v", pc.Breakpoint)
				}
			},
		},
		{
			name:  "colon inside arbitrary value does not split",
			input: "hover:bg-[url(http://x)]",
			validate: func(t *testing.T, pc ParsedClass) {
				if pc.BaseClass != "bg-[url(http://x)]" {
					t.Errorf("expected arbitrary base intact, got %q", pc.BaseClass)
				}
			},
		},
		{name: "unknown variant", input: "print:p-4", wantErr: true},
		{name: "trailing colon", input: "hover:", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, err := ParseClass(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrNoMatch) {
					t.Fatalf("expected ErrNoMatch, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, pc)
		})
	}
}

func TestVariantsMerge(t *testing.T) {
	outer := Variants{Breakpoint: BreakpointMD, Dark: true}
	got := outer.Merge(Variants{State: StateHover})
	want := Variants{Breakpoint: BreakpointMD, State: StateHover, Dark: true}
	if got != want {
		t.Errorf("Merge = %+v, want %+v", got, want)
	}

	got = outer.Merge(Variants{Breakpoint: BreakpointLG})
	if got.Breakpoint != BreakpointLG {
		t.Errorf("inner breakpoint should win, got %v", got.Breakpoint)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("  a b\n\t[c d]  dark:(x y) shadow-[0_0_1px_rgba(0,0,0,0.1)] ")
	want := []string{"a", "b", "[c d]", "dark:(x y)", "shadow-[0_0_1px_rgba(0,0,0,0.1)]"}
	if !slices.Equal(got, want) {
		t.Errorf("Tokenize = %q, want %q", got, want)
	}
}

func TestExpandVariantGroups(t *testing.T) {
	tests := []struct {
		input []string
		want  []string
	}{
		{
			input: []string{"dark:(bg-[#121212] text-[#ddd])"},
			want:  []string{"dark:bg-[#121212]", "dark:text-[#ddd]"},
		},
		{
			input: []string{"p-4", "md:hover:(m-2 p-1)"},
			want:  []string{"p-4", "md:hover:m-2", "md:hover:p-1"},
		},
		{
			input: []string{"dark:(x hover:(y z))"},
			want:  []string{"dark:x", "dark:hover:y", "dark:hover:z"},
		},
		{
			input: []string{"(a b)", "bg-[rgba(1,2,3,0.5)]"},
			want:  []string{"(a b)", "bg-[rgba(1,2,3,0.5)]"},
		},
	}
	for _, tt := range tests {
		if got := ExpandVariantGroups(tt.input); !slices.Equal(got, tt.want) {
			t.Errorf("ExpandVariantGroups(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEscapeSelector(t *testing.T) {
	tests := map[string]string{
		"p-4":                              `p-4`,
		"hover:bg-blue-500":                `hover\:bg-blue-500`,
		"w-1/2":                            `w-1\/2`,
		"border-1.5":                       `border-1\.5`,
		"text-[#181818]":                   `text-\[\#181818\]`,
		"2xl:p-4":                          `\32 xl\:p-4`,
		"shadow-[0_0_2px_rgba(1,2,3,0.5)]": `shadow-\[0_0_2px_rgba\(1\,2\,3\,0\.5\)\]`,
	}
	for in, want := range tests {
		if got := EscapeSelector(in); got != want {
			t.Errorf("EscapeSelector(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsVariant(t *testing.T) {
	for _, name := range []string{"hover", "focus", "active", "disabled", "placeholder", "dark", "sm", "md", "lg", "xl", "2xl"} {
		if !IsVariant(name) {
			t.Errorf("expected %q to be a variant", name)
		}
	}
	for _, name := range []string{"print", "card-purple", ""} {
		if IsVariant(name) {
			t.Errorf("expected %q not to be a variant", name)
		}
	}
}
