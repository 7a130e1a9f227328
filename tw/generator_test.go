package tw

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, cfg Config) *Generator {
	t.Helper()
	gen, err := NewGenerator(cfg)
	require.NoError(t, err)
	return gen
}

func TestResolveSelectors(t *testing.T) {
	gen := newTestGenerator(t, Config{})

	tests := []struct {
		class      string
		selector   string
		breakpoint Breakpoint
		decls      CSSObject
	}{
		{"p-4", ".p-4", BreakpointBase, CSSObject{Decl("padding", "1rem")}},
		{"hover:opacity-100", `.hover\:opacity-100:hover`, BreakpointBase, CSSObject{Decl("opacity", "1")}},
		{"dark:m-2", `.dark .dark\:m-2`, BreakpointBase, CSSObject{Decl("margin", "0.5rem")}},
		{"md:px-4", `.md\:px-4`, BreakpointMD, CSSObject{Decl("padding-left", "1rem"), Decl("padding-right", "1rem")}},
		{"placeholder:italic", `.placeholder\:italic::placeholder`, BreakpointBase, CSSObject{Decl("font-style", "italic")}},
		{"space-y-4", ".space-y-4>:not([hidden])~:not([hidden])", BreakpointBase, CSSObject{Decl("margin-top", "1rem")}},
		{"-mt-2", ".-mt-2", BreakpointBase, CSSObject{Decl("margin-top", "-0.5rem")}},
		{"border", ".border", BreakpointBase, CSSObject{Decl("border-width", "1px")}},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			utils, err := gen.Resolve(tt.class)
			require.NoError(t, err)
			require.Len(t, utils, 1)
			assert.Equal(t, tt.selector, utils[0].Selector)
			assert.Equal(t, tt.breakpoint, utils[0].Breakpoint)
			assert.Equal(t, LayerDefault, utils[0].Layer)
			assert.Equal(t, tt.decls, utils[0].Declarations)
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	gen := newTestGenerator(t, Config{})
	for _, class := range []string{"nope-1", "print:p-4", "inset-full", "abs-br"} {
		_, err := gen.Resolve(class)
		assert.ErrorIs(t, err, ErrNoMatch, class)
	}
}

func TestUserRulesTakePrecedence(t *testing.T) {
	gen := newTestGenerator(t, Config{
		Rules: []Rule{StaticRule(`^p-4$`, Decl("padding", "3px"))},
	})
	utils, err := gen.Resolve("p-4")
	require.NoError(t, err)
	assert.Equal(t, CSSObject{Decl("padding", "3px")}, utils[0].Declarations)

	utils, err = gen.Resolve("p-2")
	require.NoError(t, err)
	assert.Equal(t, CSSObject{Decl("padding", "0.5rem")}, utils[0].Declarations)
}

func TestNewGeneratorRejectsInvalidConfig(t *testing.T) {
	_, err := NewGenerator(Config{Rules: []Rule{{Generate: func([]string, *Theme) (CSSObject, bool) { return nil, false }}}})
	assert.Error(t, err)

	_, err = NewGenerator(Config{Shortcuts: map[string]string{"hover": "p-4"}})
	assert.ErrorContains(t, err, "variant")
}

func TestResolveConcurrent(t *testing.T) {
	gen := newTestGenerator(t, Config{Shortcuts: map[string]string{"btn": "px-4 py-2 hover:bg-white"}})

	want, err := gen.Resolve("btn")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]Utility, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = gen.Resolve("btn")
		}()
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestResolveReturnsCopies(t *testing.T) {
	gen := newTestGenerator(t, Config{})
	first, err := gen.Resolve("p-4")
	require.NoError(t, err)
	first[0].Selector = "mutated"

	second, err := gen.Resolve("p-4")
	require.NoError(t, err)
	assert.Equal(t, ".p-4", second[0].Selector)
}

func TestGenerate(t *testing.T) {
	gen := newTestGenerator(t, Config{Safelist: []string{"p-4", "missing-x"}})

	res, err := gen.Generate(context.Background(), []string{"md:p-2", "p-4", "dark:(m-1 m-2)", "junk"})
	require.NoError(t, err)

	assert.Equal(t, []string{"p-4", "md:p-2", "dark:m-1", "dark:m-2"}, res.Matched)
	assert.Equal(t, []string{"missing-x"}, res.Unmatched, "unknown candidates are ignored, unknown safelist entries reported")

	want := `/* layer: default */
.dark .dark\:m-1{margin:0.25rem;}
.dark .dark\:m-2{margin:0.5rem;}
.p-4{padding:1rem;}
@media (min-width: 768px){
.md\:p-2{padding:0.5rem;}
}
`
	assert.Equal(t, want, res.CSS)
}

func TestGenerateLayerOrder(t *testing.T) {
	gen := newTestGenerator(t, Config{Shortcuts: map[string]string{"btn": "p-4"}})

	res, err := gen.Generate(context.Background(), []string{"m-1", "btn"})
	require.NoError(t, err)
	assert.Equal(t, "/* layer: shortcuts */\n.btn{padding:1rem;}\n/* layer: default */\n.m-1{margin:0.25rem;}\n", res.CSS)
}

func TestGenerateRuleOrder(t *testing.T) {
	gen := newTestGenerator(t, Config{})

	// display rules precede spacing rules regardless of input order.
	res, err := gen.Generate(context.Background(), []string{"p-1", "flex"})
	require.NoError(t, err)
	assert.Equal(t, "/* layer: default */\n.flex{display:flex;}\n.p-1{padding:0.25rem;}\n", res.CSS)
}

func TestGenerateCustomBreakpoints(t *testing.T) {
	gen := newTestGenerator(t, Config{Theme: Theme{Breakpoints: BreakpointConfig{MD: 900}}})

	res, err := gen.Generate(context.Background(), []string{"md:p-1", "sm:p-1"})
	require.NoError(t, err)
	assert.Equal(t, "@media (min-width: 640px){\n.sm\\:p-1{padding:0.25rem;}\n}\n@media (min-width: 900px){\n.md\\:p-1{padding:0.25rem;}\n}\n", res.CSS)
}

func TestGenerateCanceled(t *testing.T) {
	gen := newTestGenerator(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, []string{"p-4"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfigExtend(t *testing.T) {
	base := Config{
		Shortcuts: map[string]string{"a": "p-1", "b": "p-2"},
		Rules:     []Rule{StaticRule(`^x$`, Decl("color", "red"))},
		Safelist:  []string{"p-1", "p-2"},
	}
	over := Config{
		Shortcuts: map[string]string{"b": "p-3"},
		Rules:     []Rule{StaticRule(`^x$`, Decl("color", "blue"))},
		Safelist:  []string{"p-2", "p-3"},
	}

	got := base.Extend(over)
	assert.Equal(t, map[string]string{"a": "p-1", "b": "p-3"}, got.Shortcuts)
	assert.Equal(t, []string{"p-1", "p-2", "p-3"}, got.Safelist)
	require.Len(t, got.Rules, 2)
	decls, _ := got.Rules[0].Static()
	assert.Equal(t, CSSObject{Decl("color", "blue")}, decls)

	// base is untouched
	assert.Equal(t, "p-2", base.Shortcuts["b"])
	assert.Len(t, base.Rules, 1)
}

func TestCSSObjectMerge(t *testing.T) {
	a := CSSObject{Decl("padding", "1rem"), Decl("color", "red")}
	b := CSSObject{Decl("padding", "2rem"), Decl("margin", "0")}

	got := a.Merge(b)
	assert.Equal(t, CSSObject{Decl("color", "red"), Decl("padding", "2rem"), Decl("margin", "0")}, got)
	assert.Equal(t, "color:red;padding:2rem;margin:0;", got.String())

	v, ok := got.Get("padding")
	assert.True(t, ok)
	assert.Equal(t, "2rem", v)
}
