package tw

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Generator turns class names into CSS using a Config on top of the
// built-in theme and rules. It is safe for concurrent use.
type Generator struct {
	theme     Theme
	shortcuts map[string][]string
	rules     []Rule
	safelist  []string

	// cache holds resolved classes. Resolution is pure, so entries never
	// need invalidating for the lifetime of the generator.
	mu    sync.RWMutex
	cache map[string]resolved
}

type resolved struct {
	utils []Utility
	err   error
}

// NewGenerator compiles cfg. It rejects rules without a pattern or generator
// and shortcut names that would be parsed as variants.
func NewGenerator(cfg Config) (*Generator, error) {
	g := &Generator{
		theme:     DefaultTheme().Extend(cfg.Theme),
		shortcuts: make(map[string][]string, len(cfg.Shortcuts)),
		rules:     make([]Rule, 0, len(cfg.Rules)+64),
		safelist:  slices.Clone(cfg.Safelist),
		cache:     make(map[string]resolved),
	}

	for i, r := range cfg.Rules {
		if r.Pattern == nil || r.Generate == nil {
			return nil, fmt.Errorf("rule %d: missing pattern or generator", i)
		}
		g.rules = append(g.rules, r)
	}
	g.rules = append(g.rules, presetRules()...)

	for name, expansion := range cfg.Shortcuts {
		if IsVariant(name) {
			return nil, fmt.Errorf("shortcut %q collides with a variant name", name)
		}
		g.shortcuts[name] = ExpandVariantGroups(Tokenize(expansion))
	}

	return g, nil
}

// Theme returns the merged theme the generator resolves against.
func (g *Generator) Theme() Theme {
	return g.theme.Clone()
}

// Safelist returns the classes always included in generated output.
func (g *Generator) Safelist() []string {
	return slices.Clone(g.safelist)
}

// IsShortcut reports whether name is a configured shortcut.
func (g *Generator) IsShortcut(name string) bool {
	_, ok := g.shortcuts[name]
	return ok
}

// Resolve returns the CSS rules for a single class. Unknown classes return
// an error wrapping ErrNoMatch; self-referencing shortcuts wrap
// ErrShortcutCycle.
func (g *Generator) Resolve(class string) ([]Utility, error) {
	// Check cache first (read lock)
	g.mu.RLock()
	if cached, ok := g.cache[class]; ok {
		g.mu.RUnlock()
		return slices.Clone(cached.utils), cached.err
	}
	g.mu.RUnlock()

	utils, err := g.resolve(class)

	g.mu.Lock()
	defer g.mu.Unlock()
	// Double-check after acquiring write lock
	if cached, ok := g.cache[class]; ok {
		return slices.Clone(cached.utils), cached.err
	}
	g.cache[class] = resolved{utils: utils, err: err}
	return slices.Clone(utils), err
}

func (g *Generator) resolve(class string) ([]Utility, error) {
	pc, err := ParseClass(class)
	if err != nil {
		return nil, err
	}
	entries, layer, err := g.expand(pc.BaseClass, pc.Variants, nil)
	if err != nil {
		return nil, err
	}
	utils := make([]Utility, 0, len(entries))
	for _, e := range entries {
		u := Utility{
			Class:        class,
			Selector:     selector(class, e),
			Breakpoint:   e.variants.Breakpoint,
			Layer:        layer,
			Declarations: e.decls,
			order:        e.order,
		}
		if layer == LayerShortcuts {
			u.order = 0
		}
		utils = append(utils, u)
	}
	return utils, nil
}

func selector(class string, e entry) string {
	sel := "." + EscapeSelector(class) + statePseudo[e.variants.State] + e.suffix
	if e.variants.Dark {
		sel = ".dark " + sel
	}
	return sel
}

// Result is the output of a generation pass.
type Result struct {
	CSS       string
	Utilities []Utility
	// Matched lists every class that produced CSS, in input order.
	Matched []string
	// Unmatched lists safelisted classes that produced nothing. Unknown
	// scanned candidates are ignored silently.
	Unmatched []string
}

// Generate builds a stylesheet from the safelist plus candidates. Candidates
// may contain variant groups.
func (g *Generator) Generate(ctx context.Context, candidates []string) (*Result, error) {
	safe := make(map[string]bool, len(g.safelist))
	for _, s := range g.safelist {
		safe[s] = true
	}

	res := &Result{}
	seen := make(map[string]bool)
	for _, class := range slices.Concat(g.safelist, ExpandVariantGroups(candidates)) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if seen[class] {
			continue
		}
		seen[class] = true

		utils, err := g.Resolve(class)
		if err != nil {
			if safe[class] {
				res.Unmatched = append(res.Unmatched, class)
			}
			continue
		}
		res.Matched = append(res.Matched, class)
		res.Utilities = append(res.Utilities, utils...)
	}

	sortUtilities(res.Utilities)
	res.CSS = g.Render(res.Utilities)
	return res, nil
}

func sortUtilities(utils []Utility) {
	slices.SortStableFunc(utils, func(a, b Utility) int {
		switch {
		case a.Breakpoint != b.Breakpoint:
			return int(a.Breakpoint) - int(b.Breakpoint)
		case a.Layer != b.Layer:
			return int(a.Layer) - int(b.Layer)
		case a.order != b.order:
			return a.order - b.order
		default:
			return strings.Compare(a.Selector, b.Selector)
		}
	})
}

// Render writes utilities as a stylesheet: base rules grouped by layer,
// then one media block per breakpoint.
func (g *Generator) Render(utils []Utility) string {
	utils = slices.Clone(utils)
	sortUtilities(utils)

	var b strings.Builder
	bp, layer := Breakpoint(-1), Layer(-1)
	for _, u := range utils {
		if u.Breakpoint != bp {
			if bp > BreakpointBase {
				b.WriteString("}\n")
			}
			bp, layer = u.Breakpoint, Layer(-1)
			if media := g.theme.Breakpoints.MediaQuery(bp); media != "" {
				b.WriteString(media + "{\n")
			}
		}
		if u.Layer != layer && bp == BreakpointBase {
			fmt.Fprintf(&b, "/* layer: %s */\n", u.Layer)
			layer = u.Layer
		}
		b.WriteString(u.CSS())
		b.WriteByte('\n')
	}
	if bp > BreakpointBase {
		b.WriteString("}\n")
	}
	return b.String()
}
