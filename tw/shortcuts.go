package tw

import (
	"fmt"
	"slices"
	"strings"
)

// entry is an intermediate utility: declarations keyed by the variants and
// selector suffix they apply under.
type entry struct {
	variants Variants
	suffix   string
	decls    CSSObject
	order    int
}

// expand resolves base into entries. Shortcuts expand recursively; anything
// else goes through the rules. stack holds the shortcuts being expanded and
// is used to detect cycles.
func (g *Generator) expand(base string, outer Variants, stack []string) ([]entry, Layer, error) {
	tokens, ok := g.shortcuts[base]
	if !ok {
		e, err := g.match(base, outer)
		if err != nil {
			return nil, LayerDefault, err
		}
		return []entry{e}, LayerDefault, nil
	}

	if slices.Contains(stack, base) {
		return nil, LayerShortcuts, fmt.Errorf("%w: %s", ErrShortcutCycle, strings.Join(append(slices.Clone(stack), base), " -> "))
	}
	if len(tokens) == 0 {
		return nil, LayerShortcuts, fmt.Errorf("%w: shortcut %q is empty", ErrNoMatch, base)
	}
	stack = append(slices.Clone(stack), base)

	var out []entry
	for _, tok := range tokens {
		pc, err := ParseClass(tok)
		if err != nil {
			return nil, LayerShortcuts, fmt.Errorf("shortcut %q: %w", base, err)
		}
		inner, _, err := g.expand(pc.BaseClass, outer.Merge(pc.Variants), stack)
		if err != nil {
			return nil, LayerShortcuts, fmt.Errorf("shortcut %q: %w", base, err)
		}
		out = mergeEntries(out, inner)
	}
	return out, LayerShortcuts, nil
}

// mergeEntries folds src into dst, combining entries that share variants and
// selector suffix so a shortcut renders as few rules as possible.
func mergeEntries(dst, src []entry) []entry {
	for _, e := range src {
		i := slices.IndexFunc(dst, func(d entry) bool {
			return d.variants == e.variants && d.suffix == e.suffix
		})
		if i < 0 {
			dst = append(dst, e)
			continue
		}
		dst[i].decls = dst[i].decls.Merge(e.decls)
	}
	return dst
}

// match runs base through the rule list, user rules first.
func (g *Generator) match(base string, v Variants) (entry, error) {
	for i, r := range g.rules {
		m := r.Pattern.FindStringSubmatch(base)
		if m == nil {
			continue
		}
		decls, ok := r.Generate(m, &g.theme)
		if !ok || len(decls) == 0 {
			continue
		}
		return entry{variants: v, suffix: r.SelectorSuffix, decls: decls, order: i}, nil
	}
	return entry{}, fmt.Errorf("%w: %q", ErrNoMatch, base)
}
