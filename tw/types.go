package tw

import (
	"regexp"
	"slices"
	"strings"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string `toml:"property" yaml:"property" json:"property"`
	Value    string `toml:"value" yaml:"value" json:"value"`
}

// Decl is shorthand for building a Declaration.
func Decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// CSSObject is an ordered list of declarations produced by a rule.
type CSSObject []Declaration

// Get returns the value of the last declaration for property.
func (o CSSObject) Get(property string) (string, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Property == property {
			return o[i].Value, true
		}
	}
	return "", false
}

// Merge appends p to o. A property already present in o is dropped from its
// old position so the later value wins (last class wins).
func (o CSSObject) Merge(p CSSObject) CSSObject {
	out := make(CSSObject, 0, len(o)+len(p))
	for _, d := range o {
		if !slices.ContainsFunc(p, func(n Declaration) bool { return n.Property == d.Property }) {
			out = append(out, d)
		}
	}
	for _, d := range p {
		out = slices.DeleteFunc(out, func(n Declaration) bool { return n.Property == d.Property })
		out = append(out, d)
	}
	return out
}

// String renders the body of a CSS rule: "prop:value;prop:value;".
func (o CSSObject) String() string {
	var b strings.Builder
	for _, d := range o {
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// RuleFunc generates declarations for a matched class. match holds the
// regexp submatches of the base utility (variants already stripped).
// Returning false lets the next rule try.
type RuleFunc func(match []string, theme *Theme) (CSSObject, bool)

// Rule pairs a pattern with a generator. Rules are tried in order and the
// first one that produces declarations wins.
type Rule struct {
	Pattern  *regexp.Regexp
	Generate RuleFunc
	// SelectorSuffix is appended to the generated selector, e.g. the
	// sibling combinator used by space-x/space-y.
	SelectorSuffix string

	static CSSObject
}

// StaticRule builds a rule that always produces the same declarations.
// Static rules are the only rules that survive serialization.
func StaticRule(pattern string, decls ...Declaration) Rule {
	out := slices.Clone(CSSObject(decls))
	return Rule{
		Pattern: regexp.MustCompile(pattern),
		Generate: func([]string, *Theme) (CSSObject, bool) {
			return slices.Clone(out), true
		},
		static: out,
	}
}

// Static returns the fixed declarations of a rule built with StaticRule.
func (r Rule) Static() (CSSObject, bool) {
	if r.static == nil {
		return nil, false
	}
	return slices.Clone(r.static), true
}

// Config is the full input to the generator: theme tokens, shortcut macros,
// custom rules and the safelist.
type Config struct {
	Theme     Theme
	Shortcuts map[string]string
	Rules     []Rule
	Safelist  []string
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	out := Config{
		Theme:    c.Theme.Clone(),
		Rules:    slices.Clone(c.Rules),
		Safelist: slices.Clone(c.Safelist),
	}
	if c.Shortcuts != nil {
		out.Shortcuts = make(map[string]string, len(c.Shortcuts))
		for k, v := range c.Shortcuts {
			out.Shortcuts[k] = v
		}
	}
	return out
}

// Extend layers other on top of c. Theme tokens deep-merge, shortcuts from
// other replace same-named ones, other's rules are tried first and the
// safelists are unioned.
func (c Config) Extend(other Config) Config {
	out := c.Clone()
	out.Theme = out.Theme.Extend(other.Theme)
	if len(other.Shortcuts) > 0 && out.Shortcuts == nil {
		out.Shortcuts = make(map[string]string, len(other.Shortcuts))
	}
	for k, v := range other.Shortcuts {
		out.Shortcuts[k] = v
	}
	out.Rules = append(slices.Clone(other.Rules), out.Rules...)
	for _, s := range other.Safelist {
		if !slices.Contains(out.Safelist, s) {
			out.Safelist = append(out.Safelist, s)
		}
	}
	return out
}

// Layer orders utilities in the generated stylesheet.
type Layer int

const (
	LayerShortcuts Layer = iota
	LayerDefault
)

func (l Layer) String() string {
	switch l {
	case LayerShortcuts:
		return "shortcuts"
	default:
		return "default"
	}
}

// Utility is one generated CSS rule.
type Utility struct {
	Class        string
	Selector     string
	Breakpoint   Breakpoint
	Layer        Layer
	Declarations CSSObject

	order int
}

// CSS renders the utility as a single rule, without any media wrapper.
func (u Utility) CSS() string {
	return u.Selector + "{" + u.Declarations.String() + "}"
}
