package tw

import (
	"fmt"
	"strings"
	"unicode"
)

// State represents an interaction state variant.
type State int

const (
	StateDefault State = iota
	StateHover
	StateFocus
	StateActive
	StateDisabled
	StatePlaceholder
)

var statePseudo = map[State]string{
	StateHover:       ":hover",
	StateFocus:       ":focus",
	StateActive:      ":active",
	StateDisabled:    ":disabled",
	StatePlaceholder: "::placeholder",
}

// Variants is the set of modifiers applied to a utility.
type Variants struct {
	Breakpoint Breakpoint
	State      State
	Dark       bool
}

// Merge applies inner on top of v. Inner modifiers win where both are set.
func (v Variants) Merge(inner Variants) Variants {
	if inner.Breakpoint != BreakpointBase {
		v.Breakpoint = inner.Breakpoint
	}
	if inner.State != StateDefault {
		v.State = inner.State
	}
	v.Dark = v.Dark || inner.Dark
	return v
}

// ParsedClass is a class split into its variant modifiers and base utility.
type ParsedClass struct {
	Variants
	BaseClass string
}

// IsVariant reports whether name is a recognised variant prefix.
func IsVariant(name string) bool {
	_, ok := applyVariant(Variants{}, name)
	return ok
}

func applyVariant(v Variants, name string) (Variants, bool) {
	switch name {
	case "hover":
		v.State = StateHover
	case "focus":
		v.State = StateFocus
	case "active":
		v.State = StateActive
	case "disabled":
		v.State = StateDisabled
	case "placeholder":
		v.State = StatePlaceholder
	case "dark":
		v.Dark = true
	default:
		bp, ok := breakpointNames[name]
		if !ok {
			return v, false
		}
		v.Breakpoint = bp
	}
	return v, true
}

// ParseClass splits a class into variant modifiers and base utility.
//
//	"hover:dark:bg-blue-500" → {State: Hover, Dark: true, BaseClass: "bg-blue-500"}
//
// Colons inside an arbitrary value do not split.
func ParseClass(class string) (ParsedClass, error) {
	parts := splitTopLevel(class, func(r rune) bool { return r == ':' })
	if len(parts) == 0 || strings.HasSuffix(class, ":") {
		return ParsedClass{}, fmt.Errorf("%w: %q", ErrNoMatch, class)
	}
	pc := ParsedClass{BaseClass: parts[len(parts)-1]}
	for _, p := range parts[:len(parts)-1] {
		v, ok := applyVariant(pc.Variants, p)
		if !ok {
			return ParsedClass{}, fmt.Errorf("%w: unknown variant %q in %q", ErrNoMatch, p, class)
		}
		pc.Variants = v
	}
	return pc, nil
}

// Tokenize splits a class list on whitespace, keeping bracketed values and
// variant groups intact.
func Tokenize(s string) []string {
	return splitTopLevel(s, unicode.IsSpace)
}

// ExpandVariantGroups rewrites variant groups into plain classes:
//
//	"dark:(bg-black text-white)" → ["dark:bg-black", "dark:text-white"]
//
// Groups may nest.
func ExpandVariantGroups(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		prefix, inner, ok := cutGroup(tok)
		if !ok {
			out = append(out, tok)
			continue
		}
		for _, t := range ExpandVariantGroups(Tokenize(inner)) {
			out = append(out, prefix+t)
		}
	}
	return out
}

// cutGroup splits "hover:(a b)" into "hover:" and "a b".
func cutGroup(tok string) (prefix, inner string, ok bool) {
	if !strings.HasSuffix(tok, ")") {
		return "", "", false
	}
	depth := 0
	for i, r := range tok {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case '(':
			if depth == 0 && i > 0 && tok[i-1] == ':' {
				return tok[:i], tok[i+1 : len(tok)-1], true
			}
		}
	}
	return "", "", false
}

// splitTopLevel splits s at runes matching sep that are outside brackets and
// parentheses. Empty fields are dropped.
func splitTopLevel(s string, sep func(rune) bool) []string {
	var (
		out   []string
		depth int
		start = -1
	)
	for i, r := range s {
		switch r {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		}
		if depth == 0 && sep(r) {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

// EscapeSelector escapes a class name for use in a CSS class selector.
func EscapeSelector(class string) string {
	var b strings.Builder
	for i, r := range class {
		switch {
		case i == 0 && r >= '0' && r <= '9':
			fmt.Fprintf(&b, "\\%x ", r)
		case r == '-' || r == '_' || r >= 0x80 ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
