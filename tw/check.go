package tw

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"regexp/syntax"
	"slices"
	"strings"
)

// PaletteShades is the shade set every user-declared palette must define.
var PaletteShades = []string{"100", "200", "300", "400", "500", "600", "700", "800", "900"}

var classNamePattern = regexp.MustCompile(`^(?:[a-z0-9-]+:)*-?[a-zA-Z](?:[a-zA-Z0-9._/-]|\[[^\s\[\]]+\])*$`)

// ValidClassName reports whether s follows the utility naming grammar:
// letters, digits, hyphens, dots and slashes, colon-separated variant
// prefixes and bracketed arbitrary values.
func ValidClassName(s string) bool {
	return classNamePattern.MatchString(s)
}

// LiteralPattern returns the single string an anchored pattern like
// `^inset-full$` matches. ok is false for any pattern that can match more
// than one input.
func LiteralPattern(re *regexp.Regexp) (string, bool) {
	parsed, err := syntax.Parse(re.String(), syntax.Perl)
	if err != nil {
		return "", false
	}
	parsed = parsed.Simplify()
	if parsed.Op != syntax.OpConcat || len(parsed.Sub) != 3 {
		return "", false
	}
	begin, lit, end := parsed.Sub[0], parsed.Sub[1], parsed.Sub[2]
	if begin.Op != syntax.OpBeginText || end.Op != syntax.OpEndText || lit.Op != syntax.OpLiteral {
		return "", false
	}
	if lit.Flags&syntax.FoldCase != 0 {
		return "", false
	}
	return string(lit.Rune), true
}

// Severity classifies a check issue.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Issue is one finding of Check.
type Issue struct {
	Severity Severity
	Kind     string // "config", "shortcut", "palette", "color", "rule", "safelist"
	Subject  string
	Message  string
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s %q: %s", i.Kind, i.Subject, i.Message)
}

// Report collects the issues found in a configuration.
type Report struct {
	Issues []Issue
}

func (r *Report) add(sev Severity, kind, subject, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Severity: sev, Kind: kind, Subject: subject, Message: fmt.Sprintf(format, args...)})
}

// Errors returns the error-severity issues.
func (r Report) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity issues.
func (r Report) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r Report) filter(sev Severity) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == sev {
			out = append(out, i)
		}
	}
	return out
}

// OK reports whether the report has no errors. Warnings do not count.
func (r Report) OK() bool {
	return len(r.Errors()) == 0
}

// Err joins every error-severity issue, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, i := range r.Errors() {
		errs = append(errs, i)
	}
	return errors.Join(errs...)
}

// Check runs the data-integrity checks over cfg:
//   - every shortcut expands to at least one token and fully resolves
//   - no shortcut references itself, directly or indirectly
//   - every declared palette has exactly the shades 100-900
//   - every hex color literal parses
//   - custom static rules match exactly one literal class
//   - every safelist entry is a syntactically valid class name
//
// Safelist entries that do not resolve are warnings: they may be provided by
// the host framework's own preset.
func Check(cfg Config) Report {
	var r Report

	g, err := NewGenerator(cfg)
	if err != nil {
		r.add(SeverityError, "config", "", "%v", err)
		return r
	}

	for i, rule := range cfg.Rules {
		subject := fmt.Sprintf("#%d", i)
		if rule.Pattern != nil {
			subject = rule.Pattern.String()
		}
		if _, static := rule.Static(); !static {
			continue
		}
		lit, ok := LiteralPattern(rule.Pattern)
		if !ok {
			r.add(SeverityWarning, "rule", subject, "static rule matches more than one literal class")
			continue
		}
		if !ValidClassName(lit) {
			r.add(SeverityError, "rule", subject, "literal %q is not a valid class name", lit)
		}
	}

	for _, name := range slices.Sorted(maps.Keys(cfg.Shortcuts)) {
		if !ValidClassName(name) {
			r.add(SeverityError, "shortcut", name, "invalid shortcut name")
		}
		if strings.TrimSpace(cfg.Shortcuts[name]) == "" {
			r.add(SeverityError, "shortcut", name, "empty expansion")
			continue
		}
		if _, err := g.Resolve(name); err != nil {
			if errors.Is(err, ErrShortcutCycle) {
				r.add(SeverityError, "shortcut", name, "cycle: %v", err)
			} else {
				r.add(SeverityError, "shortcut", name, "does not resolve: %v", err)
			}
		}
	}

	for _, name := range slices.Sorted(maps.Keys(cfg.Theme.Colors)) {
		c := cfg.Theme.Colors[name]
		if !c.IsPalette() {
			checkColorValue(&r, name, c.Value)
			continue
		}
		var missing, extra []string
		for _, s := range PaletteShades {
			if _, ok := c.Shades[s]; !ok {
				missing = append(missing, s)
			}
		}
		for _, s := range slices.Sorted(maps.Keys(c.Shades)) {
			if !slices.Contains(PaletteShades, s) {
				extra = append(extra, s)
			}
			checkColorValue(&r, name+"-"+s, c.Shades[s])
		}
		if len(missing) > 0 {
			r.add(SeverityError, "palette", name, "missing shades %s", strings.Join(missing, ", "))
		}
		if len(extra) > 0 {
			r.add(SeverityError, "palette", name, "unexpected shades %s", strings.Join(extra, ", "))
		}
	}

	seen := make(map[string]bool, len(cfg.Safelist))
	for _, class := range cfg.Safelist {
		if seen[class] {
			r.add(SeverityWarning, "safelist", class, "duplicate entry")
			continue
		}
		seen[class] = true
		if !ValidClassName(class) {
			r.add(SeverityError, "safelist", class, "invalid class name")
			continue
		}
		if _, err := g.Resolve(class); err != nil {
			r.add(SeverityWarning, "safelist", class, "does not resolve: %v", err)
		}
	}

	return r
}

func checkColorValue(r *Report, subject, value string) {
	switch {
	case strings.TrimSpace(value) == "":
		r.add(SeverityError, "color", subject, "empty value")
	case strings.HasPrefix(value, "#") && !IsHexColor(value):
		r.add(SeverityError, "color", subject, "invalid hex color %q", value)
	}
}
