package tw

import (
	"regexp"
	"strconv"
	"strings"
)

func rule(pattern string, fn RuleFunc) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Generate: fn}
}

// keyword maps the first submatch through a fixed table onto one property.
func keyword(pattern, property string, values map[string]string) Rule {
	return rule(pattern, func(m []string, _ *Theme) (CSSObject, bool) {
		v, ok := values[m[1]]
		if !ok {
			return nil, false
		}
		return CSSObject{Decl(property, v)}, true
	})
}

// identity maps the first submatch onto property unchanged.
func identity(pattern, property string) Rule {
	return rule(pattern, func(m []string, _ *Theme) (CSSObject, bool) {
		return CSSObject{Decl(property, m[1])}, true
	})
}

var sides = map[string][]string{
	"":  {""},
	"x": {"-left", "-right"},
	"y": {"-top", "-bottom"},
	"t": {"-top"},
	"r": {"-right"},
	"b": {"-bottom"},
	"l": {"-left"},
}

func sided(property, side, value string) CSSObject {
	var out CSSObject
	for _, s := range sides[side] {
		out = append(out, Decl(property+s, value))
	}
	return out
}

func percent(n string) (string, bool) {
	f, err := strconv.ParseFloat(n, 64)
	if err != nil || f < 0 || f > 100 {
		return "", false
	}
	return formatFloat(f / 100), true
}

func negate(v string) string {
	if v == "0" {
		return v
	}
	return "-" + v
}

const defaultTransitionProperty = "color,background-color,border-color,text-decoration-color,fill,stroke,opacity,box-shadow,transform,filter,backdrop-filter"

var gradientDirections = map[string]string{
	"t":  "to top",
	"tr": "to top right",
	"r":  "to right",
	"br": "to bottom right",
	"b":  "to bottom",
	"bl": "to bottom left",
	"l":  "to left",
	"tl": "to top left",
}

var blurSizes = map[string]string{
	"none": "0",
	"sm":   "4px",
	"":     "8px",
	"md":   "12px",
	"lg":   "16px",
	"xl":   "24px",
	"2xl":  "40px",
	"3xl":  "64px",
}

var shadowPresets = map[string]string{
	"sm":    "0 1px 2px 0 rgb(0 0 0 / 0.05)",
	"":      "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
	"md":    "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
	"lg":    "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
	"xl":    "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
	"2xl":   "0 25px 50px -12px rgb(0 0 0 / 0.25)",
	"inner": "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
	"none":  "0 0 #0000",
}

// presetRules is the built-in atomic vocabulary. Order matters: the first
// rule that produces declarations wins.
func presetRules() []Rule {
	return []Rule{
		// Layout
		keyword(`^(block|inline-block|inline|flex|inline-flex|grid|inline-grid|contents|hidden)$`, "display", map[string]string{
			"block": "block", "inline-block": "inline-block", "inline": "inline", "flex": "flex",
			"inline-flex": "inline-flex", "grid": "grid", "inline-grid": "inline-grid",
			"contents": "contents", "hidden": "none",
		}),
		identity(`^(static|relative|absolute|fixed|sticky)$`, "position"),
		rule(`^(-?)(top|right|bottom|left|inset)-(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			v, ok := t.spacing(m[3])
			if m[3] == "auto" {
				v, ok = "auto", true
			}
			if !ok {
				return nil, false
			}
			if m[1] == "-" {
				v = negate(v)
			}
			return CSSObject{Decl(m[2], v)}, true
		}),
		identity(`^z-(\d+|auto)$`, "z-index"),
		rule(`^overflow-(?:(x|y)-)?(auto|hidden|clip|visible|scroll)$`, func(m []string, _ *Theme) (CSSObject, bool) {
			prop := "overflow"
			if m[1] != "" {
				prop += "-" + m[1]
			}
			return CSSObject{Decl(prop, m[2])}, true
		}),

		// Flexbox and grid
		keyword(`^flex-(row|row-reverse|col|col-reverse)$`, "flex-direction", map[string]string{
			"row": "row", "row-reverse": "row-reverse", "col": "column", "col-reverse": "column-reverse",
		}),
		identity(`^flex-(wrap|wrap-reverse|nowrap)$`, "flex-wrap"),
		keyword(`^flex-(1|auto|initial|none)$`, "flex", map[string]string{
			"1": "1 1 0%", "auto": "1 1 auto", "initial": "0 1 auto", "none": "none",
		}),
		rule(`^(grow|shrink)(-0)?$`, func(m []string, _ *Theme) (CSSObject, bool) {
			v := "1"
			if m[2] != "" {
				v = "0"
			}
			return CSSObject{Decl("flex-"+m[1], v)}, true
		}),
		keyword(`^justify-(start|end|center|between|around|evenly)$`, "justify-content", map[string]string{
			"start": "flex-start", "end": "flex-end", "center": "center",
			"between": "space-between", "around": "space-around", "evenly": "space-evenly",
		}),
		keyword(`^items-(start|end|center|baseline|stretch)$`, "align-items", map[string]string{
			"start": "flex-start", "end": "flex-end", "center": "center", "baseline": "baseline", "stretch": "stretch",
		}),
		keyword(`^self-(auto|start|end|center|baseline|stretch)$`, "align-self", map[string]string{
			"auto": "auto", "start": "flex-start", "end": "flex-end", "center": "center", "baseline": "baseline", "stretch": "stretch",
		}),
		rule(`^grid-(cols|rows)-(\d+|none)$`, func(m []string, _ *Theme) (CSSObject, bool) {
			prop := "grid-template-columns"
			if m[1] == "rows" {
				prop = "grid-template-rows"
			}
			if m[2] == "none" {
				return CSSObject{Decl(prop, "none")}, true
			}
			return CSSObject{Decl(prop, "repeat("+m[2]+",minmax(0,1fr))")}, true
		}),
		rule(`^(col|row)-span-(\d+|full)$`, func(m []string, _ *Theme) (CSSObject, bool) {
			prop := "grid-column"
			if m[1] == "row" {
				prop = "grid-row"
			}
			if m[2] == "full" {
				return CSSObject{Decl(prop, "1/-1")}, true
			}
			return CSSObject{Decl(prop, "span "+m[2]+"/span "+m[2])}, true
		}),
		rule(`^gap-(?:(x|y)-)?(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			v, ok := t.spacing(m[2])
			if !ok {
				return nil, false
			}
			prop := map[string]string{"": "gap", "x": "column-gap", "y": "row-gap"}[m[1]]
			return CSSObject{Decl(prop, v)}, true
		}),
		{
			Pattern: regexp.MustCompile(`^space-(x|y)-(.+)$`),
			Generate: func(m []string, t *Theme) (CSSObject, bool) {
				v, ok := t.spacing(m[2])
				if !ok {
					return nil, false
				}
				if m[1] == "x" {
					return CSSObject{Decl("margin-left", v)}, true
				}
				return CSSObject{Decl("margin-top", v)}, true
			},
			SelectorSuffix: ">:not([hidden])~:not([hidden])",
		},

		// Spacing
		rule(`^(m|p)([xytrbl]?)-(-?)(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			prop := "margin"
			if m[1] == "p" {
				prop = "padding"
			}
			if m[4] == "auto" && prop == "margin" && m[3] == "" {
				return sided(prop, m[2], "auto"), true
			}
			v, ok := t.spacing(m[4])
			if !ok {
				return nil, false
			}
			if m[3] == "-" {
				if prop == "padding" {
					return nil, false
				}
				v = negate(v)
			}
			return sided(prop, m[2], v), true
		}),
		rule(`^-m([xytrbl]?)-(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			v, ok := t.spacing(m[2])
			if !ok {
				return nil, false
			}
			return sided("margin", m[1], negate(v)), true
		}),

		// Sizing
		rule(`^(min|max)-(w|h)-(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			prop := m[1] + "-width"
			if m[2] == "h" {
				prop = m[1] + "-height"
			}
			if m[1] == "min" && m[2] == "w" {
				if v, ok := t.MinWidth[m[3]]; ok {
					return CSSObject{Decl(prop, v)}, true
				}
			}
			v, ok := t.size(m[3], m[2][0])
			if !ok {
				return nil, false
			}
			return CSSObject{Decl(prop, v)}, true
		}),
		rule(`^(w|h)-(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			v, ok := t.size(m[2], m[1][0])
			if !ok {
				return nil, false
			}
			if m[1] == "w" {
				return CSSObject{Decl("width", v)}, true
			}
			return CSSObject{Decl("height", v)}, true
		}),

		// Typography
		keyword(`^text-(left|center|right|justify|start|end)$`, "text-align", map[string]string{
			"left": "left", "center": "center", "right": "right", "justify": "justify", "start": "start", "end": "end",
		}),
		rule(`^text-(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			if v, ok := t.FontSize[m[1]]; ok {
				return CSSObject{Decl("font-size", v)}, true
			}
			if isArbitrary(m[1]) && isLength(arbitraryValue(m[1])) {
				return CSSObject{Decl("font-size", arbitraryValue(m[1]))}, true
			}
			return nil, false
		}),
		rule(`^(?:text|color)-(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			c, ok := t.Color(m[1])
			if !ok {
				return nil, false
			}
			return colorDecls("color", "--un-text-opacity", c), true
		}),
		rule(`^font-(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			if v, ok := t.FontWeight[m[1]]; ok {
				return CSSObject{Decl("font-weight", v)}, true
			}
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 100 && n <= 900 && n%100 == 0 {
				return CSSObject{Decl("font-weight", m[1])}, true
			}
			if fonts, ok := t.FontFamily[m[1]]; ok && len(fonts) > 0 {
				return CSSObject{Decl("font-family", strings.Join(fonts, ","))}, true
			}
			return nil, false
		}),
		rule(`^leading-(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			if v, ok := t.LineHeight[m[1]]; ok {
				return CSSObject{Decl("line-height", v)}, true
			}
			if v, ok := t.spacing(m[1]); ok {
				return CSSObject{Decl("line-height", v)}, true
			}
			return nil, false
		}),
		rule(`^tracking-(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			if v, ok := t.LetterSpacing[m[1]]; ok {
				return CSSObject{Decl("letter-spacing", v)}, true
			}
			if isArbitrary(m[1]) {
				return CSSObject{Decl("letter-spacing", arbitraryValue(m[1]))}, true
			}
			return nil, false
		}),
		keyword(`^(italic|not-italic)$`, "font-style", map[string]string{"italic": "italic", "not-italic": "normal"}),
		keyword(`^(underline|line-through|no-underline)$`, "text-decoration-line", map[string]string{
			"underline": "underline", "line-through": "line-through", "no-underline": "none",
		}),
		keyword(`^(uppercase|lowercase|capitalize|normal-case)$`, "text-transform", map[string]string{
			"uppercase": "uppercase", "lowercase": "lowercase", "capitalize": "capitalize", "normal-case": "none",
		}),

		// Backgrounds and gradients
		rule(`^bg-gradient-to-(t|tr|r|br|b|bl|l|tl)$`, func(m []string, _ *Theme) (CSSObject, bool) {
			return CSSObject{
				Decl("--un-gradient-shape", gradientDirections[m[1]]),
				Decl("--un-gradient", "var(--un-gradient-shape), var(--un-gradient-stops)"),
				Decl("background-image", "linear-gradient(var(--un-gradient))"),
			}, true
		}),
		rule(`^(bg|text|border)-opacity-(\d+)$`, func(m []string, _ *Theme) (CSSObject, bool) {
			v, ok := percent(m[2])
			if !ok {
				return nil, false
			}
			return CSSObject{Decl("--un-"+m[1]+"-opacity", v)}, true
		}),
		rule(`^bg-(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			c, ok := t.Color(m[1])
			if !ok {
				return nil, false
			}
			return colorDecls("background-color", "--un-bg-opacity", c), true
		}),
		rule(`^(from|via|to)-(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			c, ok := t.Color(m[2])
			if !ok {
				return nil, false
			}
			switch m[1] {
			case "from":
				return CSSObject{
					Decl("--un-gradient-from-position", "0%"),
					Decl("--un-gradient-from", c.CSS()+" var(--un-gradient-from-position)"),
					Decl("--un-gradient-to-position", "100%"),
					Decl("--un-gradient-to", c.transparent()+" var(--un-gradient-to-position)"),
					Decl("--un-gradient-stops", "var(--un-gradient-from), var(--un-gradient-to)"),
				}, true
			case "via":
				return CSSObject{
					Decl("--un-gradient-via-position", "50%"),
					Decl("--un-gradient-to", c.transparent()),
					Decl("--un-gradient-stops", "var(--un-gradient-from), "+c.CSS()+" var(--un-gradient-via-position), var(--un-gradient-to)"),
				}, true
			default:
				return CSSObject{
					Decl("--un-gradient-to-position", "100%"),
					Decl("--un-gradient-to", c.CSS()+" var(--un-gradient-to-position)"),
				}, true
			}
		}),

		// Borders
		StaticRule(`^border$`, Decl("border-width", "1px")),
		rule(`^border-(?:([xytrbl])-?)?(\d+(?:\.\d+)?)?$`, func(m []string, _ *Theme) (CSSObject, bool) {
			if m[1] == "" && m[2] == "" {
				return nil, false
			}
			w := "1px"
			if m[2] != "" {
				w = m[2] + "px"
			}
			out := sided("border", m[1], w)
			for i := range out {
				out[i].Property += "-width"
			}
			return out, true
		}),
		identity(`^border-(solid|dashed|dotted|double|hidden|none)$`, "border-style"),
		rule(`^border-(.+)$`, func(m []string, t *Theme) (CSSObject, bool) {
			c, ok := t.Color(m[1])
			if !ok {
				return nil, false
			}
			return colorDecls("border-color", "--un-border-opacity", c), true
		}),
		rule(`^rounded(?:-(.+))?$`, func(m []string, t *Theme) (CSSObject, bool) {
			key := m[1]
			if key == "" {
				key = "DEFAULT"
			}
			if v, ok := t.BorderRadius[key]; ok {
				return CSSObject{Decl("border-radius", v)}, true
			}
			if isArbitrary(key) {
				return CSSObject{Decl("border-radius", arbitraryValue(key))}, true
			}
			return nil, false
		}),

		// Effects
		rule(`^shadow-(\[.+\])$`, func(m []string, _ *Theme) (CSSObject, bool) {
			return CSSObject{Decl("box-shadow", arbitraryValue(m[1]))}, true
		}),
		rule(`^shadow(?:-(.+))?$`, func(m []string, _ *Theme) (CSSObject, bool) {
			v, ok := shadowPresets[m[1]]
			if !ok {
				return nil, false
			}
			return CSSObject{Decl("box-shadow", v)}, true
		}),
		rule(`^opacity-(\d+)$`, func(m []string, _ *Theme) (CSSObject, bool) {
			v, ok := percent(m[1])
			if !ok {
				return nil, false
			}
			return CSSObject{Decl("opacity", v)}, true
		}),
		rule(`^(backdrop-)?blur(?:-(.+))?$`, func(m []string, _ *Theme) (CSSObject, bool) {
			v, ok := blurSizes[m[2]]
			if !ok {
				if !isArbitrary(m[2]) {
					return nil, false
				}
				v = arbitraryValue(m[2])
			}
			prop := "filter"
			if m[1] != "" {
				prop = "backdrop-filter"
			}
			return CSSObject{Decl(prop, "blur("+v+")")}, true
		}),

		// Interactivity
		identity(`^cursor-(auto|default|pointer|wait|text|move|help|not-allowed|none|grab|grabbing|crosshair)$`, "cursor"),
		identity(`^select-(none|text|all|auto)$`, "user-select"),
		identity(`^pointer-events-(none|auto)$`, "pointer-events"),
		identity(`^object-(contain|cover|fill|none|scale-down)$`, "object-fit"),

		// Transitions
		StaticRule(`^transition$`,
			Decl("transition-property", defaultTransitionProperty),
			Decl("transition-timing-function", "cubic-bezier(0.4, 0, 0.2, 1)"),
			Decl("transition-duration", "150ms"),
		),
		rule(`^transition-(all|colors|opacity|shadow|transform|none)$`, func(m []string, _ *Theme) (CSSObject, bool) {
			props := map[string]string{
				"all":       "all",
				"colors":    "color,background-color,border-color,text-decoration-color,fill,stroke",
				"opacity":   "opacity",
				"shadow":    "box-shadow",
				"transform": "transform",
				"none":      "none",
			}[m[1]]
			if props == "none" {
				return CSSObject{Decl("transition-property", "none")}, true
			}
			return CSSObject{
				Decl("transition-property", props),
				Decl("transition-timing-function", "cubic-bezier(0.4, 0, 0.2, 1)"),
				Decl("transition-duration", "150ms"),
			}, true
		}),
		rule(`^(duration|delay)-(\d+)$`, func(m []string, _ *Theme) (CSSObject, bool) {
			return CSSObject{Decl("transition-"+m[1], m[2]+"ms")}, true
		}),
		keyword(`^ease-(linear|in|out|in-out)$`, "transition-timing-function", map[string]string{
			"linear": "linear",
			"in":     "cubic-bezier(0.4, 0, 1, 1)",
			"out":    "cubic-bezier(0, 0, 0.2, 1)",
			"in-out": "cubic-bezier(0.4, 0, 0.2, 1)",
		}),
	}
}

// isLength reports whether v looks like a CSS length rather than a color.
func isLength(v string) bool {
	for _, unit := range []string{"px", "rem", "em", "%", "vw", "vh", "pt"} {
		if strings.HasSuffix(v, unit) {
			_, err := strconv.ParseFloat(strings.TrimSuffix(v, unit), 64)
			return err == nil
		}
	}
	return false
}
