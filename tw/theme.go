package tw

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Color is either a scalar color value or a palette of shades.
type Color struct {
	Value  string
	Shades map[string]string
}

// Scalar returns a single-value color token.
func Scalar(value string) Color {
	return Color{Value: value}
}

// Palette returns a shade-keyed color token.
func Palette(shades map[string]string) Color {
	return Color{Shades: shades}
}

// IsPalette reports whether the color has shades.
func (c Color) IsPalette() bool {
	return c.Shades != nil
}

func (c Color) clone() Color {
	return Color{Value: c.Value, Shades: maps.Clone(c.Shades)}
}

// Theme holds the design tokens rules resolve against.
type Theme struct {
	Colors        map[string]Color
	Spacing       map[string]string
	FontFamily    map[string][]string
	FontSize      map[string]string
	FontWeight    map[string]string
	LineHeight    map[string]string
	LetterSpacing map[string]string
	BorderRadius  map[string]string
	MinWidth      map[string]string
	Breakpoints   BreakpointConfig
}

// Clone returns a deep copy of the theme.
func (t Theme) Clone() Theme {
	out := Theme{
		Spacing:       maps.Clone(t.Spacing),
		FontSize:      maps.Clone(t.FontSize),
		FontWeight:    maps.Clone(t.FontWeight),
		LineHeight:    maps.Clone(t.LineHeight),
		LetterSpacing: maps.Clone(t.LetterSpacing),
		BorderRadius:  maps.Clone(t.BorderRadius),
		MinWidth:      maps.Clone(t.MinWidth),
		Breakpoints:   t.Breakpoints,
	}
	if t.Colors != nil {
		out.Colors = make(map[string]Color, len(t.Colors))
		for k, v := range t.Colors {
			out.Colors[k] = v.clone()
		}
	}
	if t.FontFamily != nil {
		out.FontFamily = make(map[string][]string, len(t.FontFamily))
		for k, v := range t.FontFamily {
			out.FontFamily[k] = slices.Clone(v)
		}
	}
	return out
}

// Extend deep-merges other over t. Palettes merge shade by shade, so a user
// palette that only defines 100-900 keeps the default 50 and 950 shades.
// A scalar replaces a palette of the same name and vice versa.
func (t Theme) Extend(other Theme) Theme {
	out := t.Clone()
	if out.Colors == nil && len(other.Colors) > 0 {
		out.Colors = make(map[string]Color, len(other.Colors))
	}
	for name, c := range other.Colors {
		base, ok := out.Colors[name]
		if ok && base.IsPalette() && c.IsPalette() {
			merged := maps.Clone(base.Shades)
			maps.Copy(merged, c.Shades)
			out.Colors[name] = Palette(merged)
			continue
		}
		out.Colors[name] = c.clone()
	}
	out.Spacing = mergeTokens(out.Spacing, other.Spacing)
	out.FontSize = mergeTokens(out.FontSize, other.FontSize)
	out.FontWeight = mergeTokens(out.FontWeight, other.FontWeight)
	out.LineHeight = mergeTokens(out.LineHeight, other.LineHeight)
	out.LetterSpacing = mergeTokens(out.LetterSpacing, other.LetterSpacing)
	out.BorderRadius = mergeTokens(out.BorderRadius, other.BorderRadius)
	out.MinWidth = mergeTokens(out.MinWidth, other.MinWidth)
	if out.FontFamily == nil && len(other.FontFamily) > 0 {
		out.FontFamily = make(map[string][]string, len(other.FontFamily))
	}
	for k, v := range other.FontFamily {
		out.FontFamily[k] = slices.Clone(v)
	}
	out.Breakpoints = out.Breakpoints.Extend(other.Breakpoints)
	return out
}

func mergeTokens(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// Color resolves a color key such as "purple-500", "primary",
// "purple-500/30" or "[#181818]".
func (t *Theme) Color(key string) (ColorValue, bool) {
	body, alpha := key, ""
	if i := strings.LastIndexByte(key, '/'); i > 0 && !strings.HasSuffix(key, "]") {
		body, alpha = key[:i], key[i+1:]
	}

	var raw string
	switch {
	case isArbitrary(body):
		raw = arbitraryValue(body)
	default:
		v, ok := t.lookupColor(body)
		if !ok {
			return ColorValue{}, false
		}
		raw = v
	}

	cv := ParseColor(raw)
	if alpha != "" {
		n, err := strconv.ParseFloat(alpha, 64)
		if err != nil || n < 0 || n > 100 {
			return ColorValue{}, false
		}
		cv = cv.WithAlpha(n / 100)
	}
	return cv, true
}

func (t *Theme) lookupColor(name string) (string, bool) {
	if c, ok := t.Colors[name]; ok && !c.IsPalette() {
		return c.Value, true
	}
	// Palette names may contain dashes, so try every split from the right.
	for i := strings.LastIndexByte(name, '-'); i > 0; i = strings.LastIndexByte(name[:i], '-') {
		c, ok := t.Colors[name[:i]]
		if !ok || !c.IsPalette() {
			continue
		}
		if v, ok := c.Shades[name[i+1:]]; ok {
			return v, true
		}
	}
	return "", false
}

// spacing resolves a spacing key: theme token first, then the numeric
// quarter-rem scale, then an arbitrary value.
func (t *Theme) spacing(key string) (string, bool) {
	if v, ok := t.Spacing[key]; ok {
		return v, true
	}
	switch {
	case key == "px":
		return "1px", true
	case isArbitrary(key):
		return arbitraryValue(key), true
	}
	n, err := strconv.ParseFloat(key, 64)
	if err != nil || n < 0 {
		return "", false
	}
	if n == 0 {
		return "0", true
	}
	return formatFloat(n/4) + "rem", true
}

// size resolves width/height style keys, which additionally accept
// keywords and fractions.
func (t *Theme) size(key string, axis byte) (string, bool) {
	switch key {
	case "full":
		return "100%", true
	case "auto":
		return "auto", true
	case "min", "max", "fit":
		return key + "-content", true
	case "screen":
		if axis == 'h' {
			return "100vh", true
		}
		return "100vw", true
	}
	if v, ok := t.spacing(key); ok {
		return v, true
	}
	if num, den, ok := strings.Cut(key, "/"); ok {
		a, err1 := strconv.ParseFloat(num, 64)
		b, err2 := strconv.ParseFloat(den, 64)
		if err1 == nil && err2 == nil && b != 0 {
			return formatFloat(a*100/b) + "%", true
		}
	}
	return "", false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isArbitrary(s string) bool {
	return len(s) > 2 && s[0] == '[' && s[len(s)-1] == ']'
}

// arbitraryValue unwraps "[0_0_25px_red]" into "0 0 25px red".
func arbitraryValue(s string) string {
	return strings.ReplaceAll(s[1:len(s)-1], "_", " ")
}
