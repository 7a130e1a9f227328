package tw

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorValue is a resolved color. Hex colors are decomposed into channels so
// opacity utilities can be applied; anything else (var(), rgba(), keywords)
// is passed through verbatim.
type ColorValue struct {
	raw      string
	rgb      bool
	r, g, b  uint8
	alpha    float64
	hasAlpha bool
}

// ParseColor parses a CSS color value.
func ParseColor(value string) ColorValue {
	value = strings.TrimSpace(value)
	cv := ColorValue{raw: value}
	if strings.HasPrefix(value, "#") {
		if c, err := colorful.Hex(value); err == nil {
			cv.rgb = true
			cv.r, cv.g, cv.b = c.RGB255()
		}
	}
	return cv
}

// IsHexColor reports whether value is a #rgb or #rrggbb literal.
func IsHexColor(value string) bool {
	if !strings.HasPrefix(value, "#") {
		return false
	}
	_, err := colorful.Hex(value)
	return err == nil
}

// WithAlpha returns a copy with a fixed alpha channel (0..1).
func (c ColorValue) WithAlpha(alpha float64) ColorValue {
	c.alpha = alpha
	c.hasAlpha = true
	return c
}

// RGB returns the decoded channels for hex colors.
func (c ColorValue) RGB() (r, g, b uint8, ok bool) {
	return c.r, c.g, c.b, c.rgb
}

// CSS renders the color.
func (c ColorValue) CSS() string {
	switch {
	case c.rgb && c.hasAlpha:
		return fmt.Sprintf("rgb(%d %d %d / %s)", c.r, c.g, c.b, formatFloat(c.alpha))
	case c.rgb:
		return fmt.Sprintf("rgb(%d %d %d)", c.r, c.g, c.b)
	case c.hasAlpha:
		return fmt.Sprintf("color-mix(in srgb, %s %s%%, transparent)", c.raw, formatFloat(c.alpha*100))
	default:
		return c.raw
	}
}

// withOpacityVar renders hex colors against an opacity custom property so
// that *-opacity-N utilities can adjust them later.
func (c ColorValue) withOpacityVar(name string) string {
	if c.rgb && !c.hasAlpha {
		return fmt.Sprintf("rgb(%d %d %d / var(%s))", c.r, c.g, c.b, name)
	}
	return c.CSS()
}

// transparent renders the same hue at zero alpha, used as the implicit end
// stop of a gradient.
func (c ColorValue) transparent() string {
	if c.rgb {
		return fmt.Sprintf("rgb(%d %d %d / 0)", c.r, c.g, c.b)
	}
	return "transparent"
}

// colorDecls builds the declarations for a color utility. Hex colors without
// an explicit alpha get an opacity variable set to 1.
func colorDecls(property, opacityVar string, c ColorValue) CSSObject {
	if opacityVar != "" && c.rgb && !c.hasAlpha {
		return CSSObject{
			Decl(opacityVar, "1"),
			Decl(property, c.withOpacityVar(opacityVar)),
		}
	}
	return CSSObject{Decl(property, c.CSS())}
}
