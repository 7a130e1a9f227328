package tw

import "fmt"

// Breakpoint represents a responsive breakpoint.
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM              // ≥640px
	BreakpointMD              // ≥768px
	BreakpointLG              // ≥1024px
	BreakpointXL              // ≥1280px
	Breakpoint2XL             // ≥1536px
)

var breakpointNames = map[string]Breakpoint{
	"sm":  BreakpointSM,
	"md":  BreakpointMD,
	"lg":  BreakpointLG,
	"xl":  BreakpointXL,
	"2xl": Breakpoint2XL,
}

func (b Breakpoint) String() string {
	for name, bp := range breakpointNames {
		if bp == b {
			return name
		}
	}
	return "base"
}

// BreakpointConfig holds the pixel thresholds for responsive breakpoints.
// Styles apply at the breakpoint width and above (mobile first).
type BreakpointConfig struct {
	SM  float32 // ≥640px by default
	MD  float32 // ≥768px by default
	LG  float32 // ≥1024px by default
	XL  float32 // ≥1280px by default
	XXL float32 // ≥1536px by default (2xl)
}

// DefaultBreakpoints returns the standard Tailwind breakpoint values.
func DefaultBreakpoints() BreakpointConfig {
	return BreakpointConfig{
		SM:  640,
		MD:  768,
		LG:  1024,
		XL:  1280,
		XXL: 1536,
	}
}

// Extend overrides every non-zero threshold in other.
func (c BreakpointConfig) Extend(other BreakpointConfig) BreakpointConfig {
	if other.SM != 0 {
		c.SM = other.SM
	}
	if other.MD != 0 {
		c.MD = other.MD
	}
	if other.LG != 0 {
		c.LG = other.LG
	}
	if other.XL != 0 {
		c.XL = other.XL
	}
	if other.XXL != 0 {
		c.XXL = other.XXL
	}
	return c
}

// MinWidth returns the threshold for b. Unset thresholds fall back to the
// defaults.
func (c BreakpointConfig) MinWidth(b Breakpoint) float32 {
	c = DefaultBreakpoints().Extend(c)
	switch b {
	case BreakpointSM:
		return c.SM
	case BreakpointMD:
		return c.MD
	case BreakpointLG:
		return c.LG
	case BreakpointXL:
		return c.XL
	case Breakpoint2XL:
		return c.XXL
	}
	return 0
}

// MediaQuery returns the at-rule prelude for b, or "" for the base breakpoint.
func (c BreakpointConfig) MediaQuery(b Breakpoint) string {
	if b == BreakpointBase {
		return ""
	}
	return fmt.Sprintf("@media (min-width: %spx)", formatFloat(float64(c.MinWidth(b))))
}
