package slidetheme

import "github.com/agiangrant/slidetheme/tw"

// Theme returns the design tokens layered over the engine defaults.
func Theme() tw.Theme {
	return tw.Theme{
		Colors: map[string]tw.Color{
			"emphasis": tw.Palette(emphasisShades()),
			"gray": tw.Palette(map[string]string{
				"100": "#EBF1F5",
				"200": "#D9E3EA",
				"300": "#C5D2DC",
				"400": "#9BA9B4",
				"500": "#707D86",
				"600": "#55595F",
				"700": "#33363A",
				"800": "#25282C",
				"900": "#151719",
			}),
			"purple": tw.Palette(map[string]string{
				"100": "#F4F4FF",
				"200": "#E2E1FF",
				"300": "#CBCCFF",
				"400": "#ABABFF",
				"500": "#8D8DFF",
				"600": "#5D5DFF",
				"700": "#4B4ACF",
				"800": "#38379C",
				"900": "#262668",
			}),
			"primary":   tw.Scalar("var(--ifm-color-primary)"),
			"secondary": tw.Scalar("var(--ifm-color-content-secondary)"),
			"content":   tw.Scalar("var(--ifm-color-content)"),
			"selected":  tw.Scalar("var(--ifm-hover-overlay)"),
		},
		Spacing: map[string]string{
			"9/16": "56.25%",
			"3/4":  "75%",
			"1/1":  "100%",
		},
		FontFamily: map[string][]string{
			"inter":               {"Inter", "sans-serif"},
			"architects-daughter": {`"Architects Daughter"`, "sans-serif"},
		},
		FontSize: map[string]string{
			"xs":   "0.75rem",
			"sm":   "0.875rem",
			"base": "1rem",
			"lg":   "1.125rem",
			"xl":   "1.25rem",
			"2xl":  "1.5rem",
			"3xl":  "2rem",
			"4xl":  "2.5rem",
			"5xl":  "3.25rem",
			"6xl":  "4rem",
		},
		LetterSpacing: map[string]string{
			"tighter": "-0.02em",
			"tight":   "-0.01em",
			"normal":  "0",
			"wide":    "0.01em",
			"wider":   "0.02em",
			"widest":  "0.4em",
		},
		MinWidth: map[string]string{
			"10": "2.5rem",
		},
	}
}

// emphasisShades point at the host site's emphasis scale.
func emphasisShades() map[string]string {
	shades := make(map[string]string, len(tw.PaletteShades))
	for _, s := range tw.PaletteShades {
		shades[s] = "var(--ifm-color-emphasis-" + s + ")"
	}
	return shades
}
