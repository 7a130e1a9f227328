package tw

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a document serialization format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat normalises a format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Document is the serializable form of a Config. Colors hold either a
// string (scalar) or a shade table (palette).
type Document struct {
	Theme     ThemeDocument     `toml:"theme" yaml:"theme" json:"theme"`
	Shortcuts map[string]string `toml:"shortcuts,omitempty" yaml:"shortcuts,omitempty" json:"shortcuts,omitempty"`
	Rules     []RuleDocument    `toml:"rules,omitempty" yaml:"rules,omitempty" json:"rules,omitempty"`
	Safelist  []string          `toml:"safelist,omitempty" yaml:"safelist,omitempty" json:"safelist,omitempty"`
}

// ThemeDocument mirrors Theme with file-friendly types.
type ThemeDocument struct {
	Colors        map[string]any      `toml:"colors,omitempty" yaml:"colors,omitempty" json:"colors,omitempty"`
	Spacing       map[string]string   `toml:"spacing,omitempty" yaml:"spacing,omitempty" json:"spacing,omitempty"`
	FontFamily    map[string][]string `toml:"fontFamily,omitempty" yaml:"fontFamily,omitempty" json:"fontFamily,omitempty"`
	FontSize      map[string]string   `toml:"fontSize,omitempty" yaml:"fontSize,omitempty" json:"fontSize,omitempty"`
	FontWeight    map[string]string   `toml:"fontWeight,omitempty" yaml:"fontWeight,omitempty" json:"fontWeight,omitempty"`
	LineHeight    map[string]string   `toml:"lineHeight,omitempty" yaml:"lineHeight,omitempty" json:"lineHeight,omitempty"`
	LetterSpacing map[string]string   `toml:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty" json:"letterSpacing,omitempty"`
	BorderRadius  map[string]string   `toml:"borderRadius,omitempty" yaml:"borderRadius,omitempty" json:"borderRadius,omitempty"`
	MinWidth      map[string]string   `toml:"minWidth,omitempty" yaml:"minWidth,omitempty" json:"minWidth,omitempty"`
	Breakpoints   map[string]float32  `toml:"breakpoints,omitempty" yaml:"breakpoints,omitempty" json:"breakpoints,omitempty"`
}

// RuleDocument is a static rule: a pattern and the declarations it emits.
type RuleDocument struct {
	Pattern        string        `toml:"pattern" yaml:"pattern" json:"pattern"`
	Declarations   []Declaration `toml:"declarations" yaml:"declarations" json:"declarations"`
	SelectorSuffix string        `toml:"selectorSuffix,omitempty" yaml:"selectorSuffix,omitempty" json:"selectorSuffix,omitempty"`
}

// ToDocument converts cfg into its serializable form. Rules whose output is
// computed rather than fixed cannot be represented and yield ErrDynamicRule.
func ToDocument(cfg Config) (Document, error) {
	doc := Document{
		Theme:     themeToDocument(cfg.Theme),
		Shortcuts: cfg.Clone().Shortcuts,
		Safelist:  cfg.Clone().Safelist,
	}
	for _, r := range cfg.Rules {
		decls, ok := r.Static()
		if !ok {
			pattern := "<nil>"
			if r.Pattern != nil {
				pattern = r.Pattern.String()
			}
			return Document{}, fmt.Errorf("%w: %s", ErrDynamicRule, pattern)
		}
		doc.Rules = append(doc.Rules, RuleDocument{
			Pattern:        r.Pattern.String(),
			Declarations:   decls,
			SelectorSuffix: r.SelectorSuffix,
		})
	}
	return doc, nil
}

func themeToDocument(t Theme) ThemeDocument {
	t = t.Clone()
	td := ThemeDocument{
		Spacing:       t.Spacing,
		FontFamily:    t.FontFamily,
		FontSize:      t.FontSize,
		FontWeight:    t.FontWeight,
		LineHeight:    t.LineHeight,
		LetterSpacing: t.LetterSpacing,
		BorderRadius:  t.BorderRadius,
		MinWidth:      t.MinWidth,
	}
	if len(t.Colors) > 0 {
		td.Colors = make(map[string]any, len(t.Colors))
		for name, c := range t.Colors {
			if c.IsPalette() {
				td.Colors[name] = c.Shades
			} else {
				td.Colors[name] = c.Value
			}
		}
	}
	bp := map[string]float32{}
	for name, b := range breakpointNames {
		var v float32
		switch b {
		case BreakpointSM:
			v = t.Breakpoints.SM
		case BreakpointMD:
			v = t.Breakpoints.MD
		case BreakpointLG:
			v = t.Breakpoints.LG
		case BreakpointXL:
			v = t.Breakpoints.XL
		case Breakpoint2XL:
			v = t.Breakpoints.XXL
		}
		if v != 0 {
			bp[name] = v
		}
	}
	if len(bp) > 0 {
		td.Breakpoints = bp
	}
	return td
}

// Config compiles the document back into a Config.
func (d Document) Config() (Config, error) {
	theme, err := d.Theme.theme()
	if err != nil {
		return Config{}, err
	}
	cfg := Config{Theme: theme, Shortcuts: d.Shortcuts, Safelist: d.Safelist}
	for i, rd := range d.Rules {
		re, err := regexp.Compile(rd.Pattern)
		if err != nil {
			return Config{}, fmt.Errorf("rule %d: %w", i, err)
		}
		r := StaticRule(re.String(), rd.Declarations...)
		r.SelectorSuffix = rd.SelectorSuffix
		cfg.Rules = append(cfg.Rules, r)
	}
	return cfg.Clone(), nil
}

func (td ThemeDocument) theme() (Theme, error) {
	t := Theme{
		Spacing:       td.Spacing,
		FontFamily:    td.FontFamily,
		FontSize:      td.FontSize,
		FontWeight:    td.FontWeight,
		LineHeight:    td.LineHeight,
		LetterSpacing: td.LetterSpacing,
		BorderRadius:  td.BorderRadius,
		MinWidth:      td.MinWidth,
	}
	if len(td.Colors) > 0 {
		t.Colors = make(map[string]Color, len(td.Colors))
	}
	for name, raw := range td.Colors {
		c, err := decodeColor(raw)
		if err != nil {
			return Theme{}, fmt.Errorf("color %q: %w", name, err)
		}
		t.Colors[name] = c
	}
	for name, v := range td.Breakpoints {
		switch breakpointNames[name] {
		case BreakpointSM:
			t.Breakpoints.SM = v
		case BreakpointMD:
			t.Breakpoints.MD = v
		case BreakpointLG:
			t.Breakpoints.LG = v
		case BreakpointXL:
			t.Breakpoints.XL = v
		case Breakpoint2XL:
			t.Breakpoints.XXL = v
		default:
			return Theme{}, fmt.Errorf("unknown breakpoint %q", name)
		}
	}
	return t.Clone(), nil
}

// decodeColor accepts the shapes the three decoders produce for a color:
// a string, or a table keyed by shade. YAML yields non-string keys for
// unquoted numeric shades.
func decodeColor(raw any) (Color, error) {
	switch v := raw.(type) {
	case string:
		return Scalar(v), nil
	case map[string]string:
		return Palette(v), nil
	case map[string]any:
		shades := make(map[string]string, len(v))
		for k, s := range v {
			str, ok := s.(string)
			if !ok {
				return Color{}, fmt.Errorf("shade %q: expected string, got %T", k, s)
			}
			shades[k] = str
		}
		return Palette(shades), nil
	case map[any]any:
		shades := make(map[string]string, len(v))
		for k, s := range v {
			str, ok := s.(string)
			if !ok {
				return Color{}, fmt.Errorf("shade %v: expected string, got %T", k, s)
			}
			shades[fmt.Sprint(k)] = str
		}
		return Palette(shades), nil
	}
	return Color{}, fmt.Errorf("unsupported color value %T", raw)
}

// Marshal encodes the document.
func (d Document) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(d)
	case FormatYAML:
		return yaml.Marshal(d)
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// UnmarshalDocument decodes a document.
func UnmarshalDocument(data []byte, format Format) (Document, error) {
	var (
		doc Document
		err error
	)
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Document{}, fmt.Errorf("decode %s document: %w", format, err)
	}
	return doc, nil
}

// LoadFile reads a TOML, YAML or JSON document from path.
func LoadFile(path string) (Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := UnmarshalDocument(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg, err := doc.Config()
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
