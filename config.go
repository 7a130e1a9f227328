// Package slidetheme holds the slide deck's style configuration: theme
// tokens, shortcuts, custom rules and the safelist consumed by the tw
// utility engine.
//
// The configuration is plain data. Every call to Config builds a fresh value,
// so callers can never share or mutate a common instance:
//
//	gen, err := tw.NewGenerator(slidetheme.Config())
//	res, err := gen.Generate(ctx, tw.Extract(slidesMarkdown))
package slidetheme

import "github.com/agiangrant/slidetheme/tw"

// Config returns the slide style configuration.
func Config() tw.Config {
	return tw.Config{
		Theme:     Theme(),
		Shortcuts: Shortcuts(),
		Rules:     Rules(),
		Safelist:  Safelist(),
	}
}

// ConfigWith returns Config extended by each override in turn, for example
// a theme.toml loaded with tw.LoadFile.
func ConfigWith(overrides ...tw.Config) tw.Config {
	cfg := Config()
	for _, o := range overrides {
		cfg = cfg.Extend(o)
	}
	return cfg
}

// NewGenerator builds a generator for ConfigWith(overrides...).
func NewGenerator(overrides ...tw.Config) (*tw.Generator, error) {
	return tw.NewGenerator(ConfigWith(overrides...))
}
