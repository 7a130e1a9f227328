// Package commands implements the slidetheme CLI.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agiangrant/slidetheme"
	"github.com/agiangrant/slidetheme/internal/config"
	"github.com/agiangrant/slidetheme/internal/log"
	"github.com/agiangrant/slidetheme/tw"
)

var version = "0.1.0"

// rootOptions carries persistent flags and the settings resolved from them
// to every subcommand.
type rootOptions struct {
	configFile string
	pretty     bool

	settings config.Settings
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "slidetheme",
		Short:         "Utility CSS for the slide deck",
		Long:          "slidetheme scans slide sources for utility classes and generates the stylesheet from the deck's theme, shortcuts, rules and safelist.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loadOpts := []config.Option{config.WithFlags(cmd.Flags())}
			if opts.configFile != "" {
				loadOpts = append(loadOpts, config.WithConfigFile(opts.configFile))
			}
			s, err := config.Load(loadOpts...)
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			opts.settings = s
			log.Configure(log.Config{Level: s.LogLevel, Output: cmd.ErrOrStderr(), Pretty: opts.pretty})
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "project config file (default: slidetheme.{yaml,yml,toml,json} in the working directory)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&opts.pretty, "pretty", false, "human-readable log output")
	pf.String(config.KeyTheme, "", "theme override document (toml, yaml or json)")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newResolveCmd(opts),
		newCheckCmd(opts),
		newDumpCmd(opts),
	)
	return cmd
}

// loadOverrides reads the theme override document when it exists. A missing
// file means the built-in configuration is used as is.
func loadOverrides(s config.Settings, logger zerolog.Logger) ([]tw.Config, error) {
	if s.Theme == "" {
		return nil, nil
	}
	if _, err := os.Stat(s.Theme); errors.Is(err, fs.ErrNotExist) {
		logger.Debug().Str("path", s.Theme).Msg("no theme override found, using defaults")
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w", s.Theme, err)
	}

	override, err := tw.LoadFile(s.Theme)
	if err != nil {
		return nil, fmt.Errorf("load theme override: %w", err)
	}
	logger.Debug().Str("path", s.Theme).Msg("loaded theme override")
	return []tw.Config{override}, nil
}

func loadConfig(s config.Settings, logger zerolog.Logger) (tw.Config, error) {
	overrides, err := loadOverrides(s, logger)
	if err != nil {
		return tw.Config{}, err
	}
	return slidetheme.ConfigWith(overrides...), nil
}

func loadGenerator(s config.Settings, logger zerolog.Logger) (*tw.Generator, error) {
	cfg, err := loadConfig(s, logger)
	if err != nil {
		return nil, err
	}
	gen, err := tw.NewGenerator(cfg)
	if err != nil {
		return nil, fmt.Errorf("build generator: %w", err)
	}
	return gen, nil
}
