package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agiangrant/slidetheme/internal/config"
	"github.com/agiangrant/slidetheme/internal/log"
	"github.com/agiangrant/slidetheme/internal/output"
	"github.com/agiangrant/slidetheme/internal/scan"
	"github.com/agiangrant/slidetheme/internal/watch"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the stylesheet from slide sources",
		Long: `Scans the content paths for utility classes and writes the stylesheet.
Safelisted classes are always included. With --watch the stylesheet is
regenerated whenever a source or the theme override changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := log.WithComponent("generate")
			s := opts.settings

			if err := generateOnce(ctx, s, logger); err != nil {
				return err
			}
			if !watchMode {
				return nil
			}
			return runWatch(ctx, s, logger)
		},
	}

	f := cmd.Flags()
	f.StringSlice(config.KeyContent, nil, "files or directories to scan")
	f.StringSlice(config.KeyExtensions, nil, "file extensions scanned inside directories")
	f.StringP(config.KeyOutput, "o", "", "output stylesheet path")
	f.BoolVarP(&watchMode, "watch", "w", false, "regenerate when sources change")
	return cmd
}

func generateOnce(ctx context.Context, s config.Settings, logger zerolog.Logger) error {
	start := time.Now()

	gen, err := loadGenerator(s, logger)
	if err != nil {
		return err
	}

	candidates, err := scan.Scanner{Extensions: s.Extensions}.Scan(ctx, s.Content)
	if err != nil {
		return fmt.Errorf("scan sources: %w", err)
	}

	res, err := gen.Generate(ctx, candidates)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	for _, class := range res.Unmatched {
		logger.Warn().Str("class", class).Msg("safelisted class produced no CSS")
	}

	changed, err := output.WriteFile(s.Output, []byte(res.CSS))
	if err != nil {
		return err
	}

	logger.Info().
		Str("event", "css.generated").
		Str("path", s.Output).
		Int("candidates", len(candidates)).
		Int("classes", len(res.Matched)).
		Int("rules", len(res.Utilities)).
		Bool("changed", changed).
		Dur("took", time.Since(start)).
		Msg("generated stylesheet")
	return nil
}

func runWatch(ctx context.Context, s config.Settings, logger zerolog.Logger) error {
	paths := append([]string{}, s.Content...)
	if s.Theme != "" {
		paths = append(paths, s.Theme)
	}

	w, err := watch.New(paths, s.Debounce, s.Output)
	if err != nil {
		return err
	}
	logger.Info().
		Str("event", "watch.started").
		Strs("paths", w.WatchList()).
		Msg("watching for changes, press Ctrl+C to stop")

	return w.Run(ctx, func(ctx context.Context, changed []string) error {
		logger.Info().Strs("changed", changed).Msg("sources changed, regenerating")
		return generateOnce(ctx, s, logger)
	})
}
