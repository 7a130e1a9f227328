package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/slidetheme/internal/log"
	"github.com/agiangrant/slidetheme/internal/output"
	"github.com/agiangrant/slidetheme/tw"
)

func newDumpCmd(opts *rootOptions) *cobra.Command {
	var (
		formatName string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration as a document",
		Long: `Serializes the theme, shortcuts, custom rules and safelist as TOML, YAML
or JSON. The result can be edited and passed back with --theme.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.WithComponent("dump")

			format, err := tw.ParseFormat(formatName)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(opts.settings, logger)
			if err != nil {
				return err
			}
			doc, err := tw.ToDocument(cfg)
			if err != nil {
				return fmt.Errorf("serialize config: %w", err)
			}
			data, err := doc.Marshal(format)
			if err != nil {
				return fmt.Errorf("encode %s: %w", format, err)
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			changed, err := output.WriteFile(outPath, data)
			if err != nil {
				return err
			}
			logger.Info().Str("path", outPath).Str("format", string(format)).Bool("changed", changed).Msg("wrote config document")
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", string(tw.FormatTOML), "document format: toml, yaml or json")
	cmd.Flags().StringVar(&outPath, "out", "", "write to a file instead of stdout")
	return cmd
}
