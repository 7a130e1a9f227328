package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/slidetheme/internal/log"
	"github.com/agiangrant/slidetheme/tw"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <class>...",
		Short: "Print the CSS generated for classes",
		Long: `Resolves each class, shortcut or variant group and prints its CSS.
Exits non-zero if any class produces nothing.`,
		Example: `  slidetheme resolve card-purple
  slidetheme resolve "dark:(bg-black text-white)" md:p-4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := loadGenerator(opts.settings, log.WithComponent("resolve"))
			if err != nil {
				return err
			}

			var (
				utils []tw.Utility
				errs  []error
			)
			for _, class := range tw.ExpandVariantGroups(args) {
				u, err := gen.Resolve(class)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				utils = append(utils, u...)
			}
			fmt.Fprint(cmd.OutOrStdout(), gen.Render(utils))
			return errors.Join(errs...)
		},
	}
}
