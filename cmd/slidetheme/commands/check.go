package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/agiangrant/slidetheme/internal/log"
	"github.com/agiangrant/slidetheme/tw"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the style configuration",
		Long: `Checks that every shortcut resolves without cycles, palettes define
exactly the shades 100-900, custom rules match a single literal class and
the safelist is well formed. Unresolved safelist entries are warnings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts.settings, log.WithComponent("check"))
			if err != nil {
				return err
			}

			report := tw.Check(cfg)
			writeReport(cmd.OutOrStdout(), report)

			if n := len(report.Errors()); n > 0 {
				return fmt.Errorf("check found %d error(s)", n)
			}
			if n := len(report.Warnings()); strict && n > 0 {
				return fmt.Errorf("check found %d warning(s) in strict mode", n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	return cmd
}

type reportStyles struct {
	err     lipgloss.Style
	warning lipgloss.Style
	ok      lipgloss.Style
	subject lipgloss.Style
	muted   lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		err:     r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		subject: r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func writeReport(w io.Writer, report tw.Report) {
	st := newReportStyles(w)

	var b strings.Builder
	for _, issue := range report.Issues {
		label := st.err.Render("error  ")
		if issue.Severity == tw.SeverityWarning {
			label = st.warning.Render("warning")
		}
		fmt.Fprintf(&b, "%s %s %s %s\n",
			label,
			st.muted.Render(fmt.Sprintf("%-8s", issue.Kind)),
			st.subject.Render(issue.Subject),
			issue.Message)
	}

	errs, warns := len(report.Errors()), len(report.Warnings())
	switch {
	case errs == 0 && warns == 0:
		b.WriteString(st.ok.Render("ok") + " configuration is valid\n")
	case errs == 0:
		fmt.Fprintf(&b, "%s configuration is valid with %d warning(s)\n", st.ok.Render("ok"), warns)
	default:
		fmt.Fprintf(&b, "%s %d error(s), %d warning(s)\n", st.err.Render("failed"), errs, warns)
	}
	fmt.Fprint(w, b.String())
}
