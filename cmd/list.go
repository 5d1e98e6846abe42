package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/ifrshub/internal/render"
)

var listCmd = &cobra.Command{
	Use:       "list <standards|examples|tests|results>",
	Short:     "Print a rendered view as plain text",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"standards", "examples", "tests", "results"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		lib, err := loadLibrary(cmd.Context(), cmd, cfg, zap.NewNop())
		if err != nil {
			return err
		}

		r := render.New(cfg.Styles())
		out := cmd.OutOrStdout()
		switch args[0] {
		case "standards":
			printPage(out, r.Standards(lib.Standards().List()))
		case "examples":
			printPage(out, r.Examples(lib.Examples().List()))
		case "tests":
			printPage(out, r.Tests(lib).Page)
		case "results":
			printResults(out, r.Results(lib.Results()))
		}
		return nil
	},
}

func printPage(w io.Writer, p render.Page) {
	fmt.Fprintln(w, p.Title)
	fmt.Fprintln(w, strings.Repeat("─", 72))
	for _, c := range p.Cards {
		labels := make([]string, len(c.Badges))
		for i, b := range c.Badges {
			labels[i] = b.Label
		}
		stats := make([]string, len(c.Stats))
		for i, s := range c.Stats {
			stats[i] = s.Value
		}

		fmt.Fprintf(w, "%-28s  %-40s  %s\n", c.ID, c.Title, strings.Join(labels, ", "))
		fmt.Fprintf(w, "%-28s  %s\n", "", strings.Join(stats, " · "))
		if c.Progress != nil {
			fmt.Fprintf(w, "%-28s  %s\n", "", c.Progress.Text)
		}
		if c.BestScore != nil {
			fmt.Fprintf(w, "%-28s  Best score %s (%d attempts)\n", "", c.BestScore.Text, c.BestScore.Attempts)
		}
	}
}

func printResults(w io.Writer, rows []render.ResultRow) {
	fmt.Fprintf(w, "%-40s  %-6s  %-12s  %s\n", "Test", "Score", "When", "Outcome")
	fmt.Fprintln(w, strings.Repeat("─", 76))
	for _, row := range rows {
		outcome := "needs improvement"
		if row.Passed {
			outcome = "passed"
		}
		fmt.Fprintf(w, "%-40s  %-6s  %-12s  %s\n", row.Title, row.ScoreText, row.Recency, outcome)
	}
}
