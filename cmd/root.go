package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/ifrshub/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "ifrshub",
	Short: "IFRS learning dashboard",
	Long:  "IFRS Learning Hub: browse accounting standards, practice examples and knowledge tests from the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides IFRSHUB_CONFIG env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to YAML catalog file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite catalog database (overrides IFRSHUB_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the db_path config key, then IFRSHUB_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
