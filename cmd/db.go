package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/ifrshub/internal/catalog"
	"github.com/abhisek/ifrshub/internal/store"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the catalog database",
}

var dbImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Store a catalog as a new revision",
	Long: `Store a catalog in the database as a new revision.

Without --from, the built-in sample content is imported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		keep, _ := cmd.Flags().GetInt("keep")

		lib, source := catalog.Default(), "builtin"
		if from != "" {
			var err error
			if lib, err = catalog.LoadFile(from); err != nil {
				return err
			}
			source = from
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.ImportRepo()
		imp, err := repo.Save(cmd.Context(), lib, source)
		if err != nil {
			return err
		}
		if keep > 0 {
			if err := repo.Prune(cmd.Context(), keep); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported revision %d (%s) from %s\n", imp.Revision, imp.ID, source)
		return nil
	},
}

var dbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored catalog revisions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		imports, err := st.ImportRepo().List(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(imports) == 0 {
			fmt.Fprintln(out, "No catalog revisions stored.")
			return nil
		}

		fmt.Fprintf(out, "%-4s  %-19s  %-9s  %-8s  %-5s  %s\n",
			"Rev", "Imported", "Standards", "Examples", "Tests", "Source")
		fmt.Fprintln(out, strings.Repeat("─", 76))
		for _, imp := range imports {
			fmt.Fprintf(out, "%-4d  %-19s  %-9d  %-8d  %-5d  %s\n",
				imp.Revision,
				imp.ImportedAt.Local().Format("2006-01-02 15:04:05"),
				imp.Counts[catalog.KindStandard],
				imp.Counts[catalog.KindExample],
				imp.Counts[catalog.KindTest],
				imp.Source,
			)
		}
		return nil
	},
}

func init() {
	dbImportCmd.Flags().String("from", "", "YAML catalog file to import")
	dbImportCmd.Flags().Int("keep", 0, "Prune to the N most recent revisions after importing (0 keeps all)")

	dbCmd.AddCommand(dbImportCmd)
	dbCmd.AddCommand(dbListCmd)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
