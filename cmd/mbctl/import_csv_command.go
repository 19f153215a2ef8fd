package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediabutler/internal/trainingdata"
)

// defaultMediaExtensions mirrors the extensions internal/tokenizer
// recognizes, for CSV rows where --validate-extensions is set.
var defaultMediaExtensions = []string{
	"mkv", "mp4", "avi", "m4v", "mov", "wmv", "flv", "webm", "ts", "m2ts",
	"srt", "sub", "ass", "vtt",
}

func newImportCSVCommand(ctx *mbctlContext) *cobra.Command {
	var (
		hasHeader          bool
		normalizeCategory  bool
		skipDuplicates     bool
		validateExtensions bool
		sqlitePath         string
	)

	cmd := &cobra.Command{
		Use:   "import-csv <path>",
		Short: "Import labeled filenames from a semicolon-delimited CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := trainingdata.NewStore(ctx.registry, skipDuplicates, true)
			result := store.ImportCSV(args[0], trainingdata.CsvImportConfig{
				HasHeader:          hasHeader,
				NormalizeCategory:  normalizeCategory,
				SkipDuplicates:     skipDuplicates,
				ValidateExtensions: validateExtensions,
				AllowedExtensions:  defaultMediaExtensions,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rows read:    %d\n", result.RowsRead)
			fmt.Fprintf(out, "imported:     %d\n", result.Imported)
			fmt.Fprintf(out, "skipped:      %d\n", result.Skipped)
			if len(result.Errors) > 0 {
				fmt.Fprintf(out, "errors:       %d\n", len(result.Errors))
				for _, e := range result.Errors {
					fmt.Fprintf(out, "  - %s\n", e)
				}
			}

			if sqlitePath != "" {
				db, err := trainingdata.OpenSQLiteStore(sqlitePath)
				if err != nil {
					return fmt.Errorf("open sqlite store: %w", err)
				}
				defer db.Close()
				if err := db.Persist(store.Export()); err != nil {
					return fmt.Errorf("persist to sqlite store: %w", err)
				}
				fmt.Fprintf(out, "persisted %d samples to %s\n", store.Len(), sqlitePath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&hasHeader, "has-header", true, "Whether the first row is a header")
	cmd.Flags().BoolVar(&normalizeCategory, "normalize-category", true, "Normalize category names against the registry")
	cmd.Flags().BoolVar(&skipDuplicates, "skip-duplicates", true, "Skip filenames already present in the store")
	cmd.Flags().BoolVar(&validateExtensions, "validate-extensions", true, "Reject rows whose filename extension is not recognized")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "Optional SQLite database path to durably persist the imported samples")
	return cmd
}
