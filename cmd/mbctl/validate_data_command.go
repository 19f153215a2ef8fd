package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediabutler/internal/trainingdata"
)

func newValidateDataCommand(ctx *mbctlContext) *cobra.Command {
	var (
		minTotalSamples   int
		minPerCategory    int
		maxImbalanceRatio float64
		minFilenameLength int
		minConfidence     float64
	)

	cmd := &cobra.Command{
		Use:   "validate-data <path>",
		Short: "Validate a CSV training-data file against quality rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := trainingdata.NewStore(ctx.registry, false, true)
			imported := store.ImportCSV(args[0], trainingdata.CsvImportConfig{
				HasHeader:         true,
				NormalizeCategory: true,
			})
			if imported.Imported == 0 && len(imported.Errors) > 0 {
				return fmt.Errorf("no samples could be imported from %s: %s", args[0], imported.Errors[0])
			}

			report := trainingdata.Validate(store.Export(), trainingdata.ValidationRules{
				MinTotalSamples:      minTotalSamples,
				MinPerCategory:       minPerCategory,
				MaxImbalanceRatio:    maxImbalanceRatio,
				MinFilenameLength:    minFilenameLength,
				MaxDuplicateFraction: 0.05,
				MinConfidence:        minConfidence,
				AllowedExtensions:    defaultMediaExtensions,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "status:            %s\n", report.Status)
			fmt.Fprintf(out, "quality score:     %.3f\n", report.QualityScore)
			fmt.Fprintf(out, "training ready:    %v\n", report.IsTrainingReady)
			for _, issue := range report.Issues {
				fmt.Fprintf(out, "  [%s] %s\n", issue.Severity, issue.Message)
			}
			if report.Status == trainingdata.StatusInvalid {
				return fmt.Errorf("training data failed validation")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minTotalSamples, "min-total-samples", 50, "Minimum total sample count")
	cmd.Flags().IntVar(&minPerCategory, "min-per-category", 3, "Minimum samples required per category")
	cmd.Flags().Float64Var(&maxImbalanceRatio, "max-imbalance-ratio", 20, "Maximum allowed largest/smallest category ratio")
	cmd.Flags().IntVar(&minFilenameLength, "min-filename-length", 5, "Minimum filename length")
	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.0, "Minimum acceptable sample confidence")
	return cmd
}
