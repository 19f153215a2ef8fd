package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediabutler/internal/evaluator"
)

func newCrossvalCommand(ctx *mbctlContext) *cobra.Command {
	var (
		modelPath string
		folds     int
	)

	cmd := &cobra.Command{
		Use:   "crossval <data.csv>",
		Short: "Run stratified k-fold cross-validation of a saved model against labeled data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := loadTestCases(ctx, args[0], modelPath)
			if err != nil {
				return err
			}

			// The loaded model is frozen; each fold re-scores its held-out
			// set with the same predictor rather than fitting a new one,
			// since the core specifies the cross-validation contract, not a
			// training algorithm.
			frozenTrainer := func(trainSet, testSet []evaluator.TestCase) []evaluator.TestCase {
				return testSet
			}

			results, err := evaluator.CrossValidate(cases, folds, frozenTrainer)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "k:                    %d\n", results.K)
			fmt.Fprintf(out, "mean accuracy:        %.4f\n", results.MeanAccuracy)
			fmt.Fprintf(out, "stddev accuracy:      %.4f\n", results.StdDevAccuracy)
			fmt.Fprintf(out, "95%% CI:               [%.4f, %.4f]\n", results.ConfidenceInterval[0], results.ConfidenceInterval[1])
			fmt.Fprintf(out, "coefficient of var.:  %.4f\n", results.CoefficientOfVariation)
			fmt.Fprintf(out, "quality band:         %s\n", results.QualityBand)
			if len(results.SingleFoldClasses) > 0 {
				fmt.Fprintf(out, "single-fold classes:  %v\n", results.SingleFoldClasses)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "Path to a saved model (defaults to the configured model path)")
	cmd.Flags().IntVar(&folds, "folds", 5, "Number of cross-validation folds")
	return cmd
}
