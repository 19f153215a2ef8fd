package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediabutler/internal/evaluator"
	"mediabutler/internal/modelstore"
	"mediabutler/internal/trainingdata"
)

// loadTestCases imports a labeled CSV file and scores every sample with
// service, producing the (expected, predicted, confidence) triples the
// evaluator package operates on.
func loadTestCases(ctx *mbctlContext, dataPath, modelPath string) ([]evaluator.TestCase, error) {
	service, _, _, err := loadPredictionService(ctx, modelPath)
	if err != nil {
		return nil, err
	}

	store := trainingdata.NewStore(ctx.registry, false, true)
	imported := store.ImportCSV(dataPath, trainingdata.CsvImportConfig{HasHeader: true, NormalizeCategory: true})
	if imported.Imported == 0 {
		return nil, fmt.Errorf("no samples imported from %s", dataPath)
	}

	samples := store.Export()
	cases := make([]evaluator.TestCase, 0, len(samples))
	for _, sample := range samples {
		result := service.Predict(sample.Filename)
		cases = append(cases, evaluator.TestCase{
			Filename:   sample.Filename,
			Expected:   sample.Category,
			Predicted:  result.Label,
			Confidence: result.Confidence,
		})
	}
	return cases, nil
}

func newEvaluateCommand(ctx *mbctlContext) *cobra.Command {
	var (
		modelPath   string
		saveMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate <data.csv>",
		Short: "Score a saved model against labeled data and report accuracy metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := loadTestCases(ctx, args[0], modelPath)
			if err != nil {
				return err
			}

			accuracy, err := evaluator.EvaluateAccuracy(cases)
			if err != nil {
				return err
			}
			confusion, err := evaluator.BuildConfusionMatrix(cases)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "accuracy:   %.4f (%d samples)\n", accuracy.Accuracy, accuracy.TotalSamples)
			fmt.Fprintf(out, "macro F1:   %.4f\n", accuracy.MacroF1)
			fmt.Fprintf(out, "weighted F1: %.4f\n\n", accuracy.WeightedF1)
			fmt.Fprintln(out, confusion.String())

			if saveMetrics {
				path := modelPath
				if path == "" {
					path = ctx.cfg.Paths.ModelPath
				}
				stored, err := modelstore.Load(path, nil)
				if err != nil {
					return fmt.Errorf("reload model to save metrics: %w", err)
				}
				if stored.ValidationMetrics == nil {
					stored.ValidationMetrics = make(map[string]float64)
				}
				stored.ValidationMetrics["accuracy"] = accuracy.Accuracy
				stored.ValidationMetrics["macro_f1"] = accuracy.MacroF1
				stored.ValidationMetrics["weighted_f1"] = accuracy.WeightedF1
				if _, err := modelstore.Save(path, stored); err != nil {
					return fmt.Errorf("save validation metrics: %w", err)
				}
				fmt.Fprintf(out, "validation metrics saved to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "Path to a saved model (defaults to the configured model path)")
	cmd.Flags().BoolVar(&saveMetrics, "save-metrics", false, "Persist accuracy/F1 as the model's ValidationMetrics, enabling Load's MinimumAccuracy check")
	return cmd
}
