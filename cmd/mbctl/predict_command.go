package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newPredictCommand(ctx *mbctlContext) *cobra.Command {
	var modelPath string

	cmd := &cobra.Command{
		Use:   "predict [filenames...]",
		Short: "Classify one or more filenames using a saved model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, _, _, err := loadPredictionService(ctx, modelPath)
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"filename", "label", "confidence", "decision"})
			for _, filename := range args {
				result := service.Predict(filename)
				tw.AppendRow(table.Row{result.Filename, result.Label, fmt.Sprintf("%.3f", result.Confidence), result.Decision})
			}
			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "Path to a saved model (defaults to the configured model path)")
	return cmd
}
