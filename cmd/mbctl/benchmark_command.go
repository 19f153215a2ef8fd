package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mediabutler/internal/evaluator"
)

func newBenchmarkCommand(ctx *mbctlContext) *cobra.Command {
	var (
		modelPath     string
		filenamesFlag string
		warmupCount   int
		predictCount  int
		maxAverageMS  float64
		maxP95MS      float64
		maxP99MS      float64
		minThroughput float64
	)

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Measure latency, throughput, and resource usage of a saved model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, _, _, err := loadPredictionService(ctx, modelPath)
			if err != nil {
				return err
			}

			filenames := strings.Split(filenamesFlag, ",")
			for i, f := range filenames {
				filenames[i] = strings.TrimSpace(f)
			}

			result, err := evaluator.Benchmark(evaluator.BenchmarkConfig{
				WarmupCount:          warmupCount,
				PredictionCount:      predictCount,
				BenchmarkFilenames:   filenames,
				MaxAverageMS:         maxAverageMS,
				MaxP95MS:             maxP95MS,
				MaxP99MS:             maxP99MS,
				MinThroughputPerSec:  minThroughput,
				SampleMemory:         true,
				SampleCPU:            true,
			}, func(filename string) error {
				res := service.Predict(filename)
				return res.Error
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "samples:          %d\n", result.Samples)
			fmt.Fprintf(out, "average latency:  %.3fms\n", result.AverageMS)
			fmt.Fprintf(out, "p95 latency:      %.3fms\n", result.P95MS)
			fmt.Fprintf(out, "p99 latency:      %.3fms\n", result.P99MS)
			fmt.Fprintf(out, "throughput:       %.1f/s\n", result.ThroughputPerSec)
			fmt.Fprintf(out, "peak memory:      %d bytes\n", result.PeakMemoryBytes)
			fmt.Fprintf(out, "passed:           %v\n", result.PassedRequirements)
			for _, v := range result.Violations {
				fmt.Fprintf(out, "  violation: %s\n", v)
			}
			if !result.PassedRequirements {
				return fmt.Errorf("benchmark did not meet requirements")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "Path to a saved model (defaults to the configured model path)")
	cmd.Flags().StringVar(&filenamesFlag, "filenames", "The.Show.S01E01.1080p.WEB-DL.x264-GROUP.mkv", "Comma-separated filenames to cycle through")
	cmd.Flags().IntVar(&warmupCount, "warmup", 20, "Number of unmeasured warmup predictions")
	cmd.Flags().IntVar(&predictCount, "count", 200, "Number of measured predictions")
	cmd.Flags().Float64Var(&maxAverageMS, "max-average-ms", 500, "Maximum acceptable average latency in milliseconds")
	cmd.Flags().Float64Var(&maxP95MS, "max-p95-ms", 1000, "Maximum acceptable p95 latency in milliseconds")
	cmd.Flags().Float64Var(&maxP99MS, "max-p99-ms", 1500, "Maximum acceptable p99 latency in milliseconds")
	cmd.Flags().Float64Var(&minThroughput, "min-throughput", 10, "Minimum acceptable predictions per second")
	return cmd
}
