package evaluator

import "testing"

func TestGenerateQualityReportComposesScore(t *testing.T) {
	testCases := []TestCase{
		{Expected: "A", Predicted: "A", Confidence: 0.9},
		{Expected: "A", Predicted: "A", Confidence: 0.88},
		{Expected: "B", Predicted: "B", Confidence: 0.91},
		{Expected: "B", Predicted: "B", Confidence: 0.85},
	}
	cvSamples := buildSamples(map[string]int{"A": 10, "B": 10})

	cfg := QualityReportConfig{
		TestCases:              testCases,
		CrossValidationSamples: cvSamples,
		CrossValidationK:       5,
		Benchmark: BenchmarkConfig{
			PredictionCount:    5,
			BenchmarkFilenames: []string{"a.mkv"},
		},
	}

	report, err := GenerateQualityReport(cfg, majorityClassTrainer, func(string) error { return nil })
	if err != nil {
		t.Fatalf("GenerateQualityReport: %v", err)
	}
	if report.QualityScore < 0 || report.QualityScore > 1 {
		t.Fatalf("quality score out of range: %v", report.QualityScore)
	}
	if report.Readiness == "" {
		t.Fatal("expected a non-empty readiness band")
	}
}

func TestReadinessBandBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  ReadinessBand
	}{
		{0.95, ReadinessExceeds},
		{0.90, ReadinessExceeds},
		{0.85, ReadinessProduction},
		{0.80, ReadinessProduction},
		{0.75, ReadinessStaging},
		{0.70, ReadinessStaging},
		{0.60, ReadinessDevelopment},
		{0.55, ReadinessDevelopment},
		{0.40, ReadinessNotReady},
	}
	for _, tc := range cases {
		if got := readinessFor(tc.score); got != tc.want {
			t.Errorf("readinessFor(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestGenerateQualityReportPropagatesEmptyDatasetError(t *testing.T) {
	cfg := QualityReportConfig{
		CrossValidationSamples: buildSamples(map[string]int{"A": 10}),
		CrossValidationK:       5,
		Benchmark:              BenchmarkConfig{PredictionCount: 1, BenchmarkFilenames: []string{"a.mkv"}},
	}
	_, err := GenerateQualityReport(cfg, majorityClassTrainer, func(string) error { return nil })
	if err == nil {
		t.Fatal("expected error when TestCases is empty")
	}
}
