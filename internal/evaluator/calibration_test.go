package evaluator

import "testing"

func TestAnalyzeConfidenceEmptyDataset(t *testing.T) {
	_, err := AnalyzeConfidence(nil)
	if err == nil {
		t.Fatal("expected EmptyDataset error")
	}
}

func TestAnalyzeConfidenceMetricsInRange(t *testing.T) {
	cases := []TestCase{
		{Expected: "A", Predicted: "A", Confidence: 0.95},
		{Expected: "A", Predicted: "A", Confidence: 0.92},
		{Expected: "A", Predicted: "B", Confidence: 0.93},
	}
	analysis, err := AnalyzeConfidence(cases)
	if err != nil {
		t.Fatalf("AnalyzeConfidence: %v", err)
	}
	if analysis.ECE < 0 {
		t.Fatalf("ECE should never be negative, got %v", analysis.ECE)
	}
	if analysis.BrierScore < 0 || analysis.BrierScore > 1 {
		t.Fatalf("brier score out of range: %v", analysis.BrierScore)
	}
}

func TestAnalyzeConfidenceOverconfidentBias(t *testing.T) {
	var cases []TestCase
	for i := 0; i < 10; i++ {
		// High confidence but always wrong: confidence - accuracy gap should
		// classify as (significantly) over-confident.
		cases = append(cases, TestCase{Expected: "A", Predicted: "B", Confidence: 0.95})
	}
	analysis, err := AnalyzeConfidence(cases)
	if err != nil {
		t.Fatalf("AnalyzeConfidence: %v", err)
	}
	if analysis.Bias != BiasSignificantlyOverConfident {
		t.Fatalf("expected SignificantlyOverConfident, got %v", analysis.Bias)
	}
}

func TestBucketIndexForBoundaries(t *testing.T) {
	cases := []struct {
		confidence float64
		want       int
	}{
		{0.0, 0}, {0.49, 0}, {0.5, 1}, {0.59, 1}, {0.6, 2}, {0.89, 4}, {0.9, 5}, {1.0, 5},
	}
	for _, tc := range cases {
		if got := bucketIndexFor(tc.confidence); got != tc.want {
			t.Errorf("bucketIndexFor(%v) = %d, want %d", tc.confidence, got, tc.want)
		}
	}
}
