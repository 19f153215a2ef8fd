package predictor

import (
	"testing"

	"mediabutler/internal/features"
	"mediabutler/internal/tokenizer"
)

func sampleFeatureVector(t *testing.T, filename string) features.FeatureVector {
	t.Helper()
	tok, err := tokenizer.Tokenize(filename)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return features.Extract(tok)
}

func buildModel(t *testing.T, fv features.FeatureVector, labels map[string]float64) *Model {
	t.Helper()
	n := len(fv.ToArray())
	weights := make(map[string][]float64, len(labels))
	bias := make(map[string]float64, len(labels))
	for label, biasValue := range labels {
		weights[label] = make([]float64, n)
		bias[label] = biasValue
	}
	return &Model{Version: "test-1", Labels: keysOf(labels), Weights: weights, Bias: bias}
}

func keysOf(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestPredictFailsWhenNoModelLoaded(t *testing.T) {
	p := NewRulePredictor(nil)
	fv := sampleFeatureVector(t, "Show.S01E01.mkv")
	_, err := p.Predict(fv)
	if err == nil {
		t.Fatal("expected error for nil model")
	}
}

func TestPredictConfidenceInRangeAndAlternativesSorted(t *testing.T) {
	fv := sampleFeatureVector(t, "Breaking.Bad.S01E01.1080p.BluRay.x264-GROUP.mkv")
	model := buildModel(t, fv, map[string]float64{"BREAKING BAD": 5, "OTHER SHOW": 1, "THIRD SHOW": 0.5})
	p := NewRulePredictor(model)

	prediction, err := p.Predict(fv)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if prediction.Confidence < 0 || prediction.Confidence > 1 {
		t.Fatalf("confidence out of range: %v", prediction.Confidence)
	}
	if prediction.Label != "BREAKING BAD" {
		t.Fatalf("expected BREAKING BAD to win with highest bias, got %q", prediction.Label)
	}
	for i := 1; i < len(prediction.Alternatives); i++ {
		if prediction.Alternatives[i].Confidence > prediction.Alternatives[i-1].Confidence {
			t.Fatal("expected alternatives sorted descending by confidence")
		}
	}
}

func TestPredictSchemaMismatch(t *testing.T) {
	fv := sampleFeatureVector(t, "Show.S01E01.mkv")
	model := &Model{
		Version: "v1",
		Labels:  []string{"A"},
		Weights: map[string][]float64{"A": {1, 2, 3}}, // deliberately wrong length
		Bias:    map[string]float64{"A": 0},
	}
	p := NewRulePredictor(model)
	_, err := p.Predict(fv)
	if err == nil {
		t.Fatal("expected schema mismatch error")
	}
}

func TestDecideThresholdBoundaries(t *testing.T) {
	thresholds := Thresholds{AutoClassify: 0.85, SuggestWithAlternatives: 0.50, ManualCategorization: 0.25}
	cases := []struct {
		confidence float64
		want       Decision
	}{
		{0.95, DecisionAutoClassify},
		{0.85, DecisionAutoClassify},
		{0.70, DecisionSuggestWithAlternatives},
		{0.50, DecisionSuggestWithAlternatives},
		{0.30, DecisionRequestManualCategorization},
		{0.25, DecisionRequestManualCategorization},
		{0.10, DecisionUnreliable},
	}
	for _, tc := range cases {
		got := decide(tc.confidence, thresholds, 0)
		if got != tc.want {
			t.Errorf("decide(%v) = %v, want %v", tc.confidence, got, tc.want)
		}
	}
}

func TestDecideCategoryOverride(t *testing.T) {
	thresholds := Thresholds{AutoClassify: 0.85, SuggestWithAlternatives: 0.50, ManualCategorization: 0.25}
	got := decide(0.70, thresholds, 0.65)
	if got != DecisionAutoClassify {
		t.Fatalf("expected category override to lower the AutoClassify bar, got %v", got)
	}
}
