package evaluator

import "testing"

// majorityClassTrainer is a deterministic stand-in for a real model: it
// predicts whichever label is most frequent in trainSet for every item in
// testSet, giving cross-validation reproducible fold accuracies to assert on.
func majorityClassTrainer(trainSet, testSet []TestCase) []TestCase {
	counts := make(map[string]int)
	for _, s := range trainSet {
		counts[s.Expected]++
	}
	majority := ""
	best := -1
	for label, count := range counts {
		if count > best {
			best = count
			majority = label
		}
	}
	out := make([]TestCase, len(testSet))
	for i, s := range testSet {
		out[i] = s
		out[i].Predicted = majority
	}
	return out
}

func buildSamples(labelCounts map[string]int) []TestCase {
	var samples []TestCase
	for label, count := range labelCounts {
		for i := 0; i < count; i++ {
			samples = append(samples, TestCase{Filename: label, Expected: label})
		}
	}
	return samples
}

func TestCrossValidateEmptyDataset(t *testing.T) {
	_, err := CrossValidate(nil, 5, majorityClassTrainer)
	if err == nil {
		t.Fatal("expected EmptyDataset error")
	}
}

func TestCrossValidateKTooSmall(t *testing.T) {
	samples := buildSamples(map[string]int{"A": 10})
	_, err := CrossValidate(samples, 1, majorityClassTrainer)
	if err == nil {
		t.Fatal("expected error for k < 2")
	}
}

func TestCrossValidateProducesKFolds(t *testing.T) {
	samples := buildSamples(map[string]int{"A": 20, "B": 20})
	results, err := CrossValidate(samples, 5, majorityClassTrainer)
	if err != nil {
		t.Fatalf("CrossValidate: %v", err)
	}
	if len(results.Folds) != 5 {
		t.Fatalf("expected 5 folds, got %d", len(results.Folds))
	}
	if results.MeanAccuracy < 0 || results.MeanAccuracy > 1 {
		t.Fatalf("mean accuracy out of range: %v", results.MeanAccuracy)
	}
}

func TestCrossValidateHandlesMinorityClass(t *testing.T) {
	samples := buildSamples(map[string]int{"A": 20, "B": 20, "RARE": 2})
	results, err := CrossValidate(samples, 5, majorityClassTrainer)
	if err != nil {
		t.Fatalf("CrossValidate: %v", err)
	}
	found := false
	for _, class := range results.SingleFoldClasses {
		if class == "RARE" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected RARE to be recorded as a single-fold class")
	}
}

func TestQualityBandBoundaries(t *testing.T) {
	cases := []struct {
		cv   float64
		want QualityBand
	}{
		{0.01, BandExcellent},
		{0.02, BandExcellent},
		{0.05, BandGood},
		{0.08, BandAverage},
		{0.12, BandBelowAverage},
		{0.20, BandPoor},
	}
	for _, tc := range cases {
		if got := qualityBandFor(tc.cv); got != tc.want {
			t.Errorf("qualityBandFor(%v) = %v, want %v", tc.cv, got, tc.want)
		}
	}
}

func TestMeanStdDevEmptyInput(t *testing.T) {
	mean, stddev := meanStdDev(nil)
	if mean != 0 || stddev != 0 {
		t.Fatal("expected zero mean/stddev for empty input")
	}
}
