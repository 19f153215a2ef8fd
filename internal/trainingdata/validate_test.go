package trainingdata

import "testing"

func TestValidatePassesCleanDataset(t *testing.T) {
	samples := []TrainingSample{
		{Filename: "breaking.bad.s01e01.mkv", Category: "BREAKING BAD", Confidence: 0.9},
		{Filename: "breaking.bad.s01e02.mkv", Category: "BREAKING BAD", Confidence: 0.9},
		{Filename: "breaking.bad.s01e03.mkv", Category: "BREAKING BAD", Confidence: 0.9},
	}
	rules := ValidationRules{MinTotalSamples: 1, MinPerCategory: 1}
	report := Validate(samples, rules)
	if report.Status != StatusValid {
		t.Fatalf("expected Valid status, got %v (issues: %v)", report.Status, report.Issues)
	}
	if !report.IsTrainingReady {
		t.Fatalf("expected is_training_ready, quality score %v", report.QualityScore)
	}
}

func TestValidateFlagsBelowMinimumTotal(t *testing.T) {
	samples := []TrainingSample{{Filename: "a.mkv", Category: "A"}}
	report := Validate(samples, ValidationRules{MinTotalSamples: 100})
	if report.Status != StatusInvalid {
		t.Fatal("expected Invalid status when below minimum total samples")
	}
}

func TestValidateFlagsForbiddenSubstring(t *testing.T) {
	samples := []TrainingSample{{Filename: "malware.mkv", Category: "A"}}
	report := Validate(samples, ValidationRules{ForbiddenSubstrings: []string{"malware"}})
	foundError := false
	for _, issue := range report.Issues {
		if issue.Severity == SeverityError {
			foundError = true
		}
	}
	if !foundError {
		t.Fatal("expected an Error-severity issue for a forbidden substring")
	}
}

func TestValidateFlagsImbalance(t *testing.T) {
	samples := buildTrainingSamples(map[string]int{"A": 100, "B": 1})
	report := Validate(samples, ValidationRules{MaxImbalanceRatio: 2.0})
	found := false
	for _, issue := range report.Issues {
		if issue.Severity == SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an imbalance warning")
	}
}

func TestValidateDuplicateFraction(t *testing.T) {
	samples := []TrainingSample{
		{Filename: "a.mkv", Category: "A"},
		{Filename: "a.mkv", Category: "A"},
		{Filename: "b.mkv", Category: "A"},
	}
	report := Validate(samples, ValidationRules{MaxDuplicateFraction: 0.1})
	foundError := false
	for _, issue := range report.Issues {
		if issue.Severity == SeverityError {
			foundError = true
		}
	}
	if !foundError {
		t.Fatal("expected a duplicate-fraction error")
	}
}

func TestQualityScoreNeverNegativeOrAboveOne(t *testing.T) {
	issues := []ValidationIssue{
		{Severity: SeverityCritical}, {Severity: SeverityCritical}, {Severity: SeverityCritical},
	}
	score := qualityScoreFor(issues)
	if score < 0 || score > 1 {
		t.Fatalf("quality score out of range: %v", score)
	}
}
