package trainingdata

import "strings"

var severityBudgetWeight = map[IssueSeverity]float64{
	SeverityInfo:     1,
	SeverityWarning:  3,
	SeverityError:    8,
	SeverityCritical: 20,
}

// severityBudget is the denominator the quality score's weighted issue sum
// is measured against; a report with nothing worse than two warnings
// (weighted sum 6, score 0.85) still clears the 0.8 is_training_ready bar.
const severityBudget = 40.0

// Validate enforces ValidationRules over samples and reports a severity-
// ranked issue list, a quality score in [0,1], and an is_training_ready
// verdict.
func Validate(samples []TrainingSample, rules ValidationRules) TrainingDataValidationReport {
	var issues []ValidationIssue

	if len(samples) < rules.MinTotalSamples {
		issues = append(issues, ValidationIssue{SeverityCritical, "fewer than the minimum required total samples"})
	}

	counts := make(map[string]int)
	for _, s := range samples {
		counts[s.Category]++
	}
	for category, count := range counts {
		if count < rules.MinPerCategory {
			issues = append(issues, ValidationIssue{SeverityError, "category " + category + " has fewer than the minimum required samples"})
		}
	}

	if rules.MaxImbalanceRatio > 0 && len(counts) > 0 {
		minCount, maxCount := -1, 0
		for _, count := range counts {
			if minCount == -1 || count < minCount {
				minCount = count
			}
			if count > maxCount {
				maxCount = count
			}
		}
		if minCount > 0 {
			ratio := float64(maxCount) / float64(minCount)
			if ratio > rules.MaxImbalanceRatio {
				issues = append(issues, ValidationIssue{SeverityWarning, "category imbalance ratio exceeds the configured maximum"})
			}
		}
	}

	seenFilenames := make(map[string]int)
	for _, s := range samples {
		if rules.MinFilenameLength > 0 && len(s.Filename) < rules.MinFilenameLength {
			issues = append(issues, ValidationIssue{SeverityWarning, "filename shorter than the minimum length: " + s.Filename})
		}
		if rules.MinConfidence > 0 && s.Confidence < rules.MinConfidence {
			issues = append(issues, ValidationIssue{SeverityInfo, "sample confidence below minimum: " + s.Filename})
		}
		if len(rules.AllowedExtensions) > 0 && !hasAllowedExtension(s.Filename, rules.AllowedExtensions) {
			issues = append(issues, ValidationIssue{SeverityWarning, "filename extension not in allowed set: " + s.Filename})
		}
		for _, forbidden := range rules.ForbiddenSubstrings {
			if forbidden != "" && strings.Contains(strings.ToLower(s.Filename), strings.ToLower(forbidden)) {
				issues = append(issues, ValidationIssue{SeverityError, "filename contains forbidden substring: " + s.Filename})
			}
		}
		seenFilenames[strings.ToLower(s.Filename)]++
	}

	if rules.MaxDuplicateFraction > 0 && len(samples) > 0 {
		duplicates := 0
		for _, count := range seenFilenames {
			if count > 1 {
				duplicates += count - 1
			}
		}
		fraction := float64(duplicates) / float64(len(samples))
		if fraction > rules.MaxDuplicateFraction {
			issues = append(issues, ValidationIssue{SeverityError, "duplicate filename fraction exceeds the configured maximum"})
		}
	}

	score := qualityScoreFor(issues)
	status := StatusValid
	hasBlocking := false
	for _, issue := range issues {
		if issue.Severity == SeverityError || issue.Severity == SeverityCritical {
			hasBlocking = true
		}
	}
	if hasBlocking {
		status = StatusInvalid
	}

	return TrainingDataValidationReport{
		Status:          status,
		Issues:          issues,
		QualityScore:    score,
		IsTrainingReady: status == StatusValid && score >= 0.8,
	}
}

func qualityScoreFor(issues []ValidationIssue) float64 {
	var weighted float64
	for _, issue := range issues {
		weighted += severityBudgetWeight[issue.Severity]
	}
	score := 1 - weighted/severityBudget
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func hasAllowedExtension(filename string, allowed []string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range allowed {
		if strings.HasSuffix(lower, "."+strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
