package evaluator

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// GenerateQualityReport composes accuracy, confusion, cross-validation,
// calibration, and benchmark metrics into one scored, production-readiness
// verdict.
func GenerateQualityReport(cfg QualityReportConfig, train Trainer, predict Predict) (ModelQualityReport, error) {
	accuracy, err := EvaluateAccuracy(cfg.TestCases)
	if err != nil {
		return ModelQualityReport{}, err
	}
	confusion, err := BuildConfusionMatrix(cfg.TestCases)
	if err != nil {
		return ModelQualityReport{}, err
	}
	crossValidation, err := CrossValidate(cfg.CrossValidationSamples, cfg.CrossValidationK, train)
	if err != nil {
		return ModelQualityReport{}, err
	}
	confidence, err := AnalyzeConfidence(cfg.TestCases)
	if err != nil {
		return ModelQualityReport{}, err
	}
	benchmark, err := Benchmark(cfg.Benchmark, predict)
	if err != nil {
		return ModelQualityReport{}, err
	}

	performanceCompliance := 0.0
	if benchmark.PassedRequirements {
		performanceCompliance = 1.0
	}

	score := 0.4*accuracy.Accuracy + 0.3*accuracy.MacroF1 + 0.15*confidence.ReliabilityIndex + 0.15*performanceCompliance

	return ModelQualityReport{
		Accuracy:        accuracy,
		Confusion:       confusion,
		CrossValidation: crossValidation,
		Confidence:      confidence,
		Benchmark:       benchmark,
		QualityScore:    score,
		Readiness:       readinessFor(score),
	}, nil
}

func readinessFor(score float64) ReadinessBand {
	switch {
	case score >= 0.90:
		return ReadinessExceeds
	case score >= 0.80:
		return ReadinessProduction
	case score >= 0.70:
		return ReadinessStaging
	case score >= 0.55:
		return ReadinessDevelopment
	default:
		return ReadinessNotReady
	}
}

// String renders the report's headline numbers as a padded table, the way
// Evaluator surfaces quality reports for operator-facing tooling.
func (r ModelQualityReport) String() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"metric", "value"})
	tw.AppendRow(table.Row{"accuracy", r.Accuracy.Accuracy})
	tw.AppendRow(table.Row{"macro_f1", r.Accuracy.MacroF1})
	tw.AppendRow(table.Row{"reliability_index", r.Confidence.ReliabilityIndex})
	tw.AppendRow(table.Row{"cv_quality_band", r.CrossValidation.QualityBand})
	tw.AppendRow(table.Row{"performance_passed", r.Benchmark.PassedRequirements})
	tw.AppendRow(table.Row{"quality_score", r.QualityScore})
	tw.AppendRow(table.Row{"readiness", r.Readiness})
	return tw.Render()
}
