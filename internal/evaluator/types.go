package evaluator

import "time"

// TestCase is one (filename, expected, predicted, confidence) observation fed
// to evaluate_accuracy, confusion_matrix, cross_validate, and
// analyze_confidence.
type TestCase struct {
	Filename   string
	Expected   string
	Predicted  string
	Confidence float64
}

// ClassMetrics holds one category's precision/recall/F1 and raw counts.
type ClassMetrics struct {
	Label     string
	TP        int
	FP        int
	FN        int
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// AccuracyMetrics is evaluate_accuracy's result.
type AccuracyMetrics struct {
	Accuracy       float64
	PerClass       []ClassMetrics
	MacroPrecision float64
	MacroRecall    float64
	MacroF1        float64
	WeightedPrecision float64
	WeightedRecall    float64
	WeightedF1        float64
	TotalSamples   int
}

// ConfusionMatrix is confusion_matrix's result: Labels gives the row/column
// order, Counts[i][j] is the number of actual-Labels[i] samples predicted as
// Labels[j].
type ConfusionMatrix struct {
	Labels []string
	Counts [][]int
}

// FoldResult is one cross_validate fold's held-out metrics.
type FoldResult struct {
	Fold      int
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// QualityBand classifies cross-validation stability by coefficient of
// variation.
type QualityBand string

const (
	BandExcellent    QualityBand = "Excellent"
	BandGood         QualityBand = "Good"
	BandAverage      QualityBand = "Average"
	BandBelowAverage QualityBand = "BelowAverage"
	BandPoor         QualityBand = "Poor"
)

// CrossValidationResults is cross_validate's result, standardized on this
// single shape.
type CrossValidationResults struct {
	K                   int
	Folds               []FoldResult
	MeanAccuracy        float64
	StdDevAccuracy      float64
	ConfidenceInterval  [2]float64
	CoefficientOfVariation float64
	QualityBand         QualityBand
	SingleFoldClasses   []string // classes with < k members, kept whole in one fold
}

// ConfidenceBucket is one decile bucket of analyze_confidence.
type ConfidenceBucket struct {
	RangeLow     float64
	RangeHigh    float64
	Count        int
	MeanConfidence float64
	Accuracy     float64
}

// CalibrationBias classifies the sign/magnitude of the confidence/accuracy gap.
type CalibrationBias string

const (
	BiasWellCalibrated            CalibrationBias = "WellCalibrated"
	BiasOverConfident             CalibrationBias = "OverConfident"
	BiasUnderConfident            CalibrationBias = "UnderConfident"
	BiasSignificantlyOverConfident  CalibrationBias = "SignificantlyOverConfident"
	BiasSignificantlyUnderConfident CalibrationBias = "SignificantlyUnderConfident"
)

// ConfidenceAnalysis is analyze_confidence's result.
type ConfidenceAnalysis struct {
	Buckets          []ConfidenceBucket
	ECE              float64
	BrierScore       float64
	ReliabilityIndex float64
	Bias             CalibrationBias
}

// BenchmarkConfig parameterizes benchmark.
type BenchmarkConfig struct {
	WarmupCount          int
	PredictionCount      int
	BenchmarkFilenames   []string
	MaxAverageMS         float64 // 0 disables the check
	MaxP95MS             float64
	MaxP99MS             float64
	MinThroughputPerSec  float64
	SampleMemory         bool
	SampleCPU            bool
}

// PerformanceBenchmark is benchmark's result.
type PerformanceBenchmark struct {
	Samples           int
	AverageMS         float64
	MedianMS          float64
	P95MS             float64
	P99MS             float64
	ThroughputPerSec  float64
	TotalElapsed      time.Duration
	PeakMemoryBytes   uint64
	AverageMemoryBytes uint64
	PeakCPUPercent    float64
	AverageCPUPercent float64
	PassedRequirements bool
	Violations        []string
}

// ReadinessBand is generate_quality_report's production-readiness verdict.
type ReadinessBand string

const (
	ReadinessExceeds      ReadinessBand = "ExceedsRequirements"
	ReadinessProduction   ReadinessBand = "ProductionReady"
	ReadinessStaging      ReadinessBand = "StagingReady"
	ReadinessDevelopment  ReadinessBand = "DevelopmentOnly"
	ReadinessNotReady     ReadinessBand = "NotReady"
)

// QualityReportConfig parameterizes generate_quality_report.
type QualityReportConfig struct {
	TestCases       []TestCase
	CrossValidationSamples []TestCase
	CrossValidationK int
	Benchmark       BenchmarkConfig
}

// ModelQualityReport is generate_quality_report's composed result.
type ModelQualityReport struct {
	Accuracy       AccuracyMetrics
	Confusion      ConfusionMatrix
	CrossValidation CrossValidationResults
	Confidence     ConfidenceAnalysis
	Benchmark      PerformanceBenchmark
	QualityScore   float64
	Readiness      ReadinessBand
}
