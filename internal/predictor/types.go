package predictor

import "time"

// Alternative is one ranked, non-top label from a Prediction.
type Alternative struct {
	Label      string
	Confidence float64
}

// Prediction is the raw output of Predictor.Predict, before decision
// mapping is applied by the service.
type Prediction struct {
	Label        string
	Confidence   float64
	Alternatives []Alternative
}

// Decision is the discrete routing outcome of a prediction.
type Decision string

const (
	DecisionAutoClassify               Decision = "AutoClassify"
	DecisionSuggestWithAlternatives     Decision = "SuggestWithAlternatives"
	DecisionRequestManualCategorization Decision = "RequestManualCategorization"
	DecisionUnreliable                 Decision = "Unreliable"
	DecisionFailed                     Decision = "Failed"
)

// ClassificationResult is PredictionService.Predict's return value.
type ClassificationResult struct {
	Filename        string
	Label           string
	Confidence      float64
	Alternatives    []Alternative
	Decision        Decision
	Cached          bool
	ModelVersion    string
	ProcessingTime  time.Duration
	Error           error
}

// BatchClassificationResult is predict_batch's return value.
type BatchClassificationResult struct {
	Results            []ClassificationResult
	SuccessCount       int
	FailureCount       int
	PartiallyCompleted bool
	TotalTime          time.Duration
}

// ValidationResult is PredictionService.Validate's return value.
type ValidationResult struct {
	Filename              string
	ComplexityScore       float64
	DetectedPatterns      []string
	LanguagePresent       bool
	ItalianReleaseGroup   bool
	ItalianReleaseGroupName string
	ItalianKeywordsPresent bool
	ProcessingConfidence  float64
	Recommendations       []string
}

// ServiceState is the PredictionService lifecycle state.
type ServiceState string

const (
	StateUninitialized ServiceState = "Uninitialized"
	StateReady         ServiceState = "Ready"
)

// Stats is a point-in-time snapshot of PredictionService's performance
// counters; readers never observe a torn update (see internal/predictor's
// atomic-counter stats implementation).
type Stats struct {
	TotalPredictions      int64
	SuccessfulPredictions int64
	FailedPredictions     int64
	CacheHits             int64
	AverageLatency        time.Duration
	ConfidenceHistogram   map[string]int64
}
