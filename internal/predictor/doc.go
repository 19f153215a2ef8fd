// Package predictor implements Predictor (the swappable feature-to-label
// scoring interface) and PredictionService (the orchestration layer that
// tokenizes, extracts features, predicts, caches, and applies decision
// thresholds for a single filename or a batch of them).
package predictor
