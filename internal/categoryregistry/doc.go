// Package categoryregistry implements the in-memory canonical-name map,
// alias map, and per-category confidence thresholds consulted by the
// PredictionService (category-specific decision thresholds), the
// TrainingDataStore (category normalization on add and import), and
// cmd/mbctl.
package categoryregistry
