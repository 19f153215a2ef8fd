package main

import (
	"encoding/json"
	"fmt"

	"mediabutler/internal/modelstore"
	"mediabutler/internal/predictor"
)

// labelWeights is the JSON shape mbctl serializes into modelstore.Model's
// opaque Weights blob: one weight vector and bias per label. The
// classification core treats Weights as opaque bytes; this encoding is
// mbctl's own convention for round-tripping a predictor.Model through disk.
type labelWeights struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

func encodePredictorModel(version string, model *predictor.Model) (modelstore.Model, error) {
	entries := make(map[string]labelWeights, len(model.Labels))
	for _, label := range model.Labels {
		entries[label] = labelWeights{Weights: model.Weights[label], Bias: model.Bias[label]}
	}
	blob, err := json.Marshal(entries)
	if err != nil {
		return modelstore.Model{}, fmt.Errorf("encode weights: %w", err)
	}
	return modelstore.Model{
		ArchitectureID: "rulepredictor",
		Version:        version,
		AlgorithmTag:   "rulepredictor-softmax",
		Labels:         model.Labels,
		Weights:        blob,
	}, nil
}

func decodePredictorModel(stored modelstore.Model) (*predictor.Model, error) {
	var entries map[string]labelWeights
	if err := json.Unmarshal(stored.Weights, &entries); err != nil {
		return nil, fmt.Errorf("decode weights: %w", err)
	}
	weights := make(map[string][]float64, len(entries))
	bias := make(map[string]float64, len(entries))
	for label, entry := range entries {
		weights[label] = entry.Weights
		bias[label] = entry.Bias
	}
	return &predictor.Model{Version: stored.Version, Labels: stored.Labels, Weights: weights, Bias: bias}, nil
}
