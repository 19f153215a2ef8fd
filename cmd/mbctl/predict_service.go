package main

import (
	"fmt"

	"mediabutler/internal/modelstore"
	"mediabutler/internal/predictor"
)

// loadPredictionService loads a saved model from path and wires it into a
// ready PredictionService using ctx's registry, thresholds and logger. It is
// shared by every subcommand that scores filenames against a trained model.
func loadPredictionService(ctx *mbctlContext, path string) (*predictor.PredictionService, *predictor.Model, modelstore.Model, error) {
	if path == "" {
		path = ctx.cfg.Paths.ModelPath
	}
	stored, err := modelstore.Load(path, nil)
	if err != nil {
		return nil, nil, modelstore.Model{}, fmt.Errorf("load model: %w", err)
	}
	model, err := decodePredictorModel(stored)
	if err != nil {
		return nil, nil, modelstore.Model{}, err
	}

	service := predictor.NewPredictionService(ctx.registry, predictor.Thresholds{
		AutoClassify:            ctx.cfg.Service.AutoClassifyThreshold,
		SuggestWithAlternatives: ctx.cfg.Service.SuggestionThreshold,
		ManualCategorization:    ctx.cfg.Service.ManualCategorizationThreshold,
	}, ctx.cfg.Service.MaxAlternativePredictions, ctx.cfg.Service.MaxBatchSize, 1000, ctx.logger)

	if err := service.LoadModel(predictor.NewRulePredictor(model)); err != nil {
		return nil, nil, modelstore.Model{}, fmt.Errorf("load predictor: %w", err)
	}
	return service, model, stored, nil
}
