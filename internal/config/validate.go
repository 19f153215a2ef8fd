package config

import (
	"fmt"
)

// Validate checks invariants the normalized Config must satisfy before the
// core will accept it. Threshold ordering mirrors the decision mapping's
// boundary ordering; ratio constraints mirror the training split contract.
func (c *Config) Validate() error {
	s := c.Service
	if !(s.ManualCategorizationThreshold >= 0 && s.ManualCategorizationThreshold <= 1) {
		return fmt.Errorf("manual_categorization_threshold must be in [0,1]")
	}
	if !(s.SuggestionThreshold >= 0 && s.SuggestionThreshold <= 1) {
		return fmt.Errorf("suggestion_threshold must be in [0,1]")
	}
	if !(s.AutoClassifyThreshold >= 0 && s.AutoClassifyThreshold <= 1) {
		return fmt.Errorf("auto_classify_threshold must be in [0,1]")
	}
	if !(s.ManualCategorizationThreshold <= s.SuggestionThreshold && s.SuggestionThreshold <= s.AutoClassifyThreshold) {
		return fmt.Errorf("thresholds must satisfy manual <= suggestion <= auto_classify")
	}
	if s.MaxAlternativePredictions < 0 {
		return fmt.Errorf("max_alternative_predictions must be non-negative")
	}
	if s.MaxBatchSize <= 0 {
		return fmt.Errorf("max_batch_size must be positive")
	}

	if c.Tokenization.MinTokenLength < 1 {
		return fmt.Errorf("tokenization.min_token_length must be at least 1")
	}

	t := c.Training
	if t.TrainRatio <= 0 || t.ValidationRatio <= 0 {
		return fmt.Errorf("training.train_ratio and training.validation_ratio must be positive")
	}
	if t.TrainRatio+t.ValidationRatio >= 1 {
		return fmt.Errorf("training.train_ratio + training.validation_ratio must be less than 1")
	}
	if t.MinimumAccuracy < 0 || t.MinimumAccuracy > 1 {
		return fmt.Errorf("training.minimum_accuracy must be in [0,1]")
	}

	if len([]rune(c.CSV.Separator)) != 1 {
		return fmt.Errorf("csv.separator must be a single character")
	}
	if c.CSV.MaxSamples < 0 {
		return fmt.Errorf("csv.max_samples must be non-negative")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}

	return nil
}
