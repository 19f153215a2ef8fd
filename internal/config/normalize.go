package config

import "strings"

// normalize fills in blank fields with their defaults, expands Paths.LogDir,
// and lower-cases the logging format and level. It fails only when
// Paths.LogDir cannot be expanded; a genuinely invalid value is caught by
// Validate instead.
func (c *Config) normalize() error {
	def := Default()

	if strings.TrimSpace(c.Paths.ModelPath) == "" {
		c.Paths.ModelPath = def.Paths.ModelPath
	}
	if strings.TrimSpace(c.Paths.TrainingDataPath) == "" {
		c.Paths.TrainingDataPath = def.Paths.TrainingDataPath
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = def.Paths.LogDir
	}
	expanded, err := expandPath(c.Paths.LogDir)
	if err != nil {
		return err
	}
	c.Paths.LogDir = expanded

	if strings.TrimSpace(c.Service.ActiveModelVersion) == "" {
		c.Service.ActiveModelVersion = def.Service.ActiveModelVersion
	}
	if c.Service.MaxClassificationTimeMS <= 0 {
		c.Service.MaxClassificationTimeMS = def.Service.MaxClassificationTimeMS
	}
	if c.Service.MaxAlternativePredictions <= 0 {
		c.Service.MaxAlternativePredictions = def.Service.MaxAlternativePredictions
	}
	if c.Service.MaxBatchSize <= 0 {
		c.Service.MaxBatchSize = def.Service.MaxBatchSize
	}
	if c.Service.RetrainingThreshold <= 0 {
		c.Service.RetrainingThreshold = def.Service.RetrainingThreshold
	}

	if c.Tokenization.MinTokenLength <= 0 {
		c.Tokenization.MinTokenLength = def.Tokenization.MinTokenLength
	}

	if c.Training.MaxIterations <= 0 {
		c.Training.MaxIterations = def.Training.MaxIterations
	}
	if c.Training.LearningRate <= 0 {
		c.Training.LearningRate = def.Training.LearningRate
	}
	if c.Training.MinimumAccuracy <= 0 {
		c.Training.MinimumAccuracy = def.Training.MinimumAccuracy
	}

	if strings.TrimSpace(c.CSV.Separator) == "" {
		c.CSV.Separator = def.CSV.Separator
	}
	if c.CSV.MaxSamples < 0 {
		c.CSV.MaxSamples = 0
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}

	return nil
}
