package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, path, exists, err := Load(filepath.Join(dir, "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Service.AutoClassifyThreshold != 0.85 {
		t.Fatalf("expected default threshold, got %v", cfg.Service.AutoClassifyThreshold)
	}
	if path == "" {
		t.Fatal("expected resolved path even when file is missing")
	}
}

func TestLoadParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mediabutler.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Training.TrainRatio != 0.70 {
		t.Fatalf("expected parsed train ratio 0.70, got %v", cfg.Training.TrainRatio)
	}
}

func TestValidateRejectsBadThresholdOrdering(t *testing.T) {
	cfg := Default()
	cfg.Service.AutoClassifyThreshold = 0.1
	cfg.Service.SuggestionThreshold = 0.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for inverted thresholds")
	}
}

func TestValidateRejectsBadTrainingRatios(t *testing.T) {
	cfg := Default()
	cfg.Training.TrainRatio = 0.8
	cfg.Training.ValidationRatio = 0.3
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for ratios summing >= 1")
	}
}

func TestValidateRejectsMultiCharSeparator(t *testing.T) {
	cfg := Default()
	cfg.CSV.Separator = ";;"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for multi-character separator")
	}
}
