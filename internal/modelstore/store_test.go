package modelstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	model := sampleModel()

	info, err := Save(path, model)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if info.Checksum == "" {
		t.Fatal("expected a non-empty checksum")
	}

	loaded, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Version != model.Version {
		t.Fatalf("version mismatch: got %q want %q", loaded.Version, model.Version)
	}
}

func TestLoadRejectsIncompatibleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	if err := os.WriteFile(path, []byte("not a model file at all, definitely too short"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path, nil); err == nil {
		t.Fatal("expected IncompatibleFormat error")
	}
}

func TestLoadValidatesExpectedLabelCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	model := sampleModel()
	if _, err := Save(path, model); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_, err := Load(path, &ValidationOptions{ExpectedLabelCount: 5})
	if err == nil {
		t.Fatal("expected ModelValidationFailed for a label-count mismatch")
	}
}

func TestLoadValidatesMaxAge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	model := sampleModel()
	model.CreatedAt = time.Now().Add(-1000 * 24 * time.Hour)
	if _, err := Save(path, model); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_, err := Load(path, &ValidationOptions{MaxModelAgeDays: 30})
	if err == nil {
		t.Fatal("expected ModelValidationFailed for an expired model")
	}
}

func TestLoadValidatesMinimumAccuracy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	model := sampleModel()
	model.ValidationMetrics = map[string]float64{"accuracy": 0.62}
	if _, err := Save(path, model); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := Load(path, &ValidationOptions{MinimumAccuracy: 0.5}); err != nil {
		t.Fatalf("expected accuracy above the minimum to pass, got: %v", err)
	}
	if _, err := Load(path, &ValidationOptions{MinimumAccuracy: 0.9}); err == nil {
		t.Fatal("expected ModelValidationFailed when saved accuracy is below the minimum")
	}
}

func TestSaveLoadRoundTripsAlgorithmAndMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	model := sampleModel()
	model.AlgorithmTag = "rulepredictor-softmax"
	model.Hyperparameters = map[string]float64{"learning_rate": 0.01}
	model.TrainingMetrics = map[string]float64{"loss": 0.12}
	model.ValidationMetrics = map[string]float64{"accuracy": 0.87}

	if _, err := Save(path, model); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.AlgorithmTag != model.AlgorithmTag {
		t.Fatalf("algorithm tag mismatch: got %q want %q", loaded.AlgorithmTag, model.AlgorithmTag)
	}
	if loaded.Hyperparameters["learning_rate"] != 0.01 {
		t.Fatalf("hyperparameters mismatch: %v", loaded.Hyperparameters)
	}
	if loaded.TrainingMetrics["loss"] != 0.12 {
		t.Fatalf("training metrics mismatch: %v", loaded.TrainingMetrics)
	}
	if loaded.ValidationMetrics["accuracy"] != 0.87 {
		t.Fatalf("validation metrics mismatch: %v", loaded.ValidationMetrics)
	}
}

func TestLoadRunsTestPredictions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	if _, err := Save(path, sampleModel()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_, err := Load(path, &ValidationOptions{
		TestFilenames: []string{"bad.mkv"},
		TestPredict:   func(string) error { return errors.New("boom") },
	})
	if err == nil {
		t.Fatal("expected ModelValidationFailed when test prediction fails")
	}
}
