package modelstore

import "time"

// Model is the in-memory representation Save/Load round-trip.
type Model struct {
	ArchitectureID    string
	Version           string
	AlgorithmTag      string
	Hyperparameters   map[string]float64
	CreatedAt         time.Time
	Metadata          map[string]string
	Labels            []string
	Weights           []byte
	TrainingMetrics   map[string]float64
	ValidationMetrics map[string]float64
}

// ModelPersistenceInfo is Save's result.
type ModelPersistenceInfo struct {
	Path     string
	Size     int64
	Metadata map[string]string
	Checksum string
	Version  string
}

// ValidationOptions parameterizes Load's optional post-load validation.
type ValidationOptions struct {
	ExpectedLabelCount int // 0 disables the schema-compatibility check
	TestFilenames      []string
	TestPredict        func(filename string) error
	MaxModelAgeDays    int // 0 disables the age check
	MinimumAccuracy    float64 // 0 disables the accuracy check
}
