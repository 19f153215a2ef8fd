package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config encapsulates every recognized configuration option for the
// classification core.
type Config struct {
	Paths        Paths        `toml:"paths"`
	Service      Service      `toml:"service"`
	Tokenization Tokenization `toml:"tokenization"`
	Training     Training     `toml:"training"`
	Features     Features     `toml:"features"`
	CSV          CSV          `toml:"csv"`
	Logging      Logging      `toml:"logging"`
}

// Paths groups filesystem locations the core touches directly: the active
// model file, the training-data store file, and the log directory.
type Paths struct {
	ModelPath        string `toml:"model_path"`
	TrainingDataPath string `toml:"training_data_path"`
	LogDir           string `toml:"log_dir"`
}

// Service groups prediction-pipeline behavior: thresholds, batch limits, and
// retraining triggers.
type Service struct {
	ActiveModelVersion            string  `toml:"active_model_version"`
	AutoClassifyThreshold          float64 `toml:"auto_classify_threshold"`
	SuggestionThreshold            float64 `toml:"suggestion_threshold"`
	ManualCategorizationThreshold  float64 `toml:"manual_categorization_threshold"`
	MaxClassificationTimeMS        int     `toml:"max_classification_time_ms"`
	MaxAlternativePredictions      int     `toml:"max_alternative_predictions"`
	EnableBatchProcessing          bool    `toml:"enable_batch_processing"`
	MaxBatchSize                   int     `toml:"max_batch_size"`
	EnableAutoRetraining           bool    `toml:"enable_auto_retraining"`
	RetrainingThreshold             int     `toml:"retraining_threshold"`
}

// Tokenization groups knobs consulted by the Tokenizer / FeatureEngineer.
type Tokenization struct {
	NormalizeSeparators bool `toml:"normalize_separators"`
	RemoveQuality       bool `toml:"remove_quality"`
	RemoveLanguage      bool `toml:"remove_language"`
	RemoveReleaseTags   bool `toml:"remove_release_tags"`
	MinTokenLength      int  `toml:"min_token_length"`
}

// Training groups split ratios and placeholder training-pipeline knobs. The
// core specifies the pipeline contract, not how the algorithm converges;
// MaxIterations/LearningRate/UseEarlyStopping are carried through for
// Evaluator.CrossValidate's fold-training callback to use as it sees fit.
type Training struct {
	TrainRatio       float64 `toml:"train_ratio"`
	ValidationRatio  float64 `toml:"validation_ratio"`
	MaxIterations    int     `toml:"max_iterations"`
	LearningRate     float64 `toml:"learning_rate"`
	UseEarlyStopping bool    `toml:"use_early_stopping"`
	MinimumAccuracy  float64 `toml:"minimum_accuracy"`
}

// Features toggles optional FeatureVector subparts and the prediction cache.
type Features struct {
	EnableEpisode        bool `toml:"enable_episode"`
	EnableQuality        bool `toml:"enable_quality"`
	EnableExtension      bool `toml:"enable_extension"`
	EnablePredictionCache bool `toml:"enable_prediction_cache"`
}

// CSV groups training-data CSV import behavior.
type CSV struct {
	Separator              string `toml:"separator"`
	NormalizeCategoryNames bool   `toml:"normalize_category_names"`
	SkipDuplicates         bool   `toml:"skip_duplicates"`
	ValidateExtensions     bool   `toml:"validate_extensions"`
	MaxSamples             int    `toml:"max_samples"`
}

// Logging groups the output format/level for internal/logging.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Default returns a Config populated with the classification core's default
// values.
func Default() Config {
	return Config{
		Paths: Paths{
			ModelPath:        "models",
			TrainingDataPath: "training_data.csv",
			LogDir:           "~/.local/share/mediabutler/logs",
		},
		Service: Service{
			ActiveModelVersion:           "1.0.0",
			AutoClassifyThreshold:         0.85,
			SuggestionThreshold:           0.50,
			ManualCategorizationThreshold: 0.25,
			MaxClassificationTimeMS:       500,
			MaxAlternativePredictions:     3,
			EnableBatchProcessing:         true,
			MaxBatchSize:                  50,
			EnableAutoRetraining:          true,
			RetrainingThreshold:           100,
		},
		Tokenization: Tokenization{
			NormalizeSeparators: true,
			RemoveQuality:       true,
			RemoveLanguage:      true,
			RemoveReleaseTags:   true,
			MinTokenLength:      2,
		},
		Training: Training{
			TrainRatio:       0.70,
			ValidationRatio:  0.20,
			MaxIterations:    100,
			LearningRate:     0.10,
			UseEarlyStopping: true,
			MinimumAccuracy:  0.75,
		},
		Features: Features{
			EnableEpisode:         true,
			EnableQuality:         true,
			EnableExtension:       true,
			EnablePredictionCache: true,
		},
		CSV: CSV{
			Separator:              ";",
			NormalizeCategoryNames: true,
			SkipDuplicates:         true,
			ValidateExtensions:     true,
			MaxSamples:             0,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}

// DefaultConfigPath returns the conventional location for a user config file.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/mediabutler/config.toml")
}

// Load locates, parses, and validates a configuration file, returning a
// fully-normalized Config. If path is empty, the conventional default
// location is probed; if nothing exists there either, the built-in defaults
// are normalized, validated and returned (exists=false).
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	return filepath.Abs(filepath.Clean(pathValue))
}

// ExpandPath exposes the module's path-expansion rules (a leading ~ resolved
// to the home directory, then cleaned and made absolute) to other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes an annotated sample configuration file to path.
func CreateSample(path string) error {
	sample := `# MediaButler classification core configuration
# ===============================================

[paths]
model_path = "models"                    # Directory/file holding the active trained model
training_data_path = "training_data.csv" # TrainingDataStore persistence location
log_dir = "~/.local/share/mediabutler/logs"

[service]
active_model_version = "1.0.0"
auto_classify_threshold = 0.85
suggestion_threshold = 0.50
manual_categorization_threshold = 0.25
max_classification_time_ms = 500
max_alternative_predictions = 3
enable_batch_processing = true
max_batch_size = 50
enable_auto_retraining = true
retraining_threshold = 100

[tokenization]
normalize_separators = true
remove_quality = true
remove_language = true
remove_release_tags = true
min_token_length = 2

[training]
train_ratio = 0.70
validation_ratio = 0.20
max_iterations = 100
learning_rate = 0.10
use_early_stopping = true
minimum_accuracy = 0.75

[features]
enable_episode = true
enable_quality = true
enable_extension = true
enable_prediction_cache = true

[csv]
separator = ";"
normalize_category_names = true
skip_duplicates = true
validate_extensions = true
max_samples = 0

[logging]
format = "console" # "console" or "json"
level = "info"
`
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	return os.WriteFile(path, []byte(sample), 0o644)
}
