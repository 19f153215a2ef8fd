package predictor

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"mediabutler/internal/categoryregistry"
	"mediabutler/internal/errs"
	"mediabutler/internal/features"
	"mediabutler/internal/logging"
	"mediabutler/internal/tokenizer"
)

const componentService = "prediction_service"

// PredictionService orchestrates Tokenizer → FeatureEngineer → Predictor,
// applies decision thresholds, records stats, and offers a batch entry
// point. It is safe for concurrent use.
type PredictionService struct {
	mu        sync.RWMutex
	state     ServiceState
	predictor Predictor

	registry   *categoryregistry.Registry
	thresholds Thresholds
	maxAlternatives int
	maxBatchSize    int

	cache  *predictionCache
	stats  *statsTracker
	logger *slog.Logger
}

// NewPredictionService constructs a service in the Uninitialized state.
// registry may be nil if category-specific threshold overrides are not
// needed.
func NewPredictionService(registry *categoryregistry.Registry, thresholds Thresholds, maxAlternatives, maxBatchSize, cacheCapacity int, logger *slog.Logger) *PredictionService {
	if maxAlternatives <= 0 {
		maxAlternatives = 3
	}
	if maxBatchSize <= 0 {
		maxBatchSize = 50
	}
	return &PredictionService{
		state:           StateUninitialized,
		registry:        registry,
		thresholds:      thresholds,
		maxAlternatives: maxAlternatives,
		maxBatchSize:    maxBatchSize,
		cache:           newPredictionCache(cacheCapacity),
		stats:           newStatsTracker(),
		logger:          logging.NewComponentLogger(logger, "prediction_service"),
	}
}

// LoadModel transitions Uninitialized → Ready with predictor bound. A
// failure (nil predictor) leaves the service in Uninitialized.
func (s *PredictionService) LoadModel(p Predictor) error {
	if p == nil {
		return errs.WrapCode(errs.ErrModel, componentService, "load_model", errs.CodeModelNotLoaded, "predictor is nil", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.predictor = p
	s.state = StateReady
	s.logger.Info("model loaded",
		logging.String("model_version", p.ModelVersion()),
		logging.String(logging.FieldEventType, "model_loaded"))
	return nil
}

// Unload transitions Ready → Uninitialized, discarding the loaded predictor.
func (s *PredictionService) Unload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.predictor = nil
	s.state = StateUninitialized
}

// State reports the current lifecycle state.
func (s *PredictionService) State() ServiceState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Stats returns a point-in-time snapshot of performance counters.
func (s *PredictionService) Stats() Stats {
	return s.stats.snapshot()
}

func (s *PredictionService) currentPredictor() (Predictor, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateReady || s.predictor == nil {
		return nil, "", false
	}
	return s.predictor, s.predictor.ModelVersion(), true
}

// Predict classifies one filename.
func (s *PredictionService) Predict(filename string) ClassificationResult {
	start := time.Now()

	if strings.TrimSpace(filename) == "" {
		return s.fail(filename, start, errs.WrapCode(errs.ErrInput, componentService, "predict", errs.CodeEmptyInput, "filename is empty", nil))
	}

	p, modelVersion, ready := s.currentPredictor()
	if !ready {
		return s.fail(filename, start, errs.WrapCode(errs.ErrModel, componentService, "predict", errs.CodeModelNotLoaded, "service is uninitialized", nil))
	}

	fingerprint := canonicalFingerprint(filename, modelVersion)
	if cached, ok := s.cache.get(fingerprint); ok {
		cached.Cached = true
		s.stats.recordCacheHit()
		return cached
	}

	tok, err := tokenizer.Tokenize(filename)
	if err != nil {
		return s.fail(filename, start, err)
	}

	fv := features.Extract(tok)

	prediction, err := p.Predict(fv)
	if err != nil {
		return s.fail(filename, start, err)
	}

	alternatives := topK(prediction.Alternatives, s.maxAlternatives)

	categoryOverride := 0.0
	if s.registry != nil {
		if threshold, err := s.registry.Threshold(prediction.Label); err == nil {
			categoryOverride = threshold
		}
	}
	decision := decide(prediction.Confidence, s.thresholds, categoryOverride)

	elapsed := time.Since(start)
	result := ClassificationResult{
		Filename:       filename,
		Label:          prediction.Label,
		Confidence:     prediction.Confidence,
		Alternatives:   alternatives,
		Decision:       decision,
		Cached:         false,
		ModelVersion:   modelVersion,
		ProcessingTime: elapsed,
	}

	s.stats.recordSuccess(elapsed, prediction.Confidence)
	s.cache.put(fingerprint, result)
	return result
}

func (s *PredictionService) fail(filename string, start time.Time, err error) ClassificationResult {
	elapsed := time.Since(start)
	s.stats.recordFailure(elapsed)
	return ClassificationResult{
		Filename:       filename,
		Decision:       DecisionFailed,
		ProcessingTime: elapsed,
		Error:          err,
	}
}

func topK(alternatives []Alternative, k int) []Alternative {
	sorted := append([]Alternative(nil), alternatives...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Confidence != sorted[j].Confidence {
			return sorted[i].Confidence > sorted[j].Confidence
		}
		return sorted[i].Label < sorted[j].Label
	})
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}

// PredictBatch classifies filenames, preserving input order in the result.
// Per-item failures do not abort the batch. Inputs are processed in chunks
// of chunkSize (the service's configured max batch size): chunks run one
// after another and the items of one chunk run concurrently; label selection
// for any one input never depends on scheduling order since the items are
// independent. ctx cancellation is honored between
// chunks; a soft timeout (deadline on ctx) produces a PartiallyCompleted
// result with already-completed items retained.
func (s *PredictionService) PredictBatch(ctx context.Context, filenames []string) BatchClassificationResult {
	start := time.Now()
	results := make([]ClassificationResult, len(filenames))

	chunkSize := s.maxBatchSize
	partially := false

chunkLoop:
	for offset := 0; offset < len(filenames); offset += chunkSize {
		select {
		case <-ctx.Done():
			partially = true
			break chunkLoop
		default:
		}

		end := offset + chunkSize
		if end > len(filenames) {
			end = len(filenames)
		}

		var wg sync.WaitGroup
		for i := offset; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				results[idx] = s.Predict(filenames[idx])
			}(i)
		}
		wg.Wait()
	}

	successCount, failureCount := 0, 0
	for i, r := range results {
		if r.Filename == "" && r.Decision == "" {
			// Not yet processed because of early cancellation; leave as Failed.
			results[i] = ClassificationResult{Filename: filenames[i], Decision: DecisionFailed, Error: errs.New(errs.ErrCancelled, componentService, "predict_batch", "", "cancelled before processing")}
		}
		if results[i].Decision == DecisionFailed {
			failureCount++
		} else {
			successCount++
		}
	}

	return BatchClassificationResult{
		Results:            results,
		SuccessCount:       successCount,
		FailureCount:       failureCount,
		PartiallyCompleted: partially,
		TotalTime:          time.Since(start),
	}
}

// Validate implements filename validation/diagnostics independent of an
// actual prediction: complexity, detected structural patterns, Italian
// content indicators, and short human-readable recommendations.
func (s *PredictionService) Validate(filename string) ValidationResult {
	result := ValidationResult{Filename: filename}

	tok, err := tokenizer.Tokenize(filename)
	if err != nil {
		result.Recommendations = append(result.Recommendations, "filename could not be tokenized: "+errs.Explain(err).Message)
		return result
	}

	fv := features.Extract(tok)
	result.ComplexityScore = fv.Pattern.Complexity

	if tok.Episode != nil && tok.Episode.Kind != tokenizer.EpisodeNone {
		result.DetectedPatterns = append(result.DetectedPatterns, "episode:"+string(tok.Episode.Kind))
	}
	if tok.Quality != nil {
		result.DetectedPatterns = append(result.DetectedPatterns, "quality")
	}
	if tok.ReleaseGroup != "" {
		result.DetectedPatterns = append(result.DetectedPatterns, "release_group")
	}

	result.LanguagePresent = len(tok.LanguageCodes) > 0
	for _, code := range tok.LanguageCodes {
		if code == "ITA" || code == "ITALIAN" {
			result.ItalianKeywordsPresent = true
		}
	}
	if known, ok := italianReleaseGroup(tok.ReleaseGroup); ok {
		result.ItalianReleaseGroup = true
		result.ItalianReleaseGroupName = known
	}

	result.ProcessingConfidence = processingConfidenceHeuristic(tok, fv)
	result.Recommendations = recommendationsFor(tok, fv)
	if len(result.Recommendations) > 5 {
		result.Recommendations = result.Recommendations[:5]
	}
	return result
}

var italianReleaseGroups = map[string]string{
	"UBI":         "UBi",
	"NOVARIP":     "NovaRip",
	"DARKSIDEMUX": "DarkSideMux",
}

func italianReleaseGroup(group string) (string, bool) {
	if group == "" {
		return "", false
	}
	name, ok := italianReleaseGroups[strings.ToUpper(group)]
	return name, ok
}

func processingConfidenceHeuristic(tok tokenizer.Tokenization, fv features.FeatureVector) float64 {
	score := 0.5
	if tok.Episode != nil && tok.Episode.Kind != tokenizer.EpisodeNone {
		score += 0.2
	}
	if tok.Quality != nil {
		score += 0.15
	}
	if len(tok.SeriesTokens) >= 2 {
		score += 0.15
	}
	if score > 1 {
		score = 1
	}
	return score
}

func recommendationsFor(tok tokenizer.Tokenization, fv features.FeatureVector) []string {
	var recs []string
	if len(tok.SeriesTokens) == 0 {
		recs = append(recs, "no series tokens detected; consider manual categorization")
	}
	if tok.Episode == nil || tok.Episode.Kind == tokenizer.EpisodeNone {
		recs = append(recs, "no episode designator found; confirm this is not episodic content")
	}
	if tok.Quality == nil {
		recs = append(recs, "no quality descriptor found; filename may be missing release metadata")
	}
	if tok.ReleaseGroup == "" {
		recs = append(recs, "no release group found")
	}
	if fv.Pattern.Complexity >= 8 {
		recs = append(recs, "filename structure is unusually complex; verify tokenization manually")
	}
	return recs
}
