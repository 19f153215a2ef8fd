package trainingdata

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"mediabutler/internal/categoryregistry"
	"mediabutler/internal/errs"
)

const componentStore = "trainingdata"

// Store holds labeled samples in memory, guarded by a single read/write
// mutex, following the same read-mostly-under-RWMutex shape as
// categoryregistry.Registry.
type Store struct {
	mu              sync.RWMutex
	samples         []TrainingSample
	registry        *categoryregistry.Registry
	skipDuplicates  bool
	autoRegister    bool
	now             func() time.Time
}

// NewStore constructs an empty Store. registry normalizes categories on add;
// skipDuplicates controls whether a case-insensitive filename collision is
// silently dropped instead of appended; autoRegister allows add_sample to
// accept a category the registry has not seen yet (registering it as Other).
func NewStore(registry *categoryregistry.Registry, skipDuplicates, autoRegister bool) *Store {
	return &Store{registry: registry, skipDuplicates: skipDuplicates, autoRegister: autoRegister, now: time.Now}
}

// AddSample normalizes category via the registry and appends a new sample.
// Empty filename/category are rejected; an unknown category is rejected
// unless autoRegister is set, in which case it's registered as type Other.
func (s *Store) AddSample(filename, category string, confidence float64, source Source) error {
	_, err := s.addSample(filename, category, confidence, source, s.skipDuplicates)
	return err
}

// addSample is AddSample's implementation, parameterized on the duplicate
// policy so ImportCSV can apply its own config-level override without
// mutating shared store state. added is false when the sample was a
// duplicate silently dropped under skipDuplicates.
func (s *Store) addSample(filename, category string, confidence float64, source Source, skipDuplicates bool) (added bool, err error) {
	if strings.TrimSpace(filename) == "" {
		return false, errs.WrapCode(errs.ErrInput, componentStore, "add_sample", errs.CodeEmptyInput, "filename is empty", nil)
	}
	if strings.TrimSpace(category) == "" {
		return false, errs.WrapCode(errs.ErrInput, componentStore, "add_sample", errs.CodeEmptyInput, "category is empty", nil)
	}

	canonical, err := categoryregistry.Normalize(category)
	if err != nil {
		return false, errs.Wrap(errs.ErrInput, componentStore, "add_sample", "category normalization failed", err)
	}

	if s.registry != nil && !s.registry.Exists(canonical) {
		if !s.autoRegister {
			return false, errs.WrapCode(errs.ErrRegistry, componentStore, "add_sample", errs.CodeUnknownCategory, "category "+canonical+" is not registered", nil)
		}
		_ = s.registry.Register(categoryregistry.CategoryDefinition{
			CanonicalName: canonical, DisplayName: canonical, Type: categoryregistry.TypeOther, Active: true,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if skipDuplicates {
		lower := strings.ToLower(filename)
		for _, existing := range s.samples {
			if strings.ToLower(existing.Filename) == lower {
				return false, nil
			}
		}
	}

	s.samples = append(s.samples, TrainingSample{
		ID:         uuid.NewString(),
		Filename:   filename,
		Category:   canonical,
		Confidence: clamp01(confidence),
		Source:     source,
		CreatedAt:  s.now(),
	})
	return true, nil
}

// Samples returns a defensive copy of every stored sample.
func (s *Store) Samples() []TrainingSample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]TrainingSample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Len reports the number of stored samples.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.samples)
}

// Export returns samples ordered deterministically by created-at ascending,
// then filename. It only returns them; it writes no file.
func (s *Store) Export() []TrainingSample {
	out := s.Samples()
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Filename < out[j].Filename
	})
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
