package trainingdata

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSQLiteStoreRoundTripsSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "training.db")
	store, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}
	defer store.Close()

	samples := []TrainingSample{
		{ID: "a", Filename: "Show.S01E01.mkv", Category: "TV SHOWS", Confidence: 0.9, Source: SourceUserFeedback, CreatedAt: time.Now(), Verified: true},
		{ID: "b", Filename: "Movie.2020.mkv", Category: "MOVIES", Confidence: 0.8, Source: SourceImported, CreatedAt: time.Now()},
	}

	if err := store.Persist(samples); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(loaded))
	}
	if loaded[0].ID != "a" || loaded[0].Category != "TV SHOWS" {
		t.Fatalf("unexpected first sample: %+v", loaded[0])
	}
}

func TestSQLiteStorePersistIsIdempotentByID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "training.db")
	store, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}
	defer store.Close()

	sample := TrainingSample{ID: "a", Filename: "Show.S01E01.mkv", Category: "TV SHOWS", Confidence: 0.5, Source: SourceUserFeedback, CreatedAt: time.Now()}
	if err := store.Persist([]TrainingSample{sample}); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	sample.Confidence = 0.95
	sample.Verified = true
	if err := store.Persist([]TrainingSample{sample}); err != nil {
		t.Fatalf("Persist (update): %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected upsert to keep a single row, got %d", len(loaded))
	}
	if loaded[0].Confidence != 0.95 || !loaded[0].Verified {
		t.Fatalf("expected the update to take effect, got %+v", loaded[0])
	}
}
