package predictor

import (
	"sync"
	"sync/atomic"
	"time"
)

// confidenceBands are the fixed histogram buckets performance stats report
// counts for.
var confidenceBands = []string{"0.0-0.5", "0.5-0.6", "0.6-0.7", "0.7-0.8", "0.8-0.9", "0.9-1.0"}

func bandFor(confidence float64) string {
	switch {
	case confidence < 0.5:
		return confidenceBands[0]
	case confidence < 0.6:
		return confidenceBands[1]
	case confidence < 0.7:
		return confidenceBands[2]
	case confidence < 0.8:
		return confidenceBands[3]
	case confidence < 0.9:
		return confidenceBands[4]
	default:
		return confidenceBands[5]
	}
}

// statsTracker accumulates per-counter atomics and a short-critical-section
// histogram, so a reader of Snapshot never observes a torn update.
type statsTracker struct {
	total      atomic.Int64
	successful atomic.Int64
	failed     atomic.Int64
	cacheHits  atomic.Int64

	mu            sync.Mutex
	totalLatency  time.Duration
	latencySample int64
	histogram     map[string]int64
}

func newStatsTracker() *statsTracker {
	return &statsTracker{histogram: make(map[string]int64, len(confidenceBands))}
}

func (s *statsTracker) recordCacheHit() {
	s.total.Add(1)
	s.cacheHits.Add(1)
}

func (s *statsTracker) recordSuccess(latency time.Duration, confidence float64) {
	s.total.Add(1)
	s.successful.Add(1)
	s.mu.Lock()
	s.totalLatency += latency
	s.latencySample++
	s.histogram[bandFor(confidence)]++
	s.mu.Unlock()
}

func (s *statsTracker) recordFailure(latency time.Duration) {
	s.total.Add(1)
	s.failed.Add(1)
	s.mu.Lock()
	s.totalLatency += latency
	s.latencySample++
	s.mu.Unlock()
}

func (s *statsTracker) snapshot() Stats {
	s.mu.Lock()
	avg := time.Duration(0)
	if s.latencySample > 0 {
		avg = s.totalLatency / time.Duration(s.latencySample)
	}
	histogram := make(map[string]int64, len(s.histogram))
	for band, count := range s.histogram {
		histogram[band] = count
	}
	s.mu.Unlock()

	return Stats{
		TotalPredictions:      s.total.Load(),
		SuccessfulPredictions: s.successful.Load(),
		FailedPredictions:     s.failed.Load(),
		CacheHits:             s.cacheHits.Load(),
		AverageLatency:        avg,
		ConfidenceHistogram:   histogram,
	}
}
