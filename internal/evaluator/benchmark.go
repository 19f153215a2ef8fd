package evaluator

import (
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"mediabutler/internal/errs"
)

// Predict is the single-filename entry point benchmark exercises; in
// practice this is internal/predictor.PredictionService.Predict, but
// benchmark takes only the function it needs so it never imports predictor
// directly.
type Predict func(filename string) error

// Benchmark runs warmup_count unmeasured predictions followed by
// prediction_count measured ones, cycling through benchmark_filenames, and
// reports latency percentiles, throughput, and resource usage sampled at
// 100ms intervals for the duration of the measured run.
func Benchmark(cfg BenchmarkConfig, predict Predict) (PerformanceBenchmark, error) {
	if len(cfg.BenchmarkFilenames) == 0 {
		return PerformanceBenchmark{}, errs.WrapCode(errs.ErrInput, componentAccuracy, "benchmark", errs.CodeEmptyInput, "benchmark_filenames is empty", nil)
	}
	if cfg.PredictionCount <= 0 {
		return PerformanceBenchmark{}, errs.WrapCode(errs.ErrInput, componentAccuracy, "benchmark", errs.CodeEmptyInput, "prediction_count must be positive", nil)
	}

	for i := 0; i < cfg.WarmupCount; i++ {
		filename := cfg.BenchmarkFilenames[i%len(cfg.BenchmarkFilenames)]
		_ = predict(filename)
	}

	stop := make(chan struct{})
	sampler := newResourceSampler(cfg.SampleMemory, cfg.SampleCPU)
	if cfg.SampleMemory || cfg.SampleCPU {
		go sampler.run(stop)
	}

	timingsMS := make([]float64, 0, cfg.PredictionCount)
	start := time.Now()
	for i := 0; i < cfg.PredictionCount; i++ {
		filename := cfg.BenchmarkFilenames[i%len(cfg.BenchmarkFilenames)]
		callStart := time.Now()
		_ = predict(filename)
		timingsMS = append(timingsMS, float64(time.Since(callStart).Microseconds())/1000.0)
	}
	elapsed := time.Since(start)
	close(stop)

	sort.Float64s(timingsMS)
	avg := average(timingsMS)
	median := percentileNearestRank(timingsMS, 0.50)
	p95 := percentileNearestRank(timingsMS, 0.95)
	p99 := percentileNearestRank(timingsMS, 0.99)
	throughput := float64(cfg.PredictionCount) / elapsed.Seconds()

	peakMem, avgMem, peakCPU, avgCPU := sampler.summarize()

	result := PerformanceBenchmark{
		Samples:            cfg.PredictionCount,
		AverageMS:          avg,
		MedianMS:           median,
		P95MS:              p95,
		P99MS:              p99,
		ThroughputPerSec:   throughput,
		TotalElapsed:       elapsed,
		PeakMemoryBytes:    peakMem,
		AverageMemoryBytes: avgMem,
		PeakCPUPercent:     peakCPU,
		AverageCPUPercent:  avgCPU,
	}

	result.Violations = checkRequirements(cfg, result)
	result.PassedRequirements = len(result.Violations) == 0
	return result, nil
}

func checkRequirements(cfg BenchmarkConfig, result PerformanceBenchmark) []string {
	var violations []string
	if cfg.MaxAverageMS > 0 && result.AverageMS > cfg.MaxAverageMS {
		violations = append(violations, fmt.Sprintf("average latency %.2fms exceeds max %.2fms", result.AverageMS, cfg.MaxAverageMS))
	}
	if cfg.MaxP95MS > 0 && result.P95MS > cfg.MaxP95MS {
		violations = append(violations, fmt.Sprintf("p95 latency %.2fms exceeds max %.2fms", result.P95MS, cfg.MaxP95MS))
	}
	if cfg.MaxP99MS > 0 && result.P99MS > cfg.MaxP99MS {
		violations = append(violations, fmt.Sprintf("p99 latency %.2fms exceeds max %.2fms", result.P99MS, cfg.MaxP99MS))
	}
	if cfg.MinThroughputPerSec > 0 && result.ThroughputPerSec < cfg.MinThroughputPerSec {
		violations = append(violations, fmt.Sprintf("throughput %.2f/s below minimum %.2f/s (peak memory %s)", result.ThroughputPerSec, cfg.MinThroughputPerSec, humanize.Bytes(result.PeakMemoryBytes)))
	}
	return violations
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// percentileNearestRank implements nearest-rank percentile interpolation
// over a pre-sorted slice.
func percentileNearestRank(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(p*float64(len(sorted)) + 0.9999999)
	if rank < 1 {
		rank = 1
	}
	if rank > len(sorted) {
		rank = len(sorted)
	}
	return sorted[rank-1]
}

// resourceSampler polls runtime memory stats at a fixed interval for the
// duration of a measured benchmark run. CPU sampling approximates percent of
// one core busy via GC CPU fraction, since the core has no external
// profiling dependency to draw a true OS-level CPU percentage from.
type resourceSampler struct {
	sampleMemory bool
	sampleCPU    bool
	memSamples   []uint64
	cpuSamples   []float64
}

func newResourceSampler(memory, cpu bool) *resourceSampler {
	return &resourceSampler{sampleMemory: memory, sampleCPU: cpu}
}

func (r *resourceSampler) run(stop <-chan struct{}) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.sample()
		}
	}
}

func (r *resourceSampler) sample() {
	if r.sampleMemory {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		r.memSamples = append(r.memSamples, m.Alloc)
	}
	if r.sampleCPU {
		var stats runtime.MemStats
		runtime.ReadMemStats(&stats)
		r.cpuSamples = append(r.cpuSamples, stats.GCCPUFraction*100)
	}
}

func (r *resourceSampler) summarize() (peakMem, avgMem uint64, peakCPU, avgCPU float64) {
	if len(r.memSamples) > 0 {
		var sum uint64
		for _, v := range r.memSamples {
			sum += v
			if v > peakMem {
				peakMem = v
			}
		}
		avgMem = sum / uint64(len(r.memSamples))
	}
	if len(r.cpuSamples) > 0 {
		var sum float64
		for _, v := range r.cpuSamples {
			sum += v
			if v > peakCPU {
				peakCPU = v
			}
		}
		avgCPU = sum / float64(len(r.cpuSamples))
	}
	return peakMem, avgMem, peakCPU, avgCPU
}
