package evaluator

import (
	"math"

	"mediabutler/internal/errs"
)

// confidenceBucketBounds are the fixed deciles analyze_confidence reports
// over: [0.0,0.5), [0.5,0.6), [0.6,0.7), [0.7,0.8), [0.8,0.9), [0.9,1.0].
var confidenceBucketBounds = [][2]float64{
	{0.0, 0.5}, {0.5, 0.6}, {0.6, 0.7}, {0.7, 0.8}, {0.8, 0.9}, {0.9, 1.0},
}

func bucketIndexFor(confidence float64) int {
	for i := len(confidenceBucketBounds) - 1; i >= 0; i-- {
		if confidence >= confidenceBucketBounds[i][0] {
			return i
		}
	}
	return 0
}

// AnalyzeConfidence partitions predictions into fixed confidence deciles and
// reports per-bucket calibration, Expected Calibration Error, Brier score,
// reliability index, and an overall bias classification.
func AnalyzeConfidence(cases []TestCase) (ConfidenceAnalysis, error) {
	if len(cases) == 0 {
		return ConfidenceAnalysis{}, errs.WrapCode(errs.ErrData, componentAccuracy, "analyze_confidence", errs.CodeEmptyDataset, "no test cases provided", nil)
	}

	buckets := make([]ConfidenceBucket, len(confidenceBucketBounds))
	for i, bounds := range confidenceBucketBounds {
		buckets[i] = ConfidenceBucket{RangeLow: bounds[0], RangeHigh: bounds[1]}
	}

	counts := make([]int, len(buckets))
	correctCounts := make([]int, len(buckets))
	confidenceSums := make([]float64, len(buckets))

	var brierSum float64
	for _, c := range cases {
		idx := bucketIndexFor(c.Confidence)
		counts[idx]++
		confidenceSums[idx] += c.Confidence
		correct := 0.0
		if c.Expected == c.Predicted {
			correct = 1.0
			correctCounts[idx]++
		}
		diff := c.Confidence - correct
		brierSum += diff * diff
	}

	n := float64(len(cases))
	var ece float64
	var gapSum float64
	for i := range buckets {
		if counts[i] == 0 {
			continue
		}
		meanConf := confidenceSums[i] / float64(counts[i])
		acc := float64(correctCounts[i]) / float64(counts[i])
		buckets[i].Count = counts[i]
		buckets[i].MeanConfidence = meanConf
		buckets[i].Accuracy = acc

		ece += (float64(counts[i]) / n) * math.Abs(meanConf-acc)
		gapSum += (meanConf - acc) * float64(counts[i])
	}

	brier := brierSum / n
	reliability := 1 - ece
	meanGap := gapSum / n

	return ConfidenceAnalysis{
		Buckets:          buckets,
		ECE:              ece,
		BrierScore:       brier,
		ReliabilityIndex: reliability,
		Bias:             biasFor(ece, meanGap),
	}, nil
}

func biasFor(ece, meanGap float64) CalibrationBias {
	switch {
	case math.Abs(meanGap) > 0.15:
		if meanGap > 0 {
			return BiasSignificantlyOverConfident
		}
		return BiasSignificantlyUnderConfident
	case meanGap > 0.05:
		return BiasOverConfident
	case meanGap < -0.05:
		return BiasUnderConfident
	case ece <= 0.05:
		return BiasWellCalibrated
	default:
		return BiasWellCalibrated
	}
}
