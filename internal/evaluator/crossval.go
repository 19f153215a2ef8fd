package evaluator

import (
	"math"
	"math/rand"
	"sort"

	"mediabutler/internal/errs"
)

// crossValidateSeed fixes the fold-shuffle RNG so cross_validate is
// reproducible across runs given the same samples and k.
const crossValidateSeed = 42

// Trainer trains on trainSet and returns testSet with Predicted populated.
// The core specifies the cross-validation contract, not how a model
// converges; callers supply their own training/prediction step (e.g. one
// that fits weights on trainSet's feature vectors and scores testSet with an
// internal/predictor.RulePredictor built from them).
type Trainer func(trainSet, testSet []TestCase) []TestCase

// CrossValidate performs stratified k-fold cross-validation: each class's
// samples are distributed across folds preserving its proportion, folds are
// held out in turn, and per-fold accuracy/precision/recall/F1 are
// aggregated into mean/stddev/CI/coefficient-of-variation and a quality
// band.
func CrossValidate(samples []TestCase, k int, train Trainer) (CrossValidationResults, error) {
	if len(samples) == 0 {
		return CrossValidationResults{}, errs.WrapCode(errs.ErrData, componentAccuracy, "cross_validate", errs.CodeEmptyDataset, "no samples provided", nil)
	}
	if k < 2 {
		return CrossValidationResults{}, errs.WrapCode(errs.ErrInput, componentAccuracy, "cross_validate", errs.CodeEmptyInput, "k must be at least 2", nil)
	}

	byClass := make(map[string][]TestCase)
	for _, s := range samples {
		byClass[s.Expected] = append(byClass[s.Expected], s)
	}

	classes := make([]string, 0, len(byClass))
	for class := range byClass {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	rng := rand.New(rand.NewSource(crossValidateSeed))
	folds := make([][]TestCase, k)
	var singleFoldClasses []string

	for _, class := range classes {
		members := append([]TestCase(nil), byClass[class]...)
		rng.Shuffle(len(members), func(i, j int) { members[i], members[j] = members[j], members[i] })

		if len(members) < k {
			folds[0] = append(folds[0], members...)
			singleFoldClasses = append(singleFoldClasses, class)
			continue
		}
		for i, m := range members {
			fold := i % k
			folds[fold] = append(folds[fold], m)
		}
	}

	results := make([]FoldResult, 0, k)
	var accuracies []float64

	for i := 0; i < k; i++ {
		testSet := folds[i]
		if len(testSet) == 0 {
			continue
		}
		var trainSet []TestCase
		for j := 0; j < k; j++ {
			if j != i {
				trainSet = append(trainSet, folds[j]...)
			}
		}

		predicted := train(trainSet, testSet)
		metrics, err := EvaluateAccuracy(predicted)
		if err != nil {
			continue
		}

		results = append(results, FoldResult{
			Fold: i, Accuracy: metrics.Accuracy,
			Precision: metrics.MacroPrecision, Recall: metrics.MacroRecall, F1: metrics.MacroF1,
		})
		accuracies = append(accuracies, metrics.Accuracy)
	}

	mean, stddev := meanStdDev(accuracies)
	ci := confidenceInterval95(mean, stddev, len(accuracies))
	cv := coefficientOfVariation(mean, stddev)

	return CrossValidationResults{
		K:                      k,
		Folds:                  results,
		MeanAccuracy:           mean,
		StdDevAccuracy:         stddev,
		ConfidenceInterval:     ci,
		CoefficientOfVariation: cv,
		QualityBand:            qualityBandFor(cv),
		SingleFoldClasses:      singleFoldClasses,
	}, nil
}

func meanStdDev(values []float64) (mean, stddev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(len(values))

	var sqDiff float64
	for _, v := range values {
		d := v - mean
		sqDiff += d * d
	}
	stddev = math.Sqrt(sqDiff / float64(len(values)))
	return mean, stddev
}

func confidenceInterval95(mean, stddev float64, n int) [2]float64 {
	if n == 0 {
		return [2]float64{0, 0}
	}
	margin := 1.96 * stddev / math.Sqrt(float64(n))
	return [2]float64{mean - margin, mean + margin}
}

func coefficientOfVariation(mean, stddev float64) float64 {
	if mean == 0 {
		return 0
	}
	return stddev / mean
}

func qualityBandFor(cv float64) QualityBand {
	switch {
	case cv <= 0.02:
		return BandExcellent
	case cv <= 0.05:
		return BandGood
	case cv <= 0.08:
		return BandAverage
	case cv <= 0.12:
		return BandBelowAverage
	default:
		return BandPoor
	}
}
