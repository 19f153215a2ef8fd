package evaluator

import (
	"sort"

	"mediabutler/internal/errs"
)

const componentAccuracy = "evaluator"

// EvaluateAccuracy computes per-class and aggregate precision/recall/F1 over
// labeled test cases. Every ratio is defined as 0 when its denominator is 0;
// nothing here divides by zero.
func EvaluateAccuracy(cases []TestCase) (AccuracyMetrics, error) {
	if len(cases) == 0 {
		return AccuracyMetrics{}, errs.WrapCode(errs.ErrData, componentAccuracy, "evaluate_accuracy", errs.CodeEmptyDataset, "no test cases provided", nil)
	}

	labels := labelUnion(cases)
	tp := make(map[string]int, len(labels))
	fp := make(map[string]int, len(labels))
	fn := make(map[string]int, len(labels))
	support := make(map[string]int, len(labels))

	correct := 0
	for _, c := range cases {
		support[c.Expected]++
		if c.Expected == c.Predicted {
			correct++
			tp[c.Expected]++
		} else {
			fn[c.Expected]++
			fp[c.Predicted]++
		}
	}

	perClass := make([]ClassMetrics, 0, len(labels))
	var sumPrecision, sumRecall, sumF1 float64
	var weightedPrecision, weightedRecall, weightedF1 float64

	for _, label := range labels {
		precision := ratio(tp[label], tp[label]+fp[label])
		recall := ratio(tp[label], tp[label]+fn[label])
		f1 := f1Score(precision, recall)

		perClass = append(perClass, ClassMetrics{
			Label: label, TP: tp[label], FP: fp[label], FN: fn[label],
			Precision: precision, Recall: recall, F1: f1, Support: support[label],
		})

		sumPrecision += precision
		sumRecall += recall
		sumF1 += f1
		weight := float64(support[label])
		weightedPrecision += precision * weight
		weightedRecall += recall * weight
		weightedF1 += f1 * weight
	}

	n := float64(len(labels))
	totalSamples := len(cases)

	return AccuracyMetrics{
		Accuracy:          ratio(correct, totalSamples),
		PerClass:          perClass,
		MacroPrecision:    sumPrecision / n,
		MacroRecall:       sumRecall / n,
		MacroF1:           sumF1 / n,
		WeightedPrecision: weightedPrecision / float64(totalSamples),
		WeightedRecall:    weightedRecall / float64(totalSamples),
		WeightedF1:        weightedF1 / float64(totalSamples),
		TotalSamples:      totalSamples,
	}, nil
}

func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}

func f1Score(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

// labelUnion returns the sorted union of expected and predicted labels,
// giving evaluate_accuracy and confusion_matrix a stable, shared label order.
func labelUnion(cases []TestCase) []string {
	seen := make(map[string]struct{})
	for _, c := range cases {
		seen[c.Expected] = struct{}{}
		seen[c.Predicted] = struct{}{}
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
