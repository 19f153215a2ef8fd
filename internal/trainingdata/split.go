package trainingdata

import (
	"math"
	"math/rand"
	"sort"

	"mediabutler/internal/errs"
)

// splitSeed fixes the per-category shuffle RNG so get_split is reproducible
// given the same samples and ratios.
const splitSeed = 1729

// GetSplit stratifies samples by category and partitions each category's
// shuffled members into train/validation/test by ratio; remainder beyond
// train+validation goes to test. Categories with fewer than 3 samples use
// minority handling: training gets ⌈samples·train_ratio⌉, the rest goes to
// test, and validation is left empty for that category.
func GetSplit(samples []TrainingSample, trainRatio, validationRatio float64) (TrainingDataSplit, error) {
	if !(trainRatio > 0 && validationRatio > 0 && trainRatio+validationRatio < 1) {
		return TrainingDataSplit{}, errs.WrapCode(errs.ErrInput, componentStore, "get_split", errs.CodeEmptyInput, "ratios must satisfy 0 < train, validation and train+validation < 1", nil)
	}
	if len(samples) == 0 {
		return TrainingDataSplit{}, errs.WrapCode(errs.ErrData, componentStore, "get_split", errs.CodeEmptyDataset, "no samples to split", nil)
	}

	byCategory := make(map[string][]TrainingSample)
	for _, sample := range samples {
		byCategory[sample.Category] = append(byCategory[sample.Category], sample)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	rng := rand.New(rand.NewSource(splitSeed))
	var result TrainingDataSplit

	for _, category := range categories {
		members := append([]TrainingSample(nil), byCategory[category]...)
		rng.Shuffle(len(members), func(i, j int) { members[i], members[j] = members[j], members[i] })

		if len(members) < 3 {
			trainCount := int(math.Ceil(float64(len(members)) * trainRatio))
			if trainCount > len(members) {
				trainCount = len(members)
			}
			result.Train = append(result.Train, members[:trainCount]...)
			result.Test = append(result.Test, members[trainCount:]...)
			result.PerCategory = append(result.PerCategory, CategorySplit{
				Category: category, TrainCount: trainCount, ValidationCount: 0,
				TestCount: len(members) - trainCount, MinorityHandling: true,
			})
			continue
		}

		trainCount := int(float64(len(members)) * trainRatio)
		validationCount := int(float64(len(members)) * validationRatio)
		if trainCount+validationCount > len(members) {
			validationCount = len(members) - trainCount
		}
		testCount := len(members) - trainCount - validationCount

		result.Train = append(result.Train, members[:trainCount]...)
		result.Validation = append(result.Validation, members[trainCount:trainCount+validationCount]...)
		result.Test = append(result.Test, members[trainCount+validationCount:]...)
		result.PerCategory = append(result.PerCategory, CategorySplit{
			Category: category, TrainCount: trainCount, ValidationCount: validationCount, TestCount: testCount,
		})
	}

	return result, nil
}
