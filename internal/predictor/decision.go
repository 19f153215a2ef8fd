package predictor

// Thresholds holds the decision-mapping boundaries. Category-specific
// thresholds from the registry override AutoClassify for that category
// only; SuggestWithAlternatives/RequestManualCategorization/Unreliable
// boundaries are always global.
type Thresholds struct {
	AutoClassify          float64
	SuggestWithAlternatives float64
	ManualCategorization  float64
}

// decide maps confidence to a Decision, given the global thresholds and an
// optional category-specific AutoClassify override (0 means "no override").
func decide(confidence float64, thresholds Thresholds, categoryAutoClassify float64) Decision {
	autoClassify := thresholds.AutoClassify
	if categoryAutoClassify > 0 {
		autoClassify = categoryAutoClassify
	}
	switch {
	case confidence >= autoClassify:
		return DecisionAutoClassify
	case confidence >= thresholds.SuggestWithAlternatives:
		return DecisionSuggestWithAlternatives
	case confidence >= thresholds.ManualCategorization:
		return DecisionRequestManualCategorization
	default:
		return DecisionUnreliable
	}
}
