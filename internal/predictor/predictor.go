package predictor

import (
	"math"
	"sort"

	"mediabutler/internal/errs"
	"mediabutler/internal/features"
)

const componentPredictor = "predictor"

// Predictor maps an aligned FeatureVector to a calibrated Prediction. The
// interface is intentionally small so both a rule-based implementation and
// a learned one can satisfy it; PredictionService depends only on this.
type Predictor interface {
	Predict(fv features.FeatureVector) (Prediction, error)
	Labels() []string
	ModelVersion() string
}

// Model is the minimal immutable artifact a Predictor scores against: a
// label vocabulary and an opaque per-label weight row aligned with
// FeatureVector.ToArray()'s fixed order. Once constructed a Model is never
// mutated and is safe to share across threads.
type Model struct {
	Version string
	Labels  []string
	Weights map[string][]float64 // label -> weight row, len == feature count
	Bias    map[string]float64
}

// RulePredictor is a deterministic, dot-product scorer: softmax over
// per-label (weights·features + bias). It stands in for a trained model
// while satisfying the same interface a learned implementation would.
type RulePredictor struct {
	model *Model
}

// NewRulePredictor constructs a RulePredictor bound to model. model must not
// be nil; a nil model means "no model loaded" at the service layer, not
// here.
func NewRulePredictor(model *Model) *RulePredictor {
	return &RulePredictor{model: model}
}

func (p *RulePredictor) Labels() []string {
	if p.model == nil {
		return nil
	}
	return append([]string(nil), p.model.Labels...)
}

func (p *RulePredictor) ModelVersion() string {
	if p.model == nil {
		return ""
	}
	return p.model.Version
}

type labelScore struct {
	label string
	raw   float64
	conf  float64
}

// Predict scores fv against every label in the model's vocabulary and
// returns a softmax-normalized Prediction. Ties within 1e-6 between the top
// two labels are broken in favor of the lexicographically-first canonical
// name, keeping selection deterministic regardless of map iteration order.
func (p *RulePredictor) Predict(fv features.FeatureVector) (Prediction, error) {
	if p.model == nil {
		return Prediction{}, errs.WrapCode(errs.ErrModel, componentPredictor, "predict", errs.CodeModelNotLoaded, "no model loaded", nil)
	}
	array := fv.ToArray()

	rows := make([]labelScore, 0, len(p.model.Labels))
	for _, label := range p.model.Labels {
		weights, ok := p.model.Weights[label]
		if !ok || len(weights) != len(array) {
			return Prediction{}, errs.WrapCode(errs.ErrSchema, componentPredictor, "predict", errs.CodeSchemaMismatch,
				"feature vector length does not match model weight row for label "+label, nil)
		}
		raw := p.model.Bias[label]
		for i, w := range weights {
			raw += w * array[i]
		}
		rows = append(rows, labelScore{label: label, raw: raw})
	}
	if len(rows) == 0 {
		return Prediction{}, errs.WrapCode(errs.ErrModel, componentPredictor, "predict", errs.CodeInferenceFailed, "model has no labels", nil)
	}

	applySoftmax(rows)

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if diff := a.conf - b.conf; diff > 1e-6 || diff < -1e-6 {
			return a.conf > b.conf
		}
		return a.label < b.label
	})

	alternatives := make([]Alternative, 0, len(rows)-1)
	for _, r := range rows[1:] {
		alternatives = append(alternatives, Alternative{Label: r.label, Confidence: r.conf})
	}

	return Prediction{
		Label:        rows[0].label,
		Confidence:   rows[0].conf,
		Alternatives: alternatives,
	}, nil
}

// applySoftmax fills in rows[i].conf with the softmax-normalized
// probability derived from rows[i].raw, in place.
func applySoftmax(rows []labelScore) {
	maxVal := rows[0].raw
	for _, r := range rows {
		if r.raw > maxVal {
			maxVal = r.raw
		}
	}
	sum := 0.0
	exps := make([]float64, len(rows))
	for i, r := range rows {
		e := math.Exp(r.raw - maxVal)
		exps[i] = e
		sum += e
	}
	for i := range rows {
		conf := 0.0
		if sum > 0 {
			conf = exps[i] / sum
		}
		rows[i].conf = clampConfidence(conf)
	}
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
