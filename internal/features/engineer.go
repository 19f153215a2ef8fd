package features

import "mediabutler/internal/tokenizer"

// FeatureVector is the dense numeric projection of one Tokenization. Each
// subpart owns its own slice of the array; ReleaseGroup and Episode are
// optional and, when absent, contribute no slots at all so names and
// numbers always shrink together.
type FeatureVector struct {
	TokenFrequency TokenFrequencyFeatures
	Ngram          NgramFeatures
	Quality        QualityFeatures
	Pattern        PatternFeatures
	Episode        *EpisodeFeatures
	ReleaseGroup   *ReleaseGroupFeatures
}

// Extract computes the full feature vector for a tokenization. It never
// fails: a well-formed Tokenization always has a well-defined projection.
func Extract(t tokenizer.Tokenization) FeatureVector {
	fv := FeatureVector{
		TokenFrequency: computeTokenFrequency(t),
		Ngram:          computeNgrams(t),
		Quality:        computeQuality(t),
		Pattern:        computePattern(t),
	}
	if episode, ok := computeEpisode(t); ok {
		fv.Episode = &episode
	}
	if releaseGroup, ok := computeReleaseGroup(t); ok {
		fv.ReleaseGroup = &releaseGroup
	}
	return fv
}

// ToArray concatenates every present subpart in fixed order:
// [token-freq | n-gram | quality | pattern | episode? | release-group?].
func (fv FeatureVector) ToArray() []float64 {
	out := fv.TokenFrequency.toArray()
	out = append(out, fv.Ngram.toArray()...)
	out = append(out, fv.Quality.toArray()...)
	out = append(out, fv.Pattern.toArray()...)
	if fv.Episode != nil {
		out = append(out, fv.Episode.toArray()...)
	}
	if fv.ReleaseGroup != nil {
		out = append(out, fv.ReleaseGroup.toArray()...)
	}
	return out
}

// Names returns the feature names parallel to ToArray's values.
func (fv FeatureVector) Names() []string {
	out := tokenFrequencyNames()
	out = append(out, ngramNames()...)
	out = append(out, qualityNames()...)
	out = append(out, patternNames()...)
	if fv.Episode != nil {
		out = append(out, episodeNames()...)
	}
	if fv.ReleaseGroup != nil {
		out = append(out, releaseGroupNames()...)
	}
	return out
}
