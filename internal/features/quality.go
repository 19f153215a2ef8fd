package features

import (
	"strings"

	"mediabutler/internal/tokenizer"
)

// QualityFeatures is the quality subpart of to_array().
type QualityFeatures struct {
	ResolutionTier float64
	SourceTier     float64
	HDRFlag        float64
	MultiAudio     float64
	Score          float64
	IsHigh         float64
	IsLow          float64
}

var tierOrdinal = map[tokenizer.QualityTier]float64{
	tokenizer.TierUnknown:   0,
	tokenizer.TierLow:       1,
	tokenizer.TierStandard:  2,
	tokenizer.TierHigh:      3,
	tokenizer.TierUltraHigh: 4,
	tokenizer.TierPremium:   5,
}

func computeQuality(t tokenizer.Tokenization) QualityFeatures {
	var f QualityFeatures
	if t.Quality == nil {
		return f
	}
	q := t.Quality
	f.ResolutionTier = tierOrdinal[q.Tier]
	f.SourceTier = sourceTierOrdinal(q.Source)

	if containsAnyFold(q.Source, "HDR", "DV", "DOLBY") || containsAnyFold(q.VideoCodec, "HDR", "DV", "DOLBY") {
		f.HDRFlag = 1
	}
	if containsAnyFold(q.Source, "MULTI", "DUAL", "TRUEHD", "DTS") {
		f.MultiAudio = 1
	}

	f.Score = qualityScore(q.Tier, q.Source, q.VideoCodec)
	if f.Score >= 75 {
		f.IsHigh = 1
	}
	if f.Score <= 25 {
		f.IsLow = 1
	}
	return f
}

func sourceTierOrdinal(source string) float64 {
	switch {
	case containsAnyFold(source, "BLURAY", "BDRIP"):
		return 4
	case containsAnyFold(source, "WEB"):
		return 3
	case containsAnyFold(source, "HDTV"):
		return 2
	case containsAnyFold(source, "DVD"):
		return 1
	default:
		return 0
	}
}

func qualityScore(tier tokenizer.QualityTier, source, videoCodec string) float64 {
	tierPoints := map[tokenizer.QualityTier]float64{
		tokenizer.TierPremium:   40,
		tokenizer.TierUltraHigh: 35,
		tokenizer.TierHigh:      30,
		tokenizer.TierStandard:  20,
		tokenizer.TierLow:       10,
		tokenizer.TierUnknown:   0,
	}

	var sourcePoints float64
	switch {
	case containsAnyFold(source, "BLURAY", "BDRIP"):
		sourcePoints = 35
	case containsAnyFold(source, "WEB"):
		sourcePoints = 25
	case containsAnyFold(source, "HDTV"):
		sourcePoints = 20
	case containsAnyFold(source, "DVD"):
		sourcePoints = 15
	default:
		sourcePoints = 10
	}

	var codecPoints float64
	switch {
	case containsAnyFold(videoCodec, "HEVC", "H265", "X265"):
		codecPoints = 25
	case containsAnyFold(videoCodec, "AVC", "H264", "X264"):
		codecPoints = 20
	default:
		codecPoints = 10
	}

	return tierPoints[tier] + sourcePoints + codecPoints
}

func containsAnyFold(haystack string, needles ...string) bool {
	if haystack == "" {
		return false
	}
	upper := strings.ToUpper(haystack)
	for _, n := range needles {
		if strings.Contains(upper, n) {
			return true
		}
	}
	return false
}

func (f QualityFeatures) toArray() []float64 {
	return []float64{f.ResolutionTier, f.SourceTier, f.HDRFlag, f.MultiAudio, f.Score, f.IsHigh, f.IsLow}
}

func qualityNames() []string {
	return []string{"quality_resolution_tier", "quality_source_tier", "quality_hdr_flag", "quality_multi_audio_flag", "quality_score", "quality_is_high", "quality_is_low"}
}
