package features

import (
	"strings"

	"mediabutler/internal/tokenizer"
)

type maturityBand string

const (
	maturityNew             maturityBand = "New"
	maturityDeveloping      maturityBand = "Developing"
	maturityMature          maturityBand = "Mature"
	maturityEstablished     maturityBand = "Established"
	maturityLongRunning     maturityBand = "LongRunning"
	maturityVeryLongRunning maturityBand = "VeryLongRunning"
)

var maturityOrdinal = map[maturityBand]float64{
	maturityNew: 0, maturityDeveloping: 1, maturityMature: 2,
	maturityEstablished: 3, maturityLongRunning: 4, maturityVeryLongRunning: 5,
}

// EpisodeFeatures is the optional episode-traits subpart; present only when
// the tokenization carries an EpisodeInfo.
type EpisodeFeatures struct {
	SeasonNorm        float64
	EpisodeNorm       float64
	MultiPartFlag     float64
	SpecialFlag       float64
	LongRunningFlag   float64
	Maturity          float64
	ExtractionConfidence float64
}

func computeEpisode(t tokenizer.Tokenization) (EpisodeFeatures, bool) {
	if t.Episode == nil || t.Episode.Kind == tokenizer.EpisodeNone {
		return EpisodeFeatures{}, false
	}
	e := t.Episode
	var f EpisodeFeatures

	f.SeasonNorm = clip(float64(e.Season)/20, 0, 1)
	f.EpisodeNorm = clip(float64(e.Episode)/200, 0, 1)

	lowerFilename := strings.ToLower(t.Filename)
	if containsAny(lowerFilename, "pt", "part", "parte") {
		f.MultiPartFlag = 1
	}
	if containsAny(lowerFilename, "pilot", "finale", "special", "ova", "recap", "bonus", "director") {
		f.SpecialFlag = 1
	}
	if e.Episode > 100 {
		f.LongRunningFlag = 1
	}
	f.Maturity = maturityOrdinal[maturityFor(e.Season, e.Episode)]
	f.ExtractionConfidence = extractionConfidence(e.Kind)
	return f, true
}

func maturityFor(season, episode int) maturityBand {
	switch {
	case episode > 500:
		return maturityVeryLongRunning
	case episode > 100:
		return maturityLongRunning
	case season > 10:
		return maturityEstablished
	case season > 5:
		return maturityMature
	case season > 2:
		return maturityDeveloping
	default:
		return maturityNew
	}
}

func extractionConfidence(kind tokenizer.EpisodeKind) float64 {
	switch kind {
	case tokenizer.EpisodeStandard:
		return 0.95
	case tokenizer.EpisodeAlt:
		return 0.90
	case tokenizer.EpisodeVerbose:
		return 0.85
	case tokenizer.EpisodeOnly:
		return 0.70
	case tokenizer.EpisodeDateBased:
		return 0.75
	default:
		return 0
	}
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (f EpisodeFeatures) toArray() []float64 {
	return []float64{f.SeasonNorm, f.EpisodeNorm, f.MultiPartFlag, f.SpecialFlag, f.LongRunningFlag, f.Maturity, f.ExtractionConfidence}
}

func episodeNames() []string {
	return []string{
		"episode_season_norm", "episode_episode_norm", "episode_multi_part_flag",
		"episode_special_flag", "episode_long_running_flag", "episode_maturity", "episode_extraction_confidence",
	}
}
