package features

import (
	"strconv"
	"strings"
	"unicode"

	"mediabutler/internal/tokenizer"
)

type patternType string

const (
	patternSimple         patternType = "Simple"
	patternTVShowBasic    patternType = "TVShowBasic"
	patternTVShowComplete patternType = "TVShowComplete"
	patternMovie          patternType = "Movie"
	patternComplex        patternType = "Complex"
	patternUnknown        patternType = "Unknown"
)

var patternOrdinal = map[patternType]float64{
	patternSimple: 0, patternTVShowBasic: 1, patternTVShowComplete: 2,
	patternMovie: 3, patternComplex: 4, patternUnknown: 5,
}

type lengthCategory string

const (
	lengthShort    lengthCategory = "Short"
	lengthMedium   lengthCategory = "Medium"
	lengthLong     lengthCategory = "Long"
	lengthVeryLong lengthCategory = "VeryLong"
)

var lengthOrdinal = map[lengthCategory]float64{lengthShort: 0, lengthMedium: 1, lengthLong: 2, lengthVeryLong: 3}

const patternConfidenceSlots = 5

// PatternFeatures is the filename-level structural-pattern subpart.
type PatternFeatures struct {
	Type               float64
	Complexity         float64
	SeparatorCount     float64
	AlphaNumRatio      float64
	HasYear            float64
	HasEpisode         float64
	HasQuality         float64
	HasLanguage        float64
	HasReleaseGroup    float64
	LengthCategory     float64
	SubPatternConfidence [patternConfidenceSlots]float64
}

func computePattern(t tokenizer.Tokenization) PatternFeatures {
	var f PatternFeatures

	hasEpisode := t.Episode != nil && t.Episode.Kind != tokenizer.EpisodeNone
	hasQuality := t.Quality != nil
	hasLanguage := len(t.LanguageCodes) > 0
	hasReleaseGroup := t.ReleaseGroup != ""
	hasYear := hasYearPattern(t.Filename)

	f.Type = patternOrdinal[classifyPattern(hasEpisode, hasQuality, hasReleaseGroup)]
	f.Complexity = complexityScore(t)
	f.SeparatorCount = float64(countSeparators(t.Filename))
	f.AlphaNumRatio = alphaNumRatio(t.Filename)
	f.HasYear = boolToFloat(hasYear)
	f.HasEpisode = boolToFloat(hasEpisode)
	f.HasQuality = boolToFloat(hasQuality)
	f.HasLanguage = boolToFloat(hasLanguage)
	f.HasReleaseGroup = boolToFloat(hasReleaseGroup)
	f.LengthCategory = lengthOrdinal[lengthBucket(len(t.Filename))]

	confidences := subPatternConfidences(hasEpisode, hasQuality, hasLanguage, hasReleaseGroup, hasYear)
	for i := 0; i < patternConfidenceSlots && i < len(confidences); i++ {
		f.SubPatternConfidence[i] = confidences[i]
	}
	return f
}

func classifyPattern(hasEpisode, hasQuality, hasReleaseGroup bool) patternType {
	switch {
	case hasEpisode && hasQuality && hasReleaseGroup:
		return patternTVShowComplete
	case hasEpisode && !hasQuality && !hasReleaseGroup:
		return patternTVShowBasic
	case !hasEpisode && (hasQuality || hasReleaseGroup):
		return patternMovie
	case !hasEpisode && !hasQuality && !hasReleaseGroup:
		return patternSimple
	default:
		return patternComplex
	}
}

func complexityScore(t tokenizer.Tokenization) float64 {
	separators := float64(countSeparators(t.Filename)) / 3
	mixedCase := 0.0
	if hasMixedCase(t.Filename) {
		mixedCase = 2
	}
	interleave := 0.0
	if hasAlnumInterleave(t.Filename) {
		interleave = 2
	}
	brackets := 0.0
	if strings.ContainsAny(t.Filename, "[](){}") {
		brackets = 2
	}
	longRuns := 0.0
	if hasLongRun(t.RawTokens) {
		longRuns = 1
	}
	score := separators + mixedCase + interleave + brackets + longRuns
	if score > 10 {
		score = 10
	}
	return score
}

func countSeparators(s string) int {
	count := 0
	for _, r := range s {
		if r == '.' || r == '_' || r == '-' || r == ' ' {
			count++
		}
	}
	return count
}

func alphaNumRatio(s string) float64 {
	alpha, num := 0, 0
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			alpha++
		case unicode.IsDigit(r):
			num++
		}
	}
	if num == 0 {
		return float64(alpha)
	}
	return float64(alpha) / float64(num)
}

func hasMixedCase(s string) bool {
	hasUpper, hasLower := false, false
	for _, r := range s {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	return hasUpper && hasLower
}

func hasAlnumInterleave(s string) bool {
	prevWasLetter := false
	prevWasDigit := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevWasDigit {
				return true
			}
			prevWasLetter, prevWasDigit = true, false
		} else if unicode.IsDigit(r) {
			if prevWasLetter {
				return true
			}
			prevWasLetter, prevWasDigit = false, true
		}
	}
	return false
}

func hasLongRun(tokens []string) bool {
	for _, tok := range tokens {
		if len(tok) >= 12 {
			return true
		}
	}
	return false
}

func hasYearPattern(filename string) bool {
	for i := 0; i+4 <= len(filename); i++ {
		window := filename[i : i+4]
		allDigits := true
		for _, r := range window {
			if !unicode.IsDigit(r) {
				allDigits = false
				break
			}
		}
		if allDigits && (window[:2] == "19" || window[:2] == "20") {
			return true
		}
	}
	return false
}

func lengthBucket(n int) lengthCategory {
	switch {
	case n < 20:
		return lengthShort
	case n < 50:
		return lengthMedium
	case n < 100:
		return lengthLong
	default:
		return lengthVeryLong
	}
}

func subPatternConfidences(hasEpisode, hasQuality, hasLanguage, hasReleaseGroup, hasYear bool) []float64 {
	score := func(present bool) float64 {
		if present {
			return 1
		}
		return 0
	}
	return []float64{score(hasEpisode), score(hasQuality), score(hasLanguage), score(hasReleaseGroup), score(hasYear)}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (f PatternFeatures) toArray() []float64 {
	out := []float64{
		f.Type, f.Complexity, f.SeparatorCount, f.AlphaNumRatio,
		f.HasYear, f.HasEpisode, f.HasQuality, f.HasLanguage, f.HasReleaseGroup,
		f.LengthCategory,
	}
	out = append(out, f.SubPatternConfidence[:]...)
	return out
}

func patternNames() []string {
	out := []string{
		"pattern_type", "pattern_complexity", "pattern_separator_count", "pattern_alpha_num_ratio",
		"pattern_has_year", "pattern_has_episode", "pattern_has_quality", "pattern_has_language", "pattern_has_release_group",
		"pattern_length_category",
	}
	for i := 0; i < patternConfidenceSlots; i++ {
		out = append(out, "pattern_subpattern_confidence_"+strconv.Itoa(i))
	}
	return out
}
