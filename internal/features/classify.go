package features

import (
	"strings"

	"mediabutler/internal/tokenizer"
)

// tokenCategory is one of the five buckets token-frequency analysis reports
// counts for.
type tokenCategory string

const (
	categorySeriesName tokenCategory = "series_name"
	categoryQuality    tokenCategory = "quality"
	categoryLanguage   tokenCategory = "language"
	categoryTechnical  tokenCategory = "technical"
	categoryEpisode    tokenCategory = "episode"
)

var categoryOrder = []tokenCategory{categorySeriesName, categoryQuality, categoryLanguage, categoryTechnical, categoryEpisode}

// tokenCategorySets are the lowercase lookup sets classifyToken tests a raw
// token against, built once per Tokenization and shared by every caller that
// needs to know which category a specific token belongs to.
type tokenCategorySets struct {
	releaseGroup string
	quality      map[string]struct{}
	language     map[string]struct{}
	episode      map[string]struct{}
	series       map[string]struct{}
}

func buildTokenCategorySets(t tokenizer.Tokenization) tokenCategorySets {
	qualitySet := map[string]struct{}{}
	if t.Quality != nil {
		for _, v := range []string{t.Quality.Resolution, t.Quality.Source, t.Quality.VideoCodec, t.Quality.AudioCodec} {
			if v != "" {
				qualitySet[strings.ToLower(v)] = struct{}{}
			}
		}
	}
	languageSet := map[string]struct{}{}
	for _, v := range t.LanguageCodes {
		languageSet[strings.ToLower(v)] = struct{}{}
	}
	episodeSet := map[string]struct{}{}
	if t.Episode != nil && t.Episode.RawText != "" {
		for _, part := range strings.FieldsFunc(strings.ToLower(t.Episode.RawText), isSeparator) {
			episodeSet[part] = struct{}{}
		}
	}
	seriesSet := map[string]struct{}{}
	for _, s := range t.SeriesTokens {
		seriesSet[s] = struct{}{}
	}
	return tokenCategorySets{
		releaseGroup: strings.ToLower(t.ReleaseGroup),
		quality:      qualitySet,
		language:     languageSet,
		episode:      episodeSet,
		series:       seriesSet,
	}
}

// classifyToken buckets a single raw token using sets precomputed by
// buildTokenCategorySets, so both the aggregate-count path (classifyTokens)
// and the per-token path (n-gram cross-boundary detection) classify tokens
// identically.
func (sets tokenCategorySets) classifyToken(tok string) tokenCategory {
	switch {
	case tok == sets.releaseGroup && sets.releaseGroup != "":
		return categoryTechnical
	case containsKey(sets.quality, tok):
		return categoryQuality
	case containsKey(sets.language, tok):
		return categoryLanguage
	case containsKey(sets.episode, tok):
		return categoryEpisode
	case containsKey(sets.series, tok):
		return categorySeriesName
	default:
		return categoryTechnical
	}
}

// classifyTokens buckets every raw token of t into one of the five
// categories, using the structural fields Tokenize already extracted so the
// classification never re-parses the filename.
func classifyTokens(t tokenizer.Tokenization) map[tokenCategory]int {
	sets := buildTokenCategorySets(t)
	counts := make(map[tokenCategory]int, len(categoryOrder))
	for _, tok := range t.RawTokens {
		counts[sets.classifyToken(tok)]++
	}
	return counts
}

func containsKey(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func isSeparator(r rune) bool {
	return r == '.' || r == '_' || r == '-' || r == ' '
}
