package tokenizer

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"mediabutler/internal/errs"
)

const component = "tokenizer"

type span struct {
	start, end int
}

func (s span) overlaps(o span) bool {
	return s.start < o.end && o.start < s.end
}

// Tokenize performs the full structural parse of filename.
func Tokenize(filename string) (Tokenization, error) {
	trimmed := strings.TrimSpace(filename)
	if trimmed == "" {
		return Tokenization{}, errs.WrapCode(errs.ErrInput, component, "tokenize", errs.CodeEmptyInput, "filename is empty", nil)
	}
	// Filenames from different filesystems/encoders can carry the same
	// glyphs as distinct decomposed/composed Unicode sequences (e.g. an
	// accented release-group name); normalize to NFC so token matching is
	// consistent regardless of source.
	trimmed = norm.NFC.String(trimmed)

	ext, stem := splitExtension(trimmed)

	tokenMatches := tokenSplit.FindAllStringIndex(stem, -1)
	if len(tokenMatches) == 0 {
		return Tokenization{}, errs.WrapCode(errs.ErrParse, component, "tokenize", errs.CodeUnparseable, "no tokens found in filename", nil)
	}

	tokenSpans := make([]span, len(tokenMatches))
	rawTokens := make([]string, len(tokenMatches))
	for i, m := range tokenMatches {
		tokenSpans[i] = span{m[0], m[1]}
		rawTokens[i] = strings.ToLower(stem[m[0]:m[1]])
	}

	filtered := make([]bool, len(tokenSpans))
	markOverlap := func(matchStart, matchEnd int) {
		ms := span{matchStart, matchEnd}
		for i, ts := range tokenSpans {
			if ts.overlaps(ms) {
				filtered[i] = true
			}
		}
	}

	episode := detectEpisode(stem, markOverlap)
	quality := detectQuality(stem, markOverlap)
	languages := detectLanguages(stem, markOverlap)
	releaseGroup := detectReleaseGroup(stem, markOverlap)

	var seriesTokens []string
	var filteredOut []string
	for i, tok := range rawTokens {
		if filtered[i] || len(tok) < 2 {
			filteredOut = append(filteredOut, tok)
			continue
		}
		seriesTokens = append(seriesTokens, tok)
	}

	return Tokenization{
		Filename:      trimmed,
		SeriesTokens:  seriesTokens,
		RawTokens:     rawTokens,
		FilteredOut:   filteredOut,
		Extension:     ext,
		Episode:       episode,
		Quality:       quality,
		LanguageCodes: languages,
		ReleaseGroup:  releaseGroup,
		Metadata:      map[string]string{},
	}, nil
}

func splitExtension(filename string) (ext string, stem string) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", filename
	}
	candidate := strings.ToLower(filename[idx+1:])
	if _, ok := recognizedExtensions[candidate]; !ok {
		return "", filename
	}
	return candidate, filename[:idx]
}

func detectEpisode(stem string, markOverlap func(int, int)) *EpisodeInfo {
	if loc := episodeStandard.FindStringSubmatchIndex(stem); loc != nil {
		markOverlap(loc[0], loc[1])
		return &EpisodeInfo{
			Kind:    EpisodeStandard,
			Season:  atoi(stem[loc[2]:loc[3]]),
			Episode: atoi(stem[loc[4]:loc[5]]),
			RawText: stem[loc[0]:loc[1]],
		}
	}
	if loc := episodeAlt.FindStringSubmatchIndex(stem); loc != nil {
		markOverlap(loc[0], loc[1])
		return &EpisodeInfo{
			Kind:    EpisodeAlt,
			Season:  atoi(stem[loc[2]:loc[3]]),
			Episode: atoi(stem[loc[4]:loc[5]]),
			RawText: stem[loc[0]:loc[1]],
		}
	}
	if loc := episodeVerbose.FindStringSubmatchIndex(stem); loc != nil {
		markOverlap(loc[0], loc[1])
		return &EpisodeInfo{
			Kind:    EpisodeVerbose,
			Season:  atoi(stem[loc[2]:loc[3]]),
			Episode: atoi(stem[loc[4]:loc[5]]),
			RawText: stem[loc[0]:loc[1]],
		}
	}
	if loc := episodeOnly.FindStringSubmatchIndex(stem); loc != nil {
		markOverlap(loc[0], loc[1])
		return &EpisodeInfo{
			Kind:    EpisodeOnly,
			Episode: atoi(stem[loc[2]:loc[3]]),
			RawText: stem[loc[0]:loc[1]],
		}
	}
	if loc := episodeDate.FindStringSubmatchIndex(stem); loc != nil {
		markOverlap(loc[0], loc[1])
		return &EpisodeInfo{
			Kind:  EpisodeDateBased,
			Year:  atoi(stem[loc[2] : loc[2]+4]),
			Month: atoi(stem[loc[4]:loc[5]]),
			Day:   atoi(stem[loc[6]:loc[7]]),
			RawText: stem[loc[0]:loc[1]],
		}
	}
	return &EpisodeInfo{Kind: EpisodeNone}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func detectQuality(stem string, markOverlap func(int, int)) *QualityInfo {
	q := &QualityInfo{Tier: TierUnknown}
	found := false

	if loc := resolutionRE.FindStringIndex(stem); loc != nil {
		markOverlap(loc[0], loc[1])
		q.Resolution = stem[loc[0]:loc[1]]
		found = true
	}
	if loc := sourceRE.FindStringIndex(stem); loc != nil {
		markOverlap(loc[0], loc[1])
		q.Source = stem[loc[0]:loc[1]]
		found = true
	}
	if loc := videoCodecRE.FindStringIndex(stem); loc != nil {
		markOverlap(loc[0], loc[1])
		q.VideoCodec = stem[loc[0]:loc[1]]
		found = true
	}
	if loc := audioCodecRE.FindStringIndex(stem); loc != nil {
		markOverlap(loc[0], loc[1])
		q.AudioCodec = stem[loc[0]:loc[1]]
		found = true
	}
	if !found {
		return nil
	}

	q.Tier = resolutionTier(q.Resolution)
	if containsFold(q.Source, "BluRay") || containsFold(q.Source, "BDRip") {
		q.Tier = q.Tier.bump()
	}
	return q
}

func resolutionTier(resolution string) QualityTier {
	switch {
	case containsFold(resolution, "2160p"), containsFold(resolution, "4K"):
		return TierUltraHigh
	case containsFold(resolution, "1080p"):
		return TierHigh
	case containsFold(resolution, "720p"):
		return TierStandard
	case containsFold(resolution, "480p"):
		return TierLow
	default:
		return TierUnknown
	}
}

func containsFold(haystack, needle string) bool {
	if haystack == "" || needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func detectLanguages(stem string, markOverlap func(int, int)) []string {
	locs := languageRE.FindAllStringIndex(stem, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]string, 0, len(locs))
	for _, loc := range locs {
		markOverlap(loc[0], loc[1])
		out = append(out, strings.ToUpper(stem[loc[0]:loc[1]]))
	}
	return out
}

func detectReleaseGroup(stem string, markOverlap func(int, int)) string {
	idx := strings.LastIndex(stem, "-")
	if idx < 0 {
		return ""
	}
	rest := stem[idx+1:]
	end := len(rest)
	for i, r := range rest {
		if r == '.' || r == '_' || r == '-' || r == ' ' {
			end = i
			break
		}
	}
	candidate := rest[:end]
	if !releaseGroupRE.MatchString(candidate) {
		return ""
	}
	start := idx + 1
	markOverlap(start, start+len(candidate))
	return candidate
}
