package categoryregistry

import (
	"sort"
	"strings"
)

// weights for the blended suggestion confidence: a weighted blend of alias
// exact-match, keyword hit density, and series-token overlap.
const (
	weightAliasExact   = 0.5
	weightKeywordDensity = 0.3
	weightTokenOverlap = 0.2
)

// Suggest ranks registered categories by how well they match filename,
// returning at most k results sorted by confidence descending. Within a
// confidence tie the ordering favors higher alias match, then higher
// keyword density, then higher token overlap, then lexicographic canonical
// name.
func (r *Registry) Suggest(filename string, k int) []CategorySuggestion {
	if k <= 0 {
		return nil
	}
	tokens := filenameTokens(filename)
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = struct{}{}
	}
	joined := " " + strings.Join(tokens, " ") + " "

	type scored struct {
		suggestion  CategorySuggestion
		aliasScore  float64
		keywordDens float64
		overlap     float64
	}

	r.mu.RLock()
	candidates := make([]scored, 0, len(r.canonical))
	for _, def := range r.canonical {
		if !def.Active {
			continue
		}
		aliasScore, matchedAlias := aliasMatchScore(def.Aliases, def.CanonicalName, joined)
		keywordHits, keywordDensity := keywordMatchScore(def.Keywords, tokenSet)
		overlap := tokenOverlapScore(def.CanonicalName, tokenSet)

		confidence := weightAliasExact*aliasScore + weightKeywordDensity*keywordDensity + weightTokenOverlap*overlap
		candidates = append(candidates, scored{
			suggestion: CategorySuggestion{
				CanonicalName: def.CanonicalName,
				Confidence:    confidence,
				MatchedAlias:  matchedAlias,
				KeywordHits:   keywordHits,
			},
			aliasScore:  aliasScore,
			keywordDens: keywordDensity,
			overlap:     overlap,
		})
	}
	r.mu.RUnlock()

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.suggestion.Confidence != b.suggestion.Confidence {
			return a.suggestion.Confidence > b.suggestion.Confidence
		}
		if a.aliasScore != b.aliasScore {
			return a.aliasScore > b.aliasScore
		}
		if a.keywordDens != b.keywordDens {
			return a.keywordDens > b.keywordDens
		}
		if a.overlap != b.overlap {
			return a.overlap > b.overlap
		}
		return a.suggestion.CanonicalName < b.suggestion.CanonicalName
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	out := make([]CategorySuggestion, len(candidates))
	for i, c := range candidates {
		out[i] = c.suggestion
	}
	return out
}

func filenameTokens(filename string) []string {
	lower := strings.ToLower(filename)
	collapsed := separatorRun.ReplaceAllString(lower, " ")
	collapsed = whitespaceRun.ReplaceAllString(collapsed, " ")
	fields := strings.Fields(collapsed)
	return fields
}

func aliasMatchScore(aliases []string, canonicalName, joinedTokens string) (float64, string) {
	best := 0.0
	bestAlias := ""
	candidates := append([]string{canonicalName}, aliases...)
	for _, alias := range candidates {
		normalizedAlias := strings.ToLower(strings.Join(filenameTokens(alias), " "))
		if normalizedAlias == "" {
			continue
		}
		if strings.Contains(joinedTokens, " "+normalizedAlias+" ") {
			if 1.0 > best {
				best = 1.0
				bestAlias = alias
			}
		}
	}
	return best, bestAlias
}

func keywordMatchScore(keywords []string, tokenSet map[string]struct{}) (int, float64) {
	if len(keywords) == 0 {
		return 0, 0
	}
	hits := 0
	for _, kw := range keywords {
		if _, ok := tokenSet[strings.ToLower(strings.TrimSpace(kw))]; ok {
			hits++
		}
	}
	return hits, float64(hits) / float64(len(keywords))
}

func tokenOverlapScore(canonicalName string, tokenSet map[string]struct{}) float64 {
	nameTokens := filenameTokens(canonicalName)
	if len(nameTokens) == 0 {
		return 0
	}
	overlap := 0
	for _, t := range nameTokens {
		if _, ok := tokenSet[t]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(nameTokens))
}
