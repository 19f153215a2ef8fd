package features

import (
	"sort"
	"strconv"
	"strings"

	"mediabutler/internal/tokenizer"
)

const ngramTopSlots = 5

var ngramOrders = []int{1, 2, 3}

// NgramFeatures holds, per n in {1,2,3}, the top-5 relative frequencies and
// mean-IDF discriminative power of the most frequent n-grams, plus a count
// of grams whose constituent tokens span more than one category bucket.
type NgramFeatures struct {
	RelativeFrequency map[int][ngramTopSlots]float64
	Discriminative    map[int][ngramTopSlots]float64
	CrossBoundary     map[int]float64
}

type gramEntry struct {
	tokens []string
	count  int
}

func computeNgrams(t tokenizer.Tokenization) NgramFeatures {
	sets := buildTokenCategorySets(t)
	categories := classifyTokensPerToken(t, sets)

	f := NgramFeatures{
		RelativeFrequency: map[int][ngramTopSlots]float64{},
		Discriminative:    map[int][ngramTopSlots]float64{},
		CrossBoundary:     map[int]float64{},
	}

	for _, n := range ngramOrders {
		grams := buildGrams(t.RawTokens, n)
		total := 0
		for _, g := range grams {
			total += g.count
		}

		sorted := make([]gramEntry, 0, len(grams))
		for _, g := range grams {
			sorted = append(sorted, g)
		}
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].count != sorted[j].count {
				return sorted[i].count > sorted[j].count
			}
			return strings.Join(sorted[i].tokens, " ") < strings.Join(sorted[j].tokens, " ")
		})

		var relFreq, discrim [ngramTopSlots]float64
		for i := 0; i < ngramTopSlots && i < len(sorted); i++ {
			g := sorted[i]
			if total > 0 {
				relFreq[i] = float64(g.count) / float64(total)
			}
			discrim[i] = meanIDF(g.tokens)
		}
		f.RelativeFrequency[n] = relFreq
		f.Discriminative[n] = discrim

		crossBoundary := 0.0
		for _, g := range grams {
			if spansMultipleCategories(g.tokens, categories) {
				crossBoundary++
			}
		}
		f.CrossBoundary[n] = crossBoundary
	}

	return f
}

func buildGrams(tokens []string, n int) map[string]gramEntry {
	grams := map[string]gramEntry{}
	if len(tokens) < n {
		return grams
	}
	for i := 0; i+n <= len(tokens); i++ {
		window := append([]string(nil), tokens[i:i+n]...)
		key := strings.Join(window, "\x00")
		entry := grams[key]
		entry.tokens = window
		entry.count++
		grams[key] = entry
	}
	return grams
}

func meanIDF(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	sum := 0.0
	for _, tok := range tokens {
		sum += weightOf(tok)
	}
	return sum / float64(len(tokens))
}

// classifyTokensPerToken maps every raw token of t to the category
// classifyToken assigns it, so n-gram constituents drawn from across the
// filename (series name, quality, language, release group) are compared on
// their real category rather than all being assumed series-name tokens.
func classifyTokensPerToken(t tokenizer.Tokenization, sets tokenCategorySets) map[string]tokenCategory {
	out := make(map[string]tokenCategory, len(t.RawTokens))
	for _, tok := range t.RawTokens {
		out[tok] = sets.classifyToken(tok)
	}
	return out
}

func spansMultipleCategories(tokens []string, categories map[string]tokenCategory) bool {
	seen := map[tokenCategory]struct{}{}
	for _, tok := range tokens {
		cat, ok := categories[tok]
		if !ok {
			cat = categoryTechnical
		}
		seen[cat] = struct{}{}
	}
	return len(seen) > 1
}

func (f NgramFeatures) toArray() []float64 {
	out := make([]float64, 0, len(ngramOrders)*(ngramTopSlots*2+1))
	for _, n := range ngramOrders {
		rel := f.RelativeFrequency[n]
		disc := f.Discriminative[n]
		out = append(out, rel[:]...)
		out = append(out, disc[:]...)
		out = append(out, f.CrossBoundary[n])
	}
	return out
}

func ngramNames() []string {
	out := make([]string, 0, len(ngramOrders)*(ngramTopSlots*2+1))
	for _, n := range ngramOrders {
		prefix := "ngram" + strconv.Itoa(n) + "_"
		for i := 0; i < ngramTopSlots; i++ {
			out = append(out, prefix+"relfreq_"+strconv.Itoa(i))
		}
		for i := 0; i < ngramTopSlots; i++ {
			out = append(out, prefix+"discriminative_"+strconv.Itoa(i))
		}
		out = append(out, prefix+"cross_boundary_count")
	}
	return out
}
