package features

import (
	"sort"
	"strconv"
	"unicode"

	"mediabutler/internal/tokenizer"
)

const (
	topTokenSlots    = 10
	bottomTokenSlots = 5
)

// TokenFrequencyFeatures is the first to_array() subpart: statistics over a
// tokenization's series tokens.
type TokenFrequencyFeatures struct {
	TotalCount       float64
	TopDiscriminative [topTokenSlots]float64
	BottomByCount     [bottomTokenSlots]float64
	AverageLength     float64
	AlphaDigitRatio   float64
	Diversity         float64
	LanguageCodeCount float64
	CategoryCounts    map[tokenCategory]int
}

type tokenCount struct {
	token string
	count int
	score float64
}

func computeTokenFrequency(t tokenizer.Tokenization) TokenFrequencyFeatures {
	counts := map[string]int{}
	for _, tok := range t.SeriesTokens {
		counts[tok]++
	}

	entries := make([]tokenCount, 0, len(counts))
	for tok, c := range counts {
		entries = append(entries, tokenCount{token: tok, count: c, score: float64(c) * weightOf(tok)})
	}

	byScoreDesc := append([]tokenCount(nil), entries...)
	sort.Slice(byScoreDesc, func(i, j int) bool {
		if byScoreDesc[i].score != byScoreDesc[j].score {
			return byScoreDesc[i].score > byScoreDesc[j].score
		}
		return byScoreDesc[i].token < byScoreDesc[j].token
	})

	byCountAsc := append([]tokenCount(nil), entries...)
	sort.Slice(byCountAsc, func(i, j int) bool {
		if byCountAsc[i].count != byCountAsc[j].count {
			return byCountAsc[i].count < byCountAsc[j].count
		}
		return byCountAsc[i].token < byCountAsc[j].token
	})

	var f TokenFrequencyFeatures
	f.TotalCount = float64(len(t.SeriesTokens))
	for i := 0; i < topTokenSlots; i++ {
		if i < len(byScoreDesc) {
			f.TopDiscriminative[i] = byScoreDesc[i].score
		}
	}
	for i := 0; i < bottomTokenSlots; i++ {
		if i < len(byCountAsc) {
			f.BottomByCount[i] = float64(byCountAsc[i].count)
		}
	}

	if len(t.SeriesTokens) > 0 {
		totalLen := 0
		alpha, digit := 0, 0
		for _, tok := range t.SeriesTokens {
			totalLen += len(tok)
			for _, r := range tok {
				switch {
				case unicode.IsLetter(r):
					alpha++
				case unicode.IsDigit(r):
					digit++
				}
			}
		}
		f.AverageLength = float64(totalLen) / float64(len(t.SeriesTokens))
		if digit > 0 {
			f.AlphaDigitRatio = float64(alpha) / float64(digit)
		} else {
			f.AlphaDigitRatio = float64(alpha)
		}
		f.Diversity = float64(len(counts)) / float64(len(t.SeriesTokens))
	}

	f.LanguageCodeCount = float64(len(t.LanguageCodes))
	f.CategoryCounts = classifyTokens(t)
	return f
}

func (f TokenFrequencyFeatures) toArray() []float64 {
	out := make([]float64, 0, 1+topTokenSlots+bottomTokenSlots+4+len(categoryOrder))
	out = append(out, f.TotalCount)
	out = append(out, f.TopDiscriminative[:]...)
	out = append(out, f.BottomByCount[:]...)
	out = append(out, f.AverageLength, f.AlphaDigitRatio, f.Diversity, f.LanguageCodeCount)
	for _, cat := range categoryOrder {
		out = append(out, float64(f.CategoryCounts[cat]))
	}
	return out
}

func tokenFrequencyNames() []string {
	out := []string{"token_total_count"}
	for i := 0; i < topTokenSlots; i++ {
		out = append(out, "token_top_discriminative_"+strconv.Itoa(i))
	}
	for i := 0; i < bottomTokenSlots; i++ {
		out = append(out, "token_bottom_count_"+strconv.Itoa(i))
	}
	out = append(out, "token_average_length", "token_alpha_digit_ratio", "token_diversity", "token_language_code_count")
	for _, cat := range categoryOrder {
		out = append(out, "token_category_"+string(cat))
	}
	return out
}
