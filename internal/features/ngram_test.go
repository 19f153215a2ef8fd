package features

import "testing"

func TestComputeNgramsDetectsCrossCategoryBoundaries(t *testing.T) {
	tok := mustTokenize(t, "Breaking.Bad.S01E01.1080p.BluRay.x264-GROUP.mkv")
	ngrams := computeNgrams(tok)

	if ngrams.CrossBoundary[2] <= 0 {
		t.Fatalf("expected at least one 2-gram spanning categories (e.g. series name next to quality/release tokens), got %v", ngrams.CrossBoundary)
	}
}

func TestSpansMultipleCategoriesDetectsBoundary(t *testing.T) {
	categories := map[string]tokenCategory{
		"breaking": categorySeriesName,
		"bad":      categorySeriesName,
		"1080p":    categoryQuality,
	}
	if spansMultipleCategories([]string{"breaking", "bad"}, categories) {
		t.Fatal("expected no boundary within a single category")
	}
	if !spansMultipleCategories([]string{"bad", "1080p"}, categories) {
		t.Fatal("expected a boundary between series-name and quality tokens")
	}
}

func TestClassifyTokensPerTokenCoversAllRawTokens(t *testing.T) {
	tok := mustTokenize(t, "Breaking.Bad.S01E01.1080p.BluRay.x264-GROUP.mkv")
	sets := buildTokenCategorySets(tok)
	categories := classifyTokensPerToken(tok, sets)

	for _, raw := range tok.RawTokens {
		if _, ok := categories[raw]; !ok {
			t.Fatalf("expected raw token %q to have a category", raw)
		}
	}

	sawNonSeries := false
	for _, cat := range categories {
		if cat != categorySeriesName {
			sawNonSeries = true
			break
		}
	}
	if !sawNonSeries {
		t.Fatal("expected at least one token categorized outside series_name")
	}
}
