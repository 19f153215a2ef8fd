package tokenizer

import (
	"errors"
	"testing"

	"mediabutler/internal/errs"
)

func TestTokenizeRejectsEmpty(t *testing.T) {
	_, err := Tokenize("   ")
	if err == nil || !errors.Is(err, errs.ErrInput) {
		t.Fatalf("expected ErrInput, got %v", err)
	}
}

func TestTokenizeExtractsExtension(t *testing.T) {
	tok, err := Tokenize("Show.Name.S01E02.mkv")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tok.Extension != "mkv" {
		t.Fatalf("expected extension mkv, got %q", tok.Extension)
	}
}

func TestTokenizeUnrecognizedExtensionKeptInStem(t *testing.T) {
	tok, err := Tokenize("Show.Name.S01E02.xyz")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tok.Extension != "" {
		t.Fatalf("expected no recognized extension, got %q", tok.Extension)
	}
	found := false
	for _, raw := range tok.RawTokens {
		if raw == "xyz" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected unrecognized extension text to remain a raw token")
	}
}

func TestTokenizeStandardEpisodePattern(t *testing.T) {
	tok, err := Tokenize("Breaking.Bad.S03E07.720p.BluRay.x264-GROUP.mkv")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tok.Episode == nil || tok.Episode.Kind != EpisodeStandard {
		t.Fatalf("expected standard episode match, got %+v", tok.Episode)
	}
	if tok.Episode.Season != 3 || tok.Episode.Episode != 7 {
		t.Fatalf("unexpected season/episode: %+v", tok.Episode)
	}
	if tok.Quality == nil || tok.Quality.Resolution != "720p" {
		t.Fatalf("expected 720p resolution, got %+v", tok.Quality)
	}
	if tok.Quality.Tier != TierHigh {
		t.Fatalf("expected tier bumped to High by BluRay, got %v", tok.Quality.Tier)
	}
	if tok.ReleaseGroup != "GROUP" {
		t.Fatalf("expected release group GROUP, got %q", tok.ReleaseGroup)
	}
	for _, tok := range tok.SeriesTokens {
		if tok == "s03e07" || tok == "720p" || tok == "bluray" || tok == "x264" || tok == "group" {
			t.Fatalf("expected structural token %q to be filtered from series tokens", tok)
		}
	}
}

func TestTokenizeAlternativeEpisodePattern(t *testing.T) {
	tok, err := Tokenize("One.Piece.15x03.ITA.mkv")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tok.Episode == nil || tok.Episode.Kind != EpisodeAlt {
		t.Fatalf("expected alternative episode match, got %+v", tok.Episode)
	}
	if tok.Episode.Season != 15 || tok.Episode.Episode != 3 {
		t.Fatalf("unexpected season/episode: %+v", tok.Episode)
	}
	if len(tok.LanguageCodes) != 1 || tok.LanguageCodes[0] != "ITA" {
		t.Fatalf("expected ITA language code, got %v", tok.LanguageCodes)
	}
}

func TestTokenizeVerboseEpisodePattern(t *testing.T) {
	tok, err := Tokenize("The.Office.Season.4.Episode.11.mkv")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tok.Episode == nil || tok.Episode.Kind != EpisodeVerbose {
		t.Fatalf("expected verbose episode match, got %+v", tok.Episode)
	}
	if tok.Episode.Season != 4 || tok.Episode.Episode != 11 {
		t.Fatalf("unexpected season/episode: %+v", tok.Episode)
	}
}

func TestTokenizeEpisodeOnlyPattern(t *testing.T) {
	tok, err := Tokenize("Naruto.Ep142.mkv")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tok.Episode == nil || tok.Episode.Kind != EpisodeOnly {
		t.Fatalf("expected episode-only match, got %+v", tok.Episode)
	}
	if tok.Episode.Episode != 142 {
		t.Fatalf("expected episode 142, got %d", tok.Episode.Episode)
	}
}

func TestTokenizeDateBasedEpisodePattern(t *testing.T) {
	tok, err := Tokenize("Late.Night.Show.2024-03-15.mkv")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tok.Episode == nil || tok.Episode.Kind != EpisodeDateBased {
		t.Fatalf("expected date-based match, got %+v", tok.Episode)
	}
	if tok.Episode.Year != 2024 || tok.Episode.Month != 3 || tok.Episode.Day != 15 {
		t.Fatalf("unexpected date: %+v", tok.Episode)
	}
}

func TestTokenizeNoEpisodeMatch(t *testing.T) {
	tok, err := Tokenize("Inception.1080p.BluRay.x264-GROUP.mkv")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tok.Episode == nil || tok.Episode.Kind != EpisodeNone {
		t.Fatalf("expected no episode match, got %+v", tok.Episode)
	}
}

func TestNormalizedSeriesNameTitleCases(t *testing.T) {
	tok, err := Tokenize("breaking.bad.S01E01.mkv")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if got := tok.NormalizedSeriesName(); got != "Breaking Bad" {
		t.Fatalf("expected %q, got %q", "Breaking Bad", got)
	}
}

func TestTokenizeFiltersShortTokens(t *testing.T) {
	tok, err := Tokenize("A.B.Show.mkv")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	for _, s := range tok.SeriesTokens {
		if len(s) < 2 {
			t.Fatalf("expected tokens shorter than 2 chars filtered, found %q", s)
		}
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	name := "Il.Trono.Di.Spade.S06E09.ITA.ENG.1080p.WEB-DL.x264-DarkSideMux.mkv"
	first, err := Tokenize(name)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	second, err := Tokenize(name)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if first.NormalizedSeriesName() != second.NormalizedSeriesName() {
		t.Fatal("expected deterministic output across calls")
	}
	if len(first.SeriesTokens) != len(second.SeriesTokens) {
		t.Fatal("expected identical series token count across calls")
	}
}
