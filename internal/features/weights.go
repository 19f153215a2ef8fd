package features

// discriminativeWeights is the static IDF-like table seeded at init and
// consulted by token-frequency and n-gram scoring. Tokens absent from the
// table score the neutral weight of 1.0.
var discriminativeWeights map[string]float64

const defaultTokenWeight = 1.0

func init() {
	seed := map[string]float64{
		"the": 0.15, "di": 0.2, "la": 0.2, "il": 0.2, "e": 0.2, "of": 0.2, "and": 0.2,
		"season": 0.3, "episode": 0.3, "part": 0.4, "parte": 0.4,
		"ita": 0.5, "eng": 0.5, "sub": 0.5, "dub": 0.5, "multi": 0.5,
		"1080p": 0.6, "720p": 0.6, "2160p": 0.6, "480p": 0.6,
		"bluray": 0.6, "webrip": 0.6, "hdtv": 0.6, "dvdrip": 0.6,
		"x264": 0.6, "x265": 0.6, "hevc": 0.6, "avc": 0.6,
	}
	discriminativeWeights = seed
}

// weightOf returns the discriminative weight for a lowercase series token.
func weightOf(token string) float64 {
	if w, ok := discriminativeWeights[token]; ok {
		return w
	}
	return defaultTokenWeight
}
