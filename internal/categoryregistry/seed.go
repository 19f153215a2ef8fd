package categoryregistry

// seedEntry is a baked-in category available before any explicit Register
// call, following the same static-table-seeded-at-init shape used elsewhere
// for lookup tables in this codebase.
type seedEntry struct {
	canonical string
	display   string
	kind      CategoryType
	threshold float64
	aliases   []string
	keywords  []string
}

var seedCategories = []seedEntry{
	{"IL TRONO DI SPADE", "Il Trono Di Spade", TypeTVSeries, 0.80, []string{"GAME OF THRONES", "GOT"}, []string{"trono", "spade", "stark", "lannister"}},
	{"ONE PIECE", "One Piece", TypeAnime, 0.75, []string{"OP"}, []string{"piece", "luffy", "straw", "hat"}},
	{"BREAKING BAD", "Breaking Bad", TypeTVSeries, 0.85, nil, []string{"breaking", "heisenberg", "walter"}},
	{"THE WALKING DEAD", "The Walking Dead", TypeTVSeries, 0.80, []string{"TWD", "WALKING DEAD"}, []string{"walking", "dead", "zombie"}},
	{"NARUTO", "Naruto", TypeAnime, 0.75, []string{"NARUTO SHIPPUDEN"}, []string{"naruto", "shippuden", "konoha"}},
	{"ATTACK ON TITAN", "Attack On Titan", TypeAnime, 0.75, []string{"SHINGEKI NO KYOJIN", "AOT"}, []string{"titan", "shingeki", "kyojin"}},
	{"THE OFFICE", "The Office", TypeTVSeries, 0.80, nil, []string{"office", "dunder", "mifflin"}},
	{"STRANGER THINGS", "Stranger Things", TypeTVSeries, 0.80, nil, []string{"stranger", "hawkins", "upside"}},
	{"CHERNOBYL", "Chernobyl", TypeMiniSeries, 0.80, nil, []string{"chernobyl", "reactor"}},
	{"PLANET EARTH", "Planet Earth", TypeDocumentary, 0.75, nil, []string{"planet", "earth", "nature"}},
	{"INCEPTION", "Inception", TypeMovie, 0.80, nil, []string{"inception", "dream"}},
	{"THE MATRIX", "The Matrix", TypeMovie, 0.80, []string{"MATRIX"}, []string{"matrix", "neo"}},
}

// Seed populates r with the baked-in category list. It is idempotent: an
// already-registered canonical name is skipped rather than erroring so
// callers can call Seed on a registry that already has user-registered
// categories.
func (r *Registry) Seed() {
	for _, entry := range seedCategories {
		def := CategoryDefinition{
			CanonicalName:       entry.canonical,
			DisplayName:         entry.display,
			Type:                entry.kind,
			ConfidenceThreshold: entry.threshold,
			Aliases:             append([]string(nil), entry.aliases...),
			Keywords:            append([]string(nil), entry.keywords...),
			Active:              true,
		}
		_ = r.Register(def) // AlreadyExists is expected and ignored on repeat seeding
	}
}
