package categoryregistry

// CategoryType classifies what kind of media a category holds.
type CategoryType string

const (
	TypeTVSeries     CategoryType = "TVSeries"
	TypeMovie        CategoryType = "Movie"
	TypeAnime        CategoryType = "Anime"
	TypeDocumentary  CategoryType = "Documentary"
	TypeMiniSeries   CategoryType = "MiniSeries"
	TypeOther        CategoryType = "Other"
)

// CategoryDefinition describes one registered category.
type CategoryDefinition struct {
	CanonicalName       string
	DisplayName         string
	Type                CategoryType
	ConfidenceThreshold float64
	Aliases             []string
	Keywords            []string
	Active              bool
	FileCount           int
	AvgConfidence       float64
}

// Clone returns a deep copy so callers cannot mutate registry internals
// through a returned *CategoryDefinition.
func (d CategoryDefinition) Clone() CategoryDefinition {
	clone := d
	clone.Aliases = append([]string(nil), d.Aliases...)
	clone.Keywords = append([]string(nil), d.Keywords...)
	return clone
}

// Patch describes a partial in-place Update to a CategoryDefinition. Nil
// pointer fields are left untouched; Aliases/Keywords, when non-nil,
// replace the existing slice wholesale.
type Patch struct {
	DisplayName         *string
	Type                *CategoryType
	ConfidenceThreshold *float64
	Aliases             []string
	Keywords            []string
	Active              *bool
}

// MergeResult reports what Merge transferred from source into target.
type MergeResult struct {
	Source            string
	Target            string
	AliasesTransferred int
	KeywordsTransferred int
	FileCountTransferred int
}

// CategorySuggestion is one ranked result from Suggest.
type CategorySuggestion struct {
	CanonicalName string
	Confidence    float64
	MatchedAlias  string
	KeywordHits   int
}

// NameIssue describes one problem found by ValidateName.
type NameIssue struct {
	Field   string
	Message string
}

// NameValidation is the result of ValidateName.
type NameValidation struct {
	Normalized string
	Issues     []NameIssue
}

// Valid reports whether the name passed every check.
func (v NameValidation) Valid() bool {
	return len(v.Issues) == 0
}
