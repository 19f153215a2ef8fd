package categoryregistry

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"mediabutler/internal/errs"
	"mediabutler/internal/logging"
)

var (
	separatorRun = regexp.MustCompile(`[._\-]+`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	alnumOrSpace  = regexp.MustCompile(`^[A-Z0-9 ()&']+$`)
	allPunct      = regexp.MustCompile(`^[^A-Za-z0-9]*$`)
)

var reservedNames = map[string]struct{}{
	"NEW":     {},
	"UNKNOWN": {},
	"NONE":    {},
}

// Registry is the process-wide, read-mostly CategoryRegistry. Reads proceed
// under an RWMutex; writers hold the write lock for the duration of the
// mutation: updates are serialized behind a single writer lock, and reads
// always see a consistent snapshot.
type Registry struct {
	mu        sync.RWMutex
	canonical map[string]*CategoryDefinition
	alias     map[string]string // lowercase alias -> canonical name
	logger    *slog.Logger
}

// New constructs an empty registry.
func New(logger *slog.Logger) *Registry {
	return &Registry{
		canonical: make(map[string]*CategoryDefinition),
		alias:     make(map[string]string),
		logger:    logging.NewComponentLogger(logger, "categoryregistry"),
	}
}

// SetLogger swaps the registry's logger.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.logger = logging.NewComponentLogger(logger, "categoryregistry")
}

// Normalize canonicalizes a raw category name: uppercase, collapse
// separator runs to single spaces, trim, strip a leading "THE ".
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errs.WrapCode(errs.ErrRegistry, "categoryregistry", "normalize", errs.CodeInvalidName, "name is empty", nil)
	}
	if allPunct.MatchString(trimmed) {
		return "", errs.WrapCode(errs.ErrRegistry, "categoryregistry", "normalize", errs.CodeInvalidName, "name is all punctuation", nil)
	}

	upper := strings.ToUpper(trimmed)
	collapsed := separatorRun.ReplaceAllString(upper, " ")
	collapsed = whitespaceRun.ReplaceAllString(collapsed, " ")
	collapsed = strings.TrimSpace(collapsed)
	collapsed = strings.TrimPrefix(collapsed, "THE ")
	collapsed = strings.TrimSpace(collapsed)

	if collapsed == "" {
		return "", errs.WrapCode(errs.ErrRegistry, "categoryregistry", "normalize", errs.CodeInvalidName, "name is empty after normalization", nil)
	}
	return collapsed, nil
}

func lookupKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Get resolves name by canonical name or alias, case-insensitively.
func (r *Registry) Get(name string) (CategoryDefinition, bool) {
	key := lookupKey(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getLocked(key)
}

func (r *Registry) getLocked(key string) (CategoryDefinition, bool) {
	if def, ok := r.canonical[key]; ok {
		return def.Clone(), true
	}
	if canonical, ok := r.alias[strings.ToLower(key)]; ok {
		if def, ok := r.canonical[canonical]; ok {
			return def.Clone(), true
		}
	}
	return CategoryDefinition{}, false
}

// Exists reports whether name resolves to a known category.
func (r *Registry) Exists(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Threshold returns the confidence threshold registered for name, or
// ErrRegistry/CodeUnknownCategory if name is unknown.
func (r *Registry) Threshold(name string) (float64, error) {
	def, ok := r.Get(name)
	if !ok {
		return 0, errs.WrapCode(errs.ErrRegistry, "categoryregistry", "threshold", errs.CodeUnknownCategory, name, nil)
	}
	return def.ConfidenceThreshold, nil
}

// Register inserts a new category definition. The canonical name is
// normalized and validated first; threshold is clamped to [0,1].
func (r *Registry) Register(def CategoryDefinition) error {
	name, err := Normalize(def.CanonicalName)
	if err != nil {
		return errs.WrapCode(errs.ErrRegistry, "categoryregistry", "register", errs.CodeInvalidDefinition, "invalid canonical name", err)
	}
	validation := ValidateName(def.CanonicalName)
	if !validation.Valid() {
		return errs.WrapCode(errs.ErrRegistry, "categoryregistry", "register", errs.CodeInvalidDefinition, validation.Issues[0].Message, nil)
	}
	if def.Type == "" {
		return errs.WrapCode(errs.ErrRegistry, "categoryregistry", "register", errs.CodeInvalidDefinition, "type is required", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.canonical[name]; exists {
		return errs.WrapCode(errs.ErrRegistry, "categoryregistry", "register", errs.CodeAlreadyExists, name, nil)
	}

	clamped := clamp01(def.ConfidenceThreshold)
	stored := def.Clone()
	stored.CanonicalName = name
	stored.ConfidenceThreshold = clamped
	if stored.DisplayName == "" {
		stored.DisplayName = name
	}
	r.canonical[name] = &stored
	for _, alias := range stored.Aliases {
		r.registerAliasLocked(alias, name)
	}

	r.logger.Info("category registered",
		logging.String("canonical_name", name),
		logging.String(logging.FieldEventType, "category_registered"))
	return nil
}

func (r *Registry) registerAliasLocked(alias, canonical string) {
	key := strings.ToLower(strings.TrimSpace(alias))
	if key == "" {
		return
	}
	r.alias[key] = canonical
}

// Update applies patch to the category identified by name, in place.
func (r *Registry) Update(name string, patch Patch) error {
	key := lookupKey(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	canonical, def := r.resolveWriteTargetLocked(key)
	if def == nil {
		return errs.WrapCode(errs.ErrRegistry, "categoryregistry", "update", errs.CodeNotFound, name, nil)
	}

	if patch.DisplayName != nil {
		def.DisplayName = *patch.DisplayName
	}
	if patch.Type != nil {
		def.Type = *patch.Type
	}
	if patch.ConfidenceThreshold != nil {
		def.ConfidenceThreshold = clamp01(*patch.ConfidenceThreshold)
	}
	if patch.Aliases != nil {
		for _, old := range def.Aliases {
			delete(r.alias, strings.ToLower(strings.TrimSpace(old)))
		}
		def.Aliases = append([]string(nil), patch.Aliases...)
		for _, alias := range def.Aliases {
			r.registerAliasLocked(alias, canonical)
		}
	}
	if patch.Keywords != nil {
		def.Keywords = append([]string(nil), patch.Keywords...)
	}
	if patch.Active != nil {
		def.Active = *patch.Active
	}
	return nil
}

func (r *Registry) resolveWriteTargetLocked(key string) (string, *CategoryDefinition) {
	if def, ok := r.canonical[key]; ok {
		return key, def
	}
	if canonical, ok := r.alias[strings.ToLower(key)]; ok {
		if def, ok := r.canonical[canonical]; ok {
			return canonical, def
		}
	}
	return "", nil
}

// Merge transfers source's file count, aliases, and keywords into target,
// then marks source inactive.
func (r *Registry) Merge(source, target string) (MergeResult, error) {
	sourceKey := lookupKey(source)
	targetKey := lookupKey(target)
	if sourceKey == targetKey {
		return MergeResult{}, errs.WrapCode(errs.ErrRegistry, "categoryregistry", "merge", errs.CodeSameCategory, source, nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	srcCanonical, srcDef := r.resolveWriteTargetLocked(sourceKey)
	if srcDef == nil {
		return MergeResult{}, errs.WrapCode(errs.ErrRegistry, "categoryregistry", "merge", errs.CodeNotFound, source, nil)
	}
	tgtCanonical, tgtDef := r.resolveWriteTargetLocked(targetKey)
	if tgtDef == nil {
		return MergeResult{}, errs.WrapCode(errs.ErrRegistry, "categoryregistry", "merge", errs.CodeNotFound, target, nil)
	}
	if srcCanonical == tgtCanonical {
		return MergeResult{}, errs.WrapCode(errs.ErrRegistry, "categoryregistry", "merge", errs.CodeSameCategory, source, nil)
	}

	result := MergeResult{Source: srcCanonical, Target: tgtCanonical}

	for _, alias := range srcDef.Aliases {
		r.registerAliasLocked(alias, tgtCanonical)
		tgtDef.Aliases = append(tgtDef.Aliases, alias)
		result.AliasesTransferred++
	}
	r.registerAliasLocked(srcDef.CanonicalName, tgtCanonical)

	for _, kw := range srcDef.Keywords {
		tgtDef.Keywords = append(tgtDef.Keywords, kw)
		result.KeywordsTransferred++
	}

	tgtDef.FileCount += srcDef.FileCount
	result.FileCountTransferred = srcDef.FileCount
	srcDef.FileCount = 0
	srcDef.Active = false

	r.logger.Info("categories merged",
		logging.String("source", srcCanonical),
		logging.String("target", tgtCanonical),
		logging.Int("aliases_transferred", result.AliasesTransferred),
		logging.String(logging.FieldEventType, "category_merge"))

	return result, nil
}

// ValidateName checks raw against the category naming rules and returns the
// normalized form alongside any issues found. Unlike Normalize, this never
// returns an error; issues are reported in the result.
func ValidateName(raw string) NameValidation {
	var issues []NameIssue

	normalized, err := Normalize(raw)
	if err != nil {
		issues = append(issues, NameIssue{Field: "name", Message: "name must contain at least one alphanumeric character"})
		return NameValidation{Normalized: "", Issues: issues}
	}

	if _, reserved := reservedNames[normalized]; reserved {
		issues = append(issues, NameIssue{Field: "name", Message: "name is reserved: " + normalized})
	}
	if len(normalized) < 2 {
		issues = append(issues, NameIssue{Field: "name", Message: "name must be at least 2 characters"})
	}
	if len(normalized) > 100 {
		issues = append(issues, NameIssue{Field: "name", Message: "name must be at most 100 characters"})
	}
	if !alnumOrSpace.MatchString(normalized) {
		issues = append(issues, NameIssue{Field: "name", Message: "name contains disallowed characters"})
	}

	return NameValidation{Normalized: normalized, Issues: issues}
}

// All returns a sorted snapshot of every registered category, active or not.
func (r *Registry) All() []CategoryDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]CategoryDefinition, 0, len(r.canonical))
	for _, def := range r.canonical {
		out = append(out, def.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CanonicalName < out[j].CanonicalName })
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
