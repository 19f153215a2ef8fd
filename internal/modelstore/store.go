package modelstore

import (
	"encoding/hex"
	"os"
	"time"

	"github.com/gofrs/flock"

	"mediabutler/internal/errs"
)

// Save serializes model to path, guarded by an advisory file lock on
// path+".lock" so concurrent writers never interleave, the way
// internal/daemon guards its single-instance lock file.
func Save(path string, model Model) (ModelPersistenceInfo, error) {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return ModelPersistenceInfo{}, errs.Wrap(errs.ErrData, componentFormat, "save", "failed to acquire model lock", err)
	}
	defer lock.Unlock()

	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
	}

	encoded, err := encode(model)
	if err != nil {
		return ModelPersistenceInfo{}, errs.Wrap(errs.ErrData, componentFormat, "save", "failed to encode model", err)
	}

	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return ModelPersistenceInfo{}, errs.Wrap(errs.ErrData, componentFormat, "save", "failed to write model file", err)
	}

	checksum := encoded[len(encoded)-checksumLen:]
	return ModelPersistenceInfo{
		Path:     path,
		Size:     int64(len(encoded)),
		Metadata: model.Metadata,
		Checksum: hex.EncodeToString(checksum),
		Version:  model.Version,
	}, nil
}

// Load reads and deserializes the model at path. When validation is
// non-nil, it additionally checks schema compatibility (label vocabulary
// size), runs an optional test-prediction, and checks the model's age
// against MaxModelAgeDays, failing ModelValidationFailed with specifics on
// any violation.
func Load(path string, validation *ValidationOptions) (Model, error) {
	lock := flock.New(path + ".lock")
	if err := lock.RLock(); err != nil {
		return Model{}, errs.Wrap(errs.ErrData, componentFormat, "load", "failed to acquire model lock", err)
	}
	defer lock.Unlock()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Model{}, errs.Wrap(errs.ErrData, componentFormat, "load", "failed to read model file", err)
	}

	model, err := decode(raw)
	if err != nil {
		return Model{}, err
	}

	if validation != nil {
		if err := validateLoaded(model, *validation); err != nil {
			return Model{}, err
		}
	}

	return model, nil
}

func validateLoaded(model Model, opts ValidationOptions) error {
	var violations []string

	if opts.ExpectedLabelCount > 0 && len(model.Labels) != opts.ExpectedLabelCount {
		violations = append(violations, "label vocabulary size mismatch")
	}

	if opts.TestPredict != nil {
		for _, filename := range opts.TestFilenames {
			if err := opts.TestPredict(filename); err != nil {
				violations = append(violations, "test prediction failed for "+filename+": "+err.Error())
			}
		}
	}

	if opts.MaxModelAgeDays > 0 {
		age := time.Since(model.CreatedAt)
		if age > time.Duration(opts.MaxModelAgeDays)*24*time.Hour {
			violations = append(violations, "model exceeds maximum age")
		}
	}

	if opts.MinimumAccuracy > 0 {
		if accuracy, ok := model.ValidationMetrics["accuracy"]; ok && accuracy < opts.MinimumAccuracy {
			violations = append(violations, "model accuracy below minimum threshold")
		}
	}

	if len(violations) > 0 {
		return errs.WrapCode(errs.ErrModel, componentFormat, "load", errs.CodeModelValidationFailed, violations[0], nil)
	}
	return nil
}
