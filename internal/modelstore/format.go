package modelstore

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"mediabutler/internal/errs"
)

const (
	magic         = "MBMODEL\x00"
	formatVersion = uint32(1)

	fixedFieldLen = 16 // architecture id / model version, fixed-width UTF-8, null-padded
	checksumLen   = sha256.Size
)

const componentFormat = "modelstore"

// persistedMetadata is the envelope written into the metadata JSON block.
// It carries the caller's free-form Metadata alongside the training-pipeline
// fields spec.md's Model row requires (algorithm tag, hyperparameters,
// training/validation metrics) so they round-trip through Save/Load instead
// of being silently dropped.
type persistedMetadata struct {
	UserMetadata      map[string]string  `json:"user_metadata,omitempty"`
	AlgorithmTag      string             `json:"algorithm_tag,omitempty"`
	Hyperparameters   map[string]float64 `json:"hyperparameters,omitempty"`
	TrainingMetrics   map[string]float64 `json:"training_metrics,omitempty"`
	ValidationMetrics map[string]float64 `json:"validation_metrics,omitempty"`
}

// encode serializes model into the on-disk layout: magic, format version,
// fixed-width architecture id and model version, created-at millis,
// length-prefixed metadata JSON (the user metadata plus algorithm tag,
// hyperparameters, and training/validation metrics), length-prefixed label
// vocabulary, a length-prefixed weights blob, and a trailing sha256 checksum
// over everything before it.
func encode(model Model) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(magic)
	if err := binary.Write(&buf, binary.LittleEndian, formatVersion); err != nil {
		return nil, err
	}

	archID, err := fixedWidthBytes(model.ArchitectureID)
	if err != nil {
		return nil, err
	}
	buf.Write(archID)

	version, err := fixedWidthBytes(model.Version)
	if err != nil {
		return nil, err
	}
	buf.Write(version)

	if err := binary.Write(&buf, binary.LittleEndian, model.CreatedAt.UnixMilli()); err != nil {
		return nil, err
	}

	metadataJSON, err := json.Marshal(persistedMetadata{
		UserMetadata:      model.Metadata,
		AlgorithmTag:      model.AlgorithmTag,
		Hyperparameters:   model.Hyperparameters,
		TrainingMetrics:   model.TrainingMetrics,
		ValidationMetrics: model.ValidationMetrics,
	})
	if err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(metadataJSON))); err != nil {
		return nil, err
	}
	buf.Write(metadataJSON)

	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(model.Labels))); err != nil {
		return nil, err
	}
	for _, label := range model.Labels {
		labelBytes := []byte(label)
		if err := binary.Write(&buf, binary.LittleEndian, uint16(len(labelBytes))); err != nil {
			return nil, err
		}
		buf.Write(labelBytes)
	}

	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(model.Weights))); err != nil {
		return nil, err
	}
	buf.Write(model.Weights)

	sum := sha256.Sum256(buf.Bytes())
	buf.Write(sum[:])

	return buf.Bytes(), nil
}

func fixedWidthBytes(s string) ([]byte, error) {
	raw := []byte(s)
	if len(raw) > fixedFieldLen {
		return nil, fmt.Errorf("value %q exceeds fixed field width of %d bytes", s, fixedFieldLen)
	}
	out := make([]byte, fixedFieldLen)
	copy(out, raw)
	return out, nil
}

// decode parses raw into a Model, verifying the magic, format version, and
// trailing checksum. Checksum mismatch fails CorruptModel; magic/version
// mismatch fails IncompatibleFormat.
func decode(raw []byte) (Model, error) {
	minLen := len(magic) + 4 + fixedFieldLen*2 + 8 + 4 + 4 + 4 + checksumLen
	if len(raw) < minLen {
		return Model{}, errs.WrapCode(errs.ErrModel, componentFormat, "load", errs.CodeIncompatibleFormat, "file too small to be a model", nil)
	}

	if string(raw[:len(magic)]) != magic {
		return Model{}, errs.WrapCode(errs.ErrModel, componentFormat, "load", errs.CodeIncompatibleFormat, "bad magic bytes", nil)
	}

	body := raw[:len(raw)-checksumLen]
	trailer := raw[len(raw)-checksumLen:]
	sum := sha256.Sum256(body)
	if !bytes.Equal(sum[:], trailer) {
		return Model{}, errs.WrapCode(errs.ErrModel, componentFormat, "load", errs.CodeCorruptModel, "checksum mismatch", nil)
	}

	r := bytes.NewReader(raw)
	if _, err := r.Seek(int64(len(magic)), 0); err != nil {
		return Model{}, err
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return Model{}, err
	}
	if version != formatVersion {
		return Model{}, errs.WrapCode(errs.ErrModel, componentFormat, "load", errs.CodeIncompatibleFormat, fmt.Sprintf("unsupported format version %d", version), nil)
	}

	archID := make([]byte, fixedFieldLen)
	if _, err := r.Read(archID); err != nil {
		return Model{}, err
	}
	modelVersion := make([]byte, fixedFieldLen)
	if _, err := r.Read(modelVersion); err != nil {
		return Model{}, err
	}

	var createdAtMillis int64
	if err := binary.Read(r, binary.LittleEndian, &createdAtMillis); err != nil {
		return Model{}, err
	}

	var metadataLen uint32
	if err := binary.Read(r, binary.LittleEndian, &metadataLen); err != nil {
		return Model{}, err
	}
	metadataJSON := make([]byte, metadataLen)
	if _, err := r.Read(metadataJSON); err != nil {
		return Model{}, err
	}
	var meta persistedMetadata
	if err := json.Unmarshal(metadataJSON, &meta); err != nil {
		return Model{}, errs.WrapCode(errs.ErrModel, componentFormat, "load", errs.CodeCorruptModel, "malformed metadata block", err)
	}

	var labelCount uint32
	if err := binary.Read(r, binary.LittleEndian, &labelCount); err != nil {
		return Model{}, err
	}
	labels := make([]string, 0, labelCount)
	for i := uint32(0); i < labelCount; i++ {
		var labelLen uint16
		if err := binary.Read(r, binary.LittleEndian, &labelLen); err != nil {
			return Model{}, err
		}
		labelBytes := make([]byte, labelLen)
		if _, err := r.Read(labelBytes); err != nil {
			return Model{}, err
		}
		labels = append(labels, string(labelBytes))
	}

	var weightsLen uint32
	if err := binary.Read(r, binary.LittleEndian, &weightsLen); err != nil {
		return Model{}, err
	}
	weights := make([]byte, weightsLen)
	if _, err := r.Read(weights); err != nil {
		return Model{}, err
	}

	return Model{
		ArchitectureID:    trimNulls(archID),
		Version:           trimNulls(modelVersion),
		AlgorithmTag:      meta.AlgorithmTag,
		Hyperparameters:   meta.Hyperparameters,
		CreatedAt:         timeFromMillis(createdAtMillis),
		Metadata:          meta.UserMetadata,
		Labels:            labels,
		Weights:           weights,
		TrainingMetrics:   meta.TrainingMetrics,
		ValidationMetrics: meta.ValidationMetrics,
	}, nil
}

func timeFromMillis(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}

func trimNulls(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end])
}
