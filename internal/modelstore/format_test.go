package modelstore

import (
	"testing"
	"time"
)

func sampleModel() Model {
	return Model{
		ArchitectureID: "rulepredictor",
		Version:        "v1.0.0",
		CreatedAt:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Metadata:       map[string]string{"trained_by": "offline-pipeline"},
		Labels:         []string{"BREAKING BAD", "THE OFFICE"},
		Weights:        []byte{1, 2, 3, 4, 5},
	}
}

func TestEncodeDecodeRoundTrips(t *testing.T) {
	original := sampleModel()
	encoded, err := encode(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := decode(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ArchitectureID != original.ArchitectureID {
		t.Fatalf("architecture id mismatch: got %q want %q", decoded.ArchitectureID, original.ArchitectureID)
	}
	if decoded.Version != original.Version {
		t.Fatalf("version mismatch: got %q want %q", decoded.Version, original.Version)
	}
	if len(decoded.Labels) != 2 || decoded.Labels[0] != "BREAKING BAD" {
		t.Fatalf("labels mismatch: %v", decoded.Labels)
	}
	if string(decoded.Weights) != string(original.Weights) {
		t.Fatal("weights mismatch")
	}
	if decoded.Metadata["trained_by"] != "offline-pipeline" {
		t.Fatal("metadata mismatch")
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	encoded, _ := encode(sampleModel())
	corrupted := append([]byte(nil), encoded...)
	corrupted[0] = 'X'
	if _, err := decode(corrupted); err == nil {
		t.Fatal("expected IncompatibleFormat error for bad magic")
	}
}

func TestDecodeRejectsChecksumMismatch(t *testing.T) {
	encoded, _ := encode(sampleModel())
	corrupted := append([]byte(nil), encoded...)
	corrupted[len(corrupted)-1] ^= 0xFF
	if _, err := decode(corrupted); err == nil {
		t.Fatal("expected CorruptModel error for checksum mismatch")
	}
}

func TestDecodeRejectsTruncatedInput(t *testing.T) {
	if _, err := decode([]byte("short")); err == nil {
		t.Fatal("expected error for truncated input")
	}
}

func TestFixedWidthBytesRejectsOverlongValue(t *testing.T) {
	_, err := fixedWidthBytes("this-architecture-id-is-way-too-long-for-16-bytes")
	if err == nil {
		t.Fatal("expected error for a value exceeding the fixed field width")
	}
}
