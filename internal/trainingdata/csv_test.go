package trainingdata

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestImportCSVParsesRows(t *testing.T) {
	path := writeCSV(t, "1;Breaking Bad;Breaking.Bad.S01E01.mkv\n2;The Office;The.Office.S01E01.mkv\n")
	store := newTestStore(t, false)
	result := store.ImportCSV(path, CsvImportConfig{NormalizeCategory: true})
	if result.RowsRead != 2 {
		t.Fatalf("expected 2 rows read, got %d", result.RowsRead)
	}
	if result.Imported != 2 {
		t.Fatalf("expected 2 imported, got %d (errors: %v)", result.Imported, result.Errors)
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 samples in store, got %d", store.Len())
	}
}

func TestImportCSVSkipsHeaderWhenConfigured(t *testing.T) {
	path := writeCSV(t, "id;Category;FileName\n1;Breaking Bad;Breaking.Bad.S01E01.mkv\n")
	store := newTestStore(t, false)
	result := store.ImportCSV(path, CsvImportConfig{HasHeader: true, NormalizeCategory: true})
	if result.RowsRead != 1 {
		t.Fatalf("expected 1 data row after skipping header, got %d", result.RowsRead)
	}
	if result.Imported != 1 {
		t.Fatalf("expected 1 imported row, got %d (errors: %v)", result.Imported, result.Errors)
	}
}

func TestImportCSVNeverErrorsOnMissingFile(t *testing.T) {
	store := newTestStore(t, false)
	result := store.ImportCSV("/nonexistent/path/file.csv", CsvImportConfig{})
	if len(result.Errors) == 0 {
		t.Fatal("expected a collected error for a missing file")
	}
	if result.Imported != 0 {
		t.Fatal("expected zero imports for a missing file")
	}
}

func TestImportCSVCollectsMalformedRowErrors(t *testing.T) {
	path := writeCSV(t, "1;OnlyTwoFields\n2;Breaking Bad;Breaking.Bad.S01E01.mkv\n")
	store := newTestStore(t, false)
	result := store.ImportCSV(path, CsvImportConfig{NormalizeCategory: true})
	if result.Skipped != 1 {
		t.Fatalf("expected 1 skipped malformed row, got %d", result.Skipped)
	}
	if result.Imported != 1 {
		t.Fatalf("expected 1 imported valid row, got %d", result.Imported)
	}
}

func TestImportCSVRespectsSkipDuplicates(t *testing.T) {
	path := writeCSV(t, "1;Show;dup.mkv\n2;Show;dup.mkv\n")
	store := newTestStore(t, false)
	result := store.ImportCSV(path, CsvImportConfig{NormalizeCategory: true, SkipDuplicates: true})
	if result.Imported != 1 {
		t.Fatalf("expected 1 imported (second is a duplicate), got %d", result.Imported)
	}
	if result.Skipped != 1 {
		t.Fatalf("expected 1 skipped duplicate, got %d", result.Skipped)
	}
}
