package trainingdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"mediabutler/internal/categoryregistry"
)

// ImportCSV reads semicolon-separated rows `id;Category;FileName` from path
// and adds each as a sample. It never returns an error: every failure —
// an unreadable file, a malformed row, a rejected sample — is collected
// into the result instead.
func (s *Store) ImportCSV(path string, cfg CsvImportConfig) CsvImportResult {
	var result CsvImportResult

	file, err := os.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("open %s: %v", path, err))
		return result
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("parse %s: %v", path, err))
		return result
	}

	if cfg.HasHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	for i, row := range rows {
		result.RowsRead++
		if len(row) < 3 {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: expected 3 fields (id;Category;FileName), got %d", i, len(row)))
			result.Skipped++
			continue
		}

		category := strings.TrimSpace(row[1])
		filename := strings.TrimSpace(row[2])

		if cfg.NormalizeCategory {
			normalized, err := categoryregistry.Normalize(category)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i, err))
				result.Skipped++
				continue
			}
			category = normalized
		}

		if cfg.ValidateExtensions && len(cfg.AllowedExtensions) > 0 && !hasAllowedExtension(filename, cfg.AllowedExtensions) {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: extension not allowed: %s", i, filename))
			result.Skipped++
			continue
		}

		added, err := s.addSample(filename, category, 1.0, SourceImported, cfg.SkipDuplicates || s.skipDuplicates)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i, err))
			result.Skipped++
			continue
		}
		if !added {
			result.Skipped++
			continue
		}
		result.Imported++
	}

	return result
}
