package trainingdata

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists training samples to a SQLite database file, giving
// the in-memory Store a durable backing beyond CSV import/export for
// deployments that accumulate samples over a long daemon lifetime.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS training_samples (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	category TEXT NOT NULL,
	confidence REAL NOT NULL,
	source TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	verified INTEGER NOT NULL
)`

// OpenSQLiteStore opens (creating if necessary) a SQLite database at path
// and ensures its schema exists.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite training store: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create training_samples schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Persist upserts every sample into the database, keyed by ID.
func (s *SQLiteStore) Persist(samples []TrainingSample) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
INSERT INTO training_samples (id, filename, category, confidence, source, created_at, verified)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	filename=excluded.filename, category=excluded.category, confidence=excluded.confidence,
	source=excluded.source, created_at=excluded.created_at, verified=excluded.verified`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, sample := range samples {
		verified := 0
		if sample.Verified {
			verified = 1
		}
		if _, err := stmt.Exec(sample.ID, sample.Filename, sample.Category, sample.Confidence, string(sample.Source), sample.CreatedAt.UnixMilli(), verified); err != nil {
			tx.Rollback()
			return fmt.Errorf("upsert sample %s: %w", sample.ID, err)
		}
	}
	return tx.Commit()
}

// Load returns every sample currently stored in the database, ordered by
// created_at ascending.
func (s *SQLiteStore) Load() ([]TrainingSample, error) {
	rows, err := s.db.Query(`SELECT id, filename, category, confidence, source, created_at, verified FROM training_samples ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query training_samples: %w", err)
	}
	defer rows.Close()

	var out []TrainingSample
	for rows.Next() {
		var (
			sample      TrainingSample
			source      string
			createdAtMS int64
			verified    int
		)
		if err := rows.Scan(&sample.ID, &sample.Filename, &sample.Category, &sample.Confidence, &source, &createdAtMS, &verified); err != nil {
			return nil, fmt.Errorf("scan training sample: %w", err)
		}
		sample.Source = Source(source)
		sample.CreatedAt = time.UnixMilli(createdAtMS)
		sample.Verified = verified != 0
		out = append(out, sample)
	}
	return out, rows.Err()
}
