package rgbfeatures

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
	CREATE TABLE rgb_features (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		folder TEXT NOT NULL,
		blue REAL NOT NULL,
		green REAL NOT NULL,
		red REAL NOT NULL,
		concentration_label TEXT
	);
`

// SaveSQLite writes records to the rgb_features table of the SQLite database
// at path, replacing any previous contents of that table. Rows are inserted
// in record order; a missing label is stored as NULL.
func SaveSQLite(path string, records []ImageRecord) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DROP TABLE IF EXISTS rgb_features`); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}
	if _, err := tx.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO rgb_features (filename, folder, blue, green, red, concentration_label)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		var label sql.NullString
		if r.Label != nil {
			label = sql.NullString{String: *r.Label, Valid: true}
		}
		if _, err := stmt.Exec(r.Filename, r.Folder, r.Blue, r.Green, r.Red, label); err != nil {
			return fmt.Errorf("failed to insert %s: %w", r.RelPath(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
