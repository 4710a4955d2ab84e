package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// migration queries
	createEntriesTableSQL = `
  CREATE TABLE IF NOT EXISTS altman_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  entry_date TEXT,
  entry_time TEXT,
  sleep INTEGER,
  speech INTEGER,
  activity INTEGER,
  cheer INTEGER,
  confidence INTEGER,
  summary INTEGER
  )`

	// entry queries
	insertEntrySQL = `INSERT INTO altman_entries (
  entry_date, entry_time, sleep, speech, activity, cheer, confidence, summary
  ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	listEntriesSQL  = `SELECT id, entry_date, entry_time, sleep, speech, activity, cheer, confidence, summary FROM altman_entries ORDER BY id`
	deleteEntrySQL  = `DELETE FROM altman_entries WHERE id = ?`
	countEntriesSQL = `SELECT COUNT(*) FROM altman_entries`
)

// ErrStoreUnavailable is returned by every Repo operation when the store
// could not be opened at startup. Callers degrade instead of crashing.
var ErrStoreUnavailable = errors.New("store unavailable")

type Repo struct {
	db *sql.DB
}

// EnsureStore makes sure a store file exists at path before the Repo opens
// it. A missing file is seeded from the template when one exists, otherwise
// an empty store is initialized. Calling it again is a no-op; an existing
// store is never overwritten.
func EnsureStore(path, templatePath string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			return copyFile(templatePath, path)
		}
	}

	// no template, initialize an empty store
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open template: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy template: %w", err)
	}
	return out.Sync()
}

func NewRepo(dbPath string) (*Repo, error) {
	// ensure directory exists
	err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// verify connection with database
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := &Repo{db: db}

	// run migrations
	if err := repo.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

// Close is safe on a nil or already closed Repo.
func (r *Repo) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

// runs migrations on initial start
func (r *Repo) runMigrations() error {
	tables := []string{
		createEntriesTableSQL,
	}

	for _, tableSQL := range tables {
		if _, err := r.db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// checkBindCount compares a statement's placeholders against the values
// about to be bound. It runs before anything is handed to the driver, so a
// mismatch means zero writes.
func checkBindCount(stmt string, values []any) error {
	if n := strings.Count(stmt, "?"); n != len(values) {
		return fmt.Errorf("bind value mismatch: statement has %d placeholders, got %d values", n, len(values))
	}
	return nil
}

// +---------------------+
// |                     |
// |    Entry Queries    |
// |                     |
// +---------------------+

// InsertEntry writes one record as a single parameterized statement and
// returns the assigned id. The bind-value count is checked against the
// statement's placeholders before anything touches the database, so a
// mismatch performs zero writes.
func (r *Repo) InsertEntry(e Entry) (int64, error) {
	if r == nil || r.db == nil {
		return 0, ErrStoreUnavailable
	}

	bindValues := []any{e.Date, e.Time, e.Sleep, e.Speech, e.Activity, e.Cheer, e.Confidence, e.Summary}
	if err := checkBindCount(insertEntrySQL, bindValues); err != nil {
		return 0, err
	}

	res, err := r.db.Exec(insertEntrySQL, bindValues...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}
	return res.LastInsertId()
}

// ListEntries returns every stored record, oldest first.
func (r *Repo) ListEntries() ([]Entry, error) {
	if r == nil || r.db == nil {
		return nil, ErrStoreUnavailable
	}

	rows, err := r.db.Query(listEntriesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Date, &e.Time, &e.Sleep, &e.Speech, &e.Activity, &e.Cheer, &e.Confidence, &e.Summary); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// DeleteEntries removes whole rows by id.
func (r *Repo) DeleteEntries(ids ...int64) error {
	if r == nil || r.db == nil {
		return ErrStoreUnavailable
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, id := range ids {
		if _, err := tx.Exec(deleteEntrySQL, id); err != nil {
			return fmt.Errorf("failed to delete entry %d: %w", id, err)
		}
	}

	return tx.Commit()
}

// CountEntries returns the number of stored records.
func (r *Repo) CountEntries() (int, error) {
	if r == nil || r.db == nil {
		return 0, ErrStoreUnavailable
	}

	var n int
	if err := r.db.QueryRow(countEntriesSQL).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
