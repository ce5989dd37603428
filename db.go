package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// migration queries
	createSettingsTableSQL = `
  CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
  )`

	// setting queries
	getSettingSQL    = `SELECT value FROM settings WHERE key = ?`
	upsertSettingSQL = `INSERT INTO settings (key, value) VALUES (?, ?)
  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	includeWeekendsKey = "include_weekends"
)

// Repo stores user preferences. Entered rows are never written here.
type Repo struct {
	db *sql.DB
}

// NewRepo opens the preference database at dbPath, creating it if needed.
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

func (r *Repo) Close() error {
	return r.db.Close()
}

// runs migrations on initial start
func (r *Repo) runMigrations() error {
	tables := []string{
		createSettingsTableSQL,
	}

	for _, tableSQL := range tables {
		if _, err := r.db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// +-----------------------+
// |                       |
// |    Setting Queries    |
// |                       |
// +-----------------------+

// get weekend preference, false when never set
func (r *Repo) IncludeWeekends() (bool, error) {
	var value string
	err := r.db.QueryRow(getSettingSQL, includeWeekendsKey).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error reading weekend setting: %w", err)
	}

	return value == "1", nil
}

func (r *Repo) SetIncludeWeekends(include bool) error {
	value := "0"
	if include {
		value = "1"
	}

	if _, err := r.db.Exec(upsertSettingSQL, includeWeekendsKey, value); err != nil {
		return fmt.Errorf("error saving weekend setting: %w", err)
	}
	return nil
}
