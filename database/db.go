package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, storageErr("create database directory", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, storageErr("open database", err)
	}

	// Single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, storageErr("open database", err)
	}

	// Keep foreign keys unenforced
	if _, err := db.Exec("PRAGMA foreign_keys=OFF"); err != nil {
		db.Close()
		return nil, storageErr("configure foreign keys", err)
	}

	return &DB{db}, nil
}

// Migrate creates the tables if they do not exist yet. Safe to call on every start.
func (db *DB) Migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			department TEXT,
			phone TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS attendance (
			id INTEGER PRIMARY KEY,
			employee_id INTEGER,
			date TEXT,
			status TEXT,
			FOREIGN KEY (employee_id) REFERENCES employees (id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(date)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return storageErr("migrate", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	if err := db.DB.Close(); err != nil {
		return storageErr("close database", err)
	}
	return nil
}

// Open is New followed by Migrate. The handle is closed again if migration fails.
func Open(dbPath string) (*DB, error) {
	db, err := New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.DB.Close()
		return nil, fmt.Errorf("initialize %s: %w", dbPath, err)
	}

	return db, nil
}
