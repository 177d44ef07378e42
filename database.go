package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// initDB creates the schema if absent. Safe to call repeatedly.
func initDB(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		excerpt TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		published BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}

// seedDB inserts the example posts when the table is empty. It checks the
// row count first so repeated startups never duplicate content.
func seedDB(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	stmt := `
		INSERT INTO posts (title, content, excerpt, author, slug, published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for _, post := range fallbackPosts() {
		_, err := db.Exec(stmt, post.Title, post.Content, post.Excerpt,
			post.Author, post.Slug, post.Published, post.CreatedAt, post.UpdatedAt)
		if err != nil {
			return fmt.Errorf("seeding post %q: %w", post.Slug, err)
		}
	}

	slog.Info("seeded example posts", "count", len(fallbackPosts()))
	return nil
}

func seedSettings(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM settings WHERE key = 'intro'").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaultIntro := "Welcome! This is a small personal blog about web development and whatever else comes to mind."
	_, err := db.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", "intro", defaultIntro)
	return err
}
