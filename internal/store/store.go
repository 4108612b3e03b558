// Package store is the legacy comment store: raw documentation comment text
// persisted by an external indexer, keyed by symbol, ready to be rendered.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no comment exists for a symbol.
var ErrNotFound = errors.New("comment not found")

// Comment is one stored raw comment.
type Comment struct {
	Symbol    string
	Text      string
	UpdatedAt time.Time
}

// Store is a SQLite-backed comment store.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens (and if needed initializes) a comment store.
// Use ":memory:" for an in-memory database, or a file path for persistence.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS comments (
		symbol TEXT PRIMARY KEY,
		comment TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Put stores or replaces the raw comment for a symbol.
func (s *Store) Put(ctx context.Context, symbol, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO comments (symbol, comment, updated_at) VALUES (?, ?, ?) ON CONFLICT(symbol) DO UPDATE SET comment = excluded.comment, updated_at = excluded.updated_at",
		symbol, text, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert comment: %w", err)
	}
	return nil
}

// Get returns the raw comment for a symbol, or ErrNotFound.
func (s *Store) Get(ctx context.Context, symbol string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var text string
	err := s.db.QueryRowContext(ctx,
		"SELECT comment FROM comments WHERE symbol = ?", symbol,
	).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("symbol %q: %w", symbol, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("query comment: %w", err)
	}
	return text, nil
}

// List returns all stored comments ordered by symbol.
func (s *Store) List(ctx context.Context) ([]Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT symbol, comment, updated_at FROM comments ORDER BY symbol")
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		var updated int64
		if err := rows.Scan(&c.Symbol, &c.Text, &updated); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.UpdatedAt = time.Unix(updated, 0)
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

// Delete removes the comment for a symbol. Deleting an absent symbol is not
// an error.
func (s *Store) Delete(ctx context.Context, symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM comments WHERE symbol = ?", symbol); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
