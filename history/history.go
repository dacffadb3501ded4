// Package history persists answered queries in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Kind classifies how a query was answered.
const (
	KindWeather = "weather"
	KindSearch  = "search"
)

// Entry is one answered query.
type Entry struct {
	ID        string
	Question  string
	Kind      string
	Answer    string
	Sources   []string
	CreatedAt time.Time
}

// Store is a SQLite-backed history store.
type Store struct {
	db        *sql.DB
	tableName string
}

// Options configures the SQLite connection.
type Options struct {
	Path      string
	TableName string // Default "history"
}

// NewStore opens (and if needed initializes) the history database.
func NewStore(opts Options) (*Store, error) {
	db, err := sql.Open("sqlite3", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	tableName := opts.TableName
	if tableName == "" {
		tableName = "history"
	}

	store := &Store{
		db:        db,
		tableName: tableName,
	}

	if err := store.initSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			question TEXT NOT NULL,
			kind TEXT NOT NULL,
			answer TEXT NOT NULL,
			sources TEXT,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_%s_created_at ON %s (created_at);
	`, s.tableName, s.tableName, s.tableName)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records an answered query. A missing ID or timestamp is filled in.
func (s *Store) Append(ctx context.Context, entry *Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	sourcesJSON, err := json.Marshal(entry.Sources)
	if err != nil {
		return fmt.Errorf("failed to marshal sources: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, question, kind, answer, sources, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.tableName)

	_, err = s.db.ExecContext(ctx, query,
		entry.ID,
		entry.Question,
		entry.Kind,
		entry.Answer,
		string(sourcesJSON),
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	return nil
}

// Recent returns the n most recent entries, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = 10
	}

	query := fmt.Sprintf(`
		SELECT id, question, kind, answer, sources, created_at
		FROM %s
		ORDER BY created_at DESC, id
		LIMIT ?
	`, s.tableName)

	rows, err := s.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var sourcesJSON string
		if err := rows.Scan(&entry.ID, &entry.Question, &entry.Kind, &entry.Answer, &sourcesJSON, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		if sourcesJSON != "" {
			if err := json.Unmarshal([]byte(sourcesJSON), &entry.Sources); err != nil {
				return nil, fmt.Errorf("failed to unmarshal sources: %w", err)
			}
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return entries, nil
}
