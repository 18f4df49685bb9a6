package library

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Entry represents a documents row.
type Entry struct {
	ID           string
	Path         string
	Title        string
	Sections     int
	OpenedCount  int
	LastOpenedAt time.Time
}

// Store handles the recent-documents table.
type Store struct {
	db *sql.DB
}

func (s *Store) Close() error { return s.db.Close() }

// Touch records that a document was opened, creating its row on first open.
func (s *Store) Touch(ctx context.Context, path, title string, sections int) (Entry, error) {
	now := Now()
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO documents(id, path, title, sections, opened_count, last_opened_at)
	VALUES (?, ?, ?, ?, 1, ?)
	ON CONFLICT(path) DO UPDATE SET
		title=excluded.title,
		sections=excluded.sections,
		opened_count=opened_count+1,
		last_opened_at=excluded.last_opened_at;
	`, uuid.NewString(), path, title, sections, now)
	if err != nil {
		return Entry{}, err
	}
	return s.ByPath(ctx, path)
}

// ByPath fetches a single entry.
func (s *Store) ByPath(ctx context.Context, path string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
	SELECT id, path, title, sections, opened_count, last_opened_at
	FROM documents WHERE path = ?`, path)
	var e Entry
	err := row.Scan(&e.ID, &e.Path, &e.Title, &e.Sections, &e.OpenedCount, &e.LastOpenedAt)
	return e, err
}

// Recent lists entries by most recent open.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, path, title, sections, opened_count, last_opened_at
	FROM documents ORDER BY last_opened_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Path, &e.Title, &e.Sections, &e.OpenedCount, &e.LastOpenedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Forget removes an entry by path.
func (s *Store) Forget(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE path = ?`, path)
	return err
}
