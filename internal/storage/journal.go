package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// VisitKind tells how a page came to be shown.
type VisitKind string

const (
	KindVisit  VisitKind = "visit"  // recorded in navigation history
	KindReplay VisitKind = "replay" // back/forward
	KindReload VisitKind = "reload"
)

// JournalEntry is one page display in the current session.
type JournalEntry struct {
	ID        int64
	URL       string
	Title     string
	Kind      VisitKind
	VisitedAt time.Time
}

// Journal is the session's page log. It lives in an in-memory SQLite
// database and is gone when the process exits.
type Journal struct {
	conn *sql.DB
}

// OpenJournal creates an empty in-memory journal.
func OpenJournal() (*Journal, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	// Every connection to ":memory:" is its own database.
	conn.SetMaxOpenConns(1)

	j := &Journal{conn: conn}
	if err := j.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating journal schema: %w", err)
	}
	return j, nil
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS journal (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		url        TEXT    NOT NULL,
		title      TEXT    NOT NULL DEFAULT '',
		kind       TEXT    NOT NULL,
		visited_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_journal_url ON journal(url);
	`
	_, err := j.conn.Exec(schema)
	return err
}

// Close releases the database; its contents are discarded.
func (j *Journal) Close() error {
	if j.conn != nil {
		return j.conn.Close()
	}
	return nil
}

// Add appends an entry.
func (j *Journal) Add(ctx context.Context, url, title string, kind VisitKind) error {
	if url == "" {
		return nil
	}
	_, err := j.conn.ExecContext(ctx,
		`INSERT INTO journal (url, title, kind, visited_at) VALUES (?, ?, ?, ?)`,
		url, title, string(kind), time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("adding journal entry: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first. limit <= 0 means all.
func (j *Journal) List(ctx context.Context, limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.conn.QueryContext(ctx,
		`SELECT id, url, title, kind, visited_at FROM journal ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing journal: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Search returns entries whose URL or title contains query, newest first.
func (j *Journal) Search(ctx context.Context, query string) ([]JournalEntry, error) {
	like := "%" + query + "%"
	rows, err := j.conn.QueryContext(ctx,
		`SELECT id, url, title, kind, visited_at FROM journal
		 WHERE title LIKE ? OR url LIKE ?
		 ORDER BY id DESC`,
		like, like,
	)
	if err != nil {
		return nil, fmt.Errorf("searching journal: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Remove deletes one entry by id. It reports whether a row was removed.
func (j *Journal) Remove(ctx context.Context, id int64) (bool, error) {
	res, err := j.conn.ExecContext(ctx, `DELETE FROM journal WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("removing journal entry: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Clear removes every entry.
func (j *Journal) Clear(ctx context.Context) error {
	if _, err := j.conn.ExecContext(ctx, `DELETE FROM journal`); err != nil {
		return fmt.Errorf("clearing journal: %w", err)
	}
	return nil
}

// Count returns the number of entries.
func (j *Journal) Count(ctx context.Context) (int, error) {
	var n int
	if err := j.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM journal`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting journal: %w", err)
	}
	return n, nil
}

func scanEntries(rows *sql.Rows) ([]JournalEntry, error) {
	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var kind string
		var ts int64
		if err := rows.Scan(&e.ID, &e.URL, &e.Title, &kind, &ts); err != nil {
			return nil, fmt.Errorf("scanning journal row: %w", err)
		}
		e.Kind = VisitKind(kind)
		e.VisitedAt = time.Unix(0, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
