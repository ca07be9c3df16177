package builder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/superme-Sophie/manus-dynamic-section/page"
)

// ErrNotFound is returned when a requested section does not exist.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database holding the canonical section
// collection. Content is stored as its per-kind JSON wire shape; the
// ordered list is the rows sorted by ord ascending.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the
// data directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write access, a busy timeout so writers
	// wait instead of failing with SQLITE_BUSY, synchronous=NORMAL to
	// avoid an fsync per transaction.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS sections (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    kind TEXT NOT NULL,
    content TEXT NOT NULL,
    ord INTEGER NOT NULL
);
`)
	return err
}

// List returns every section in canonical order (ord ascending).
// Malformed stored content decodes to the kind's default shape rather
// than failing the whole page.
func (s *Store) List() ([]page.Section, error) {
	rows, err := s.db.Query(`SELECT id, title, kind, content, ord FROM sections ORDER BY ord ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []page.Section
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}
	return sections, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSection(row rowScanner) (page.Section, error) {
	var id, title, kind, content string
	var ord int
	if err := row.Scan(&id, &title, &kind, &content, &ord); err != nil {
		return page.Section{}, err
	}
	k := page.Kind(kind)
	if !k.Valid() {
		k = page.KindText
	}
	return page.Section{
		ID:      id,
		Title:   title,
		Kind:    k,
		Content: page.DecodeContent(k, json.RawMessage(content)),
		Order:   ord,
	}, nil
}

// Get returns a single section by id.
func (s *Store) Get(id string) (page.Section, error) {
	row := s.db.QueryRow(`SELECT id, title, kind, content, ord FROM sections WHERE id = ?`, id)
	return scanSection(row)
}

// Save upserts one section, leaving every other row untouched.
func (s *Store) Save(sec page.Section) error {
	content, err := page.EncodeContent(sec.Content)
	if err != nil {
		return fmt.Errorf("builder: encode section %s: %w", sec.ID, err)
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO sections (id, title, kind, content, ord) VALUES (?, ?, ?, ?, ?)`,
		sec.ID, sec.Title, string(sec.Kind), string(content), sec.Order)
	return err
}

// Delete removes a section by id.
func (s *Store) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM sections WHERE id = ?`, id)
	return err
}

// SaveAll replaces the whole collection transactionally. Structural
// mutations go through here so the dense-order invariant lands on disk
// atomically, never half-applied.
func (s *Store) SaveAll(sections []page.Section) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sections`); err != nil {
		return err
	}
	for _, sec := range sections {
		content, err := page.EncodeContent(sec.Content)
		if err != nil {
			return fmt.Errorf("builder: encode section %s: %w", sec.ID, err)
		}
		if _, err := tx.Exec(`INSERT INTO sections (id, title, kind, content, ord) VALUES (?, ?, ?, ?, ?)`,
			sec.ID, sec.Title, string(sec.Kind), string(content), sec.Order); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Count returns the number of stored sections.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sections`).Scan(&n)
	return n, err
}
