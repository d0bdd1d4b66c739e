package data

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const DuckDBFileName = "animes.db"

const schema = `
CREATE TABLE IF NOT EXISTS animes (
	id       VARCHAR PRIMARY KEY,
	title    VARCHAR NOT NULL,
	day      VARCHAR NOT NULL,
	episodes BIGINT  NOT NULL
);
CREATE TABLE IF NOT EXISTS bounds (
	slot   INTEGER PRIMARY KEY,
	x      BIGINT,
	y      BIGINT,
	width  BIGINT NOT NULL,
	height BIGINT NOT NULL
);
`

// InitDuckDB opens the database at path, creating parent directories and the
// schema if needed.
func InitDuckDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}

// DuckDBBackend keeps the document in two tables so the collection can be
// queried with SQL.
type DuckDBBackend struct {
	db *sql.DB
}

func NewDuckDBBackend(path string) (*DuckDBBackend, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &DuckDBBackend{db: db}, nil
}

func (b *DuckDBBackend) Load() (*Document, error) {
	doc := NewDocument()

	rows, err := b.db.Query(`SELECT id, title, day, episodes FROM animes`)
	if err != nil {
		return nil, fmt.Errorf("query animes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a Anime
		if err := rows.Scan(&a.ID, &a.Title, &a.Day, &a.Episodes); err != nil {
			return nil, fmt.Errorf("scan anime: %w", err)
		}
		doc.Animes[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate animes: %w", err)
	}

	var (
		x, y          sql.NullInt64
		width, height int
	)
	err = b.db.QueryRow(`SELECT x, y, width, height FROM bounds WHERE slot = 0`).Scan(&x, &y, &width, &height)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("query bounds: %w", err)
	default:
		bounds := Bounds{Width: width, Height: height}
		if x.Valid {
			bounds.X = IntPtr(int(x.Int64))
		}
		if y.Valid {
			bounds.Y = IntPtr(int(y.Int64))
		}
		doc.Bounds = &bounds
	}

	return doc, nil
}

// Save replaces both tables inside one transaction.
func (b *DuckDBBackend) Save(doc *Document) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM animes`); err != nil {
		return fmt.Errorf("clear animes: %w", err)
	}
	for id, a := range doc.Animes {
		if _, err := tx.Exec(
			`INSERT INTO animes (id, title, day, episodes) VALUES (?, ?, ?, ?)`,
			id, a.Title, a.Day, a.Episodes,
		); err != nil {
			return fmt.Errorf("insert anime %s: %w", id, err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM bounds`); err != nil {
		return fmt.Errorf("clear bounds: %w", err)
	}
	if doc.Bounds != nil {
		if _, err := tx.Exec(
			`INSERT INTO bounds (slot, x, y, width, height) VALUES (0, ?, ?, ?, ?)`,
			nullInt(doc.Bounds.X), nullInt(doc.Bounds.Y), doc.Bounds.Width, doc.Bounds.Height,
		); err != nil {
			return fmt.Errorf("insert bounds: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (b *DuckDBBackend) Close() error {
	return b.db.Close()
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
