package artifact

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"
)

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS artifacts (
	name       TEXT PRIMARY KEY,
	content    TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`
	upsertSQLite = `INSERT INTO artifacts (name, content, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`
	upsertPostgres = `INSERT INTO artifacts (name, content, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`
)

type sqliteStore struct {
	conn *sql.DB
}

// NewSQLite opens (and creates if needed) a SQLite database at path.
func NewSQLite(ctx context.Context, path string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if _, err := conn.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}
	if _, err := conn.ExecContext(ctx, createTableSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create artifacts table: %w", err)
	}

	return &sqliteStore{conn: conn}, nil
}

func (s *sqliteStore) Put(ctx context.Context, name string, content []byte) error {
	_, err := s.conn.ExecContext(ctx, upsertSQLite, name, string(content), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert %s: %w", name, err)
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.conn.Close()
}

type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to databaseURL and ensures the artifacts table exists.
func NewPostgres(ctx context.Context, databaseURL string) (Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create artifacts table: %w", err)
	}

	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) Put(ctx context.Context, name string, content []byte) error {
	if _, err := s.pool.Exec(ctx, upsertPostgres, name, string(content), time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert %s: %w", name, err)
	}
	return nil
}

func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}
