package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"log/slog"

	_ "modernc.org/sqlite"
)

// Store is the key-value adapter over a local SQLite file: values are
// JSON-serialized text under string keys, one row per key. Writes are
// last-write-wins with no cross-key transactions.
type Store struct {
	conn   *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the backing database and ensures the kv table.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}
	if _, err := conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ensure kv table: %w", err)
	}

	return &Store{conn: conn, logger: logger}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Put serializes value to JSON and persists it under key, overwriting any
// prior value. Serialization and storage failures surface as errors so
// callers never lose data silently.
func (s *Store) Put(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serialize %q: %w", key, err)
	}

	if _, err := s.conn.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(b)); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}

	return nil
}

// Get decodes the value stored under key into dest and reports whether it
// did. An absent key or stored text that does not decode yields (false, nil)
// so the caller can apply its fallback; only storage failures return errors.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	var raw string
	row := s.conn.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}

		return false, fmt.Errorf("get %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.logger.Warn("malformed value in store, using fallback",
			slog.String("key", key),
			slog.Any("err", err),
		)
		return false, nil
	}

	return true, nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.conn.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}

	return nil
}
