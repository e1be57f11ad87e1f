package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gymtrack/internal/db"
)

// collection stores one JSON document of type T under a fixed key.
type collection[T any] struct {
	db  db.DBTX
	key string
}

func (c collection[T]) load(ctx context.Context) (T, error) {
	var zero T
	var raw string
	err := c.db.QueryRowContext(ctx, `SELECT value FROM collections WHERE key = ?`, c.key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, fmt.Errorf("%s: %w", c.key, ErrNotFound)
		}
		return zero, fmt.Errorf("loading %s: %w", c.key, err)
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return zero, fmt.Errorf("%s: %w: %v", c.key, ErrCorrupt, err)
	}
	return v, nil
}

func (c collection[T]) save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.key, err)
	}
	_, err = c.db.ExecContext(ctx, `INSERT INTO collections (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at,
		version = collections.version + 1`,
		c.key, string(data), nowUTC())
	if err != nil {
		return fmt.Errorf("saving %s: %w", c.key, err)
	}
	return nil
}

func (c collection[T]) delete(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM collections WHERE key = ?`, c.key); err != nil {
		return fmt.Errorf("deleting %s: %w", c.key, err)
	}
	return nil
}

// SQLiteCollectionInfoRepo reports storage metadata for every collection.
type SQLiteCollectionInfoRepo struct {
	db db.DBTX
}

func NewSQLiteCollectionInfoRepo(conn db.DBTX) *SQLiteCollectionInfoRepo {
	return &SQLiteCollectionInfoRepo{db: conn}
}

func (r *SQLiteCollectionInfoRepo) List(ctx context.Context) ([]CollectionInfo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, length(value), version, updated_at FROM collections ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	defer rows.Close()

	var out []CollectionInfo
	for rows.Next() {
		var info CollectionInfo
		var updated string
		if err := rows.Scan(&info.Key, &info.Bytes, &info.Version, &updated); err != nil {
			return nil, fmt.Errorf("scanning collection info: %w", err)
		}
		if t, err := time.Parse(timeLayout, updated); err == nil {
			info.UpdatedAt = t
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating collections: %w", err)
	}
	return out, nil
}
