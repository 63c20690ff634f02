package postgres

import (
	"context"
	"database/sql"
	"time"
)

type sqlRows struct {
	rows   *sql.Rows
	cancel context.CancelFunc
}

func (r *sqlRows) Next() bool {
	return r.rows.Next()
}

func (r *sqlRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *sqlRows) Err() error {
	return r.rows.Err()
}

func (r *sqlRows) Close() error {
	defer r.cancel()
	return r.rows.Close()
}

type sqlDB struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// NewSQLDB wraps db; every query gets queryTimeout unless it is zero.
func NewSQLDB(db *sql.DB, queryTimeout time.Duration) DB {
	return &sqlDB{db: db, queryTimeout: queryTimeout}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	cancel := context.CancelFunc(func() {})
	if s.queryTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		cancel()
		return nil, err
	}
	return &sqlRows{rows: rows, cancel: cancel}, nil
}
