package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"storefront/internal/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore persists the cart in a local sqlite file, one row per
// entry key. It survives process restarts the way browser storage
// survives page reloads.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) runMigrations() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not load migrations: %w", err)
	}

	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) ([]domain.Item, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM cart_entries WHERE key = $1`, entryKey,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart entry: %w", err)
	}

	var items []domain.Item
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		// Corrupt entry. The cart starts empty rather than failing.
		log.WithError(err).Warn("persisted cart entry is corrupt, starting empty")
		return nil, nil
	}

	return sanitizeItems(items), nil
}

func (s *SQLiteStore) Save(ctx context.Context, items []domain.Item) error {
	if items == nil {
		items = []domain.Item{}
	}
	value, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO cart_entries (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		entryKey, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to save cart entry: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM cart_entries WHERE key = $1`, entryKey,
	); err != nil {
		return fmt.Errorf("failed to clear cart entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
