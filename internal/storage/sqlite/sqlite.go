// sqlite — реализация storage.Storage поверх локального sqlite-файла.
// Состояние UI - это три JSON-значения, поэтому схема — одна kv-таблица.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/nandeesh88/go-content-dashboard/internal/models"
	"github.com/nandeesh88/go-content-dashboard/internal/storage"
)

// Ключи персистентного состояния. Имена совпадают с ключами
// localStorage исходного фронтенда — одна схема на оба потребителя.
const (
	keyFavorites   = "favorites"
	keyPreferences = "preferences"
	keyDarkMode    = "darkMode"
)

// Store — sqlite-хранилище состояния.
type Store struct {
	db *sql.DB
}

// New открывает (или создаёт) базу по пути path и накатывает схему.
func New(ctx context.Context, path string) (*Store, error) {
	const op = "storage/sqlite/New"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", op, err)
	}

	// WAL снижает конкуренцию читателей и писателя.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: wal: %w", op, err)
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: migrate: %w", op, err)
	}

	return &Store{db: db}, nil
}

// Close закрывает соединение с базой.
func (s *Store) Close() error {
	return s.db.Close()
}

// Favorites возвращает сохранённый список избранного.
func (s *Store) Favorites(ctx context.Context) ([]models.ContentItem, error) {
	const op = "storage/sqlite/Favorites"

	raw, err := s.get(ctx, keyFavorites)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var items []models.ContentItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, storage.ErrMalformed, err)
	}
	return items, nil
}

// SaveFavorites перезаписывает список избранного целиком.
func (s *Store) SaveFavorites(ctx context.Context, items []models.ContentItem) error {
	const op = "storage/sqlite/SaveFavorites"

	if items == nil {
		items = []models.ContentItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", op, err)
	}
	if err := s.put(ctx, keyFavorites, string(raw)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Preferences возвращает сохранённые настройки.
func (s *Store) Preferences(ctx context.Context) (models.Preferences, error) {
	const op = "storage/sqlite/Preferences"

	raw, err := s.get(ctx, keyPreferences)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}

	var p models.Preferences
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w: %v", op, storage.ErrMalformed, err)
	}
	return p, nil
}

// SavePreferences перезаписывает настройки целиком.
func (s *Store) SavePreferences(ctx context.Context, p models.Preferences) error {
	const op = "storage/sqlite/SavePreferences"

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", op, err)
	}
	if err := s.put(ctx, keyPreferences, string(raw)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DarkMode возвращает сохранённый флаг тёмной темы.
func (s *Store) DarkMode(ctx context.Context) (bool, error) {
	const op = "storage/sqlite/DarkMode"

	raw, err := s.get(ctx, keyDarkMode)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	var enabled bool
	if err := json.Unmarshal([]byte(raw), &enabled); err != nil {
		return false, fmt.Errorf("%s: %w: %v", op, storage.ErrMalformed, err)
	}
	return enabled, nil
}

// SaveDarkMode перезаписывает флаг тёмной темы.
func (s *Store) SaveDarkMode(ctx context.Context, enabled bool) error {
	const op = "storage/sqlite/SaveDarkMode"

	raw, err := json.Marshal(enabled)
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", op, err)
	}
	if err := s.put(ctx, keyDarkMode, string(raw)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// get читает сырое значение по ключу (ErrNotFound при отсутствии).
func (s *Store) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// put пишет значение по ключу (last-write-wins).
func (s *Store) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}
