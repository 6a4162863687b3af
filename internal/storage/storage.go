// storage определяет контракт персистентного key-value хранилища
// dashboard-сервиса.
package storage

import (
	"context"
	"errors"

	"github.com/nandeesh88/go-content-dashboard/internal/models"
)

var (
	// ErrNotFound — ключ отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrMalformed — значение под ключом не распарсилось.
	// Намеренно не гасится на месте: ловит error boundary над сервисом.
	ErrMalformed = errors.New("malformed stored value")
)

// StateStorage описывает операции над персистентным состоянием UI.
//
// Ключи: favorites (JSON-массив ContentItem), preferences (JSON-объект),
// darkMode (JSON-булево). Гарантий помимо last-write-wins нет.
type StateStorage interface {
	// Favorites возвращает сохранённый список избранного.
	// Если ключ ни разу не писался — ErrNotFound.
	Favorites(ctx context.Context) ([]models.ContentItem, error)
	// SaveFavorites перезаписывает список избранного целиком.
	SaveFavorites(ctx context.Context, items []models.ContentItem) error
	// Preferences возвращает сохранённые настройки (ErrNotFound, если их нет).
	Preferences(ctx context.Context) (models.Preferences, error)
	// SavePreferences перезаписывает настройки целиком.
	SavePreferences(ctx context.Context, p models.Preferences) error
	// DarkMode возвращает сохранённый флаг тёмной темы (ErrNotFound, если его нет).
	DarkMode(ctx context.Context) (bool, error)
	// SaveDarkMode перезаписывает флаг тёмной темы.
	SaveDarkMode(ctx context.Context, enabled bool) error
}

// Storage задаёт контракт доступа к хранилищу для dashboard-сервиса.
type Storage interface {
	StateStorage
	Close() error
}
