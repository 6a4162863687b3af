package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nandeesh88/go-content-dashboard/internal/models"
	"github.com/nandeesh88/go-content-dashboard/pkg/log"
)

// Favorites возвращает сохранённый список избранного.
// Отсутствие ключа — это просто пустой список; storage.ErrMalformed
// прокидывается нетронутым (его ловит error boundary выше).
func (s *Service) Favorites(ctx context.Context) ([]models.ContentItem, error) {
	const op = "service.favorites.Favorites"

	items, err := s.storage.Favorites(ctx)
	if err != nil {
		if isNotFound(err) {
			return []models.ContentItem{}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// ToggleFavorite — инволюция над избранным: удаляет элемент, если его id
// уже в списке, иначе дописывает в конец. Возвращает новое состояние.
//
// Ошибки:
//   - ErrInvalidArgument — элемент без id;
//   - ошибки хранилища — обёрнутые.
func (s *Service) ToggleFavorite(ctx context.Context, item models.ContentItem) ([]models.ContentItem, error) {
	const op = "service.favorites.ToggleFavorite"

	if item.ID == "" {
		return nil, fmt.Errorf("%s: empty id: %w", op, ErrInvalidArgument)
	}

	items, err := s.Favorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	removed := false
	next := make([]models.ContentItem, 0, len(items)+1)
	for _, it := range items {
		if it.ID == item.ID {
			removed = true
			continue
		}
		next = append(next, it)
	}
	if !removed {
		next = append(next, item)
	}

	if err := s.storage.SaveFavorites(ctx, next); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("favorite_toggled",
		slog.String("op", op),
		slog.String("id", item.ID),
		slog.Bool("removed", removed),
		slog.Int("total", len(next)),
	)

	return next, nil
}

// RemoveFavorite удаляет элемент по id. Отсутствующий id — no-op.
func (s *Service) RemoveFavorite(ctx context.Context, id string) ([]models.ContentItem, error) {
	const op = "service.favorites.RemoveFavorite"

	if id == "" {
		return nil, fmt.Errorf("%s: empty id: %w", op, ErrInvalidArgument)
	}

	items, err := s.Favorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	next := make([]models.ContentItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			next = append(next, it)
		}
	}

	if err := s.storage.SaveFavorites(ctx, next); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return next, nil
}

// ClearFavorites опустошает список избранного.
func (s *Service) ClearFavorites(ctx context.Context) error {
	const op = "service.favorites.ClearFavorites"

	if err := s.storage.SaveFavorites(ctx, []models.ContentItem{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ReorderFavorites переставляет элемент избранного с oldIndex на newIndex
// и сохраняет новый порядок.
func (s *Service) ReorderFavorites(ctx context.Context, oldIndex, newIndex int) ([]models.ContentItem, error) {
	const op = "service.favorites.ReorderFavorites"

	items, err := s.Favorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	next, err := Reorder(items, oldIndex, newIndex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.SaveFavorites(ctx, next); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return next, nil
}
