package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nandeesh88/go-content-dashboard/internal/models"
	"github.com/nandeesh88/go-content-dashboard/internal/storage"
	"github.com/nandeesh88/go-content-dashboard/pkg/log"
)

// FeedRequest — параметры сборки ленты.
//
// Пустые Categories/Types дозаполняются из сохранённых настроек
// пользователя (или их дефолтов).
type FeedRequest struct {
	Categories []string
	Types      []models.ContentType
	Page       int
	PageSize   int
}

// FetchFeed собирает ленту из активных источников.
//
// Порядок слияния детерминирован: новости в порядке категорий, затем
// рекомендации, затем social-посты. Дубликаты id отбрасываются
// (первый побеждает) — избранное и reorder адресуются по id.
//
// Ошибки:
//   - ErrInvalidArgument — неизвестный вид контента в Types;
//   - ошибки хранилища (чтение настроек) — обёрнутые, кроме ErrNotFound,
//     который заменяется дефолтами;
//   - отмена контекста из mock-источников — прокинута наверх.
func (s *Service) FetchFeed(ctx context.Context, req FeedRequest) (*models.Feed, error) {
	const op = "service.feed.FetchFeed"

	lg := log.From(ctx)

	page, pageSize := s.normalizePage(req.Page, req.PageSize)

	for _, t := range req.Types {
		if !t.Valid() {
			return nil, fmt.Errorf("%s: type %q: %w", op, t, ErrInvalidArgument)
		}
	}

	categories, types := req.Categories, req.Types
	if len(categories) == 0 || len(types) == 0 {
		prefs, err := s.Preferences(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: preferences: %w", op, err)
		}
		if len(categories) == 0 {
			categories = prefs.Categories
		}
		if len(types) == 0 {
			types = prefs.ContentTypes
		}
	}

	enabled := make(map[models.ContentType]struct{}, len(types))
	for _, t := range types {
		enabled[t] = struct{}{}
	}

	var items []models.ContentItem

	if _, ok := enabled[models.TypeNews]; ok {
		for _, category := range categories {
			batch, err := s.news.Fetch(ctx, category, page, pageSize)
			if err != nil {
				// По контракту адаптера сюда доходит только отмена контекста.
				return nil, fmt.Errorf("%s: news %s: %w", op, category, err)
			}
			items = append(items, batch...)
		}
	}

	if _, ok := enabled[models.TypeRecommendation]; ok {
		batch, err := s.recs.Recommendations(ctx, pageSize)
		if err != nil {
			return nil, fmt.Errorf("%s: recommendations: %w", op, err)
		}
		items = append(items, batch...)
	}

	if _, ok := enabled[models.TypeSocial]; ok {
		batch, err := s.social.Posts(ctx, "", pageSize)
		if err != nil {
			return nil, fmt.Errorf("%s: social: %w", op, err)
		}
		items = append(items, batch...)
	}

	items = dedupeByID(items)

	lg.Info("feed_assembled",
		slog.String("op", op),
		slog.Int("page", page),
		slog.Int("items", len(items)),
		slog.Int("categories", len(categories)),
	)

	return &models.Feed{
		Items:   items,
		Page:    page,
		HasMore: len(items) >= pageSize,
	}, nil
}

// SearchFeed возвращает страницу результатов поиска по новостному источнику.
//
// Ошибки:
//   - ErrInvalidArgument — пустой запрос;
//   - сбои живого API по контракту адаптера приходят пустым результатом.
func (s *Service) SearchFeed(ctx context.Context, query string, page, pageSize int) (*models.Feed, error) {
	const op = "service.feed.SearchFeed"

	if query == "" {
		return nil, fmt.Errorf("%s: empty query: %w", op, ErrInvalidArgument)
	}

	page, pageSize = s.normalizePage(page, pageSize)

	items, err := s.news.Search(ctx, query, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("search_done",
		slog.String("op", op),
		slog.Int("items", len(items)),
	)

	return &models.Feed{
		Items:   items,
		Page:    page,
		HasMore: len(items) == pageSize,
		Filters: models.Filters{SearchQuery: query},
	}, nil
}

// ProjectFeed применяет поисковый и секционный предикаты к items,
// подтягивая множество избранных id из хранилища.
func (s *Service) ProjectFeed(ctx context.Context, items []models.ContentItem, query string, section Section) ([]models.ContentItem, error) {
	const op = "service.feed.ProjectFeed"

	favs, err := s.Favorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids := make(map[string]struct{}, len(favs))
	for _, f := range favs {
		ids[f.ID] = struct{}{}
	}

	return Project(items, query, section, ids), nil
}

// SocialPosts проксирует social-источник (лента по хэштегу).
func (s *Service) SocialPosts(ctx context.Context, hashtag string, count int) ([]models.ContentItem, error) {
	const op = "service.feed.SocialPosts"

	_, count = s.normalizePage(1, count)

	items, err := s.social.Posts(ctx, hashtag, count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// SearchSocialPosts проксирует поиск по social-постам.
func (s *Service) SearchSocialPosts(ctx context.Context, query string, count int) ([]models.ContentItem, error) {
	const op = "service.feed.SearchSocialPosts"

	if query == "" {
		return nil, fmt.Errorf("%s: empty query: %w", op, ErrInvalidArgument)
	}

	_, count = s.normalizePage(1, count)

	items, err := s.social.SearchPosts(ctx, query, count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// UserSocialPosts проксирует ленту постов конкретного автора.
func (s *Service) UserSocialPosts(ctx context.Context, username string, count int) ([]models.ContentItem, error) {
	const op = "service.feed.UserSocialPosts"

	if username == "" {
		return nil, fmt.Errorf("%s: empty username: %w", op, ErrInvalidArgument)
	}

	_, count = s.normalizePage(1, count)

	items, err := s.social.UserPosts(ctx, username, count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Recommendations проксирует источник рекомендаций.
func (s *Service) Recommendations(ctx context.Context, count int) ([]models.ContentItem, error) {
	const op = "service.feed.Recommendations"

	_, count = s.normalizePage(1, count)

	items, err := s.recs.Recommendations(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// dedupeByID отбрасывает повторные id, сохраняя порядок первых вхождений.
func dedupeByID(items []models.ContentItem) []models.ContentItem {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out
}

// isNotFound — короткий помощник для чтений с дефолтом.
func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
