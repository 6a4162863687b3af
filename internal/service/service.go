// service содержит бизнес-логику dashboard-сервиса: агрегацию
// источников, фильтрацию ленты, избранное, настройки и reorder.
package service

import (
	"context"
	"errors"

	"github.com/nandeesh88/go-content-dashboard/internal/config"
	"github.com/nandeesh88/go-content-dashboard/internal/models"
	"github.com/nandeesh88/go-content-dashboard/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: 404/not_found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — некорректные входные аргументы.
	// Транспорт: 400/invalid_argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLastContentType — попытка выключить последний оставшийся вид
	// контента. Состояние не меняется; транспорт отдаёт текущее состояние
	// без ошибки (контракт «молчаливого отказа»), сентинел нужен тестам
	// и логам.
	ErrLastContentType = errors.New("last content type")
)

// NewsSource — адаптер новостного источника (живой API либо mock-fallback).
type NewsSource interface {
	// Fetch возвращает страницу новостей категории. По контракту адаптера
	// транспортные сбои не доходят сюда ошибкой — деградация в mock.
	Fetch(ctx context.Context, category string, page, pageSize int) ([]models.ContentItem, error)
	// Search возвращает страницу результатов поиска (пустую при сбое).
	Search(ctx context.Context, query string, page, pageSize int) ([]models.ContentItem, error)
}

// SocialSource — источник social-постов.
type SocialSource interface {
	Posts(ctx context.Context, hashtag string, count int) ([]models.ContentItem, error)
	SearchPosts(ctx context.Context, query string, count int) ([]models.ContentItem, error)
	UserPosts(ctx context.Context, username string, count int) ([]models.ContentItem, error)
}

// RecommendationSource — источник рекомендаций.
type RecommendationSource interface {
	Recommendations(ctx context.Context, count int) ([]models.ContentItem, error)
}

// Service — бизнес-логика dashboard-сервиса.
type Service struct {
	storage storage.Storage
	news    NewsSource
	social  SocialSource
	recs    RecommendationSource
	cfg     config.Config
}

// New создаёт новый экземпляр Service.
func New(st storage.Storage, news NewsSource, social SocialSource, recs RecommendationSource, cfg config.Config) *Service {
	return &Service{
		storage: st,
		news:    news,
		social:  social,
		recs:    recs,
		cfg:     cfg,
	}
}

// normalizePage приводит page/pageSize к серверным лимитам:
// page < 1 -> 1; pageSize <= 0 -> default; pageSize > max -> max.
func (s *Service) normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.cfg.Limits.Default
	}
	if s.cfg.Limits.Max > 0 && pageSize > s.cfg.Limits.Max {
		pageSize = s.cfg.Limits.Max
	}
	return page, pageSize
}
