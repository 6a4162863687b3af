package service

import (
	"fmt"
	"strings"

	"github.com/nandeesh88/go-content-dashboard/internal/models"
)

// Section — активный контекст просмотра ленты.
type Section string

const (
	SectionFeed      Section = "feed"
	SectionTrending  Section = "trending"
	SectionFavorites Section = "favorites"
)

// ParseSection разбирает строку секции; пустая строка — feed.
func ParseSection(raw string) (Section, error) {
	switch Section(raw) {
	case "", SectionFeed:
		return SectionFeed, nil
	case SectionTrending:
		return SectionTrending, nil
	case SectionFavorites:
		return SectionFavorites, nil
	}
	return "", fmt.Errorf("parse section %q: %w", raw, ErrInvalidArgument)
}

// Project возвращает стабильную по порядку подпоследовательность items,
// проходящую оба предиката: поисковый и секционный.
//
// Особенности:
//   - пустой query пропускает всё; иначе — подстрочное совпадение по
//     заголовку или описанию без учёта регистра;
//   - trending намеренно показывает то же, что и feed: отдельного
//     критерия у секции нет, это поведение зафиксировано контрактом;
//   - пагинации внутри фильтра нет — «load more» дописывает страницу
//     в items до проекции.
func Project(items []models.ContentItem, query string, section Section, favoriteIDs map[string]struct{}) []models.ContentItem {
	out := make([]models.ContentItem, 0, len(items))
	for _, it := range items {
		if !matchesSearch(it, query) {
			continue
		}
		if !matchesSection(it, section, favoriteIDs) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesSearch(it models.ContentItem, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(it.Title), q) ||
		strings.Contains(strings.ToLower(it.Description), q)
}

func matchesSection(it models.ContentItem, section Section, favoriteIDs map[string]struct{}) bool {
	switch section {
	case SectionFavorites:
		_, ok := favoriteIDs[it.ID]
		return ok
	default:
		// feed и trending — сквозной показ.
		return true
	}
}
