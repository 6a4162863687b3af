// models содержит доменные сущности dashboard-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import "time"

// ContentType — вид контента в ленте.
type ContentType string

const (
	TypeNews           ContentType = "news"
	TypeRecommendation ContentType = "recommendation"
	TypeSocial         ContentType = "social"
)

// Valid сообщает, входит ли значение в закрытое множество видов контента.
func (t ContentType) Valid() bool {
	switch t {
	case TypeNews, TypeRecommendation, TypeSocial:
		return true
	}
	return false
}

// ContentItem — единица контента ленты: размеченное объединение трёх видов,
// дискриминатор — поле Type.
//
// Особенности:
//   - ID уникален в пределах собранной ленты; избранное и reorder
//     адресуются только по ID, никогда по позиции;
//   - поля вида заполняются в зависимости от Type, остальные остаются
//     нулевыми и не сериализуются (omitempty);
//   - временные метки — в UTC, на проводе — RFC 3339.
type ContentItem struct {
	// ID — уникальный идентификатор элемента (префикс по виду: news-/rec-/social-).
	ID string `json:"id"`
	// Type — дискриминатор объединения.
	Type ContentType `json:"type"`
	// Title — заголовок карточки.
	Title string `json:"title"`
	// Description — тизер. Может отсутствовать.
	Description string `json:"description,omitempty"`
	// Image — URL обложки. Может отсутствовать.
	Image string `json:"image,omitempty"`
	// URL — ссылка на материал; пустая ссылка отключает основное действие карточки.
	URL string `json:"url,omitempty"`
	// CreatedAt — момент сборки элемента (UTC).
	CreatedAt time.Time `json:"createdAt"`

	// Поля варианта news.

	// Category — категория новости.
	Category string `json:"category,omitempty"`
	// Source — издание-источник.
	Source string `json:"source,omitempty"`
	// Author — автор материала. Может отсутствовать.
	Author string `json:"author,omitempty"`
	// PublishedAt — время публикации у источника.
	PublishedAt time.Time `json:"publishedAt,omitzero"`
	// Content — полный текст (news) либо текст поста (social).
	Content string `json:"content,omitempty"`

	// Поля варианта recommendation.

	// Rating — оценка рекомендации.
	Rating float64 `json:"rating,omitempty"`
	// Genre — жанр.
	Genre string `json:"genre,omitempty"`
	// ReleaseDate — дата выхода в формате YYYY-MM-DD. Может отсутствовать.
	ReleaseDate string `json:"releaseDate,omitempty"`
	// Popularity — индекс популярности. Может отсутствовать.
	Popularity float64 `json:"popularity,omitempty"`

	// Поля варианта social.

	// Username — автор поста (без @).
	Username string `json:"username,omitempty"`
	// Likes — количество лайков.
	Likes int `json:"likes,omitempty"`
	// Comments — количество комментариев. Может отсутствовать.
	Comments int `json:"comments,omitempty"`
	// Timestamp — время поста.
	Timestamp time.Time `json:"timestamp,omitzero"`
	// Hashtags — список хэштегов поста.
	Hashtags []string `json:"hashtags,omitempty"`
}

// Filters — активные фильтры рабочей выборки.
type Filters struct {
	SearchQuery string      `json:"searchQuery"`
	Category    string      `json:"category,omitempty"`
	Type        ContentType `json:"type,omitempty"`
}

// Feed — рабочая выборка ленты.
//
// Items заменяется целиком по завершении загрузки страницы;
// reorder мутирует порядок на месте (через сервис).
type Feed struct {
	Items   []ContentItem `json:"items"`
	Page    int           `json:"page"`
	HasMore bool          `json:"hasMore"`
	Filters Filters       `json:"filters"`
}

// FetchOptions — параметры запроса контента у источника.
//
// Нормализация (page < 1 -> 1, pageSize <= 0 -> default, > max -> max)
// выполняется сервисным слоем по конфигу.
type FetchOptions struct {
	Category string
	Page     int
	PageSize int
}
