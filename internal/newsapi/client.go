package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nandeesh88/go-content-dashboard/internal/config"
	"github.com/nandeesh88/go-content-dashboard/internal/mockdata"
	"github.com/nandeesh88/go-content-dashboard/internal/models"
	"github.com/nandeesh88/go-content-dashboard/pkg/log"
)

// placeholderKey — значение из .env.example; равнозначно отсутствию ключа.
const placeholderKey = "your_newsapi_key_here"

// Размер генерируемой пачки для локального поиска без ключа.
const mockSearchBatch = 50

// Client — адаптер внешнего новостного API.
//
// Контракт деградации (важная асимметрия, это не баг):
//   - Fetch при отсутствии ключа, сетевой ошибке или не-2xx статусе
//     молча возвращает mock-данные запрошенной категории;
//   - Search в тех же ситуациях с ключом возвращает пустой срез,
//     без ключа — фильтрует сгенерированную пачку локально.
//
// Ошибки транспорта наружу не выходят ни по одному из путей.
type Client struct {
	client *http.Client
	cfg    config.NewsAPIConfig
	gen    *mockdata.Generator
}

// New создаёт адаптер. nil http-клиент заменяется клиентом с таймаутом 15s.
func New(client *http.Client, cfg config.NewsAPIConfig, gen *mockdata.Generator) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if gen == nil {
		gen = mockdata.New()
	}

	return &Client{client: client, cfg: cfg, gen: gen}
}

// hasCredential сообщает, настроен ли реальный ключ API.
func (c *Client) hasCredential() bool {
	return c.cfg.APIKey != "" && c.cfg.APIKey != placeholderKey
}

// Fetch возвращает страницу новостей категории.
//
// Без ключа сеть не трогается вовсе. При любой ошибке живого запроса
// результат подменяется mock-данными того же размера и категории.
func (c *Client) Fetch(ctx context.Context, category string, page, pageSize int) ([]models.ContentItem, error) {
	const op = "newsapi.Fetch"

	if !c.hasCredential() {
		return c.gen.News(category, pageSize), nil
	}

	params := url.Values{}
	params.Set("category", category)
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("language", c.cfg.Language)

	resp, err := c.get(ctx, "/top-headlines", params)
	if err != nil {
		log.From(ctx).Warn("newsapi_fetch_fallback",
			slog.String("op", op),
			slog.String("category", category),
			slog.String("err", err.Error()),
		)
		return c.gen.News(category, pageSize), nil
	}

	return mapArticles(resp.Articles, "news", category), nil
}

// Search возвращает страницу результатов поиска.
//
// Без ключа — локальная фильтрация сгенерированной пачки по подстроке
// в заголовке/описании (без учёта регистра). При ошибке живого запроса —
// пустой срез, mock-данных на этом пути нет.
func (c *Client) Search(ctx context.Context, query string, page, pageSize int) ([]models.ContentItem, error) {
	const op = "newsapi.Search"

	if !c.hasCredential() {
		batch := c.gen.News("general", mockSearchBatch)

		matched := make([]models.ContentItem, 0, pageSize)
		for _, it := range batch {
			if matchesQuery(it, query) {
				matched = append(matched, it)
				if len(matched) == pageSize {
					break
				}
			}
		}
		return matched, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("language", c.cfg.Language)
	params.Set("sortBy", "publishedAt")

	resp, err := c.get(ctx, "/everything", params)
	if err != nil {
		log.From(ctx).Warn("newsapi_search_empty",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return []models.ContentItem{}, nil
	}

	return mapArticles(resp.Articles, "news-search", "general"), nil
}

// get — один GET к API с ключом в заголовке и декодированием ответа.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*response, error) {
	const op = "newsapi.get"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set("X-Api-Key", c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return &out, nil
}

// mapArticles переводит статьи NewsAPI в доменные элементы.
// Свежий синтетический id: <prefix>-<unix_ms>-<index>.
func mapArticles(articles []article, prefix, category string) []models.ContentItem {
	now := time.Now().UTC()

	items := make([]models.ContentItem, 0, len(articles))
	for i, a := range articles {
		published, err := time.Parse(time.RFC3339, a.PublishedAt)
		if err != nil {
			published = time.Time{}
		}

		items = append(items, models.ContentItem{
			ID:          fmt.Sprintf("%s-%d-%d", prefix, now.UnixMilli(), i),
			Type:        models.TypeNews,
			Title:       a.Title,
			Description: a.Description,
			Image:       a.URLToImage,
			URL:         a.URL,
			Category:    category,
			Source:      a.Source.Name,
			Author:      a.Author,
			PublishedAt: published,
			CreatedAt:   now,
			Content:     a.Content,
		})
	}
	return items
}

// matchesQuery — подстрочное совпадение по заголовку/описанию без учёта регистра.
func matchesQuery(it models.ContentItem, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(it.Title), q) ||
		strings.Contains(strings.ToLower(it.Description), q)
}
