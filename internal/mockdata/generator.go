// mockdata генерирует синтетический, но структурно валидный контент:
// им питаются mock-источники и fallback-ветка новостного адаптера.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/nandeesh88/go-content-dashboard/internal/models"
)

// Ротация заголовков по категориям. Неизвестная категория -> general.
var newsTitles = map[string][]string{
	"technology":    {"AI Breakthrough Announced", "New Smartphone Features", "Cybersecurity Alert", "Tech Startup IPO"},
	"sports":        {"Championship Victory", "Record-Breaking Performance", "Major Transfer News", "Olympic Qualification"},
	"finance":       {"Market Reaches New High", "Cryptocurrency Surge", "Economic Forecast Released", "Investment Strategy"},
	"entertainment": {"Blockbuster Release", "Award Ceremony Highlights", "Celebrity Interview", "Streaming Service Launch"},
	"health":        {"Medical Research Breakthrough", "Wellness Study Results", "Fitness Innovation", "Mental Health Awareness"},
	"general":       {"Breaking News Update", "Global Event Coverage", "Important Announcement", "Trending Topic"},
}

const newsDescription = "Stay informed with the latest developments in this important story. " +
	"Our reporters bring you comprehensive coverage with expert analysis and insights."

var socialUsernames = []string{
	"techguru", "traveladdict", "foodiefan", "fitnesscoach",
	"bookworm", "musiclover", "photographer", "developer",
}

// Индексы согласованы с socialUsernames: пользователь i пишет contents[i]
// с hashtags[i].
var socialHashtags = [][]string{
	{"#technology", "#innovation", "#AI"},
	{"#travel", "#wanderlust", "#adventure"},
	{"#food", "#cooking", "#delicious"},
	{"#fitness", "#health", "#workout"},
	{"#books", "#reading", "#literature"},
	{"#music", "#concert", "#playlist"},
	{"#photography", "#art", "#creative"},
	{"#coding", "#programming", "#webdev"},
}

var socialContents = []string{
	"Just discovered something amazing! The future is here and it's incredible.",
	"Having the best time exploring new places. Life is an adventure!",
	"This recipe changed my life. You have to try it!",
	"Consistency is key. Keep pushing forward!",
	"Currently reading this masterpiece. Highly recommend!",
	"This song is on repeat all day. Pure perfection!",
	"Captured this moment at golden hour. Nature is beautiful.",
	"Working on an exciting new project. Stay tuned!",
}

var recGenres = []string{"Action", "Drama", "Sci-Fi", "Comedy", "Documentary", "Thriller"}

var recTitles = []string{
	"Hidden Gem Worth Watching", "Critics' Top Pick", "Rising Star Performance",
	"Cult Classic Revisited", "Festival Award Winner", "Binge-Worthy Series",
}

// Generator производит синтетические элементы контента.
//
// Особенности:
//   - кроме потребления источников времени и случайности — чистый:
//     никаких видимых вызывающему побочных эффектов, ошибок нет;
//   - rnd и now инжектируются, чтобы тесты были детерминированными.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// New создаёт генератор с системными источниками времени и случайности.
func New() *Generator {
	return NewWithSources(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewWithSources создаёт генератор с явными источниками (для тестов).
func NewWithSources(rnd *rand.Rand, now func() time.Time) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rnd: rnd, now: now}
}

// News возвращает n новостей указанной категории.
// Время публикации — равномерно в пределах последних 7 суток.
func (g *Generator) News(category string, n int) []models.ContentItem {
	titles, ok := newsTitles[category]
	if !ok {
		titles = newsTitles["general"]
	}

	now := g.now().UTC()
	items := make([]models.ContentItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, models.ContentItem{
			ID:          fmt.Sprintf("news-%s-%s", category, uuid.NewString()),
			Type:        models.TypeNews,
			Title:       fmt.Sprintf("%s - %s", titles[i%len(titles)], now.Format("1/2/2006")),
			Description: newsDescription,
			Image:       fmt.Sprintf("https://picsum.photos/seed/%s-%d/800/600", category, i),
			URL:         fmt.Sprintf("https://example.com/news/%s/%d", category, i),
			Category:    category,
			Source:      "News Network",
			Author:      fmt.Sprintf("Reporter %d", i+1),
			PublishedAt: now.Add(-g.within(7 * 24 * time.Hour)),
			CreatedAt:   now,
			Content:     "Full article content would appear here with detailed information and analysis.",
		})
	}
	return items
}

// SocialPosts возвращает n постов. Временная метка — в пределах
// последних суток, картинка есть примерно у 60% постов.
func (g *Generator) SocialPosts(n int) []models.ContentItem {
	now := g.now().UTC()
	items := make([]models.ContentItem, 0, n)
	for i := 0; i < n; i++ {
		user := i % len(socialUsernames)

		image := ""
		if g.rnd.Float64() > 0.4 {
			image = fmt.Sprintf("https://picsum.photos/seed/social-%d/600/600", i)
		}

		items = append(items, models.ContentItem{
			ID:        fmt.Sprintf("social-%s", uuid.NewString()),
			Type:      models.TypeSocial,
			Title:     fmt.Sprintf("Post by @%s", socialUsernames[user]),
			Username:  socialUsernames[user],
			Content:   socialContents[user],
			Image:     image,
			Likes:     g.rnd.Intn(5000) + 100,
			Comments:  g.rnd.Intn(500) + 10,
			Timestamp: now.Add(-g.within(24 * time.Hour)),
			Hashtags:  append([]string(nil), socialHashtags[user]...),
			CreatedAt: now,
		})
	}
	return items
}

// Recommendations возвращает n рекомендаций с рейтингом в [5.0, 9.9].
func (g *Generator) Recommendations(n int) []models.ContentItem {
	now := g.now().UTC()
	items := make([]models.ContentItem, 0, n)
	for i := 0; i < n; i++ {
		genre := recGenres[i%len(recGenres)]

		item := models.ContentItem{
			ID:          fmt.Sprintf("rec-%s", uuid.NewString()),
			Type:        models.TypeRecommendation,
			Title:       fmt.Sprintf("%s: %s", recTitles[i%len(recTitles)], genre),
			Description: "Curated for you based on what viewers with similar taste enjoyed the most.",
			Image:       fmt.Sprintf("https://picsum.photos/seed/rec-%d/600/400", i),
			URL:         fmt.Sprintf("https://example.com/recommendations/%d", i),
			Rating:      float64(50+g.rnd.Intn(50)) / 10,
			Genre:       genre,
			Popularity:  float64(g.rnd.Intn(1000)),
			CreatedAt:   now,
		}
		// Дата выхода есть не у всех тайтлов.
		if g.rnd.Float64() > 0.3 {
			item.ReleaseDate = now.Add(-g.within(3 * 365 * 24 * time.Hour)).Format("2006-01-02")
		}

		items = append(items, item)
	}
	return items
}

// within возвращает случайную длительность в [0, d).
func (g *Generator) within(d time.Duration) time.Duration {
	return time.Duration(g.rnd.Int63n(int64(d)))
}
