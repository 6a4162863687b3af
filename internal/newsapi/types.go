// newsapi — реализует service.NewsSource поверх NewsAPI v2
// с деградацией на mock-данные.
package newsapi

// response — корневой ответ NewsAPI (/top-headlines и /everything).
type response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []article `json:"articles"`
}

// article — одна статья в ответе NewsAPI.
type article struct {
	Source      articleSource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	// PublishedAt — RFC 3339 в строковом виде; битое значение не считаем
	// фатальным, метка просто остаётся нулевой.
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// articleSource — издание-источник статьи.
type articleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
