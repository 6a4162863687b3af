// social — mock-источник постов: живого API за ним нет, интеграция
// с реальными платформами — отдельная задача. Фиксированная задержка
// эмулирует сетевую латентность.
package social

import (
	"context"
	"strings"
	"time"

	"github.com/nandeesh88/go-content-dashboard/internal/mockdata"
	"github.com/nandeesh88/go-content-dashboard/internal/models"
)

// Source выдаёт синтетические social-посты с искусственной задержкой.
type Source struct {
	gen     *mockdata.Generator
	latency time.Duration
}

// New создаёт источник. Отрицательная задержка трактуется как нулевая.
func New(gen *mockdata.Generator, latency time.Duration) *Source {
	if gen == nil {
		gen = mockdata.New()
	}
	if latency < 0 {
		latency = 0
	}
	return &Source{gen: gen, latency: latency}
}

// Posts возвращает count постов; непустой hashtag оставляет только посты,
// один из хэштегов которых содержит его как подстроку (без учёта регистра).
func (s *Source) Posts(ctx context.Context, hashtag string, count int) ([]models.ContentItem, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	posts := s.gen.SocialPosts(count)
	if hashtag == "" {
		return posts, nil
	}

	needle := strings.ToLower(hashtag)
	matched := make([]models.ContentItem, 0, len(posts))
	for _, p := range posts {
		for _, tag := range p.Hashtags {
			if strings.Contains(strings.ToLower(tag), needle) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched, nil
}

// SearchPosts ищет по тексту, автору и хэштегам в пачке из 50 постов,
// срезая результат до count.
func (s *Source) SearchPosts(ctx context.Context, query string, count int) ([]models.ContentItem, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]models.ContentItem, 0, count)
	for _, p := range s.gen.SocialPosts(50) {
		if matchesPost(p, q) {
			matched = append(matched, p)
			if len(matched) == count {
				break
			}
		}
	}
	return matched, nil
}

// UserPosts возвращает count постов от имени указанного пользователя.
func (s *Source) UserPosts(ctx context.Context, username string, count int) ([]models.ContentItem, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	posts := s.gen.SocialPosts(count)
	for i := range posts {
		posts[i].Username = username
		posts[i].Title = "Post by @" + username
	}
	return posts, nil
}

// wait выдерживает искусственную задержку, уважая отмену контекста.
func (s *Source) wait(ctx context.Context) error {
	if s.latency == 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.latency)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func matchesPost(p models.ContentItem, q string) bool {
	if strings.Contains(strings.ToLower(p.Content), q) ||
		strings.Contains(strings.ToLower(p.Username), q) {
		return true
	}
	for _, tag := range p.Hashtags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
