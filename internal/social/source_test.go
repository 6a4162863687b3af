package social

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nandeesh88/go-content-dashboard/internal/mockdata"
)

// Покрытие:
//  - Posts: ровно count постов без фильтра; фильтр по хэштегу оставляет
//    только посты с совпадающим тегом;
//  - SearchPosts: матч по тексту/автору/хэштегам, срез до count;
//  - UserPosts: у всех постов подменяется автор;
//  - отменённый контекст -> ctx.Err() вместо результата.

func newSource(latency time.Duration) *Source {
	gen := mockdata.NewWithSources(rand.New(rand.NewSource(7)), nil)
	return New(gen, latency)
}

func TestPosts_CountAndHashtagFilter(t *testing.T) {
	t.Parallel()

	s := newSource(0)

	posts, err := s.Posts(context.Background(), "", 15)
	require.NoError(t, err)
	require.Len(t, posts, 15)

	tagged, err := s.Posts(context.Background(), "#travel", 16)
	require.NoError(t, err)
	require.NotEmpty(t, tagged)
	for _, p := range tagged {
		require.Contains(t, p.Hashtags, "#travel")
	}
}

func TestSearchPosts_MatchesUsernameAndTruncates(t *testing.T) {
	t.Parallel()

	s := newSource(0)

	// В ротации 8 пользователей на пачку из 50 — "developer" встречается
	// минимум 6 раз; count=3 проверяет срез.
	posts, err := s.SearchPosts(context.Background(), "DEVELOPER", 3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for _, p := range posts {
		require.Equal(t, "developer", p.Username)
	}

	none, err := s.SearchPosts(context.Background(), "xyznonexistent", 10)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestUserPosts_OverridesAuthor(t *testing.T) {
	t.Parallel()

	s := newSource(0)

	posts, err := s.UserPosts(context.Background(), "alice", 5)
	require.NoError(t, err)
	require.Len(t, posts, 5)
	for _, p := range posts {
		require.Equal(t, "alice", p.Username)
		require.Equal(t, "Post by @alice", p.Title)
	}
}

func TestPosts_CancelledContext(t *testing.T) {
	t.Parallel()

	s := newSource(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Posts(ctx, "", 5)
	require.ErrorIs(t, err, context.Canceled)
}
