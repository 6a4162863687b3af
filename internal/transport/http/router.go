package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nandeesh88/go-content-dashboard/internal/service"
	"github.com/nandeesh88/go-content-dashboard/internal/transport/http/handlers"
	"github.com/nandeesh88/go-content-dashboard/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Liveness вне BasePath — его дергает оркестратор, а не фронт.
	root.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// лента и поиск
	r.Get("/feed", h.Feed)
	r.Get("/search", h.Search)

	// прямые ручки источников
	r.Get("/social", h.SocialPosts)
	r.Get("/social/search", h.SearchSocialPosts)
	r.Get("/social/users/{username}", h.UserSocialPosts)
	r.Get("/recommendations", h.Recommendations)

	// избранное
	r.Get("/favorites", h.ListFavorites)
	r.Post("/favorites/toggle", h.ToggleFavorite)
	r.Post("/favorites/reorder", h.ReorderFavorites)
	r.Delete("/favorites/{id}", h.RemoveFavorite)
	r.Delete("/favorites", h.ClearFavorites)

	// настройки
	r.Get("/preferences", h.GetPreferences)
	r.Put("/preferences", h.PutPreferences)
	r.Post("/preferences/categories/toggle", h.ToggleCategory)
	r.Post("/preferences/types/toggle", h.ToggleContentType)
	r.Post("/preferences/theme/toggle", h.ToggleTheme)
	r.Post("/preferences/reset", h.ResetPreferences)
}
