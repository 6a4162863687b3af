package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/nandeesh88/go-content-dashboard/internal/models"
	"github.com/nandeesh88/go-content-dashboard/internal/service"
	apierrors "github.com/nandeesh88/go-content-dashboard/internal/transport/http/apierrors"
)

// Feed — GET /feed?categories=a,b&types=news,social&page=1&page_size=10
// &section=feed|trending|favorites&q=...
//
// Пустые categories/types дозаполняются настройками на сервисном слое;
// section/q применяются к собранной странице как проекция.
func (h *Handlers) Feed(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	section, err := service.ParseSection(r.URL.Query().Get("section"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	req := service.FeedRequest{
		Categories: splitCSV(r.URL.Query().Get("categories")),
		Page:       page,
		PageSize:   pageSize,
	}
	for _, raw := range splitCSV(r.URL.Query().Get("types")) {
		req.Types = append(req.Types, models.ContentType(raw))
	}

	feed, err := h.Service.FetchFeed(r.Context(), req)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if query := r.URL.Query().Get("q"); query != "" || section != service.SectionFeed {
		projected, err := h.Service.ProjectFeed(r.Context(), feed.Items, query, section)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}
		feed.Items = projected
		feed.Filters.SearchQuery = query
	}

	writeJSON(w, http.StatusOK, feed)
}

// Search — GET /search?q=...&page=&page_size=.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	feed, err := h.Service.SearchFeed(r.Context(), r.URL.Query().Get("q"), page, pageSize)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, feed)
}

// pageParams разбирает пагинацию; нечисловые значения -> invalid_argument.
func pageParams(r *http.Request) (int, int, error) {
	var page, pageSize int

	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("page: %w", service.ErrInvalidArgument)
		}
		page = n
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("page_size: %w", service.ErrInvalidArgument)
		}
		pageSize = n
	}
	return page, pageSize, nil
}

// splitCSV режет comma-separated параметр, отбрасывая пустые элементы.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
