package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nandeesh88/go-content-dashboard/internal/service"
	apierrors "github.com/nandeesh88/go-content-dashboard/internal/transport/http/apierrors"
)

// SocialPosts — GET /social?hashtag=&count=.
func (h *Handlers) SocialPosts(w http.ResponseWriter, r *http.Request) {
	count, err := countParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, err := h.Service.SocialPosts(r.Context(), r.URL.Query().Get("hashtag"), count)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// SearchSocialPosts — GET /social/search?q=&count=.
func (h *Handlers) SearchSocialPosts(w http.ResponseWriter, r *http.Request) {
	count, err := countParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, err := h.Service.SearchSocialPosts(r.Context(), r.URL.Query().Get("q"), count)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// UserSocialPosts — GET /social/users/{username}?count=.
func (h *Handlers) UserSocialPosts(w http.ResponseWriter, r *http.Request) {
	count, err := countParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, err := h.Service.UserSocialPosts(r.Context(), chi.URLParam(r, "username"), count)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Recommendations — GET /recommendations?count=.
func (h *Handlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	count, err := countParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, err := h.Service.Recommendations(r.Context(), count)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// countParam разбирает размер выдачи; нечисловое значение -> invalid_argument.
func countParam(r *http.Request) (int, error) {
	v := r.URL.Query().Get("count")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("count: %w", service.ErrInvalidArgument)
	}
	return n, nil
}
