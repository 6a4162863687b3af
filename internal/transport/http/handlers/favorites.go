package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nandeesh88/go-content-dashboard/internal/models"
	"github.com/nandeesh88/go-content-dashboard/internal/service"
	apierrors "github.com/nandeesh88/go-content-dashboard/internal/transport/http/apierrors"
)

// ListFavorites — GET /favorites.
func (h *Handlers) ListFavorites(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.Favorites(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// ToggleFavorite — POST /favorites/toggle, тело — ContentItem целиком:
// список хранит снапшоты элементов, а не только id.
func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var item models.ContentItem
	if err := decodeStrict(r, &item); err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("body: %w", service.ErrInvalidArgument))
		return
	}

	items, err := h.Service.ToggleFavorite(r.Context(), item)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// RemoveFavorite — DELETE /favorites/{id}.
func (h *Handlers) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, fmt.Errorf("id: %w", service.ErrInvalidArgument))
		return
	}

	items, err := h.Service.RemoveFavorite(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// ClearFavorites — DELETE /favorites.
func (h *Handlers) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.ClearFavorites(r.Context()); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, []models.ContentItem{})
}

type reorderRequest struct {
	OldIndex int `json:"old_index"`
	NewIndex int `json:"new_index"`
}

// ReorderFavorites — POST /favorites/reorder, тело — {old_index,new_index}.
// Индексы за пределами текущего списка -> 400.
func (h *Handlers) ReorderFavorites(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("body: %w", service.ErrInvalidArgument))
		return
	}

	items, err := h.Service.ReorderFavorites(r.Context(), req.OldIndex, req.NewIndex)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}
