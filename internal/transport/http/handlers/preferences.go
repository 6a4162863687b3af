package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nandeesh88/go-content-dashboard/internal/models"
	"github.com/nandeesh88/go-content-dashboard/internal/service"
	apierrors "github.com/nandeesh88/go-content-dashboard/internal/transport/http/apierrors"
)

// GetPreferences — GET /preferences. Несохранённые настройки — это дефолты,
// а не 404.
func (h *Handlers) GetPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.Preferences(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// PutPreferences — PUT /preferences, тело — Preferences целиком.
func (h *Handlers) PutPreferences(w http.ResponseWriter, r *http.Request) {
	var p models.Preferences
	if err := decodeStrict(r, &p); err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("body: %w", service.ErrInvalidArgument))
		return
	}

	saved, err := h.Service.SetPreferences(r.Context(), p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

type toggleCategoryRequest struct {
	Category string `json:"category"`
}

// ToggleCategory — POST /preferences/categories/toggle, тело — {category}.
func (h *Handlers) ToggleCategory(w http.ResponseWriter, r *http.Request) {
	var req toggleCategoryRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("body: %w", service.ErrInvalidArgument))
		return
	}

	p, err := h.Service.ToggleCategory(r.Context(), req.Category)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

type toggleContentTypeRequest struct {
	Type models.ContentType `json:"type"`
}

// ToggleContentType — POST /preferences/types/toggle, тело — {type}.
//
// Отказ снять последний вид контента — не ошибка наружу: клиент получает
// 200 с неизменённым состоянием (контракт «молчаливого отказа»).
func (h *Handlers) ToggleContentType(w http.ResponseWriter, r *http.Request) {
	var req toggleContentTypeRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("body: %w", service.ErrInvalidArgument))
		return
	}

	p, err := h.Service.ToggleContentType(r.Context(), req.Type)
	if err != nil && !errors.Is(err, service.ErrLastContentType) {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// ToggleTheme — POST /preferences/theme/toggle.
func (h *Handlers) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.ToggleTheme(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// ResetPreferences — POST /preferences/reset.
func (h *Handlers) ResetPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.ResetPreferences(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}
