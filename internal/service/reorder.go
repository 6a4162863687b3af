package service

import (
	"fmt"

	"github.com/nandeesh88/go-content-dashboard/internal/models"
)

// Reorder переносит элемент с oldIndex на newIndex, сохраняя взаимный
// порядок остальных. Вход не мутируется — возвращается новый срез.
//
// Индексы за пределами [0, len) — ErrInvalidArgument: «тихой» порчи
// состояния, как в эталонном drag-and-drop, здесь намеренно нет.
func Reorder(items []models.ContentItem, oldIndex, newIndex int) ([]models.ContentItem, error) {
	const op = "service.reorder.Reorder"

	n := len(items)
	if oldIndex < 0 || oldIndex >= n {
		return nil, fmt.Errorf("%s: old index %d out of range [0,%d): %w", op, oldIndex, n, ErrInvalidArgument)
	}
	if newIndex < 0 || newIndex >= n {
		return nil, fmt.Errorf("%s: new index %d out of range [0,%d): %w", op, newIndex, n, ErrInvalidArgument)
	}

	out := make([]models.ContentItem, 0, n)
	out = append(out, items[:oldIndex]...)
	out = append(out, items[oldIndex+1:]...)

	moved := items[oldIndex]
	out = append(out, models.ContentItem{})
	copy(out[newIndex+1:], out[newIndex:])
	out[newIndex] = moved

	return out, nil
}
