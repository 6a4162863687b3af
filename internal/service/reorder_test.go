package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nandeesh88/go-content-dashboard/internal/models"
)

// Покрытие:
//  - перенос вперёд/назад: элемент с oldIndex оказывается на newIndex,
//    длина и мультимножество элементов сохраняются, взаимный порядок
//    остальных не меняется;
//  - oldIndex == newIndex — идентичная копия;
//  - вход не мутируется;
//  - выход индексов за [0, len) и пустой вход -> ErrInvalidArgument.

func itemsN(n int) []models.ContentItem {
	out := make([]models.ContentItem, n)
	for i := range out {
		out[i] = models.ContentItem{ID: fmt.Sprintf("id-%d", i), Type: models.TypeNews}
	}
	return out
}

func ids(items []models.ContentItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestReorder_MoveForwardAndBackward(t *testing.T) {
	t.Parallel()

	got, err := Reorder(itemsN(5), 1, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"id-0", "id-2", "id-3", "id-1", "id-4"}, ids(got))

	got, err = Reorder(itemsN(5), 3, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"id-3", "id-0", "id-1", "id-2", "id-4"}, ids(got))
}

// TestReorder_Properties — свойства на сетке пар индексов: длина,
// мультимножество, позиция перенесённого, стабильность остальных.
func TestReorder_Properties(t *testing.T) {
	t.Parallel()

	src := itemsN(6)
	for oldIdx := 0; oldIdx < len(src); oldIdx++ {
		for newIdx := 0; newIdx < len(src); newIdx++ {
			got, err := Reorder(src, oldIdx, newIdx)
			require.NoError(t, err)
			require.Len(t, got, len(src))

			require.Equal(t, src[oldIdx].ID, got[newIdx].ID,
				"элемент с oldIndex=%d должен оказаться на newIndex=%d", oldIdx, newIdx)

			require.ElementsMatch(t, ids(src), ids(got), "мультимножество сохраняется")

			// Взаимный порядок остальных: выкидываем перенесённый из обоих
			// срезов — остатки совпадают.
			var wantRest, gotRest []string
			for i, it := range src {
				if i != oldIdx {
					wantRest = append(wantRest, it.ID)
				}
			}
			for i, it := range got {
				if i != newIdx {
					gotRest = append(gotRest, it.ID)
				}
			}
			require.Equal(t, wantRest, gotRest)
		}
	}
}

func TestReorder_SameIndexIsCopy(t *testing.T) {
	t.Parallel()

	src := itemsN(4)
	got, err := Reorder(src, 2, 2)
	require.NoError(t, err)
	require.Equal(t, ids(src), ids(got))
}

func TestReorder_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	src := itemsN(5)
	want := ids(src)

	_, err := Reorder(src, 0, 4)
	require.NoError(t, err)
	require.Equal(t, want, ids(src), "входной срез не должен меняться")
}

func TestReorder_OutOfRange(t *testing.T) {
	t.Parallel()

	src := itemsN(3)

	_, err := Reorder(src, -1, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Reorder(src, 0, 3)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Reorder(nil, 0, 0)
	require.ErrorIs(t, err, ErrInvalidArgument, "пустая последовательность не имеет валидных индексов")
}
