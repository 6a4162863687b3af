package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/nandeesh88/go-content-dashboard/internal/models"
	"github.com/nandeesh88/go-content-dashboard/internal/storage"
	"github.com/nandeesh88/go-content-dashboard/mocks"
)

// Покрытие:
//  - Preferences: отсутствие ключа -> документированные дефолты;
//  - ToggleCategory: добавление/удаление без нижней границы;
//  - ToggleContentType: обычный toggle; пол в один вид — последний вид
//    не удаляется (состояние не меняется, запись не происходит,
//    ErrLastContentType);
//  - сценарий из контракта: выключаем всё до {news}, повторный toggle news
//    оставляет {news};
//  - ToggleTheme: light <-> dark, darkMode зеркалится в отдельный ключ;
//  - DarkMode: отсутствие ключа -> false (светлая тема);
//  - ResetPreferences: возврат к дефолтам;
//  - SetPreferences: пустой ContentTypes/кривая тема -> ErrInvalidArgument.

// prefStorage — мок-хранилище, эмулирующее персистентность настроек
// на переменных (чтения/записи в любом количестве).
func prefStorage(t *testing.T, ctrl *gomock.Controller) *mocks.MockStorage {
	t.Helper()

	var saved *models.Preferences
	var dark *bool

	st := mocks.NewMockStorage(ctrl)
	st.EXPECT().Preferences(gomock.Any()).DoAndReturn(
		func(context.Context) (models.Preferences, error) {
			if saved == nil {
				return models.Preferences{}, storage.ErrNotFound
			}
			return *saved, nil
		},
	).AnyTimes()
	st.EXPECT().SavePreferences(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Preferences) error {
			cp := p
			saved = &cp
			return nil
		},
	).AnyTimes()
	st.EXPECT().DarkMode(gomock.Any()).DoAndReturn(
		func(context.Context) (bool, error) {
			if dark == nil {
				return false, storage.ErrNotFound
			}
			return *dark, nil
		},
	).AnyTimes()
	st.EXPECT().SaveDarkMode(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, enabled bool) error {
			dark = &enabled
			return nil
		},
	).AnyTimes()

	return st
}

func TestPreferences_DefaultsWhenAbsent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := prefStorage(t, ctrl)
	svc := newSvcForTest(t, st, nil, nil, nil)

	p, err := svc.Preferences(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.DefaultPreferences(), p)
	require.Equal(t, models.ThemeLight, p.Theme)
}

func TestToggleCategory_AddAndRemove_NoFloor(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := prefStorage(t, ctrl)
	svc := newSvcForTest(t, st, nil, nil, nil)
	ctx := context.Background()

	p, err := svc.ToggleCategory(ctx, "health")
	require.NoError(t, err)
	require.Contains(t, p.Categories, "health")

	// У категорий нижней границы нет — можно выключить все.
	for _, c := range []string{"technology", "sports", "finance", "health"} {
		p, err = svc.ToggleCategory(ctx, c)
		require.NoError(t, err)
	}
	require.Empty(t, p.Categories)
}

// TestToggleContentType_FloorScenario — сценарий контракта: выключаем до
// {news}, затем toggle news оставляет {news} без изменений.
func TestToggleContentType_FloorScenario(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := prefStorage(t, ctrl)
	svc := newSvcForTest(t, st, nil, nil, nil)
	ctx := context.Background()

	p, err := svc.ToggleContentType(ctx, models.TypeRecommendation)
	require.NoError(t, err)
	require.Len(t, p.ContentTypes, 2)

	p, err = svc.ToggleContentType(ctx, models.TypeSocial)
	require.NoError(t, err)
	require.Equal(t, []models.ContentType{models.TypeNews}, p.ContentTypes)

	// Последний вид не снимается: состояние то же, сигнальная ошибка.
	p, err = svc.ToggleContentType(ctx, models.TypeNews)
	require.ErrorIs(t, err, ErrLastContentType)
	require.Equal(t, []models.ContentType{models.TypeNews}, p.ContentTypes)

	// Возврат вида работает.
	p, err = svc.ToggleContentType(ctx, models.TypeSocial)
	require.NoError(t, err)
	require.Len(t, p.ContentTypes, 2)
}

func TestToggleContentType_UnknownType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl), nil, nil, nil)

	_, err := svc.ToggleContentType(context.Background(), "podcast")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// TestToggleTheme_RoundTripWithDarkModeKey — переключение темы зеркалится
// в персистентный ключ darkMode и переживает «перезагрузку» (повторное чтение).
func TestToggleTheme_RoundTripWithDarkModeKey(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := prefStorage(t, ctrl)
	svc := newSvcForTest(t, st, nil, nil, nil)
	ctx := context.Background()

	// Дефолт пути чтения — светлая тема.
	dark, err := svc.DarkMode(ctx)
	require.NoError(t, err)
	require.False(t, dark)

	p, err := svc.ToggleTheme(ctx)
	require.NoError(t, err)
	require.Equal(t, models.ThemeDark, p.Theme)

	dark, err = svc.DarkMode(ctx)
	require.NoError(t, err)
	require.True(t, dark, "ключ darkMode перевернулся вместе с темой")

	p, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	require.Equal(t, models.ThemeLight, p.Theme)

	dark, err = svc.DarkMode(ctx)
	require.NoError(t, err)
	require.False(t, dark)
}

func TestResetPreferences_RestoresDefaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := prefStorage(t, ctrl)
	svc := newSvcForTest(t, st, nil, nil, nil)
	ctx := context.Background()

	_, err := svc.SetTheme(ctx, models.ThemeDark)
	require.NoError(t, err)
	_, err = svc.ToggleCategory(ctx, "health")
	require.NoError(t, err)

	p, err := svc.ResetPreferences(ctx)
	require.NoError(t, err)
	require.Equal(t, models.DefaultPreferences(), p)

	got, err := svc.Preferences(ctx)
	require.NoError(t, err)
	require.Equal(t, models.DefaultPreferences(), got)
}

func TestSetPreferences_Validation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl), nil, nil, nil)
	ctx := context.Background()

	p := models.DefaultPreferences()
	p.ContentTypes = nil
	_, err := svc.SetPreferences(ctx, p)
	require.ErrorIs(t, err, ErrInvalidArgument)

	p = models.DefaultPreferences()
	p.Theme = "sepia"
	_, err = svc.SetPreferences(ctx, p)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSetLanguageAndNotifications(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := prefStorage(t, ctrl)
	svc := newSvcForTest(t, st, nil, nil, nil)
	ctx := context.Background()

	p, err := svc.SetLanguage(ctx, "de")
	require.NoError(t, err)
	require.Equal(t, "de", p.Language)

	p, err = svc.SetNotifications(ctx, false)
	require.NoError(t, err)
	require.False(t, p.NotificationsEnabled)
	require.Equal(t, "de", p.Language, "предыдущие изменения сохранились")
}
