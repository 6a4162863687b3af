package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nandeesh88/go-content-dashboard/internal/models"
	"github.com/nandeesh88/go-content-dashboard/pkg/log"
)

// Preferences возвращает сохранённые настройки либо дефолты,
// если пользователь их ещё не менял.
func (s *Service) Preferences(ctx context.Context) (models.Preferences, error) {
	const op = "service.preferences.Preferences"

	p, err := s.storage.Preferences(ctx)
	if err != nil {
		if isNotFound(err) {
			return models.DefaultPreferences(), nil
		}
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// SetPreferences перезаписывает настройки целиком.
//
// Ошибки:
//   - ErrInvalidArgument — пустой ContentTypes, неизвестный вид контента
//     или неизвестная тема.
func (s *Service) SetPreferences(ctx context.Context, p models.Preferences) (models.Preferences, error) {
	const op = "service.preferences.SetPreferences"

	if len(p.ContentTypes) == 0 {
		return models.Preferences{}, fmt.Errorf("%s: empty content types: %w", op, ErrInvalidArgument)
	}
	for _, t := range p.ContentTypes {
		if !t.Valid() {
			return models.Preferences{}, fmt.Errorf("%s: type %q: %w", op, t, ErrInvalidArgument)
		}
	}
	if !p.Theme.Valid() {
		return models.Preferences{}, fmt.Errorf("%s: theme %q: %w", op, p.Theme, ErrInvalidArgument)
	}

	if err := s.persistPreferences(ctx, p); err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// SetCategories заменяет список категорий.
func (s *Service) SetCategories(ctx context.Context, categories []string) (models.Preferences, error) {
	const op = "service.preferences.SetCategories"

	p, err := s.Preferences(ctx)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}

	p.Categories = append([]string(nil), categories...)
	if err := s.persistPreferences(ctx, p); err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// ToggleCategory добавляет категорию, если её нет, и убирает, если есть.
// Нижней границы у категорий нет — список может опустеть.
func (s *Service) ToggleCategory(ctx context.Context, name string) (models.Preferences, error) {
	const op = "service.preferences.ToggleCategory"

	if name == "" {
		return models.Preferences{}, fmt.Errorf("%s: empty category: %w", op, ErrInvalidArgument)
	}

	p, err := s.Preferences(ctx)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}

	removed := false
	next := make([]string, 0, len(p.Categories)+1)
	for _, c := range p.Categories {
		if c == name {
			removed = true
			continue
		}
		next = append(next, c)
	}
	if !removed {
		next = append(next, name)
	}
	p.Categories = next

	if err := s.persistPreferences(ctx, p); err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// ToggleContentType добавляет/убирает вид контента, отказываясь убрать
// последний оставшийся: состояние не меняется, возвращается
// ErrLastContentType вместе с текущими настройками.
func (s *Service) ToggleContentType(ctx context.Context, t models.ContentType) (models.Preferences, error) {
	const op = "service.preferences.ToggleContentType"

	if !t.Valid() {
		return models.Preferences{}, fmt.Errorf("%s: type %q: %w", op, t, ErrInvalidArgument)
	}

	p, err := s.Preferences(ctx)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}

	if p.HasContentType(t) {
		if len(p.ContentTypes) == 1 {
			log.From(ctx).Warn("content_type_floor",
				slog.String("op", op),
				slog.String("type", string(t)),
			)
			return p, ErrLastContentType
		}

		next := make([]models.ContentType, 0, len(p.ContentTypes)-1)
		for _, ct := range p.ContentTypes {
			if ct != t {
				next = append(next, ct)
			}
		}
		p.ContentTypes = next
	} else {
		p.ContentTypes = append(p.ContentTypes, t)
	}

	if err := s.persistPreferences(ctx, p); err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// SetTheme устанавливает тему явно.
func (s *Service) SetTheme(ctx context.Context, theme models.Theme) (models.Preferences, error) {
	const op = "service.preferences.SetTheme"

	if !theme.Valid() {
		return models.Preferences{}, fmt.Errorf("%s: theme %q: %w", op, theme, ErrInvalidArgument)
	}

	p, err := s.Preferences(ctx)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}

	p.Theme = theme
	if err := s.persistPreferences(ctx, p); err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// ToggleTheme переключает light <-> dark.
func (s *Service) ToggleTheme(ctx context.Context) (models.Preferences, error) {
	const op = "service.preferences.ToggleTheme"

	p, err := s.Preferences(ctx)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}

	if p.Theme == models.ThemeDark {
		p.Theme = models.ThemeLight
	} else {
		p.Theme = models.ThemeDark
	}

	if err := s.persistPreferences(ctx, p); err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// DarkMode возвращает персистентный флаг тёмной темы.
// Отсутствие ключа — светлая тема (false): дефолт пути чтения.
func (s *Service) DarkMode(ctx context.Context) (bool, error) {
	const op = "service.preferences.DarkMode"

	enabled, err := s.storage.DarkMode(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return enabled, nil
}

// SetLanguage устанавливает язык выдачи.
func (s *Service) SetLanguage(ctx context.Context, lang string) (models.Preferences, error) {
	const op = "service.preferences.SetLanguage"

	if lang == "" {
		return models.Preferences{}, fmt.Errorf("%s: empty language: %w", op, ErrInvalidArgument)
	}

	p, err := s.Preferences(ctx)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}

	p.Language = lang
	if err := s.persistPreferences(ctx, p); err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// SetNotifications включает/выключает уведомления.
func (s *Service) SetNotifications(ctx context.Context, enabled bool) (models.Preferences, error) {
	const op = "service.preferences.SetNotifications"

	p, err := s.Preferences(ctx)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}

	p.NotificationsEnabled = enabled
	if err := s.persistPreferences(ctx, p); err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// ResetPreferences возвращает настройки к документированным дефолтам.
func (s *Service) ResetPreferences(ctx context.Context) (models.Preferences, error) {
	const op = "service.preferences.ResetPreferences"

	p := models.DefaultPreferences()
	if err := s.persistPreferences(ctx, p); err != nil {
		return models.Preferences{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// persistPreferences пишет настройки и зеркалит тему в ключ darkMode:
// его читает путь начальной загрузки UI.
func (s *Service) persistPreferences(ctx context.Context, p models.Preferences) error {
	if err := s.storage.SavePreferences(ctx, p); err != nil {
		return err
	}
	return s.storage.SaveDarkMode(ctx, p.Theme == models.ThemeDark)
}
