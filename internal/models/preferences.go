package models

// Theme — тема оформления.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid сообщает, является ли значение известной темой.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Preferences — пользовательские настройки ленты.
//
// Особенности:
//   - ContentTypes не может остаться пустым: удаление последнего вида
//     контента отклоняется сервисным слоем;
//   - Categories по соглашению непусто, но это не инвариант;
//   - сохраняются в хранилище целиком при каждом изменении.
type Preferences struct {
	Categories           []string      `json:"categories"`
	ContentTypes         []ContentType `json:"contentTypes"`
	Language             string        `json:"language"`
	Theme                Theme         `json:"theme"`
	NotificationsEnabled bool          `json:"notificationsEnabled"`
}

// DefaultPreferences — документированное состояние по умолчанию.
func DefaultPreferences() Preferences {
	return Preferences{
		Categories:           []string{"technology", "sports", "finance"},
		ContentTypes:         []ContentType{TypeNews, TypeRecommendation, TypeSocial},
		Language:             "en",
		Theme:                ThemeLight,
		NotificationsEnabled: true,
	}
}

// HasContentType сообщает, включён ли вид контента.
func (p Preferences) HasContentType(t ContentType) bool {
	for _, ct := range p.ContentTypes {
		if ct == t {
			return true
		}
	}
	return false
}
