package config

import (
	"fyne.io/fyne/v2"

	"github.com/cpnews/cpnews/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage    = "app_language"
	KeyAutoRefresh = "auto_refresh"
)

// Default values
const (
	DefaultLanguage    = model.DefaultLocale
	DefaultAutoRefresh = true
)

// Settings manages user preferences that survive restarts
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the persisted locale
func (s *Settings) GetLanguage() model.Locale {
	lang, ok := model.ParseLocale(s.app.Preferences().String(KeyLanguage))
	if !ok {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage persists the locale; unknown values fall back to the default
func (s *Settings) SetLanguage(lang model.Locale) {
	if l, ok := model.ParseLocale(string(lang)); ok {
		lang = l
	} else {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang.String())
}

// GetAutoRefresh returns whether the periodic refresh is enabled
func (s *Settings) GetAutoRefresh() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRefresh, DefaultAutoRefresh)
}

// SetAutoRefresh sets whether the periodic refresh is enabled
func (s *Settings) SetAutoRefresh(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoRefresh, enabled)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[model.Locale]string {
	return map[model.Locale]string{
		model.LocaleChinese: "中文",
		model.LocaleEnglish: "English",
	}
}
