package ui

import (
	"github.com/cpnews/cpnews/internal/feed"
	"github.com/cpnews/cpnews/internal/model"
	"github.com/cpnews/cpnews/internal/session"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage model.Locale
	texts           map[model.Locale]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyRefresh         = "refresh"
	KeyRefreshing      = "refreshing"
	KeyToggleLanguage  = "toggle_language"
	KeySettings        = "settings"
	KeyAbout           = "about"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyAutoRefresh     = "auto_refresh"
	KeyCacheDirectory  = "cache_directory"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyOpenLink        = "open_link"
	KeyNoNews          = "no_news"
	KeyAboutText       = "about_text"
	KeyVersion         = "version"
	KeyErrorOpenLink   = "error_open_link"
	KeyErrorTransport  = "error_transport"
	KeyErrorDecode     = "error_decode"
	KeyErrorServer     = "error_server"
	KeyRefreshIgnored  = "refresh_ignored"
	KeyQuit            = "quit"
	KeyLanguageChinese = "language_chinese"
	KeyLanguageEnglish = "language_english"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: model.DefaultLocale,
		texts:           make(map[model.Locale]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown locales are ignored
func (l *Localization) SetLanguage(lang model.Locale) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[model.LocaleEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language
func (l *Localization) GetCurrentLanguage() model.Locale {
	return l.currentLanguage
}

// GetAvailableLanguages returns each language with its own display name
func (l *Localization) GetAvailableLanguages() map[model.Locale]string {
	return map[model.Locale]string{
		model.LocaleChinese: l.texts[model.LocaleChinese][KeyLanguageChinese],
		model.LocaleEnglish: l.texts[model.LocaleEnglish][KeyLanguageEnglish],
	}
}

// ErrorKindLabel returns the localized category of a fetch failure, or ""
// when the kind carries no category.
func (l *Localization) ErrorKindLabel(kind feed.ErrorKind) string {
	switch kind {
	case feed.KindTransport:
		return l.GetText(KeyErrorTransport)
	case feed.KindDecode:
		return l.GetText(KeyErrorDecode)
	case feed.KindServer:
		return l.GetText(KeyErrorServer)
	default:
		return ""
	}
}

// FormatMessage renders a transient message with its category prefix
func (l *Localization) FormatMessage(msg session.TransientMessage) string {
	label := l.ErrorKindLabel(msg.Kind)
	if label == "" {
		return msg.Text
	}
	return label + MessageSeparator + msg.Text
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts[model.LocaleEnglish] = map[string]string{
		KeyAppTitle:        "Crypto News",
		KeyRefresh:         "Refresh",
		KeyRefreshing:      "Refreshing...",
		KeyToggleLanguage:  "中文",
		KeySettings:        "Settings",
		KeyAbout:           "About",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyAutoRefresh:     "Refresh automatically",
		KeyCacheDirectory:  "Cache Directory",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved",
		KeyOpenLink:        "Read more",
		KeyNoNews:          "No news yet. Press Refresh to load the latest flashes.",
		KeyAboutText:       "Latest crypto news flashes from Odaily (Chinese) and CryptoCompare (English).",
		KeyVersion:         "Version",
		KeyErrorOpenLink:   "Cannot open link",
		KeyErrorTransport:  "Network error",
		KeyErrorDecode:     "Invalid response",
		KeyErrorServer:     "Server error",
		KeyRefreshIgnored:  "A refresh is already running",
		KeyQuit:            "Quit",
		KeyLanguageChinese: "中文",
		KeyLanguageEnglish: "English",
	}

	// Chinese texts
	l.texts[model.LocaleChinese] = map[string]string{
		KeyAppTitle:        "加密快讯",
		KeyRefresh:         "刷新",
		KeyRefreshing:      "正在刷新...",
		KeyToggleLanguage:  "English",
		KeySettings:        "设置",
		KeyAbout:           "关于",
		KeyFile:            "文件",
		KeyLanguage:        "语言",
		KeyAutoRefresh:     "自动刷新",
		KeyCacheDirectory:  "缓存目录",
		KeySave:            "保存",
		KeyCancel:          "取消",
		KeySettingsSaved:   "设置已保存",
		KeyOpenLink:        "查看原文",
		KeyNoNews:          "暂无快讯，请点击刷新获取最新内容。",
		KeyAboutText:       "实时加密货币快讯，中文来自 Odaily 星球日报，英文来自 CryptoCompare。",
		KeyVersion:         "版本",
		KeyErrorOpenLink:   "无法打开链接",
		KeyErrorTransport:  "网络错误",
		KeyErrorDecode:     "数据解析失败",
		KeyErrorServer:     "服务器错误",
		KeyRefreshIgnored:  "正在刷新中",
		KeyQuit:            "退出",
		KeyLanguageChinese: "中文",
		KeyLanguageEnglish: "English",
	}
}
