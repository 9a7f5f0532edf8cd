package model

import "strings"

// Locale selects the news source and the UI language
type Locale string

const (
	LocaleChinese Locale = "cn"
	LocaleEnglish Locale = "en"
)

// DefaultLocale is used when nothing is persisted
const DefaultLocale = LocaleChinese

// Locales returns all supported locales in display order
func Locales() []Locale {
	return []Locale{LocaleChinese, LocaleEnglish}
}

// String returns the string representation of Locale
func (l Locale) String() string {
	return string(l)
}

// IsChinese reports whether l is the Chinese locale
func (l Locale) IsChinese() bool {
	return l == LocaleChinese
}

// Toggle returns the other locale
func (l Locale) Toggle() Locale {
	if l == LocaleChinese {
		return LocaleEnglish
	}
	return LocaleChinese
}

// ParseLocale accepts "cn", "zh" and "en" in any case
func ParseLocale(s string) (Locale, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cn", "zh", "zh-cn", "zh_cn":
		return LocaleChinese, true
	case "en", "en-us", "en_us":
		return LocaleEnglish, true
	default:
		return "", false
	}
}
