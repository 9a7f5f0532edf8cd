package ui

import (
	"testing"
	"time"

	"github.com/cpnews/cpnews/internal/feed"
	"github.com/cpnews/cpnews/internal/model"
	"github.com/cpnews/cpnews/internal/session"
)

func TestLocalization_DefaultAndSwitch(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != model.DefaultLocale {
		t.Errorf("Expected default language %s, got %s", model.DefaultLocale, l.GetCurrentLanguage())
	}
	if l.GetText(KeyRefresh) != "刷新" {
		t.Errorf("Unexpected Chinese refresh label: %s", l.GetText(KeyRefresh))
	}

	l.SetLanguage(model.LocaleEnglish)
	if l.GetText(KeyRefresh) != "Refresh" {
		t.Errorf("Unexpected English refresh label: %s", l.GetText(KeyRefresh))
	}

	// Unknown languages are ignored
	l.SetLanguage(model.Locale("ru"))
	if l.GetCurrentLanguage() != model.LocaleEnglish {
		t.Errorf("Expected language to stay English, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_AllKeysTranslated(t *testing.T) {
	l := NewLocalization()
	en := l.texts[model.LocaleEnglish]
	cn := l.texts[model.LocaleChinese]

	for key := range en {
		if _, ok := cn[key]; !ok {
			t.Errorf("Key %s missing in Chinese texts", key)
		}
	}
	if len(en) != len(cn) {
		t.Errorf("Expected same number of keys, got en=%d cn=%d", len(en), len(cn))
	}
}

func TestLocalization_UnknownKeyFallsBackToKey(t *testing.T) {
	l := NewLocalization()
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key itself, got %s", got)
	}
}

func TestLocalization_FormatMessage(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage(model.LocaleEnglish)
	now := time.Now()

	tests := []struct {
		kind     feed.ErrorKind
		expected string
	}{
		{feed.KindTransport, "Network error: boom"},
		{feed.KindDecode, "Invalid response: boom"},
		{feed.KindServer, "Server error: boom"},
		{feed.KindUnknown, "boom"},
	}

	for _, tt := range tests {
		msg := session.TransientMessage{Text: "boom", Severity: model.SeverityWarning, Kind: tt.kind, CreatedAt: now}
		if got := l.FormatMessage(msg); got != tt.expected {
			t.Errorf("FormatMessage(%s): expected %q, got %q", tt.kind, tt.expected, got)
		}
	}

	l.SetLanguage(model.LocaleChinese)
	msg := session.TransientMessage{Text: "boom", Kind: feed.KindTransport}
	if got := l.FormatMessage(msg); got != "网络错误: boom" {
		t.Errorf("Unexpected Chinese message: %q", got)
	}
}

func TestLocalization_GetAvailableLanguages(t *testing.T) {
	l := NewLocalization()
	langs := l.GetAvailableLanguages()

	if langs[model.LocaleChinese] != "中文" || langs[model.LocaleEnglish] != "English" {
		t.Errorf("Unexpected language names: %v", langs)
	}
}
