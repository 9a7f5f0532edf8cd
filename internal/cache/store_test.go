package cache

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cpnews/cpnews/internal/feed"
	"github.com/cpnews/cpnews/internal/model"
)

func TestLoad_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	cn, en := Load(dir)
	if cn == nil || en == nil {
		t.Fatal("Expected non-nil empty lists")
	}
	if len(cn) != 0 || len(en) != 0 {
		t.Errorf("Expected empty lists, got %d and %d", len(cn), len(en))
	}
}

func TestPath(t *testing.T) {
	store := NewStore("/var/cache/cpnews")

	if got := store.Path(model.LocaleChinese); got != filepath.Join("/var/cache/cpnews", "news_cn.json") {
		t.Errorf("Unexpected Chinese cache path: %s", got)
	}
	if got := store.Path(model.LocaleEnglish); got != filepath.Join("/var/cache/cpnews", "news_en.json") {
		t.Errorf("Unexpected English cache path: %s", got)
	}
}

func TestSaveLoad_RoundTripsNormalizedItems(t *testing.T) {
	body := `{"Type":100,"Message":"ok","Data":[
		{"title":"Bitcoin tops $40k","body":"Markets rally.","published_on":1700000000,"url":"https://example.com/1"},
		{"title":"","body":"Empty title","published_on":1700000010,"url":"https://example.com/2"},
		{"title":"ETF news","body":"Filing update.","published_on":1700000120,"url":"https://example.com/3"},
		{"title":"No body","published_on":1700000130,"url":"https://example.com/4"},
		{"title":"Stablecoin audit","body":"Reserves verified.","published_on":1700000240,"url":"https://example.com/5"}
	]}`
	items, err := feed.NewCryptoCompare("", "").Normalize([]byte(body))
	if err != nil {
		t.Fatalf("Failed to normalize: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Expected 3 valid items, got %d", len(items))
	}

	store := NewStore(filepath.Join(t.TempDir(), "nested", "cache"))
	if err := store.Save(model.LocaleEnglish, items); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	cn, en := store.Load()
	if len(cn) != 0 {
		t.Errorf("Expected Chinese list to stay empty, got %d items", len(cn))
	}
	if !reflect.DeepEqual(en, items) {
		t.Errorf("Expected %+v, got %+v", items, en)
	}
}

func TestSave_OverwritesPreviousContent(t *testing.T) {
	store := NewStore(t.TempDir())
	first := []model.NewsItem{{Title: "a", Summary: "b", Date: "c", Link: "d"}}
	second := []model.NewsItem{{Title: "x", Summary: "y", Date: "z"}}

	if err := store.Save(model.LocaleChinese, first); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if err := store.Save(model.LocaleChinese, second); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	got := store.LoadLocale(model.LocaleChinese)
	if !reflect.DeepEqual(got, second) {
		t.Errorf("Expected %+v, got %+v", second, got)
	}
}

func TestLoad_MalformedFileAffectsOnlyThatLocale(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	good := []model.NewsItem{{Title: "t", Summary: "s", Date: "2023-11-14 22:13", Link: ""}}

	if err := store.Save(model.LocaleChinese, good); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if err := os.WriteFile(store.Path(model.LocaleEnglish), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write malformed file: %v", err)
	}

	cn, en := Load(dir)
	if !reflect.DeepEqual(cn, good) {
		t.Errorf("Expected Chinese list %+v, got %+v", good, cn)
	}
	if len(en) != 0 {
		t.Errorf("Expected empty English list, got %d items", len(en))
	}
}

func TestLoadLocale_DropsIncompleteEntries(t *testing.T) {
	store := NewStore(t.TempDir())
	data := `[{"title":"ok","summary":"s","date":"d","link":""},{"title":"","summary":"s","date":"d"}]`
	if err := os.WriteFile(store.Path(model.LocaleChinese), []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	got := store.LoadLocale(model.LocaleChinese)
	if len(got) != 1 || got[0].Title != "ok" {
		t.Errorf("Expected only the complete entry, got %+v", got)
	}
}
