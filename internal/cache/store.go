package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cpnews/cpnews/internal/logger"
	"github.com/cpnews/cpnews/internal/model"
	"github.com/cpnews/cpnews/internal/platform"
)

// File naming
const (
	FilePrefix = "news_"
	FileExt    = ".json"
)

// Store reads and writes per-locale cache files under one directory
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the cache directory
func (s *Store) Dir() string {
	return s.dir
}

// Path returns <dir>/news_<locale>.json
func (s *Store) Path(locale model.Locale) string {
	return filepath.Join(s.dir, FilePrefix+locale.String()+FileExt)
}

// Save overwrites the cache file of locale with items
func (s *Store) Save(locale model.Locale, items []model.NewsItem) error {
	if items == nil {
		items = []model.NewsItem{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s cache: %w", locale, err)
	}
	if err := platform.WriteFileAtomic(s.Path(locale), data); err != nil {
		return fmt.Errorf("save %s cache: %w", locale, err)
	}
	return nil
}

// LoadLocale reads one locale's cache; any failure yields an empty list
func (s *Store) LoadLocale(locale model.Locale) []model.NewsItem {
	path := s.Path(locale)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warnf("[cache] read %s: %v", path, err)
		}
		return []model.NewsItem{}
	}

	var items []model.NewsItem
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warnf("[cache] decode %s: %v", path, err)
		return []model.NewsItem{}
	}

	// Drop entries that could not have come from the normalizer
	valid := make([]model.NewsItem, 0, len(items))
	for _, it := range items {
		if it.IsComplete() {
			valid = append(valid, it)
		}
	}
	return valid
}

// Load restores both locales independently
func (s *Store) Load() (cn, en []model.NewsItem) {
	return s.LoadLocale(model.LocaleChinese), s.LoadLocale(model.LocaleEnglish)
}

// Load restores both locales from dir
func Load(dir string) (cn, en []model.NewsItem) {
	return NewStore(dir).Load()
}
