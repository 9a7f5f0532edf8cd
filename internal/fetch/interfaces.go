package fetch

import (
	"context"

	"github.com/cpnews/cpnews/internal/feed"
	"github.com/cpnews/cpnews/internal/model"
)

// Dispatcher starts background fetches. Session state depends on this
// interface only.
type Dispatcher interface {
	// Dispatch starts a fetch for locale and returns its job id
	Dispatch(locale model.Locale) string
}

// Fetcher performs one synchronous fetch cycle
type Fetcher interface {
	Fetch(ctx context.Context, provider feed.Provider) ([]model.NewsItem, error)
}

// Saver persists a non-empty news list. cache.Store implements it.
type Saver interface {
	Save(locale model.Locale, items []model.NewsItem) error
}
