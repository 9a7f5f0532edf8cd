package feed

import (
	"github.com/cpnews/cpnews/internal/model"
)

// Provider is one upstream news source
type Provider interface {
	// Name is used in logs and error messages
	Name() string
	// Locale is the locale whose list this provider fills
	Locale() model.Locale
	// Endpoint is the full URL for the HTTP GET
	Endpoint() string
	// Normalize validates the envelope and converts records to news items
	Normalize(body []byte) ([]model.NewsItem, error)
}

// Set maps each locale to its provider
type Set map[model.Locale]Provider

// NewSet indexes providers by locale; a later provider replaces an earlier one
func NewSet(providers ...Provider) Set {
	s := make(Set, len(providers))
	for _, p := range providers {
		s[p.Locale()] = p
	}
	return s
}

// For returns the provider for a locale
func (s Set) For(locale model.Locale) (Provider, bool) {
	p, ok := s[locale]
	return p, ok
}

// Endpoints configures the default provider set
type Endpoints struct {
	Odaily            string
	CryptoCompare     string
	CryptoCompareLang string
}

// Defaults builds the Chinese and English providers
func Defaults(e Endpoints) Set {
	return NewSet(
		NewOdaily(e.Odaily),
		NewCryptoCompare(e.CryptoCompare, e.CryptoCompareLang),
	)
}
