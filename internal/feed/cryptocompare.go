package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/cpnews/cpnews/internal/model"
)

// CryptoCompare feed constants
const (
	CryptoCompareName            = "cryptocompare"
	DefaultCryptoCompareEndpoint = "https://min-api.cryptocompare.com/data/v2/news/"
	DefaultCryptoCompareLang     = "EN"
	cryptoCompareSuccessType     = 100
)

// CryptoCompareProvider serves the English news list
type CryptoCompareProvider struct {
	endpoint string
	lang     string
}

// NewCryptoCompare creates the provider; empty arguments use the defaults
func NewCryptoCompare(endpoint, lang string) *CryptoCompareProvider {
	if endpoint == "" {
		endpoint = DefaultCryptoCompareEndpoint
	}
	if lang == "" {
		lang = DefaultCryptoCompareLang
	}
	return &CryptoCompareProvider{endpoint: endpoint, lang: lang}
}

func (p *CryptoCompareProvider) Name() string         { return CryptoCompareName }
func (p *CryptoCompareProvider) Locale() model.Locale { return model.LocaleEnglish }

// Endpoint appends the lang query parameter
func (p *CryptoCompareProvider) Endpoint() string {
	u, err := url.Parse(p.endpoint)
	if err != nil {
		return p.endpoint
	}
	q := u.Query()
	q.Set("lang", p.lang)
	u.RawQuery = q.Encode()
	return u.String()
}

type cryptoCompareEnvelope struct {
	Type    *int            `json:"Type"`
	Message string          `json:"Message"`
	Data    json.RawMessage `json:"Data"`
}

// Normalize expects {"Type":100,"Message":"...","Data":[...]}
func (p *CryptoCompareProvider) Normalize(body []byte) ([]model.NewsItem, error) {
	var env cryptoCompareEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, NewDecodeError(CryptoCompareName, err)
	}
	if env.Type == nil {
		return nil, NewDecodeError(CryptoCompareName, errors.New("missing Type"))
	}
	if *env.Type != cryptoCompareSuccessType {
		return nil, NewServerError(CryptoCompareName, "remote server error: type %d: %s", *env.Type, env.Message)
	}

	var records []json.RawMessage
	if len(env.Data) == 0 {
		return nil, NewDecodeError(CryptoCompareName, errors.New("missing Data"))
	}
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, NewDecodeError(CryptoCompareName, fmt.Errorf("Data: %w", err))
	}

	return collect(records, cryptoCompareItem), nil
}

func cryptoCompareItem(rec Record) (model.NewsItem, bool) {
	title, ok := rec.Text("title")
	if !ok {
		return model.NewsItem{}, false
	}
	body, ok := rec.Text("body")
	if !ok {
		return model.NewsItem{}, false
	}
	published, ok := rec.Epoch("published_on")
	if !ok {
		return model.NewsItem{}, false
	}
	link, ok := rec.String("url")
	if !ok {
		return model.NewsItem{}, false
	}

	return model.NewsItem{
		Title:   title,
		Summary: TruncateWords(body, MaxSummaryWords),
		Date:    FormatEpochUTC(published),
		Link:    link,
	}, true
}
