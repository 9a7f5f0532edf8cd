package feed

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cpnews/cpnews/internal/model"
)

// Odaily feed constants
const (
	OdailyName            = "odaily"
	DefaultOdailyEndpoint = "https://www.odaily.news/v1/openapi/feeds"
	odailySuccessCode     = 0
	odailyNewsflashType   = "newsflashes"
)

// OdailyProvider serves the Chinese news list
type OdailyProvider struct {
	endpoint string
}

// NewOdaily creates the Odaily provider; an empty endpoint uses the default
func NewOdaily(endpoint string) *OdailyProvider {
	if endpoint == "" {
		endpoint = DefaultOdailyEndpoint
	}
	return &OdailyProvider{endpoint: endpoint}
}

func (p *OdailyProvider) Name() string         { return OdailyName }
func (p *OdailyProvider) Locale() model.Locale { return model.LocaleChinese }
func (p *OdailyProvider) Endpoint() string     { return p.endpoint }

type odailyEnvelope struct {
	Code *int            `json:"code"`
	Data json.RawMessage `json:"data"`
}

type odailyData struct {
	ArrNews *[]json.RawMessage `json:"arr_news"`
}

// Normalize expects {"code":0,"data":{"arr_news":[...]}}
func (p *OdailyProvider) Normalize(body []byte) ([]model.NewsItem, error) {
	var env odailyEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, NewDecodeError(OdailyName, err)
	}
	if env.Code == nil {
		return nil, NewDecodeError(OdailyName, errors.New("missing code"))
	}
	if *env.Code != odailySuccessCode {
		return nil, NewServerError(OdailyName, "remote server error: code %d", *env.Code)
	}

	var data odailyData
	if len(env.Data) == 0 {
		return nil, NewDecodeError(OdailyName, errors.New("missing data"))
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, NewDecodeError(OdailyName, fmt.Errorf("data: %w", err))
	}
	if data.ArrNews == nil {
		return nil, NewDecodeError(OdailyName, errors.New("missing data.arr_news"))
	}

	return collect(*data.ArrNews, odailyItem), nil
}

func odailyItem(rec Record) (model.NewsItem, bool) {
	if kind, ok := rec["type"].(string); !ok || kind != odailyNewsflashType {
		return model.NewsItem{}, false
	}
	title, ok := rec.Text("title")
	if !ok {
		return model.NewsItem{}, false
	}
	summary, ok := rec.Text("description")
	if !ok {
		return model.NewsItem{}, false
	}
	date, ok := rec.String("published_at")
	if !ok {
		return model.NewsItem{}, false
	}
	link, ok := rec.String("link")
	if !ok {
		return model.NewsItem{}, false
	}

	return model.NewsItem{
		Title:   title,
		Summary: TruncateWords(summary, MaxSummaryWords),
		Date:    date,
		Link:    link,
	}, true
}
