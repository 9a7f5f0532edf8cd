package update

import (
	"github.com/cpnews/cpnews/internal/model"
)

// Message is the outcome of one fetch. Exactly one of Items or Err is meaningful.
type Message struct {
	JobID  string
	Locale model.Locale
	Items  []model.NewsItem
	Err    error
}

// ItemsMessage wraps a successful fetch
func ItemsMessage(jobID string, locale model.Locale, items []model.NewsItem) Message {
	return Message{JobID: jobID, Locale: locale, Items: items}
}

// ErrorMessage wraps a failed fetch
func ErrorMessage(jobID string, locale model.Locale, err error) Message {
	return Message{JobID: jobID, Locale: locale, Err: err}
}

// IsError reports whether the fetch failed
func (m Message) IsError() bool {
	return m.Err != nil
}
