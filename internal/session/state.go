package session

import (
	"time"

	"github.com/cpnews/cpnews/internal/feed"
	"github.com/cpnews/cpnews/internal/fetch"
	"github.com/cpnews/cpnews/internal/logger"
	"github.com/cpnews/cpnews/internal/model"
	"github.com/cpnews/cpnews/internal/update"
)

// State is the refresh state machine: Idle -> Fetching -> Idle
type State struct {
	locale     model.Locale
	status     model.FetchStatus
	items      map[model.Locale][]model.NewsItem
	message    *TransientMessage
	lastJobID  string
	dispatcher fetch.Dispatcher
	receiver   update.Receiver
}

// NewState creates an idle session with empty lists
func NewState(locale model.Locale, dispatcher fetch.Dispatcher, receiver update.Receiver) *State {
	if l, ok := model.ParseLocale(string(locale)); ok {
		locale = l
	} else {
		locale = model.DefaultLocale
	}
	items := make(map[model.Locale][]model.NewsItem, len(model.Locales()))
	for _, l := range model.Locales() {
		items[l] = []model.NewsItem{}
	}
	return &State{
		locale:     locale,
		status:     model.FetchStatusIdle,
		items:      items,
		dispatcher: dispatcher,
		receiver:   receiver,
	}
}

// Restore seeds both lists, typically from the cache at startup
func (s *State) Restore(cn, en []model.NewsItem) {
	if cn != nil {
		s.items[model.LocaleChinese] = cn
	}
	if en != nil {
		s.items[model.LocaleEnglish] = en
	}
}

// Locale returns the current locale
func (s *State) Locale() model.Locale {
	return s.locale
}

// SetLocale switches locale without triggering a refresh. Unknown locales are ignored.
func (s *State) SetLocale(locale model.Locale) {
	if l, ok := model.ParseLocale(string(locale)); ok {
		s.locale = l
	}
}

// Status returns the fetch status
func (s *State) Status() model.FetchStatus {
	return s.status
}

// IsFetching reports whether a fetch is in flight
func (s *State) IsFetching() bool {
	return s.status.IsActive()
}

// Items returns the list for locale
func (s *State) Items(locale model.Locale) []model.NewsItem {
	return s.items[locale]
}

// CurrentItems returns the list for the current locale
func (s *State) CurrentItems() []model.NewsItem {
	return s.items[s.locale]
}

// LastJobID returns the id of the most recent dispatch
func (s *State) LastJobID() string {
	return s.lastJobID
}

// RequestRefresh dispatches a fetch for the current locale unless one is in flight
func (s *State) RequestRefresh() bool {
	if s.IsFetching() {
		logger.Debugf("[session] refresh ignored, job %s in flight", s.lastJobID)
		return false
	}
	s.status = model.FetchStatusFetching
	s.lastJobID = s.dispatcher.Dispatch(s.locale)
	logger.Debugf("[session] dispatched job %s for %s", s.lastJobID, s.locale)
	return true
}

// ToggleLocale switches to the other locale and refreshes it if its list is
// empty. It reports whether a refresh was dispatched.
func (s *State) ToggleLocale() bool {
	s.locale = s.locale.Toggle()
	if len(s.items[s.locale]) == 0 {
		return s.RequestRefresh()
	}
	return false
}

// Poll consumes at most one update message. It reports whether state changed.
func (s *State) Poll(now time.Time) bool {
	msg, ok := s.receiver.TryReceive()
	if !ok {
		return false
	}

	s.status = model.FetchStatusIdle

	if msg.IsError() {
		s.message = &TransientMessage{
			Text:      msg.Err.Error(),
			Severity:  model.SeverityWarning,
			Kind:      feed.KindOf(msg.Err),
			CreatedAt: now,
		}
		return true
	}

	if len(msg.Items) > 0 {
		s.items[msg.Locale] = msg.Items
	}
	return true
}

// ShowMessage sets the transient message directly
func (s *State) ShowMessage(text string, severity model.Severity, now time.Time) {
	s.message = &TransientMessage{Text: text, Severity: severity, CreatedAt: now}
}

// Message returns the transient message while it is within its display window
func (s *State) Message(now time.Time) (TransientMessage, bool) {
	if s.message == nil {
		return TransientMessage{}, false
	}
	if s.message.Expired(now) {
		s.message = nil
		return TransientMessage{}, false
	}
	return *s.message, true
}
