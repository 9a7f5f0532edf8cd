package session

import (
	"time"

	"github.com/cpnews/cpnews/internal/feed"
	"github.com/cpnews/cpnews/internal/model"
)

// MessageDisplayWindow is how long a transient message stays visible
const MessageDisplayWindow = 5 * time.Second

// TransientMessage is a notification that hides itself after MessageDisplayWindow
type TransientMessage struct {
	Text      string
	Severity  model.Severity
	Kind      feed.ErrorKind
	CreatedAt time.Time
}

// Expired reports whether the display window has passed at now
func (m TransientMessage) Expired(now time.Time) bool {
	return now.Sub(m.CreatedAt) > MessageDisplayWindow
}
