package model

import "strings"

// NewsItem is one normalized feed entry. Title, Summary and Date are always
// non-empty for items produced by a provider; Link may be empty.
type NewsItem struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Date    string `json:"date"`
	Link    string `json:"link"`
}

// HasLink reports whether the item points to an external page
func (n NewsItem) HasLink() bool {
	return strings.TrimSpace(n.Link) != ""
}

// IsComplete reports whether all required fields are present
func (n NewsItem) IsComplete() bool {
	return n.Title != "" && n.Summary != "" && n.Date != ""
}
