package feed

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// markupTag matches the tags upstream newsflashes actually carry. Text that
// merely contains "<" or "&" is not markup.
var markupTag = regexp.MustCompile(`(?i)</?(p|br|div|span|a|li|ul|ol|h[1-6]|strong|em|b|i|img|script|style)\b[^>]*>`)

// HasMarkup reports whether s contains at least one HTML tag
func HasMarkup(s string) bool {
	return markupTag.MatchString(s)
}

// PlainText converts an HTML fragment to text. Block elements and <br>
// become word breaks; script and style content is dropped. Strings without
// tags are returned unchanged.
func PlainText(s string) string {
	if !HasMarkup(s) {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml(" ")
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6").AfterHtml(" ")

	return doc.Text()
}

// Text returns a trimmed non-empty field with any HTML markup removed
func (r Record) Text(key string) (string, bool) {
	v, ok := r.String(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(PlainText(v))
	if v == "" {
		return "", false
	}
	return v, true
}
