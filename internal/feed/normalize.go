package feed

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/cpnews/cpnews/internal/model"
)

// Normalization limits
const (
	MaxItems         = 30
	MaxSummaryWords  = 100
	TruncationMarker = "..."
	DateLayout       = "2006-01-02 15:04"
)

// Record is one raw item of a provider response
type Record map[string]any

// String returns a trimmed non-empty string field
func (r Record) String(key string) (string, bool) {
	v, ok := r[key].(string)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

// Epoch returns an integral seconds field. Records are decoded with UseNumber,
// so only json.Number is accepted; fractional or negative values are rejected.
func (r Record) Epoch(key string) (int64, bool) {
	switch v := r[key].(type) {
	case json.Number:
		sec, err := v.Int64()
		if err != nil || sec < 0 {
			return 0, false
		}
		return sec, true
	default:
		return 0, false
	}
}

// TruncateWords keeps at most limit whitespace-separated words and appends
// TruncationMarker when anything was cut.
func TruncateWords(s string, limit int) string {
	words := strings.Fields(s)
	if len(words) <= limit {
		return strings.TrimSpace(s)
	}
	return strings.Join(words[:limit], " ") + TruncationMarker
}

// FormatEpochUTC renders epoch seconds as "YYYY-MM-DD HH:MM" in UTC
func FormatEpochUTC(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(DateLayout)
}

// decodeRecord parses one array element; non-objects are skipped
func decodeRecord(raw json.RawMessage) (Record, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var rec Record
	if err := dec.Decode(&rec); err != nil || rec == nil {
		return nil, false
	}
	return rec, true
}

// collect builds items in source order and stops at MaxItems
func collect(raw []json.RawMessage, build func(Record) (model.NewsItem, bool)) []model.NewsItem {
	items := make([]model.NewsItem, 0, min(len(raw), MaxItems))
	for _, r := range raw {
		if len(items) >= MaxItems {
			break
		}
		rec, ok := decodeRecord(r)
		if !ok {
			continue
		}
		item, ok := build(rec)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}
