package feed

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateWords(t *testing.T) {
	hundred := strings.TrimSpace(strings.Repeat("word ", 100))
	hundredOne := hundred + " extra"

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"short text is trimmed", "  bitcoin rallies  ", "bitcoin rallies"},
		{"exactly the limit is kept", hundred, hundred},
		{"over the limit is cut", hundredOne, hundred + TruncationMarker},
		{"whitespace runs collapse only when cut", "a\t\tb", "a\t\tb"},
		{"no whitespace counts as one word", "比特币价格突破新高", "比特币价格突破新高"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateWords(tt.input, MaxSummaryWords))
		})
	}
}

func TestTruncateWords_KeepsExactlyLimitWords(t *testing.T) {
	input := strings.Repeat("alpha  beta\n", 80)

	out := TruncateWords(input, MaxSummaryWords)

	assert.True(t, strings.HasSuffix(out, TruncationMarker))
	words := strings.Fields(strings.TrimSuffix(out, TruncationMarker))
	assert.Len(t, words, MaxSummaryWords)
}

func TestFormatEpochUTC(t *testing.T) {
	tests := []struct {
		sec      int64
		expected string
	}{
		{1700000000, "2023-11-14 22:13"},
		{0, "1970-01-01 00:00"},
		{1672531199, "2022-12-31 23:59"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatEpochUTC(tt.sec))
	}
}

func TestRecord_String(t *testing.T) {
	rec := Record{
		"title": "  Headline ",
		"empty": "",
		"blank": "   ",
		"num":   json.Number("5"),
	}

	v, ok := rec.String("title")
	assert.True(t, ok)
	assert.Equal(t, "Headline", v)

	for _, key := range []string{"empty", "blank", "num", "missing"} {
		_, ok := rec.String(key)
		assert.False(t, ok, "key %s should not be extracted", key)
	}
}

func TestRecord_Epoch(t *testing.T) {
	rec := Record{
		"number":   json.Number("1700000000"),
		"fraction": json.Number("1700000000.5"),
		"float":    float64(1700000000),
		"huge":     json.Number("9223372036854775808"),
		"negative": json.Number("-1"),
		"string":   "1700000000",
	}

	v, ok := rec.Epoch("number")
	assert.True(t, ok)
	assert.Equal(t, int64(1700000000), v)

	for _, key := range []string{"fraction", "negative", "string", "missing", "float", "huge"} {
		_, ok := rec.Epoch(key)
		assert.False(t, ok, "key %s should not be extracted", key)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindTransport, KindOf(NewTransportError("p", assert.AnError)))
	assert.Equal(t, KindDecode, KindOf(NewDecodeError("p", assert.AnError)))
	assert.Equal(t, KindServer, KindOf(NewServerError("p", "code %d", 1)))
	assert.Equal(t, KindUnknown, KindOf(assert.AnError))
	assert.ErrorIs(t, NewTransportError("p", assert.AnError), assert.AnError)
}
