package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text unchanged", "Bitcoin rallies  again", "Bitcoin rallies  again"},
		{"tags removed", "<p>Bitcoin <b>rallies</b></p>", "Bitcoin rallies "},
		{"entities decoded inside markup", "<p>Tom &amp; Jerry</p>", "Tom & Jerry "},
		{"less-than in prose unchanged", "If a<b then ETH outperforms BTC", "If a<b then ETH outperforms BTC"},
		{"entity without markup unchanged", "Fees dropped AT&amp;T style", "Fees dropped AT&amp;T style"},
		{"comparison with spaces unchanged", "BTC < 40k & ETH > 2k", "BTC < 40k & ETH > 2k"},
		{"br separates words", "line1<br>line2", "line1 line2"},
		{"script dropped", "<script>alert(1)</script>news", "news"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlainText(tt.input))
		})
	}
}

func TestRecord_Text(t *testing.T) {
	rec := Record{
		"html":  "<p> 以太坊 升级 </p>",
		"empty": "<img src=\"x.png\">",
	}

	v, ok := rec.Text("html")
	require.True(t, ok)
	assert.Equal(t, "以太坊 升级", v)

	_, ok = rec.Text("empty")
	assert.False(t, ok, "markup-only fields are treated as empty")
}

func TestHasMarkup(t *testing.T) {
	assert.True(t, HasMarkup("<p>x</p>"))
	assert.True(t, HasMarkup("line<BR/>next"))
	assert.True(t, HasMarkup(`<a href="https://x">x</a>`))
	assert.False(t, HasMarkup("If a<b then"))
	assert.False(t, HasMarkup("a <bold claim> here"))
	assert.False(t, HasMarkup("AT&amp;T"))
}

func TestRecord_TextKeepsPlainSummaryIntact(t *testing.T) {
	input := "  If a<b then ETH outperforms BTC  "
	rec := Record{"k": input}

	v, ok := rec.Text("k")
	require.True(t, ok)
	assert.Equal(t, "If a<b then ETH outperforms BTC", v)
	assert.Equal(t, "If a<b then ETH outperforms BTC", TruncateWords(v, MaxSummaryWords))
}

func TestCryptoCompare_PlainBodyPassesThrough(t *testing.T) {
	body := `{"Type":100,"Message":"ok","Data":[
		{"title":"AT&amp;T & crypto","body":"If a<b then ETH outperforms BTC","published_on":1700000000,"url":"https://x/1"}
	]}`

	items, err := NewCryptoCompare("", "").Normalize([]byte(body))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "AT&amp;T & crypto", items[0].Title)
	assert.Equal(t, "If a<b then ETH outperforms BTC", items[0].Summary)
}

func TestOdaily_StripsMarkupFromDescription(t *testing.T) {
	body := `{"code":0,"data":{"arr_news":[
		{"type":"newsflashes","title":"BTC","description":"<p>第一段</p><p>第二段</p>","published_at":"2023-11-14 22:13:00","link":"https://x/1"}
	]}}`

	items, err := NewOdaily("").Normalize([]byte(body))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "第一段 第二段", items[0].Summary)
}
