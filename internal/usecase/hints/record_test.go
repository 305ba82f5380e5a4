package hints

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hintkit/internal/infrastructure/browser/htmldom"
)

func TestTextMatcher(t *testing.T) {
	tests := []struct {
		filter string
		text   string
		want   bool
	}{
		{"", "anything", true},
		{"foo", "Foo Bar", true},
		{"bar foo", "Foo Bar", true},
		{"  foo   baz ", "Foo Bar", false},
		{"oo ar", "Foo Bar", true},
		{"x", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, textMatcher(tt.filter)(tt.text), "filter %q on %q", tt.filter, tt.text)
	}
}

func TestPreviewCountsRunes(t *testing.T) {
	assert.Equal(t, "short", preview("short"))
	assert.Equal(t, strings.Repeat("ä", 20), preview(strings.Repeat("ä", 25)))
}

func TestDescribe(t *testing.T) {
	doc := htmldom.MustParse(`<html><body>
		<input id="pw" type="password" value="hunter2">
		<input id="q" type="text" value="query">
		<input id="img" type="image" alt="Go">
		<select id="sel"><option value="a">Alpha</option><option value="b" selected>Beta</option></select>
		<a id="link" href="/x">  Plain text </a>
		<img id="pic" src="/p.png" title="Title" alt="Alt">
	</body></html>`)

	tests := []struct {
		id       string
		text     string
		showText bool
	}{
		{"pw", "", false},
		{"q", "query", false},
		{"img", "Go", false},
		{"sel", "Beta", false},
		{"link", "  Plain text ", false},
		{"pic", "Title", true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			el, err := doc.ElementByID(tt.id)
			require.NoError(t, err)
			text, show := describe(el)
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.showText, show)
		})
	}
}
