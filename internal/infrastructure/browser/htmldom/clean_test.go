package htmldom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hintkit/internal/domain/entity"
)

func TestSnapshot_RemovesNoise(t *testing.T) {
	doc := MustParse(`<html><body data-rect="0,0,10,10">
	<!-- comment -->
	<div id="main" onclick="x()">Hello</div>
	<script>alert("hi")</script>
	<style>.x {}</style>
</body></html>`)

	out := doc.Snapshot(nil)

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "<style")
	assert.NotContains(t, out, "comment")
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "data-rect")
	assert.Contains(t, out, `id="main"`)
	assert.Contains(t, doc.HTML(), "<script", "the document itself is untouched")
}

func TestSnapshot_Overlay(t *testing.T) {
	doc := parseFixture(t)
	o, err := doc.NewOverlay(entity.DefaultHintStyle())
	require.NoError(t, err)
	l, err := o.AddLabel(entity.Point{})
	require.NoError(t, err)
	require.NoError(t, o.Commit())
	require.NoError(t, l.Show("1"))

	assert.Contains(t, doc.Snapshot(nil), `id="_hintContainer"`)

	cfg := DefaultCleanConfig
	cfg.DropOverlay = true
	assert.NotContains(t, doc.Snapshot(&cfg), `id="_hintContainer"`)
}

func TestSnapshot_Truncation(t *testing.T) {
	doc := MustParse("<html><body><p>" + strings.Repeat("x", 500) + "</p></body></html>")

	cfg := DefaultCleanConfig
	cfg.MaxOutputSize = 100
	out := doc.Snapshot(&cfg)

	assert.True(t, strings.HasPrefix(out, "<body>"))
	assert.Contains(t, out, "<!-- truncated -->")
	assert.Len(t, out, 100+len("\n<!-- truncated -->"))
}

func TestSnapshot_NoBody(t *testing.T) {
	assert.Empty(t, MustParse("<html><frameset></frameset></html>").Snapshot(nil))
}
