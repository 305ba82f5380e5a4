package htmldom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
)

const pageHTML = `<!DOCTYPE html>
<html data-viewport="640,480" data-scroll="0,20">
<head><title>Fixture</title></head>
<body data-rect="0,-20,640,1000">
	<div id="box" style="display:none"><a id="nested" href="sub/page" data-rect="0,0,10,10">Nested</a></div>
	<p id="ghost" style="visibility: hidden">Ghost</p>
	<a id="link" href="/abs" target="_self" data-rect="10,10,100,20">Link</a>
	<input id="name" data-rect="10,40,100,20">
	<input id="tick" type="checkbox" data-rect="10,70,20,20">
	<button id="btn">Go</button>
	<textarea id="area">Some text</textarea>
	<div id="ce" contenteditable="true"></div>
	<iframe id="same" srcdoc="<a href='x'>in frame</a>" data-rect="0,100,200,100"></iframe>
	<iframe id="other" src="https://elsewhere.example/"></iframe>
</body>
</html>`

func parseFixture(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseString(pageHTML, WithBaseURL("http://example.com/dir/"))
	require.NoError(t, err)
	return doc
}

func byID(t *testing.T, doc *Document, id string) *Element {
	t.Helper()
	el, err := doc.ElementByID(id)
	require.NoError(t, err)
	require.NotNil(t, el)
	return el.(*Element)
}

func TestParse_WindowMetrics(t *testing.T) {
	doc := parseFixture(t)

	assert.Equal(t, entity.Rect{Width: 640, Height: 480}, doc.Viewport())
	assert.Equal(t, entity.Point{Y: 20}, doc.ScrollOffset())

	plain := MustParse("<p>x</p>")
	assert.Equal(t, entity.Rect{Width: defaultViewportWidth, Height: defaultViewportHeight}, plain.Viewport())
}

func TestDocument_Elements(t *testing.T) {
	doc := parseFixture(t)

	links, err := doc.Elements("[href]")
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "http://example.com/dir/sub/page", links[0].URL())
	assert.Equal(t, "http://example.com/abs", links[1].URL())

	_, err = doc.Elements("[[")
	assert.Error(t, err)

	all, err := doc.Elements("")
	require.NoError(t, err)
	assert.Greater(t, len(all), len(links))
}

func TestElement_Reads(t *testing.T) {
	doc := parseFixture(t)

	assert.Equal(t, "none", byID(t, doc, "nested").Style().Display, "display:none is inherited")
	assert.False(t, byID(t, doc, "ghost").Style().Visible())
	assert.True(t, byID(t, doc, "link").Style().Visible())

	name := byID(t, doc, "name")
	assert.Equal(t, "text", name.Type())
	assert.True(t, name.Editable())
	assert.Equal(t, entity.Rect{X: 10, Y: 40, Width: 100, Height: 20}, name.Rect())

	assert.Equal(t, "submit", byID(t, doc, "btn").Type())
	assert.Equal(t, "Some text", byID(t, doc, "area").Value())
	assert.True(t, byID(t, doc, "ce").Editable())
	assert.False(t, byID(t, doc, "tick").Editable())
	assert.Equal(t, []string{"div", "body", "html"}, byID(t, doc, "nested").AncestorTags())
}

func TestElement_ClickDefaults(t *testing.T) {
	doc := parseFixture(t)

	tick := byID(t, doc, "tick")
	require.NoError(t, tick.Dispatch(entity.Click, false))
	assert.True(t, tick.Checked())

	require.NoError(t, tick.SetDisabled(true))
	require.NoError(t, tick.Dispatch(entity.Click, false))
	assert.True(t, tick.Checked(), "disabled controls ignore clicks")

	link := byID(t, doc, "link")
	require.NoError(t, link.Dispatch(entity.MouseDown, false))
	require.NoError(t, link.Dispatch(entity.Click, true))
	require.Len(t, doc.Navigations, 1)
	assert.Equal(t, Navigation{URL: "http://example.com/abs", Target: "_self", Ctrl: true}, doc.Navigations[0])
	assert.Len(t, link.Events, 2)
}

func TestDocument_FocusAndHitTest(t *testing.T) {
	doc := parseFixture(t)

	active, err := doc.ActiveElement()
	require.NoError(t, err)
	assert.Equal(t, "body", active.TagName())

	name := byID(t, doc, "name")
	require.NoError(t, name.Focus())
	active, err = doc.ActiveElement()
	require.NoError(t, err)
	assert.Same(t, name, active)

	hit, err := doc.ElementFromPoint(entity.Point{X: 15, Y: 15})
	require.NoError(t, err)
	assert.Same(t, byID(t, doc, "link"), hit)
}

func TestDocument_Scroll(t *testing.T) {
	doc := parseFixture(t)

	m, err := doc.ScrollMetrics()
	require.NoError(t, err)
	assert.Equal(t, entity.ScrollMetrics{Max: 520, Percent: 4, Top: 20}, m)

	require.NoError(t, doc.ScrollBy(0, 80))
	assert.Equal(t, entity.Point{Y: 100}, doc.ScrollOffset())
	assert.Equal(t, entity.Rect{X: 10, Y: -70, Width: 100, Height: 20}, byID(t, doc, "link").Rect())

	require.NoError(t, doc.ScrollTo(0, 10000))
	m, err = doc.ScrollMetrics()
	require.NoError(t, err)
	assert.Equal(t, 100, m.Percent)
}

func TestFrames(t *testing.T) {
	doc := parseFixture(t)

	frames, err := doc.Frames()
	require.NoError(t, err)
	require.Len(t, frames, 2)

	inner, err := frames[0].Document()
	require.NoError(t, err)
	assert.Equal(t, entity.Rect{Width: 200, Height: 100}, inner.Viewport())
	again, err := frames[0].Document()
	require.NoError(t, err)
	assert.Same(t, inner, again)

	_, err = frames[1].Document()
	assert.ErrorIs(t, err, output.ErrFrameInaccessible)
}

func TestOverlay_Lifecycle(t *testing.T) {
	doc := parseFixture(t)

	o, err := doc.NewOverlay(entity.DefaultHintStyle())
	require.NoError(t, err)
	l, err := o.AddLabel(entity.Point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Empty(t, doc.Labels(), "labels are attached on commit")

	require.NoError(t, o.Commit())
	require.NoError(t, l.Show("12"))
	require.NoError(t, l.SetFocused(true))
	assert.Equal(t, []LabelInfo{{Text: "12", Position: entity.Point{X: 1, Y: 2}, Visible: true, Focused: true}}, doc.Labels())
	assert.Contains(t, doc.HTML(), `id="_hintContainer"`)

	links, err := doc.Elements("span")
	require.NoError(t, err)
	assert.Empty(t, links, "overlay nodes are not page content")

	require.NoError(t, o.Remove())
	assert.Empty(t, doc.Labels())
	_, err = o.AddLabel(entity.Point{})
	assert.ErrorIs(t, err, ErrOverlayRemoved)

	_, err = MustParse("<html><frameset></frameset></html>").NewOverlay(entity.DefaultHintStyle())
	assert.ErrorIs(t, err, ErrNoBody)
}

func TestPage_TopDocument(t *testing.T) {
	doc := parseFixture(t)
	p := NewPage(doc)

	got, err := p.TopDocument(context.Background())
	require.NoError(t, err)
	assert.Same(t, doc, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.TopDocument(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
