package htmldom

import (
	"errors"
	"strings"

	"golang.org/x/net/html"

	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
	"hintkit/internal/infrastructure/browser/hintcss"
)

var (
	_ output.Overlay = (*Overlay)(nil)
	_ output.Label   = (*Label)(nil)
)

var ErrOverlayRemoved = errors.New("overlay already removed")

type Overlay struct {
	doc       *Document
	body      *html.Node
	container *html.Node
	pending   []*Label
	labels    []*Label
	removed   bool
}

type Label struct {
	node    *html.Node
	pos     entity.Point
	text    string
	visible bool
	focused bool
}

type LabelInfo struct {
	Text     string
	Position entity.Point
	Visible  bool
	Focused  bool
}

func (o *Overlay) AddLabel(pos entity.Point) (output.Label, error) {
	if o.removed {
		return nil, ErrOverlayRemoved
	}
	n := &html.Node{Type: html.ElementNode, Data: "span"}
	n.Attr = []html.Attribute{
		{Key: "class", Val: hintcss.LabelClass},
		{Key: hintcss.MarkerAttr, Val: hintcss.LabelMarker},
		{Key: "style", Val: hintcss.LabelStyle(pos, false)},
	}
	l := &Label{node: n, pos: pos}
	o.pending = append(o.pending, l)
	return l, nil
}

// Commit appends all pending labels in one go, creating the container on the
// first call.
func (o *Overlay) Commit() error {
	if o.removed {
		return ErrOverlayRemoved
	}
	if o.container == nil {
		o.container = &html.Node{Type: html.ElementNode, Data: "div"}
		o.container.Attr = []html.Attribute{
			{Key: "id", Val: hintcss.ContainerID},
			{Key: hintcss.MarkerAttr, Val: hintcss.ContainerMarker},
		}
	}
	for _, l := range o.pending {
		o.container.AppendChild(l.node)
	}
	o.labels = append(o.labels, o.pending...)
	o.pending = nil
	if o.container.Parent == nil {
		o.body.AppendChild(o.container)
	}
	return nil
}

func (o *Overlay) Remove() error {
	if o.removed {
		return nil
	}
	o.removed = true
	if o.container != nil && o.container.Parent != nil {
		o.container.Parent.RemoveChild(o.container)
	}
	return nil
}

func (l *Label) Show(text string) error {
	l.text = text
	l.visible = true
	for c := l.node.FirstChild; c != nil; {
		next := c.NextSibling
		l.node.RemoveChild(c)
		c = next
	}
	l.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	setAttr(l.node, "style", hintcss.LabelStyle(l.pos, true))
	return nil
}

func (l *Label) Hide() error {
	l.visible = false
	setAttr(l.node, "style", hintcss.LabelStyle(l.pos, false))
	return nil
}

func (l *Label) SetFocused(focused bool) error {
	l.focused = focused
	setClass(l.node, hintcss.FocusClass, focused)
	return nil
}

func (l *Label) info() LabelInfo {
	return LabelInfo{
		Text:     strings.TrimSpace(l.text),
		Position: l.pos,
		Visible:  l.visible,
		Focused:  l.focused,
	}
}
