// Package htmldom is a DOM backend over a parsed golang.org/x/net/html tree.
//
// Static markup carries no layout, so geometry is read from attributes:
// data-rect="x,y,w,h" gives an element's client rect, data-viewport="w,h"
// and data-scroll="x,y" on <html> give the window metrics. Inline style
// display/visibility, the hidden attribute and hidden inputs drive the
// computed style. Frames with a srcdoc are same-origin documents; any other
// frame is treated as cross-origin.
package htmldom

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
	"hintkit/internal/infrastructure/browser/hintcss"
)

var _ output.Document = (*Document)(nil)

var ErrNoBody = errors.New("document has no <body>")

const (
	defaultViewportWidth  = 1024
	defaultViewportHeight = 768
)

type Document struct {
	root     *html.Node
	base     *url.URL
	viewport entity.Rect
	scroll   entity.Point

	nodes    map[*html.Node]*Element
	frames   map[*html.Node]*Document
	active   *html.Node
	styled   bool
	overlays []*Overlay

	// Navigations records followed links for inspection.
	Navigations []Navigation
}

type Navigation struct {
	URL    string
	Target string
	Ctrl   bool
}

type Option func(*Document)

func WithBaseURL(base string) Option {
	return func(d *Document) {
		if u, err := url.Parse(base); err == nil {
			d.base = u
		}
	}
}

func WithViewport(width, height float64) Option {
	return func(d *Document) {
		d.viewport = entity.Rect{Width: width, Height: height}
	}
}

func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	d := &Document{
		root:     root,
		viewport: entity.Rect{Width: defaultViewportWidth, Height: defaultViewportHeight},
		nodes:    make(map[*html.Node]*Element),
		frames:   make(map[*html.Node]*Document),
	}

	if htmlNode := findElement(root, "html"); htmlNode != nil {
		if v, ok := attr(htmlNode, "data-viewport"); ok {
			if nums, err := parseFloats(v, 2); err == nil {
				d.viewport = entity.Rect{Width: nums[0], Height: nums[1]}
			}
		}
		if v, ok := attr(htmlNode, "data-scroll"); ok {
			if nums, err := parseFloats(v, 2); err == nil {
				d.scroll = entity.Point{X: nums[0], Y: nums[1]}
			}
		}
	}

	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func ParseString(markup string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(markup), opts...)
}

// MustParse is for fixtures.
func MustParse(markup string, opts ...Option) *Document {
	d, err := ParseString(markup, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if e, ok := d.nodes[n]; ok {
		return e
	}
	e := &Element{node: n, doc: d}
	d.nodes[n] = e
	return e
}

func (d *Document) Elements(selector string) ([]output.Element, error) {
	var nodes []*html.Node
	if selector == "" {
		walkElements(d.root, func(n *html.Node) {
			nodes = append(nodes, n)
		})
	} else {
		sel, err := cascadia.Compile(selector)
		if err != nil {
			return nil, fmt.Errorf("compile selector %q: %w", selector, err)
		}
		nodes = sel.MatchAll(d.root)
	}

	result := make([]output.Element, 0, len(nodes))
	for _, n := range nodes {
		if inOverlay(n) {
			continue
		}
		result = append(result, d.wrap(n))
	}
	return result, nil
}

func (d *Document) QuerySelector(selector string) (output.Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("compile selector %q: %w", selector, err)
	}
	n := sel.MatchFirst(d.root)
	if n == nil {
		return nil, nil
	}
	return d.wrap(n), nil
}

func (d *Document) ElementByID(id string) (output.Element, error) {
	var found *html.Node
	walkElements(d.root, func(n *html.Node) {
		if found == nil {
			if v, ok := attr(n, "id"); ok && v == id {
				found = n
			}
		}
	})
	if found == nil {
		return nil, nil
	}
	return d.wrap(found), nil
}

func (d *Document) ActiveElement() (output.Element, error) {
	if d.active != nil {
		return d.wrap(d.active), nil
	}
	if body := findElement(d.root, "body"); body != nil {
		return d.wrap(body), nil
	}
	return nil, nil
}

// ElementFromPoint returns the last visible element in document order whose
// rect contains p, approximating paint order without z-index.
func (d *Document) ElementFromPoint(p entity.Point) (output.Element, error) {
	var hit *html.Node
	walkElements(d.root, func(n *html.Node) {
		if inOverlay(n) {
			return
		}
		e := d.wrap(n)
		if !e.Style().Visible() {
			return
		}
		if e.Rect().Contains(p) {
			hit = n
		}
	})
	if hit == nil {
		return nil, nil
	}
	return d.wrap(hit), nil
}

func (d *Document) Viewport() entity.Rect {
	return d.viewport
}

func (d *Document) ScrollOffset() entity.Point {
	return d.scroll
}

func (d *Document) scrollSize() (float64, float64) {
	width, height := d.viewport.Width, d.viewport.Height
	walkElements(d.root, func(n *html.Node) {
		r := d.wrap(n).Rect()
		if right := r.Right() + d.scroll.X; right > width {
			width = right
		}
		if bottom := r.Bottom() + d.scroll.Y; bottom > height {
			height = bottom
		}
	})
	return width, height
}

func (d *Document) ScrollSize() (float64, float64, error) {
	w, h := d.scrollSize()
	return w, h, nil
}

func (d *Document) ScrollMetrics() (entity.ScrollMetrics, error) {
	_, height := d.scrollSize()
	maxTop := int(height - d.viewport.Height)
	if maxTop <= 0 {
		return entity.ScrollMetrics{Max: maxTop}, nil
	}
	top := int(d.scroll.Y)
	return entity.ScrollMetrics{
		Max:     maxTop,
		Percent: int(math.Round(float64(top) * 100 / float64(maxTop))),
		Top:     top,
	}, nil
}

func (d *Document) ScrollBy(dx, dy float64) error {
	return d.ScrollTo(d.scroll.X+dx, d.scroll.Y+dy)
}

func (d *Document) ScrollTo(x, y float64) error {
	width, height := d.scrollSize()
	x = math.Max(0, math.Min(x, width-d.viewport.Width))
	y = math.Max(0, math.Min(y, height-d.viewport.Height))
	dx, dy := x-d.scroll.X, y-d.scroll.Y
	d.scroll = entity.Point{X: x, Y: y}
	// Client rects move against the scroll.
	walkElements(d.root, func(n *html.Node) {
		if r, ok := attr(n, "data-rect"); ok {
			if nums, err := parseFloats(r, 4); err == nil {
				setAttr(n, "data-rect", formatRect(entity.Rect{
					X: nums[0] - dx, Y: nums[1] - dy, Width: nums[2], Height: nums[3],
				}))
			}
		}
	})
	return nil
}

func (d *Document) Frames() ([]output.Frame, error) {
	var frames []output.Frame
	walkElements(d.root, func(n *html.Node) {
		if (n.Data == "iframe" || n.Data == "frame") && !inOverlay(n) {
			frames = append(frames, &Frame{parent: d, node: n})
		}
	})
	return frames, nil
}

func (d *Document) NewOverlay(style entity.HintStyle) (output.Overlay, error) {
	body := findElement(d.root, "body")
	if body == nil {
		return nil, ErrNoBody
	}
	if !d.styled {
		if head := findElement(d.root, "head"); head != nil {
			st := &html.Node{Type: html.ElementNode, Data: "style"}
			st.Attr = []html.Attribute{{Key: hintcss.StyleAttr, Val: "1"}}
			st.AppendChild(&html.Node{Type: html.TextNode, Data: hintcss.StyleSheet(style)})
			head.AppendChild(st)
		}
		d.styled = true
	}
	o := &Overlay{doc: d, body: body}
	d.overlays = append(d.overlays, o)
	return o, nil
}

// Labels lists the labels currently attached to the document.
func (d *Document) Labels() []LabelInfo {
	var out []LabelInfo
	for _, o := range d.overlays {
		if o.container == nil || o.container.Parent == nil {
			continue
		}
		for _, l := range o.labels {
			out = append(out, l.info())
		}
	}
	return out
}

// HTML renders the current tree.
func (d *Document) HTML() string {
	var sb strings.Builder
	_ = html.Render(&sb, d.root)
	return sb.String()
}

func (d *Document) resolve(ref string) string {
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if d.base == nil {
		return u.String()
	}
	return d.base.ResolveReference(u).String()
}

type Frame struct {
	parent *Document
	node   *html.Node
}

func (f *Frame) Element() output.Element {
	return f.parent.wrap(f.node)
}

func (f *Frame) Document() (output.Document, error) {
	if doc, ok := f.parent.frames[f.node]; ok {
		return doc, nil
	}
	srcdoc, ok := attr(f.node, "srcdoc")
	if !ok {
		return nil, output.ErrFrameInaccessible
	}

	rect := f.parent.wrap(f.node).Rect()
	opts := []Option{WithViewport(rect.Width, rect.Height)}
	if f.parent.base != nil {
		opts = append(opts, WithBaseURL(f.parent.base.String()))
	}
	doc, err := ParseString(srcdoc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", output.ErrFrameInaccessible, err)
	}
	// An explicit data-viewport inside the frame wins over the frame size.
	if htmlNode := findElement(doc.root, "html"); htmlNode != nil {
		if v, ok := attr(htmlNode, "data-viewport"); ok {
			if nums, err := parseFloats(v, 2); err == nil {
				doc.viewport = entity.Rect{Width: nums[0], Height: nums[1]}
			}
		}
	}
	f.parent.frames[f.node] = doc
	return doc, nil
}

var _ output.DOMPort = (*Page)(nil)

// Page serves a parsed document as the top-level document of a page.
type Page struct {
	doc *Document
}

func NewPage(doc *Document) *Page {
	return &Page{doc: doc}
}

func (p *Page) TopDocument(ctx context.Context) (output.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

// SnapshotHTML renders the cleaned body of the page, hint labels included.
func (p *Page) SnapshotHTML(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.doc.Snapshot(nil), nil
}
