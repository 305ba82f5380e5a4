package rod

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
)

var (
	_ output.Document = (*Document)(nil)
	_ output.Frame    = (*Frame)(nil)
)

var ErrNoBody = errors.New("document has no body")

// Document is a live page or frame document. Window metrics are read once
// when the document is opened and refreshed after scrolling.
type Document struct {
	page     *rod.Page
	viewport entity.Rect
	scroll   entity.Point
}

type windowMetrics struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func openDocument(page *rod.Page) (*Document, error) {
	d := &Document{page: page.Sleeper(rod.NotFoundSleeper)}
	if err := d.refresh(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) refresh() error {
	var m windowMetrics
	if err := d.evalJSON(&m, windowJS); err != nil {
		return fmt.Errorf("read window metrics: %w", err)
	}
	d.viewport = entity.Rect{Width: m.W, Height: m.H}
	d.scroll = entity.Point{X: m.X, Y: m.Y}
	return nil
}

func (d *Document) evalJSON(v any, js string, args ...any) error {
	res, err := d.page.Eval(js, args...)
	if err != nil {
		return err
	}
	return decode(res, v)
}

// decode reads the JSON value of an evaluation result into v.
func decode(res *proto.RuntimeRemoteObject, v any) error {
	raw, err := res.Value.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode eval result: %w", err)
	}
	return json.Unmarshal(raw, v)
}

func (d *Document) wrapAll(els rod.Elements) ([]output.Element, error) {
	result := make([]output.Element, 0, len(els))
	for _, el := range els {
		e, err := newElement(d, el)
		if err != nil {
			return nil, err
		}
		if e.snap.Overlay {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (d *Document) Elements(selector string) ([]output.Element, error) {
	if selector == "" {
		selector = "*"
	}
	els, err := d.page.Elements(selector)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", selector, err)
	}
	return d.wrapAll(els)
}

// find runs a script returning a single element or null.
func (d *Document) find(js string, args ...any) (output.Element, error) {
	el, err := d.page.ElementByJS(rod.Eval(js, args...))
	if err != nil {
		var notFound *rod.ElementNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	e, err := newElement(d, el)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (d *Document) QuerySelector(selector string) (output.Element, error) {
	return d.find(queryJS, selector)
}

func (d *Document) ElementByID(id string) (output.Element, error) {
	return d.find(byIDJS, id)
}

func (d *Document) ActiveElement() (output.Element, error) {
	return d.find(activeJS)
}

func (d *Document) ElementFromPoint(p entity.Point) (output.Element, error) {
	return d.find(fromPointJS, p.X, p.Y)
}

func (d *Document) Viewport() entity.Rect {
	return d.viewport
}

func (d *Document) ScrollOffset() entity.Point {
	return d.scroll
}

func (d *Document) ScrollMetrics() (entity.ScrollMetrics, error) {
	var m entity.ScrollMetrics
	if err := d.evalJSON(&m, scrollMetricsJS); err != nil {
		return entity.ScrollMetrics{}, fmt.Errorf("read scroll position: %w", err)
	}
	return m, nil
}

func (d *Document) ScrollSize() (float64, float64, error) {
	var size struct {
		W float64 `json:"w"`
		H float64 `json:"h"`
	}
	if err := d.evalJSON(&size, scrollSizeJS); err != nil {
		return 0, 0, fmt.Errorf("read scroll size: %w", err)
	}
	return size.W, size.H, nil
}

func (d *Document) ScrollBy(dx, dy float64) error {
	if _, err := d.page.Eval(scrollByJS, dx, dy); err != nil {
		return fmt.Errorf("scroll by: %w", err)
	}
	return d.refresh()
}

func (d *Document) ScrollTo(x, y float64) error {
	if _, err := d.page.Eval(scrollToJS, x, y); err != nil {
		return fmt.Errorf("scroll to: %w", err)
	}
	return d.refresh()
}

func (d *Document) Frames() ([]output.Frame, error) {
	els, err := d.page.Elements("iframe,frame")
	if err != nil {
		return nil, fmt.Errorf("query frames: %w", err)
	}
	frames := make([]output.Frame, 0, len(els))
	for _, el := range els {
		e, err := newElement(d, el)
		if err != nil {
			return nil, err
		}
		frames = append(frames, &Frame{parent: d, el: e})
	}
	return frames, nil
}

func (d *Document) NewOverlay(style entity.HintStyle) (output.Overlay, error) {
	return &Overlay{doc: d, style: style}, nil
}

type Frame struct {
	parent *Document
	el     *Element
}

func (f *Frame) Element() output.Element {
	return f.el
}

// Document opens the frame's document. Frames the parent cannot script
// report output.ErrFrameInaccessible.
func (f *Frame) Document() (output.Document, error) {
	res, err := f.el.el.Eval(frameAccessibleJS)
	if err != nil || !res.Value.Bool() {
		return nil, output.ErrFrameInaccessible
	}
	page, err := f.el.el.Frame()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", output.ErrFrameInaccessible, err)
	}
	doc, err := openDocument(page)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", output.ErrFrameInaccessible, err)
	}
	return doc, nil
}
