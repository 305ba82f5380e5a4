package output

import (
	"context"
	"errors"

	"hintkit/internal/domain/entity"
)

// ErrFrameInaccessible is returned for frames whose document cannot be
// scripted from the parent, e.g. cross-origin or mid-navigation frames.
var ErrFrameInaccessible = errors.New("frame document is not accessible")

type DOMPort interface {
	TopDocument(ctx context.Context) (Document, error)
}

type Document interface {
	// Elements returns elements in document order. The selector is a CSS
	// selector list used to narrow the result; "" returns all elements.
	Elements(selector string) ([]Element, error)
	QuerySelector(selector string) (Element, error)
	ElementByID(id string) (Element, error)
	ActiveElement() (Element, error)
	ElementFromPoint(p entity.Point) (Element, error)

	// Viewport is {0, 0, innerWidth, innerHeight} in the document's own
	// coordinates.
	Viewport() entity.Rect
	ScrollOffset() entity.Point
	ScrollMetrics() (entity.ScrollMetrics, error)
	// ScrollSize is the size of the scrollable content.
	ScrollSize() (width, height float64, err error)
	ScrollBy(dx, dy float64) error
	ScrollTo(x, y float64) error

	Frames() ([]Frame, error)
	NewOverlay(style entity.HintStyle) (Overlay, error)
}

type Frame interface {
	Element() Element
	Document() (Document, error)
}

// Element reads are served from a snapshot taken when the element was
// looked up; mutations go to the page.
type Element interface {
	TagName() string
	Type() string
	Attr(name string) (string, bool)
	Rect() entity.Rect
	Style() entity.ComputedStyle
	Text() string
	Value() string
	Checked() bool
	SelectedText() string
	URL() string
	AncestorTags() []string
	Editable() bool

	Children() ([]Element, error)
	Contains(other Element) bool
	Focus() error
	Dispatch(event entity.MouseEvent, ctrl bool) error
	SetMarker(m entity.Marker, on bool) error
	ClearMarkers() error
	SetAttr(name, value string) error
	RemoveAttr(name string) error
	SetDisabled(disabled bool) error
	SetValue(value string) error
	SetChecked(checked bool) error
}

// Overlay is the per-document container holding hint labels. Labels added
// before Commit are inserted into the page with a single append.
type Overlay interface {
	AddLabel(pos entity.Point) (Label, error)
	Commit() error
	Remove() error
}

type Label interface {
	Show(text string) error
	Hide() error
	SetFocused(focused bool) error
}
