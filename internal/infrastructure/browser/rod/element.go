package rod

import (
	"fmt"

	"github.com/go-rod/rod"

	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
	"hintkit/internal/infrastructure/browser/hintcss"
)

var _ output.Element = (*Element)(nil)

type Element struct {
	el   *rod.Element
	doc  *Document
	snap snapshot
}

type snapshot struct {
	Tag        string            `json:"tag"`
	Type       string            `json:"type"`
	Attrs      map[string]string `json:"attrs"`
	Rect       snapshotRect      `json:"rect"`
	Display    string            `json:"display"`
	Visibility string            `json:"visibility"`
	Text       string            `json:"text"`
	Value      string            `json:"value"`
	Checked    bool              `json:"checked"`
	Selected   string            `json:"selected"`
	URL        string            `json:"url"`
	Ancestors  []string          `json:"ancestors"`
	Editable   bool              `json:"editable"`
	Overlay    bool              `json:"overlay"`
}

type snapshotRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func newElement(doc *Document, el *rod.Element) (*Element, error) {
	e := &Element{el: el, doc: doc}
	if err := e.refresh(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Element) refresh() error {
	res, err := e.el.Eval(snapshotJS)
	if err != nil {
		return fmt.Errorf("snapshot element: %w", err)
	}
	var snap snapshot
	if err := decode(res, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	e.snap = snap
	return nil
}

func (e *Element) call(js string, args ...any) error {
	_, err := e.el.Eval(js, args...)
	return err
}

func (e *Element) TagName() string { return e.snap.Tag }
func (e *Element) Type() string    { return e.snap.Type }

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.snap.Attrs[name]
	return v, ok
}

func (e *Element) Rect() entity.Rect {
	r := e.snap.Rect
	return entity.Rect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

func (e *Element) Style() entity.ComputedStyle {
	return entity.ComputedStyle{Display: e.snap.Display, Visibility: e.snap.Visibility}
}

func (e *Element) Text() string           { return e.snap.Text }
func (e *Element) Value() string          { return e.snap.Value }
func (e *Element) SelectedText() string   { return e.snap.Selected }
func (e *Element) URL() string            { return e.snap.URL }
func (e *Element) AncestorTags() []string { return e.snap.Ancestors }
func (e *Element) Editable() bool         { return e.snap.Editable }

// Checked reads the live state: page handlers and radio groups may change it
// behind the snapshot. The snapshot value is used when the read fails.
func (e *Element) Checked() bool {
	res, err := e.el.Eval(checkedJS)
	if err != nil {
		return e.snap.Checked
	}
	e.snap.Checked = res.Value.Bool()
	return e.snap.Checked
}

func (e *Element) Children() ([]output.Element, error) {
	els, err := e.el.Elements(":scope > *")
	if err != nil {
		return nil, fmt.Errorf("children: %w", err)
	}
	return e.doc.wrapAll(els)
}

// Contains is false for elements of another document.
func (e *Element) Contains(other output.Element) bool {
	o, ok := other.(*Element)
	if !ok || o == nil || o.doc.page.FrameID != e.doc.page.FrameID {
		return false
	}
	res, err := e.el.Eval(containsJS, o.el.Object)
	return err == nil && res.Value.Bool()
}

func (e *Element) Focus() error {
	if err := e.call(focusJS); err != nil {
		return fmt.Errorf("focus: %w", err)
	}
	return nil
}

// Dispatch fires a synthetic mouse event. The snapshot is refreshed after a
// click since its default action may toggle the element.
func (e *Element) Dispatch(event entity.MouseEvent, ctrl bool) error {
	if err := e.call(dispatchJS, string(event), ctrl); err != nil {
		return fmt.Errorf("dispatch %s: %w", event, err)
	}
	if event == entity.Click {
		return e.refresh()
	}
	return nil
}

func (e *Element) SetMarker(m entity.Marker, on bool) error {
	if m == entity.MarkerCandidate {
		return e.call(markerAttrJS, hintcss.MarkerAttr, string(m), on)
	}
	return e.call(markerClassJS, string(m), on)
}

func (e *Element) ClearMarkers() error {
	return e.call(clearMarkersJS, hintcss.MarkerAttr, []string{hintcss.HintedClass, hintcss.FocusClass})
}

func (e *Element) SetAttr(name, value string) error {
	if err := e.call(setAttrJS, name, value); err != nil {
		return err
	}
	e.snap.Attrs[name] = value
	return nil
}

func (e *Element) RemoveAttr(name string) error {
	if err := e.call(removeAttrJS, name); err != nil {
		return err
	}
	delete(e.snap.Attrs, name)
	return nil
}

func (e *Element) SetDisabled(disabled bool) error {
	return e.call(setDisabledJS, disabled)
}

func (e *Element) SetValue(value string) error {
	if err := e.call(setValueJS, value); err != nil {
		return err
	}
	return e.refresh()
}

func (e *Element) SetChecked(checked bool) error {
	if err := e.call(setCheckedJS, checked); err != nil {
		return err
	}
	e.snap.Checked = checked
	return nil
}
