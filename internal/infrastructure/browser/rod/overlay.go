package rod

import (
	"errors"
	"fmt"

	"github.com/go-rod/rod"

	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
	"hintkit/internal/infrastructure/browser/hintcss"
)

var (
	_ output.Overlay = (*Overlay)(nil)
	_ output.Label   = (*Label)(nil)
)

var ErrOverlayRemoved = errors.New("overlay already removed")

// Overlay keeps labels in Go until Commit injects them with one script.
// Committed labels are addressed by their index in the container.
type Overlay struct {
	doc       *Document
	style     entity.HintStyle
	container *rod.Element
	pending   []*Label
	removed   bool
}

type Label struct {
	overlay *Overlay
	pos     entity.Point
	index   int
}

type labelSpec struct {
	Style string `json:"style"`
}

func (o *Overlay) AddLabel(pos entity.Point) (output.Label, error) {
	if o.removed {
		return nil, ErrOverlayRemoved
	}
	l := &Label{overlay: o, pos: pos, index: -1}
	o.pending = append(o.pending, l)
	return l, nil
}

func (o *Overlay) Commit() error {
	if o.removed {
		return ErrOverlayRemoved
	}
	if o.container != nil {
		return errors.New("overlay already committed")
	}
	specs := make([]labelSpec, len(o.pending))
	for i, l := range o.pending {
		specs[i] = labelSpec{Style: hintcss.LabelStyle(l.pos, false)}
	}
	container, err := o.doc.page.ElementByJS(rod.Eval(commitJS,
		hintcss.StyleSheet(o.style), hintcss.StyleAttr, hintcss.ContainerID,
		hintcss.LabelClass, hintcss.MarkerAttr, specs))
	if err != nil {
		var notFound *rod.ElementNotFoundError
		if errors.As(err, &notFound) {
			return ErrNoBody
		}
		return fmt.Errorf("inject labels: %w", err)
	}
	o.container = container
	for i, l := range o.pending {
		l.index = i
	}
	o.pending = nil
	return nil
}

func (o *Overlay) Remove() error {
	if o.removed {
		return nil
	}
	o.removed = true
	if o.container == nil {
		return nil
	}
	return o.container.Remove()
}

func (l *Label) container() (*rod.Element, error) {
	o := l.overlay
	if o.removed {
		return nil, ErrOverlayRemoved
	}
	if o.container == nil || l.index < 0 {
		return nil, errors.New("label not committed")
	}
	return o.container, nil
}

func (l *Label) Show(text string) error {
	c, err := l.container()
	if err != nil {
		return err
	}
	_, err = c.Eval(labelShowJS, l.index, text, hintcss.LabelStyle(l.pos, true))
	return err
}

func (l *Label) Hide() error {
	c, err := l.container()
	if err != nil {
		return err
	}
	_, err = c.Eval(labelHideJS, l.index, hintcss.LabelStyle(l.pos, false))
	return err
}

func (l *Label) SetFocused(focused bool) error {
	c, err := l.container()
	if err != nil {
		return err
	}
	_, err = c.Eval(labelFocusJS, l.index, hintcss.FocusClass, focused)
	return err
}
