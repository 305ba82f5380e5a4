// Package pageops holds the one-shot page operations the host runs outside
// of hint mode.
package pageops

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hintkit/internal/application/port/input"
	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
)

var _ input.PageOps = (*UseCase)(nil)

var (
	ErrUnknownScrollKey = errors.New("unknown scroll key")
	ErrInvalidFillPair  = errors.New("fill pair must be selector:value")
)

const firstInputSelector = "input,textarea"

var focusableInputTypes = map[string]bool{
	"text": true, "password": true, "color": true, "date": true,
	"datetime": true, "datetime-local": true, "email": true, "month": true,
	"number": true, "search": true, "tel": true, "time": true, "url": true,
	"week": true,
}

type UseCase struct {
	dom    output.DOMPort
	logger output.LoggerPort
}

func New(dom output.DOMPort, logger output.LoggerPort) *UseCase {
	return &UseCase{dom: dom, logger: logger}
}

// EditableFocused reports whether the focused element takes text input,
// following the focus into same-origin frames.
func (uc *UseCase) EditableFocused(ctx context.Context) (bool, error) {
	el, err := uc.focusedEditable(ctx)
	return el != nil, err
}

// EditableValue returns the content of the focused editable element, or ""
// when nothing editable has the focus.
func (uc *UseCase) EditableValue(ctx context.Context) (string, error) {
	el, err := uc.focusedEditable(ctx)
	if err != nil || el == nil {
		return "", err
	}
	switch el.TagName() {
	case "input", "textarea":
		return el.Value(), nil
	}
	return el.Text(), nil
}

func (uc *UseCase) focusedEditable(ctx context.Context) (output.Element, error) {
	doc, err := uc.dom.TopDocument(ctx)
	if err != nil {
		return nil, fmt.Errorf("top document: %w", err)
	}
	return uc.activeEditable(ctx, doc)
}

func (uc *UseCase) activeEditable(ctx context.Context, doc output.Document) (output.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	active, err := doc.ActiveElement()
	if err != nil {
		return nil, fmt.Errorf("active element: %w", err)
	}
	if active == nil {
		return nil, nil
	}
	if tag := active.TagName(); tag != "iframe" && tag != "frame" {
		if active.Editable() {
			return active, nil
		}
		return nil, nil
	}

	frames, err := doc.Frames()
	if err != nil {
		return nil, fmt.Errorf("frames: %w", err)
	}
	for _, f := range frames {
		if !sameElement(f.Element(), active) {
			continue
		}
		fdoc, err := f.Document()
		if err != nil {
			if errors.Is(err, output.ErrFrameInaccessible) {
				return nil, nil
			}
			return nil, err
		}
		return uc.activeEditable(ctx, fdoc)
	}
	return nil, nil
}

// FocusFirstInput focuses the first visible text-like input or textarea in
// document order, then tries same-origin frames.
func (uc *UseCase) FocusFirstInput(ctx context.Context) (bool, error) {
	doc, err := uc.dom.TopDocument(ctx)
	if err != nil {
		return false, fmt.Errorf("top document: %w", err)
	}
	return uc.focusFirstInput(ctx, doc)
}

func (uc *UseCase) focusFirstInput(ctx context.Context, doc output.Document) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	inputs, err := doc.Elements(firstInputSelector)
	if err != nil {
		return false, fmt.Errorf("find inputs: %w", err)
	}
	for _, el := range inputs {
		if el.TagName() == "input" && !focusableInputTypes[el.Type()] {
			continue
		}
		if !visible(el) {
			continue
		}
		if err := el.Focus(); err != nil {
			return false, fmt.Errorf("focus: %w", err)
		}
		return true, nil
	}

	frames, err := doc.Frames()
	if err != nil {
		return false, fmt.Errorf("frames: %w", err)
	}
	for _, f := range frames {
		fdoc, err := f.Document()
		if err != nil {
			uc.logger.Debug("Skipping frame", "error", err)
			continue
		}
		found, err := uc.focusFirstInput(ctx, fdoc)
		if err != nil || found {
			return found, err
		}
	}
	return false, nil
}

func (uc *UseCase) ScrollPosition(ctx context.Context) (entity.ScrollMetrics, error) {
	doc, err := uc.dom.TopDocument(ctx)
	if err != nil {
		return entity.ScrollMetrics{}, fmt.Errorf("top document: %w", err)
	}
	return doc.ScrollMetrics()
}

// Scroll moves the top window for a vim scroll key. count of zero means no
// count was typed; for g and G a count is a percentage of the page.
func (uc *UseCase) Scroll(ctx context.Context, key rune, step float64, count int) error {
	doc, err := uc.dom.TopDocument(ctx)
	if err != nil {
		return fmt.Errorf("top document: %w", err)
	}
	c := float64(count)
	if count <= 0 {
		c = 1
	}
	page := doc.Viewport().Height

	switch key {
	case 'j':
		return doc.ScrollBy(0, c*step)
	case 'k':
		return doc.ScrollBy(0, -c*step)
	case 'h':
		return doc.ScrollBy(-c*step, 0)
	case 'l':
		return doc.ScrollBy(c*step, 0)
	case 0x04: // ^D
		return doc.ScrollBy(0, c*page/2)
	case 0x15: // ^U
		return doc.ScrollBy(0, -c*page/2)
	case 0x06: // ^F
		return doc.ScrollBy(0, c*page)
	case 0x02: // ^B
		return doc.ScrollBy(0, -c*page)
	}

	offset := doc.ScrollOffset()
	width, height, err := doc.ScrollSize()
	if err != nil {
		return fmt.Errorf("scroll size: %w", err)
	}
	switch key {
	case 'g', 'G':
		y := 0.0
		switch {
		case count > 0:
			y = c * (height - page) / 100
		case key == 'G':
			y = height
		}
		return doc.ScrollTo(offset.X, y)
	case '0':
		return doc.ScrollTo(0, offset.Y)
	case '$':
		return doc.ScrollTo(width, offset.Y)
	}
	return fmt.Errorf("%w: %q", ErrUnknownScrollKey, key)
}

// LockInput disables the element with the given id.
func (uc *UseCase) LockInput(ctx context.Context, id string) (bool, error) {
	el, err := uc.byID(ctx, id)
	if err != nil || el == nil {
		return false, err
	}
	if err := el.SetDisabled(true); err != nil {
		return false, fmt.Errorf("disable #%s: %w", id, err)
	}
	return true, nil
}

// UnlockInput enables and focuses the element with the given id.
func (uc *UseCase) UnlockInput(ctx context.Context, id string) (bool, error) {
	el, err := uc.byID(ctx, id)
	if err != nil || el == nil {
		return false, err
	}
	if err := el.SetDisabled(false); err != nil {
		return false, fmt.Errorf("enable #%s: %w", id, err)
	}
	if err := el.Focus(); err != nil {
		return false, fmt.Errorf("focus #%s: %w", id, err)
	}
	return true, nil
}

func (uc *UseCase) byID(ctx context.Context, id string) (output.Element, error) {
	doc, err := uc.dom.TopDocument(ctx)
	if err != nil {
		return nil, fmt.Errorf("top document: %w", err)
	}
	el, err := doc.ElementByID(id)
	if err != nil {
		return nil, fmt.Errorf("find #%s: %w", id, err)
	}
	return el, nil
}

// FillForm applies selector:value pairs to every element each selector
// matches and returns the number of elements changed. The selector ends at
// the first colon outside brackets, parentheses and quotes. Faulty pairs are
// reported together after the rest have been applied.
func (uc *UseCase) FillForm(ctx context.Context, pairs []string) (int, error) {
	doc, err := uc.dom.TopDocument(ctx)
	if err != nil {
		return 0, fmt.Errorf("top document: %w", err)
	}

	filled := 0
	var errs []error
	for _, pair := range pairs {
		selector, value, ok := splitPair(pair)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidFillPair, pair))
			continue
		}
		els, err := doc.Elements(selector)
		if err != nil {
			errs = append(errs, fmt.Errorf("select %q: %w", selector, err))
			continue
		}
		for _, el := range els {
			if err := fill(el, value); err != nil {
				errs = append(errs, fmt.Errorf("fill %q: %w", selector, err))
				continue
			}
			filled++
		}
	}
	if len(errs) > 0 {
		uc.logger.Warn("Form fill incomplete", "filled", filled, "failed", len(errs))
	}
	return filled, errors.Join(errs...)
}

func fill(el output.Element, value string) error {
	if el.TagName() == "input" {
		switch el.Type() {
		case "checkbox", "radio":
			return el.SetChecked(truthy(value))
		}
	}
	return el.SetValue(value)
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes", "checked":
		return true
	}
	return false
}

func splitPair(pair string) (string, string, bool) {
	depth := 0
	var quote rune
	for i, r := range pair {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '[' || r == '(':
			depth++
		case r == ']' || r == ')':
			depth--
		case r == ':' && depth == 0:
			selector := strings.TrimSpace(pair[:i])
			if selector == "" {
				return "", "", false
			}
			return selector, pair[i+1:], true
		}
	}
	return "", "", false
}

func visible(el output.Element) bool {
	if el.Rect().Empty() {
		return false
	}
	style := el.Style()
	return style.Display != "none" && style.Visibility == "visible"
}

// sameElement compares elements through the port, which has no identity.
func sameElement(a, b output.Element) bool {
	return a != nil && b != nil && a.Contains(b) && b.Contains(a)
}
