package hints

import (
	"errors"
	"fmt"

	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
)

// Action runs when a hint fires and yields the status for the host.
type Action func(el output.Element) (entity.Status, error)

type ActionProvider interface {
	Action(mode entity.Mode) (Action, error)
}

// DefaultActions maps every mode to its built-in action.
type DefaultActions struct{}

func (DefaultActions) Action(mode entity.Mode) (Action, error) {
	switch mode {
	case entity.ModeOpen:
		return func(el output.Element) (entity.Status, error) {
			return entity.Done(), open(el, false)
		}, nil
	case entity.ModeOpenNew:
		return func(el output.Element) (entity.Status, error) {
			return entity.Done(), open(el, true)
		}, nil
	case entity.ModeYankText:
		return func(el output.Element) (entity.Status, error) {
			return entity.Data(el.Text()), nil
		}, nil
	case entity.ModeEditable, entity.ModeImage, entity.ModeImageNew, entity.ModeOpenURL,
		entity.ModePush, entity.ModePushFront, entity.ModeSave, entity.ModeOpenNewURL,
		entity.ModeSpawn, entity.ModeYankURL:
		return func(el output.Element) (entity.Status, error) {
			return entity.Data(el.URL()), nil
		}, nil
	}
	return nil, fmt.Errorf("%w: no action for %s", entity.ErrInvalidMode, mode)
}

// open follows el in the current context, or in a new one with the ctrl
// modifier set since some pages ignore the target attribute in their own
// mouse handlers. The original target is restored afterwards.
func open(el output.Element, newWindow bool) error {
	oldTarget, hadTarget := el.Attr("target")
	if newWindow {
		if err := el.SetAttr("target", "_blank"); err != nil {
			return fmt.Errorf("set target: %w", err)
		}
	} else if oldTarget == "_blank" {
		if err := el.RemoveAttr("target"); err != nil {
			return fmt.Errorf("remove target: %w", err)
		}
	}

	clickErr := click(el, newWindow)

	var restoreErr error
	if hadTarget {
		restoreErr = el.SetAttr("target", oldTarget)
	} else {
		restoreErr = el.RemoveAttr("target")
	}
	return errors.Join(clickErr, restoreErr)
}

func click(el output.Element, ctrl bool) error {
	for _, ev := range entity.ClickSequence {
		if err := el.Dispatch(ev, ctrl); err != nil {
			return fmt.Errorf("dispatch %s: %w", ev, err)
		}
	}
	return nil
}

// handleForm focuses or toggles form controls and frames. handled is false
// for every other element, which is then left to the mode action.
func handleForm(el output.Element) (status entity.Status, handled bool, err error) {
	switch el.TagName() {
	case "input", "textarea", "select":
		switch el.Type() {
		case "radio", "checkbox":
			if err := el.Focus(); err != nil {
				return entity.Status{}, true, fmt.Errorf("focus: %w", err)
			}
			return entity.Done(), true, click(el, false)
		case "submit", "reset", "button", "image":
			return entity.Done(), true, click(el, false)
		}
		if err := el.Focus(); err != nil {
			return entity.Status{}, true, fmt.Errorf("focus: %w", err)
		}
		return entity.Insert(), true, nil
	case "iframe", "frame":
		if err := el.Focus(); err != nil {
			return entity.Status{}, true, fmt.Errorf("focus: %w", err)
		}
		return entity.Done(), true, nil
	}
	return entity.Status{}, false, nil
}
