package hints

import (
	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
)

// VisibilityPolicy decides whether a candidate is visible within bounds,
// given in the coordinates of doc.
type VisibilityPolicy interface {
	Visible(doc output.Document, el output.Element, bounds entity.Rect) bool
}

func NewVisibilityPolicy(p entity.VisibilityPolicy) VisibilityPolicy {
	if p == entity.VisibilityHitTest {
		return HitTestPolicy{}
	}
	return StylePolicy{}
}

// StylePolicy accepts elements whose rect meets the bounds and whose
// computed style is displayed and visible. Zero sized elements, such as
// links wrapping floated content, pass only through a visible child.
type StylePolicy struct{}

func (p StylePolicy) Visible(doc output.Document, el output.Element, bounds entity.Rect) bool {
	if el == nil {
		return false
	}
	rect := el.Rect()
	if !rect.Intersects(bounds) {
		return false
	}
	if rect.Empty() {
		children, err := el.Children()
		if err != nil {
			return false
		}
		found := false
		for _, c := range children {
			if p.Visible(doc, c, bounds) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return el.Style().Visible()
}

// HitTestPolicy is StylePolicy plus a check that nothing covers the
// element at the centre of its visible part.
type HitTestPolicy struct {
	StylePolicy
}

func (p HitTestPolicy) Visible(doc output.Document, el output.Element, bounds entity.Rect) bool {
	if !p.StylePolicy.Visible(doc, el, bounds) {
		return false
	}
	rect := el.Rect()
	if rect.Empty() {
		return true
	}
	hit, err := doc.ElementFromPoint(rect.Intersect(bounds).Center())
	if err != nil {
		// Hit testing is best effort; fall back to the style result.
		return true
	}
	return hit != nil && el.Contains(hit)
}
