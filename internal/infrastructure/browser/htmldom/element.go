package htmldom

import (
	"strings"

	"golang.org/x/net/html"

	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
	"hintkit/internal/infrastructure/browser/hintcss"
)

var _ output.Element = (*Element)(nil)

var editableInputTypes = map[string]bool{
	"": true, "text": true, "password": true, "color": true, "date": true,
	"datetime": true, "datetime-local": true, "email": true, "month": true,
	"number": true, "search": true, "tel": true, "time": true, "url": true,
	"week": true,
}

type Element struct {
	node *html.Node
	doc  *Document

	// Events records dispatched mouse events, in order.
	Events []DispatchedEvent
}

type DispatchedEvent struct {
	Name entity.MouseEvent
	Ctrl bool
}

func (e *Element) TagName() string {
	return e.node.Data
}

func (e *Element) Type() string {
	if e.node.Data != "input" && e.node.Data != "button" {
		return ""
	}
	t, ok := attr(e.node, "type")
	if !ok {
		if e.node.Data == "button" {
			return "submit"
		}
		return "text"
	}
	return strings.ToLower(strings.TrimSpace(t))
}

func (e *Element) Attr(name string) (string, bool) {
	return attr(e.node, name)
}

func (e *Element) Rect() entity.Rect {
	v, ok := attr(e.node, "data-rect")
	if !ok {
		return entity.Rect{}
	}
	nums, err := parseFloats(v, 4)
	if err != nil {
		return entity.Rect{}
	}
	return entity.Rect{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}
}

func (e *Element) Style() entity.ComputedStyle {
	display := ""
	visibility := ""
	for n := e.node; n != nil && n.Type == html.ElementNode; n = n.Parent {
		decl := parseStyle(n)
		if decl["display"] == "none" || hasAttr(n, "hidden") {
			display = "none"
		}
		if n.Data == "input" {
			if t, _ := attr(n, "type"); strings.EqualFold(t, "hidden") {
				display = "none"
			}
		}
		if visibility == "" {
			if v, ok := decl["visibility"]; ok && v != "inherit" {
				visibility = v
			}
		}
	}
	if display == "" {
		display = parseStyle(e.node)["display"]
		if display == "" {
			display = "inline"
		}
	}
	if visibility == "" {
		visibility = "visible"
	}
	return entity.ComputedStyle{Display: display, Visibility: visibility}
}

func (e *Element) Text() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return sb.String()
}

func (e *Element) Value() string {
	if e.node.Data == "textarea" {
		if v, ok := attr(e.node, "value"); ok {
			return v
		}
		return e.Text()
	}
	if e.node.Data == "select" {
		if opt := e.selectedOption(); opt != nil {
			if v, ok := attr(opt, "value"); ok {
				return v
			}
			return e.doc.wrap(opt).Text()
		}
		return ""
	}
	v, _ := attr(e.node, "value")
	return v
}

func (e *Element) Checked() bool {
	return hasAttr(e.node, "checked")
}

func (e *Element) SelectedText() string {
	if opt := e.selectedOption(); opt != nil {
		return strings.TrimSpace(e.doc.wrap(opt).Text())
	}
	return ""
}

func (e *Element) selectedOption() *html.Node {
	if e.node.Data != "select" {
		return nil
	}
	var first, selected *html.Node
	walkElements(e.node, func(n *html.Node) {
		if n.Data != "option" {
			return
		}
		if first == nil {
			first = n
		}
		if selected == nil && hasAttr(n, "selected") {
			selected = n
		}
	})
	if selected != nil {
		return selected
	}
	return first
}

func (e *Element) URL() string {
	if v, ok := attr(e.node, "href"); ok {
		return e.doc.resolve(v)
	}
	if v, ok := attr(e.node, "src"); ok {
		return e.doc.resolve(v)
	}
	return ""
}

func (e *Element) AncestorTags() []string {
	var tags []string
	for n := e.node.Parent; n != nil; n = n.Parent {
		if n.Type == html.ElementNode {
			tags = append(tags, n.Data)
		}
	}
	return tags
}

func (e *Element) Editable() bool {
	if v, ok := attr(e.node, "contenteditable"); ok && (v == "" || strings.EqualFold(v, "true")) {
		return true
	}
	switch e.node.Data {
	case "textarea":
		return true
	case "input":
		return editableInputTypes[e.Type()]
	}
	return false
}

func (e *Element) Children() ([]output.Element, error) {
	var children []output.Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, e.doc.wrap(c))
		}
	}
	return children, nil
}

func (e *Element) Contains(other output.Element) bool {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false
	}
	for n := o.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

func (e *Element) Focus() error {
	e.doc.active = e.node
	return nil
}

// Focused reports whether the element is the document's active element.
func (e *Element) Focused() bool {
	return e.doc.active == e.node
}

// Dispatch records the event and runs the default action of a click:
// checkboxes toggle, radios check and uncheck their group, links navigate.
func (e *Element) Dispatch(event entity.MouseEvent, ctrl bool) error {
	e.Events = append(e.Events, DispatchedEvent{Name: event, Ctrl: ctrl})
	if event != entity.Click || e.Disabled() {
		return nil
	}

	switch {
	case e.node.Data == "input" && e.Type() == "checkbox":
		return e.SetChecked(!e.Checked())
	case e.node.Data == "input" && e.Type() == "radio":
		name, _ := attr(e.node, "name")
		walkElements(e.doc.root, func(n *html.Node) {
			if n.Data == "input" && n != e.node {
				if t, _ := attr(n, "type"); t == "radio" {
					if other, _ := attr(n, "name"); other == name {
						removeAttr(n, "checked")
					}
				}
			}
		})
		return e.SetChecked(true)
	}

	for n := e.node; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href, ok := attr(n, "href"); ok {
				target, _ := attr(n, "target")
				e.doc.Navigations = append(e.doc.Navigations, Navigation{
					URL:    e.doc.resolve(href),
					Target: target,
					Ctrl:   ctrl,
				})
			}
			break
		}
	}
	return nil
}

func (e *Element) SetMarker(m entity.Marker, on bool) error {
	if m == entity.MarkerCandidate {
		if on {
			setAttr(e.node, hintcss.MarkerAttr, string(m))
		} else {
			removeAttr(e.node, hintcss.MarkerAttr)
		}
		return nil
	}
	setClass(e.node, string(m), on)
	return nil
}

func (e *Element) ClearMarkers() error {
	removeAttr(e.node, hintcss.MarkerAttr)
	setClass(e.node, hintcss.HintedClass, false)
	setClass(e.node, hintcss.FocusClass, false)
	return nil
}

// Marked reports whether the element carries marker m.
func (e *Element) Marked(m entity.Marker) bool {
	if m == entity.MarkerCandidate {
		v, _ := attr(e.node, hintcss.MarkerAttr)
		return v == string(m)
	}
	return hasClass(e.node, string(m))
}

func (e *Element) SetAttr(name, value string) error {
	setAttr(e.node, name, value)
	return nil
}

func (e *Element) RemoveAttr(name string) error {
	removeAttr(e.node, name)
	return nil
}

func (e *Element) SetDisabled(disabled bool) error {
	if disabled {
		setAttr(e.node, "disabled", "")
	} else {
		removeAttr(e.node, "disabled")
	}
	return nil
}

func (e *Element) Disabled() bool {
	return hasAttr(e.node, "disabled")
}

// SetValue selects the matching option of a select and sets the value
// attribute of anything else.
func (e *Element) SetValue(value string) error {
	if e.node.Data != "select" {
		setAttr(e.node, "value", value)
		return nil
	}
	walkElements(e.node, func(n *html.Node) {
		if n.Data != "option" {
			return
		}
		v, ok := attr(n, "value")
		if !ok {
			v = strings.TrimSpace(e.doc.wrap(n).Text())
		}
		if v == value {
			setAttr(n, "selected", "")
		} else {
			removeAttr(n, "selected")
		}
	})
	return nil
}

func (e *Element) SetChecked(checked bool) error {
	if checked {
		setAttr(e.node, "checked", "")
	} else {
		removeAttr(e.node, "checked")
	}
	return nil
}
