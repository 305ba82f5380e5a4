package entity

type MouseEvent string

const (
	MouseOver MouseEvent = "mouseover"
	MouseOut  MouseEvent = "mouseout"
	MouseDown MouseEvent = "mousedown"
	MouseUp   MouseEvent = "mouseup"
	Click     MouseEvent = "click"
)

// ClickSequence is dispatched for a synthetic click so that pages listening
// on any of the steps see the interaction.
var ClickSequence = []MouseEvent{MouseOver, MouseDown, MouseUp, Click}

// Marker is a visual state applied to a hinted page element.
type Marker string

const (
	MarkerCandidate Marker = "hint"
	MarkerHinted    Marker = "_hintElem"
	MarkerFocused   Marker = "_hintFocus"
)

type ComputedStyle struct {
	Display    string
	Visibility string
}

func (s ComputedStyle) Visible() bool {
	return s.Display != "none" && s.Visibility == "visible"
}

type ScrollMetrics struct {
	Max     int `json:"max"`
	Percent int `json:"percent"`
	Top     int `json:"top"`
}
