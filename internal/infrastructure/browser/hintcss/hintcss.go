// Package hintcss holds the names and the style sheet shared by every DOM
// backend that renders hint overlays.
package hintcss

import (
	"fmt"
	"strings"

	"hintkit/internal/domain/entity"
)

const (
	ContainerID     = "_hintContainer"
	LabelClass      = "_hintLabel"
	HintedClass     = string(entity.MarkerHinted)
	FocusClass      = string(entity.MarkerFocused)
	MarkerAttr      = "vimbhint"
	StyleAttr       = "vimbhintstyle"
	LabelMarker     = "label"
	ContainerMarker = "container"
)

// StyleSheet renders the overlay CSS for a hint style. A non-empty CSS field
// replaces the generated rules.
func StyleSheet(s entity.HintStyle) string {
	if strings.TrimSpace(s.CSS) != "" {
		return s.CSS
	}
	var b strings.Builder
	fmt.Fprintf(&b, "#%s{line-height:1em;}", ContainerID)
	fmt.Fprintf(&b, ".%s{position:absolute;z-index:225000;font:bold 11px monospace;"+
		"color:%s;background-color:#fff;border:1px solid #444;padding:0 1px;opacity:.8;}",
		LabelClass, s.Foreground)
	fmt.Fprintf(&b, ".%s{background-color:%s;color:%s;}", HintedClass, s.Background, s.Foreground)
	fmt.Fprintf(&b, ".%s.%s,.%s.%s{background-color:%s;}",
		HintedClass, FocusClass, LabelClass, FocusClass, s.FocusBackground)
	return b.String()
}

// LabelStyle is the inline style of a label placed at pos. Labels start
// hidden and are revealed by the display pass.
func LabelStyle(pos entity.Point, visible bool) string {
	display := "display:none;"
	if visible {
		display = ""
	}
	return fmt.Sprintf("%sleft:%gpx;top:%gpx;", display, pos.X, pos.Y)
}
