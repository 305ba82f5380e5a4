package entity

import (
	"errors"
	"fmt"
)

const (
	DefaultMaxHints = 500
	DefaultHintKeys = "0123456789"
	PreviewLength   = 20
)

var ErrInvalidOptions = errors.New("invalid hint options")

type VisibilityPolicy string

const (
	// VisibilityStyle checks geometry against the viewport plus computed
	// display and visibility.
	VisibilityStyle VisibilityPolicy = "style"
	// VisibilityHitTest additionally requires the element, or one of its
	// descendants, to be on top at its own centre.
	VisibilityHitTest VisibilityPolicy = "hittest"
)

type HintStyle struct {
	Background      string
	FocusBackground string
	Foreground      string
	CSS             string
}

func DefaultHintStyle() HintStyle {
	return HintStyle{
		Background:      "#ff0",
		FocusBackground: "#8f0",
		Foreground:      "#000",
	}
}

type Options struct {
	MaxHints   int
	Keys       string
	KeepOpen   bool
	FollowLast bool
	FixedWidth bool
	Visibility VisibilityPolicy
	Style      HintStyle
}

func DefaultOptions() Options {
	return Options{
		MaxHints:   DefaultMaxHints,
		Keys:       DefaultHintKeys,
		FollowLast: true,
		Visibility: VisibilityStyle,
		Style:      DefaultHintStyle(),
	}
}

func (o Options) Validate() error {
	if o.MaxHints <= 0 {
		return fmt.Errorf("%w: max hints must be positive, got %d", ErrInvalidOptions, o.MaxHints)
	}
	keys := []rune(o.Keys)
	if len(keys) < 2 {
		return fmt.Errorf("%w: hint keys need at least two symbols, got %q", ErrInvalidOptions, o.Keys)
	}
	seen := make(map[rune]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			return fmt.Errorf("%w: duplicate hint key %q", ErrInvalidOptions, k)
		}
		seen[k] = true
	}
	switch o.Visibility {
	case VisibilityStyle, VisibilityHitTest:
	default:
		return fmt.Errorf("%w: unknown visibility policy %q", ErrInvalidOptions, o.Visibility)
	}
	return nil
}
