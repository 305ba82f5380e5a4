package entity

import (
	"errors"
	"fmt"
)

// Mode selects which elements get hints and what firing one does. The values
// are the single key codes the host sends.
type Mode rune

const (
	ModeOpen       Mode = 'o'
	ModeOpenNew    Mode = 't'
	ModeEditable   Mode = 'e'
	ModeImage      Mode = 'i'
	ModeImageNew   Mode = 'I'
	ModeOpenURL    Mode = 'O'
	ModePush       Mode = 'p'
	ModePushFront  Mode = 'P'
	ModeSave       Mode = 's'
	ModeOpenNewURL Mode = 'T'
	ModeSpawn      Mode = 'x'
	ModeYankURL    Mode = 'y'
	ModeYankText   Mode = 'Y'
)

var ErrInvalidMode = errors.New("invalid hint mode")

var modeNames = map[Mode]string{
	ModeOpen:       "open",
	ModeOpenNew:    "open-new",
	ModeEditable:   "editable",
	ModeImage:      "image",
	ModeImageNew:   "image-new",
	ModeOpenURL:    "open-url",
	ModePush:       "push",
	ModePushFront:  "push-front",
	ModeSave:       "save",
	ModeOpenNewURL: "open-new-url",
	ModeSpawn:      "spawn",
	ModeYankURL:    "yank-url",
	ModeYankText:   "yank-text",
}

func ParseMode(s string) (Mode, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	m := Mode(r[0])
	if _, ok := modeNames[m]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%q)", rune(m))
}

// HandlesForms reports whether firing a hint in this mode focuses or toggles
// form controls instead of running the mode action. Yank text is excluded so
// form field contents can be yanked.
func (m Mode) HandlesForms() bool {
	return m == ModeEditable || m == ModeOpen || m == ModeOpenNew
}
