package entity

import (
	"errors"
	"fmt"
	"strings"
)

type StatusKind int

const (
	StatusError StatusKind = iota
	StatusOver
	StatusDone
	StatusInsert
	StatusData
)

var statusTags = map[StatusKind]string{
	StatusError:  "ERROR:",
	StatusOver:   "OVER:",
	StatusDone:   "DONE:",
	StatusInsert: "INSERT:",
	StatusData:   "DATA:",
}

var ErrInvalidStatus = errors.New("invalid status sentinel")

// Status is the result of every hint operation. Only OVER and DATA carry a
// payload; it is serialised to the host's string sentinel by String.
type Status struct {
	Kind    StatusKind
	Payload string
}

func Over(url string) Status   { return Status{Kind: StatusOver, Payload: url} }
func Done() Status             { return Status{Kind: StatusDone} }
func Insert() Status           { return Status{Kind: StatusInsert} }
func Data(value string) Status { return Status{Kind: StatusData, Payload: value} }
func ErrorStatus() Status      { return Status{Kind: StatusError} }

func (s Status) String() string {
	tag := statusTags[s.Kind]
	if s.Kind == StatusOver || s.Kind == StatusData {
		return tag + s.Payload
	}
	return tag
}

// Terminal reports whether the status ends hint mode on the host side.
func (s Status) Terminal() bool {
	return s.Kind == StatusDone || s.Kind == StatusInsert || s.Kind == StatusData
}

func ParseStatus(raw string) (Status, error) {
	for kind, tag := range statusTags {
		if !strings.HasPrefix(raw, tag) {
			continue
		}
		payload := raw[len(tag):]
		if payload != "" && kind != StatusOver && kind != StatusData {
			return Status{}, fmt.Errorf("%w: unexpected payload in %q", ErrInvalidStatus, raw)
		}
		return Status{Kind: kind, Payload: payload}, nil
	}
	return Status{}, fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}
