package hints

import (
	"fmt"
	"strings"

	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
)

// Predicate decides whether an element is a hint candidate.
type Predicate func(el output.Element) bool

// Query selects the candidates of a mode. Selector is a CSS selector list
// handed to the DOM backend to narrow the element set; Match is
// authoritative and is applied to every element the backend returns.
type Query struct {
	Selector string
	Match    Predicate
}

type QueryProvider interface {
	Query(mode entity.Mode) (Query, error)
}

func Tag(names ...string) Predicate {
	return func(el output.Element) bool {
		tag := el.TagName()
		for _, n := range names {
			if tag == n {
				return true
			}
		}
		return false
	}
}

func HasAttr(name string) Predicate {
	return func(el output.Element) bool {
		_, ok := el.Attr(name)
		return ok
	}
}

func AttrEquals(name, value string) Predicate {
	return func(el output.Element) bool {
		v, ok := el.Attr(name)
		return ok && v == value
	}
}

func TypeIn(types ...string) Predicate {
	return func(el output.Element) bool {
		t := el.Type()
		for _, want := range types {
			if t == want {
				return true
			}
		}
		return false
	}
}

func HasAncestor(tag string) Predicate {
	return func(el output.Element) bool {
		for _, a := range el.AncestorTags() {
			if a == tag {
				return true
			}
		}
		return false
	}
}

func Any(ps ...Predicate) Predicate {
	return func(el output.Element) bool {
		for _, p := range ps {
			if p(el) {
				return true
			}
		}
		return false
	}
}

func All(ps ...Predicate) Predicate {
	return func(el output.Element) bool {
		for _, p := range ps {
			if !p(el) {
				return false
			}
		}
		return true
	}
}

func Not(p Predicate) Predicate {
	return func(el output.Element) bool {
		return !p(el)
	}
}

var (
	linkQuery = Query{
		Selector: strings.Join([]string{
			"[href]", "[onclick]", "[tabindex]", `[class="lk"]`, `[role="link"]`, `[role="button"]`,
			"input", "textarea", "button", "select",
		}, ","),
		Match: Any(
			HasAttr("href"),
			HasAttr("onclick"),
			HasAttr("tabindex"),
			AttrEquals("class", "lk"),
			AttrEquals("role", "link"),
			AttrEquals("role", "button"),
			All(Tag("input"), Not(Any(TypeIn("hidden"), HasAttr("disabled"), HasAttr("readonly")))),
			All(Tag("textarea"), Not(Any(HasAttr("disabled"), HasAttr("readonly")))),
			Tag("button"),
			Tag("select"),
		),
	}

	editableQuery = Query{
		Selector: "input,textarea",
		Match: Any(
			All(Tag("input"), TypeIn("text")),
			Tag("textarea"),
		),
	}

	imageQuery = Query{
		Selector: "img[src]",
		Match:    All(Tag("img"), HasAttr("src")),
	}

	urlQuery = Query{
		Selector: "[href],img[src],iframe[src]",
		Match: Any(
			HasAttr("href"),
			All(Tag("img"), HasAttr("src"), Not(HasAncestor("a"))),
			All(Tag("iframe"), HasAttr("src")),
		),
	}
)

// DefaultQueries maps every mode to its built-in query.
type DefaultQueries struct{}

func (DefaultQueries) Query(mode entity.Mode) (Query, error) {
	switch mode {
	case entity.ModeOpen, entity.ModeOpenNew, entity.ModeYankText:
		return linkQuery, nil
	case entity.ModeEditable:
		return editableQuery, nil
	case entity.ModeImage, entity.ModeImageNew:
		return imageQuery, nil
	case entity.ModeOpenURL, entity.ModePush, entity.ModePushFront, entity.ModeSave,
		entity.ModeOpenNewURL, entity.ModeSpawn, entity.ModeYankURL:
		return urlQuery, nil
	}
	return Query{}, fmt.Errorf("%w: no query for %s", entity.ErrInvalidMode, mode)
}
