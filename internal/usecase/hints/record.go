package hints

import (
	"strings"

	"hintkit/internal/application/port/output"
	"hintkit/internal/domain/entity"
)

type hintRecord struct {
	target   output.Element
	label    output.Label
	text     string
	showText bool
	// code is only valid for the current display pass.
	code string
	// screen is the label position in top-level window coordinates.
	screen entity.Point
}

func newRecord(el output.Element, label output.Label, screen entity.Point) *hintRecord {
	text, showText := describe(el)
	return &hintRecord{
		target:   el,
		label:    label,
		text:     text,
		showText: showText,
		screen:   screen,
	}
}

// describe derives the text a hint is filtered by, and whether that text is
// worth showing next to the code.
func describe(el output.Element) (string, bool) {
	switch el.TagName() {
	case "img":
		return imageText(el), true
	case "input":
		t := el.Type()
		if t == "image" {
			alt, _ := el.Attr("alt")
			return alt, false
		}
		if v := el.Value(); v != "" && t != "password" {
			return v, t == "radio" || t == "checkbox"
		}
		return "", false
	case "select":
		return el.SelectedText(), false
	}

	if img := loneImage(el); img != nil {
		return imageText(img), true
	}
	return el.Text(), false
}

func imageText(img output.Element) string {
	if title, ok := img.Attr("title"); ok && title != "" {
		return title
	}
	alt, _ := img.Attr("alt")
	return alt
}

// loneImage returns the first child image of an element without text.
func loneImage(el output.Element) output.Element {
	if strings.TrimSpace(el.Text()) != "" {
		return nil
	}
	children, err := el.Children()
	if err != nil || len(children) == 0 {
		return nil
	}
	if children[0].TagName() == "img" {
		return children[0]
	}
	return nil
}

// labelText is the code followed by the toggle state of checkboxes and
// radios and, for records showing text, a preview of it.
func (r *hintRecord) labelText() string {
	var parts []string
	if r.target.TagName() == "input" {
		switch r.target.Type() {
		case "checkbox":
			parts = append(parts, glyph(r.target.Checked(), "☑", "☐"))
		case "radio":
			parts = append(parts, glyph(r.target.Checked(), "⊙", "○"))
		}
	}
	if r.showText && r.text != "" {
		parts = append(parts, preview(r.text))
	}
	if len(parts) == 0 {
		return r.code
	}
	return r.code + ": " + strings.Join(parts, " ")
}

func glyph(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}

func preview(text string) string {
	r := []rune(text)
	if len(r) > entity.PreviewLength {
		r = r[:entity.PreviewLength]
	}
	return string(r)
}

// textMatcher reports whether a text contains every whitespace separated
// token of filter, case-insensitively. An empty filter matches everything.
func textMatcher(filter string) func(string) bool {
	tokens := strings.Fields(strings.ToLower(filter))
	return func(text string) bool {
		text = strings.ToLower(text)
		for _, tok := range tokens {
			if !strings.Contains(text, tok) {
				return false
			}
		}
		return true
	}
}

func (r *hintRecord) view(active, focused bool) entity.HintView {
	return entity.HintView{
		Code:     r.code,
		Tag:      r.target.TagName(),
		Text:     r.text,
		URL:      r.target.URL(),
		Position: r.screen,
		Active:   active,
		Focused:  focused,
	}
}
