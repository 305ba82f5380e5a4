package htmldom

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"hintkit/internal/domain/entity"
	"hintkit/internal/infrastructure/browser/hintcss"
)

// walkElements visits element nodes below n in document order.
func walkElements(n *html.Node, fn func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			fn(c)
		}
		walkElements(c, fn)
	}
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func inOverlay(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if v, ok := attr(p, hintcss.MarkerAttr); ok && (v == hintcss.ContainerMarker || v == hintcss.LabelMarker) {
			return true
		}
		if _, ok := attr(p, hintcss.StyleAttr); ok {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attr(n, key)
	return ok
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			kept = append(kept, a)
		}
	}
	n.Attr = kept
}

func hasClass(n *html.Node, class string) bool {
	v, _ := attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func setClass(n *html.Node, class string, on bool) {
	v, _ := attr(n, "class")
	var kept []string
	for _, c := range strings.Fields(v) {
		if c != class {
			kept = append(kept, c)
		}
	}
	if on {
		kept = append(kept, class)
	}
	if len(kept) == 0 {
		removeAttr(n, "class")
		return
	}
	setAttr(n, "class", strings.Join(kept, " "))
}

// parseStyle reads the inline style attribute into lower-cased declarations.
func parseStyle(n *html.Node) map[string]string {
	decl := make(map[string]string)
	v, ok := attr(n, "style")
	if !ok {
		return decl
	}
	for _, part := range strings.Split(v, ";") {
		key, val, found := strings.Cut(part, ":")
		if !found {
			continue
		}
		decl[strings.ToLower(strings.TrimSpace(key))] = strings.ToLower(strings.TrimSpace(val))
	}
	return decl
}

func parseFloats(s string, want int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("want %d numbers, got %q", want, s)
	}
	nums := make([]float64, want)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		nums[i] = f
	}
	return nums, nil
}

func formatRect(r entity.Rect) string {
	return fmt.Sprintf("%g,%g,%g,%g", r.X, r.Y, r.Width, r.Height)
}
