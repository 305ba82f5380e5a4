package htmldom

import (
	"strings"

	"golang.org/x/net/html"

	"hintkit/internal/infrastructure/browser/hintcss"
)

type CleanConfig struct {
	TagsToRemove  []string
	AttrsToRemove []string
	// DropOverlay removes hint labels so only the page markup remains.
	DropOverlay   bool
	MaxOutputSize int
}

// DefaultCleanConfig keeps the hint overlay and markers and drops what does
// not help reading the page: scripts, styles and layout attributes.
var DefaultCleanConfig = CleanConfig{
	TagsToRemove: []string{
		"script", "style", "noscript", "svg", "link", "meta",
	},
	AttrsToRemove: []string{
		"data-rect", "data-viewport", "data-scroll", "srcset", "sizes",
	},
	MaxOutputSize: 130_000,
}

// Snapshot renders a cleaned copy of the body. The document itself is not
// touched.
func (d *Document) Snapshot(cfg *CleanConfig) string {
	if cfg == nil {
		cfg = &DefaultCleanConfig
	}
	body := findElement(d.root, "body")
	if body == nil {
		return ""
	}

	copied := cloneNode(body)
	cleanNode(copied, cfg)

	var sb strings.Builder
	_ = html.Render(&sb, copied)
	return truncateHTML(sb.String(), cfg.MaxOutputSize)
}

func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}

// cleanNode drops comments, unwanted tags and attributes below n.
func cleanNode(n *html.Node, cfg *CleanConfig) {
	if n.Type == html.CommentNode {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		return
	}
	if n.Type != html.ElementNode {
		return
	}

	if isOneOf(n.Data, cfg.TagsToRemove...) || (cfg.DropOverlay && isOverlayNode(n)) {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		return
	}

	n.Attr = filterAttributes(n.Attr, cfg)

	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		cleanNode(c, cfg)
		c = next
	}
}

func isOverlayNode(n *html.Node) bool {
	v, ok := attr(n, hintcss.MarkerAttr)
	return ok && (v == hintcss.ContainerMarker || v == hintcss.LabelMarker)
}

func filterAttributes(attrs []html.Attribute, cfg *CleanConfig) []html.Attribute {
	var kept []html.Attribute
	for _, a := range attrs {
		if isOneOf(a.Key, cfg.AttrsToRemove...) || strings.HasPrefix(a.Key, "on") {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

func truncateHTML(s string, maxSize int) string {
	if maxSize > 0 && len(s) > maxSize {
		return s[:maxSize] + "\n<!-- truncated -->"
	}
	return s
}

func isOneOf(s string, candidates ...string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}
