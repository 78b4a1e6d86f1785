package checker

import (
	"net/url"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// The predicates in this file name every detection heuristic used by the
// checkers. Each one is a stand-in for a real structural inspection that
// the node model cannot express; keeping them behind named functions
// means a future structural signal only has to change one place.

// nameContains reports whether the node's display name contains any of
// the given substrings, case-insensitively. This is the fallback signal
// checkers use because the Type tag is advisory only.
func nameContains(n *model.Node, subs ...string) bool {
	name := strings.ToLower(n.Name)
	for _, sub := range subs {
		if strings.Contains(name, sub) {
			return true
		}
	}
	return false
}

// isHeading reports whether the node looks like a heading of the given
// level (1..3).
func isHeading(n *model.Node, level int) bool {
	switch level {
	case 1:
		return n.Type == model.TypeHeading1 || nameContains(n, "h1")
	case 2:
		return n.Type == model.TypeHeading2 || nameContains(n, "h2")
	case 3:
		return n.Type == model.TypeHeading3 || nameContains(n, "h3")
	default:
		return false
	}
}

// isImageNode reports whether the node looks like an image.
func isImageNode(n *model.Node) bool {
	return n.Type == model.TypeImage || nameContains(n, "image", "img", "photo", "picture")
}

// isLinkNode reports whether the node looks like a hyperlink. A node
// carrying an Href is a link regardless of its type or name.
func isLinkNode(n *model.Node) bool {
	return n.Type == model.TypeLink || n.Href != "" || nameContains(n, "link")
}

// isTextNode reports whether the node carries visible text content.
// Image, link, and meta nodes are excluded even when they have text so
// their labels are not counted as page copy.
func isTextNode(n *model.Node) bool {
	if n.Type == model.TypeText {
		return true
	}
	if n.Type != "" {
		return false
	}
	return n.Text != "" && !isImageNode(n) && !isLinkNode(n) && !isMetaNode(n)
}

// isMetaNode reports whether the node is a metadata entry.
func isMetaNode(n *model.Node) bool {
	return n.Type == model.TypeMeta || n.MetaName != "" || n.MetaProperty != ""
}

// isInteractive reports whether the node is a button- or link-like
// element a user is expected to activate.
func isInteractive(n *model.Node) bool {
	if n.Type == model.TypeButton || n.Type == model.TypeLink {
		return true
	}
	return nameContains(n, "button", "btn", "cta")
}

// isInputNode reports whether the node looks like a form input.
func isInputNode(n *model.Node) bool {
	return n.Type == model.TypeInput || nameContains(n, "input", "field", "textarea")
}

// isLabelNode reports whether the node looks like a form label.
func isLabelNode(n *model.Node) bool {
	return n.Type == model.TypeLabel || nameContains(n, "label")
}

// isDecorativeImage is the images checker's decorative heuristic: an
// explicit flag, or a name suggesting ornament. Note that the
// accessibility checker intentionally does NOT use this predicate for
// its missing-alt rule; the two checkers treat empty alt differently and
// that divergence is preserved.
func isDecorativeImage(n *model.Node) bool {
	return n.Decorative || nameContains(n, "decorative", "divider", "spacer", "ornament", "background")
}

// metaByName returns the first meta node whose name attribute matches,
// case-insensitively.
func metaByName(nodes []*model.Node, name string) *model.Node {
	for _, n := range nodes {
		if !isMetaNode(n) {
			continue
		}
		if strings.EqualFold(n.MetaName, name) {
			return n
		}
	}
	return nil
}

// metaByProperty returns the first meta node whose property attribute
// matches, case-insensitively. Open Graph tags use property rather than
// name.
func metaByProperty(nodes []*model.Node, property string) *model.Node {
	for _, n := range nodes {
		if !isMetaNode(n) {
			continue
		}
		if strings.EqualFold(n.MetaProperty, property) {
			return n
		}
	}
	return nil
}

// findTitle locates the page title: a meta entry named "title", a node
// typed "title", or any named-"title" node with text. Returns the title
// text and the node it came from, or ("", nil).
func findTitle(nodes []*model.Node) (string, *model.Node) {
	for _, n := range nodes {
		if isMetaNode(n) && strings.EqualFold(n.MetaName, "title") && n.MetaContent != "" {
			return n.MetaContent, n
		}
	}
	for _, n := range nodes {
		if n.Type == "title" && n.Text != "" {
			return n.Text, n
		}
	}
	for _, n := range nodes {
		if nameContains(n, "title") && n.Text != "" && !isMetaNode(n) {
			return n.Text, n
		}
	}
	return "", nil
}

// findHeadings returns all nodes that look like headings of the level.
func findHeadings(nodes []*model.Node, level int) []*model.Node {
	var out []*model.Node
	for _, n := range nodes {
		if isHeading(n, level) {
			out = append(out, n)
		}
	}
	return out
}

// headingTexts collects the text of every H1-H3 node.
func headingTexts(nodes []*model.Node) []string {
	var out []string
	for _, n := range nodes {
		for level := 1; level <= 3; level++ {
			if isHeading(n, level) && n.Text != "" {
				out = append(out, n.Text)
				break
			}
		}
	}
	return out
}

// isExternalHref reports whether the href points at another host.
// Localhost addresses count as internal.
func isExternalHref(href string) bool {
	u, err := url.Parse(href)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host != "localhost" && host != "127.0.0.1"
}

// isRelativeHref reports whether the href is a recognizable relative
// form: rooted, fragment, or dot-relative.
func isRelativeHref(href string) bool {
	for _, prefix := range []string{"/", "#", "./", "../"} {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}
