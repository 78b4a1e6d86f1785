package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Suhas010/Framelytics/internal/model"
)

// textTags are the elements whose inner text counts as page copy.
// Container elements (div, section) are skipped so nested copy is not
// counted twice.
var textTags = map[string]bool{
	"p": true, "li": true, "blockquote": true, "figcaption": true,
	"td": true, "pre": true, "dd": true, "dt": true,
}

// Nodes parses HTML markup and returns the normalized node list.
// A parse failure (truly malformed input, not just sloppy HTML; the
// parser repairs most real-world markup) is the only error case.
func Nodes(markup string) ([]*model.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("extract: parse markup: %w", err)
	}

	x := &extractor{}

	if lang, ok := doc.Find("html").Attr("lang"); ok && lang != "" {
		x.add(&model.Node{
			Name: "lang", Type: model.TypeMeta,
			MetaName: "lang", MetaContent: lang,
		})
	}

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		x.element(s)
	})

	return x.nodes, nil
}

// extractor accumulates nodes and hands out sequential IDs.
type extractor struct {
	nodes []*model.Node
	seq   int
}

// add assigns the node an ID (keeping an explicit HTML id when the
// element carried one) and appends it.
func (x *extractor) add(n *model.Node) {
	x.seq++
	if n.ID == "" {
		n.ID = fmt.Sprintf("n%d", x.seq)
	}
	x.nodes = append(x.nodes, n)
}

// element maps one HTML element to zero or one nodes.
func (x *extractor) element(s *goquery.Selection) {
	tag := goquery.NodeName(s)

	var n *model.Node
	switch tag {
	case "title":
		n = &model.Node{Name: "title", Type: "title", Text: text(s)}
	case "meta":
		n = metaNode(s)
	case "link":
		n = linkRelNode(s)
	case "h1":
		n = &model.Node{Name: displayName(s, "h1"), Type: model.TypeHeading1, Text: text(s)}
	case "h2":
		n = &model.Node{Name: displayName(s, "h2"), Type: model.TypeHeading2, Text: text(s)}
	case "h3":
		n = &model.Node{Name: displayName(s, "h3"), Type: model.TypeHeading3, Text: text(s)}
	case "a":
		n = anchorNode(s)
	case "img":
		n = imageNode(s)
	case "button":
		n = &model.Node{Name: displayName(s, "button"), Type: model.TypeButton, Text: text(s)}
	case "input", "textarea", "select":
		n = inputNode(s, tag)
	case "label":
		n = labelNode(s)
	case "script":
		n = scriptNode(s)
	case "form":
		action := s.AttrOr("action", "")
		n = &model.Node{Name: displayName(s, "form"), Href: action}
	case "header", "nav", "footer", "main", "aside":
		n = &model.Node{Name: displayName(s, tag)}
	case "iframe", "frame":
		n = &model.Node{Name: displayName(s, tag), Type: model.TypeFrame, Href: s.AttrOr("src", "")}
	default:
		if textTags[tag] {
			if t := text(s); t != "" {
				n = &model.Node{Name: displayName(s, tag), Type: model.TypeText, Text: t}
			}
		}
	}
	if n == nil {
		// Elements outside the audit vocabulary still matter when they
		// carry microdata or ARIA attributes.
		n = attributeOnlyNode(s, tag)
	}
	if n == nil {
		return
	}

	if id, ok := s.Attr("id"); ok && id != "" && n.ID == "" {
		n.ID = id
	}
	if role, ok := s.Attr("role"); ok {
		n.Role = role
	}
	if al, ok := s.Attr("aria-label"); ok {
		n.AriaLabel = al
	}
	if it, ok := s.Attr("itemtype"); ok {
		n.ItemType = it
	}
	applyStyle(n, s.AttrOr("style", ""))
	applyDimensions(n, s)

	x.add(n)
}

// attributeOnlyNode emits a bare node for elements that only matter
// through their microdata or role attributes.
func attributeOnlyNode(s *goquery.Selection, tag string) *model.Node {
	_, hasItemType := s.Attr("itemtype")
	_, hasRole := s.Attr("role")
	if !hasItemType && !hasRole {
		return nil
	}
	return &model.Node{Name: displayName(s, tag)}
}

// metaNode maps <meta> variants: charset, name/content, property/content.
func metaNode(s *goquery.Selection) *model.Node {
	if charset, ok := s.Attr("charset"); ok {
		return &model.Node{
			Name: "charset", Type: model.TypeMeta,
			MetaName: "charset", MetaContent: charset,
		}
	}

	content := s.AttrOr("content", "")
	if name, ok := s.Attr("name"); ok && name != "" {
		return &model.Node{
			Name: name, Type: model.TypeMeta,
			MetaName: name, MetaContent: content,
		}
	}
	if property, ok := s.Attr("property"); ok && property != "" {
		return &model.Node{
			Name: property, Type: model.TypeMeta,
			MetaProperty: property, MetaContent: content,
		}
	}
	return nil
}

// linkRelNode maps <link rel=...> entries. The MetaContent slot carries
// the hreflang value for alternates and the sizes value for icons, which
// is what the downstream rules read from it.
func linkRelNode(s *goquery.Selection) *model.Node {
	rel, ok := s.Attr("rel")
	if !ok || rel == "" {
		return nil
	}
	n := &model.Node{Name: rel, Rel: rel, Href: s.AttrOr("href", "")}
	if hreflang, ok := s.Attr("hreflang"); ok {
		n.MetaContent = hreflang
	} else if sizes, ok := s.Attr("sizes"); ok {
		n.MetaContent = sizes
	}
	return n
}

// anchorNode maps <a>.
func anchorNode(s *goquery.Selection) *model.Node {
	href, hasHref := s.Attr("href")
	if !hasHref {
		// Named anchors without hrefs are navigation targets, not links.
		return nil
	}
	return &model.Node{
		Name:   displayName(s, "link"),
		Type:   model.TypeLink,
		Href:   href,
		Text:   text(s),
		Rel:    s.AttrOr("rel", ""),
		Target: s.AttrOr("target", ""),
	}
}

// imageNode maps <img>, preserving the present-vs-empty alt distinction.
func imageNode(s *goquery.Selection) *model.Node {
	src := s.AttrOr("src", "")
	alt, altPresent := s.Attr("alt")

	name := src[strings.LastIndex(src, "/")+1:]
	if name == "" {
		name = displayName(s, "image")
	}

	return &model.Node{
		Name: name, Type: model.TypeImage,
		Href: src, Alt: alt, AltPresent: altPresent,
		Decorative: s.AttrOr("role", "") == "presentation",
	}
}

// inputNode maps form controls. Hidden inputs are invisible to both
// users and checkers.
func inputNode(s *goquery.Selection, tag string) *model.Node {
	if s.AttrOr("type", "") == "hidden" {
		return nil
	}
	identifier := s.AttrOr("name", s.AttrOr("id", ""))
	return &model.Node{
		Name: strings.TrimSpace(identifier + " " + tag),
		Type: model.TypeInput,
	}
}

// labelNode maps <label>; the for-attribute lands in MetaContent so the
// accessibility rules can match it against control names.
func labelNode(s *goquery.Selection) *model.Node {
	return &model.Node{
		Name: displayName(s, "label"),
		Type: model.TypeLabel,
		Text: text(s),

		MetaContent: s.AttrOr("for", ""),
	}
}

// scriptNode maps <script>. Inline JSON-LD keeps its payload as node
// text; external scripts carry only their source reference.
func scriptNode(s *goquery.Selection) *model.Node {
	n := &model.Node{Type: model.TypeScript, Href: s.AttrOr("src", "")}
	if strings.Contains(strings.ToLower(s.AttrOr("type", "")), "ld+json") {
		n.Name = "ld+json " + displayName(s, "script")
		n.Text = strings.TrimSpace(s.Text())
	} else {
		n.Name = displayName(s, "script")
	}
	return n
}

// displayName builds a human-readable node name: the element's id, name
// attribute, or first class, suffixed with the element kind.
func displayName(s *goquery.Selection, kind string) string {
	for _, attr := range []string{"id", "name"} {
		if v, ok := s.Attr(attr); ok && v != "" {
			return v + " " + kind
		}
	}
	if classes, ok := s.Attr("class"); ok {
		if fields := strings.Fields(classes); len(fields) > 0 {
			return fields[0] + " " + kind
		}
	}
	return kind
}

// text returns the element's trimmed, whitespace-collapsed inner text.
func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// applyDimensions reads explicit width/height attributes.
func applyDimensions(n *model.Node, s *goquery.Selection) {
	if w, err := strconv.ParseFloat(s.AttrOr("width", ""), 64); err == nil {
		n.Width = w
	}
	if h, err := strconv.ParseFloat(s.AttrOr("height", ""), 64); err == nil {
		n.Height = h
	}
}

// applyStyle pulls the handful of inline-style properties the checkers
// read: font-size (px only), color, background color, and pixel widths.
func applyStyle(n *model.Node, style string) {
	if style == "" {
		return
	}
	for _, decl := range strings.Split(style, ";") {
		key, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "font-size":
			if px, ok := strings.CutSuffix(value, "px"); ok {
				if size, err := strconv.ParseFloat(strings.TrimSpace(px), 64); err == nil {
					n.FontSize = size
				}
			}
		case "color":
			n.Color = value
		case "background", "background-color":
			n.Background = value
		case "width":
			if px, ok := strings.CutSuffix(value, "px"); ok {
				if w, err := strconv.ParseFloat(strings.TrimSpace(px), 64); err == nil && n.Width == 0 {
					n.Width = w
				}
			}
		}
	}
}
