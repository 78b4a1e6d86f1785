package model

// Node type tags. The tag is advisory: it records what the producer of the
// node list believed the element to be, but checkers must also fall back to
// Name substring matching because host selections and hand-written markup
// frequently mislabel elements.
const (
	// TypeText marks a node whose primary payload is visible text.
	TypeText = "text"

	// TypeImage marks a raster or vector image node.
	TypeImage = "image"

	// TypeLink marks an anchor-like node with a hyperlink target.
	TypeLink = "link"

	// TypeMeta marks a metadata entry (title, description, Open Graph, ...).
	TypeMeta = "meta"

	// TypeHeading1, TypeHeading2, and TypeHeading3 mark heading nodes by level.
	TypeHeading1 = "h1"
	TypeHeading2 = "h2"
	TypeHeading3 = "h3"

	// TypeButton marks an interactive button-like node.
	TypeButton = "button"

	// TypeInput marks a form input node.
	TypeInput = "input"

	// TypeLabel marks a form label node.
	TypeLabel = "label"

	// TypeScript marks a script reference.
	TypeScript = "script"

	// TypeFrame marks a generic container node.
	TypeFrame = "frame"
)

// Node is a normalized descriptor of one page element. It is the unit of
// analysis: every checker consumes the full node list and nothing else.
//
// Design decision: We use one flat struct with optional fields rather than
// a type hierarchy because:
//  1. Node lists cross an external boundary (host canvas, parsed markup)
//     where a closed hierarchy would be fragile
//  2. Checkers pattern-match on several signals at once (type, name, text),
//     so no single subtype view would fit them
//  3. A flat struct serializes trivially
type Node struct {
	// ID identifies the node in the host environment. Optional; issues
	// referencing a node carry this ID so the enrichment step can fetch
	// live position data.
	ID string `json:"id,omitempty"`

	// Name is the display name of the element (layer name, tag name).
	// Checkers use Name substrings as a fallback signal when Type is
	// missing or wrong.
	Name string `json:"name"`

	// Type is the advisory element tag. See the Type* constants.
	Type string `json:"type,omitempty"`

	// Text is the literal visible text content.
	Text string `json:"text,omitempty"`

	// Alt is the alternative text for image nodes. AltPresent records
	// whether the attribute existed at all: an empty-but-present alt is a
	// legitimate decorative-image signal and must stay distinguishable
	// from a missing attribute.
	Alt        string `json:"alt,omitempty"`
	AltPresent bool   `json:"alt_present,omitempty"`

	// Href is the hyperlink target for link nodes.
	Href string `json:"href,omitempty"`

	// Rel is the link relation attribute (e.g. "noopener noreferrer").
	Rel string `json:"rel,omitempty"`

	// Target is the link target attribute (e.g. "_blank").
	Target string `json:"target,omitempty"`

	// Role is the ARIA role, if any.
	Role string `json:"role,omitempty"`

	// AriaLabel is the accessible label, if any.
	AriaLabel string `json:"aria_label,omitempty"`

	// FontSize is the computed font size in pixels. Zero means unknown.
	FontSize float64 `json:"font_size,omitempty"`

	// Color and Background are shallow style hints (color names or hex
	// strings). The contrast heuristic matches on these strings only;
	// no real contrast-ratio computation is performed.
	Color      string `json:"color,omitempty"`
	Background string `json:"background,omitempty"`

	// Width and Height are the layout dimensions in pixels. Zero means
	// the dimension was not explicitly set.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// MetaName, MetaContent, and MetaProperty hold the key-values of
	// meta-tag-like nodes (name/content/property).
	MetaName     string `json:"meta_name,omitempty"`
	MetaContent  string `json:"meta_content,omitempty"`
	MetaProperty string `json:"meta_property,omitempty"`

	// Decorative marks an image as purely presentational.
	Decorative bool `json:"decorative,omitempty"`

	// ItemType is the schema.org item type, if the element declared one.
	ItemType string `json:"item_type,omitempty"`

	// Children are nested nodes in document order. The engine flattens
	// the tree before handing it to checkers.
	Children []*Node `json:"children,omitempty"`
}

// Flatten returns the node tree as a flat list in depth-first document
// order. The returned slice shares the underlying nodes; callers must not
// mutate them.
func Flatten(nodes []*Node) []*Node {
	flat := make([]*Node, 0, len(nodes))
	var walk func(ns []*Node)
	walk = func(ns []*Node) {
		for _, n := range ns {
			if n == nil {
				continue
			}
			flat = append(flat, n)
			if len(n.Children) > 0 {
				walk(n.Children)
			}
		}
	}
	walk(nodes)
	return flat
}
