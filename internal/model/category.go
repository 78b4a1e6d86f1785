package model

// Category is one of the fixed closed set of audit topics. Every issue
// belongs to exactly one category, and the aggregation engine keys its
// result map by category.
//
// Design decision: We use a closed sum type with an exhaustive weight
// table rather than free-form string keys so that adding a category is a
// compile-time-checked change: AllCategories, String, and the weight
// table must all be updated together, and tests assert they agree.
type Category int

const (
	// CategoryMetadata covers title, description, and head-level tags.
	// The international rules also feed this category via composition.
	CategoryMetadata Category = iota

	// CategoryStructure covers heading hierarchy and semantic layout.
	CategoryStructure

	// CategoryImages covers alt text, file naming, and sizing of images.
	CategoryImages

	// CategorySocial covers Open Graph and Twitter card completeness.
	CategorySocial

	// CategoryContent covers text volume, repetition, and readability.
	CategoryContent

	// CategoryAccessibility covers ARIA, labels, focus, and contrast.
	CategoryAccessibility

	// CategoryLinks covers hyperlink integrity and anchor text quality.
	CategoryLinks

	// CategoryPerformance covers script volume and oversized assets.
	CategoryPerformance

	// CategoryMobile covers viewport completeness and tap targets.
	CategoryMobile

	// CategorySecurity covers plaintext transport and leaked secrets.
	CategorySecurity

	// CategorySchema covers schema.org structured-data markers.
	CategorySchema

	// CategoryFavicon covers icon declarations and their variants.
	CategoryFavicon
)

// categoryNames maps categories to their wire/display names.
var categoryNames = map[Category]string{
	CategoryMetadata:      "metadata",
	CategoryStructure:     "structure",
	CategoryImages:        "images",
	CategorySocial:        "social",
	CategoryContent:       "content",
	CategoryAccessibility: "accessibility",
	CategoryLinks:         "links",
	CategoryPerformance:   "performance",
	CategoryMobile:        "mobile",
	CategorySecurity:      "security",
	CategorySchema:        "schema",
	CategoryFavicon:       "favicon",
}

// categoryWeights is the fixed per-category weight table used by the
// overall score. Unlisted categories use DefaultCategoryWeight.
// Metadata weighs heaviest because title/description problems have the
// largest ranking impact; favicon barely moves the needle.
var categoryWeights = map[Category]float64{
	CategoryMetadata:  1.5,
	CategoryStructure: 1.2,
	CategoryContent:   1.2,
	CategoryLinks:     1.2,
	CategoryFavicon:   0.5,
}

// DefaultCategoryWeight applies to categories without an explicit entry
// in the weight table.
const DefaultCategoryWeight = 1.0

// String returns the category's wire/display name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Weight returns the category's contribution factor to the overall score.
func (c Category) Weight() float64 {
	if w, ok := categoryWeights[c]; ok {
		return w
	}
	return DefaultCategoryWeight
}

// AllCategories returns every category in stable declaration order.
// The engine uses this to initialize the fixed-shape result map.
func AllCategories() []Category {
	return []Category{
		CategoryMetadata,
		CategoryStructure,
		CategoryImages,
		CategorySocial,
		CategoryContent,
		CategoryAccessibility,
		CategoryLinks,
		CategoryPerformance,
		CategoryMobile,
		CategorySecurity,
		CategorySchema,
		CategoryFavicon,
	}
}

// ParseCategory resolves a wire/display name to its Category.
// The second return value reports whether the name was recognized.
func ParseCategory(name string) (Category, bool) {
	for c, n := range categoryNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler so categories serialize
// as their names in JSON maps and fields.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
