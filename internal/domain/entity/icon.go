package entity

// Icon is a single renderable entry from the icon catalog.
type Icon struct {
	Name  string // Catalog name (e.g., "arrow-right")
	Glyph string // Terminal glyph rendered for the icon
}

// PlaceholderGlyph is rendered for names that cannot be resolved.
// Unknown names are never an error, they just draw as a placeholder.
const PlaceholderGlyph = "□"
