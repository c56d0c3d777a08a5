package entity

// IconConfiguration is the value persisted by an icon form field.
// The JSON field names are the stored contract and must not change.
type IconConfiguration struct {
	Name                string  `json:"name"`
	Size                float64 `json:"size"`
	Color               string  `json:"color"`
	StrokeWidth         float64 `json:"strokeWidth"`
	AbsoluteStrokeWidth bool    `json:"absoluteStrokeWidth"`
}

// Default icon configuration constants
const (
	IconDefaultSize        = 24.0
	IconDefaultColor       = "currentColor"
	IconDefaultStrokeWidth = 2.0
)

// DefaultIconConfiguration returns the configuration used when a field
// holds no stored value. Name is empty, meaning no icon is selected.
func DefaultIconConfiguration() IconConfiguration {
	return IconConfiguration{
		Name:                "",
		Size:                IconDefaultSize,
		Color:               IconDefaultColor,
		StrokeWidth:         IconDefaultStrokeWidth,
		AbsoluteStrokeWidth: false,
	}
}

// Selected reports whether an icon has been chosen.
func (c IconConfiguration) Selected() bool {
	return c.Name != ""
}

// IsDefault reports whether every field still holds its default value.
func (c IconConfiguration) IsDefault() bool {
	return c == DefaultIconConfiguration()
}

// WithName returns a copy of the configuration pointing at a different
// icon. All appearance fields are preserved.
func (c IconConfiguration) WithName(name string) IconConfiguration {
	c.Name = name
	return c
}
