// Package icon holds the pure domain logic behind the icon form field:
// the configuration reducer, the catalog with search and pagination, and
// the interaction state machine.
package icon

import "github.com/bnema/glyphpick/internal/domain/entity"

// FieldKey names one tunable field of an IconConfiguration.
type FieldKey string

// Configuration field keys accepted by SetField.
const (
	FieldSize           FieldKey = "size"
	FieldColor          FieldKey = "color"
	FieldStrokeWidth    FieldKey = "strokeWidth"
	FieldAbsoluteStroke FieldKey = "absoluteStrokeWidth"
)

// Action is a single requested change to an icon configuration.
type Action interface {
	isAction()
}

// SelectIcon replaces only the icon name, preserving appearance fields.
type SelectIcon struct {
	Name string
}

// SetField replaces exactly one named field, leaving the rest untouched.
type SetField struct {
	Key   FieldKey
	Value any
}

// Reset restores every field except the name to its default value.
type Reset struct{}

func (SelectIcon) isAction() {}
func (SetField) isAction()   {}
func (Reset) isAction()      {}

// Reduce computes the next configuration from the current one and a
// single action. It is pure: the input is never mutated, the result is
// always a fully populated configuration, and no input can make it
// fail. Values of the wrong type for a field leave the configuration
// unchanged; out-of-range values are applied as-is.
func Reduce(current entity.IconConfiguration, action Action) entity.IconConfiguration {
	switch a := action.(type) {
	case SelectIcon:
		current.Name = a.Name
	case SetField:
		current = applyField(current, a)
	case Reset:
		name := current.Name
		current = entity.DefaultIconConfiguration()
		current.Name = name
	}
	return current
}

func applyField(cfg entity.IconConfiguration, a SetField) entity.IconConfiguration {
	switch a.Key {
	case FieldSize:
		if v, ok := toFloat(a.Value); ok {
			cfg.Size = v
		}
	case FieldColor:
		if v, ok := a.Value.(string); ok {
			cfg.Color = v
		}
	case FieldStrokeWidth:
		if v, ok := toFloat(a.Value); ok {
			cfg.StrokeWidth = v
		}
	case FieldAbsoluteStroke:
		if v, ok := a.Value.(bool); ok {
			cfg.AbsoluteStrokeWidth = v
		}
	}
	return cfg
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
