package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/bnema/glyphpick/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIconConfiguration(t *testing.T) {
	cfg := entity.DefaultIconConfiguration()

	assert.Equal(t, "", cfg.Name)
	assert.Equal(t, 24.0, cfg.Size)
	assert.Equal(t, "currentColor", cfg.Color)
	assert.Equal(t, 2.0, cfg.StrokeWidth)
	assert.False(t, cfg.AbsoluteStrokeWidth)

	assert.False(t, cfg.Selected())
	assert.True(t, cfg.IsDefault())
}

func TestIconConfiguration_StoredShape(t *testing.T) {
	// The serialized field names are a stored contract shared with
	// other consumers of the same records. Keep them stable.
	cfg := entity.IconConfiguration{
		Name:                "camera",
		Size:                32,
		Color:               "#ff0000",
		StrokeWidth:         1.5,
		AbsoluteStrokeWidth: true,
	}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "camera",
		"size": 32,
		"color": "#ff0000",
		"strokeWidth": 1.5,
		"absoluteStrokeWidth": true
	}`, string(data))
}

func TestIconConfiguration_ParseStoredValue(t *testing.T) {
	var cfg entity.IconConfiguration
	raw := `{"name":"anchor","size":24,"color":"currentColor","strokeWidth":2,"absoluteStrokeWidth":false}`
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))

	assert.Equal(t, "anchor", cfg.Name)
	assert.True(t, cfg.Selected())
	assert.False(t, cfg.IsDefault())
	assert.Equal(t, entity.DefaultIconConfiguration(), cfg.WithName(""))
}

func TestIconConfiguration_WithName(t *testing.T) {
	cfg := entity.DefaultIconConfiguration()
	cfg.Size = 48

	named := cfg.WithName("bell")
	assert.Equal(t, "bell", named.Name)
	assert.Equal(t, 48.0, named.Size)

	// Original is untouched.
	assert.Equal(t, "", cfg.Name)
}
