package semconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAttributeIDVariant(t *testing.T) {
	a, err := DecodeAttribute(map[string]interface{}{
		"id": "http.request.method", "type": "string", "brief": "The HTTP method",
		"requirement_level": "required",
	})
	require.NoError(t, err)
	assert.False(t, a.IsRef())
	assert.Equal(t, "http.request.method", a.ID)
	assert.Equal(t, LevelRequired, a.EffectiveRequirementLevel().Kind)
}

func TestDecodeAttributeDefaultsToRecommended(t *testing.T) {
	a, err := DecodeAttribute(map[string]interface{}{"id": "a", "type": "string", "brief": "b"})
	require.NoError(t, err)
	assert.Equal(t, LevelRecommended, a.EffectiveRequirementLevel().Kind)
}

func TestDecodeAttributeRefVariant(t *testing.T) {
	a, err := DecodeAttribute(map[string]interface{}{"ref": "http.request.method", "brief": "override"})
	require.NoError(t, err)
	assert.True(t, a.IsRef())
	assert.Equal(t, "http.request.method", *a.RefID)
	assert.Equal(t, "override", a.Brief)
}

func TestDecodeAttributeRejectsUnknownField(t *testing.T) {
	_, err := DecodeAttribute(map[string]interface{}{"id": "a", "type": "string", "brief": "b", "bogus": "x"})
	require.Error(t, err)
}

func TestDecodeAttributeRequiresRefOrID(t *testing.T) {
	_, err := DecodeAttribute(map[string]interface{}{"brief": "no id or ref"})
	require.Error(t, err)
}

func TestDecodeAttributeConditionallyRequiredWithText(t *testing.T) {
	a, err := DecodeAttribute(map[string]interface{}{
		"id": "a", "type": "string", "brief": "b",
		"requirement_level": map[string]interface{}{"conditionally_required": "when X happens"},
	})
	require.NoError(t, err)
	rl := a.EffectiveRequirementLevel()
	assert.Equal(t, LevelConditionallyRequired, rl.Kind)
	assert.Equal(t, "when X happens", rl.Text)
}

func TestDecodeEnumAttributeType(t *testing.T) {
	a, err := DecodeAttribute(map[string]interface{}{
		"id": "http.flavor", "brief": "b",
		"type": map[string]interface{}{
			"members": []interface{}{
				map[string]interface{}{"id": "http_1_1", "value": "1.1"},
				map[string]interface{}{"id": "http_2", "value": "2"},
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, a.Type)
	assert.Equal(t, TypeEnum, a.Type.Kind)
	require.Len(t, a.Type.Enum.Members, 2)
	assert.Equal(t, "http_1_1", a.Type.Enum.Members[0].ID)
}
