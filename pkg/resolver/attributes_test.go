package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f5/otel-weaver-sub000/pkg/registry"
	"github.com/f5/otel-weaver-sub000/pkg/schema"
	"github.com/f5/otel-weaver-sub000/pkg/semconv"
	"github.com/f5/otel-weaver-sub000/pkg/version"
)

func mustIDAttr(t *testing.T, id, brief string) *semconv.Attribute {
	t.Helper()
	a, err := semconv.DecodeAttribute(map[string]interface{}{"id": id, "type": "string", "brief": brief})
	require.NoError(t, err)
	return a
}

func mustRefAttr(t *testing.T, ref string) *semconv.Attribute {
	t.Helper()
	a, err := semconv.DecodeAttribute(map[string]interface{}{"ref": ref})
	require.NoError(t, err)
	return a
}

func newResolvedRegistry(t *testing.T, groups ...*semconv.Group) *registry.Registry {
	t.Helper()
	r := registry.New()
	require.NoError(t, r.AppendSpec(&semconv.Spec{SourceFile: "test.yaml", Groups: groups}))
	_, err := r.Resolve()
	require.NoError(t, err)
	return r
}

func TestResolveAttributeItemsGroupRefPrecedence(t *testing.T) {
	attrGroup := &semconv.Group{
		ID: "common", Kind: semconv.KindAttributeGroup,
		Attributes: []*semconv.Attribute{mustIDAttr(t, "shared.id", "from attribute group")},
	}
	spanGroup := &semconv.Group{
		ID: "span.common", Kind: semconv.KindSpan,
		Attributes: []*semconv.Attribute{mustIDAttr(t, "shared.id", "from span group")},
	}
	reg := newResolvedRegistry(t, attrGroup, spanGroup)

	items := []*schema.AttrItem{
		{Kind: schema.ItemAttributeGroupRef, GroupRef: "common"},
		{Kind: schema.ItemSpanRef, GroupRef: "span.common"},
	}
	resolved, err := resolveAttributeItems(items, reg, nil)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	// SpanRef is processed after AttributeGroupRef, so it wins on the
	// shared id (spec §4.4 step 2).
	assert.Equal(t, "from span group", resolved[0].Brief)
}

func TestResolveAttributeItemsRefAppliesRenameThenOverrides(t *testing.T) {
	referent := mustIDAttr(t, "http.request.method", "the HTTP method")
	reg := newResolvedRegistry(t, &semconv.Group{
		ID: "http", Kind: semconv.KindAttributeGroup,
		Attributes: []*semconv.Attribute{referent},
	})

	refItem := mustRefAttr(t, "http.method")
	refItem.Brief = "overridden brief"
	items := []*schema.AttrItem{{Kind: schema.ItemRef, Attribute: refItem}}

	renames := version.RenameTable{"http.method": "http.request.method"}
	resolved, err := resolveAttributeItems(items, reg, renames)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "http.request.method", resolved[0].ID)
	assert.Equal(t, "overridden brief", resolved[0].Brief)
}

func TestResolveAttributeItemsIDOverridesEverything(t *testing.T) {
	reg := newResolvedRegistry(t, &semconv.Group{
		ID: "g", Kind: semconv.KindAttributeGroup,
		Attributes: []*semconv.Attribute{mustIDAttr(t, "shared.id", "from group")},
	})
	items := []*schema.AttrItem{
		{Kind: schema.ItemAttributeGroupRef, GroupRef: "g"},
		{Kind: schema.ItemID, Attribute: mustIDAttr(t, "shared.id", "inline override")},
	}
	resolved, err := resolveAttributeItems(items, reg, nil)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "inline override", resolved[0].Brief)
}

func TestResolveAttributeItemsSortedByID(t *testing.T) {
	reg := newResolvedRegistry(t)
	items := []*schema.AttrItem{
		{Kind: schema.ItemID, Attribute: mustIDAttr(t, "z.last", "z")},
		{Kind: schema.ItemID, Attribute: mustIDAttr(t, "a.first", "a")},
	}
	resolved, err := resolveAttributeItems(items, reg, nil)
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "a.first", resolved[0].ID)
	assert.Equal(t, "z.last", resolved[1].ID)
}

func TestResolveAttributeItemsUnknownRefFails(t *testing.T) {
	reg := newResolvedRegistry(t)
	items := []*schema.AttrItem{{Kind: schema.ItemRef, Attribute: mustRefAttr(t, "missing")}}
	_, err := resolveAttributeItems(items, reg, nil)
	require.Error(t, err)
	var unknown *registry.UnknownAttributeRefError
	require.ErrorAs(t, err, &unknown)
}
