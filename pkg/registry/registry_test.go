package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f5/otel-weaver-sub000/pkg/semconv"
)

func idAttr(id, brief string) *semconv.Attribute {
	typ, _ := semconv.DecodeAttribute(map[string]interface{}{
		"id": id, "type": "string", "brief": brief,
	})
	return typ
}

func refAttr(ref string) *semconv.Attribute {
	a, _ := semconv.DecodeAttribute(map[string]interface{}{"ref": ref})
	return a
}

func TestAppendSpecDetectsDuplicateGroupID(t *testing.T) {
	r := New()
	g := &semconv.Group{ID: "http.common", Kind: semconv.KindAttributeGroup}
	require.NoError(t, r.AppendSpec(&semconv.Spec{SourceFile: "a.yaml", Groups: []*semconv.Group{g}}))

	err := r.AppendSpec(&semconv.Spec{SourceFile: "b.yaml", Groups: []*semconv.Group{
		{ID: "http.common", Kind: semconv.KindAttributeGroup},
	}})
	require.Error(t, err)
	var dup *DuplicateGroupIDError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a.yaml", dup.First)
	assert.Equal(t, "b.yaml", dup.Again)
}

func TestExtendsExpansionCopiesPrefixAndAttributes(t *testing.T) {
	r := New()
	parent := &semconv.Group{
		ID: "base", Kind: semconv.KindAttributeGroup, Prefix: "http",
		Attributes: []*semconv.Attribute{idAttr("http.method", "the method")},
	}
	extends := "base"
	child := &semconv.Group{
		ID: "child", Kind: semconv.KindAttributeGroup, Extends: &extends,
		Attributes: []*semconv.Attribute{idAttr("http.status_code", "the status")},
	}
	require.NoError(t, r.AppendSpec(&semconv.Spec{SourceFile: "f.yaml", Groups: []*semconv.Group{parent, child}}))

	_, err := r.Resolve()
	require.NoError(t, err)

	attrs, err := r.Attributes("child", semconv.KindAttributeGroup)
	require.NoError(t, err)
	assert.Len(t, attrs, 2)
	assert.Equal(t, "http", r.groups["child"].Prefix)
}

func TestExtendsUnknownParentFails(t *testing.T) {
	r := New()
	extends := "missing"
	g := &semconv.Group{ID: "child", Kind: semconv.KindAttributeGroup, Extends: &extends}
	require.NoError(t, r.AppendSpec(&semconv.Spec{SourceFile: "f.yaml", Groups: []*semconv.Group{g}}))

	_, err := r.Resolve()
	require.Error(t, err)
	var unknown *UnknownExtendsError
	require.ErrorAs(t, err, &unknown)
}

func TestExtendsCycleDetected(t *testing.T) {
	r := New()
	aExt, bExt := "b", "a"
	a := &semconv.Group{ID: "a", Kind: semconv.KindAttributeGroup, Extends: &aExt}
	b := &semconv.Group{ID: "b", Kind: semconv.KindAttributeGroup, Extends: &bExt}
	require.NoError(t, r.AppendSpec(&semconv.Spec{SourceFile: "f.yaml", Groups: []*semconv.Group{a, b}}))

	_, err := r.Resolve()
	require.Error(t, err)
	var cycle *ExtendsCycleError
	require.ErrorAs(t, err, &cycle)
}

func TestAttributeRefResolutionMergesOverrides(t *testing.T) {
	r := New()
	referent := idAttr("http.method", "original brief")
	ref := refAttr("http.method")
	ref.Brief = "overridden brief"
	g := &semconv.Group{
		ID: "g", Kind: semconv.KindAttributeGroup,
		Attributes: []*semconv.Attribute{referent, ref},
	}
	require.NoError(t, r.AppendSpec(&semconv.Spec{SourceFile: "f.yaml", Groups: []*semconv.Group{g}}))

	_, err := r.Resolve()
	require.NoError(t, err)

	resolved := g.Attributes[1]
	assert.False(t, resolved.IsRef())
	assert.Equal(t, "overridden brief", resolved.Brief)
	assert.Equal(t, "http.method", resolved.ID)
}

func TestAttributeRefUnknownFails(t *testing.T) {
	r := New()
	g := &semconv.Group{
		ID: "g", Kind: semconv.KindAttributeGroup,
		Attributes: []*semconv.Attribute{refAttr("does.not.exist")},
	}
	require.NoError(t, r.AppendSpec(&semconv.Spec{SourceFile: "f.yaml", Groups: []*semconv.Group{g}}))

	_, err := r.Resolve()
	require.Error(t, err)
	var unknown *UnknownAttributeRefError
	require.ErrorAs(t, err, &unknown)
}

func TestGroupKindMismatch(t *testing.T) {
	r := New()
	g := &semconv.Group{ID: "g", Kind: semconv.KindSpan}
	require.NoError(t, r.AppendSpec(&semconv.Spec{SourceFile: "f.yaml", Groups: []*semconv.Group{g}}))
	_, err := r.Resolve()
	require.NoError(t, err)

	_, err = r.Attributes("g", semconv.KindResource)
	require.Error(t, err)
	var mismatch *GroupKindMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestGetMetricByMetricName(t *testing.T) {
	r := New()
	name := "http.server.duration"
	inst := semconv.InstrumentHistogram
	g := &semconv.Group{ID: "metric.http.server.duration", Kind: semconv.KindMetric, MetricName: &name, Instrument: &inst, Unit: "ms"}
	require.NoError(t, r.AppendSpec(&semconv.Spec{SourceFile: "f.yaml", Groups: []*semconv.Group{g}}))
	stats, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MetricCount)

	found, ok := r.GetMetric("http.server.duration")
	require.True(t, ok)
	assert.Equal(t, "metric.http.server.duration", found.ID)
}
