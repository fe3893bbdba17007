package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f5/otel-weaver-sub000/pkg/fetcher"
)

func TestMergeParentUnionsSemConvImportsOnDistinctKeys(t *testing.T) {
	parent := &Schema{SemConvImports: []Import{{URL: "https://a"}}}
	child := &Schema{SemConvImports: []Import{{URL: "https://b"}}}
	merged := mergeParent(parent, child)
	assert.Len(t, merged.SemConvImports, 2)
}

func TestMergeParentDedupesSemConvImportsOnIdentity(t *testing.T) {
	parent := &Schema{SemConvImports: []Import{{URL: "https://a"}}}
	child := &Schema{SemConvImports: []Import{{URL: "https://a"}}}
	merged := mergeParent(parent, child)
	assert.Len(t, merged.SemConvImports, 1)
}

func TestMergeParentBodyInheritsUnsetSubsections(t *testing.T) {
	parent := &Schema{Body: &Body{Resource: &Resource{Attributes: []*AttrItem{{Kind: ItemID}}}}}
	child := &Schema{Body: &Body{ResourceSpans: &ResourceSpans{Spans: []*Span{{ID: "s"}}}}}
	merged := mergeParent(parent, child)
	require.NotNil(t, merged.Body.Resource)
	require.NotNil(t, merged.Body.ResourceSpans)
}

func TestMergeParentChildBodySubsectionOverridesParent(t *testing.T) {
	parent := &Schema{Body: &Body{Resource: &Resource{Attributes: []*AttrItem{{Kind: ItemID}}}}}
	child := &Schema{Body: &Body{Resource: &Resource{}}}
	merged := mergeParent(parent, child)
	assert.Empty(t, merged.Body.Resource.Attributes)
}

func TestLoadDetectsParentCycle(t *testing.T) {
	f, err := fetcher.New(t.TempDir())
	require.NoError(t, err)

	_, err = load(f, fetcher.NewPath("self.yaml"), []string{"self.yaml"})
	require.Error(t, err)
	var cycle *ParentSchemaCycleError
	require.ErrorAs(t, err, &cycle)
}
