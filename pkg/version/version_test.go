package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f5/otel-weaver-sub000/pkg/schema"
)

func TestBuildEmptyVersions(t *testing.T) {
	eng, err := Build(nil, "")
	require.NoError(t, err)
	assert.Nil(t, eng.Target)
	assert.Empty(t, eng.ResourceAttrs)
}

func TestBuildPicksLatestWhenUnpinned(t *testing.T) {
	versions := map[string]*schema.VersionSpec{
		"1.0.0": {},
		"1.2.0": {
			Resources: &schema.SignalChanges{Changes: []schema.RenameBlock{
				{AttributeMap: map[string]string{"old.name": "new.name"}},
			}},
		},
	}
	eng, err := Build(versions, "")
	require.NoError(t, err)
	require.NotNil(t, eng.Target)
	assert.Equal(t, "1.2.0", eng.Target.String())
	assert.Equal(t, "new.name", eng.ResourceAttrs.Get("old.name"))
	assert.Equal(t, "untouched", eng.ResourceAttrs.Get("untouched"))
}

func TestBuildRespectsPin(t *testing.T) {
	versions := map[string]*schema.VersionSpec{
		"1.0.0": {
			Metrics: &schema.SignalChanges{Changes: []schema.RenameBlock{
				{RenameMetrics: map[string]string{"old.metric": "new.metric"}},
			}},
		},
		"2.0.0": {
			Metrics: &schema.SignalChanges{Changes: []schema.RenameBlock{
				{RenameMetrics: map[string]string{"other.metric": "renamed.metric"}},
			}},
		},
	}
	eng, err := Build(versions, "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", eng.Target.String())
	// 2.0.0 is newer than the pinned target, so its renames apply too.
	assert.Equal(t, "new.metric", eng.MetricNames.Get("old.metric"))
	assert.Equal(t, "renamed.metric", eng.MetricNames.Get("other.metric"))
}

func TestBuildChasesMultiHopChains(t *testing.T) {
	// a->b introduced in the older version, b->c introduced in the newer
	// one: the final table must carry a->c and b->c (spec §4.3 rationale).
	versions := map[string]*schema.VersionSpec{
		"1.0.0": {
			Spans: &schema.SignalChanges{Changes: []schema.RenameBlock{
				{AttributeMap: map[string]string{"a": "b"}},
			}},
		},
		"1.1.0": {
			Spans: &schema.SignalChanges{Changes: []schema.RenameBlock{
				{AttributeMap: map[string]string{"b": "c"}},
			}},
		},
	}
	eng, err := Build(versions, "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "c", eng.SpanAttrs.Get("a"))
	assert.Equal(t, "c", eng.SpanAttrs.Get("b"))
}

func TestBuildFirstWinsOnConflictingRename(t *testing.T) {
	// Two versions both rename "a"; the newer (descending-first) entry
	// wins because insertion only happens when old is not yet present.
	versions := map[string]*schema.VersionSpec{
		"1.0.0": {
			Logs: &schema.SignalChanges{Changes: []schema.RenameBlock{
				{AttributeMap: map[string]string{"a": "older-target"}},
			}},
		},
		"2.0.0": {
			Logs: &schema.SignalChanges{Changes: []schema.RenameBlock{
				{AttributeMap: map[string]string{"a": "newer-target"}},
			}},
		},
	}
	eng, err := Build(versions, "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "newer-target", eng.LogAttrs.Get("a"))
}

func TestBuildRejectsMalformedVersion(t *testing.T) {
	_, err := Build(map[string]*schema.VersionSpec{"not-a-semver": {}}, "")
	require.Error(t, err)
}

func TestChaseChainsBreaksCycles(t *testing.T) {
	table := RenameTable{"a": "b", "b": "a"}
	chaseChains(table)
	// Must terminate and leave some deterministic value, not hang.
	assert.Contains(t, []string{"a", "b"}, table["a"])
}
