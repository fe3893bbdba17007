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

func metricGroupFixture(t *testing.T) *registry.Registry {
	t.Helper()
	name := "http.server.duration"
	inst := semconv.InstrumentHistogram
	g := &semconv.Group{
		ID: "metric.http.server.duration", Kind: semconv.KindMetric,
		MetricName: &name, Instrument: &inst, Unit: "ms", Brief: "duration of inbound requests",
		Attributes: []*semconv.Attribute{mustIDAttr(t, "http.route", "the matched route")},
	}
	return newResolvedRegistry(t, g)
}

func TestResolveMetricRefMergesInheritedAndOverrideAttrs(t *testing.T) {
	reg := metricGroupFixture(t)
	eng := &version.Engine{MetricNames: version.RenameTable{}}

	m := &schema.Metric{
		RefName: "http.server.duration",
		Attributes: []*schema.AttrItem{
			{Kind: schema.ItemID, Attribute: mustIDAttr(t, "http.status_code", "the status code")},
		},
		Tags: semconv.Tags{"source": "test"},
	}
	resolved, err := resolveMetric(m, reg, eng)
	require.NoError(t, err)
	assert.Equal(t, "http.server.duration", resolved.Name)
	assert.Equal(t, "duration of inbound requests", resolved.Brief)
	assert.Equal(t, semconv.InstrumentHistogram, resolved.Instrument)
	require.Len(t, resolved.Attributes, 2)
	assert.Equal(t, "http.route", resolved.Attributes[0].ID)
	assert.Equal(t, "http.status_code", resolved.Attributes[1].ID)
	assert.Equal(t, "test", resolved.Tags["source"])
}

func TestResolveMetricRefAppliesRenameTable(t *testing.T) {
	reg := metricGroupFixture(t)
	eng := &version.Engine{MetricNames: version.RenameTable{"old.duration.name": "http.server.duration"}}

	m := &schema.Metric{RefName: "old.duration.name"}
	resolved, err := resolveMetric(m, reg, eng)
	require.NoError(t, err)
	assert.Equal(t, "http.server.duration", resolved.Name)
}

func TestResolveMetricRefUnknownFails(t *testing.T) {
	reg := metricGroupFixture(t)
	eng := &version.Engine{MetricNames: version.RenameTable{}}
	_, err := resolveMetric(&schema.Metric{RefName: "does.not.exist"}, reg, eng)
	require.Error(t, err)
	var notFound *FailToResolveMetricError
	require.ErrorAs(t, err, &notFound)
}

func TestResolveMetricGroupDiscardsReferentAttributes(t *testing.T) {
	reg := metricGroupFixture(t)
	eng := &version.Engine{MetricNames: version.RenameTable{}}

	mg := &schema.MetricGroup{
		Name: "http.group",
		Attributes: []*schema.AttrItem{
			{Kind: schema.ItemID, Attribute: mustIDAttr(t, "group.only", "group-scoped attribute")},
		},
		Metrics: []*schema.Metric{{RefName: "http.server.duration"}},
	}
	resolved, err := resolveMetricGroup(mg, reg, eng)
	require.NoError(t, err)
	require.Len(t, resolved.Metrics, 1)
	// The group's own attributes replace the referent's entirely.
	require.Len(t, resolved.Metrics[0].Attributes, 1)
	assert.Equal(t, "group.only", resolved.Metrics[0].Attributes[0].ID)
}
