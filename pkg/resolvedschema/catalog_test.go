package resolvedschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f5/otel-weaver-sub000/pkg/semconv"
)

func attr(t *testing.T, id, brief string) *semconv.Attribute {
	t.Helper()
	a, err := semconv.DecodeAttribute(map[string]interface{}{"id": id, "type": "string", "brief": brief})
	require.NoError(t, err)
	return a
}

func TestInternAttributeDeduplicatesIdenticalDefinitions(t *testing.T) {
	c := NewCatalog()
	ref1, conflict1 := c.InternAttribute(attr(t, "service.name", "the service name"))
	require.Nil(t, conflict1)
	ref2, conflict2 := c.InternAttribute(attr(t, "service.name", "the service name"))
	require.Nil(t, conflict2)
	assert.Equal(t, ref1, ref2)
	assert.Len(t, c.Attributes, 1)
}

func TestInternAttributeFlagsConflictingDuplicate(t *testing.T) {
	c := NewCatalog()
	ref1, _ := c.InternAttribute(attr(t, "service.name", "the service name"))
	ref2, conflict := c.InternAttribute(attr(t, "service.name", "a different brief"))
	require.NotNil(t, conflict)
	assert.Equal(t, "service.name", conflict.ID)
	// First-seen definition wins: the conflicting one is discarded, not
	// given its own slot, so both calls resolve to the same ref.
	assert.Equal(t, ref1, ref2)
	assert.Len(t, c.Attributes, 1)
}

func TestInternMetricDeduplicatesByName(t *testing.T) {
	c := NewCatalog()
	m := Metric{Name: "http.server.duration", Instrument: semconv.InstrumentHistogram, Unit: "ms"}
	ref1 := c.InternMetric(m)
	ref2 := c.InternMetric(m)
	assert.Equal(t, ref1, ref2)
	assert.Len(t, c.Metrics, 1)
}
