package semconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGroupSpanKind(t *testing.T) {
	g, err := DecodeGroup(map[string]interface{}{
		"id": "span.http", "type": "span", "brief": "HTTP span",
		"span_kind": "client",
		"events":    []interface{}{"http.request", "http.response"},
	})
	require.NoError(t, err)
	assert.Equal(t, KindSpan, g.Kind)
	require.NotNil(t, g.SpanKind)
	assert.Equal(t, SpanKindClient, *g.SpanKind)
	assert.Equal(t, []string{"http.request", "http.response"}, g.Events)
}

func TestDecodeGroupMetricRequiresFields(t *testing.T) {
	_, err := DecodeGroup(map[string]interface{}{
		"id": "metric.foo", "type": "metric", "brief": "b",
	})
	require.Error(t, err)

	g, err := DecodeGroup(map[string]interface{}{
		"id": "metric.foo", "type": "metric", "brief": "b",
		"metric_name": "http.server.duration", "instrument": "histogram", "unit": "ms",
	})
	require.NoError(t, err)
	require.NotNil(t, g.Instrument)
	assert.Equal(t, InstrumentHistogram, *g.Instrument)
	assert.Equal(t, "ms", g.Unit)
}

func TestDecodeGroupUnknownTypeFails(t *testing.T) {
	_, err := DecodeGroup(map[string]interface{}{"id": "g", "type": "bogus"})
	require.Error(t, err)
}

func TestDecodeGroupDeprecatedDefaultsStability(t *testing.T) {
	g, err := DecodeGroup(map[string]interface{}{
		"id": "g", "type": "attribute_group", "deprecated": "use g2 instead",
	})
	require.NoError(t, err)
	assert.True(t, g.IsDeprecated())
}

func TestDecodeGroupRejectsUnknownField(t *testing.T) {
	_, err := DecodeGroup(map[string]interface{}{"id": "g", "type": "attribute_group", "bogus": 1})
	require.Error(t, err)
}

func TestDecodeGroupConstraints(t *testing.T) {
	g, err := DecodeGroup(map[string]interface{}{
		"id": "g", "type": "attribute_group",
		"constraints": []interface{}{
			map[string]interface{}{"any_of": []interface{}{"a", "b"}, "include": "c"},
		},
	})
	require.NoError(t, err)
	require.Len(t, g.Constraints, 1)
	assert.Equal(t, []string{"a", "b"}, g.Constraints[0].AnyOf)
	require.NotNil(t, g.Constraints[0].Include)
	assert.Equal(t, "c", *g.Constraints[0].Include)
}
