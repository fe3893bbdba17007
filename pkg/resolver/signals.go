package resolver

import (
	"github.com/f5/otel-weaver-sub000/pkg/registry"
	"github.com/f5/otel-weaver-sub000/pkg/schema"
	"github.com/f5/otel-weaver-sub000/pkg/semconv"
	"github.com/f5/otel-weaver-sub000/pkg/version"
)

type resolvedSpanEvent struct {
	Name       string
	Attributes []*semconv.Attribute
}

type resolvedSpanLink struct {
	Attributes []*semconv.Attribute
}

type resolvedSpan struct {
	ID         string
	SpanKind   *semconv.SpanKind
	Attributes []*semconv.Attribute
	Events     []resolvedSpanEvent
	Links      []resolvedSpanLink
}

type resolvedEvent struct {
	Name       string
	Attributes []*semconv.Attribute
}

type resolvedBody struct {
	Resource               []*semconv.Attribute
	InstrumentationLibrary *schema.InstrumentationLibrary
	Metrics                []resolvedMetric
	MetricGroups           []resolvedMetricGroup
	Events                 []resolvedEvent
	Spans                  []resolvedSpan
}

// resolveBody runs the four per-signal resolvers over body in sequence
// (spec §4.4 step 5), using the rename table scoped to each signal kind.
// resource_events is treated as the "logs" signal for rename-table
// purposes: the schema body has no standalone logs section, and OTel's
// events are the logs signal in all but name (DESIGN.md open question 6).
func resolveBody(body *schema.Body, reg *registry.Registry, eng *version.Engine) (*resolvedBody, error) {
	out := &resolvedBody{}
	if body == nil {
		return out, nil
	}

	if body.Resource != nil {
		attrs, err := resolveAttributeItems(body.Resource.Attributes, reg, eng.ResourceAttrs)
		if err != nil {
			return nil, err
		}
		out.Resource = attrs
	}
	out.InstrumentationLibrary = body.InstrumentationLibrary

	if body.ResourceMetrics != nil {
		for _, m := range body.ResourceMetrics.Metrics {
			rm, err := resolveMetric(m, reg, eng)
			if err != nil {
				return nil, err
			}
			out.Metrics = append(out.Metrics, rm)
		}
		for _, mg := range body.ResourceMetrics.MetricGroups {
			rmg, err := resolveMetricGroup(mg, reg, eng)
			if err != nil {
				return nil, err
			}
			out.MetricGroups = append(out.MetricGroups, rmg)
		}
	}

	if body.ResourceEvents != nil {
		for _, e := range body.ResourceEvents.Events {
			attrs, err := resolveAttributeItems(e.Attributes, reg, eng.LogAttrs)
			if err != nil {
				return nil, err
			}
			out.Events = append(out.Events, resolvedEvent{Name: e.Name, Attributes: attrs})
		}
	}

	if body.ResourceSpans != nil {
		for _, s := range body.ResourceSpans.Spans {
			rs, err := resolveSpan(s, reg, eng.SpanAttrs)
			if err != nil {
				return nil, err
			}
			out.Spans = append(out.Spans, rs)
		}
	}

	return out, nil
}

func resolveSpan(s *schema.Span, reg *registry.Registry, renames version.RenameTable) (resolvedSpan, error) {
	attrs, err := resolveAttributeItems(s.Attributes, reg, renames)
	if err != nil {
		return resolvedSpan{}, err
	}
	rs := resolvedSpan{ID: s.ID, SpanKind: s.SpanKind, Attributes: attrs}
	for _, e := range s.Events {
		eAttrs, err := resolveAttributeItems(e.Attributes, reg, renames)
		if err != nil {
			return resolvedSpan{}, err
		}
		rs.Events = append(rs.Events, resolvedSpanEvent{Name: e.Name, Attributes: eAttrs})
	}
	for _, l := range s.Links {
		lAttrs, err := resolveAttributeItems(l.Attributes, reg, renames)
		if err != nil {
			return resolvedSpan{}, err
		}
		rs.Links = append(rs.Links, resolvedSpanLink{Attributes: lAttrs})
	}
	return rs, nil
}
