package schema

import (
	"fmt"

	"github.com/f5/otel-weaver-sub000/pkg/semconv"
)

func decodeResourceMetrics(raw interface{}) (*ResourceMetrics, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("must be a mapping")
	}
	if err := requireOnly(m, "metrics", "metric_groups"); err != nil {
		return nil, err
	}
	rm := &ResourceMetrics{}
	if v, ok := m["metrics"]; ok {
		list, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("metrics must be a list")
		}
		for _, item := range list {
			mm, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("metric entry must be a mapping")
			}
			metric, err := decodeMetric(mm)
			if err != nil {
				return nil, err
			}
			rm.Metrics = append(rm.Metrics, metric)
		}
	}
	if v, ok := m["metric_groups"]; ok {
		list, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("metric_groups must be a list")
		}
		for _, item := range list {
			gm, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("metric_group entry must be a mapping")
			}
			mg, err := decodeMetricGroup(gm)
			if err != nil {
				return nil, err
			}
			rm.MetricGroups = append(rm.MetricGroups, mg)
		}
	}
	return rm, nil
}

var metricRefKeys = []string{"ref", "attributes", "tags"}
var metricIDKeys = []string{"id", "brief", "note", "instrument", "unit", "attributes", "tags"}

func decodeMetric(m map[string]interface{}) (*Metric, error) {
	if v, ok := m["ref"]; ok {
		if err := requireOnly(m, metricRefKeys...); err != nil {
			return nil, err
		}
		ref, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("ref must be a string")
		}
		attrs, err := decodeAttrItemList(m["attributes"])
		if err != nil {
			return nil, fmt.Errorf("metric %q: %w", ref, err)
		}
		tags, err := tagsFromYAML(m["tags"])
		if err != nil {
			return nil, err
		}
		return &Metric{RefName: ref, Attributes: attrs, Tags: tags}, nil
	}
	if v, ok := m["id"]; ok {
		if err := requireOnly(m, metricIDKeys...); err != nil {
			return nil, err
		}
		name, _ := v.(string)
		brief, _ := m["brief"].(string)
		note, _ := m["note"].(string)
		var inst *semconv.Instrument
		if iv, ok := m["instrument"]; ok {
			instStr, ok := iv.(string)
			if !ok {
				return nil, fmt.Errorf("metric %q: instrument must be a string", name)
			}
			parsed, ok := parseInstrument(instStr)
			if !ok {
				return nil, fmt.Errorf("metric %q: unknown instrument %q", name, instStr)
			}
			inst = &parsed
		}
		unit, _ := m["unit"].(string)
		attrs, err := decodeAttrItemList(m["attributes"])
		if err != nil {
			return nil, fmt.Errorf("metric %q: %w", name, err)
		}
		tags, err := tagsFromYAML(m["tags"])
		if err != nil {
			return nil, err
		}
		return &Metric{Name: name, Brief: brief, Note: note, Instrument: inst, Unit: unit, Attributes: attrs, Tags: tags}, nil
	}
	return nil, fmt.Errorf("metric entry must set ref or id")
}

func parseInstrument(s string) (semconv.Instrument, bool) {
	switch s {
	case "counter":
		return semconv.InstrumentCounter, true
	case "up_down_counter":
		return semconv.InstrumentUpDownCounter, true
	case "gauge":
		return semconv.InstrumentGauge, true
	case "histogram":
		return semconv.InstrumentHistogram, true
	default:
		return 0, false
	}
}

func decodeMetricGroup(m map[string]interface{}) (*MetricGroup, error) {
	if err := requireOnly(m, "name", "attributes", "metrics"); err != nil {
		return nil, err
	}
	name, _ := m["name"].(string)
	attrs, err := decodeAttrItemList(m["attributes"])
	if err != nil {
		return nil, fmt.Errorf("metric_group %q: %w", name, err)
	}
	var metrics []*Metric
	if v, ok := m["metrics"]; ok {
		list, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("metric_group %q: metrics must be a list", name)
		}
		for _, item := range list {
			mm, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("metric_group %q: metric entry must be a mapping", name)
			}
			metric, err := decodeMetric(mm)
			if err != nil {
				return nil, fmt.Errorf("metric_group %q: %w", name, err)
			}
			metrics = append(metrics, metric)
		}
	}
	return &MetricGroup{Name: name, Attributes: attrs, Metrics: metrics}, nil
}

func decodeResourceEvents(raw interface{}) (*ResourceEvents, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("must be a mapping")
	}
	if err := requireOnly(m, "events"); err != nil {
		return nil, err
	}
	list, ok := m["events"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("events must be a list")
	}
	re := &ResourceEvents{}
	for _, item := range list {
		em, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("event entry must be a mapping")
		}
		if err := requireOnly(em, "name", "attributes"); err != nil {
			return nil, err
		}
		name, _ := em["name"].(string)
		attrs, err := decodeAttrItemList(em["attributes"])
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", name, err)
		}
		re.Events = append(re.Events, &Event{Name: name, Attributes: attrs})
	}
	return re, nil
}

func decodeResourceSpans(raw interface{}) (*ResourceSpans, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("must be a mapping")
	}
	if err := requireOnly(m, "spans"); err != nil {
		return nil, err
	}
	list, ok := m["spans"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("spans must be a list")
	}
	rs := &ResourceSpans{}
	for _, item := range list {
		sm, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("span entry must be a mapping")
		}
		span, err := decodeSpan(sm)
		if err != nil {
			return nil, err
		}
		rs.Spans = append(rs.Spans, span)
	}
	return rs, nil
}

var spanAllowedKeys = []string{"id", "attributes", "span_kind", "events", "links"}
var spanKindNames = map[string]semconv.SpanKind{
	"client":   semconv.SpanKindClient,
	"server":   semconv.SpanKindServer,
	"producer": semconv.SpanKindProducer,
	"consumer": semconv.SpanKindConsumer,
	"internal": semconv.SpanKindInternal,
}

func decodeSpan(m map[string]interface{}) (*Span, error) {
	if err := requireOnly(m, spanAllowedKeys...); err != nil {
		return nil, err
	}
	id, _ := m["id"].(string)
	attrs, err := decodeAttrItemList(m["attributes"])
	if err != nil {
		return nil, fmt.Errorf("span %q: %w", id, err)
	}
	span := &Span{ID: id, Attributes: attrs}
	if v, ok := m["span_kind"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("span %q: span_kind must be a string", id)
		}
		kind, ok := spanKindNames[s]
		if !ok {
			return nil, fmt.Errorf("span %q: unknown span_kind %q", id, s)
		}
		span.SpanKind = &kind
	}
	if v, ok := m["events"]; ok {
		list, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("span %q: events must be a list", id)
		}
		for _, item := range list {
			em, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("span %q: event entry must be a mapping", id)
			}
			if err := requireOnly(em, "name", "attributes"); err != nil {
				return nil, err
			}
			name, _ := em["name"].(string)
			eattrs, err := decodeAttrItemList(em["attributes"])
			if err != nil {
				return nil, fmt.Errorf("span %q event %q: %w", id, name, err)
			}
			span.Events = append(span.Events, &SpanEvent{Name: name, Attributes: eattrs})
		}
	}
	if v, ok := m["links"]; ok {
		list, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("span %q: links must be a list", id)
		}
		for _, item := range list {
			lm, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("span %q: link entry must be a mapping", id)
			}
			if err := requireOnly(lm, "attributes"); err != nil {
				return nil, err
			}
			lattrs, err := decodeAttrItemList(lm["attributes"])
			if err != nil {
				return nil, fmt.Errorf("span %q link: %w", id, err)
			}
			span.Links = append(span.Links, &SpanLink{Attributes: lattrs})
		}
	}
	return span, nil
}
