package semconv

import "fmt"

// GroupKind enumerates the seven group kinds a semconv file may declare.
type GroupKind int

const (
	KindAttributeGroup GroupKind = iota
	KindSpan
	KindEvent
	KindMetric
	KindMetricGroup
	KindResource
	KindScope
)

var groupKindNames = map[string]GroupKind{
	"attribute_group": KindAttributeGroup,
	"span":            KindSpan,
	"event":           KindEvent,
	"metric":          KindMetric,
	"metric_group":    KindMetricGroup,
	"resource":        KindResource,
	"scope":           KindScope,
}

func (k GroupKind) String() string {
	for name, kind := range groupKindNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// Instrument is the kind of metric recorder a `metric` group declares.
type Instrument int

const (
	InstrumentCounter Instrument = iota
	InstrumentUpDownCounter
	InstrumentGauge
	InstrumentHistogram
)

var instrumentNames = map[string]Instrument{
	"counter":         InstrumentCounter,
	"up_down_counter": InstrumentUpDownCounter,
	"gauge":           InstrumentGauge,
	"histogram":       InstrumentHistogram,
}

func (i Instrument) String() string {
	for name, inst := range instrumentNames {
		if inst == i {
			return name
		}
	}
	return "unknown"
}

// SpanKind mirrors the original's SpanKindSpec, restored per
// SPEC_FULL.md §3.1.
type SpanKind int

const (
	SpanKindClient SpanKind = iota
	SpanKindServer
	SpanKindProducer
	SpanKindConsumer
	SpanKindInternal
)

var spanKindNames = map[string]SpanKind{
	"client":   SpanKindClient,
	"server":   SpanKindServer,
	"producer": SpanKindProducer,
	"consumer": SpanKindConsumer,
	"internal": SpanKindInternal,
}

// Constraint is `any_of: [id]` with an optional `include: id`.
type Constraint struct {
	AnyOf   []string
	Include *string
}

// Group is id-unique within a Registry and carries kind-specific fields
// that are only meaningful for the matching Kind (spec §3).
type Group struct {
	ID         string
	Kind       GroupKind
	Extends    *string
	Brief      string
	Note       string
	Prefix     string
	Stability  *string
	Deprecated *string
	Constraints []Constraint
	Attributes []*Attribute
	Tags       Tags

	// span
	SpanKind *SpanKind
	Events   []string

	// event
	Name *string

	// metric
	MetricName *string
	Instrument *Instrument
	Unit       string

	resolved bool // not set by extends expansion, which tracks processed groups in its own map
}

var groupAllowedKeys = []string{
	"id", "type", "extends", "brief", "note", "prefix", "stability",
	"deprecated", "constraints", "attributes", "tags",
	"span_kind", "events", "name", "metric_name", "instrument", "unit",
}

// DecodeGroup builds a Group from one element of a semconv file's top
// level `groups` sequence.
func DecodeGroup(m map[string]interface{}) (*Group, error) {
	if err := rejectUnknown(m, groupAllowedKeys); err != nil {
		return nil, err
	}
	id, ok := m["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("group must set a non-empty id")
	}
	kindStr, ok := m["type"].(string)
	if !ok {
		return nil, fmt.Errorf("group %q: missing type", id)
	}
	kind, ok := groupKindNames[kindStr]
	if !ok {
		return nil, fmt.Errorf("group %q: unknown type %q", id, kindStr)
	}
	g := &Group{ID: id, Kind: kind}

	if v, ok := m["extends"]; ok {
		s, _ := v.(string)
		g.Extends = &s
	}
	if v, ok := m["brief"]; ok {
		g.Brief, _ = v.(string)
	}
	if v, ok := m["note"]; ok {
		g.Note, _ = v.(string)
	}
	if v, ok := m["prefix"]; ok {
		g.Prefix, _ = v.(string)
	}
	if v, ok := m["stability"]; ok {
		s, _ := v.(string)
		g.Stability = &s
	}
	if v, ok := m["deprecated"]; ok {
		s, _ := v.(string)
		g.Deprecated = &s
	}
	// A group marked deprecated without an explicit stability is treated
	// as stability: deprecated (spec §3 invariant).
	if g.Deprecated != nil && g.Stability == nil {
		deprecated := "deprecated"
		g.Stability = &deprecated
	}
	if v, ok := m["tags"]; ok {
		tags, err := tagsFromYAML(v)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", id, err)
		}
		g.Tags = tags
	}
	if v, ok := m["constraints"]; ok {
		cs, err := decodeConstraints(v)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", id, err)
		}
		g.Constraints = cs
	}
	if v, ok := m["attributes"]; ok {
		attrs, err := decodeAttributeList(v)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", id, err)
		}
		g.Attributes = attrs
	}

	switch kind {
	case KindSpan:
		if v, ok := m["span_kind"]; ok {
			s, _ := v.(string)
			sk, ok := spanKindNames[s]
			if !ok {
				return nil, fmt.Errorf("group %q: unknown span_kind %q", id, s)
			}
			g.SpanKind = &sk
		}
		if v, ok := m["events"]; ok {
			list, ok := v.([]interface{})
			if !ok {
				return nil, fmt.Errorf("group %q: events must be a list", id)
			}
			for _, item := range list {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("group %q: events entries must be strings", id)
				}
				g.Events = append(g.Events, s)
			}
		}
	case KindEvent:
		if v, ok := m["name"]; ok {
			s, _ := v.(string)
			g.Name = &s
		}
	case KindMetric:
		name, ok := m["metric_name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("group %q: metric group requires metric_name", id)
		}
		g.MetricName = &name
		instStr, ok := m["instrument"].(string)
		if !ok {
			return nil, fmt.Errorf("group %q: metric group requires instrument", id)
		}
		inst, ok := instrumentNames[instStr]
		if !ok {
			return nil, fmt.Errorf("group %q: unknown instrument %q", id, instStr)
		}
		g.Instrument = &inst
		unit, ok := m["unit"].(string)
		if !ok {
			return nil, fmt.Errorf("group %q: metric group requires unit", id)
		}
		g.Unit = unit
	}

	return g, nil
}

func decodeConstraints(raw interface{}) ([]Constraint, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("constraints must be a list")
	}
	out := make([]Constraint, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("constraint entry must be a mapping")
		}
		if err := requireKeys(m, []string{"any_of"}, []string{"include"}); err != nil {
			return nil, err
		}
		rawAny, ok := m["any_of"].([]interface{})
		if !ok {
			return nil, fmt.Errorf("constraint any_of must be a list")
		}
		c := Constraint{}
		for _, a := range rawAny {
			s, ok := a.(string)
			if !ok {
				return nil, fmt.Errorf("constraint any_of entries must be strings")
			}
			c.AnyOf = append(c.AnyOf, s)
		}
		if v, ok := m["include"]; ok {
			s, _ := v.(string)
			c.Include = &s
		}
		out = append(out, c)
	}
	return out, nil
}

// IsDeprecated reports whether g's stability is "deprecated".
func (g *Group) IsDeprecated() bool {
	return g.Stability != nil && *g.Stability == "deprecated"
}
