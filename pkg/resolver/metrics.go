package resolver

import (
	"github.com/f5/otel-weaver-sub000/pkg/logger"
	"github.com/f5/otel-weaver-sub000/pkg/registry"
	"github.com/f5/otel-weaver-sub000/pkg/schema"
	"github.com/f5/otel-weaver-sub000/pkg/semconv"
	"github.com/f5/otel-weaver-sub000/pkg/version"
)

var metricLog = logger.New("resolver:metric")

// resolvedMetric is an intermediate, pre-interning metric shape: its
// attributes are fully-resolved semconv.Attribute values rather than
// catalog indices, which emit assigns once every signal is
// walked (spec §4.4 step 6).
type resolvedMetric struct {
	Name       string
	Brief      string
	Note       string
	Instrument semconv.Instrument
	Unit       string
	Attributes []*semconv.Attribute
	Tags       semconv.Tags
}

type resolvedMetricGroup struct {
	Name    string
	Metrics []resolvedMetric
}

// resolveMetric resolves one univariate metric declaration (spec §4.4
// "Metric reference resolution"). A Ref metric's own attribute overrides
// are resolved first, then the referenced metric's inherited attributes
// are merged in with the overrides winning on a shared id. An Id metric
// (a full definition, not a registry reference) only needs its own
// attribute list resolved.
func resolveMetric(m *schema.Metric, reg *registry.Registry, eng *version.Engine) (resolvedMetric, error) {
	overrides, err := resolveAttributeItems(m.Attributes, reg, nil)
	if err != nil {
		return resolvedMetric{}, err
	}

	if !m.IsRef() {
		return resolvedMetric{
			Name:       m.Name,
			Brief:      m.Brief,
			Note:       m.Note,
			Instrument: *m.Instrument,
			Unit:       m.Unit,
			Attributes: overrides,
			Tags:       m.Tags,
		}, nil
	}

	renamedName := eng.MetricNames.Get(m.RefName)
	referent, ok := reg.GetMetric(renamedName)
	if !ok {
		return resolvedMetric{}, &FailToResolveMetricError{Ref: m.RefName}
	}
	return resolvedMetric{
		Name:       renamedName,
		Brief:      referent.Brief,
		Note:       referent.Note,
		Instrument: *referent.Instrument,
		Unit:       referent.Unit,
		Attributes: mergeAttrsOverride(referent.Attributes, overrides),
		Tags:       m.Tags,
	}, nil
}

// resolveMetricGroup resolves a metric_group section: the group's own
// attributes replace (not merge with) a referenced metric's attributes,
// and a warning is logged when a referenced metric's attributes were
// discarded in the process (spec §4.4: "the implementation must emit a
// warning when discarded attributes were non-empty").
func resolveMetricGroup(mg *schema.MetricGroup, reg *registry.Registry, eng *version.Engine) (resolvedMetricGroup, error) {
	groupAttrs, err := resolveAttributeItems(mg.Attributes, reg, nil)
	if err != nil {
		return resolvedMetricGroup{}, err
	}

	out := resolvedMetricGroup{Name: mg.Name}
	for _, m := range mg.Metrics {
		if !m.IsRef() {
			ownAttrs, err := resolveAttributeItems(m.Attributes, reg, nil)
			if err != nil {
				return resolvedMetricGroup{}, err
			}
			out.Metrics = append(out.Metrics, resolvedMetric{
				Name:       m.Name,
				Brief:      m.Brief,
				Note:       m.Note,
				Instrument: *m.Instrument,
				Unit:       m.Unit,
				Attributes: mergeAttrsOverride(groupAttrs, ownAttrs),
				Tags:       m.Tags,
			})
			continue
		}

		renamedName := eng.MetricNames.Get(m.RefName)
		referent, ok := reg.GetMetric(renamedName)
		if !ok {
			return resolvedMetricGroup{}, &FailToResolveMetricError{Ref: m.RefName}
		}
		if len(referent.Attributes) > 0 {
			metricLog.Printf("metric group %q discards %d attribute(s) from metric %q", mg.Name, len(referent.Attributes), renamedName)
		}
		out.Metrics = append(out.Metrics, resolvedMetric{
			Name:       renamedName,
			Brief:      referent.Brief,
			Note:       referent.Note,
			Instrument: *referent.Instrument,
			Unit:       referent.Unit,
			Attributes: groupAttrs,
			Tags:       m.Tags,
		})
	}
	return out, nil
}
