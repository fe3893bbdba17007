package registry

import (
	"github.com/f5/otel-weaver-sub000/pkg/logger"
	"github.com/f5/otel-weaver-sub000/pkg/semconv"
)

var log = logger.New("semconv:registry")

// Stats is returned by Resolve (spec §4.2: "(attr_count, metric_count, file_count)").
type Stats struct {
	AttrCount   int
	MetricCount int
	FileCount   int
}

// Registry accumulates groups from many semconv files into one
// addressable catalog. It is not safe for concurrent writes; the driver
// is expected to call AppendSpec serially even when the specs themselves
// were parsed in parallel (spec §5, §9 "Shared state during parallel
// semconv load").
type Registry struct {
	groups     map[string]*semconv.Group
	order      []string // insertion order, for deterministic Groups()
	sourceOf   map[string]string
	fileCount  int
	attrIndex  map[string]*semconv.Attribute // Id-kind attributes, keyed by id
	metricsIdx map[string]*semconv.Group     // metric groups, keyed by MetricName
	resolved   bool
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		groups:   map[string]*semconv.Group{},
		sourceOf: map[string]string{},
	}
}

// AppendSpec adds one file's groups to the registry, failing on duplicate
// group ids across files (spec §4.2).
func (r *Registry) AppendSpec(spec *semconv.Spec) error {
	r.fileCount++
	for _, g := range spec.Groups {
		if existing, ok := r.sourceOf[g.ID]; ok {
			return &DuplicateGroupIDError{ID: g.ID, First: existing, Again: spec.SourceFile}
		}
		r.groups[g.ID] = g
		r.sourceOf[g.ID] = spec.SourceFile
		r.order = append(r.order, g.ID)
	}
	log.Printf("appended %d groups from %s", len(spec.Groups), spec.SourceFile)
	return nil
}

// Groups returns every group, in insertion order.
func (r *Registry) Groups() []*semconv.Group {
	out := make([]*semconv.Group, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.groups[id])
	}
	return out
}

// GetMetric looks up a metric group by its metric_name (not group id).
func (r *Registry) GetMetric(name string) (*semconv.Group, bool) {
	g, ok := r.metricsIdx[name]
	return g, ok
}

// Attribute looks up a fully-expanded Id attribute by id, across the
// whole registry (global namespace).
func (r *Registry) Attribute(id string) (*semconv.Attribute, bool) {
	a, ok := r.attrIndex[id]
	return a, ok
}

// Attributes returns every attribute belonging to groupID (after extends
// expansion and ref resolution), keyed by id.
func (r *Registry) Attributes(groupID string, expectedKind semconv.GroupKind) (map[string]*semconv.Attribute, error) {
	g, ok := r.groups[groupID]
	if !ok {
		return nil, &UnknownGroupError{GroupID: groupID}
	}
	if g.Kind != expectedKind {
		return nil, &GroupKindMismatchError{GroupID: groupID, Expected: expectedKind.String(), Found: g.Kind.String()}
	}
	out := make(map[string]*semconv.Attribute, len(g.Attributes))
	for _, a := range g.Attributes {
		out[a.ID] = a
	}
	return out, nil
}

// Resolve runs extends expansion and reference resolution to a fixed
// point, then indexes metrics and attributes for lookup.
func (r *Registry) Resolve() (Stats, error) {
	if err := r.expandExtends(); err != nil {
		return Stats{}, err
	}
	r.buildAttrIndex()
	if err := r.resolveAttributeRefs(); err != nil {
		return Stats{}, err
	}
	r.buildMetricsIndex()

	attrCount := 0
	for _, g := range r.groups {
		attrCount += len(g.Attributes)
	}
	r.resolved = true
	log.Printf("resolved registry: %d groups, %d attributes, %d files", len(r.groups), attrCount, r.fileCount)
	return Stats{AttrCount: attrCount, MetricCount: len(r.metricsIdx), FileCount: r.fileCount}, nil
}

func (r *Registry) buildAttrIndex() {
	r.attrIndex = map[string]*semconv.Attribute{}
	for _, id := range r.order {
		g := r.groups[id]
		for _, a := range g.Attributes {
			if a.IsRef() {
				continue
			}
			if _, ok := r.attrIndex[a.ID]; !ok {
				r.attrIndex[a.ID] = a
			}
		}
	}
}

func (r *Registry) resolveAttributeRefs() error {
	for _, id := range r.order {
		g := r.groups[id]
		for i, a := range g.Attributes {
			if !a.IsRef() {
				continue
			}
			referent, ok := r.attrIndex[*a.RefID]
			if !ok {
				return &UnknownAttributeRefError{RefID: *a.RefID}
			}
			g.Attributes[i] = MergeRefOverrides(referent, a)
		}
	}
	return nil
}

func (r *Registry) buildMetricsIndex() {
	r.metricsIdx = map[string]*semconv.Group{}
	for _, id := range r.order {
		g := r.groups[id]
		if g.Kind == semconv.KindMetric && g.MetricName != nil {
			r.metricsIdx[*g.MetricName] = g
		}
	}
}
