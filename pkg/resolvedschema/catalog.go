package resolvedschema

import (
	"fmt"

	"github.com/f5/otel-weaver-sub000/pkg/semconv"
)

// CatalogConflict is a non-fatal warning (spec §4.4 step 6, §7): two
// distinct attribute definitions share an id but are not structurally
// equal. The first-seen definition wins. Only InternAttribute reports it;
// InternMetric keeps the first metric of a name without comparing.
type CatalogConflict struct {
	ID string
}

func (c *CatalogConflict) Error() string {
	return fmt.Sprintf("catalog conflict on %q: keeping first definition", c.ID)
}

// Metric is the catalog's resolved metric shape.
type Metric struct {
	Name       string
	Brief      string
	Note       string
	Instrument semconv.Instrument
	Unit       string
	Attributes []AttributeRef
	Tags       semconv.Tags
}

// Catalog is the deduplicated pool of attributes and metrics a resolved
// schema references by index (spec §3, §4.5).
type Catalog struct {
	Attributes []Attribute
	Metrics    []Metric

	attrByID   map[string][]int
	metricByID map[string]int
}

// NewCatalog returns an empty catalog ready for interning.
func NewCatalog() *Catalog {
	return &Catalog{attrByID: map[string][]int{}, metricByID: map[string]int{}}
}

// InternAttribute deduplicates a by the tuple in spec §4.5. A non-equal
// duplicate under the same id returns the first-seen index plus a
// CatalogConflict warning (never an error: spec §7 "warnings ...
// never abort").
func (c *Catalog) InternAttribute(a *semconv.Attribute) (AttributeRef, *CatalogConflict) {
	candidate := fromSemconv(a)
	existing, seen := c.attrByID[a.ID]
	for _, idx := range existing {
		if c.Attributes[idx].equal(candidate) {
			return AttributeRef(idx), nil
		}
	}
	if seen {
		// Non-equal duplicate under an id already interned: the first-seen
		// definition wins, so return its index rather than adding a slot.
		return AttributeRef(existing[0]), &CatalogConflict{ID: a.ID}
	}
	idx := len(c.Attributes)
	c.Attributes = append(c.Attributes, candidate)
	c.attrByID[a.ID] = append(c.attrByID[a.ID], idx)
	return AttributeRef(idx), nil
}

// InternMetric deduplicates by metric name (spec §4.4 step 6: "Intern
// metrics analogously keyed by metric name").
func (c *Catalog) InternMetric(m Metric) MetricRef {
	if idx, ok := c.metricByID[m.Name]; ok {
		return MetricRef(idx)
	}
	idx := len(c.Metrics)
	c.Metrics = append(c.Metrics, m)
	c.metricByID[m.Name] = idx
	return MetricRef(idx)
}
