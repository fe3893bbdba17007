package resolvedschema

import "github.com/f5/otel-weaver-sub000/pkg/semconv"

// Span is a resolved span: every attribute is an AttributeRef, never an
// inline definition (testable property 1, spec §8).
type Span struct {
	ID         string
	SpanKind   *semconv.SpanKind
	Attributes []AttributeRef
	Events     []*SpanEvent
	Links      []*SpanLink
}

// SpanEvent is a span's nested, resolved event.
type SpanEvent struct {
	Name       string
	Attributes []AttributeRef
}

// SpanLink is a span's nested, resolved link.
type SpanLink struct {
	Attributes []AttributeRef
}

// Event is a resolved top-level event.
type Event struct {
	Name       string
	Attributes []AttributeRef
}

// MetricGroup bundles resolved metric refs under a common name.
type MetricGroup struct {
	Name    string
	Metrics []MetricRef
}

// Body is the resolved schema's signal bodies.
type Body struct {
	Resource               *Resource
	InstrumentationLibrary *InstrumentationLibrary
	Metrics                []MetricRef
	MetricGroups           []*MetricGroup
	Events                 []*Event
	Spans                  []*Span
}

// Schema is the final, self-contained output document (spec §3): no
// field references anything outside the Catalog/Registry it carries.
type Schema struct {
	FileFormat   string
	SchemaURL    string
	Registries   []*Registry
	Catalog      *Catalog
	Body         *Body
	Dependencies []string
	Versions     map[string]VersionSummary
}

// VersionSummary is a serialization-friendly projection of a schema
// version entry; the full rename tables live only in pkg/version during
// resolution, not in the persisted output (spec §3: "optional versions").
type VersionSummary struct {
	MetricChanges   int
	SpanChanges     int
	LogChanges      int
	ResourceChanges int
}
