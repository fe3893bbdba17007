package resolvedschema

import "github.com/f5/otel-weaver-sub000/pkg/semconv"

// Constraint mirrors semconv.Constraint in the output model.
type Constraint struct {
	AnyOf   []string
	Include *string
}

// Group is a resolved semconv group: its attributes are catalog indices
// rather than inline definitions (spec §3's Resolved Schema model).
// TypedGroup's "type" discriminant (spec §4.5 design note) is Kind.
type Group struct {
	ID         string
	Kind       string // semconv.GroupKind.String()
	Brief      string
	Note       string
	Prefix     string
	Stability  *string
	Deprecated *string
	Constraints []Constraint
	Attributes []AttributeRef
	Tags       semconv.Tags

	SpanKind *semconv.SpanKind
	Events   []string

	Name *string

	MetricName *string
	Instrument *semconv.Instrument
	Unit       string
}

// Registry is the resolved snapshot of every group in the SemConv
// Registry (spec §3: "list of registry snapshots").
type Registry struct {
	Groups []*Group
}

// Resource is the resolved schema's top-level resource section.
type Resource struct {
	Attributes []AttributeRef
}

// InstrumentationLibrary passes through unchanged (SPEC_FULL.md §3.1).
type InstrumentationLibrary struct {
	Name    string
	Version string
}
