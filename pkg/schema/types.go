// Package schema implements the Telemetry Schema model (spec §3, §4.4
// step 1): a parsed schema document, its parent-merge logic, and the
// local attribute/metric item shapes a schema body declares before
// resolution expands them.
package schema

import "github.com/f5/otel-weaver-sub000/pkg/semconv"

// AttrItemKind discriminates the six shapes a local attribute list entry
// may take (spec §3's "Every signal may carry local attributes expressed
// as any of...").
type AttrItemKind int

const (
	ItemRef AttrItemKind = iota
	ItemID
	ItemAttributeGroupRef
	ItemResourceRef
	ItemSpanRef
	ItemEventRef
)

// AttrItem is one entry of a signal's `attributes` list. For ItemRef/
//ItemID, Attribute carries the payload (semconv.Attribute's own Ref/Id
// distinction doubles as this one). For the four *Ref container kinds,
// GroupRef names the group to pull attributes from, and Tags is stamped
// onto every attribute pulled in (spec §4.4: "the tags are set, not
// merged").
type AttrItem struct {
	Kind      AttrItemKind
	Attribute *semconv.Attribute
	GroupRef  string
	Tags      semconv.Tags
}

// Resource is the schema body's top-level resource section.
type Resource struct {
	Attributes []*AttrItem
}

// InstrumentationLibrary is carried through to the resolved schema
// unchanged beyond attribute interning (SPEC_FULL.md §3.1).
type InstrumentationLibrary struct {
	Name    string
	Version string
}

// SpanEvent is a span's nested event (distinct from a top-level Event),
// decoded from a list entry whose `name` key supplies Name.
type SpanEvent struct {
	Name       string
	Attributes []*AttrItem
}

// SpanLink is a span's nested link.
type SpanLink struct {
	Attributes []*AttrItem
}

// Span is one entry of resource_spans.spans.
type Span struct {
	ID         string
	Attributes []*AttrItem
	SpanKind   *semconv.SpanKind
	Events     []*SpanEvent
	Links      []*SpanLink
}

// ResourceSpans is the schema body's resource_spans section.
type ResourceSpans struct {
	Spans []*Span
}

// Event is one entry of resource_events.events.
type Event struct {
	Name       string
	Attributes []*AttrItem
}

// ResourceEvents is the schema body's resource_events section.
type ResourceEvents struct {
	Events []*Event
}

// Metric is a univariate metric declaration, either a Ref (RefName !=
// "") pulling from the registry's semconv metrics, or a full Id
// definition.
type Metric struct {
	RefName    string
	Name       string
	Brief      string
	Note       string
	Instrument *semconv.Instrument
	Unit       string
	Attributes []*AttrItem
	Tags       semconv.Tags
}

// IsRef reports whether m is the Ref variant.
func (m *Metric) IsRef() bool { return m.RefName != "" }

// MetricGroup bundles several (possibly Ref) metrics under common
// attributes (spec §4.4 "Metric reference resolution").
type MetricGroup struct {
	Name       string
	Attributes []*AttrItem
	Metrics    []*Metric
}

// ResourceMetrics is the schema body's resource_metrics section.
type ResourceMetrics struct {
	Metrics      []*Metric
	MetricGroups []*MetricGroup
}

// Body is the schema document's optional `schema` section.
type Body struct {
	Tags                   semconv.Tags
	Resource               *Resource
	InstrumentationLibrary *InstrumentationLibrary
	ResourceMetrics        *ResourceMetrics
	ResourceEvents         *ResourceEvents
	ResourceSpans          *ResourceSpans
}

// Import is a semantic_conventions entry: either `{url}` or
// `{git_url, path}`.
type Import struct {
	URL    string
	GitURL string
	Path   string
}

// IsGit reports whether the import is a git-backed import.
func (i Import) IsGit() bool { return i.GitURL != "" }

// RenameBlock is one element of a version's `changes` list: either a
// metrics rename (RenameMetrics) or a logs/spans/resources rename
// (AttributeMap, from `rename_attributes.attribute_map`).
type RenameBlock struct {
	RenameMetrics map[string]string
	AttributeMap  map[string]string
}

// SignalChanges is the `changes` list for one signal kind within a
// version spec.
type SignalChanges struct {
	Changes []RenameBlock
}

// VersionSpec is one entry of the schema's `versions` map.
type VersionSpec struct {
	Metrics   *SignalChanges
	Spans     *SignalChanges
	Logs      *SignalChanges
	Resources *SignalChanges
}

// Schema is the full Telemetry Schema document (spec §3).
type Schema struct {
	FileFormat      string
	SchemaURL       string
	ParentSchemaURL string
	SemConvImports  []Import
	Body            *Body
	Versions        map[string]*VersionSpec // keyed by the raw version string

	SourceFile string
}
