package resolver

import (
	"errors"

	"github.com/f5/otel-weaver-sub000/pkg/fetcher"
	"github.com/f5/otel-weaver-sub000/pkg/logger"
	"github.com/f5/otel-weaver-sub000/pkg/registry"
	"github.com/f5/otel-weaver-sub000/pkg/resolvedschema"
	"github.com/f5/otel-weaver-sub000/pkg/schema"
	"github.com/f5/otel-weaver-sub000/pkg/semconv"
	"github.com/f5/otel-weaver-sub000/pkg/version"
	"github.com/f5/otel-weaver-sub000/pkg/yamlutil"
)

var log = logger.New("resolver")

// ResolveSchemaFile runs the full pipeline of spec §4.4: load the schema
// (recursing through any parent_schema_url chain), import and resolve its
// semantic-convention registry, build version rename tables, resolve
// every signal, and emit a self-contained Resolved Schema. pin is the
// caller's target-version override; an empty pin picks the latest SemVer
// present in the schema's versions map.
func ResolveSchemaFile(f *fetcher.Fetcher, path string, pin string) (*resolvedschema.Schema, error) {
	sch, err := schema.Load(f, fetcher.NewPath(path))
	if err != nil {
		return nil, wrapLoadError(path, err)
	}
	log.Printf("loaded schema %s, %d semconv imports", sch.SchemaURL, len(sch.SemConvImports))

	specs, err := loadSemConvSpecs(f, sch.SemConvImports)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	for _, spec := range specs {
		if err := reg.AppendSpec(spec); err != nil {
			return nil, err
		}
	}
	stats, err := reg.Resolve()
	if err != nil {
		return nil, err
	}
	log.Printf("registry resolved: %+v", stats)

	eng, err := version.Build(sch.Versions, pin)
	if err != nil {
		return nil, err
	}

	body, err := resolveBody(sch.Body, reg, eng)
	if err != nil {
		return nil, err
	}

	return emit(sch, reg, eng, body), nil
}

// wrapLoadError preserves the identity of ParentSchemaCycleError and
// fetcher.SourceNotFoundError (callers may want to match on them) and
// wraps everything else as an InvalidSchemaError
// carrying a source position when the underlying YAML error supplies one.
func wrapLoadError(path string, err error) error {
	var cycle *schema.ParentSchemaCycleError
	if errors.As(err, &cycle) {
		return err
	}
	var notFound *fetcher.SourceNotFoundError
	if errors.As(err, &notFound) {
		return err
	}
	line, col, msg := yamlutil.ExtractPosition(err)
	if line > 0 {
		return &InvalidSchemaError{PathOrURL: path, Line: line, Column: col, Cause: errors.New(msg)}
	}
	return &InvalidSchemaError{PathOrURL: path, Cause: err}
}

// emit performs spec §4.4 step 6: intern every resolved attribute and
// metric into the catalog, replace inline definitions with catalog
// indices throughout the signal bodies and the registry snapshot.
func emit(sch *schema.Schema, reg *registry.Registry, eng *version.Engine, body *resolvedBody) *resolvedschema.Schema {
	catalog := resolvedschema.NewCatalog()

	registries := []*resolvedschema.Registry{{Groups: convertGroups(reg.Groups(), catalog)}}

	out := &resolvedschema.Schema{
		FileFormat: sch.FileFormat,
		SchemaURL:  sch.SchemaURL,
		Registries: registries,
		Catalog:    catalog,
		Body:       convertBody(body, catalog),
		Versions:   versionSummaries(eng),
	}
	for _, imp := range sch.SemConvImports {
		if imp.IsGit() {
			out.Dependencies = append(out.Dependencies, imp.GitURL+"#"+imp.Path)
		} else {
			out.Dependencies = append(out.Dependencies, imp.URL)
		}
	}
	return out
}

func internAttr(a *semconv.Attribute, catalog *resolvedschema.Catalog) resolvedschema.AttributeRef {
	ref, conflict := catalog.InternAttribute(a)
	if conflict != nil {
		log.Printf("warning: %v", conflict)
	}
	return ref
}

func internAttrs(attrs []*semconv.Attribute, catalog *resolvedschema.Catalog) []resolvedschema.AttributeRef {
	out := make([]resolvedschema.AttributeRef, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, internAttr(a, catalog))
	}
	return out
}

func convertGroups(groups []*semconv.Group, catalog *resolvedschema.Catalog) []*resolvedschema.Group {
	out := make([]*resolvedschema.Group, 0, len(groups))
	for _, g := range groups {
		rg := &resolvedschema.Group{
			ID:         g.ID,
			Kind:       g.Kind.String(),
			Brief:      g.Brief,
			Note:       g.Note,
			Prefix:     g.Prefix,
			Stability:  g.Stability,
			Deprecated: g.Deprecated,
			Attributes: internAttrs(g.Attributes, catalog),
			Tags:       g.Tags,
			SpanKind:   g.SpanKind,
			Events:     g.Events,
			Name:       g.Name,
			MetricName: g.MetricName,
			Instrument: g.Instrument,
			Unit:       g.Unit,
		}
		for _, c := range g.Constraints {
			rg.Constraints = append(rg.Constraints, resolvedschema.Constraint{AnyOf: c.AnyOf, Include: c.Include})
		}
		out = append(out, rg)
	}
	return out
}

func convertBody(body *resolvedBody, catalog *resolvedschema.Catalog) *resolvedschema.Body {
	out := &resolvedschema.Body{}
	if body == nil {
		return out
	}
	if body.Resource != nil {
		out.Resource = &resolvedschema.Resource{Attributes: internAttrs(body.Resource, catalog)}
	}
	if body.InstrumentationLibrary != nil {
		out.InstrumentationLibrary = &resolvedschema.InstrumentationLibrary{
			Name:    body.InstrumentationLibrary.Name,
			Version: body.InstrumentationLibrary.Version,
		}
	}
	for _, m := range body.Metrics {
		out.Metrics = append(out.Metrics, catalog.InternMetric(resolvedschema.Metric{
			Name:       m.Name,
			Brief:      m.Brief,
			Note:       m.Note,
			Instrument: m.Instrument,
			Unit:       m.Unit,
			Attributes: internAttrs(m.Attributes, catalog),
			Tags:       m.Tags,
		}))
	}
	for _, mg := range body.MetricGroups {
		rmg := &resolvedschema.MetricGroup{Name: mg.Name}
		for _, m := range mg.Metrics {
			rmg.Metrics = append(rmg.Metrics, catalog.InternMetric(resolvedschema.Metric{
				Name:       m.Name,
				Brief:      m.Brief,
				Note:       m.Note,
				Instrument: m.Instrument,
				Unit:       m.Unit,
				Attributes: internAttrs(m.Attributes, catalog),
				Tags:       m.Tags,
			}))
		}
		out.MetricGroups = append(out.MetricGroups, rmg)
	}
	for _, e := range body.Events {
		out.Events = append(out.Events, &resolvedschema.Event{Name: e.Name, Attributes: internAttrs(e.Attributes, catalog)})
	}
	for _, s := range body.Spans {
		rs := &resolvedschema.Span{ID: s.ID, SpanKind: s.SpanKind, Attributes: internAttrs(s.Attributes, catalog)}
		for _, e := range s.Events {
			rs.Events = append(rs.Events, &resolvedschema.SpanEvent{Name: e.Name, Attributes: internAttrs(e.Attributes, catalog)})
		}
		for _, l := range s.Links {
			rs.Links = append(rs.Links, &resolvedschema.SpanLink{Attributes: internAttrs(l.Attributes, catalog)})
		}
		out.Spans = append(out.Spans, rs)
	}
	return out
}

func versionSummaries(eng *version.Engine) map[string]resolvedschema.VersionSummary {
	if eng == nil || eng.Target == nil {
		return nil
	}
	return map[string]resolvedschema.VersionSummary{
		eng.Target.String(): {
			MetricChanges:   len(eng.MetricNames),
			SpanChanges:     len(eng.SpanAttrs),
			LogChanges:      len(eng.LogAttrs),
			ResourceChanges: len(eng.ResourceAttrs),
		},
	}
}
