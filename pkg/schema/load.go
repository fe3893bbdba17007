package schema

import (
	"github.com/f5/otel-weaver-sub000/pkg/fetcher"
	"github.com/f5/otel-weaver-sub000/pkg/logger"
)

var log = logger.New("schema:loader")

// ParentSchemaCycleError is raised when a chain of parent_schema_url
// references revisits a URL already on the load stack (spec §4.4 step 1).
type ParentSchemaCycleError struct {
	URLs []string
}

func (e *ParentSchemaCycleError) Error() string {
	msg := "parent schema cycle: "
	for i, u := range e.URLs {
		if i > 0 {
			msg += " -> "
		}
		msg += u
	}
	return msg
}

// Load reads and parses the schema at descriptor, recursively resolving
// and merging any parent_schema_url chain (spec §4.4 step 1).
func Load(f *fetcher.Fetcher, descriptor fetcher.Descriptor) (*Schema, error) {
	return load(f, descriptor, nil)
}

func load(f *fetcher.Fetcher, descriptor fetcher.Descriptor, stack []string) (*Schema, error) {
	key := descriptor.String()
	for _, seen := range stack {
		if seen == key {
			return nil, &ParentSchemaCycleError{URLs: append(append([]string{}, stack...), key)}
		}
	}
	stack = append(stack, key)

	data, err := f.Fetch(descriptor)
	if err != nil {
		return nil, err
	}
	s, err := Decode(data, key)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %s (parent=%q)", key, s.ParentSchemaURL)

	if s.ParentSchemaURL == "" {
		return s, nil
	}

	parent, err := load(f, fetcher.NewURL(s.ParentSchemaURL), stack)
	if err != nil {
		return nil, err
	}
	return mergeParent(parent, s), nil
}

// mergeParent combines a parent schema with its child: the child's
// semconv imports and versions are unioned with the parent's (child
// entries win on a matching identity key), and the child's body
// subsections override the parent's wherever the child sets them,
// inheriting any subsection the child leaves unset.
func mergeParent(parent, child *Schema) *Schema {
	merged := &Schema{
		FileFormat: child.FileFormat,
		SchemaURL:  child.SchemaURL,
		SourceFile: child.SourceFile,
	}
	merged.SemConvImports = mergeImports(parent.SemConvImports, child.SemConvImports)
	merged.Versions = mergeVersions(parent.Versions, child.Versions)
	merged.Body = mergeBody(parent.Body, child.Body)
	return merged
}

func importIdentity(i Import) string {
	if i.IsGit() {
		return i.GitURL + "#" + i.Path
	}
	return i.URL
}

func mergeImports(parent, child []Import) []Import {
	seen := make(map[string]struct{}, len(parent)+len(child))
	out := make([]Import, 0, len(parent)+len(child))
	for _, i := range parent {
		id := importIdentity(i)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, i)
	}
	for _, i := range child {
		id := importIdentity(i)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, i)
	}
	return out
}

func mergeVersions(parent, child map[string]*VersionSpec) map[string]*VersionSpec {
	if len(parent) == 0 {
		return child
	}
	out := make(map[string]*VersionSpec, len(parent)+len(child))
	for k, v := range parent {
		out[k] = v
	}
	for k, v := range child {
		out[k] = v // child overrides parent on identity key
	}
	return out
}

func mergeBody(parent, child *Body) *Body {
	if child == nil {
		return parent
	}
	if parent == nil {
		return child
	}
	merged := &Body{
		Tags:                   child.Tags,
		Resource:               child.Resource,
		InstrumentationLibrary: child.InstrumentationLibrary,
		ResourceMetrics:        child.ResourceMetrics,
		ResourceEvents:         child.ResourceEvents,
		ResourceSpans:          child.ResourceSpans,
	}
	if merged.Tags == nil {
		merged.Tags = parent.Tags
	}
	if merged.Resource == nil {
		merged.Resource = parent.Resource
	}
	if merged.InstrumentationLibrary == nil {
		merged.InstrumentationLibrary = parent.InstrumentationLibrary
	}
	if merged.ResourceMetrics == nil {
		merged.ResourceMetrics = parent.ResourceMetrics
	}
	if merged.ResourceEvents == nil {
		merged.ResourceEvents = parent.ResourceEvents
	}
	if merged.ResourceSpans == nil {
		merged.ResourceSpans = parent.ResourceSpans
	}
	return merged
}
