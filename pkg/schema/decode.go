package schema

import (
	"fmt"

	"github.com/f5/otel-weaver-sub000/pkg/semconv"
	"github.com/f5/otel-weaver-sub000/pkg/yamlutil"
)

var schemaAllowedKeys = []string{
	"file_format", "parent_schema_url", "schema_url",
	"semantic_conventions", "schema", "versions",
}

// Decode parses one telemetry schema YAML document (spec §6: unknown
// top-level keys rejected).
func Decode(data []byte, sourceFile string) (*Schema, error) {
	m, err := yamlutil.DecodeMap(data)
	if err != nil {
		return nil, err
	}
	if err := yamlutil.RejectUnknownKeys(m, schemaAllowedKeys...); err != nil {
		return nil, err
	}

	s := &Schema{SourceFile: sourceFile}
	s.FileFormat, _ = m["file_format"].(string)
	if s.FileFormat == "" {
		return nil, fmt.Errorf("%s: missing file_format", sourceFile)
	}
	s.SchemaURL, _ = m["schema_url"].(string)
	if s.SchemaURL == "" {
		return nil, fmt.Errorf("%s: missing schema_url", sourceFile)
	}
	if v, ok := m["parent_schema_url"]; ok {
		s.ParentSchemaURL, _ = v.(string)
	}

	if v, ok := m["semantic_conventions"]; ok {
		imports, err := decodeImports(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sourceFile, err)
		}
		s.SemConvImports = imports
	}

	if v, ok := m["schema"]; ok {
		body, err := decodeBody(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sourceFile, err)
		}
		s.Body = body
	}

	if v, ok := m["versions"]; ok {
		versions, err := decodeVersions(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sourceFile, err)
		}
		s.Versions = versions
	}

	return s, nil
}

func decodeImports(raw interface{}) ([]Import, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("semantic_conventions must be a list")
	}
	out := make([]Import, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("semantic_conventions entry must be a mapping")
		}
		if url, ok := m["url"]; ok {
			if err := requireOnly(m, "url"); err != nil {
				return nil, err
			}
			s, _ := url.(string)
			out = append(out, Import{URL: s})
			continue
		}
		if gitURL, ok := m["git_url"]; ok {
			if err := requireOnly(m, "git_url", "path"); err != nil {
				return nil, err
			}
			g, _ := gitURL.(string)
			p, _ := m["path"].(string)
			out = append(out, Import{GitURL: g, Path: p})
			continue
		}
		return nil, fmt.Errorf("semantic_conventions entry must set url or git_url")
	}
	return out, nil
}

func requireOnly(m map[string]interface{}, keys ...string) error {
	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			return fmt.Errorf("unknown field %q", k)
		}
	}
	return nil
}

var bodyAllowedKeys = []string{
	"tags", "resource", "instrumentation_library",
	"resource_metrics", "resource_events", "resource_spans",
}

func decodeBody(raw interface{}) (*Body, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("schema must be a mapping")
	}
	if err := requireOnly(m, bodyAllowedKeys...); err != nil {
		return nil, err
	}
	b := &Body{}
	if v, ok := m["tags"]; ok {
		tags, err := tagsFromYAML(v)
		if err != nil {
			return nil, err
		}
		b.Tags = tags
	}
	if v, ok := m["resource"]; ok {
		rm, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("resource must be a mapping")
		}
		if err := requireOnly(rm, "attributes"); err != nil {
			return nil, err
		}
		attrs, err := decodeAttrItemList(rm["attributes"])
		if err != nil {
			return nil, fmt.Errorf("resource: %w", err)
		}
		b.Resource = &Resource{Attributes: attrs}
	}
	if v, ok := m["instrumentation_library"]; ok {
		im, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("instrumentation_library must be a mapping")
		}
		if err := requireOnly(im, "name", "version"); err != nil {
			return nil, err
		}
		name, _ := im["name"].(string)
		version, _ := im["version"].(string)
		b.InstrumentationLibrary = &InstrumentationLibrary{Name: name, Version: version}
	}
	if v, ok := m["resource_metrics"]; ok {
		rm, err := decodeResourceMetrics(v)
		if err != nil {
			return nil, fmt.Errorf("resource_metrics: %w", err)
		}
		b.ResourceMetrics = rm
	}
	if v, ok := m["resource_events"]; ok {
		re, err := decodeResourceEvents(v)
		if err != nil {
			return nil, fmt.Errorf("resource_events: %w", err)
		}
		b.ResourceEvents = re
	}
	if v, ok := m["resource_spans"]; ok {
		rs, err := decodeResourceSpans(v)
		if err != nil {
			return nil, fmt.Errorf("resource_spans: %w", err)
		}
		b.ResourceSpans = rs
	}
	return b, nil
}

func tagsFromYAML(raw interface{}) (semconv.Tags, error) {
	if raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("tags must be a mapping")
	}
	tags := make(semconv.Tags, len(m))
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("tags.%s must be a string", k)
		}
		tags[k] = s
	}
	return tags, nil
}
