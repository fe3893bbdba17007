package resolver

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f5/otel-weaver-sub000/pkg/fetcher"
)

const semconvYAML = `
groups:
  - id: registry.http
    type: attribute_group
    brief: HTTP attributes
    attributes:
      - id: http.request.method
        type: string
        brief: The HTTP method
      - id: http.response.status_code
        type: int
        brief: The HTTP status code
  - id: registry.resource
    type: resource
    brief: Resource attributes
    attributes:
      - id: service.name
        type: string
        brief: The service name
`

func newSchemaYAML(semconvURL string) string {
	return `
file_format: "1.0.0"
schema_url: https://example.com/schemas/1.0.0
semantic_conventions:
  - url: ` + semconvURL + `
schema:
  resource:
    attributes:
      - ref: service.name
  resource_spans:
    spans:
      - id: http.server
        span_kind: server
        attributes:
          - attribute_group_ref: registry.http
          - ref: http.request.method
`
}

func TestResolveSchemaFileEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(semconvYAML))
	}))
	defer server.Close()

	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(newSchemaYAML(server.URL+"/semconv.yaml")), 0o644))

	f, err := fetcher.New(t.TempDir())
	require.NoError(t, err)

	resolved, err := ResolveSchemaFile(f, schemaPath, "")
	require.NoError(t, err)

	require.NotNil(t, resolved.Body.Resource)
	require.Len(t, resolved.Body.Resource.Attributes, 1)
	serviceNameRef := resolved.Body.Resource.Attributes[0]
	assert.Equal(t, "service.name", resolved.Catalog.Attributes[serviceNameRef].ID)

	require.Len(t, resolved.Body.Spans, 1)
	span := resolved.Body.Spans[0]
	assert.Equal(t, "http.server", span.ID)
	require.NotNil(t, span.SpanKind)
	require.Len(t, span.Attributes, 2)
	assert.Equal(t, "http.request.method", resolved.Catalog.Attributes[span.Attributes[0]].ID)
	assert.Equal(t, "http.response.status_code", resolved.Catalog.Attributes[span.Attributes[1]].ID)
}

func TestResolveSchemaFileMissingFails(t *testing.T) {
	f, err := fetcher.New(t.TempDir())
	require.NoError(t, err)
	_, err = ResolveSchemaFile(f, filepath.Join(t.TempDir(), "missing.yaml"), "")
	require.Error(t, err)
}
