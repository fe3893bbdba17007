package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalSchemaYAML = `
file_format: "1.0.0"
schema_url: https://example.com/schemas/1.0.0
semantic_conventions:
  - url: https://example.com/semconv.yaml
schema:
  resource:
    attributes:
      - ref: service.name
versions:
  1.0.0:
    spans:
      changes:
        - rename_attributes:
            attribute_map:
              old.name: new.name
`

func TestDecodeMinimalSchema(t *testing.T) {
	s, err := Decode([]byte(minimalSchemaYAML), "test.yaml")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", s.FileFormat)
	assert.Equal(t, "https://example.com/schemas/1.0.0", s.SchemaURL)
	require.Len(t, s.SemConvImports, 1)
	assert.Equal(t, "https://example.com/semconv.yaml", s.SemConvImports[0].URL)
	require.NotNil(t, s.Body)
	require.NotNil(t, s.Body.Resource)
	require.Len(t, s.Body.Resource.Attributes, 1)
	require.Contains(t, s.Versions, "1.0.0")
	require.NotNil(t, s.Versions["1.0.0"].Spans)
	assert.Equal(t, "new.name", s.Versions["1.0.0"].Spans.Changes[0].AttributeMap["old.name"])
}

func TestDecodeRejectsUnknownTopLevelKey(t *testing.T) {
	_, err := Decode([]byte(`
file_format: "1.0.0"
schema_url: https://example.com/schemas/1.0.0
bogus_field: true
`), "test.yaml")
	require.Error(t, err)
}

func TestDecodeMissingFileFormatFails(t *testing.T) {
	_, err := Decode([]byte(`schema_url: https://example.com`), "test.yaml")
	require.Error(t, err)
}

func TestDecodeGitImport(t *testing.T) {
	s, err := Decode([]byte(`
file_format: "1.0.0"
schema_url: https://example.com/schemas/1.0.0
semantic_conventions:
  - git_url: https://github.com/example/semconv.git
    path: model
`), "test.yaml")
	require.NoError(t, err)
	require.Len(t, s.SemConvImports, 1)
	assert.True(t, s.SemConvImports[0].IsGit())
	assert.Equal(t, "model", s.SemConvImports[0].Path)
}
