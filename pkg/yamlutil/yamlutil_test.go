package yamlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMapEmptyDocument(t *testing.T) {
	m, err := DecodeMap([]byte(``))
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestDecodeMapBasic(t *testing.T) {
	m, err := DecodeMap([]byte("a: 1\nb: two\n"))
	require.NoError(t, err)
	assert.Equal(t, "two", m["b"])
}

func TestRejectUnknownKeys(t *testing.T) {
	err := RejectUnknownKeys(map[string]interface{}{"a": 1, "bogus": 2}, "a", "b")
	require.Error(t, err)
	var unknown *UnknownKeyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bogus", unknown.Key)
}

func TestRejectUnknownKeysAllowsKnown(t *testing.T) {
	err := RejectUnknownKeys(map[string]interface{}{"a": 1}, "a", "b")
	require.NoError(t, err)
}

func TestExtractPositionFromMessage(t *testing.T) {
	line, col, msg := ExtractPosition(&fakeLineColError{})
	assert.Equal(t, 3, line)
	assert.Equal(t, 5, col)
	assert.NotEmpty(t, msg)
}

type fakeLineColError struct{}

func (e *fakeLineColError) Error() string {
	return "yaml: unmarshal error at line 3: column 5: bad value"
}
