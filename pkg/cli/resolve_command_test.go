package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJSONPath(t *testing.T) {
	assert.True(t, isJSONPath("out.json"))
	assert.False(t, isJSONPath("out.yaml"))
	assert.False(t, isJSONPath(""))
}

func TestMarshalResolvedChoosesFormatByExtension(t *testing.T) {
	type doc struct {
		Name string
	}
	yamlOut, err := marshalResolved(doc{Name: "a"}, "")
	assert := assert.New(t)
	assert.NoError(err)
	assert.Contains(string(yamlOut), "name: a")

	jsonOut, err := marshalResolved(doc{Name: "a"}, "out.json")
	assert.NoError(err)
	assert.Contains(string(jsonOut), `"Name": "a"`)
}
