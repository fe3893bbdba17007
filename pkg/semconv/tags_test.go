package semconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagsMergeWithOverrideSelfWins(t *testing.T) {
	self := Tags{"a": "self-a", "b": "self-b"}
	other := Tags{"a": "other-a", "c": "other-c"}
	merged := self.MergeWithOverride(other)
	assert.Equal(t, "self-a", merged["a"])
	assert.Equal(t, "self-b", merged["b"])
	assert.Equal(t, "other-c", merged["c"])
}

func TestTagsMergeWithOverrideEmptyOther(t *testing.T) {
	self := Tags{"a": "self-a"}
	merged := self.MergeWithOverride(nil)
	assert.Equal(t, self, merged)
}

func TestTagsKeysSorted(t *testing.T) {
	tags := Tags{"z": "1", "a": "2", "m": "3"}
	assert.Equal(t, []string{"a", "m", "z"}, tags.Keys())
}

func TestTagsFromYAMLRejectsNonStringValue(t *testing.T) {
	_, err := tagsFromYAML(map[string]interface{}{"a": 1})
	assert := assert.New(t)
	assert.Error(err)
}
