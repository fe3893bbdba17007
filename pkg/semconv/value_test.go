package semconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueFromYAMLKinds(t *testing.T) {
	v, err := valueFromYAML(42)
	require.NoError(t, err)
	assert.Equal(t, ValueInt, v.Kind)
	assert.Equal(t, int64(42), v.Int)

	v, err = valueFromYAML(3.14)
	require.NoError(t, err)
	assert.Equal(t, ValueDouble, v.Kind)

	v, err = valueFromYAML(true)
	require.NoError(t, err)
	assert.Equal(t, ValueBool, v.Kind)

	v, err = valueFromYAML("hello")
	require.NoError(t, err)
	assert.Equal(t, ValueString, v.Kind)
	assert.Equal(t, "hello", v.String_())
}

func TestValueFromYAMLUnsupportedType(t *testing.T) {
	_, err := valueFromYAML([]interface{}{1, 2})
	require.Error(t, err)
}

func TestValueEqual(t *testing.T) {
	a := Value{Kind: ValueInt, Int: 1}
	b := Value{Kind: ValueInt, Int: 1}
	c := Value{Kind: ValueInt, Int: 2}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Value{Kind: ValueString, String: "1"}))
}

func TestExamplesFromYAMLScalarAndList(t *testing.T) {
	one, err := examplesFromYAML("GET")
	require.NoError(t, err)
	require.Len(t, one.Values, 1)

	many, err := examplesFromYAML([]interface{}{"GET", "POST"})
	require.NoError(t, err)
	require.Len(t, many.Values, 2)

	none, err := examplesFromYAML(nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestExamplesEqual(t *testing.T) {
	a, _ := examplesFromYAML([]interface{}{"GET", "POST"})
	b, _ := examplesFromYAML([]interface{}{"GET", "POST"})
	c, _ := examplesFromYAML([]interface{}{"GET"})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	var nilA, nilB *Examples
	assert.True(t, nilA.Equal(nilB))
	assert.False(t, a.Equal(nilA))
}
