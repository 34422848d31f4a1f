package mj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	assert.Equal(t, KindNull, Null{}.Kind())
	assert.Equal(t, KindBool, Bool(true).Kind())
	assert.Equal(t, KindNumber, Number{Literal: "1"}.Kind())
	assert.Equal(t, KindString, String("x").Kind())
	assert.Equal(t, KindArray, Array{}.Kind())
	assert.Equal(t, KindObject, Object{}.Kind())

	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "boolean", KindBool.String())
}

func TestNumberFloat(t *testing.T) {
	assert.Equal(t, 20000000000.0, Number{Literal: "2E10"}.Float())
	assert.Equal(t, -0.001, Number{Literal: "-0.001"}.Float())
	assert.Equal(t, 0.5, Number{Literal: ".5"}.Float())
}

func TestObjectGet(t *testing.T) {
	obj := Object{
		{Key: "a", Value: Number{Literal: "1"}},
		{Key: "b", Value: Bool(true)},
		{Key: "a", Value: Number{Literal: "2"}},
	}

	v, ok := obj.Get("b")
	require.True(t, ok)
	assert.Equal(t, Bool(true), v)

	// Last occurrence wins for duplicate keys.
	v, ok = obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, Number{Literal: "2"}, v)

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestObjectKeys(t *testing.T) {
	obj := Object{
		{Key: "b", Value: Null{}},
		{Key: "a", Value: Null{}},
		{Key: "b", Value: Null{}},
	}
	assert.Equal(t, []string{"b", "a", "b"}, obj.Keys())
	assert.Empty(t, Object{}.Keys())
}
