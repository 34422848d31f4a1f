package mj

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) Value {
	t.Helper()
	v, err := Parse(input)
	require.NoError(t, err)
	return v
}

func TestParseObject(t *testing.T) {
	v := mustParse(t, `{"togatoga" : "monkey-json"}`)
	assert.Equal(t, Object{
		{Key: "togatoga", Value: String("monkey-json")},
	}, v)

	v = mustParse(t, `
	{
		"key": {
			"key": false
		}
	}
	`)
	assert.Equal(t, Object{
		{Key: "key", Value: Object{
			{Key: "key", Value: Bool(false)},
		}},
	}, v)
}

func TestParseArray(t *testing.T) {
	v := mustParse(t, `[null, 1, true, "monkey-json"]`)
	assert.Equal(t, Array{
		Null{},
		Number{Literal: "1"},
		Bool(true),
		String("monkey-json"),
	}, v)

	v = mustParse(t, `[["togatoga", 123]]`)
	assert.Equal(t, Array{
		Array{String("togatoga"), Number{Literal: "123"}},
	}, v)
}

func TestParseScalarRoots(t *testing.T) {
	assert.Equal(t, Number{Literal: "42"}, mustParse(t, "42"))
	assert.Equal(t, String("x"), mustParse(t, `"x"`))
	assert.Equal(t, Bool(true), mustParse(t, "true"))
	assert.Equal(t, Bool(false), mustParse(t, "false"))
	assert.Equal(t, Null{}, mustParse(t, "null"))
}

func TestParseEmptyContainers(t *testing.T) {
	assert.Equal(t, Object{}, mustParse(t, "{}"))
	assert.Equal(t, Array{}, mustParse(t, "[]"))
	assert.Equal(t, Array{Object{}, Array{}}, mustParse(t, "[{}, []]"))
}

func TestParseOrderPreserved(t *testing.T) {
	v := mustParse(t, `{"b":1,"a":2}`)
	obj, ok := v.(Object)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, obj.Keys())
	assert.Equal(t, Object{
		{Key: "b", Value: Number{Literal: "1"}},
		{Key: "a", Value: Number{Literal: "2"}},
	}, obj)
}

func TestParseDuplicateKeys(t *testing.T) {
	v := mustParse(t, `{"a":1,"a":2}`)
	obj, ok := v.(Object)
	require.True(t, ok)
	require.Len(t, obj, 2)

	got, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, Number{Literal: "2"}, got)
}

func TestParseSurroundingWhitespace(t *testing.T) {
	assert.Equal(t, Number{Literal: "42"}, mustParse(t, " \t\r\n 42 \n"))
}

func TestParseMissingValue(t *testing.T) {
	_, err := Parse(`{"a":}`)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ParseUnexpectedToken, parseErr.Kind)
	assert.Equal(t, "value", parseErr.Expected)
	assert.Equal(t, "'}'", parseErr.Found)
	assert.Equal(t, Position{Offset: 5, Line: 1, Column: 6}, parseErr.Pos)
}

func TestParseUnexpectedEndOfInput(t *testing.T) {
	for _, input := range []string{"", `{"a":1`, `[1, 2`, `{"a"`, `{`, `[`} {
		_, err := Parse(input)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr, "input %q", input)
		assert.Equal(t, ParseUnexpectedEOF, parseErr.Kind, "input %q", input)
	}
}

func TestParseMissingDelimiters(t *testing.T) {
	_, err := Parse(`[1 2]`)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ParseUnexpectedToken, parseErr.Kind)
	assert.Equal(t, "',' or ']'", parseErr.Expected)

	_, err = Parse(`{"a" 1}`)
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ParseUnexpectedToken, parseErr.Kind)
	assert.Equal(t, "':'", parseErr.Expected)

	_, err = Parse(`{1: 2}`)
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ParseUnexpectedToken, parseErr.Kind)
	assert.Equal(t, "object key", parseErr.Expected)
}

func TestParseTrailingData(t *testing.T) {
	for _, input := range []string{"{} {}", "42 43", `"a" "b"`, "[] null"} {
		_, err := Parse(input)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr, "input %q", input)
		assert.Equal(t, ParseTrailingData, parseErr.Kind, "input %q", input)
	}
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", maxNestingDepth+1)
	_, err := Parse(deep)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ParseMaxDepth, parseErr.Kind)

	// One level under the limit parses fine until input runs out.
	ok := strings.Repeat("[", maxNestingDepth) + strings.Repeat("]", maxNestingDepth)
	_, err = Parse(ok)
	require.NoError(t, err)
}

func TestParseLexErrorPropagates(t *testing.T) {
	_, err := Parse(`{"a": @}`)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, LexUnexpectedChar, lexErr.Kind)
}
