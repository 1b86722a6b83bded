package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonical_KeyOrder(t *testing.T) {
	data, err := MarshalCanonical(map[string]any{
		"values": []string{"1"},
		"op":     "rescale",
		"bool":   true,
		"step":   2,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"bool":true,"op":"rescale","step":2,"values":["1"]}`, string(data))
}

func TestMarshalCanonical_UTF16Order(t *testing.T) {
	// U+FF61 sorts after U+1F600 in UTF-8 but before it in UTF-16,
	// where the emoji is a surrogate pair starting 0xD83D.
	data, err := MarshalCanonical(map[string]any{
		"\uff61":     "a",
		"\U0001F600": "b",
	})
	require.NoError(t, err)
	assert.Equal(t, "{\"\U0001F600\":\"b\",\"\uff61\":\"a\"}", string(data))
}

func TestMarshalCanonical_Strings(t *testing.T) {
	data, err := MarshalCanonical("<a & b>")
	require.NoError(t, err)
	assert.Equal(t, `"<a & b>"`, string(data), "no HTML escaping")

	// e + combining acute normalizes to U+00E9.
	data, err = MarshalCanonical("e\u0301")
	require.NoError(t, err)
	assert.Equal(t, "\"\u00e9\"", string(data))

	data, err = MarshalCanonical("a\u2028b")
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\"", string(data), "line separator is written literally")

	data, err = MarshalCanonical(`a\u2028b`)
	require.NoError(t, err)
	assert.Equal(t, `"a\\u2028b"`, string(data), "literal backslash text is kept")

	data, err = MarshalCanonical("tab\there")
	require.NoError(t, err)
	assert.Equal(t, `"tab\there"`, string(data))
}

func TestMarshalCanonical_Rejects(t *testing.T) {
	tests := map[string]any{
		"nil":          nil,
		"float":        1.5,
		"nested float": map[string]any{"x": []any{1, 0.5}},
		"nil bool":     (*bool)(nil),
		"struct":       struct{}{},
	}
	for name, v := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := MarshalCanonical(v)
			assert.Error(t, err)
		})
	}
}
