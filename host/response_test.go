package host

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseMerge(t *testing.T) {
	res := NewResponse().AddAttribute("action", "first")
	sub := NewResponse().AddAttribute("action", "second").AddAttribute("address", "a")

	res.Merge(sub).AddAttribute("method", "batch")

	value, ok := res.Attribute("action")
	assert.True(t, ok)
	assert.Equal(t, "first", value)
	assert.Len(t, res.Attributes, 4)
	assert.Equal(t, Attr("method", "batch"), res.Attributes[3])

	_, ok = res.Attribute("missing")
	assert.False(t, ok)
}

func TestResponseJSONData(t *testing.T) {
	res := NewResponse()
	require.NoError(t, res.SetJSONData([]map[string]any{{"user_address": "a", "success": true}}))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(res.Data, &out))
	assert.Equal(t, "a", out[0]["user_address"])
}
