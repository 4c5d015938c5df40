package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMsg(t *testing.T) {
	type claim struct {
		Recipient *string `json:"recipient,omitempty"`
	}
	type msg struct {
		Claim *claim `json:"claim,omitempty"`
	}

	var m msg
	require.NoError(t, DecodeMsg([]byte(`{"claim":{"recipient":"bob"}}`), &m))
	assert.Equal(t, "bob", Deref(m.Claim.Recipient))

	assert.Error(t, DecodeMsg([]byte(`{"burn":{}}`), &msg{}))
	assert.Error(t, DecodeMsg([]byte(`{"claim":{"amount":"1"}}`), &msg{}))
	assert.Error(t, DecodeMsg([]byte(`{"claim":{}} {}`), &msg{}))
	assert.Error(t, DecodeMsg([]byte(`not json`), &msg{}))
}

func TestOneOf(t *testing.T) {
	assert.NoError(t, OneOf(false, true, false))
	assert.ErrorContains(t, OneOf(false, false), "got 0")
	assert.ErrorContains(t, OneOf(true, true), "got 2")
	assert.Equal(t, "", Deref(nil))
}
