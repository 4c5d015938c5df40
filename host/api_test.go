package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBech32Validator(t *testing.T) {
	v := Bech32Validator{Prefix: "cosmos"}

	assert.NoError(t, v.ValidateAddress(GenerateAddress("cosmos", "alice")))
	assert.ErrorContains(t, v.ValidateAddress(""), "empty address")
	assert.ErrorContains(t, v.ValidateAddress("cosmos1invalid"), "invalid address")
	assert.ErrorContains(t, v.ValidateAddress(GenerateAddress("nibi", "alice")), "expected prefix cosmos, got nibi")
}

func TestGenerateAddressIsDeterministic(t *testing.T) {
	assert.Equal(t, GenerateAddress("cosmos", "alice"), GenerateAddress("cosmos", "alice"))
	assert.NotEqual(t, GenerateAddress("cosmos", "alice"), GenerateAddress("cosmos", "bob"))
}
