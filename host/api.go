package host

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/types/address"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// AddressValidator is the address check the host exposes to contracts.
type AddressValidator interface {
	ValidateAddress(addr string) error
}

// Bech32Validator accepts bech32 addresses with the chain's human readable prefix.
type Bech32Validator struct {
	Prefix string
}

var _ AddressValidator = Bech32Validator{}

func (v Bech32Validator) ValidateAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("empty address string is not allowed")
	}
	hrp, bz, err := bech32.DecodeAndConvert(addr)
	if err != nil {
		return fmt.Errorf("invalid address %s: %w", addr, err)
	}
	if hrp != v.Prefix {
		return fmt.Errorf("invalid address %s: expected prefix %s, got %s", addr, v.Prefix, hrp)
	}
	if len(bz) == 0 || len(bz) > address.MaxAddrLen {
		return fmt.Errorf("invalid address %s: length %d", addr, len(bz))
	}
	return nil
}

// GenerateAddress derives a deterministic bech32 address from a name.
func GenerateAddress(prefix, name string) string {
	addr, err := bech32.ConvertAndEncode(prefix, address.Module(name))
	if err != nil {
		panic(err)
	}
	return addr
}
