package vesting

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
)

// Denom identifies a vesting token: either a native bank denom or a cw20 contract.
// Exactly one of the fields is set, mirroring the {"native": ...} / {"cw20": ...} wire form.
type Denom struct {
	Native string `json:"native,omitempty"`
	Cw20   string `json:"cw20,omitempty"`
}

func NativeDenom(denom string) Denom {
	return Denom{Native: denom}
}

func Cw20Denom(contractAddr string) Denom {
	return Denom{Cw20: contractAddr}
}

func (d Denom) IsNative() bool {
	return d.Native != "" && d.Cw20 == ""
}

func (d Denom) IsCw20() bool {
	return d.Cw20 != "" && d.Native == ""
}

func (d Denom) Validate() error {
	if d.IsNative() || d.IsCw20() {
		return nil
	}
	return errorsmod.Wrapf(ErrInvalidRequest, "denom must be exactly one of native or cw20: %s", d)
}

// Key is the canonical storage key of the denom, e.g. "native-uusd" or "cw20-<addr>".
func (d Denom) Key() string {
	if d.IsCw20() {
		return "cw20-" + d.Cw20
	}
	return "native-" + d.Native
}

func (d Denom) Equal(o Denom) bool {
	return d.Native == o.Native && d.Cw20 == o.Cw20
}

// String renders the JSON form, used as the vesting_denom attribute.
func (d Denom) String() string {
	bz, err := json.Marshal(d)
	if err != nil {
		return d.Key()
	}
	return string(bz)
}
