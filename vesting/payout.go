package vesting

import (
	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/satlayer/satlayer-vesting/cw20"
	"github.com/satlayer/satlayer-vesting/host"
)

// Payout appends outbound transfers to a response.
type Payout interface {
	// SendIfNonZero appends a transfer of amount to recipient, or to fallback when recipient
	// is empty. A zero amount appends nothing.
	SendIfNonZero(res *host.Response, denom Denom, amount sdkmath.Uint, recipient, fallback string) error
}

// MsgPayout emits bank sends for native denoms and cw20 transfers for cw20 denoms.
type MsgPayout struct{}

var _ Payout = MsgPayout{}

func (MsgPayout) SendIfNonZero(res *host.Response, denom Denom, amount sdkmath.Uint, recipient, fallback string) error {
	if amount.IsZero() {
		return nil
	}
	if recipient == "" {
		recipient = fallback
	}
	msg, err := TransferMsg(denom, amount, recipient)
	if err != nil {
		return err
	}
	res.AddMessages(msg)
	return nil
}

// TransferMsg builds the outbound message moving amount of denom to recipient.
func TransferMsg(denom Denom, amount sdkmath.Uint, recipient string) (wasmvmtypes.CosmosMsg, error) {
	if err := denom.Validate(); err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}

	if denom.IsCw20() {
		msg, err := cw20.NewTransferMsg(recipient, amount.String())
		if err != nil {
			return wasmvmtypes.CosmosMsg{}, err
		}
		return wasmvmtypes.CosmosMsg{
			Wasm: &wasmvmtypes.WasmMsg{
				Execute: &wasmvmtypes.ExecuteMsg{
					ContractAddr: denom.Cw20,
					Msg:          msg,
					Funds:        []wasmvmtypes.Coin{},
				},
			},
		}, nil
	}

	return wasmvmtypes.CosmosMsg{
		Bank: &wasmvmtypes.BankMsg{
			Send: &wasmvmtypes.SendMsg{
				ToAddress: recipient,
				Amount:    []wasmvmtypes.Coin{{Denom: denom.Native, Amount: amount.String()}},
			},
		},
	}, nil
}
