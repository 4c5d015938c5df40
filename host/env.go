package host

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

type BlockInfo struct {
	Height uint64 `json:"height"`
	// Time is in seconds since the unix epoch.
	Time    uint64 `json:"time"`
	ChainID string `json:"chain_id"`
}

type ContractInfo struct {
	Address string `json:"address"`
}

type Env struct {
	Block    BlockInfo    `json:"block"`
	Contract ContractInfo `json:"contract"`
}

type MessageInfo struct {
	Sender string    `json:"sender"`
	Funds  sdk.Coins `json:"funds"`
}
