package cosmwasmapi

import (
	"encoding/json"
	"time"

	sdktypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/satlayer/satlayer-vesting/host"
)

type ExecuteOptions struct {
	Sender     string         // Sender: Address invoking the contract
	ExecuteMsg []byte         // ExecuteMsg: Message to be executed, represented as a struct
	Funds      sdktypes.Coins // Funds: Amount of funds to send to the contract, represented as Coins
	Block      host.BlockInfo // Block: Height and time (seconds) the invocation runs at
}

func DefaultExecuteOptions() ExecuteOptions {
	return ExecuteOptions{
		Funds: sdktypes.Coins{},
		Block: host.BlockInfo{Height: 1, Time: uint64(time.Now().Unix())},
	}
}

func (opts ExecuteOptions) WithSender(sender string) ExecuteOptions {
	opts.Sender = sender
	return opts
}

func (opts ExecuteOptions) WithExecuteMsg(executeMsg any) ExecuteOptions {
	executeMsgBytes, err := json.Marshal(executeMsg)
	if err != nil {
		panic(err)
	}

	opts.ExecuteMsg = executeMsgBytes
	return opts
}

func (opts ExecuteOptions) WithFunds(funds string) ExecuteOptions {
	coinFunds, err := sdktypes.ParseCoinsNormalized(funds)
	if err != nil {
		panic(err)
	}

	opts.Funds = coinFunds
	return opts
}

func (opts ExecuteOptions) WithBlock(height, time uint64) ExecuteOptions {
	opts.Block = host.BlockInfo{Height: height, Time: time}
	return opts
}
