package cosmwasmapi

import (
	"context"
	"encoding/json"

	"github.com/satlayer/satlayer-vesting/host"
)

// Query runs a smart query against the contract hosted by rt and decodes the response.
func Query[Response interface{}](
	rt *host.Runtime, ctx context.Context, block host.BlockInfo, msg interface{},
) (Response, error) {
	var result Response

	queryBytes, err := json.Marshal(msg)
	if err != nil {
		return result, err
	}

	data, err := rt.Query(ctx, block, queryBytes)
	if err != nil {
		return result, err
	}

	err = json.Unmarshal(data, &result)
	return result, err
}

// Instantiate runs the instantiate entry point with the message, sender and funds of opts.
func Instantiate(rt *host.Runtime, ctx context.Context, opts ExecuteOptions) (*host.Response, error) {
	return rt.Instantiate(ctx, opts.Block, host.MessageInfo{Sender: opts.Sender, Funds: opts.Funds}, opts.ExecuteMsg)
}

// Execute runs the execute entry point with the message, sender and funds of opts.
func Execute(rt *host.Runtime, ctx context.Context, opts ExecuteOptions) (*host.Response, error) {
	return rt.Execute(ctx, opts.Block, host.MessageInfo{Sender: opts.Sender, Funds: opts.Funds}, opts.ExecuteMsg)
}
