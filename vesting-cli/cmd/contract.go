package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	cosmwasmapi "github.com/satlayer/satlayer-vesting/cosmwasm-api"
	"github.com/satlayer/satlayer-vesting/host"
	"github.com/satlayer/satlayer-vesting/vesting-cli/chain"
)

// output is the printed form of a response; data is inlined when it is JSON.
type output struct {
	Messages   any             `json:"messages"`
	Attributes any             `json:"attributes"`
	Data       json.RawMessage `json:"data,omitempty"`
}

func withChain(fn func(c *chain.Chain) error) error {
	c, err := chain.Open()
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}

func addBlockFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("height", 1, "Block height of the invocation")
	cmd.Flags().Uint64("time", 0, "Block time in seconds since the unix epoch, now if 0")
}

func blockInfo(cmd *cobra.Command) host.BlockInfo {
	height, _ := cmd.Flags().GetUint64("height")
	t, _ := cmd.Flags().GetUint64("time")
	if t == 0 {
		t = uint64(time.Now().Unix())
	}
	return host.BlockInfo{Height: height, Time: t}
}

func addSenderFlags(cmd *cobra.Command, funds bool) {
	cmd.Flags().String("sender", "", "Address invoking the contract")
	_ = cmd.MarkFlagRequired("sender")
	if funds {
		cmd.Flags().String("amount", "", "Coins attached to the invocation, e.g. 1000uatom")
	}
}

// executeOptions builds the invocation from the sender, amount and block flags.
func executeOptions(cmd *cobra.Command, msg string) (cosmwasmapi.ExecuteOptions, error) {
	if !json.Valid([]byte(msg)) {
		return cosmwasmapi.ExecuteOptions{}, fmt.Errorf("invalid message %q", msg)
	}
	sender, _ := cmd.Flags().GetString("sender")
	block := blockInfo(cmd)
	opts := cosmwasmapi.DefaultExecuteOptions().
		WithSender(sender).
		WithExecuteMsg(json.RawMessage(msg)).
		WithBlock(block.Height, block.Time)

	amount, _ := cmd.Flags().GetString("amount")
	if amount != "" {
		if _, err := sdk.ParseCoinsNormalized(amount); err != nil {
			return opts, fmt.Errorf("invalid amount %q: %w", amount, err)
		}
		opts = opts.WithFunds(amount)
	}
	return opts, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResponse(cmd *cobra.Command, res *host.Response) error {
	out := output{Messages: res.Messages, Attributes: res.Attributes}
	if json.Valid(res.Data) {
		out.Data = res.Data
	}
	return printJSON(cmd, out)
}

func instantiateCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "instantiate <json>",
		Short: "To instantiate the contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := executeOptions(cmd, args[0])
			if err != nil {
				return err
			}
			return withChain(func(c *chain.Chain) error {
				res, err := cosmwasmapi.Instantiate(c.Runtime, context.Background(), opts)
				if err != nil {
					return err
				}
				return printResponse(cmd, res)
			})
		},
	}
	addSenderFlags(command, true)
	addBlockFlags(command)
	return command
}

func executeCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "execute <json>",
		Short: "To execute a contract message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := executeOptions(cmd, args[0])
			if err != nil {
				return err
			}
			return withChain(func(c *chain.Chain) error {
				res, err := cosmwasmapi.Execute(c.Runtime, context.Background(), opts)
				if err != nil {
					return err
				}
				return printResponse(cmd, res)
			})
		},
	}
	addSenderFlags(command, true)
	addBlockFlags(command)
	return command
}

func queryCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "query <json>",
		Short: "To query the contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withChain(func(c *chain.Chain) error {
				data, err := cosmwasmapi.Query[json.RawMessage](c.Runtime, context.Background(), blockInfo(cmd), json.RawMessage(args[0]))
				if err != nil {
					return err
				}
				return printJSON(cmd, data)
			})
		},
	}
	addBlockFlags(command)
	return command
}

func cw20Cmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "cw20",
		Short: "cw20 token related commands",
	}

	send := &cobra.Command{
		Use:   "send <token> <amount> <json>",
		Short: "To send cw20 tokens to the contract with a hook message",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := sdkmath.NewIntFromString(args[1])
			if !ok || !amount.IsPositive() {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			sender, _ := cmd.Flags().GetString("sender")
			return withChain(func(c *chain.Chain) error {
				res, err := c.Runtime.SendCw20(context.Background(), blockInfo(cmd), args[0], sender, amount, []byte(args[2]))
				if err != nil {
					return err
				}
				return printResponse(cmd, res)
			})
		},
	}
	addSenderFlags(send, false)
	addBlockFlags(send)

	command.AddCommand(send)
	return command
}
