package cmd

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/satlayer/satlayer-vesting/host"
	"github.com/satlayer/satlayer-vesting/vesting-cli/chain"
)

func fundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund <address> <coins>",
		Short: "To mint native coins to an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coins, err := sdk.ParseCoinsNormalized(args[1])
			if err != nil {
				return fmt.Errorf("invalid coins %q: %w", args[1], err)
			}
			return withChain(func(c *chain.Chain) error {
				if err := c.Runtime.Fund(context.Background(), args[0], coins); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Funded %s with %s\n", args[0], coins)
				return err
			})
		},
	}
}

func fundCw20Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund-cw20 <token> <address> <amount>",
		Short: "To mint cw20 tokens to an address",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := sdkmath.NewIntFromString(args[2])
			if !ok || !amount.IsPositive() {
				return fmt.Errorf("invalid amount %q", args[2])
			}
			return withChain(func(c *chain.Chain) error {
				if err := c.Runtime.FundCw20(context.Background(), args[0], args[1], amount); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Funded %s with %s %s\n", args[1], amount, args[0])
				return err
			})
		},
	}
}

func balanceCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "balance <address> <denom>",
		Short: "To show the balance of an address, use cw20:<token> for a cw20 token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			decimals, _ := cmd.Flags().GetInt32("decimals")
			return withChain(func(c *chain.Chain) error {
				var (
					amount sdkmath.Int
					err    error
				)
				if token, ok := strings.CutPrefix(args[1], "cw20:"); ok {
					amount, err = c.Runtime.Cw20Balance(context.Background(), token, args[0])
				} else {
					amount, err = c.Runtime.Balance(context.Background(), args[0], args[1])
				}
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", FormatAmount(amount, decimals), args[1])
				return err
			})
		},
	}
	command.Flags().Int32("decimals", 0, "Number of decimals of the token, the amount is shown in whole tokens")
	return command
}

// FormatAmount renders amount in whole tokens with thousands separators, e.g. 1234567890 with
// 6 decimals is "1,234.567890".
func FormatAmount(amount sdkmath.Int, decimals int32) string {
	if decimals <= 0 {
		return humanize.BigComma(amount.BigInt())
	}
	fixed := decimal.NewFromBigInt(amount.BigInt(), -decimals).StringFixed(decimals)
	whole, frac, _ := strings.Cut(fixed, ".")

	sign := ""
	if strings.HasPrefix(whole, "-") {
		sign, whole = "-", whole[1:]
	}
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return fixed
	}
	return sign + humanize.BigComma(n) + "." + frac
}

func addressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address <name>",
		Short: "To derive a deterministic address from a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), host.GenerateAddress(viper.GetString("bech32-prefix"), args[0]))
			return err
		},
	}
}
