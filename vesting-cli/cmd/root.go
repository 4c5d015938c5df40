package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vesting",
		Short:         "Run the token vesting contracts against a local chain",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	home, _ := os.UserHomeDir()
	rootCmd.PersistentFlags().String("home", filepath.Join(home, ".vesting"), "Directory holding the chain state")
	rootCmd.PersistentFlags().String("db-backend", "goleveldb", "Backend of the chain database, options: goleveldb, memdb")
	rootCmd.PersistentFlags().String("chain-id", "vesting-local", "Chain id reported to the contract")
	rootCmd.PersistentFlags().String("bech32-prefix", "cosmos", "Human readable prefix of addresses, e.g. cosmos")
	rootCmd.PersistentFlags().String("contract", "airdrop-token-vesting", "Contract to run, options: airdrop-token-vesting, core-token-vesting, core-token-vesting-v2")
	rootCmd.PersistentFlags().String("contract-address", "", "Address of the contract, derived from the contract name if empty")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level, options: debug, info, warn, error")
	rootCmd.PersistentFlags().String("api-listen", "127.0.0.1:8080", "Listen address of the HTTP API")
	rootCmd.PersistentFlags().String("metrics-listen", "127.0.0.1:9090", "Listen address of the metrics server")

	_ = viper.BindPFlag("home", rootCmd.PersistentFlags().Lookup("home"))
	_ = viper.BindPFlag("db-backend", rootCmd.PersistentFlags().Lookup("db-backend"))
	_ = viper.BindPFlag("chain-id", rootCmd.PersistentFlags().Lookup("chain-id"))
	_ = viper.BindPFlag("bech32-prefix", rootCmd.PersistentFlags().Lookup("bech32-prefix"))
	_ = viper.BindPFlag("contract", rootCmd.PersistentFlags().Lookup("contract"))
	_ = viper.BindPFlag("contract-address", rootCmd.PersistentFlags().Lookup("contract-address"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("api.listen", rootCmd.PersistentFlags().Lookup("api-listen"))
	_ = viper.BindPFlag("metrics.listen", rootCmd.PersistentFlags().Lookup("metrics-listen"))

	rootCmd.AddCommand(instantiateCmd())
	rootCmd.AddCommand(executeCmd())
	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(cw20Cmd())
	rootCmd.AddCommand(fundCmd())
	rootCmd.AddCommand(fundCw20Cmd())
	rootCmd.AddCommand(balanceCmd())
	rootCmd.AddCommand(addressCmd())
	rootCmd.AddCommand(serveCmd())
	return rootCmd
}
