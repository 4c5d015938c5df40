package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/satlayer/satlayer-vesting/vesting-cli/cmd"
	"github.com/satlayer/satlayer-vesting/vesting-cli/conf"
)

func main() {
	cobra.OnInitialize(conf.InitConfig)
	rootCmd := cmd.RootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
