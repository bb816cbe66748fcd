package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cashpayctl",
		Short:         "Operator tooling for the cash payment service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(encodeURLCmd())
	rootCmd.AddCommand(decodeURLCmd())
	rootCmd.AddCommand(upsertSuccessCmd())
	rootCmd.AddCommand(nextReferenceCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(confirmCmd())

	return rootCmd
}
