package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "ledgerctl",
		Short:        "Operate the rent ledger: schema migration and one-off job runs",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		migrateCmd(),
		accrueCmd(),
		sweepCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
