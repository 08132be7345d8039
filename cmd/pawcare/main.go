package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pawcare/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pawcare",
		Short: "Clinic records service and reporting tools",
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.ReportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
