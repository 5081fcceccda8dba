package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:          "openreaders",
		Short:        "OpenReaders reader - buy and unlock paid books",
		Version:      Version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(unlockCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(pagesCmd())
	rootCmd.AddCommand(healthCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
