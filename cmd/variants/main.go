package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "variants",
		Short:         "Store uploads and their resized image variants",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(uploadEntrypoint())
	rootCmd.AddCommand(fitEntrypoint())
	rootCmd.AddCommand(tokenEntrypoint())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
