package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/baechuer/visit-service/internal/logger"
)

func main() {
	logger.Init()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "visitctl",
		Short:        "visit dashboard tooling",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		seedCommand(),
		statsCommand(),
		citiesCommand(),
	)
	return rootCmd
}
