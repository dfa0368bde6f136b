package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/coordkeeper/core/cmd/coordkeeper/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "coordkeeper",
		Short:        "Minecraft coordinates manager",
		Long:         `coordkeeper keeps named Minecraft coordinates grouped into per-world profiles, all stored in a single human-readable JSON file.`,
		SilenceUsage: true,
	}

	commands.AddCommands(rootCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
