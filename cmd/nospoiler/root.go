package main

import (
	"github.com/spf13/cobra"
)

// defaultConfigPath is used when --config is not given. A missing file
// means defaults.
const defaultConfigPath = "nospoiler.toml"

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "nospoiler",
		Short:         "Generate a spoiler-free MotoGP video site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", defaultConfigPath, "Configuration file path (.toml or .json)")

	rootCmd.AddCommand(newGenerateCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}
