package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command of a statdump CLI.
func NewRootCommand(name, description string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: description,
		Long: description + `

This CLI provides commands for dumping collected statistics by domain,
listing the fields each domain offers, and checking the field tables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags available to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	return cmd
}
