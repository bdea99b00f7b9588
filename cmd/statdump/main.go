// Command statdump resolves dump field selections for every statistics
// domain and prints the resulting plan.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lex00/statdump/cmd"
	"github.com/lex00/statdump/domain"
	"github.com/lex00/statdump/version"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	root := cmd.NewRootCommand(domain.CommandName, "Dump collected statistics by domain")
	root.Version = version.Version()
	root.PersistentPreRun = func(c *cobra.Command, args []string) {
		if verbose, _ := c.Flags().GetBool("verbose"); verbose {
			level.Set(slog.LevelDebug)
		}
	}

	root.AddCommand(domain.Run(domain.NewPlanPrinter(os.Stdout), domain.WithLogger(logger)))
	root.AddCommand(cmd.NewFieldsCommand(domain.Lookup))
	root.AddCommand(cmd.NewLintCommand(domain.All()))
	return root
}
