package domain

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// EnvDumprc overrides the default dumprc location.
const EnvDumprc = "STATDUMP_DUMPRC"

// Option configures the command built by Run.
type Option func(*dumpEnv)

// WithLogger sets the logger used for debug output of the resolution path.
// The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(env *dumpEnv) {
		if logger != nil {
			env.logger = logger
		}
	}
}

// Run creates the "dump" command with one subcommand per built-in domain.
// Every resolved request is handed to dumper.
//
// Example usage:
//
//	root := cmd.NewRootCommand("statdump", "Dump collected statistics")
//	root.AddCommand(domain.Run(domain.NewPlanPrinter(os.Stdout)))
//	root.Execute()
func Run(dumper Dumper, opts ...Option) *cobra.Command {
	env := &dumpEnv{dumper: dumper, logger: slog.Default()}
	for _, opt := range opts {
		opt(env)
	}
	return buildCLI(env)
}

func buildCLI(env *dumpEnv) *cobra.Command {
	dump := &cobra.Command{
		Use:   "dump",
		Short: "Dump statistics of one domain in a configurable format",
		Long: `Dump statistics of one domain.

Each domain subcommand accepts field names, aggregated fields and common
fields through --fields, or a saved pattern through --pattern.`,
	}

	registryOnce.Do(loadRegistry)
	for _, d := range registry {
		dump.AddCommand(d.(commander).newDumpCommand(env))
	}
	return dump
}

// dumprcPath resolves the dumprc location: flag, then environment, then the
// user config directory.
func dumprcPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("dumprc"); path != "" {
		return path, nil
	}
	if path := os.Getenv(EnvDumprc); path != "" {
		return path, nil
	}
	return DefaultDumprcPath()
}

func loadPatterns(cmd *cobra.Command) (Patterns, error) {
	path, err := dumprcPath(cmd)
	if err != nil {
		return nil, err
	}
	return LoadPatterns(path)
}
