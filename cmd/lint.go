package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lex00/statdump/domain"
	"github.com/lex00/statdump/lint"
)

// NewLintCommand creates a lint command that checks the tables of domains.
func NewLintCommand(domains []domain.Info) *cobra.Command {
	var opts LintOptions

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check the field tables of every domain",
		Long: `Lint checks every dump domain for group expansions that are empty or name
undeclared fields, names shared between common fields, groups and fields,
and default fields that do not resolve back to themselves.

Issues are categorized by severity (error, warning, info).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			rules := lint.DefaultRegistry().All()
			issues := lint.LintAll(domains, rules, cfg)

			out := cmd.OutOrStdout()
			switch opts.Format {
			case "json":
				if issues == nil {
					issues = []lint.Issue{}
				}
				data, err := json.MarshalIndent(issues, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal JSON: %w", err)
				}
				_, _ = fmt.Fprintln(out, string(data))
			case "text", "":
				if len(issues) == 0 {
					_, _ = fmt.Fprintln(out, "No issues found")
				}
				for _, issue := range issues {
					_, _ = fmt.Fprintf(out, "%s: %s: %s: %s (%s)\n",
						issue.Domain, issue.Subject, issue.Severity, issue.Message, issue.Rule)
				}
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", opts.Format)
			}

			errorCount := 0
			for _, issue := range issues {
				if issue.Severity == lint.SeverityError {
					errorCount++
				}
			}
			if errorCount > 0 {
				return fmt.Errorf("lint found %d error(s)", errorCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format (text, json)")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rules to disable (comma-separated)")
	cmd.Flags().StringVar(&opts.MinSeverity, "severity", "info", "Lowest severity to report (error, warning, info)")

	return cmd
}
