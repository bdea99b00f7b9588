package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lex00/statdump/domain"
)

// NewFieldsCommand creates a command that lists the names a domain accepts
// in --fields, or resolves a token list without dumping anything.
func NewFieldsCommand(lookup func(name string) (domain.Info, error)) *cobra.Command {
	var detail, resolve bool

	cmd := &cobra.Command{
		Use:   "fields <domain> [tokens...]",
		Short: "List or resolve the fields of a domain",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookup(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if resolve || len(args) > 1 {
				names, err := d.ResolveNames(args[1:], false, detail)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, strings.Join(names, "\n"))
				return nil
			}

			_, _ = fmt.Fprintf(out, "common: %s\n", strings.Join(d.CommonNames(), ", "))
			_, _ = fmt.Fprintf(out, "fields: %s\n", strings.Join(d.FieldNames(), ", "))
			for _, g := range d.GroupNames() {
				names, err := d.Expansion(g, detail)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "%s: %s\n", g, strings.Join(names, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&detail, "detail", "d", false, "Show full expansions")
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Resolve the domain default list when no tokens are given")

	return cmd
}
