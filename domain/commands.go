package domain

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// ErrSelectRequired is returned when a row operation is requested without
// --select.
var ErrSelectRequired = errors.New("--sort, --rsort, --filter and --top require --select")

// commander is implemented by every *Domain. Other Info implementations
// cannot build dump commands.
type commander interface {
	Info
	newDumpCommand(env *dumpEnv) *cobra.Command
}

// dumpEnv is shared by every dump subcommand.
type dumpEnv struct {
	dumper Dumper
	logger *slog.Logger
}

// newDumpCommand creates the "dump <domain>" subcommand. Field tokens are
// resolved only after cobra has validated the flag groups, so conflicting
// flags are reported before any token. A --pattern is not read when
// --default or --everything replaces the field list.
func (d *Domain[F, A]) newDumpCommand(env *dumpEnv) *cobra.Command {
	var (
		opts    GeneralOpts
		fields  tokenList
		pattern string
		sel     = selectValue[F]{parse: d.resolver.ParseLeaf}
		order   *argOrder
		ordered []string
	)

	cmd := &cobra.Command{
		Use:   d.def.Name,
		Short: d.def.About,
		Args: func(cmd *cobra.Command, args []string) error {
			var err error
			ordered, err = order.fieldTokens(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Sort || opts.RSort || opts.Filter != nil || opts.Top > 0 {
				if !d.def.Selectable {
					return fmt.Errorf("%s: %w, which this domain does not offer", d.def.Name, ErrSelectRequired)
				}
				if !sel.set {
					return ErrSelectRequired
				}
			}

			tokens, source := ordered, "fields"
			if pattern != "" && !opts.UseDefault() {
				p, err := loadPatterns(cmd)
				if err != nil {
					return err
				}
				if tokens, err = p.Lookup(d.def.Name, pattern); err != nil {
					return err
				}
				source = "pattern " + pattern
			}
			switch {
			case opts.UseDefault():
				source = "default"
			case len(tokens) == 0:
				source = "domain default"
			}

			leaves, err := d.Resolve(tokens, opts.UseDefault(), opts.UseDetail())
			if err != nil {
				return err
			}
			env.logger.Debug("resolved dump fields",
				"domain", d.def.Name,
				"source", source,
				"detail", opts.UseDetail(),
				"fields", len(leaves))

			req := &Request[F]{
				Domain:    d.def.Name,
				Fields:    leaves,
				Select:    sel.value,
				HasSelect: sel.set,
				Opts:      opts,
			}
			return env.dumper.Dump(cmd.Context(), req)
		},
	}

	// The long help is only generated when help is actually shown.
	standalone := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		c.Long = d.LongAbout()
		if p := c.Parent(); p != nil {
			p.HelpFunc()(c, args)
			return
		}
		standalone(c, args)
	})

	flags := cmd.Flags()
	flags.VarP(&fields, "fields", "f", "Fields to display, comma or space separated")
	flags.StringVarP(&pattern, "pattern", "p", "", "Saved field pattern from the dumprc file")
	if d.def.Selectable {
		flags.VarP(&sel, "select", "s", "Field used by --sort, --rsort, --filter and --top")
	}
	bindGeneralOpts(flags, &opts)
	order = newArgOrder(flags, &fields)

	_ = cmd.MarkFlagRequired("begin")
	cmd.MarkFlagsMutuallyExclusive("fields", "pattern")
	cmd.MarkFlagsMutuallyExclusive("end", "duration")
	cmd.MarkFlagsMutuallyExclusive("sort", "rsort")

	return cmd
}

var _ commander = System
