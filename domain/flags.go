package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/pflag"

	"github.com/lex00/statdump/field"
)

// tokenList collects --fields tokens. Each flag value may hold several
// comma separated tokens; resolution happens after flag validation.
type tokenList struct {
	tokens []string
}

var _ pflag.Value = (*tokenList)(nil)

func (l *tokenList) String() string { return strings.Join(l.tokens, ",") }

func (l *tokenList) Type() string { return "fields" }

func (l *tokenList) Set(s string) error {
	l.tokens = append(l.tokens, splitTokens(s)...)
	return nil
}

func splitTokens(s string) []string {
	var tokens []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// flagEvent is one flag occurrence on the command line.
type flagEvent struct {
	fields bool
	tokens []string
	// at is the number of positional words pflag had collected when the
	// flag was set.
	at int
}

// argOrder records flag occurrences so positional words can be placed
// after the flag they follow. pflag appends positional words to Args while
// it parses, so its length marks where each flag sits among them.
type argOrder struct {
	flags  *pflag.FlagSet
	events []flagEvent
}

// orderedValue wraps a flag value to record every occurrence.
type orderedValue struct {
	pflag.Value
	order  *argOrder
	fields *tokenList
}

func (v orderedValue) Set(s string) error {
	var before int
	if v.fields != nil {
		before = len(v.fields.tokens)
	}
	if err := v.Value.Set(s); err != nil {
		return err
	}
	e := flagEvent{at: len(v.order.flags.Args())}
	if v.fields != nil {
		e.fields = true
		e.tokens = append([]string(nil), v.fields.tokens[before:]...)
	}
	v.order.events = append(v.order.events, e)
	return nil
}

// newArgOrder wraps every flag already defined on flags. fields is the
// value behind --fields.
func newArgOrder(flags *pflag.FlagSet, fields *tokenList) *argOrder {
	o := &argOrder{flags: flags}
	flags.VisitAll(func(f *pflag.Flag) {
		v := orderedValue{Value: f.Value, order: o}
		if f.Value == pflag.Value(fields) {
			v.fields = fields
		}
		f.Value = v
	})
	return o
}

// fieldTokens returns the --fields tokens in command line order. Positional
// words extend the --fields value they directly follow; a word after any
// other flag, or before the first flag, is rejected.
func (o *argOrder) fieldTokens(args []string) ([]string, error) {
	unexpected := func(arg string) error {
		return fmt.Errorf("unexpected argument %q (field names follow --fields)", arg)
	}

	defer func() { o.events = nil }()

	var tokens []string
	next := 0
	for i, e := range o.events {
		end := len(args)
		if i+1 < len(o.events) {
			end = o.events[i+1].at
		}
		if e.at > next {
			return nil, unexpected(args[next])
		}
		words := args[e.at:end]
		if !e.fields {
			if len(words) > 0 {
				return nil, unexpected(words[0])
			}
			continue
		}
		tokens = append(tokens, e.tokens...)
		for _, w := range words {
			tokens = append(tokens, splitTokens(w)...)
		}
		next = end
	}
	if next < len(args) {
		return nil, unexpected(args[next])
	}
	return tokens, nil
}

// selectValue parses --select as a domain field.
type selectValue[F field.ID] struct {
	parse func(string) (F, error)
	value F
	set   bool
}

func (v *selectValue[F]) String() string {
	if !v.set {
		return ""
	}
	return v.value.String()
}

func (v *selectValue[F]) Type() string { return "field" }

func (v *selectValue[F]) Set(s string) error {
	id, err := v.parse(s)
	if err != nil {
		return err
	}
	v.value, v.set = id, true
	return nil
}

// regexpValue compiles --filter while flags are parsed.
type regexpValue struct {
	re **regexp.Regexp
}

var _ pflag.Value = regexpValue{}

func (v regexpValue) String() string {
	if v.re == nil || *v.re == nil {
		return ""
	}
	return (*v.re).String()
}

func (v regexpValue) Type() string { return "regex" }

func (v regexpValue) Set(s string) error {
	re, err := regexp.Compile(s)
	if err != nil {
		return err
	}
	*v.re = re
	return nil
}

// outputFormatValue parses --output-format by name.
type outputFormatValue struct {
	format *OutputFormat
}

var _ pflag.Value = outputFormatValue{}

func (v outputFormatValue) String() string { return v.format.String() }

func (v outputFormatValue) Type() string { return "format" }

func (v outputFormatValue) Set(s string) error {
	f, err := ParseOutputFormat(s)
	if err != nil {
		return fmt.Errorf("%w (choose from %s)", err, strings.Join(outputFormats.Names(), ", "))
	}
	*v.format = f
	return nil
}

// bindGeneralOpts registers the flags shared by every dump subcommand.
func bindGeneralOpts(flags *pflag.FlagSet, opts *GeneralOpts) {
	flags.BoolVar(&opts.Default, "default", false, "Show the default fields. Overrides --fields")
	flags.BoolVar(&opts.Everything, "everything", false, "Show all fields. Overrides --fields and --default")
	flags.BoolVarP(&opts.Detail, "detail", "d", false, "Expand aggregated fields fully")

	flags.StringVarP(&opts.Begin, "begin", "b", "", "Begin time, same format as replay")
	flags.StringVarP(&opts.End, "end", "e", "", "End time, same format as replay")
	flags.StringVar(&opts.Duration, "duration", "", `Time string specifying the duration, e.g. "10 min"`)
	flags.StringVarP(&opts.Yesterdays, "yesterdays", "r", "", "Days adjuster, same as -r option in replay")

	flags.VarP(regexpValue{re: &opts.Filter}, "filter", "F", "Regex applied to the --select field")
	flags.BoolVar(&opts.Sort, "sort", false, "Sort (lower to higher) by the --select field")
	flags.BoolVar(&opts.RSort, "rsort", false, "Sort (higher to lower) by the --select field")
	flags.Uint32Var(&opts.Top, "top", 0, "Display the top N rows per time slice (0 shows all)")

	flags.UintVar(&opts.RepeatTitle, "repeat-title", 0, "Repeat the title every N lines (raw output only)")
	flags.VarP(outputFormatValue{format: &opts.OutputFormat}, "output-format", "O",
		"Output format: "+strings.Join(outputFormats.Names(), ", "))
	flags.StringVarP(&opts.Output, "output", "o", "", "Output destination (default stdout)")
	flags.BoolVar(&opts.DisableTitle, "disable-title", false, "Disable the title in raw, csv or tsv output")
	flags.StringVar(&opts.Br, "br", "", "Line break symbol between samples")
	flags.BoolVar(&opts.Raw, "raw", false, "Dump raw data without units or conversion")

	flags.String("dumprc", "", "Pattern file (default $"+EnvDumprc+" or the user config dir)")
}
