package domain

import (
	"regexp"

	"github.com/lex00/statdump/field"
)

// OutputFormat selects the renderer of a dump.
type OutputFormat int

const (
	OutputRaw OutputFormat = iota
	OutputCSV
	OutputTSV
	OutputJSON
	OutputKeyVal
	OutputOpenMetrics
)

var outputFormats = field.NewCatalog("output format",
	field.E("raw", OutputRaw),
	field.E("csv", OutputCSV),
	field.E("tsv", OutputTSV),
	field.E("json", OutputJSON),
	field.E("kv", OutputKeyVal),
	field.E("openmetrics", OutputOpenMetrics),
)

func (f OutputFormat) String() string {
	return outputFormats.Name(f)
}

// ParseOutputFormat returns the output format named s, ignoring case.
func ParseOutputFormat(s string) (OutputFormat, error) {
	return outputFormats.Parse(s)
}

// GeneralOpts are the options shared by every dump subcommand. Apart from
// Default, Everything and Detail they are carried through to the dumper
// untouched.
type GeneralOpts struct {
	// Default forces the domain's default field list.
	Default bool `json:"default,omitempty"`
	// Everything is Default plus Detail.
	Everything bool `json:"everything,omitempty"`
	// Detail selects full group expansion.
	Detail bool `json:"detail,omitempty"`

	Begin      string `json:"begin,omitempty"`
	End        string `json:"end,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Yesterdays string `json:"yesterdays,omitempty"`

	// Filter is applied to the rendered value of the selected field.
	Filter *regexp.Regexp `json:"-"`
	Sort   bool           `json:"sort,omitempty"`
	RSort  bool           `json:"rsort,omitempty"`
	// Top limits rows per time slice; 0 means no limit.
	Top uint32 `json:"top,omitempty"`

	RepeatTitle  uint         `json:"repeat_title,omitempty"`
	OutputFormat OutputFormat `json:"-"`
	Output       string       `json:"output,omitempty"`
	DisableTitle bool         `json:"disable_title,omitempty"`
	Br           string       `json:"br,omitempty"`
	Raw          bool         `json:"raw,omitempty"`
}

// UseDefault reports whether the default field list is forced.
func (o GeneralOpts) UseDefault() bool {
	return o.Default || o.Everything
}

// UseDetail reports whether groups expand fully.
func (o GeneralOpts) UseDetail() bool {
	return o.Detail || o.Everything
}

// Request is a resolved dump request for a domain with field type F.
type Request[F field.ID] struct {
	Domain string
	// Fields is the flattened selection in output order.
	Fields []field.DumpField[F]
	// Select is the key of --sort, --rsort, --filter and --top when HasSelect.
	Select    F
	HasSelect bool
	Opts      GeneralOpts
}

// DomainName implements Plan.
func (r *Request[F]) DomainName() string { return r.Domain }

// Titles implements Plan.
func (r *Request[F]) Titles() []string { return field.Names(r.Fields) }

// SelectName implements Plan.
func (r *Request[F]) SelectName() string {
	if !r.HasSelect {
		return ""
	}
	return r.Select.String()
}

// Options implements Plan.
func (r *Request[F]) Options() GeneralOpts { return r.Opts }
