package domain

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// ErrNeedsSamples is returned for output formats that cannot describe a
// plan without sample data.
var ErrNeedsSamples = errors.New("output format needs sample data")

// minColumnWidth is the narrowest raw column.
const minColumnWidth = 10

var titleStyle = lipgloss.NewStyle().Bold(true)

// PlanPrinter is a Dumper that prints the resolved plan instead of samples.
// It is the dumper of the bundled binary, which has no store to read from.
type PlanPrinter struct {
	out io.Writer
}

var _ Dumper = (*PlanPrinter)(nil)

// NewPlanPrinter returns a PlanPrinter writing to out unless a plan names
// an --output file.
func NewPlanPrinter(out io.Writer) *PlanPrinter {
	return &PlanPrinter{out: out}
}

// Dump implements Dumper.
func (p *PlanPrinter) Dump(ctx context.Context, plan Plan) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := plan.Options()
	w := p.out
	if opts.Output != "" {
		f, oerr := os.Create(opts.Output)
		if oerr != nil {
			return fmt.Errorf("failed to open output: %w", oerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output: %w", cerr)
			}
		}()
		w = f
	}

	s, err := FormatPlan(plan, useColor(w))
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// useColor reports whether w is a terminal that accepts styling.
func useColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// FormatPlan renders plan in its requested output format. styled only
// affects raw output.
func FormatPlan(plan Plan, styled bool) (string, error) {
	opts := plan.Options()

	var (
		s   string
		err error
	)
	switch opts.OutputFormat {
	case OutputRaw:
		s = formatRaw(plan, styled)
	case OutputCSV:
		s, err = formatDelimited(plan, ',')
	case OutputTSV:
		s, err = formatDelimited(plan, '\t')
	case OutputJSON:
		s, err = formatJSON(plan)
	case OutputKeyVal:
		s = formatKeyVal(plan)
	default:
		return "", fmt.Errorf("%s: %w", opts.OutputFormat, ErrNeedsSamples)
	}
	if err != nil {
		return "", err
	}
	if opts.Br != "" {
		s += opts.Br + "\n"
	}
	return s, nil
}

func formatRaw(plan Plan, styled bool) string {
	if plan.Options().DisableTitle {
		return ""
	}
	titles := plan.Titles()
	cols := make([]string, len(titles))
	for i, t := range titles {
		cols[i] = runewidth.FillRight(t, max(runewidth.StringWidth(t), minColumnWidth))
	}
	line := strings.TrimRight(strings.Join(cols, " "), " ")
	if styled {
		line = titleStyle.Render(line)
	}
	return line + "\n"
}

func formatDelimited(plan Plan, comma rune) (string, error) {
	if plan.Options().DisableTitle {
		return "", nil
	}
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = comma
	if err := w.Write(plan.Titles()); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write title: %w", err)
	}
	return sb.String(), nil
}

// planJSON is the JSON shape of a plan.
type planJSON struct {
	Domain       string      `json:"domain"`
	Fields       []string    `json:"fields"`
	Select       string      `json:"select,omitempty"`
	Filter       string      `json:"filter,omitempty"`
	OutputFormat string      `json:"output_format"`
	Options      GeneralOpts `json:"options"`
}

func formatJSON(plan Plan) (string, error) {
	opts := plan.Options()
	v := planJSON{
		Domain:       plan.DomainName(),
		Fields:       plan.Titles(),
		Select:       plan.SelectName(),
		OutputFormat: opts.OutputFormat.String(),
		Options:      opts,
	}
	if v.Fields == nil {
		v.Fields = []string{}
	}
	if opts.Filter != nil {
		v.Filter = opts.Filter.String()
	}
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(bytes) + "\n", nil
}

func formatKeyVal(plan Plan) string {
	opts := plan.Options()
	var sb strings.Builder
	kv := func(k, v string) {
		if v != "" {
			fmt.Fprintf(&sb, "%s=%s\n", k, v)
		}
	}
	kv("domain", plan.DomainName())
	if !opts.DisableTitle {
		kv("fields", strings.Join(plan.Titles(), ","))
	}
	kv("select", plan.SelectName())
	if opts.Filter != nil {
		kv("filter", opts.Filter.String())
	}
	switch {
	case opts.Sort:
		kv("sort", "asc")
	case opts.RSort:
		kv("sort", "desc")
	}
	if opts.Top > 0 {
		kv("top", strconv.FormatUint(uint64(opts.Top), 10))
	}
	kv("begin", opts.Begin)
	kv("end", opts.End)
	kv("duration", opts.Duration)
	kv("yesterdays", opts.Yesterdays)
	return sb.String()
}
