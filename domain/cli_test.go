package domain_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lex00/statdump/domain"
	"github.com/lex00/statdump/field"
	"github.com/lex00/statdump/model"
)

// recorder is a Dumper that keeps every plan it receives.
type recorder struct {
	plans []domain.Plan
	err   error
}

func (r *recorder) Dump(ctx context.Context, plan domain.Plan) error {
	r.plans = append(r.plans, plan)
	return r.err
}

func (r *recorder) last(t *testing.T) domain.Plan {
	t.Helper()
	require.Len(t, r.plans, 1)
	return r.plans[0]
}

func execute(t *testing.T, rec *recorder, args ...string) (string, error) {
	t.Helper()
	dump := domain.Run(rec)
	out := new(bytes.Buffer)
	dump.SetOut(out)
	dump.SetErr(out)
	dump.SetArgs(args)
	err := dump.Execute()
	return out.String(), err
}

func TestRunCreatesDomainSubcommands(t *testing.T) {
	dump := domain.Run(&recorder{})
	assert.Equal(t, "dump", dump.Use)
	var names []string
	for _, c := range dump.Commands() {
		names = append(names, c.Name())
	}
	for _, d := range domain.All() {
		assert.Contains(t, names, d.Name())
	}
	for _, c := range dump.Commands() {
		assert.NotNil(t, c.Flags().Lookup("dumprc"), c.Name())
	}
}

func TestDumpFieldsAfterFlag(t *testing.T) {
	rec := &recorder{}
	_, err := execute(t, rec, "system", "-b", "08:30:00", "-f", "datetime", "cpu", "hostname")
	require.NoError(t, err)

	plan := rec.last(t)
	assert.Equal(t, "system", plan.DomainName())
	assert.Equal(t, []string{"datetime", "cpu.usage_pct", "cpu.user_pct", "cpu.system_pct", "hostname"}, plan.Titles())
	assert.Equal(t, "08:30:00", plan.Options().Begin)
}

func TestDumpFieldsCommaAndRepeated(t *testing.T) {
	rec := &recorder{}
	_, err := execute(t, rec, "iface", "-b", "1h ago", "--fields", "datetime,interface", "-f", "rx_bytes_per_sec")
	require.NoError(t, err)
	assert.Equal(t, []string{"datetime", "interface", "rx_bytes_per_sec"}, rec.last(t).Titles())
}

func TestDumpFieldsKeepCommandLineOrder(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"words then repeated flag", []string{"-f", "datetime", "mem.total", "-f", "hostname"},
			[]string{"datetime", "mem.total", "hostname"}},
		{"words after each flag", []string{"-f", "hostname", "mem.total", "--fields=datetime", "os_release"},
			[]string{"hostname", "mem.total", "datetime", "os_release"}},
		{"comma inside a word", []string{"-f", "hostname", "datetime,mem.total"},
			[]string{"hostname", "datetime", "mem.total"}},
		{"other flag after the words", []string{"-f", "mem.total", "hostname", "-O", "csv"},
			[]string{"mem.total", "hostname"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			_, err := execute(t, rec, append([]string{"system", "-b", "x"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.last(t).Titles())
		})
	}
}

func TestDumpDetail(t *testing.T) {
	rec := &recorder{}
	_, err := execute(t, rec, "system", "-b", "08:30:00", "-d", "-f", "mem")
	require.NoError(t, err)
	assert.Equal(t, field.Names(model.SystemFields().Under("mem")), rec.last(t).Titles())
}

func TestDumpDefaults(t *testing.T) {
	want, err := domain.Disk.ResolveNames(nil, false, false)
	require.NoError(t, err)

	t.Run("no fields", func(t *testing.T) {
		rec := &recorder{}
		_, err := execute(t, rec, "disk", "-b", "08:30:00")
		require.NoError(t, err)
		assert.Equal(t, want, rec.last(t).Titles())
	})

	t.Run("--default wins over --fields", func(t *testing.T) {
		rec := &recorder{}
		_, err := execute(t, rec, "disk", "-b", "08:30:00", "--default", "-f", "name")
		require.NoError(t, err)
		assert.Equal(t, want, rec.last(t).Titles())
	})

	t.Run("--default still checks tokens", func(t *testing.T) {
		rec := &recorder{}
		_, err := execute(t, rec, "disk", "-b", "08:30:00", "--default", "-f", "bogus")
		assert.ErrorIs(t, err, field.ErrUnrecognizedField)
		assert.Empty(t, rec.plans)
	})
}

func TestDumpEverything(t *testing.T) {
	want, err := domain.System.ResolveNames(nil, true, true)
	require.NoError(t, err)

	rec := &recorder{}
	_, err = execute(t, rec, "system", "-b", "08:30:00", "--everything", "-f", "hostname")
	require.NoError(t, err)

	plan := rec.last(t)
	assert.Equal(t, want, plan.Titles())
	assert.True(t, plan.Options().UseDefault())
	assert.True(t, plan.Options().UseDetail())
}

func TestDumpUnrecognizedField(t *testing.T) {
	rec := &recorder{}
	_, err := execute(t, rec, "system", "-b", "08:30:00", "-f", "bogus_field")
	require.Error(t, err)
	assert.Equal(t, "unrecognized field: bogus_field", err.Error())
	assert.Empty(t, rec.plans)
}

func TestDumpFlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing begin", []string{"system", "-f", "hostname"}, `required flag(s) "begin" not set`},
		{"positional without --fields", []string{"system", "-b", "x", "hostname"}, `unexpected argument "hostname"`},
		{"positional before --fields", []string{"system", "hostname", "-b", "x", "-f", "datetime"}, `unexpected argument "hostname"`},
		{"positional after another flag", []string{"system", "-b", "x", "-f", "datetime", "--detail", "hostname"}, `unexpected argument "hostname"`},
		{"positional after flag value", []string{"system", "-f", "datetime", "-b", "x", "hostname"}, `unexpected argument "hostname"`},
		{"negative repeat title", []string{"system", "-b", "x", "--repeat-title", "-3"}, `invalid argument "-3"`},
		{"fields and pattern", []string{"system", "-b", "x", "-f", "cpu", "-p", "brief"}, "[fields pattern]"},
		{"end and duration", []string{"system", "-b", "x", "-e", "y", "--duration", "1m"}, "[end duration]"},
		{"sort and rsort", []string{"disk", "-b", "x", "-s", "name", "--sort", "--rsort"}, "[sort rsort]"},
		{"bad regex", []string{"disk", "-b", "x", "-s", "name", "-F", "["}, "error parsing regexp"},
		{"bad select", []string{"disk", "-b", "x", "-s", "bogus"}, "unrecognized field: bogus"},
		{"select group", []string{"disk", "-b", "x", "-s", "read"}, "unrecognized field: read"},
		{"select on system", []string{"system", "-b", "x", "-s", "hostname"}, "unknown shorthand flag: 's'"},
		{"bad output format", []string{"system", "-b", "x", "-O", "xml"}, "no such output format: xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			_, err := execute(t, rec, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, rec.plans)
		})
	}
}

func TestDumpFlagGroupsCheckedBeforeTokens(t *testing.T) {
	rec := &recorder{}
	_, err := execute(t, rec, "system", "-b", "x", "-f", "bogus_field", "-p", "brief")
	require.Error(t, err)
	assert.NotErrorIs(t, err, field.ErrUnrecognizedField)
	assert.Contains(t, err.Error(), "[fields pattern]")
}

func TestDumpRowOperationsNeedSelect(t *testing.T) {
	for _, args := range [][]string{
		{"--sort"},
		{"--rsort"},
		{"--top", "3"},
		{"-F", "eth.*"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			rec := &recorder{}
			_, err := execute(t, rec, append([]string{"iface", "-b", "x"}, args...)...)
			assert.ErrorIs(t, err, domain.ErrSelectRequired)
		})
	}

	rec := &recorder{}
	_, err := execute(t, rec, "network", "-b", "x", "--sort")
	assert.ErrorIs(t, err, domain.ErrSelectRequired)
	assert.Contains(t, err.Error(), "network")

	_, err = execute(t, rec, "iface", "-b", "x", "--top", "0")
	assert.NoError(t, err, "--top 0 means no limit")
}

func TestDumpSelect(t *testing.T) {
	rec := &recorder{}
	_, err := execute(t, rec, "process", "-b", "08:30:00", "-s", "COMM", "-F", "below.*", "--rsort", "--top", "5", "-f", "pid,comm")
	require.NoError(t, err)

	plan := rec.last(t)
	assert.Equal(t, "comm", plan.SelectName())
	opts := plan.Options()
	assert.True(t, opts.RSort)
	assert.Equal(t, uint32(5), opts.Top)
	require.NotNil(t, opts.Filter)
	assert.True(t, opts.Filter.MatchString("below_agent"))

	req, ok := plan.(*domain.Request[model.ProcessField])
	require.True(t, ok)
	assert.True(t, req.HasSelect)
	assert.Equal(t, model.ProcessComm, req.Select)
	assert.Equal(t, []string{"pid", "comm"}, field.Names(req.Fields))
}

func TestDumpOutputOptions(t *testing.T) {
	rec := &recorder{}
	_, err := execute(t, rec, "btrfs", "-b", "x", "-e", "y", "-r", "1",
		"-O", "JSON", "-o", "/tmp/out", "--disable-title", "--repeat-title", "10", "--br", "==", "--raw")
	require.NoError(t, err)

	opts := rec.last(t).Options()
	assert.Equal(t, domain.OutputJSON, opts.OutputFormat)
	assert.Equal(t, "/tmp/out", opts.Output)
	assert.Equal(t, "y", opts.End)
	assert.Equal(t, "1", opts.Yesterdays)
	assert.True(t, opts.DisableTitle)
	assert.Equal(t, uint(10), opts.RepeatTitle)
	assert.Equal(t, "==", opts.Br)
	assert.True(t, opts.Raw)
	assert.Empty(t, rec.last(t).SelectName())
}

func TestDumpPattern(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, "dumprc")
	require.NoError(t, os.WriteFile(rc, []byte(`
[process]
brief = ["datetime", "pid", "comm", "mem"]
`), 0o644))

	t.Run("flag", func(t *testing.T) {
		rec := &recorder{}
		_, err := execute(t, rec, "process", "--dumprc", rc, "-b", "x", "-p", "brief")
		require.NoError(t, err)
		assert.Equal(t, []string{"datetime", "pid", "comm", "mem.rss_bytes"}, rec.last(t).Titles())
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(domain.EnvDumprc, rc)
		rec := &recorder{}
		_, err := execute(t, rec, "process", "-b", "x", "-p", "brief", "-d")
		require.NoError(t, err)
		titles := rec.last(t).Titles()
		assert.Equal(t, []string{"datetime", "pid", "comm"}, titles[:3])
		assert.Greater(t, len(titles), 4)
	})

	t.Run("--default wins over --pattern", func(t *testing.T) {
		want, err := domain.Process.ResolveNames(nil, true, false)
		require.NoError(t, err)
		rec := &recorder{}
		_, err = execute(t, rec, "process", "--dumprc", rc, "-b", "x", "-p", "brief", "--default")
		require.NoError(t, err)
		assert.Equal(t, want, rec.last(t).Titles())
	})

	t.Run("--default skips a missing pattern", func(t *testing.T) {
		want, err := domain.Cgroup.ResolveNames(nil, false, false)
		require.NoError(t, err)
		rec := &recorder{}
		_, err = execute(t, rec, "cgroup", "--dumprc", rc, "-b", "x", "-p", "brief", "--default")
		require.NoError(t, err)
		assert.Equal(t, want, rec.last(t).Titles())
	})

	t.Run("unknown pattern", func(t *testing.T) {
		rec := &recorder{}
		_, err := execute(t, rec, "cgroup", "--dumprc", rc, "-b", "x", "-p", "brief")
		assert.ErrorIs(t, err, domain.ErrPatternNotFound)
		var pnf *domain.PatternNotFoundError
		require.ErrorAs(t, err, &pnf)
		assert.Equal(t, "cgroup", pnf.Domain)
		assert.Empty(t, rec.plans)
	})
}

func TestDumpPatternBadTokenFails(t *testing.T) {
	rc := filepath.Join(t.TempDir(), "dumprc.yaml")
	require.NoError(t, os.WriteFile(rc, []byte("system:\n  broken: [hostname, nope]\n"), 0o644))

	rec := &recorder{}
	_, err := execute(t, rec, "system", "--dumprc", rc, "-b", "x", "-p", "broken")
	require.Error(t, err)
	assert.Equal(t, "unrecognized field: nope", err.Error())
}

func TestDumperErrorIsReturned(t *testing.T) {
	rec := &recorder{err: errors.New("store unavailable")}
	_, err := execute(t, rec, "transport", "-b", "x")
	assert.EqualError(t, err, "store unavailable")
}

func TestDumpHelpShowsLongAbout(t *testing.T) {
	out, err := execute(t, &recorder{}, "cgroup", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Aggregated fields")
	assert.Contains(t, out, "* pressure: includes [")
	assert.Contains(t, out, "--select")
}

func TestDumpDebugLogging(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rec := &recorder{}
	dump := domain.Run(rec, domain.WithLogger(logger))
	dump.SetArgs([]string{"system", "-b", "x", "-f", "cpu"})
	require.NoError(t, dump.Execute())

	assert.Contains(t, buf.String(), "resolved dump fields")
	assert.Contains(t, buf.String(), "domain=system")
	assert.Contains(t, buf.String(), "source=fields")
	assert.Contains(t, buf.String(), "fields=3")
}

// Every example shown in the help text must be accepted by the command.
func TestHelpExamplesParse(t *testing.T) {
	for _, name := range []string{"system", "disk", "btrfs", "process", "cgroup", "iface", "network", "transport"} {
		d, err := domain.Lookup(name)
		require.NoError(t, err)
		examples := exampleArgs(t, d)
		require.NotEmpty(t, examples, name)
		for _, args := range examples {
			t.Run(name+" "+strings.Join(args, " "), func(t *testing.T) {
				rec := &recorder{}
				_, err := execute(t, rec, append([]string{name}, args...)...)
				require.NoError(t, err)
				assert.NotEmpty(t, rec.last(t).Titles())
			})
		}
	}
}

// exampleArgs extracts the argument lists of the "$ statdump dump" lines of
// a domain's help text, honoring double quotes.
func exampleArgs(t *testing.T, d domain.Info) [][]string {
	t.Helper()
	prefix := "$ statdump dump " + d.Name() + " "
	var out [][]string
	for _, line := range strings.Split(d.LongAbout(), "\n") {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			out = append(out, splitArgs(rest))
		}
	}
	return out
}

func splitArgs(s string) []string {
	var (
		args   []string
		cur    strings.Builder
		quoted bool
		inArg  bool
	)
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
			inArg = true
		case r == ' ' && !quoted:
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args
}
