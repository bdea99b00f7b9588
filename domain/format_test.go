package domain_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lex00/statdump/domain"
	"github.com/lex00/statdump/field"
	"github.com/lex00/statdump/model"
)

func diskPlan(t *testing.T, opts domain.GeneralOpts) *domain.Request[model.DiskField] {
	t.Helper()
	leaves, err := domain.Disk.Resolve([]string{"datetime", "name", "read_bytes_per_sec"}, false, false)
	require.NoError(t, err)
	return &domain.Request[model.DiskField]{
		Domain:    "disk",
		Fields:    leaves,
		Select:    model.DiskName,
		HasSelect: true,
		Opts:      opts,
	}
}

func TestFormatPlan(t *testing.T) {
	t.Run("raw", func(t *testing.T) {
		s, err := domain.FormatPlan(diskPlan(t, domain.GeneralOpts{}), false)
		require.NoError(t, err)
		assert.Equal(t, "datetime   name       read_bytes_per_sec\n", s)
	})

	t.Run("csv", func(t *testing.T) {
		s, err := domain.FormatPlan(diskPlan(t, domain.GeneralOpts{OutputFormat: domain.OutputCSV}), false)
		require.NoError(t, err)
		assert.Equal(t, "datetime,name,read_bytes_per_sec\n", s)
	})

	t.Run("tsv", func(t *testing.T) {
		s, err := domain.FormatPlan(diskPlan(t, domain.GeneralOpts{OutputFormat: domain.OutputTSV}), false)
		require.NoError(t, err)
		assert.Equal(t, "datetime\tname\tread_bytes_per_sec\n", s)
	})

	t.Run("kv", func(t *testing.T) {
		opts := domain.GeneralOpts{
			OutputFormat: domain.OutputKeyVal,
			Begin:        "08:30:00",
			RSort:        true,
			Top:          5,
			Filter:       regexp.MustCompile("nvme0.*"),
		}
		s, err := domain.FormatPlan(diskPlan(t, opts), false)
		require.NoError(t, err)
		assert.Equal(t, "domain=disk\n"+
			"fields=datetime,name,read_bytes_per_sec\n"+
			"select=name\n"+
			"filter=nvme0.*\n"+
			"sort=desc\n"+
			"top=5\n"+
			"begin=08:30:00\n", s)
	})

	t.Run("json", func(t *testing.T) {
		opts := domain.GeneralOpts{OutputFormat: domain.OutputJSON, Begin: "08:30:00", Sort: true}
		s, err := domain.FormatPlan(diskPlan(t, opts), false)
		require.NoError(t, err)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(s), &parsed))
		assert.Equal(t, "disk", parsed["domain"])
		assert.Equal(t, []any{"datetime", "name", "read_bytes_per_sec"}, parsed["fields"])
		assert.Equal(t, "name", parsed["select"])
		assert.Equal(t, "json", parsed["output_format"])
		options, ok := parsed["options"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "08:30:00", options["begin"])
		assert.Equal(t, true, options["sort"])
	})

	t.Run("openmetrics", func(t *testing.T) {
		_, err := domain.FormatPlan(diskPlan(t, domain.GeneralOpts{OutputFormat: domain.OutputOpenMetrics}), false)
		assert.ErrorIs(t, err, domain.ErrNeedsSamples)
	})
}

func TestFormatPlanDisableTitle(t *testing.T) {
	for _, f := range []domain.OutputFormat{domain.OutputRaw, domain.OutputCSV, domain.OutputTSV} {
		t.Run(f.String(), func(t *testing.T) {
			s, err := domain.FormatPlan(diskPlan(t, domain.GeneralOpts{OutputFormat: f, DisableTitle: true}), false)
			require.NoError(t, err)
			assert.Empty(t, s)
		})
	}
}

func TestFormatPlanBr(t *testing.T) {
	s, err := domain.FormatPlan(diskPlan(t, domain.GeneralOpts{OutputFormat: domain.OutputCSV, Br: "=="}), false)
	require.NoError(t, err)
	assert.Equal(t, "datetime,name,read_bytes_per_sec\n==\n", s)
}

func TestFormatPlanStyled(t *testing.T) {
	s, err := domain.FormatPlan(diskPlan(t, domain.GeneralOpts{}), true)
	require.NoError(t, err)
	assert.Contains(t, s, "datetime")
	assert.Contains(t, s, "read_bytes_per_sec")
}

func TestFormatPlanWideNames(t *testing.T) {
	req := &domain.Request[model.SystemField]{
		Domain: "system",
		Fields: []field.DumpField[model.SystemField]{field.CommonLeaf[model.SystemField](field.CommonTimestamp)},
	}
	s, err := domain.FormatPlan(req, false)
	require.NoError(t, err)
	assert.Equal(t, "timestamp\n", s)
}

func TestPlanPrinter(t *testing.T) {
	out := new(bytes.Buffer)
	p := domain.NewPlanPrinter(out)
	require.NoError(t, p.Dump(context.Background(), diskPlan(t, domain.GeneralOpts{OutputFormat: domain.OutputCSV})))
	assert.Equal(t, "datetime,name,read_bytes_per_sec\n", out.String())
}

func TestPlanPrinterOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.tsv")
	out := new(bytes.Buffer)
	p := domain.NewPlanPrinter(out)
	require.NoError(t, p.Dump(context.Background(), diskPlan(t, domain.GeneralOpts{OutputFormat: domain.OutputTSV, Output: path})))

	assert.Empty(t, out.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "datetime\tname\tread_bytes_per_sec\n", string(data))
}

func TestPlanPrinterOutputFileError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	p := domain.NewPlanPrinter(new(bytes.Buffer))
	err := p.Dump(context.Background(), diskPlan(t, domain.GeneralOpts{OutputFormat: domain.OutputCSV, Output: "/dev/full"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write output")
}

func TestPlanPrinterCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := domain.NewPlanPrinter(new(bytes.Buffer)).Dump(ctx, diskPlan(t, domain.GeneralOpts{}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlanPrinterThroughCommand(t *testing.T) {
	out := new(bytes.Buffer)
	dump := domain.Run(domain.NewPlanPrinter(out))
	dump.SetArgs([]string{"btrfs", "-b", "x", "-f", "name", "disk_usage", "-O", "csv"})
	require.NoError(t, dump.Execute())
	assert.Equal(t, "name,disk_fraction,disk_bytes\n", out.String())
}

func TestOutputFormatNames(t *testing.T) {
	for _, name := range []string{"raw", "csv", "tsv", "json", "kv", "openmetrics"} {
		f, err := domain.ParseOutputFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
	_, err := domain.ParseOutputFormat("xml")
	assert.ErrorIs(t, err, field.ErrNotFound)
}
