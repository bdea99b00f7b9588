package model_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lex00/statdump/field"
	"github.com/lex00/statdump/model"
)

type enum interface {
	~int
	field.ID
}

func checkCatalog[T enum](t *testing.T, c *field.Catalog[T], parse func(string) (T, error)) {
	t.Helper()
	require.NotZero(t, c.Len())

	for i, v := range c.All() {
		// Constants are declared in catalog order.
		assert.Equal(t, T(i), v)

		name := v.String()
		got, err := parse(name)
		require.NoError(t, err, name)
		assert.Equal(t, v, got)

		got, err = parse(strings.ToUpper(name))
		require.NoError(t, err, name)
		assert.Equal(t, v, got)

		_, err = field.ParseCommonField(name)
		assert.Error(t, err, "%s shadows a common field", name)
	}

	_, err := parse("no_such_field")
	assert.ErrorIs(t, err, field.ErrNotFound)
}

func TestCatalogs(t *testing.T) {
	t.Run("system", func(t *testing.T) { checkCatalog(t, model.SystemFields(), model.ParseSystemField) })
	t.Run("disk", func(t *testing.T) { checkCatalog(t, model.DiskFields(), model.ParseDiskField) })
	t.Run("btrfs", func(t *testing.T) { checkCatalog(t, model.BtrfsFields(), model.ParseBtrfsField) })
	t.Run("process", func(t *testing.T) { checkCatalog(t, model.ProcessFields(), model.ParseProcessField) })
	t.Run("cgroup", func(t *testing.T) { checkCatalog(t, model.CgroupFields(), model.ParseCgroupField) })
	t.Run("iface", func(t *testing.T) { checkCatalog(t, model.NetFields(), model.ParseNetField) })
	t.Run("network", func(t *testing.T) { checkCatalog(t, model.NetworkFields(), model.ParseNetworkField) })
}

func TestSystemSubModels(t *testing.T) {
	cpu := field.Names(model.SystemFields().Under("cpu"))
	assert.Contains(t, cpu, "cpu.usage_pct")
	assert.Contains(t, cpu, "cpu.idx")
	for _, name := range cpu {
		assert.True(t, strings.HasPrefix(name, "cpu."), name)
	}
}

func TestNetworkPrefixesAreDisjoint(t *testing.T) {
	c := model.NetworkFields()
	total := 0
	for _, p := range []string{"ip", "ip6", "icmp", "icmp6", "tcp", "udp", "udp6"} {
		n := len(c.Under(p))
		assert.NotZero(t, n, p)
		total += n
	}
	assert.Equal(t, c.Len(), total)
}

func TestUnknownValueRendering(t *testing.T) {
	assert.Equal(t, "disk field(-1)", model.DiskField(-1).String())
}
